package parser

import (
	"strconv"

	"github.com/atemmel/lizp2/ast"
	"github.com/atemmel/lizp2/lexer"
)

// TokenStream is the source of tokens for a Parser. Peek returns the
// current token without consuming it, Next consumes it. Both return false
// when no tokens remain.
type TokenStream interface {
	Peek() (lexer.Token, bool)
	Next() (lexer.Token, bool)
}

// Parser builds an AST out of a stream of tokens.
type Parser struct {
	ts TokenStream
}

// New creates a Parser that reads tokens from ts. The stream is consumed
// as the parse advances and must not be shared with another Parser.
func New(ts TokenStream) *Parser {
	return &Parser{
		ts: ts,
	}
}

// Parse consumes exactly one expression from the stream and returns its
// root node. A token left over after the expression means the input holds
// a stray closing parenthesis. On failure the returned node is nil.
func (p *Parser) Parse() (*ast.Node, error) {
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, ok := p.ts.Peek(); ok {
		return nil, ErrUnexpectedClosingParen
	}

	return root, nil
}

func (p *Parser) parseExpr() (*ast.Node, error) {
	tok, ok := p.ts.Next()
	if !ok {
		return nil, ErrNoClosingParen
	}

	if tok.Text() == "(" {
		return p.parseList()
	}

	return atomNode(tok.Text()), nil
}

func (p *Parser) parseList() (*ast.Node, error) {
	children := []*ast.Node{}

	for {
		tok, ok := p.ts.Peek()
		if !ok {
			return nil, ErrNoClosingParen
		}

		if tok.Text() == ")" {
			p.ts.Next()
			return ast.NewList(children...), nil
		}

		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

// atomNode classifies the text of an atom token. The literals "true" and
// "false" win over everything else, then whatever strconv.ParseFloat
// accepts is a number, and anything left is a symbol.
func atomNode(text string) *ast.Node {
	switch text {
	case "true":
		return ast.NewBool(true)
	case "false":
		return ast.NewBool(false)
	}

	if f64, err := strconv.ParseFloat(text, 64); err == nil {
		return ast.NewNumber(f64)
	}

	return ast.NewSymbol(text)
}

// Parse builds the AST for the single expression held by ts.
func Parse(ts TokenStream) (*ast.Node, error) {
	return New(ts).Parse()
}
