package lexer

import (
	"bytes"
	"io"
	"text/scanner"
)

type lexState func(*Lexer) lexState

func isParen(r rune) bool {
	return r == '(' || r == ')'
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	s := &scanner.Scanner{}

	return &Lexer{
		in:     s.Init(r),
		tokens: make(chan Token),
		buf:    []rune{},
		line:   1,
		col:    1,
	}
}

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens chan Token

	lastErr error

	buf []rune

	line int
	col  int

	tokLine int
	tokCol  int
}

// Tokens returns a channel that is going to receive tokens as soon as they
// are detected.
func (lx *Lexer) Tokens() chan Token {
	return lx.tokens
}

// Scan starts scanning the reader for tokens.
func (lx *Lexer) Scan() error {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	close(lx.tokens)

	return lx.lastErr
}

func (lx *Lexer) emit() {
	lx.tokens <- NewToken(string(lx.buf), lx.tokLine, lx.tokCol)
	lx.buf = lx.buf[:0]
}

func (lx *Lexer) skip() {
	lx.buf = lx.buf[:0]
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	if len(lx.buf) == 0 {
		lx.tokLine, lx.tokCol = lx.line, lx.col
	}

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isParen(r):
		return lexParen
	case isSeparator(r):
		return lexSeparator
	default:
		return lexAtom
	}
}

func lexParen(lx *Lexer) lexState {
	lx.emit()
	return lexDefaultState
}

func lexSeparator(lx *Lexer) lexState {
	for isSeparator(lx.peek()) {
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.skip()
	return lexDefaultState
}

func lexAtom(lx *Lexer) lexState {
	for {
		p := lx.peek()
		if p == scanner.EOF || isParen(p) || isSeparator(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}
	lx.emit()
	return lexDefaultState
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return nil
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes an array of bytes and returns all the tokens within it.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}
	done := make(chan struct{})

	lx := New(bytes.NewReader(in))

	go func() {
		for tok := range lx.tokens {
			tokens = append(tokens, tok)
		}
		done <- struct{}{}
	}()

	if err := lx.Scan(); err != nil {
		return nil, err
	}

	<-done
	return tokens, nil
}
