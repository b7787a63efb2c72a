package lizp

import (
	"github.com/atemmel/lizp2/ast"
	"github.com/atemmel/lizp2/lexer"
	"github.com/atemmel/lizp2/parser"
)

// Version is the version of the lizp library
const Version = "2.0.0"

// Parse tokenizes in and builds the AST of the single expression it holds.
// On failure the returned node is nil.
func Parse(in []byte) (*ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}

	return parser.Parse(lexer.NewTokenReader(tokens))
}

// ParseString is like Parse but takes a string.
func ParseString(in string) (*ast.Node, error) {
	return Parse([]byte(in))
}

// MustParse is like ParseString but panics when the input does not parse.
func MustParse(in string) *ast.Node {
	root, err := ParseString(in)
	if err != nil {
		panic(err)
	}
	return root
}
