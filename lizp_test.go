package lizp

import (
	"testing"

	"github.com/atemmel/lizp2/ast"
	"github.com/atemmel/lizp2/parser"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	root, err := Parse([]byte(`(+ 2 3)`))
	assert.NoError(t, err)
	assert.NotNil(t, root)

	assert.Equal(t, `(+ 2 3)`, string(ast.Encode(root)))
}

func TestParseString(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{`1`, `1`},
		{`(a (b (c)))`, `(a (b (c)))`},
		{`( a   b  c )`, `(a b c)`},
		{`(true false maybe)`, `(true false maybe)`},
		{"(fn fib (n)\n\t(if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))",
			`(fn fib (n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))`},
	}

	for i := range testCases {
		root, err := ParseString(testCases[i].In)
		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, string(ast.Encode(root)))
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`(+ 1 2 ))`, parser.ErrUnexpectedClosingParen},
		{`(= 2 3`, parser.ErrNoClosingParen},
	}

	for i := range testCases {
		root, err := ParseString(testCases[i].In)
		assert.Nil(t, root)
		assert.ErrorIs(t, err, testCases[i].Err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	testCases := []string{
		`(+ 2 3)`,
		`(+ (- 5 (* 12 7)) 3)`,
		`(a () (b true) -1.25e-3)`,
		`()`,
		`-0.5`,
	}

	for i := range testCases {
		first := MustParse(testCases[i])

		second, err := Parse(ast.Encode(first))
		assert.NoError(t, err)
		assert.True(t, ast.Equal(first, second), "case %d: %q", i, testCases[i])
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse(`(`)
	})
}
