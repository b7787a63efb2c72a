package lexer

import (
	"fmt"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	text string

	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(text string, line int, col int) Token {
	return Token{
		text: text,
		line: line,
		col:  col,
	}
}

// Text returns the raw text of the lexical unit
func (t Token) Text() string {
	return t.text
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

func (t Token) String() string {
	return fmt.Sprintf("%q [%d %d]", t.text, t.line, t.col)
}
