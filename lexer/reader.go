package lexer

// TokenReader walks a tokenized input one token at a time.
type TokenReader struct {
	tokens []Token
	index  int
}

// NewTokenReader creates a TokenReader positioned on the first token.
func NewTokenReader(tokens []Token) *TokenReader {
	return &TokenReader{
		tokens: tokens,
	}
}

// Peek returns the current token without consuming it. The second return
// value is false when no tokens remain.
func (r *TokenReader) Peek() (Token, bool) {
	if r.index >= len(r.tokens) {
		return Token{}, false
	}
	return r.tokens[r.index], true
}

// Next consumes the current token and returns it. The second return value
// is false when no tokens remain.
func (r *TokenReader) Next() (Token, bool) {
	tok, ok := r.Peek()
	if ok {
		r.index++
	}
	return tok, ok
}
