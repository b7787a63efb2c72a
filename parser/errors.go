package parser

import (
	"errors"
)

var (
	ErrNoClosingParen         = errors.New("no closing parenthesis")
	ErrUnexpectedClosingParen = errors.New("unexpected closing parenthesis")
)
