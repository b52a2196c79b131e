package parser

import (
	"github.com/pkg/errors"
)

// Errors returned by Parse, wrapped with the position of the offending token.
var (
	ErrUnexpectedEOF   = errors.New("unexpected EOF")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrInvalidNumber   = errors.New("invalid number")
)
