package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScannerStop(t *testing.T) {
	lx := New(bytes.NewReader([]byte(`1 2 3 4 5`)))

	errCh := make(chan error, 1)
	go func() {
		errCh <- lx.Scan()
	}()

	tok, ok := <-lx.Tokens()
	assert.True(t, ok)
	assert.True(t, tok.Is(TokenInteger))

	lx.Stop()
	lx.Stop()

	err := <-errCh
	assert.Equal(t, ErrForceStopped, err)

	_, ok = <-lx.Tokens()
	assert.False(t, ok)
}

func TestScannerStream(t *testing.T) {
	lx := New(bytes.NewReader([]byte("(a\n b)")))

	errCh := make(chan error, 1)
	go func() {
		errCh <- lx.Scan()
	}()

	types := []TokenType{}
	for tok := range lx.Tokens() {
		types = append(types, tok.Type())
	}

	assert.NoError(t, <-errCh)
	assert.Equal(t, []TokenType{
		TokenOpenExpression,
		TokenWord,
		TokenNewLine,
		TokenWhitespace,
		TokenWord,
		TokenCloseExpression,
		TokenEOF,
	}, types)
}
