package lexer

import (
	"bytes"
	"io"
	"sync"
	"text/scanner"

	"github.com/pkg/errors"
)

type lexState func(*Lexer) lexState

var (
	ErrForceStopped = errors.New("lexer was stopped")
	ErrInvalidInput = errors.New("invalid input")
)

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)

	isOpenMap  = isTokenType(TokenOpenMap)
	isCloseMap = isTokenType(TokenCloseMap)

	isOpenExpression  = isTokenType(TokenOpenExpression)
	isCloseExpression = isTokenType(TokenCloseExpression)

	isNewLine     = isTokenType(TokenNewLine)
	isDoubleQuote = isTokenType(TokenDoubleQuote)
	isHash        = isTokenType(TokenHash)
	isWhitespace  = isTokenType(TokenWhitespace)

	isWord    = isTokenType(TokenWord)
	isInteger = isTokenType(TokenInteger)

	isColon     = isTokenType(TokenColon)
	isDot       = isTokenType(TokenDot)
	isBackslash = isTokenType(TokenBackslash)
)

// Lexer represents a lexical analyzer
type Lexer struct {
	in *scanner.Scanner

	tokens chan Token

	done     chan struct{}
	stopOnce sync.Once
	lastErr  error

	buf []rune

	line, col           int
	startLine, startCol int
}

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	lx := &Lexer{
		tokens: make(chan Token),
		done:   make(chan struct{}),
		buf:    []rune{},
	}

	lx.in = new(scanner.Scanner).Init(r)
	lx.in.Error = func(s *scanner.Scanner, msg string) {
		lx.lastErr = errors.Wrapf(ErrInvalidInput, "line %d, column %d: %s", lx.line+1, lx.col+1, msg)
	}

	return lx
}

// Tokens returns a channel that is going to receive tokens as soon as they are
// detected. The channel is closed when Scan returns.
func (lx *Lexer) Tokens() <-chan Token {
	return lx.tokens
}

// Stop makes Scan return ErrForceStopped without waiting for the remaining
// tokens to be read.
func (lx *Lexer) Stop() {
	lx.stopOnce.Do(func() {
		close(lx.done)
	})
}

// Scan starts scanning the reader for tokens. A successful scan always ends
// with a TokenEOF token.
func (lx *Lexer) Scan() error {
	defer close(lx.tokens)

	for state := lexDefaultState; state != nil; {
		select {
		case <-lx.done:
			return ErrForceStopped
		default:
			state = state(lx)
		}
	}

	if lx.lastErr != nil {
		return lx.lastErr
	}

	if !lx.emit(TokenEOF) {
		return ErrForceStopped
	}
	return nil
}

func (lx *Lexer) emit(tt TokenType) bool {
	tok := Token{
		tt:   tt,
		text: string(lx.buf),
		line: lx.startLine + 1,
		col:  lx.startCol + 1,
	}

	lx.startLine, lx.startCol = lx.line, lx.col
	lx.buf = lx.buf[0:0]

	select {
	case lx.tokens <- tok:
		return true
	case <-lx.done:
		return false
	}
}

func (lx *Lexer) peek() rune {
	return lx.in.Peek()
}

func (lx *Lexer) next() (rune, error) {
	r := lx.in.Next()
	if r == scanner.EOF {
		return rune(0), io.EOF
	}

	lx.buf = append(lx.buf, r)
	if isNewLine(r) {
		lx.line++
		lx.col = 0
	} else {
		lx.col++
	}

	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)

	case isOpenMap(r):
		return lexEmit(TokenOpenMap)
	case isCloseMap(r):
		return lexEmit(TokenCloseMap)

	case isOpenExpression(r):
		return lexEmit(TokenOpenExpression)
	case isCloseExpression(r):
		return lexEmit(TokenCloseExpression)

	case isDoubleQuote(r):
		return lexEmit(TokenDoubleQuote)
	case isHash(r):
		return lexEmit(TokenHash)
	case isNewLine(r):
		return lexEmit(TokenNewLine)
	case isWhitespace(r):
		return lexCollectStream(TokenWhitespace, isWhitespace)

	case isWord(r):
		return lexCollectStream(TokenWord, isWord)
	case isInteger(r):
		return lexCollectStream(TokenInteger, isInteger)

	case isColon(r):
		return lexEmit(TokenColon)
	case isDot(r):
		return lexEmit(TokenDot)
	case isBackslash(r):
		return lexEmit(TokenBackslash)
	}

	return lexCollectStream(TokenSymbol, isSymbol)
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		if !lx.emit(tt) {
			return nil
		}
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType, accept func(rune) bool) lexState {
	return func(lx *Lexer) lexState {
		for {
			p := lx.peek()
			if p == scanner.EOF || !accept(p) {
				break
			}
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		return lexEmit(tt)
	}
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

// Tokenize takes an array of bytes and returns all the tokens within it,
// including the final TokenEOF.
func Tokenize(in []byte) ([]Token, error) {
	return TokenizeReader(bytes.NewReader(in))
}

// TokenizeReader reads r until the end and returns all its tokens, including
// the final TokenEOF.
func TokenizeReader(r io.Reader) ([]Token, error) {
	lx := New(r)

	errCh := make(chan error, 1)
	go func() {
		errCh <- lx.Scan()
	}()

	tokens := []Token{}
	for tok := range lx.Tokens() {
		tokens = append(tokens, tok)
	}

	if err := <-errCh; err != nil {
		return nil, err
	}
	return tokens, nil
}
