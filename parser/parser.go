package parser

import (
	"bytes"
	"io"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/xiam/parsec"
	"github.com/xiam/parsec/ast"
	"github.com/xiam/parsec/lexer"
)

// ParserOptions changes the way a document is read.
type ParserOptions struct {
	// AutoCloseOnEOF closes every open vector when the input ends.
	AutoCloseOnEOF bool

	// Logger receives a debug entry for every value the grammar tries.
	Logger *zap.Logger
}

// Parser reads a document from r and builds its tree.
type Parser struct {
	r    io.Reader
	opts ParserOptions

	root *ast.Node
}

// NewParser creates a parser that reads from r
func NewParser(r io.Reader) *Parser {
	return &Parser{r: r}
}

// SetOptions replaces the options of the parser
func (p *Parser) SetOptions(opts ParserOptions) {
	p.opts = opts
}

// Root returns the tree built by the last successful call to Parse
func (p *Parser) Root() *ast.Node {
	return p.root
}

// Parse reads the whole input and builds the tree. The root is an expression
// node that holds the top level values.
func (p *Parser) Parse() error {
	tokens, err := lexer.TokenizeReader(p.r)
	if err != nil {
		return err
	}

	res := program(p.opts).Parse(tokens)
	if !res.OK() {
		return syntaxError(res)
	}

	p.root = res.Parsed
	return nil
}

// programs are shared by every parser that does not trace.
var programs = map[bool]func() nodeParser{
	false: sync.OnceValue(grammar{}.program),
	true:  sync.OnceValue(grammar{autoClose: true}.program),
}

func program(opts ParserOptions) nodeParser {
	if opts.Logger != nil {
		g := grammar{
			autoClose: opts.AutoCloseOnEOF,
			logger:    opts.Logger,
		}
		return g.program()
	}
	return programs[opts.AutoCloseOnEOF]()
}

func syntaxError(res parsec.Result[lexer.Token, *ast.Node]) error {
	if len(res.Remaining) == 0 {
		return errors.Wrap(ErrUnexpectedEOF, res.Description)
	}

	head := res.Remaining[0]
	line, col := head.Pos()

	err := ErrUnexpectedToken
	switch {
	case res.Kind() == parsec.KindExplicit:
		// the grammar only fails explicitly on numerals it can't convert
		err = ErrInvalidNumber
	case head.Is(lexer.TokenEOF):
		err = ErrUnexpectedEOF
	}
	return errors.Wrapf(err, "line %d, column %d: %s", line, col, res.Description)
}

// Parse builds the tree of the given document
func Parse(in []byte) (*ast.Node, error) {
	p := NewParser(bytes.NewReader(in))
	if err := p.Parse(); err != nil {
		return nil, err
	}
	return p.Root(), nil
}
