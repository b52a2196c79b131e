package parser

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/xiam/parsec"
	"github.com/xiam/parsec/ast"
	"github.com/xiam/parsec/lexer"
)

type (
	tokenParser = parsec.Parser[lexer.Token, lexer.Token]
	nodeParser  = parsec.Parser[lexer.Token, *ast.Node]
)

type grammar struct {
	autoClose bool
	logger    *zap.Logger
}

func is(tt lexer.TokenType) tokenParser {
	return parsec.Test(tt.String(), func(tok lexer.Token) bool {
		return tok.Is(tt)
	})
}

func isAny(label string, tts ...lexer.TokenType) tokenParser {
	return parsec.Test(label, func(tok lexer.Token) bool {
		return slices.ContainsFunc(tts, tok.Is)
	})
}

func isNot(label string, tts ...lexer.TokenType) tokenParser {
	return parsec.Test(label, func(tok lexer.Token) bool {
		return !slices.ContainsFunc(tts, tok.Is)
	})
}

// then runs a and b in order and keeps the value of b.
func then[A, B any](a parsec.Parser[lexer.Token, A], b parsec.Parser[lexer.Token, B]) parsec.Parser[lexer.Token, B] {
	return parsec.FlatMap(a, func(A) parsec.Parser[lexer.Token, B] {
		return b
	})
}

// skip runs a and b in order and keeps the value of a.
func skip[A, B any](a parsec.Parser[lexer.Token, A], b parsec.Parser[lexer.Token, B]) parsec.Parser[lexer.Token, A] {
	return parsec.FlatMap(a, func(v A) parsec.Parser[lexer.Token, A] {
		return parsec.Map(b, func(B) A {
			return v
		})
	})
}

// build turns the result of a node constructor into a parser.
func build(node *ast.Node, err error) nodeParser {
	if err != nil {
		return parsec.Fail[lexer.Token, *ast.Node](err.Error())
	}
	return parsec.Pure[lexer.Token](node)
}

func mergeTokens(tt lexer.TokenType, tokens ...lexer.Token) *lexer.Token {
	if len(tokens) == 0 {
		return lexer.NewToken(tt, "", 0, 0)
	}
	line, col := tokens[0].Pos()
	return lexer.NewToken(tt, joinText(tokens), line, col)
}

func joinText(tokens []lexer.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text())
	}
	return b.String()
}

// numberNode converts the tokens of a numeral. A dot among them makes it a
// float.
func numberNode(parts []lexer.Token) (*ast.Node, error) {
	tok := mergeTokens(lexer.TokenInteger, parts...)

	if !slices.ContainsFunc(parts, func(t lexer.Token) bool { return t.Is(lexer.TokenDot) }) {
		i, err := strconv.ParseInt(tok.Text(), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid integer %q", tok.Text())
		}
		return ast.NewNode(tok, ast.NewIntValue(i)), nil
	}

	f, err := strconv.ParseFloat(tok.Text(), 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid float %q", tok.Text())
	}
	return ast.NewNode(tok, ast.NewFloatValue(f)), nil
}

// stringText joins the parts of a string body, replacing escape sequences
// with the characters they stand for.
func stringText(parts []lexer.Token) string {
	var b strings.Builder
	for _, part := range parts {
		text := part.Text()
		if part.Is(lexer.TokenBackslash) && len(text) > 1 {
			r, size := utf8.DecodeRuneInString(text[1:])
			b.WriteRune(ast.Unescape(r))
			b.WriteString(text[1+size:])
			continue
		}
		b.WriteString(text)
	}
	return b.String()
}

// program builds the parser for a whole document. The result is an
// expression node that holds every top level value.
func (g grammar) program() nodeParser {
	var value nodeParser
	valueRef := parsec.Lazy(func() nodeParser {
		return value
	})

	comment := skip(is(lexer.TokenHash), parsec.RepeatStar(isNot("comment", lexer.TokenNewLine, lexer.TokenEOF)))
	blank := parsec.RepeatStar(parsec.Choice(isAny("blank", lexer.TokenWhitespace, lexer.TokenNewLine), comment))

	items := func(end tokenParser) parsec.Parser[lexer.Token, []*ast.Node] {
		return then(blank, parsec.RepeatUntil(skip(valueRef, blank), end))
	}

	vector := func(nt ast.NodeType, opening, closing lexer.TokenType) nodeParser {
		end, closer := is(closing), is(closing)
		if g.autoClose {
			// EOF closes the vector but is left for the outer vectors
			end = parsec.Choice(is(closing), is(lexer.TokenEOF))
			closer = parsec.Choice(is(closing), parsec.Keep(is(lexer.TokenEOF)))
		}
		return parsec.FlatMap(is(opening), func(tok lexer.Token) nodeParser {
			return parsec.FlatMap(items(end), func(children []*ast.Node) nodeParser {
				return parsec.FlatMap(closer, func(lexer.Token) nodeParser {
					return build(ast.NewVector(nt, &tok, children...))
				})
			})
		})
	}

	sign := parsec.Test("sign", func(tok lexer.Token) bool {
		return tok.Is(lexer.TokenSymbol) && (tok.Text() == "+" || tok.Text() == "-")
	})
	fraction := parsec.Sequence(is(lexer.TokenDot), is(lexer.TokenInteger))

	name := parsec.FlatMap(isAny("name", lexer.TokenWord, lexer.TokenSymbol), func(first lexer.Token) parsec.Parser[lexer.Token, *lexer.Token] {
		rest := parsec.RepeatStar(isAny("name", lexer.TokenWord, lexer.TokenSymbol, lexer.TokenInteger, lexer.TokenDot))
		return parsec.Map(rest, func(tail []lexer.Token) *lexer.Token {
			return mergeTokens(first.Type(), append([]lexer.Token{first}, tail...)...)
		})
	})

	symbol := parsec.Map(name, func(tok *lexer.Token) *ast.Node {
		return ast.NewNode(tok, ast.NewSymbolValue(tok.Text()))
	})

	numeral := parsec.FlatMap(parsec.Opt(sign), func(s parsec.Option[lexer.Token]) parsec.Parser[lexer.Token, []lexer.Token] {
		return parsec.FlatMap(is(lexer.TokenInteger), func(whole lexer.Token) parsec.Parser[lexer.Token, []lexer.Token] {
			return parsec.Map(parsec.Opt(fraction), func(frac parsec.Option[[]lexer.Token]) []lexer.Token {
				parts := []lexer.Token{}
				if s.Present {
					parts = append(parts, s.Value)
				}
				parts = append(parts, whole)
				return append(parts, frac.OrElse(nil)...)
			})
		})
	})

	// the numeral is converted before its tokens are consumed, so a number
	// that does not fit fails at its own position
	number := parsec.FlatMap(parsec.Keep(numeral), func(parts []lexer.Token) nodeParser {
		node, err := numberNode(parts)
		if err != nil {
			return parsec.Fail[lexer.Token, *ast.Node](err.Error())
		}
		return then(parsec.Repeat(parsec.Success[lexer.Token](struct{}{}), len(parts)), parsec.Pure[lexer.Token](node))
	})

	// a sign is a symbol unless an integer follows it
	signed := parsec.FlatMapCase(parsec.Keep(parsec.Sequence(sign, is(lexer.TokenInteger))), func(res parsec.Result[lexer.Token, []lexer.Token]) nodeParser {
		if res.OK() {
			return number
		}
		return symbol
	})

	atom := parsec.FlatMap(is(lexer.TokenColon), func(colon lexer.Token) nodeParser {
		return parsec.Map(name, func(n *lexer.Token) *ast.Node {
			tok := mergeTokens(lexer.TokenColon, colon, *n)
			return ast.NewNode(tok, ast.NewAtomValue(tok.Text()))
		})
	})

	// a backslash escapes the first character of the next token
	escape := parsec.FlatMap(is(lexer.TokenBackslash), func(backslash lexer.Token) tokenParser {
		return parsec.FlatMap(parsec.Keep(isNot("escaped", lexer.TokenEOF)), func(next lexer.Token) tokenParser {
			return parsec.Success[lexer.Token](*mergeTokens(lexer.TokenBackslash, backslash, next))
		})
	})
	char := parsec.Choice(escape, isNot("string", lexer.TokenDoubleQuote, lexer.TokenEOF))

	str := parsec.FlatMap(is(lexer.TokenDoubleQuote), func(quote lexer.Token) nodeParser {
		return parsec.FlatMap(parsec.RepeatStar(char), func(parts []lexer.Token) nodeParser {
			return parsec.Map(is(lexer.TokenDoubleQuote), func(lexer.Token) *ast.Node {
				line, col := quote.Pos()
				tok := lexer.NewToken(lexer.TokenDoubleQuote, joinText(parts), line, col)
				return ast.NewNode(tok, ast.NewStringValue(stringText(parts)))
			})
		})
	})

	list := vector(ast.NodeTypeList, lexer.TokenOpenList, lexer.TokenCloseList)
	dict := vector(ast.NodeTypeMap, lexer.TokenOpenMap, lexer.TokenCloseMap)
	expression := vector(ast.NodeTypeExpression, lexer.TokenOpenExpression, lexer.TokenCloseExpression)

	// the first token decides which rule runs, so failures deep inside a
	// vector keep their position
	rules := map[lexer.TokenType]nodeParser{
		lexer.TokenInteger:        number,
		lexer.TokenSymbol:         signed,
		lexer.TokenWord:           symbol,
		lexer.TokenColon:          atom,
		lexer.TokenDoubleQuote:    str,
		lexer.TokenOpenList:       list,
		lexer.TokenOpenMap:        dict,
		lexer.TokenOpenExpression: expression,
	}
	head := parsec.Test("value", func(tok lexer.Token) bool {
		_, ok := rules[tok.Type()]
		return ok
	})
	value = parsec.FlatMap(parsec.Keep(head), func(tok lexer.Token) nodeParser {
		return rules[tok.Type()]
	})
	value = parsec.Trace(parsec.Label(value, "value"), g.logger)

	return parsec.FlatMap(items(is(lexer.TokenEOF)), func(children []*ast.Node) nodeParser {
		return parsec.FlatMap(is(lexer.TokenEOF), func(lexer.Token) nodeParser {
			return build(ast.NewVector(ast.NodeTypeExpression, nil, children...))
		})
	})
}
