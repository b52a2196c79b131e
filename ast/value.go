package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Valuer represents a value interface
type Valuer interface {
	Type() NodeType
	Value() interface{}
	Encode() string
}

var stringEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

var stringEscapes = map[rune]rune{
	'n': '\n',
	't': '\t',
	'r': '\r',
}

// Unescape returns the character that a backslash followed by r stands for
// inside a string. Characters without a special meaning stand for themselves.
func Unescape(r rune) rune {
	if v, ok := stringEscapes[r]; ok {
		return v
	}
	return r
}

type nodeValue struct {
	t NodeType
	v interface{}
}

func newNodeValue(t NodeType, v interface{}) *nodeValue {
	return &nodeValue{
		t: t,
		v: v,
	}
}

func (n *nodeValue) Type() NodeType {
	return n.t
}

func (n *nodeValue) Value() interface{} {
	return n.v
}

func (n *nodeValue) Encode() string {
	switch n.t {
	case NodeTypeInt:
		return fmt.Sprintf("%d", n.v)
	case NodeTypeFloat:
		return strconv.FormatFloat(n.v.(float64), 'f', -1, 64)
	case NodeTypeString:
		return `"` + stringEscaper.Replace(n.v.(string)) + `"`
	}
	return fmt.Sprintf("%s", n.v)
}

// NewStringValue creates a node of type string and sets it to the given value
func NewStringValue(v string) Valuer {
	return newNodeValue(NodeTypeString, v)
}

// NewFloatValue creates a node of type float and sets it to the given value
func NewFloatValue(v float64) Valuer {
	return newNodeValue(NodeTypeFloat, v)
}

// NewIntValue creates a node of type node and sets it to the given value
func NewIntValue(v int64) Valuer {
	return newNodeValue(NodeTypeInt, v)
}

// NewAtomValue creates a node of type atom and sets it to the given value,
// including the leading colon (":nil")
func NewAtomValue(v string) Valuer {
	return newNodeValue(NodeTypeAtom, v)
}

// NewSymbolValue creates a node of type symbol and sets it to the given value
func NewSymbolValue(v string) Valuer {
	return newNodeValue(NodeTypeSymbol, v)
}

var _ = Valuer(&nodeValue{})
