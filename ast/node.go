package ast

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/xiam/parsec/lexer"
)

// ErrNotVector is returned when adding children to a value node
var ErrNotVector = errors.New("nodes of type value can't accept children")

// Node represents leaf of the AST
type Node struct {
	p *Node

	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// NewNode creates and returns an orphaned value node based on the given token
func NewNode(tok *lexer.Token, v Valuer) *Node {
	return newNode(v.Type(), tok, v)
}

// NewExpression creates and returns a node of type "expression"
func NewExpression(tok *lexer.Token) *Node {
	return newNode(NodeTypeExpression, tok, []*Node{})
}

// NewMap creates and returns a node of type "map"
func NewMap(tok *lexer.Token) *Node {
	return newNode(NodeTypeMap, tok, []*Node{})
}

// NewList creates and returns a node of type "list"
func NewList(tok *lexer.Token) *Node {
	return newNode(NodeTypeList, tok, []*Node{})
}

// NewVector creates a node of the given vector type holding children.
func NewVector(nt NodeType, tok *lexer.Token, children ...*Node) (*Node, error) {
	if !nt.IsVector() {
		return nil, errors.Wrapf(ErrNotVector, "type %v", nt)
	}
	node := newNode(nt, tok, make([]*Node, 0, len(children)))
	for _, child := range children {
		if err := node.Push(child); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// PushValue appends a new value to the node
func (n *Node) PushValue(tok *lexer.Token, v Valuer) (*Node, error) {
	node := NewNode(tok, v)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushList appends a new list to the node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Value returns the value of the node
func (n Node) Value() interface{} {
	if n.v == nil {
		return nil
	}
	if v, ok := n.v.(Valuer); ok {
		return v.Value()
	}
	return n.v
}

// Encode returns the encoded value of the node
func (n Node) Encode() string {
	if v, ok := n.v.(Valuer); ok {
		return v.Encode()
	}
	return ""
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	if list, ok := n.v.([]*Node); ok {
		return list
	}
	return nil
}

func (n Node) String() string {
	if n.nt.IsVector() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.List()))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.Value())
}

// Push appends a child node to a parent node of type "expression", "map" or "list".
func (n *Node) Push(node *Node) error {
	if !n.IsVector() {
		return ErrNotVector
	}
	n.v = append(n.v.([]*Node), node)
	node.p = n
	return nil
}

// IsValue returns true if the node is of type value
func (n *Node) IsValue() bool {
	return n.nt.IsValue()
}

// IsVector returns true if the node is of type vector
func (n *Node) IsVector() bool {
	return n.nt.IsVector()
}

// Parent returns the vector that holds the node, if any
func (n *Node) Parent() *Node {
	return n.p
}
