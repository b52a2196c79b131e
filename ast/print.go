package ast

import (
	"fmt"
	"io"
	"os"
	"strings"
)

var vectorDelimiters = map[NodeType][2]string{
	NodeTypeList:       {"[", "]"},
	NodeTypeMap:        {"{", "}"},
	NodeTypeExpression: {"(", ")"},
}

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}

	if n.IsVector() {
		fmt.Fprintf(w, "%s(%s): %v\n", indent, n.Type(), n.Token())
		for _, child := range n.List() {
			printLevel(w, child, level+1)
		}
		return
	}

	fmt.Fprintf(w, "%s(%s): %#v %v\n", indent, n.Type(), n.Value(), n.Token())
}

// Encode transforms a node into its text representation. The outermost
// expression is written without parentheses.
func Encode(n *Node) []byte {
	return []byte(encodeNodeLevel(n, 0))
}

func encodeNodeLevel(n *Node, level int) string {
	if n == nil {
		return ":nil"
	}

	if !n.IsVector() {
		return n.Encode()
	}

	nodes := make([]string, 0, len(n.List()))
	for _, child := range n.List() {
		nodes = append(nodes, encodeNodeLevel(child, level+1))
	}

	body := strings.Join(nodes, " ")
	if level == 0 && n.Type() == NodeTypeExpression {
		return body
	}

	delim := vectorDelimiters[n.Type()]
	return delim[0] + body + delim[1]
}
