package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/xiam/parsec/ast"
)

// ErrUnknownFormat is returned for an output format that can't be rendered.
var ErrUnknownFormat = errors.New("unknown format")

const (
	formatSexpr   = "sexpr"
	formatTree    = "tree"
	formatYAML    = "yaml"
	formatMsgpack = "msgpack"
)

func isFormat(format string) bool {
	switch format {
	case formatSexpr, formatTree, formatYAML, formatMsgpack:
		return true
	}
	return false
}

func render(w io.Writer, format string, root *ast.Node) error {
	switch format {
	case formatSexpr:
		_, err := w.Write(append(ast.Encode(root), '\n'))
		return err
	case formatTree:
		ast.Fprint(w, root)
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return err
		}
		return enc.Close()
	case formatMsgpack:
		return msgpack.NewEncoder(w).Encode(root)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// countValues returns the number of value nodes under n.
func countValues(n *ast.Node) int {
	if n == nil {
		return 0
	}
	if n.IsValue() {
		return 1
	}
	count := 0
	for _, child := range n.List() {
		count += countValues(child)
	}
	return count
}
