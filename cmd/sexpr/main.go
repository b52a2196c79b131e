// Command sexpr reads s-expression documents: it lists their tokens or parses
// them into trees and writes them as s-expressions, YAML or msgpack.
package main

import (
	"context"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
