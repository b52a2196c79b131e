package main

import (
	"log"
	"strings"

	"github.com/xiam/parsec/ast"
	"github.com/xiam/parsec/parser"
)

func main() {
	input := `(fn_a (fn_b [89 :A :B [67 3.27]]) (fn_c 66 3 53 "Hello world!" 😊))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)

	// unbalanced input can still be read when vectors are closed at EOF
	p := parser.NewParser(strings.NewReader(`(fn_a (fn_b [89 :A`))
	p.SetOptions(parser.ParserOptions{
		AutoCloseOnEOF: true,
	})
	if err := p.Parse(); err != nil {
		log.Fatal("p.Parse:", err)
	}

	log.Printf("%s", ast.Encode(p.Root()))
}
