package parsec

// runFunc is the run behavior of a parser. The label is the one the parser is
// being run with, which is how Label changes the text of predicate failures.
type runFunc[K, T any] func(tokens []K, label string) Result[K, T]

// Parser represents a reusable description of how to extract a value of type T
// from a sequence of tokens of type K. Parsers are immutable and may be run any
// number of times, also concurrently.
//
// The zero value is not usable; parsers are created with the functions of this
// package.
type Parser[K, T any] struct {
	run   runFunc[K, T]
	label string
}

// Label returns the label used in diagnostics, an empty string means the
// parser has no label.
func (p Parser[K, T]) Label() string {
	return p.label
}

// Parse runs the parser once against the given tokens
func (p Parser[K, T]) Parse(tokens []K) Result[K, T] {
	return p.run(tokens, p.label)
}

// Parse runs the parser once against the given tokens
func Parse[K, T any](p Parser[K, T], tokens []K) Result[K, T] {
	return p.Parse(tokens)
}

// Label returns a parser that behaves like p but is labelled with label.
func Label[K, T any](p Parser[K, T], label string) Parser[K, T] {
	return Parser[K, T]{
		run:   p.run,
		label: label,
	}
}
