package parsec

import (
	"fmt"
)

// Pure returns a parser that always succeeds with v without consuming tokens.
func Pure[K, T any](v T) Parser[K, T] {
	return Parser[K, T]{
		run: func(tokens []K, _ string) Result[K, T] {
			return Succeeded(v, tokens)
		},
		label: "Pure " + fmt.Sprint(v),
	}
}

// Success returns a parser that always succeeds with v and drops exactly one
// token without looking at it. Unlike Pure it does consume input, and on empty
// input it still succeeds with an empty remainder.
func Success[K, T any](v T) Parser[K, T] {
	return Parser[K, T]{
		run: func(tokens []K, _ string) Result[K, T] {
			return Succeeded(v, drop(1, tokens))
		},
		label: "Pure " + fmt.Sprint(v),
	}
}

// PureResult returns a parser that ignores its input and returns res.
func PureResult[K, T any](res Result[K, T]) Parser[K, T] {
	return Parser[K, T]{
		run: func([]K, string) Result[K, T] {
			return res
		},
		label: "Pure res " + res.String(),
	}
}

// Fail returns a parser that always fails with the given description.
func Fail[K, T any](description string) Parser[K, T] {
	return Parser[K, T]{
		run: func(tokens []K, _ string) Result[K, T] {
			return failure[K, T](KindExplicit, description, tokens)
		},
	}
}

// Test returns a parser that consumes the first token if it satisfies the
// predicate. The label names the predicate in failure descriptions.
func Test[K any](label string, predicate func(K) bool) Parser[K, K] {
	return Parser[K, K]{
		run: func(tokens []K, label string) Result[K, K] {
			if len(tokens) == 0 {
				return failure[K, K](
					KindExhausted,
					fmt.Sprintf("Unknown error occurred involving %v, predicate `%s`", tokens, label),
					tokens,
				)
			}
			head := tokens[0]
			if !predicate(head) {
				return failure[K, K](
					KindPredicate,
					fmt.Sprintf("Predicate `%s` not true for `%v`", label, head),
					tokens,
				)
			}
			return Succeeded(head, tokens[1:])
		},
		label: label,
	}
}

// Const returns a parser that matches a token equal to c.
func Const[K comparable](c K) Parser[K, K] {
	return Test(fmt.Sprint(c), func(tok K) bool {
		return tok == c
	})
}

// ConstFunc is like Const for tokens that are compared with eq.
func ConstFunc[K any](c K, eq func(a, b K) bool) Parser[K, K] {
	return Test(fmt.Sprint(c), func(tok K) bool {
		return eq(tok, c)
	})
}

func drop[K any](n int, tokens []K) []K {
	if n >= len(tokens) {
		return tokens[len(tokens):]
	}
	return tokens[n:]
}
