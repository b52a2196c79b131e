package parsec

// Map returns a parser that applies f to the value parsed by p. Failures are
// passed through untouched.
func Map[K, T, U any](p Parser[K, T], f func(T) U) Parser[K, U] {
	return Parser[K, U]{
		run: func(tokens []K, _ string) Result[K, U] {
			res := p.Parse(tokens)
			if !res.ok {
				return recast[K, T, U](res)
			}
			return Succeeded(f(res.Parsed), res.Remaining)
		},
	}
}

// FlatMap returns a parser that runs p and then the parser built by f from the
// parsed value, starting where p stopped.
func FlatMap[K, T, U any](p Parser[K, T], f func(T) Parser[K, U]) Parser[K, U] {
	return Parser[K, U]{
		run: func(tokens []K, _ string) Result[K, U] {
			res := p.Parse(tokens)
			if !res.ok {
				return recast[K, T, U](res)
			}
			return f(res.Parsed).Parse(res.Remaining)
		},
	}
}

// Flatten runs a parser whose parsed value is itself a parser.
func Flatten[K, T any](p Parser[K, Parser[K, T]]) Parser[K, T] {
	return FlatMap(p, func(inner Parser[K, T]) Parser[K, T] {
		return inner
	})
}

// FlatMapCase is like FlatMap but f receives the whole result of p, success or
// failure, so the continuation may recover from a failure. The parser returned
// by f runs on the remaining tokens of that result.
func FlatMapCase[K, T, U any](p Parser[K, T], f func(Result[K, T]) Parser[K, U]) Parser[K, U] {
	return Parser[K, U]{
		run: func(tokens []K, _ string) Result[K, U] {
			res := p.Parse(tokens)
			return f(res).Parse(res.Remaining)
		},
		label: p.label,
	}
}

// MapCase transforms the whole result of p.
func MapCase[K, T, U any](p Parser[K, T], f func(Result[K, T]) Result[K, U]) Parser[K, U] {
	return FlatMapCase(p, func(res Result[K, T]) Parser[K, U] {
		return PureResult(f(res))
	})
}

// Lazy defers building a parser until it is run. Recursive grammars use it to
// refer to a parser that is not defined yet.
func Lazy[K, T any](f func() Parser[K, T]) Parser[K, T] {
	return FlatMap(Pure[K](struct{}{}), func(struct{}) Parser[K, T] {
		return f()
	})
}
