package parsec

// Keep runs p without consuming input: both on success and on failure the
// remaining tokens are the ones p was given. Inside a Sequence it peeks at a
// value without advancing past it.
func Keep[K, T any](p Parser[K, T]) Parser[K, T] {
	return Parser[K, T]{
		run: func(tokens []K, _ string) Result[K, T] {
			res := p.Parse(tokens)
			res.Remaining = tokens
			return res
		},
		label: p.label,
	}
}

// Sequence runs the parsers one after the other and collects their values.
// It fails with the first failure found.
func Sequence[K, T any](parsers ...Parser[K, T]) Parser[K, []T] {
	if len(parsers) == 0 {
		return Pure[K]([]T{})
	}
	return Parser[K, []T]{
		run: func(tokens []K, _ string) Result[K, []T] {
			values := make([]T, 0, len(parsers))
			for _, p := range parsers {
				res := p.Parse(tokens)
				if !res.ok {
					return recast[K, T, []T](res)
				}
				values = append(values, res.Parsed)
				tokens = res.Remaining
			}
			return Succeeded(values, tokens)
		},
	}
}

// Repeat requires exactly n consecutive matches of p.
func Repeat[K, T any](p Parser[K, T], n int) Parser[K, []T] {
	if n <= 0 {
		return Pure[K]([]T{})
	}
	return Parser[K, []T]{
		run: func(tokens []K, _ string) Result[K, []T] {
			// each match needs a token at most, so the input bounds the size
			values := make([]T, 0, min(n, len(tokens)))
			for i := 0; i < n; i++ {
				res := p.Parse(tokens)
				if !res.ok {
					return recast[K, T, []T](res)
				}
				values = append(values, res.Parsed)
				tokens = res.Remaining
			}
			return Succeeded(values, tokens)
		},
	}
}

// RepeatStar matches p zero or more times and never fails. It stops at the
// first failure, whose remaining tokens become the remaining tokens of the
// result. When that failing match had already consumed tokens before failing
// they stay consumed: RepeatStar(Sequence(Const(1), Const(2))) on [1 2 1 3]
// collects one match and leaves [3], not [1 3].
func RepeatStar[K, T any](p Parser[K, T]) Parser[K, []T] {
	return Parser[K, []T]{
		run: func(tokens []K, _ string) Result[K, []T] {
			values := []T{}
			for {
				res := p.Parse(tokens)
				if !res.ok {
					return Succeeded(values, res.Remaining)
				}
				// a match that consumes nothing would repeat forever
				if len(res.Remaining) >= len(tokens) {
					return Succeeded(values, tokens)
				}
				values = append(values, res.Parsed)
				tokens = res.Remaining
			}
		},
		label: p.label,
	}
}

// RepeatUntil matches p until end matches. The end is only probed, it is not
// consumed. Unlike RepeatStar a failure of p is returned as is, so an element
// that breaks halfway is reported instead of ending the repetition.
func RepeatUntil[K, T, E any](p Parser[K, T], end Parser[K, E]) Parser[K, []T] {
	return Parser[K, []T]{
		run: func(tokens []K, _ string) Result[K, []T] {
			values := []T{}
			for {
				stop := end.Parse(tokens)
				if stop.ok {
					return Succeeded(values, tokens)
				}
				res := p.Parse(tokens)
				if !res.ok {
					return recast[K, T, []T](res)
				}
				if len(res.Remaining) >= len(tokens) {
					return recast[K, E, []T](stop)
				}
				values = append(values, res.Parsed)
				tokens = res.Remaining
			}
		},
		label: p.label,
	}
}

// Opt makes p optional. When p fails the result is an absent value and no
// token is consumed.
func Opt[K, T any](p Parser[K, T]) Parser[K, Option[T]] {
	return Parser[K, Option[T]]{
		run: func(tokens []K, _ string) Result[K, Option[T]] {
			res := p.Parse(tokens)
			if !res.ok {
				return Succeeded(None[T](), tokens)
			}
			return Succeeded(Some(res.Parsed), res.Remaining)
		},
		label: p.label,
	}
}

// Choice runs both a and b on the same input and prefers the result of a.
// Both are always evaluated. When both fail the descriptions are joined.
func Choice[K, T any](a, b Parser[K, T]) Parser[K, T] {
	return Parser[K, T]{
		run: func(tokens []K, _ string) Result[K, T] {
			resA := a.Parse(tokens)
			resB := b.Parse(tokens)
			if resA.ok {
				return resA
			}
			if resB.ok {
				return resB
			}
			return failure[K, T](KindAggregate, resA.Description+" AND "+resB.Description, tokens)
		},
		label: a.label + " | " + b.label,
	}
}
