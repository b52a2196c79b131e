// Package parsec is a generic parser-combinator engine.
//
// It parses a fully materialized sequence of tokens of any type K by composing
// small parsers into bigger ones. It does no lexing and knows nothing about
// the source of the tokens: see the lexer and parser subpackages for an
// s-expression reader built on top of it.
//
// # Results
//
// Running a Parser[K, T] produces a Result[K, T], which is either a success
// holding the parsed value or a failure holding a human-readable description.
// Both carry the remaining, unconsumed tokens. A failure reports the tokens the
// failing step was given, so it never hides consumed input:
//
//	res := parsec.Parse(parsec.Const(42), []int{42, 1})
//	res.OK()        // true
//	res.Parsed      // 42
//	res.Remaining   // [1]
//
// Failures are values, not errors; Result.Err converts one into an error that
// matches ErrPredicate, ErrExhausted, ErrExplicit or ErrAggregate with
// errors.Is.
//
// # Combinators
//
// Primitives build a parser from plain values: Pure, Success, PureResult,
// Fail, Test, Const and ConstFunc.
//
// Transforms change or chain a parser: Map, FlatMap, Flatten, MapCase,
// FlatMapCase, Label and Lazy.
//
// Structural combinators compose parsers: Sequence, Repeat, RepeatStar,
// RepeatUntil, Opt, Keep and Choice. The repetitions run as loops, so long
// inputs do not grow the stack.
//
// Choice always evaluates both alternatives, the first one first, and prefers
// the first one when both match.
//
// Trace wraps a parser so that every run is logged to a *zap.Logger.
//
// Parsers hold no state between runs and can be shared between goroutines as
// long as the predicates and functions given to them are free of side effects.
package parsec
