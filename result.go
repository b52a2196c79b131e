package parsec

import (
	"fmt"
)

// Result represents the outcome of running a parser: either a success that
// carries the parsed value or a failure that carries a description. In both
// cases Remaining is the part of the input that was not consumed.
type Result[K, T any] struct {
	Parsed      T
	Description string
	Remaining   []K

	ok   bool
	kind FailureKind
}

// Succeeded creates a successful result
func Succeeded[K, T any](parsed T, remaining []K) Result[K, T] {
	return Result[K, T]{
		Parsed:    parsed,
		Remaining: remaining,
		ok:        true,
	}
}

// Failed creates a failed result with the given description
func Failed[K, T any](description string, remaining []K) Result[K, T] {
	return failure[K, T](KindExplicit, description, remaining)
}

func failure[K, T any](kind FailureKind, description string, remaining []K) Result[K, T] {
	return Result[K, T]{
		Description: description,
		Remaining:   remaining,
		kind:        kind,
	}
}

// recast moves a failure into a result of another parsed type, keeping its
// description, remaining tokens and kind.
func recast[K, T, U any](res Result[K, T]) Result[K, U] {
	return failure[K, U](res.kind, res.Description, res.Remaining)
}

// OK returns true if the result is a success
func (r Result[K, T]) OK() bool {
	return r.ok
}

// Kind returns the kind of failure, or KindNone for a success
func (r Result[K, T]) Kind() FailureKind {
	if r.ok {
		return KindNone
	}
	return r.kind
}

// Err returns nil for a success and an *Error describing the failure
// otherwise.
func (r Result[K, T]) Err() error {
	if r.ok {
		return nil
	}
	return &Error{
		Kind:        r.kind,
		Description: r.Description,
		Remaining:   len(r.Remaining),
	}
}

func (r Result[K, T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v, %v)", r.Parsed, r.Remaining)
	}
	return fmt.Sprintf("Failure(%q, %v)", r.Description, r.Remaining)
}
