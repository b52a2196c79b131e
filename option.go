package parsec

import (
	"fmt"
)

// Option is a value that may be absent, as produced by Opt.
type Option[T any] struct {
	Value   T
	Present bool
}

// Some returns an option holding v
func Some[T any](v T) Option[T] {
	return Option[T]{Value: v, Present: true}
}

// None returns an empty option
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// OrElse returns the value if present, or def otherwise
func (o Option[T]) OrElse(def T) T {
	if o.Present {
		return o.Value
	}
	return def
}

func (o Option[T]) String() string {
	if !o.Present {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.Value)
}
