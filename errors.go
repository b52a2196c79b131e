package parsec

import (
	"github.com/pkg/errors"
)

// FailureKind classifies a failed result
type FailureKind uint8

// Kinds of failure
const (
	KindNone      FailureKind = iota
	KindPredicate             // A token was available but did not satisfy the predicate
	KindExhausted             // No token left to test
	KindExplicit              // Produced by Fail
	KindAggregate             // Both branches of a Choice failed
)

var (
	ErrPredicate = errors.New("predicate not satisfied")
	ErrExhausted = errors.New("input exhausted")
	ErrExplicit  = errors.New("explicit failure")
	ErrAggregate = errors.New("no alternative matched")
)

var failureKindNames = map[FailureKind]string{
	KindNone:      "none",
	KindPredicate: "predicate",
	KindExhausted: "exhausted",
	KindExplicit:  "explicit",
	KindAggregate: "aggregate",
}

var failureKindErrors = map[FailureKind]error{
	KindPredicate: ErrPredicate,
	KindExhausted: ErrExhausted,
	KindExplicit:  ErrExplicit,
	KindAggregate: ErrAggregate,
}

func (k FailureKind) String() string {
	if s, ok := failureKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Error is the error form of a failed Result. It unwraps to one of ErrPredicate,
// ErrExhausted, ErrExplicit or ErrAggregate.
type Error struct {
	Kind        FailureKind
	Description string

	// Remaining is the number of tokens left at the point of failure.
	Remaining int
}

func (e *Error) Error() string {
	return e.Description
}

// Unwrap returns the sentinel error matching the failure kind
func (e *Error) Unwrap() error {
	return failureKindErrors[e.Kind]
}
