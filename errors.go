package seqmatch

import (
	"errors"
	"fmt"

	"github.com/coregx/seqmatch/internal/engine"
)

// Sentinel errors used by seqmatch operations. Builder-time misuse
// (duplicate names, unresolvable SetOptionsFor selectors, a nil evaluator)
// panics immediately instead of returning an error — see
// DuplicateNameError and UnknownSelectorError.
var (
	// ErrInvalidArgument is returned, wrapped, by FromFunc when its argument
	// is not a func or does not return a single bool; Pattern.Add panics
	// with it, wrapped, when given a nil Evaluator.
	ErrInvalidArgument = errors.New("seqmatch: invalid argument")

	// ErrSearchBudgetExceeded indicates the backtracking search explored
	// more states than internal/engine.Config.MaxExploredStates allows.
	// This guards against pathological patterns the way coregex's
	// BoundedBacktracker guards against oversized visited-state vectors.
	ErrSearchBudgetExceeded = engine.ErrSearchBudgetExceeded
)

// DuplicateNameError is raised when a Pattern gains two SubPatterns sharing
// the same name. Pattern builder methods panic with this error; it is
// exported so that callers wrapping construction in recover() can identify
// the failure.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return "seqmatch: duplicate sub-pattern name " + quote(e.Name)
}

// UnknownSelectorError is raised by SetOptionsFor when one of its ids is
// neither an int, a string, nor an IndexRange, or when a string id names no
// sub-pattern, or an int/IndexRange id is out of bounds. The original
// design's "UnknownOption" outcome (an option key outside the recognized
// set) has no Go analogue under the functional-options design used here:
// Options are typed func values, so the compiler rejects an unrecognized
// option before the program runs; what remains fallible at runtime is only
// the selector addressing which sub-pattern(s) to retarget.
type UnknownSelectorError struct {
	Selector any
}

func (e *UnknownSelectorError) Error() string {
	return fmt.Sprintf("seqmatch: unknown sub-pattern selector %v", e.Selector)
}

func quote(s string) string {
	return "\"" + s + "\""
}
