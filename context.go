package seqmatch

import (
	"fmt"
	"reflect"
)

// Context is the read-only view a predicate gets of the search in progress.
// It collapses the candidate value, the values matched so far, the full
// input, and the current position into a single argument, with shorter-arity
// predicates built on top via adapters (OfValue, OfValueAndMatched, ...).
// FromFunc is the one exception: it accepts an untyped func and calls it
// through reflection.
type Context struct {
	// Value is the candidate element under test.
	Value any

	// Matched is every value captured so far, in match order. Do not
	// mutate; it is shared across backtracking branches.
	Matched []any

	// Values is the full input sequence being matched against.
	Values []any

	// Position is the index of Value within Values.
	Position int
}

// Evaluator is a single predicate over a Context. SubPattern.Evaluator and
// SubPattern.GapBreak are both Evaluators.
type Evaluator func(Context) bool

// OfValue adapts a 1-arity predicate (just the candidate value) to an
// Evaluator.
func OfValue(fn func(any) bool) Evaluator {
	return func(ctx Context) bool { return fn(ctx.Value) }
}

// OfValueAndMatched adapts a 2-arity predicate to an Evaluator.
func OfValueAndMatched(fn func(any, []any) bool) Evaluator {
	return func(ctx Context) bool { return fn(ctx.Value, ctx.Matched) }
}

// OfValueMatchedAndAll adapts a 3-arity predicate to an Evaluator.
func OfValueMatchedAndAll(fn func(any, []any, []any) bool) Evaluator {
	return func(ctx Context) bool { return fn(ctx.Value, ctx.Matched, ctx.Values) }
}

// OfFull adapts a 4-arity predicate to an Evaluator, passing every field of
// the Context in the order Value, Matched, Values, Position.
func OfFull(fn func(any, []any, []any, int) bool) Evaluator {
	return func(ctx Context) bool { return fn(ctx.Value, ctx.Matched, ctx.Values, ctx.Position) }
}

// FromFunc builds an Evaluator from an arbitrary Go func value by
// reflecting on its declared arity and supplying only as many of
// (value, matched, values, position) as it declares. fn must be a func of
// 1 to 4 parameters, each assignable from any/[]any/[]any/int in that
// order, and must return a single bool. An arity of 0 or more than 4
// parameters fails with InvalidPredicateArityError.
func FromFunc(fn any) (Evaluator, error) {
	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: not a function", ErrInvalidArgument)
	}
	n := t.NumIn()
	if n < 1 || n > 4 {
		return nil, &InvalidPredicateArityError{Arity: n}
	}
	if t.NumOut() != 1 || t.Out(0).Kind() != reflect.Bool {
		return nil, fmt.Errorf("%w: predicate must return a single bool", ErrInvalidArgument)
	}

	return func(ctx Context) bool {
		var args []any
		switch n {
		case 1:
			args = []any{ctx.Value}
		case 2:
			args = []any{ctx.Value, ctx.Matched}
		case 3:
			args = []any{ctx.Value, ctx.Matched, ctx.Values}
		case 4:
			args = []any{ctx.Value, ctx.Matched, ctx.Values, ctx.Position}
		}
		in := make([]reflect.Value, n)
		for i, a := range args {
			if a == nil {
				in[i] = reflect.Zero(t.In(i))
				continue
			}
			in[i] = reflect.ValueOf(a)
		}
		out := v.Call(in)
		return out[0].Bool()
	}, nil
}

// InvalidPredicateArityError is returned by FromFunc when a reflected
// predicate declares zero or more than four parameters.
type InvalidPredicateArityError struct {
	Arity int
}

func (e *InvalidPredicateArityError) Error() string {
	return fmt.Sprintf("seqmatch: predicate has invalid arity %d (want 1..4)", e.Arity)
}
