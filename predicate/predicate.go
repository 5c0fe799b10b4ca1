// Package predicate builds common Evaluators as standalone factory helpers
// (any, equal, not-equal, range, type, present, absent, regexp, set
// membership). It is a collaborator of the seqmatch engine, not part of it:
// predicate depends on nothing in the parent package, and the parent
// package's Pattern builder methods adapt predicate.Evaluator into
// seqmatch.Evaluator, keeping construction of reusable predicates separate
// from the core matching engine.
package predicate

import (
	"fmt"
	"reflect"

	"github.com/coregx/coregex"
)

// Context mirrors seqmatch.Context. It is a separate type so this package
// has no dependency on the parent one; see adapt in the parent package's
// pattern.go for the adapter that bridges the two.
type Context struct {
	Value    any
	Matched  []any
	Values   []any
	Position int
}

// Evaluator is a predicate over a Context.
type Evaluator func(Context) bool

// Any matches every value.
func Any() Evaluator {
	return func(Context) bool { return true }
}

// Eq matches values deeply equal to want.
func Eq(want any) Evaluator {
	return func(ctx Context) bool { return reflect.DeepEqual(ctx.Value, want) }
}

// Neq matches values not deeply equal to want.
func Neq(want any) Evaluator {
	return func(ctx Context) bool { return !reflect.DeepEqual(ctx.Value, want) }
}

// OfType matches values whose dynamic type is exactly T.
//
// Example:
//
//	p.Add(predicate.OfType[int]())
func OfType[T any]() Evaluator {
	return func(ctx Context) bool {
		_, ok := ctx.Value.(T)
		return ok
	}
}

// OfSameTypeAs matches values whose dynamic type matches sample's. It is
// the runtime-typed counterpart of OfType, useful when the type to check
// for is only known as a value at the Pattern builder call site, where a
// Go type parameter can't be supplied.
func OfSameTypeAs(sample any) Evaluator {
	want := reflect.TypeOf(sample)
	return func(ctx Context) bool {
		return ctx.Value != nil && reflect.TypeOf(ctx.Value) == want
	}
}

// Present matches values that are neither nil nor the empty string. It does
// not extend to other "empty" collection types such as a zero-length slice
// or map; those are present as far as this predicate is concerned.
func Present() Evaluator {
	return func(ctx Context) bool { return ctx.Value != nil && ctx.Value != "" }
}

// Absent matches values that are nil or the empty string.
func Absent() Evaluator {
	return func(ctx Context) bool { return ctx.Value == nil || ctx.Value == "" }
}

// In matches values within [lo, hi] inclusive. lo and hi must share a kind
// among signed integers, unsigned integers, floats, or strings; any other
// kind, or a kind mismatch between lo and hi, is reported as an error so
// the caller's Pattern builder can fail at construction time rather than
// silently never matching.
func In(lo, hi any) (Evaluator, error) {
	if _, err := compare(lo, hi); err != nil {
		return nil, err
	}
	return func(ctx Context) bool {
		loCmp, err1 := compare(ctx.Value, lo)
		hiCmp, err2 := compare(ctx.Value, hi)
		return err1 == nil && err2 == nil && loCmp >= 0 && hiCmp <= 0
	}, nil
}

// compare returns -1, 0, or 1 for a<b, a==b, a>b among ints, uints,
// floats, and strings, reflecting through any to reach the underlying
// kind. It errors when a and b don't share a comparable kind.
func compare(a, b any) (int, error) {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if !av.IsValid() || !bv.IsValid() {
		return 0, errNotOrdered(a, b)
	}
	switch {
	case isSignedInt(av.Kind()) && isSignedInt(bv.Kind()):
		return sign(av.Int() - bv.Int()), nil
	case isUnsignedInt(av.Kind()) && isUnsignedInt(bv.Kind()):
		switch {
		case av.Uint() < bv.Uint():
			return -1, nil
		case av.Uint() > bv.Uint():
			return 1, nil
		default:
			return 0, nil
		}
	case isFloat(av.Kind()) && isFloat(bv.Kind()):
		switch {
		case av.Float() < bv.Float():
			return -1, nil
		case av.Float() > bv.Float():
			return 1, nil
		default:
			return 0, nil
		}
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		switch {
		case av.String() < bv.String():
			return -1, nil
		case av.String() > bv.String():
			return 1, nil
		default:
			return 0, nil
		}
	default:
		return 0, errNotOrdered(a, b)
	}
}

func sign(n int64) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func isSignedInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsignedInt(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

type notOrderedError struct {
	a, b any
}

func (e *notOrderedError) Error() string {
	return fmt.Sprintf("predicate: %T and %T are not ordered-comparable", e.a, e.b)
}

func errNotOrdered(a, b any) error { return &notOrderedError{a: a, b: b} }

// Regexp compiles pattern with coregex — the same multi-engine regex
// library this repository's matching core was generalized from — and
// matches string values against it. Non-string values never match.
func Regexp(pattern string) (Evaluator, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(ctx Context) bool {
		s, ok := ctx.Value.(string)
		return ok && re.MatchString(s)
	}, nil
}

// InSet matches string values equal to one of values. Set membership, not
// substring search, is what this predicate tests, so a hash lookup decides
// it directly: an Aho-Corasick automaton reports the leftmost substring
// match in a haystack, which for a candidate like {"ab", "abc"} can return
// a match that ends before len(value) even though value is itself in the
// set, so it cannot stand in for exact equality here.
func InSet(values ...string) (Evaluator, error) {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(ctx Context) bool {
		s, ok := ctx.Value.(string)
		if !ok {
			return false
		}
		_, found := set[s]
		return found
	}, nil
}
