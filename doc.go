// Package seqmatch provides a sequence pattern matcher for Go.
//
// seqmatch matches ordered patterns of user-defined predicates against
// arbitrary heterogeneous sequences of values. It is analogous to a regular
// expression engine, but where each atom is an arbitrary predicate over a
// Go value instead of a byte or rune, and where a match returns captured
// groups of elements instead of a substring.
//
// Basic usage:
//
//	p := seqmatch.NewPattern().
//		ValueEq(1).
//		ValueEqOpt(2).
//		ZeroOrMoreValueEq(3).
//		LeastOneValueEq(4)
//
//	m := p.Match([]any{1, 2, 3, 4, 4, 4, 4, 5})
//	if m != nil {
//		fmt.Println(m.At(3)) // [4 4 4 4]
//	}
//
// Repeated application across a sequence is done with a Scanner:
//
//	sc := seqmatch.NewScanner(p, []any{1, 2, 3, 4, 4, 4, 4, 5})
//	for !sc.EOV() {
//		m := sc.ScanUntil()
//		if m == nil {
//			break
//		}
//		fmt.Println(m.Flat())
//	}
//
// Predicates are built with the sibling predicate package, or supplied
// directly as an Evaluator:
//
//	p.Add(seqmatch.OfValue(func(v any) bool {
//		n, ok := v.(int)
//		return ok && n > 0
//	}))
//
// seqmatch is a synchronous, single-threaded library: Match runs to
// completion before returning, performs no I/O, and makes no attempt at
// cancellation. Patterns are immutable once matching begins; a Scanner owns
// mutable cursor state and is not safe for concurrent use.
package seqmatch
