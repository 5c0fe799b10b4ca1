package seqmatch

import (
	"fmt"

	"github.com/coregx/seqmatch/internal/engine"
	"github.com/coregx/seqmatch/predicate"
)

// Pattern is an ordered, immutable-after-construction list of SubPatterns
// plus the per-builder default-options stack and name table. Build one
// with NewPattern and the fluent methods below, then call Match,
// MatchWithPosition, or MatchOK against a sequence, or drive a Scanner
// with it repeatedly.
//
// Builder methods panic on misuse (duplicate names, unresolvable
// SetOptionsFor selectors, a nil evaluator, a regex pattern that fails to
// compile) rather than threading a
// construction error through every call in the chain — the same contract
// coregex.MustCompile gives its callers, appropriate here because a
// Pattern is meant to be built once, typically at package init time.
type Pattern struct {
	subpatterns      []*SubPattern
	nameIndex        map[string]int
	lastMandatoryIdx int
	defaultAllowGaps bool
	defaultsStack    [][]Option
	cfg              engine.Config
}

// NewPattern builds an empty Pattern. Sub-patterns default to
// allow_gaps=false unless DefaultAllowGaps(true) is called first or an
// individual sub-pattern sets AllowGaps explicitly.
func NewPattern() *Pattern {
	return &Pattern{
		nameIndex:        map[string]int{},
		lastMandatoryIdx: -1,
		cfg:              engine.DefaultConfig(),
	}
}

// DefaultAllowGaps sets the Pattern-level default for AllowGaps, applied to
// every sub-pattern added from this point on that doesn't set AllowGaps
// explicitly. Changing it after sub-patterns have already been added does
// not retroactively change them: the default is snapshotted into the
// sub-pattern when it is added, not re-read when it is matched.
func (p *Pattern) DefaultAllowGaps(v bool) *Pattern {
	p.defaultAllowGaps = v
	return p
}

// WithSearchBudget overrides the backtracking search's MaxExploredStates.
func (p *Pattern) WithSearchBudget(maxStates int) *Pattern {
	p.cfg.MaxExploredStates = maxStates
	return p
}

// WithOptions pushes a scope of default Options applied to every
// sub-pattern added inside fn, on top of any already-active scopes, then
// restores the previous scope when fn returns, implemented as an explicit
// stack of scopes rather than relying on ambient dynamic state.
func (p *Pattern) WithOptions(opts []Option, fn func(*Pattern)) *Pattern {
	p.defaultsStack = append(p.defaultsStack, opts)
	fn(p)
	p.defaultsStack = p.defaultsStack[:len(p.defaultsStack)-1]
	return p
}

// Add appends a SubPattern built from a raw Evaluator, for callers whose
// predicate doesn't fit one of the named factory methods.
func (p *Pattern) Add(ev Evaluator, opts ...Option) *Pattern {
	if ev == nil {
		panic(fmt.Errorf("%w: nil evaluator", ErrInvalidArgument))
	}

	o := defaultSubOptions()
	for _, layer := range p.defaultsStack {
		for _, opt := range layer {
			opt(&o)
		}
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.name != "" {
		if _, exists := p.nameIndex[o.name]; exists {
			panic(&DuplicateNameError{Name: o.name})
		}
	}

	idx := len(p.subpatterns)
	sub := &SubPattern{
		evaluator:         ev,
		opts:              o,
		allowGapsResolved: o.allowGaps.resolve(p.defaultAllowGaps),
	}

	p.subpatterns = append(p.subpatterns, sub)
	if o.name != "" {
		p.nameIndex[o.name] = idx
	}
	if !o.optional {
		p.lastMandatoryIdx = idx
	}
	return p
}

// IndexRange selects a contiguous span of sub-patterns [Start, End) by
// position, for SetOptionsFor.
type IndexRange struct {
	Start, End int
}

// SetOptionsFor retroactively replaces the Options applied to one or more
// already-added sub-patterns, addressed by any mix of int index, name
// string, or IndexRange. AllowGaps is re-resolved against the Pattern's
// CURRENT default, not the one in effect when the sub-pattern was
// originally added. Panics with *UnknownSelectorError if a selector has an
// unsupported type, an out-of-range index, or an unrecognized name.
func (p *Pattern) SetOptionsFor(ids []any, opts ...Option) *Pattern {
	for _, id := range ids {
		for _, idx := range p.resolveSelector(id) {
			p.setOptionsAt(idx, opts)
		}
	}
	return p
}

func (p *Pattern) resolveSelector(id any) []int {
	switch v := id.(type) {
	case int:
		if v < 0 || v >= len(p.subpatterns) {
			panic(&UnknownSelectorError{Selector: id})
		}
		return []int{v}
	case string:
		idx, ok := p.nameIndex[v]
		if !ok {
			panic(&UnknownSelectorError{Selector: id})
		}
		return []int{idx}
	case IndexRange:
		if v.Start < 0 || v.End > len(p.subpatterns) || v.Start > v.End {
			panic(&UnknownSelectorError{Selector: id})
		}
		out := make([]int, 0, v.End-v.Start)
		for i := v.Start; i < v.End; i++ {
			out = append(out, i)
		}
		return out
	default:
		panic(&UnknownSelectorError{Selector: id})
	}
}

func (p *Pattern) setOptionsAt(idx int, opts []Option) {
	sub := p.subpatterns[idx]
	o := defaultSubOptions()
	o.name = sub.opts.name
	for _, opt := range opts {
		opt(&o)
	}
	sub.opts = o
	sub.allowGapsResolved = o.allowGaps.resolve(p.defaultAllowGaps)
	if !o.optional {
		p.lastMandatoryIdx = idx
	}
}

// engineSubPatterns lowers every stored SubPattern to its internal/engine
// form, in order, for handoff to the Matcher.
func (p *Pattern) engineSubPatterns() []engine.SubPattern {
	out := make([]engine.SubPattern, len(p.subpatterns))
	for i, s := range p.subpatterns {
		out[i] = s.toEngine()
	}
	return out
}

func engineMatcher(cfg engine.Config) *engine.Matcher {
	return engine.New(cfg)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func adapt(ev predicate.Evaluator) Evaluator {
	return func(c Context) bool { return ev(predicate.Context(c)) }
}

// --- base factory predicates -------------------------------------------

// Any matches every value.
func (p *Pattern) Any(opts ...Option) *Pattern { return p.Add(adapt(predicate.Any()), opts...) }

// AnyOpt matches every value, optionally (matches zero elements too).
func (p *Pattern) AnyOpt(opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Any()), append(opts, Optional())...)
}

// LeastOneAny matches one or more consecutive values.
func (p *Pattern) LeastOneAny(opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Any()), append(opts, Repeat())...)
}

// ZeroOrMoreAny matches zero or more consecutive values.
func (p *Pattern) ZeroOrMoreAny(opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Any()), append(opts, Optional(), Repeat())...)
}

// ValueEq matches values deeply equal to v.
func (p *Pattern) ValueEq(v any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Eq(v)), opts...)
}

// ValueEqOpt matches a value deeply equal to v, optionally.
func (p *Pattern) ValueEqOpt(v any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Eq(v)), append(opts, Optional())...)
}

// LeastOneValueEq matches one or more consecutive values equal to v.
func (p *Pattern) LeastOneValueEq(v any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Eq(v)), append(opts, Repeat())...)
}

// ZeroOrMoreValueEq matches zero or more consecutive values equal to v.
func (p *Pattern) ZeroOrMoreValueEq(v any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Eq(v)), append(opts, Optional(), Repeat())...)
}

// ValueNeq matches values not deeply equal to v.
func (p *Pattern) ValueNeq(v any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Neq(v)), opts...)
}

// ValueNeqOpt matches a value not equal to v, optionally.
func (p *Pattern) ValueNeqOpt(v any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Neq(v)), append(opts, Optional())...)
}

// LeastOneValueNeq matches one or more consecutive values not equal to v.
func (p *Pattern) LeastOneValueNeq(v any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Neq(v)), append(opts, Repeat())...)
}

// ZeroOrMoreValueNeq matches zero or more consecutive values not equal to v.
func (p *Pattern) ZeroOrMoreValueNeq(v any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Neq(v)), append(opts, Optional(), Repeat())...)
}

// ValueIn matches values within [lo, hi] inclusive; see predicate.In for
// the supported kinds. Panics if lo and hi are not ordered-comparable.
func (p *Pattern) ValueIn(lo, hi any, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.In(lo, hi))), opts...)
}

// ValueInOpt matches a value within [lo, hi], optionally.
func (p *Pattern) ValueInOpt(lo, hi any, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.In(lo, hi))), append(opts, Optional())...)
}

// LeastOneValueIn matches one or more consecutive values within [lo, hi].
func (p *Pattern) LeastOneValueIn(lo, hi any, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.In(lo, hi))), append(opts, Repeat())...)
}

// ZeroOrMoreValueIn matches zero or more consecutive values within [lo, hi].
func (p *Pattern) ZeroOrMoreValueIn(lo, hi any, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.In(lo, hi))), append(opts, Optional(), Repeat())...)
}

// ValueOf matches values whose dynamic type matches sample's.
func (p *Pattern) ValueOf(sample any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.OfSameTypeAs(sample)), opts...)
}

// ValueOfOpt matches a value of sample's type, optionally.
func (p *Pattern) ValueOfOpt(sample any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.OfSameTypeAs(sample)), append(opts, Optional())...)
}

// LeastOneValueOf matches one or more consecutive values of sample's type.
func (p *Pattern) LeastOneValueOf(sample any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.OfSameTypeAs(sample)), append(opts, Repeat())...)
}

// ZeroOrMoreValueOf matches zero or more consecutive values of sample's type.
func (p *Pattern) ZeroOrMoreValueOf(sample any, opts ...Option) *Pattern {
	return p.Add(adapt(predicate.OfSameTypeAs(sample)), append(opts, Optional(), Repeat())...)
}

// Present matches values that are neither nil nor the empty string.
func (p *Pattern) Present(opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Present()), opts...)
}

// PresentOpt matches a present value, optionally.
func (p *Pattern) PresentOpt(opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Present()), append(opts, Optional())...)
}

// LeastOnePresent matches one or more consecutive present values.
func (p *Pattern) LeastOnePresent(opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Present()), append(opts, Repeat())...)
}

// ZeroOrMorePresent matches zero or more consecutive present values.
func (p *Pattern) ZeroOrMorePresent(opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Present()), append(opts, Optional(), Repeat())...)
}

// Absent matches values that are nil or the empty string.
func (p *Pattern) Absent(opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Absent()), opts...)
}

// AbsentOpt matches an absent value, optionally.
func (p *Pattern) AbsentOpt(opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Absent()), append(opts, Optional())...)
}

// LeastOneAbsent matches one or more consecutive absent values.
func (p *Pattern) LeastOneAbsent(opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Absent()), append(opts, Repeat())...)
}

// ZeroOrMoreAbsent matches zero or more consecutive absent values.
func (p *Pattern) ZeroOrMoreAbsent(opts ...Option) *Pattern {
	return p.Add(adapt(predicate.Absent()), append(opts, Optional(), Repeat())...)
}

// MatchRegexp matches string values against rx, compiled once with
// coregex. Panics if rx fails to compile.
func (p *Pattern) MatchRegexp(rx string, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.Regexp(rx))), opts...)
}

// MatchRegexpOpt matches a string value against rx, optionally.
func (p *Pattern) MatchRegexpOpt(rx string, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.Regexp(rx))), append(opts, Optional())...)
}

// LeastOneMatchRegexp matches one or more consecutive values against rx.
func (p *Pattern) LeastOneMatchRegexp(rx string, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.Regexp(rx))), append(opts, Repeat())...)
}

// ZeroOrMoreMatchRegexp matches zero or more consecutive values against rx.
func (p *Pattern) ZeroOrMoreMatchRegexp(rx string, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.Regexp(rx))), append(opts, Optional(), Repeat())...)
}

// ValueInSet matches string values equal to one of values, via a set built
// once at construction time.
func (p *Pattern) ValueInSet(values []string, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.InSet(values...))), opts...)
}

// ValueInSetOpt matches a value in the set, optionally.
func (p *Pattern) ValueInSetOpt(values []string, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.InSet(values...))), append(opts, Optional())...)
}

// LeastOneValueInSet matches one or more consecutive values in the set.
func (p *Pattern) LeastOneValueInSet(values []string, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.InSet(values...))), append(opts, Repeat())...)
}

// ZeroOrMoreValueInSet matches zero or more consecutive values in the set.
func (p *Pattern) ZeroOrMoreValueInSet(values []string, opts ...Option) *Pattern {
	return p.Add(adapt(must(predicate.InSet(values...))), append(opts, Optional(), Repeat())...)
}
