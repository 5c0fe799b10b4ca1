package seqmatch

import "github.com/coregx/seqmatch/internal/engine"

// SubPattern is one atom of a Pattern: a predicate plus its match-modifier
// flags. SubPatterns are created by Pattern's builder methods; the only
// supported post-construction mutation is Pattern.SetOptionsFor, which
// rebuilds a SubPattern's flags in place.
type SubPattern struct {
	evaluator Evaluator
	opts      subOptions

	// allowGapsResolved is the tri-state AllowGaps option snapshotted
	// against the Pattern's global default at add-time: changing the
	// Pattern's default later does not affect sub-patterns already added.
	allowGapsResolved bool
}

// Optional reports whether this sub-pattern may match zero elements.
func (s *SubPattern) Optional() bool { return s.opts.optional }

// Repeat reports whether this sub-pattern may match more than one element.
func (s *SubPattern) Repeat() bool { return s.opts.repeat }

// Capture reports whether this sub-pattern's group appears in the result.
func (s *SubPattern) Capture() bool { return s.opts.capture }

// Name returns the sub-pattern's name, or "" if unnamed.
func (s *SubPattern) Name() string { return s.opts.name }

// AllowGaps reports whether non-matching elements may be skipped before
// this sub-pattern matches, resolved against the Pattern's default at the
// time the sub-pattern was added, or at its last Pattern.SetOptionsFor.
func (s *SubPattern) AllowGaps() bool { return s.allowGapsResolved }

// toEngine lowers s into the engine package's own SubPattern
// representation, adapting Evaluator/Context to their internal/engine
// counterparts so the root package stays the only one that knows both
// type systems exist.
func (s *SubPattern) toEngine() engine.SubPattern {
	ev := s.evaluator
	sub := engine.SubPattern{
		Evaluator: func(c engine.Context) bool { return ev(Context(c)) },
		Optional:  s.opts.optional,
		Repeat:    s.opts.repeat,
		Capture:   s.opts.capture,
		AllowGaps: s.allowGapsResolved,
		Name:      s.opts.name,
	}
	if s.opts.gapBreak != nil {
		gb := s.opts.gapBreak
		sub.GapBreak = func(c engine.Context) bool { return gb(Context(c)) }
	}
	return sub
}
