package seqmatch

// tri is a tri-state bool: unset means "inherit the Pattern's default at
// add-time".
type tri int

const (
	triInherit tri = iota
	triTrue
	triFalse
)

func (t tri) resolve(patternDefault bool) bool {
	switch t {
	case triTrue:
		return true
	case triFalse:
		return false
	default:
		return patternDefault
	}
}

// subOptions accumulates the modifier flags for one SubPattern as Option
// values are applied. A zero subOptions has Capture defaulting to true.
type subOptions struct {
	optional  bool
	repeat    bool
	capture   bool
	allowGaps tri
	gapBreak  Evaluator
	name      string
}

func defaultSubOptions() subOptions {
	return subOptions{capture: true}
}

// Option mutates a SubPattern's flags. Options compose: later options in a
// call win over earlier ones for the same field.
type Option func(*subOptions)

// Optional marks a sub-pattern as matchable zero times.
func Optional() Option { return func(o *subOptions) { o.optional = true } }

// Repeat marks a sub-pattern as matchable one or more (or, combined with
// Optional, zero or more) consecutive times.
func Repeat() Option { return func(o *subOptions) { o.repeat = true } }

// NoCapture excludes this sub-pattern's group from the returned Match.
func NoCapture() Option { return func(o *subOptions) { o.capture = false } }

// AllowGaps overrides whether non-matching elements between this
// sub-pattern and the previous one may be skipped. Absent this option, the
// sub-pattern inherits the Pattern's default at the time it is added.
func AllowGaps(v bool) Option {
	return func(o *subOptions) {
		if v {
			o.allowGaps = triTrue
		} else {
			o.allowGaps = triFalse
		}
	}
}

// GapBreak sets a predicate that, when true of the current value, forbids
// any further gap-skipping for this sub-pattern (an implicit boundary
// within an allow-gaps run).
func GapBreak(ev Evaluator) Option { return func(o *subOptions) { o.gapBreak = ev } }

// Name assigns an identifier this sub-pattern's group can later be
// retrieved by (Match.Named, Pattern.SetOptionsFor). Names must be
// unique within a Pattern.
func Name(name string) Option { return func(o *subOptions) { o.name = name } }
