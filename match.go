package seqmatch

// Match is the result of a successful Pattern match: the captured groups
// (non-capture sub-patterns projected out), a name lookup table over
// those groups, and the position immediately after the matched span.
//
// A Match is immutable and safe to share across goroutines.
type Match struct {
	groups    [][]any
	names     map[string]int
	capturing []int // indices into groups that survived Capture filtering
	nextPos   int
}

func newMatch(p *Pattern, groups [][]any, nextPos int) *Match {
	m := &Match{
		groups:  groups,
		names:   map[string]int{},
		nextPos: nextPos,
	}
	for i, sub := range p.subpatterns {
		if !sub.Capture() {
			continue
		}
		m.capturing = append(m.capturing, i)
		if n := sub.Name(); n != "" {
			m.names[n] = len(m.capturing) - 1
		}
	}
	return m
}

// NextPos returns the index in the original sequence immediately after the
// matched span — the position a Scanner resumes its next Scan from.
func (m *Match) NextPos() int { return m.nextPos }

// Len returns the number of captured groups (sub-patterns with
// Capture() == true).
func (m *Match) Len() int { return len(m.capturing) }

// At returns the captured group at positional index i among the captured
// (non-excluded) groups, in sub-pattern order. Returns nil if i is out of
// range.
func (m *Match) At(i int) []any {
	if i < 0 || i >= len(m.capturing) {
		return nil
	}
	return m.groups[m.capturing[i]]
}

// Named returns the captured group assigned name via Name(), and whether
// it was found.
func (m *Match) Named(name string) ([]any, bool) {
	i, ok := m.names[name]
	if !ok {
		return nil, false
	}
	return m.At(i), true
}

// All returns every captured group, in sub-pattern order.
func (m *Match) All() [][]any {
	out := make([][]any, len(m.capturing))
	for i := range m.capturing {
		out[i] = m.At(i)
	}
	return out
}

// Flat flattens every captured group into a single slice, in sub-pattern
// and then match order.
func (m *Match) Flat() []any {
	var out []any
	for _, i := range m.capturing {
		out = append(out, m.groups[i]...)
	}
	return out
}

// First returns the first captured element across all captured groups, and
// whether one exists.
func (m *Match) First() (any, bool) {
	for _, i := range m.capturing {
		if len(m.groups[i]) > 0 {
			return m.groups[i][0], true
		}
	}
	return nil, false
}

// Last returns the last captured element across all captured groups, and
// whether one exists.
func (m *Match) Last() (any, bool) {
	for i := len(m.capturing) - 1; i >= 0; i-- {
		g := m.groups[m.capturing[i]]
		if len(g) > 0 {
			return g[len(g)-1], true
		}
	}
	return nil, false
}

// Match runs the Pattern against the start of values, returning the
// highest-scoring match or nil if values does not start with a match.
// Panics if a predicate panics, and panics with the error itself
// (ErrSearchBudgetExceeded, or a *engine.ConfigError for an invalid search
// budget) rather than silently truncating the search — see
// MatchWithPosition for the error-returning form.
func (p *Pattern) Match(values []any) *Match {
	m, _, err := p.MatchWithPosition(values)
	if err != nil {
		panic(err)
	}
	return m
}

// MatchWithPosition is Match plus the resumable next-position cursor, and
// returns ErrSearchBudgetExceeded instead of panicking when the search
// exceeds its configured budget.
func (p *Pattern) MatchWithPosition(values []any) (*Match, int, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, -1, err
	}
	m := engineMatcher(p.cfg)
	res, err := m.Run(p.engineSubPatterns(), values)
	if err != nil {
		return nil, -1, err
	}
	if res == nil {
		return nil, -1, nil
	}
	return newMatch(p, res.Groups, res.NextPos), res.NextPos, nil
}

// MatchOK is Match plus an explicit ok flag, for callers that prefer the
// comma-ok idiom over a nil check.
func (p *Pattern) MatchOK(values []any) (*Match, bool) {
	m := p.Match(values)
	return m, m != nil
}
