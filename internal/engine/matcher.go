package engine

import "errors"

// ErrSearchBudgetExceeded is returned by Matcher.Run when the search
// explores more states than Config.MaxExploredStates allows.
var ErrSearchBudgetExceeded = errors.New("engine: search budget exceeded")

// Matcher runs a backtracking search over a fixed list of SubPatterns. It
// holds no state between calls to Run and is safe for concurrent use as
// long as the SubPattern evaluators it is given are themselves safe for
// concurrent use.
type Matcher struct {
	cfg Config
}

// New builds a Matcher with the given Config. Config is assumed validated;
// callers that accept configuration from elsewhere should call
// Config.Validate first.
func New(cfg Config) *Matcher {
	return &Matcher{cfg: cfg}
}

// state is one node of the backtracking search: a (sub-pattern index,
// value index) pair plus the groups and flattened capture history needed
// to resume from it, and the bookkeeping (prevSP, prevMatched) the forward
// transition rules condition on.
//
// Invariant: len(groups) == sp+1 always. Every forward transition (advance
// on match, or skip an optional sub-pattern) pushes exactly one new, empty
// group for the sub-pattern it advances into; since every group is
// addressed by sub-pattern index and a sub-pattern is reachable from
// exactly one forward transition chain, an unconditional push produces
// correct indexing without tracking which transition triggered it (see
// DESIGN.md).
type state struct {
	sp          int
	vp          int
	groups      [][]any
	flat        []any
	prevSP      int // -1 means "no previous sub-pattern"
	prevMatched bool
}

type stateKey struct {
	sp, vp, prevSP int
	prevMatched    bool
}

// Run explores the state space for subs against values and returns the
// highest-scoring complete match, nil if no complete match exists (a
// plain, non-error result — "no match" is an ordinary outcome, not a
// failure), or the all-optional degenerate match when every sub-pattern is
// optional and no complete match exists.
func (m *Matcher) Run(subs []SubPattern, values []any) (*Result, error) {
	n := len(subs)
	if n == 0 {
		return &Result{NextPos: 0}, nil
	}

	lastMandatory := -1
	for i := range subs {
		if !subs[i].Optional {
			lastMandatory = i
		}
	}
	allOptional := lastMandatory == -1

	init := state{sp: 0, vp: 0, groups: [][]any{nil}, prevSP: -1}
	queue := []state{init}
	seen := map[stateKey]int{}

	enqueue := func(s state) {
		k := stateKey{s.sp, s.vp, s.prevSP, s.prevMatched}
		fl := len(s.flat)
		if prev, ok := seen[k]; ok && prev >= fl {
			return
		}
		seen[k] = fl
		queue = append(queue, s)
	}

	var (
		bestFound   bool
		bestGroups  [][]any
		bestNextPos int
		bestFlatLen int
	)

	explored := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		explored++
		if explored > m.cfg.MaxExploredStates {
			return nil, ErrSearchBudgetExceeded
		}

		if cur.vp >= len(values) {
			continue
		}

		sub := &subs[cur.sp]
		v := values[cur.vp]
		ctx := Context{Value: v, Matched: cur.flat, Values: values, Position: cur.vp}

		matched := sub.matched(ctx)
		broke := sub.broke(ctx)
		gaps := sub.AllowGaps && !broke
		prevSelf := cur.prevSP == cur.sp || cur.prevSP == -1

		var appended [][]any
		if matched {
			appended = cloneGroups(cur.groups)
			appended[cur.sp] = append(append([]any{}, appended[cur.sp]...), v)
		}

		if matched && cur.sp >= lastMandatory {
			nextPos := cur.vp + 1
			flatLen := sumLens(appended)
			if !bestFound || nextPos > bestNextPos || (nextPos == bestNextPos && flatLen > bestFlatLen) {
				bestFound = true
				bestNextPos = nextPos
				bestFlatLen = flatLen
				bestGroups = padGroups(appended, n)
			}
		}

		if matched && sub.Repeat {
			enqueue(state{
				sp: cur.sp, vp: cur.vp + 1,
				groups: appended, flat: appendFlat(cur.flat, v),
				prevSP: cur.sp, prevMatched: true,
			})
		}

		if !matched && gaps {
			enqueue(state{
				sp: cur.sp, vp: cur.vp + 1,
				groups: cur.groups, flat: cur.flat,
				prevSP: cur.prevSP, prevMatched: true,
			})
		}

		if (matched || gaps) && cur.sp != n-1 && !(sub.Optional && !matched) {
			ng := appended
			nf := cur.flat
			if matched {
				nf = appendFlat(cur.flat, v)
			} else {
				ng = cloneGroups(cur.groups)
			}
			ng = append(ng, nil)
			enqueue(state{
				sp: cur.sp + 1, vp: cur.vp + 1,
				groups: ng, flat: nf,
				prevSP: cur.sp, prevMatched: true,
			})
		}

		if sub.Optional && cur.sp != n-1 && !(prevSelf && cur.prevMatched) {
			ng := append(cloneGroups(cur.groups), nil)
			enqueue(state{
				sp: cur.sp + 1, vp: cur.vp,
				groups: ng, flat: cur.flat,
				prevSP: cur.sp, prevMatched: false,
			})
		}
	}

	if bestFound {
		return &Result{Groups: bestGroups, NextPos: bestNextPos}, nil
	}
	if allOptional {
		return &Result{Groups: padGroups(nil, n), NextPos: 0}, nil
	}
	return nil, nil
}

func cloneGroups(g [][]any) [][]any {
	ng := make([][]any, len(g))
	copy(ng, g)
	return ng
}

func appendFlat(flat []any, v any) []any {
	return append(append([]any{}, flat...), v)
}

func sumLens(groups [][]any) int {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	return total
}

func padGroups(g [][]any, n int) [][]any {
	ng := make([][]any, n)
	copy(ng, g)
	return ng
}
