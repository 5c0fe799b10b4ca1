package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func eqSub(want any, flags ...func(*SubPattern)) SubPattern {
	s := SubPattern{
		Capture: true,
		Evaluator: func(c Context) bool {
			return c.Value == want
		},
	}
	for _, f := range flags {
		f(&s)
	}
	return s
}

func optional(s *SubPattern)  { s.Optional = true }
func repeat(s *SubPattern)    { s.Repeat = true }
func noCapture(s *SubPattern) { s.Capture = false }
func allowGaps(s *SubPattern) { s.AllowGaps = true }

func anySub(flags ...func(*SubPattern)) SubPattern {
	s := SubPattern{Capture: true, Evaluator: func(Context) bool { return true }}
	for _, f := range flags {
		f(&s)
	}
	return s
}

func values(vs ...any) []any { return vs }

func TestMatcher_Scenario1(t *testing.T) {
	subs := []SubPattern{
		eqSub(1),
		eqSub(2, optional),
		eqSub(3, optional, repeat),
		eqSub(4, repeat),
	}
	m := New(DefaultConfig())

	res, err := m.Run(subs, values(1, 2, 3, 4, 4, 4, 4, 5))
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, [][]any{{1}, {2}, {3}, {4, 4, 4, 4}}, res.Groups)
	require.Equal(t, 7, res.NextPos)

	res, err = m.Run(subs, values(1, 3, 4, 4, 4, 4))
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, [][]any{{1}, nil, {3}, {4, 4, 4, 4}}, res.Groups)
	require.Equal(t, 6, res.NextPos)

	res, err = m.Run(subs, values(1, 2, 2, 3, 4, 4, 4, 4))
	require.NoError(t, err)
	require.Nil(t, res)

	res, err = m.Run(subs, values(1, 4))
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, [][]any{{1}, nil, nil, {4}}, res.Groups)
	require.Equal(t, 2, res.NextPos)
}

func TestMatcher_Scenario2_GreedyAny(t *testing.T) {
	subs := []SubPattern{
		eqSub("a"),
		anySub(repeat),
		eqSub("d"),
	}
	m := New(DefaultConfig())
	res, err := m.Run(subs, values("a", "b", "c", "d", "e", "d"))
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, [][]any{{"a"}, {"b", "c", "d", "e"}, {"d"}}, res.Groups)
	require.Equal(t, 6, res.NextPos)
}

func TestMatcher_Scenario4_NoCapture(t *testing.T) {
	subs := []SubPattern{
		eqSub(1),
		eqSub(2, repeat, noCapture),
		eqSub(3),
	}
	m := New(DefaultConfig())

	res, err := m.Run(subs, values(1, 2, 2, 3))
	require.NoError(t, err)
	require.NotNil(t, res)
	// Groups come back uncaptured-included; projection happens above the
	// engine boundary. Non-capture groups still occupy their slot here.
	require.Equal(t, [][]any{{1}, {2, 2}, {3}}, res.Groups)
	require.Equal(t, 4, res.NextPos)

	res, err = m.Run(subs, values(1, 4, 3))
	require.NoError(t, err)
	require.Nil(t, res)
}

func TestMatcher_AllOptionalDegenerateMatch(t *testing.T) {
	subs := []SubPattern{
		eqSub(1, optional),
		eqSub(2, optional),
	}
	m := New(DefaultConfig())
	res, err := m.Run(subs, values(9, 9, 9))
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, [][]any{nil, nil}, res.Groups)
	require.Equal(t, 0, res.NextPos)
}

func TestMatcher_NoSubPatternsMatchesTrivially(t *testing.T) {
	m := New(DefaultConfig())
	res, err := m.Run(nil, values(1, 2, 3))
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, 0, res.NextPos)
}

func TestMatcher_GapBreak(t *testing.T) {
	isBoundary := func(v any) bool {
		s, ok := v.(string)
		return ok && (s == "move_input" || s == "perform")
	}
	subs := []SubPattern{
		func() SubPattern {
			s := eqSub("set_flag", optional, repeat, allowGaps)
			s.GapBreak = func(c Context) bool { return isBoundary(c.Value) }
			return s
		}(),
		eqSub("move_input"),
		eqSub("set_flag", optional, repeat),
	}
	m := New(DefaultConfig())
	res, err := m.Run(subs, values("set_flag", "x", "set_flag", "move_input", "set_flag"))
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, [][]any{{"set_flag", "set_flag"}, {"move_input"}, {"set_flag"}}, res.Groups)
}

func TestMatcher_SearchBudgetExceeded(t *testing.T) {
	subs := []SubPattern{
		anySub(optional, repeat),
		anySub(optional, repeat),
		anySub(optional, repeat),
	}
	vs := make([]any, 2000)
	for i := range vs {
		vs[i] = i
	}
	cfg := DefaultConfig()
	cfg.MaxExploredStates = 10
	m := New(cfg)
	_, err := m.Run(subs, vs)
	require.ErrorIs(t, err, ErrSearchBudgetExceeded)
}
