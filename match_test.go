package seqmatch

import (
	"reflect"
	"testing"
)

func TestMatch_Named(t *testing.T) {
	p := NewPattern().
		ValueEq(1, Name("head")).
		LeastOneAny(Name("body")).
		ValueEq(9, Name("tail"))

	m := p.Match([]any{1, 2, 3, 9})
	if m == nil {
		t.Fatal("expected a match")
	}

	if g, ok := m.Named("body"); !ok || !reflect.DeepEqual(g, []any{2, 3}) {
		t.Errorf("Named(body) = %v, %v", g, ok)
	}
	if _, ok := m.Named("nope"); ok {
		t.Error("expected Named(nope) to report not found")
	}
}

func TestMatch_FlatFirstLast(t *testing.T) {
	p := NewPattern().ValueEq(1).LeastOneAny()
	m := p.Match([]any{1, 2, 3})
	if m == nil {
		t.Fatal("expected a match")
	}
	if !reflect.DeepEqual(m.Flat(), []any{1, 2, 3}) {
		t.Errorf("Flat() = %v", m.Flat())
	}
	first, ok := m.First()
	if !ok || first != 1 {
		t.Errorf("First() = %v, %v", first, ok)
	}
	last, ok := m.Last()
	if !ok || last != 3 {
		t.Errorf("Last() = %v, %v", last, ok)
	}
}

func TestMatch_AtOutOfRange(t *testing.T) {
	p := NewPattern().ValueEq(1)
	m := p.Match([]any{1})
	if got := m.At(-1); got != nil {
		t.Errorf("At(-1) = %v, want nil", got)
	}
	if got := m.At(5); got != nil {
		t.Errorf("At(5) = %v, want nil", got)
	}
}

func TestMatch_NoCaptureExcludedFromLen(t *testing.T) {
	p := NewPattern().ValueEq(1).ValueEq(2, NoCapture()).ValueEq(3)
	m := p.Match([]any{1, 2, 3})
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	if !reflect.DeepEqual(m.At(0), []any{1}) || !reflect.DeepEqual(m.At(1), []any{3}) {
		t.Errorf("All() = %v", m.All())
	}
}
