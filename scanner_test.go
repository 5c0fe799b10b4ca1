package seqmatch

import (
	"reflect"
	"testing"
)

func TestScanner_ScanAdvancesOnlyOnMatch(t *testing.T) {
	p := NewPattern().ValueEq(1)
	sc := NewScanner(p, []any{1, 2, 1})

	m := sc.Scan()
	if m == nil {
		t.Fatal("expected a match at position 0")
	}
	if sc.Pos() != 1 {
		t.Errorf("Pos() = %d, want 1", sc.Pos())
	}

	m = sc.Scan()
	if m != nil {
		t.Fatalf("expected no match at position 1, got %v", m.All())
	}
	if sc.Pos() != 1 {
		t.Errorf("Pos() should not move on a miss, got %d", sc.Pos())
	}
}

func TestScanner_ScanUntilSkipsAhead(t *testing.T) {
	p := NewPattern().ValueEq(9)
	sc := NewScanner(p, []any{1, 2, 9, 3})

	m := sc.ScanUntil()
	if m == nil {
		t.Fatal("expected a match")
	}
	if sc.Pos() != 3 {
		t.Errorf("Pos() = %d, want 3", sc.Pos())
	}

	m = sc.ScanUntil()
	if m != nil {
		t.Fatalf("expected exhaustion, got %v", m.All())
	}
}

func TestScanner_ResetIdempotent(t *testing.T) {
	p := NewPattern().ValueEq(1)
	sc := NewScanner(p, []any{1, 1, 1})
	sc.Scan()
	sc.Reset()
	pos1 := sc.Pos()
	sc.Reset()
	if sc.Pos() != pos1 {
		t.Errorf("Reset() not idempotent: %d != %d", sc.Pos(), pos1)
	}
	if pos1 != 0 {
		t.Errorf("Reset() should zero the cursor, got %d", pos1)
	}
}

func TestScanner_NonOverlappingMatches(t *testing.T) {
	p := NewPattern().ValueEq(1).LeastOneAny()
	sc := NewScanner(p, []any{1, 2, 1, 3, 1, 4})

	var firsts []any
	for !sc.EOV() {
		m := sc.ScanUntil()
		if m == nil {
			break
		}
		v, _ := m.First()
		firsts = append(firsts, v)
	}
	if !reflect.DeepEqual(firsts, []any{1}) {
		t.Errorf("firsts = %v, want [1] (one greedy match consuming the rest)", firsts)
	}
}

func TestStreamScanner_MatchesOverSource(t *testing.T) {
	p := NewPattern().ValueEq(1).LeastOneAny()
	src := NewSliceSource([]any{1, 2, 3, 4})
	sc := NewStreamScanner(p, src)

	m := sc.Scan()
	if m == nil {
		t.Fatal("expected a match")
	}
	if !reflect.DeepEqual(m.Flat(), []any{1, 2, 3, 4}) {
		t.Errorf("Flat() = %v", m.Flat())
	}

	sc.Reset()
	if sc.Pos() != 0 {
		t.Errorf("Pos() after Reset = %d, want 0", sc.Pos())
	}
	m2 := sc.Scan()
	if m2 == nil {
		t.Fatal("expected a match after reset")
	}
}
