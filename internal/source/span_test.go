package source

import "testing"

func TestSpan_ShiftLeftRight(t *testing.T) {
	s := Span{Lo: 10, Hi: 20}
	if got := s.ShiftLeft(5); got != (Span{Lo: 5, Hi: 15}) {
		t.Errorf("ShiftLeft(5) = %+v", got)
	}
	if got := s.ShiftLeft(15); got != s {
		t.Errorf("ShiftLeft beyond Lo should no-op, got %+v", got)
	}
	if got := s.ShiftRight(5); got != (Span{Lo: 15, Hi: 25}) {
		t.Errorf("ShiftRight(5) = %+v", got)
	}
}

func TestSpan_ShrinkTo(t *testing.T) {
	s := Span{Lo: 10, Hi: 20}
	if got := s.ShrinkToLo(); got != (Span{Lo: 10, Hi: 10}) {
		t.Errorf("ShrinkToLo() = %+v", got)
	}
	if got := s.ShrinkToHi(); got != (Span{Lo: 20, Hi: 20}) {
		t.Errorf("ShrinkToHi() = %+v", got)
	}
}

func TestSpan_ToUntilBetween(t *testing.T) {
	a := Span{Lo: 10, Hi: 20}
	b := Span{Lo: 30, Hi: 40}
	if got := a.To(b); got != (Span{Lo: 10, Hi: 40}) {
		t.Errorf("To() = %+v", got)
	}
	if got := a.Until(b); got != (Span{Lo: 10, Hi: 30}) {
		t.Errorf("Until() = %+v", got)
	}
	if got := a.Between(b); got != (Span{Lo: 20, Hi: 30}) {
		t.Errorf("Between() = %+v", got)
	}
}

func TestSpan_ContainsOverlaps(t *testing.T) {
	outer := Span{Lo: 0, Hi: 100}
	inner := Span{Lo: 10, Hi: 20}
	disjoint := Span{Lo: 200, Hi: 300}
	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if outer.Contains(disjoint) {
		t.Error("outer should not contain disjoint")
	}
	if !outer.Overlaps(inner) {
		t.Error("outer should overlap inner")
	}
	if outer.Overlaps(disjoint) {
		t.Error("outer should not overlap disjoint")
	}
	// Universal invariant: a span always contains itself.
	if !outer.Contains(outer) {
		t.Error("span should contain itself")
	}
	if outer.To(outer) != outer {
		t.Error("s.To(s) should equal s")
	}
}

func TestSpan_SplitAt(t *testing.T) {
	s := Span{Lo: 10, Hi: 20}
	left, right := s.SplitAt(15)
	if left != (Span{Lo: 10, Hi: 15}) || right != (Span{Lo: 15, Hi: 20}) {
		t.Errorf("SplitAt(15) = %+v, %+v", left, right)
	}
}

func TestSpan_Dummy(t *testing.T) {
	if !DummySpan.IsDummy() {
		t.Error("DummySpan should report IsDummy")
	}
	if (Span{Lo: 1, Hi: 1}).IsDummy() {
		t.Error("non-zero empty span should not be dummy")
	}
}

func TestSpan_LoLessThanOrEqualHi(t *testing.T) {
	spans := []Span{{Lo: 0, Hi: 0}, {Lo: 5, Hi: 5}, {Lo: 5, Hi: 10}}
	for _, s := range spans {
		if s.Lo > s.Hi {
			t.Errorf("invariant violated: %+v has Lo > Hi", s)
		}
	}
}
