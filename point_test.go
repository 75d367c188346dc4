package wgpath

import (
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, 4), Pt(4, 6).Sub(Pt(1, 2)))
	diff(t, Pt(5, 5), Pt(0, 0).Midpoint(Pt(10, 10)))
	diff(t, Pt(2.5, 0), Pt(0, 0).Lerp(Pt(10, 0), 0.25))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestVec2(t *testing.T) {
	if c := Vec(1, 0).Cross(Vec(0, 1)); c != 1 {
		t.Errorf("got cross product %v, want 1", c)
	}
	if d := Vec(1, 2).Dot(Vec(3, 4)); d != 11 {
		t.Errorf("got dot product %v, want 11", d)
	}
	if h := Vec(3, 4).Hypot(); h != 5 {
		t.Errorf("got magnitude %v, want 5", h)
	}
	diff(t, Vec(0, 1), Vec(0, 42).Normalize())
}
