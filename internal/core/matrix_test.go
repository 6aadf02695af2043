package core

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMatrixTranslateScale(t *testing.T) {
	m := Identity().Translate(10, 20).Scale(2, 3)

	x, y := m.Apply(1, 1)
	if !approx(x, 12) || !approx(y, 23) {
		t.Errorf("Apply(1, 1) = (%v, %v), expected (12, 23)", x, y)
	}
}

func TestMatrixRotate(t *testing.T) {
	m := Identity().Rotate(math.Pi / 2)

	// y grows downward, so a quarter turn maps +x onto +y
	x, y := m.Apply(1, 0)
	if !approx(x, 0) || !approx(y, 1) {
		t.Errorf("Apply(1, 0) = (%v, %v), expected (0, 1)", x, y)
	}
}

func TestMatrixMirrorAboutCenter(t *testing.T) {
	// Flip a 10x20 box placed at (5, 5) about its own center.
	m := Identity().Translate(10, 15).Scale(1, -1)
	b := m.Bounds(NewRect(-5, -10, 10, 20))

	if !approx(b.Left, 5) || !approx(b.Top, 5) || !approx(b.Right, 15) || !approx(b.Bottom, 25) {
		t.Errorf("Bounds = %+v, expected the original box", b)
	}
}

func TestMatrixBoundsRotated(t *testing.T) {
	m := Identity().Rotate(math.Pi / 2)
	b := m.Bounds(RectAround(0, 0, 40, 10))

	if !approx(b.Width(), 10) || !approx(b.Height(), 40) {
		t.Errorf("rotated bounds = %vx%v, expected 10x40", b.Width(), b.Height())
	}
}

func TestTransformStackSaveRestore(t *testing.T) {
	ts := NewTransformStack()
	ts.Translate(5, 5)
	ts.Save()
	ts.Scale(2, 2)
	ts.Rotate(math.Pi)

	x, y := ts.Current().Apply(1, 0)
	if !approx(x, 3) || !approx(y, 5) {
		t.Errorf("inside save: Apply(1, 0) = (%v, %v), expected (3, 5)", x, y)
	}

	ts.Restore()
	x, y = ts.Current().Apply(1, 0)
	if !approx(x, 6) || !approx(y, 5) {
		t.Errorf("after restore: Apply(1, 0) = (%v, %v), expected (6, 5)", x, y)
	}

	// Extra restores are ignored.
	ts.Restore()
	ts.Restore()
	if ts.Current() != Identity().Translate(5, 5) {
		t.Errorf("unbalanced Restore changed the transform: %+v", ts.Current())
	}

	ts.Reset()
	if ts.Current() != Identity() {
		t.Error("Reset should return to the identity")
	}
}
