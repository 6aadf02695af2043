package core

import "math"

// Matrix is a 2D affine transform:
//
//	| A  C  E |
//	| B  D  F |
//	| 0  0  1 |
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Mul returns m × n, i.e. n is applied first.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Translate returns m with a translation applied in local space.
func (m Matrix) Translate(dx, dy float64) Matrix {
	return m.Mul(Matrix{A: 1, D: 1, E: dx, F: dy})
}

// Scale returns m with a scale applied in local space.
func (m Matrix) Scale(sx, sy float64) Matrix {
	return m.Mul(Matrix{A: sx, D: sy})
}

// Rotate returns m with a clockwise rotation (y down) applied in local space.
func (m Matrix) Rotate(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	return m.Mul(Matrix{A: cos, B: sin, C: -sin, D: cos})
}

// Apply transforms a point.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Bounds returns the axis-aligned bounding box of r after transformation.
func (m Matrix) Bounds(r Rect) Rect {
	xs := [4]float64{}
	ys := [4]float64{}
	xs[0], ys[0] = m.Apply(r.Left, r.Top)
	xs[1], ys[1] = m.Apply(r.Right, r.Top)
	xs[2], ys[2] = m.Apply(r.Left, r.Bottom)
	xs[3], ys[3] = m.Apply(r.Right, r.Bottom)

	out := Rect{Left: xs[0], Right: xs[0], Top: ys[0], Bottom: ys[0]}
	for i := 1; i < 4; i++ {
		out.Left = math.Min(out.Left, xs[i])
		out.Right = math.Max(out.Right, xs[i])
		out.Top = math.Min(out.Top, ys[i])
		out.Bottom = math.Max(out.Bottom, ys[i])
	}
	return out
}

// TransformStack holds a current transform and a stack of saved ones, with
// the Save/Restore/Translate/Rotate/Scale half of Surface.
type TransformStack struct {
	cur   Matrix
	saved []Matrix
}

// NewTransformStack returns a stack at the identity transform.
func NewTransformStack() TransformStack {
	return TransformStack{cur: Identity()}
}

// Current returns the active transform.
func (t *TransformStack) Current() Matrix {
	return t.cur
}

// Reset drops saved transforms and returns to the identity.
func (t *TransformStack) Reset() {
	t.cur = Identity()
	t.saved = t.saved[:0]
}

// Save pushes the current transform.
func (t *TransformStack) Save() {
	t.saved = append(t.saved, t.cur)
}

// Restore pops the last saved transform. Unbalanced calls are ignored.
func (t *TransformStack) Restore() {
	if len(t.saved) == 0 {
		return
	}
	t.cur = t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
}

// Translate composes a translation onto the current transform.
func (t *TransformStack) Translate(dx, dy float64) {
	t.cur = t.cur.Translate(dx, dy)
}

// Rotate composes a rotation onto the current transform.
func (t *TransformStack) Rotate(radians float64) {
	t.cur = t.cur.Rotate(radians)
}

// Scale composes a scale onto the current transform.
func (t *TransformStack) Scale(sx, sy float64) {
	t.cur = t.cur.Scale(sx, sy)
}
