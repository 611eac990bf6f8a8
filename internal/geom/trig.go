package geom

import "math"

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }


// AngleTable caches sin/cos for a fixed set of angles so recursive generators
// do not recompute them for every branch.
type AngleTable struct {
	sin []float64
	cos []float64
}

// NewAngleTable precomputes the given angles (radians).
func NewAngleTable(angles ...float64) *AngleTable {
	t := &AngleTable{
		sin: make([]float64, len(angles)),
		cos: make([]float64, len(angles)),
	}
	for i, a := range angles {
		t.sin[i], t.cos[i] = math.Sincos(a)
	}
	return t
}

func (t *AngleTable) Len() int { return len(t.sin) }

// SinCos returns sin and cos of entry i, negating sin when neg is set.
func (t *AngleTable) SinCos(i int, neg bool) (sin, cos float64) {
	sin, cos = t.sin[i], t.cos[i]
	if neg {
		sin = -sin
	}
	return
}

// Rotate2D rotates p about o by entry i (or its negation).
func (t *AngleTable) Rotate2D(p, o Point2D, i int, neg bool) Point2D {
	s, c := t.SinCos(i, neg)
	return rotate2D(p, o, s, c)
}
