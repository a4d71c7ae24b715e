// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package linear implements vector, matrix and quaternion
// math for 3D rotations.
package linear

import (
	"math"
)

// V3 is a 3-component vector of float64.
type V3 [3]float64

// Add sets v to contain l + r.
func (v *V3) Add(l, r *V3) {
	for i := range v {
		v[i] = l[i] + r[i]
	}
}

// Sub sets v to contain l - r.
func (v *V3) Sub(l, r *V3) {
	for i := range v {
		v[i] = l[i] - r[i]
	}
}

// Scale sets v to contain s ⋅ w.
func (v *V3) Scale(s float64, w *V3) {
	for i := range v {
		v[i] = s * w[i]
	}
}

// Dot returns v ⋅ w.
func (v *V3) Dot(w *V3) (d float64) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V3) Len() float64 {
	d := v.Dot(v)
	if !math.IsInf(d, 1) {
		return math.Sqrt(d)
	}
	// Squares overflowed; scale by the largest component.
	var s float64
	for _, x := range v {
		s = math.Max(s, math.Abs(x))
	}
	if math.IsInf(s, 1) {
		return s
	}
	var w V3
	w.Scale(1/s, v)
	return s * math.Sqrt(w.Dot(&w))
}

// Norm sets v to contain w normalized.
// w must not be the zero vector.
func (v *V3) Norm(w *V3) { v.Scale(1/w.Len(), w) }

// Cross sets v to contain l × r.
func (v *V3) Cross(l, r *V3) {
	*v = V3{
		l[1]*r[2] - l[2]*r[1],
		l[2]*r[0] - l[0]*r[2],
		l[0]*r[1] - l[1]*r[0],
	}
}

// Mul sets v to contain m ⋅ w.
func (v *V3) Mul(m *M3, w *V3) {
	var u V3
	for i := range u {
		for j := range m {
			u[i] += m[j][i] * w[j]
		}
	}
	*v = u
}

// V4 is a 4-component vector of float64.
type V4 [4]float64

// Dot returns v ⋅ w.
func (v *V4) Dot(w *V4) (d float64) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// Len returns the length of v.
func (v *V4) Len() float64 { return math.Sqrt(v.Dot(v)) }
