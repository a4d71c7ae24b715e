// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package rotation implements finite rotations in 3D space.
//
// A Rotation is stored as a unit quaternion whose scalar part
// is never negative. Since q and -q describe the same rotation,
// this canonical form makes the rotation vector of a Rotation
// its principal value, with angle in [0, π]. When the scalar
// part is exactly zero (a half turn), the first non-zero
// component of the vector part is made positive.
//
// Quaternions are scalar-first when flattened (see linear.Q.WXYZ).
package rotation

import (
	"errors"
	"fmt"
	"math"

	"github.com/gviegas/rotation/linear"
)

const prefix = "rotation: "

// ErrDegenerateAxis means that a rotation axis with
// (near) zero length was provided.
var ErrDegenerateAxis = errors.New(prefix + "degenerate axis")

// ErrInvalidArgument means that an argument has the
// wrong shape or is not a finite number.
var ErrInvalidArgument = errors.New(prefix + "invalid argument")

const (
	// DegenerateAxisTol is the axis length below which
	// New fails with ErrDegenerateAxis.
	DegenerateAxisTol = 1e-14
	// ZeroAngleTol is the angle below which a rotation
	// vector is treated as the zero vector.
	ZeroAngleTol = 1e-14
	// SmallAngleTol is the angle below which the
	// transformation matrix is the identity.
	SmallAngleTol = 1e-8

	// Angle below which the cubic coefficient of the
	// transformation matrix is taken from its series.
	seriesTol = 1e-3
)

// Rotation is an immutable rotation in 3D space.
// The zero value is the identity.
type Rotation struct {
	q linear.Q
}

// Identity returns the identity rotation.
func Identity() Rotation { return Rotation{q: linear.Q{R: 1}} }

// New creates a rotation of angle radians about axis.
// axis need not be normalized.
func New(axis linear.V3, angle float64) (Rotation, error) {
	n := axis.Len()
	switch {
	case math.IsNaN(n) || math.IsInf(n, 0):
		return Rotation{}, fmt.Errorf("%w: axis %v", ErrInvalidArgument, axis)
	case n < DegenerateAxisTol:
		return Rotation{}, fmt.Errorf("%w: length %g", ErrDegenerateAxis, n)
	case math.IsNaN(angle) || math.IsInf(angle, 0):
		return Rotation{}, fmt.Errorf("%w: angle %v", ErrInvalidArgument, angle)
	}
	return axisAngle(axis, n, angle), nil
}

// axisAngle assumes that n is the length of axis.
func axisAngle(axis linear.V3, n, angle float64) Rotation {
	s, c := math.Sincos(angle / 2)
	var q linear.Q
	q.V.Scale(s/n, &axis)
	q.R = c
	return canonical(q)
}

// FromRotationVector creates a rotation from the rotation
// vector v, whose direction is the axis and whose length
// is the angle.
// Vectors shorter than ZeroAngleTol yield the identity.
// v must be finite (see Vec); FromRotationVector panics
// otherwise.
func FromRotationVector(v linear.V3) Rotation {
	angle := v.Len()
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		panic(prefix + "non-finite rotation vector")
	}
	if angle < ZeroAngleTol {
		return Identity()
	}
	return axisAngle(v, angle, angle)
}

// FromQuaternion creates a rotation from q.
// q need not be normalized.
func FromQuaternion(q linear.Q) (Rotation, error) {
	n := q.Len()
	if !(n >= DegenerateAxisTol) || math.IsInf(n, 0) {
		return Rotation{}, fmt.Errorf("%w: quaternion %v", ErrInvalidArgument, q)
	}
	return canonical(q), nil
}

// canonical normalizes q and flips its sign as needed.
func canonical(q linear.Q) Rotation {
	q.Norm(&q)
	neg := q.R < 0
	if q.R == 0 {
		for _, x := range q.V {
			if x != 0 {
				neg = x < 0
				break
			}
		}
	}
	if neg {
		q.R = -q.R
		q.V.Scale(-1, &q.V)
	}
	return Rotation{q: q}
}

// Vec converts s into a 3-component vector.
// s must have 3 finite components.
func Vec(s []float64) (linear.V3, error) {
	if len(s) != 3 {
		return linear.V3{}, fmt.Errorf("%w: want 3 components, have %d", ErrInvalidArgument, len(s))
	}
	for _, x := range s {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return linear.V3{}, fmt.Errorf("%w: non-finite component in %v", ErrInvalidArgument, s)
		}
	}
	return linear.V3{s[0], s[1], s[2]}, nil
}

func (r Rotation) quat() linear.Q {
	if r.q == (linear.Q{}) {
		return linear.Q{R: 1}
	}
	return r.q
}

// Quaternion returns the unit quaternion of r.
// Its scalar part is non-negative.
func (r Rotation) Quaternion() linear.Q { return r.quat() }

// Matrix returns the rotation matrix of r.
func (r Rotation) Matrix() linear.M3 {
	q := r.quat()
	w, x, y, z := q.R, q.V[0], q.V[1], q.V[2]
	return linear.M3{
		{1 - 2*(y*y+z*z), 2 * (x*y + w*z), 2 * (x*z - w*y)},
		{2 * (x*y - w*z), 1 - 2*(x*x+z*z), 2 * (y*z + w*x)},
		{2 * (x*z + w*y), 2 * (y*z - w*x), 1 - 2*(x*x+y*y)},
	}
}

// Angle returns the rotation angle of r, in [0, π].
func (r Rotation) Angle() float64 {
	q := r.quat()
	return 2 * math.Atan2(q.V.Len(), q.R)
}

// Axis returns the unit rotation axis of r.
// The identity has the x axis.
func (r Rotation) Axis() linear.V3 {
	q := r.quat()
	if q.V == (linear.V3{}) {
		return linear.V3{1}
	}
	var a linear.V3
	a.Norm(&q.V)
	return a
}

// RotationVector returns the rotation vector of r.
// Its length is in [0, π].
func (r Rotation) RotationVector() linear.V3 {
	q := r.quat()
	n := q.V.Len()
	angle := 2 * math.Atan2(n, q.R)
	if angle < ZeroAngleTol {
		return linear.V3{}
	}
	var v linear.V3
	v.Scale(angle/n, &q.V)
	return v
}

// Compose returns the rotation that applies s first and
// then r, i.e., r ⋅ s.
func (r Rotation) Compose(s Rotation) Rotation {
	var q linear.Q
	a, b := r.quat(), s.quat()
	q.Mul(&a, &b)
	return canonical(q)
}

// Apply returns v rotated by r.
func (r Rotation) Apply(v linear.V3) linear.V3 {
	q := r.quat()
	var c, p linear.Q
	c.Conj(&q)
	p.V = v
	p.Mul(&q, &p)
	p.Mul(&p, &c)
	return p.V
}

// Inverse returns the inverse of r.
func (r Rotation) Inverse() Rotation {
	q := r.quat()
	q.Conj(&q)
	return canonical(q)
}

// Equal reports whether the rotation matrices of r and s
// differ by at most tol in every element.
func (r Rotation) Equal(s Rotation, tol float64) bool {
	m, n := r.Matrix(), s.Matrix()
	for i := range m {
		for j := range m[i] {
			if !(math.Abs(m[i][j]-n[i][j]) <= tol) {
				return false
			}
		}
	}
	return true
}

// String returns the rotation vector of r.
func (r Rotation) String() string {
	v := r.RotationVector()
	return fmt.Sprintf("Rotation%v", v)
}
