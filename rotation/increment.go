// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package rotation

import (
	"math"

	"github.com/gviegas/rotation/linear"
)

// LeftIncrement returns the multiplicative increment that
// takes r1 to r2 when applied from the left, i.e., the
// rotation Δθ such that r2 = Δθ ⋅ r1.
func LeftIncrement(r1, r2 Rotation) Rotation { return r2.Compose(r1.Inverse()) }

// RightIncrement returns the multiplicative increment that
// takes r1 to r2 when applied from the right, i.e., the
// rotation ΔΘ such that r2 = r1 ⋅ ΔΘ.
// Its rotation vector is that of LeftIncrement expressed
// in the frame of r1.
func RightIncrement(r1, r2 Rotation) Rotation { return r1.Inverse().Compose(r2) }

// TransformationMatrix returns T(ψ) for the rotation vector psi:
//
//	T = I + (1 - cos θ)/θ² S(ψ) + (θ - sin θ)/θ³ S(ψ)²
//
// where θ = |ψ| and S(ψ) is the cross-product matrix of ψ.
//
// T maps an additive increment δψ of the rotation vector to
// the left multiplicative increment δθ:
//
//	Λ(ψ + δψ) ≈ Λ(T ⋅ δψ) ⋅ Λ(ψ)
//
// The relation holds only in the infinitesimal limit.
// Angles below SmallAngleTol yield the identity.
// For the inverse map, from a left multiplicative increment
// to an additive one, use Rotation.AdditiveIncrement.
func TransformationMatrix(psi linear.V3) linear.M3 {
	var t linear.M3
	t.I()
	th := psi.Len()
	if th < SmallAngleTol {
		return t
	}
	sh := math.Sin(th / 2)
	a := 2 * sh * sh / (th * th)
	var b float64
	if th < seriesTol {
		th2 := th * th
		b = 1.0/6 - th2/120 + th2*th2/5040
	} else {
		b = (th - math.Sin(th)) / (th * th * th)
	}
	var s, s2 linear.M3
	s.Skew(&psi)
	s2.Mul(&s, &s)
	s.Scale(a, &s)
	s2.Scale(b, &s2)
	t.Add(&t, &s)
	t.Add(&t, &s2)
	return t
}

// TransformationMatrix returns T(ψ) for the rotation vector
// of r (see the TransformationMatrix function).
func (r Rotation) TransformationMatrix() linear.M3 {
	return TransformationMatrix(r.RotationVector())
}

// AdditiveIncrement returns the additive increment δψ of the
// rotation vector of r that corresponds, to first order, to
// the left multiplicative increment dtheta.
// It computes T(ψ)⁻¹ ⋅ δθ.
func (r Rotation) AdditiveIncrement(dtheta linear.V3) linear.V3 {
	// T(ψ) is singular only at |ψ| = 2kπ, k > 0,
	// which the principal rotation vector excludes.
	t := r.TransformationMatrix()
	t.Invert(&t)
	var d linear.V3
	d.Mul(&t, &dtheta)
	return d
}
