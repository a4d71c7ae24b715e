// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package rotation

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/gviegas/rotation/linear"
)

func TestTransformationMatrixSmall(t *testing.T) {
	id := identityM3()
	for _, psi := range []linear.V3{{}, {1e-9, -2e-9, 3e-9}, {0, 0, 9e-9}} {
		if m := TransformationMatrix(psi); !equalM3(m, id, 1e-6) {
			t.Fatalf("TransformationMatrix(%v)\nhave %v\nwant %v", psi, m, id)
		}
	}
	// Continuity where the series takes over.
	axis := linear.V3{2, -1, 3}
	axis.Norm(&axis)
	var lo, hi linear.V3
	lo.Scale(seriesTol*(1-1e-9), &axis)
	hi.Scale(seriesTol*(1+1e-9), &axis)
	if m, n := TransformationMatrix(lo), TransformationMatrix(hi); !equalM3(m, n, 1e-10) {
		t.Fatalf("TransformationMatrix: discontinuous at %v\nhave %v\nwant %v", seriesTol, m, n)
	}
}

func TestTransformationMatrixClosedForm(t *testing.T) {
	// About the z axis T has a simple closed form.
	th := 1.2
	s, c := math.Sincos(th)
	a, b := (1-c)/th, s/th
	want := linear.M3{{b, a, 0}, {-a, b, 0}, {0, 0, 1}}
	if m := TransformationMatrix(linear.V3{0, 0, th}); !equalM3(m, want, 1e-14) {
		t.Fatalf("TransformationMatrix\nhave %v\nwant %v", m, want)
	}

	// T(ψ) ⋅ ψ = ψ.
	psi := linear.V3{0.4, -1.1, 0.7}
	m := TransformationMatrix(psi)
	var v linear.V3
	v.Mul(&m, &psi)
	if !equalV3(v, psi, 1e-14) {
		t.Fatalf("TransformationMatrix: T ⋅ ψ\nhave %v\nwant %v", v, psi)
	}
	if d := mat.Det(m.Dense()); d <= 0 {
		t.Fatalf("TransformationMatrix: Det\nhave %v\nwant > 0", d)
	}
}

func TestIncrements(t *testing.T) {
	psi1 := linear.V3{0.1, 0.2, 0.3}
	dpsi := linear.V3{0.01, -0.02, 0.03}
	var psi2 linear.V3
	psi2.Add(&psi1, &dpsi)
	r1, r2 := FromRotationVector(psi1), FromRotationVector(psi2)

	left := LeftIncrement(r1, r2)
	right := RightIncrement(r1, r2)
	if s := left.Compose(r1); !s.Equal(r2, tol) {
		t.Fatalf("LeftIncrement: Δθ ⋅ r1\nhave %v\nwant %v", s, r2)
	}
	if s := r1.Compose(right); !s.Equal(r2, tol) {
		t.Fatalf("RightIncrement: r1 ⋅ ΔΘ\nhave %v\nwant %v", s, r2)
	}

	dtheta := left.RotationVector()
	want := linear.V3{0.015801599760221736, -0.019305072045494538, 0.027646965825886712}
	if !equalV3(dtheta, want, 1e-12) {
		t.Fatalf("LeftIncrement: RotationVector\nhave %v\nwant %v", dtheta, want)
	}
	dTheta := right.RotationVector()
	want = linear.V3{0.003946899687354653, -0.019305072045494535, 0.031598532516842415}
	if !equalV3(dTheta, want, 1e-12) {
		t.Fatalf("RightIncrement: RotationVector\nhave %v\nwant %v", dTheta, want)
	}

	// Δθ = Λ(ψ1) ⋅ ΔΘ holds exactly.
	if v := r1.Apply(dTheta); !equalV3(v, dtheta, tol) {
		t.Fatalf("RightIncrement: Λ(ψ1) ⋅ ΔΘ\nhave %v\nwant %v", v, dtheta)
	}

	// δψ = T(ψ)⁻¹ ⋅ δθ holds for infinitesimal increments only.
	d := r1.AdditiveIncrement(dtheta)
	if !equalV3(d, dpsi, 1e-4) {
		t.Fatalf("Rotation.AdditiveIncrement\nhave %v\nwant %v", d, dpsi)
	}
	if equalV3(d, dpsi, 1e-8) {
		t.Fatalf("Rotation.AdditiveIncrement: finite increment is exact\nhave %v", d)
	}
}

func TestIncrementsFirstOrder(t *testing.T) {
	for _, psi := range []linear.V3{{0.1, 0.2, 0.3}, {-1.5, 0.3, 2.1}, {0, 3, 0}} {
		r1 := FromRotationVector(psi)
		// Only principal rotation vectors round trip.
		psi = r1.RotationVector()
		dpsi := linear.V3{1e-6, -2e-6, 3e-6}
		var psi2 linear.V3
		psi2.Add(&psi, &dpsi)
		r2 := FromRotationVector(psi2)

		m := r1.TransformationMatrix()
		var want linear.V3
		want.Mul(&m, &dpsi)
		dtheta := LeftIncrement(r1, r2).RotationVector()
		if !equalV3(dtheta, want, 1e-9) {
			t.Fatalf("TransformationMatrix(%v): T ⋅ δψ\nhave %v\nwant %v", psi, dtheta, want)
		}
		if d := r1.AdditiveIncrement(want); !equalV3(d, dpsi, 1e-14) {
			t.Fatalf("Rotation.AdditiveIncrement(%v)\nhave %v\nwant %v", psi, d, dpsi)
		}
	}
}
