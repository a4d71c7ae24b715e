// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package rotation

import (
	"testing"

	"github.com/gviegas/rotation/linear"
)

func BenchmarkCompose(b *testing.B) {
	r := FromRotationVector(linear.V3{0.1, 0.2, 0.3})
	s := FromRotationVector(linear.V3{-0.3, 1.2, 0.4})
	var c Rotation
	for i := 0; i < b.N; i++ {
		c = r.Compose(s)
	}
	b.Log(c)
}

func BenchmarkApply(b *testing.B) {
	r := FromRotationVector(linear.V3{0.1, 0.2, 0.3})
	v := linear.V3{1, 0.2, -0.1}
	var u linear.V3
	b.Run("Rotation.Apply", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			u = r.Apply(v)
		}
	})
	b.Run("M3.Mul", func(b *testing.B) {
		m := r.Matrix()
		for i := 0; i < b.N; i++ {
			u.Mul(&m, &v)
		}
	})
	b.Log(u)
}

func BenchmarkTransformationMatrix(b *testing.B) {
	psi := linear.V3{0.1, 0.2, 0.3}
	var m linear.M3
	for i := 0; i < b.N; i++ {
		m = TransformationMatrix(psi)
	}
	b.Log(m)
}
