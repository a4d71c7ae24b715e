// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"gonum.org/v1/gonum/num/quat"
)

// Q is a quaternion of float64.
// V is the vector part and R is the scalar part.
type Q struct {
	V V3
	R float64
}

func (q *Q) number() quat.Number {
	return quat.Number{Real: q.R, Imag: q.V[0], Jmag: q.V[1], Kmag: q.V[2]}
}

func (q *Q) setNumber(n quat.Number) {
	*q = Q{V: V3{n.Imag, n.Jmag, n.Kmag}, R: n.Real}
}

// Mul sets q to contain the Hamilton product l ⋅ r.
func (q *Q) Mul(l, r *Q) { q.setNumber(quat.Mul(l.number(), r.number())) }

// Conj sets q to contain the conjugate of p.
func (q *Q) Conj(p *Q) { q.setNumber(quat.Conj(p.number())) }

// Len returns the norm of q.
func (q *Q) Len() float64 { return quat.Abs(q.number()) }

// Norm sets q to contain p normalized.
// p must not be the zero quaternion.
func (q *Q) Norm(p *Q) { q.setNumber(quat.Scale(1/p.Len(), p.number())) }

// WXYZ returns q as a scalar-first 4-component vector.
func (q *Q) WXYZ() V4 { return V4{q.R, q.V[0], q.V[1], q.V[2]} }
