// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"gonum.org/v1/gonum/mat"
)

// M3 is a column-major 3x3 matrix of float64.
type M3 [3]V3

// I makes m an identity matrix.
func (m *M3) I() { *m = M3{{1}, {0, 1}, {0, 0, 1}} }

// At returns the element of m at the given row and column.
func (m *M3) At(row, col int) float64 { return m[col][row] }

// Add sets m to contain l + r.
func (m *M3) Add(l, r *M3) {
	for i := range m {
		m[i].Add(&l[i], &r[i])
	}
}

// Scale sets m to contain s ⋅ n.
func (m *M3) Scale(s float64, n *M3) {
	for i := range m {
		m[i].Scale(s, &n[i])
	}
}

// Mul sets m to contain l ⋅ r.
func (m *M3) Mul(l, r *M3) {
	var p M3
	for i := range p {
		for j := range p {
			for k := range p {
				p[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = p
}

// Transpose sets m to contain the transpose of n.
func (m *M3) Transpose(n *M3) {
	for i := range m {
		m[i][i] = n[i][i]
		for j := i + 1; j < len(m); j++ {
			m[i][j], m[j][i] = n[j][i], n[i][j]
		}
	}
}

// Det returns the determinant of m.
func (m *M3) Det() float64 {
	var c V3
	c.Cross(&m[1], &m[2])
	return m[0].Dot(&c)
}

// Invert sets m to contain the inverse of n.
// n must not be singular.
func (m *M3) Invert(n *M3) {
	var c M3
	c[0].Cross(&n[1], &n[2])
	c[1].Cross(&n[2], &n[0])
	c[2].Cross(&n[0], &n[1])
	idet := 1 / n[0].Dot(&c[0])
	// The cross products are the rows of the adjugate.
	c.Transpose(&c)
	m.Scale(idet, &c)
}

// Skew sets m to contain the cross-product matrix of v,
// such that m ⋅ w = v × w for any w.
func (m *M3) Skew(v *V3) {
	*m = M3{
		{0, v[2], -v[1]},
		{-v[2], 0, v[0]},
		{v[1], -v[0], 0},
	}
}

// Dense returns m as a row-major gonum matrix.
func (m *M3) Dense() *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	for i := range m {
		for j := range m {
			d.Set(j, i, m[i][j])
		}
	}
	return d
}
