package linalg

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// #region packed-generators

// PackedLen returns the number of independent rotation generators for an
// n-orbital system: n(n-1)/2.
func PackedLen(n int) int {
	return n * (n - 1) / 2
}

// Unpack expands a packed generator vector of length n(n-1)/2 into the
// corresponding antisymmetric n×n matrix. The upper triangle is filled
// row-major; the lower triangle is its negation.
func Unpack(v []float64, n int) *mat.Dense {
	g := mat.NewDense(n, n, nil)
	k := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.Set(i, j, v[k])
			g.Set(j, i, -v[k])
			k++
		}
	}
	return g
}

// #endregion packed-generators

// #region rotate

// Rotate right-composes a coefficient matrix with the exponential of an
// antisymmetric generator: C' = C · exp(G). Since exp of an antisymmetric
// matrix is orthogonal, C' stays on the same rotation manifold as C.
func Rotate(c *mat.Dense, gen *mat.Dense) *mat.Dense {
	var e mat.Dense
	e.Exp(gen)
	var out mat.Dense
	out.Mul(c, &e)
	return &out
}

// #endregion rotate

// #region metrics

// FrobDistance returns the Frobenius norm of a-b.
func FrobDistance(a, b mat.Matrix) float64 {
	var d mat.Dense
	d.Sub(a, b)
	return mat.Norm(&d, 2)
}

// AllFinite reports whether every entry of m is finite.
func AllFinite(m mat.Matrix) bool {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of m.
func Clone(m *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.CloneFrom(m)
	return &out
}

// #endregion metrics
