package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// #region density

// DensityMatrix builds the density induced by a coefficient matrix and a
// fixed occupation vector: D = C · diag(occ) · Cᵀ.
func DensityMatrix(c *mat.Dense, occ []float64) *mat.Dense {
	n, m := c.Dims()
	weighted := mat.NewDense(n, m, nil)
	for j := 0; j < m; j++ {
		w := 0.0
		if j < len(occ) {
			w = occ[j]
		}
		for i := 0; i < n; i++ {
			weighted.Set(i, j, c.At(i, j)*w)
		}
	}
	var d mat.Dense
	d.Mul(weighted, c.T())
	return &d
}

// #endregion density

// #region secular

// SecularEig solves the generalized symmetric eigenproblem F·C = S·C·diag(e)
// by Cholesky whitening: with S = L·Lᵀ, the problem reduces to the ordinary
// symmetric eigenproblem of L⁻¹·F·L⁻ᵀ, and C = L⁻ᵀ·V. Eigenvalues are
// returned in ascending order.
func SecularEig(f, s *mat.Dense) ([]float64, *mat.Dense, error) {
	n, _ := f.Dims()
	sn, _ := s.Dims()
	if n != sn {
		return nil, nil, fmt.Errorf("secular solve: fock is %d×%d but overlap is %d×%d", n, n, sn, sn)
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(toSym(s)); !ok {
		return nil, nil, fmt.Errorf("secular solve: overlap matrix is not positive definite")
	}
	var l mat.TriDense
	chol.LTo(&l)

	// B = L⁻¹ · F · L⁻ᵀ via two triangular solves.
	var x mat.Dense
	if err := x.Solve(&l, f); err != nil {
		return nil, nil, fmt.Errorf("secular solve: forward substitution: %w", err)
	}
	var bt mat.Dense
	if err := bt.Solve(&l, x.T()); err != nil {
		return nil, nil, fmt.Errorf("secular solve: backward substitution: %w", err)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(toSym(&bt), true); !ok {
		return nil, nil, fmt.Errorf("secular solve: eigendecomposition failed")
	}
	energies := eig.Values(nil)
	var v mat.Dense
	eig.VectorsTo(&v)

	// C = L⁻ᵀ · V, i.e. solve Lᵀ·C = V.
	var c mat.Dense
	if err := c.Solve(l.T(), &v); err != nil {
		return nil, nil, fmt.Errorf("secular solve: back transform: %w", err)
	}
	return energies, &c, nil
}

// toSym copies the upper triangle of a square dense matrix into a SymDense.
func toSym(m mat.Matrix) *mat.SymDense {
	n, _ := m.Dims()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, m.At(i, j))
		}
	}
	return s
}

// #endregion secular
