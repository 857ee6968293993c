package oracle

import (
	"context"
	"fmt"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"

	"github.com/mhalvorsen/multiseed/go-solver/internal/linalg"
)

// #region two-level

// TwoLevel is an in-process spin-restricted two-orbital engine with a linear
// Fock map F(D) = H + u·D over an orthonormal basis (S = I). It has a unique
// self-consistent fixed point for small coupling u, which makes it the
// reference engine for scenario tests and the -demo mode of cmd/solver.
//
// All methods are pure functions of their arguments; the struct holds only
// run-invariant data, so a single instance is safe to share across agents.
type TwoLevel struct {
	h       *mat.Dense // core Hamiltonian
	u       float64    // density coupling
	enuc    float64    // constant nuclear repulsion
	nelec   int
	overlap *mat.Dense

	stepCalls atomic.Int64 // OneNewtonStep invocations, for inspection in tests
}

// NewTwoLevel constructs the model engine. h11, h22 are the diagonal core
// terms, h12 the coupling between the two levels, u the density coupling and
// enuc a constant energy offset.
func NewTwoLevel(h11, h22, h12, u, enuc float64) *TwoLevel {
	return &TwoLevel{
		h:       mat.NewDense(2, 2, []float64{h11, h12, h12, h22}),
		u:       u,
		enuc:    enuc,
		nelec:   2,
		overlap: mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
	}
}

// DefaultTwoLevel returns the parameterization used by the demo and the
// scenario tests: a well-separated ground state and mild coupling. The
// coupling must stay below ~0.17 or the Roothaan map loses contractivity at
// its fixed point and OneNewtonStep cannot reach stationarity.
func DefaultTwoLevel() *TwoLevel {
	return NewTwoLevel(-1.0, -0.5, -0.25, 0.1, 0.7)
}

// StepCalls reports how many Newton steps the engine has served.
func (e *TwoLevel) StepCalls() int64 { return e.stepCalls.Load() }

// #endregion two-level

// #region invariants

// Overlap returns the (identity) overlap matrix.
func (e *TwoLevel) Overlap() *mat.Dense { return linalg.Clone(e.overlap) }

// CoreHamiltonian returns the one-electron Hamiltonian.
func (e *TwoLevel) CoreHamiltonian() *mat.Dense { return linalg.Clone(e.h) }

// #endregion invariants

// #region fock-energy

// BuildFock assembles F(D) = H + u·D.
func (e *TwoLevel) BuildFock(_ context.Context, density *mat.Dense) (*mat.Dense, error) {
	var f mat.Dense
	f.Scale(e.u, density)
	f.Add(&f, e.h)
	return &f, nil
}

// Density builds D = C · diag(occ) · Cᵀ.
func (e *TwoLevel) Density(coeffs *mat.Dense, occ []float64) *mat.Dense {
	return linalg.DensityMatrix(coeffs, occ)
}

// EnergyElectronic evaluates tr(D·H) + (u/2)·tr(D·D), the electronic energy
// consistent with the linear Fock map.
func (e *TwoLevel) EnergyElectronic(_ context.Context, density *mat.Dense) (float64, error) {
	var dh, dd mat.Dense
	dh.Mul(density, e.h)
	dd.Mul(density, density)
	return mat.Trace(&dh) + 0.5*e.u*mat.Trace(&dd), nil
}

// EnergyTotal adds the constant nuclear term.
func (e *TwoLevel) EnergyTotal(ctx context.Context, density *mat.Dense) (float64, error) {
	elec, err := e.EnergyElectronic(ctx, density)
	if err != nil {
		return 0, err
	}
	return elec + e.enuc, nil
}

// #endregion fock-energy

// #region occupation

// Occupation fills the lowest orbitals aufbau-style with two electrons each.
// Orbital energies are assumed ascending, as produced by SecularSolve.
func (e *TwoLevel) Occupation(_ context.Context, orbEnergies []float64, _ *mat.Dense) ([]float64, error) {
	if len(orbEnergies) != 2 {
		return nil, fmt.Errorf("occupation: expected 2 orbital energies, got %d", len(orbEnergies))
	}
	occ := make([]float64, 2)
	occ[0] = float64(e.nelec)
	return occ, nil
}

// #endregion occupation

// #region newton-step

// OneNewtonStep iterates the damped Roothaan map to stationarity and returns
// the resulting coefficients. For the linear Fock model this lands on the
// unique fixed point; the step therefore always reports local convergence
// unless the inner loop runs out of iterations.
func (e *TwoLevel) OneNewtonStep(ctx context.Context, coeffs *mat.Dense, occ []float64) (*mat.Dense, bool, error) {
	e.stepCalls.Add(1)

	d := e.Density(coeffs, occ)
	c := linalg.Clone(coeffs)
	const tol = 1e-13
	const damping = 0.5
	for i := 0; i < 200; i++ {
		f, err := e.BuildFock(ctx, d)
		if err != nil {
			return nil, false, err
		}
		_, cNew, err := linalg.SecularEig(f, e.overlap)
		if err != nil {
			return nil, false, err
		}
		dNew := e.Density(cNew, occ)
		c = cNew
		if linalg.FrobDistance(dNew, d) < tol {
			return c, true, nil
		}
		var mix mat.Dense
		mix.Scale(damping, dNew)
		var old mat.Dense
		old.Scale(1-damping, d)
		mix.Add(&mix, &old)
		d = &mix
	}
	return c, false, nil
}

// #endregion newton-step

// #region secular

// SecularSolve solves the generalized eigenproblem for the given Fock and
// overlap matrices.
func (e *TwoLevel) SecularSolve(_ context.Context, fock, overlap *mat.Dense) ([]float64, *mat.Dense, error) {
	return linalg.SecularEig(fock, overlap)
}

// #endregion secular
