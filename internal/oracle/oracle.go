// Package oracle defines the capability interface of the external numerical
// engine that evaluates the physical objective (Fock build, energies, one
// Newton-Raphson step, secular solve). The solver treats the engine as an
// opaque, read-only collaborator: implementations must be safe for concurrent
// invocation across agents.
package oracle

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// #region interface

// Oracle is the contract the surrounding engine provides. Overlap and
// CoreHamiltonian are invariant for the run and may be cached by
// implementations. SecularSolve is used at finalization only.
type Oracle interface {
	// Overlap returns the overlap matrix S.
	Overlap() *mat.Dense
	// CoreHamiltonian returns the one-electron core Hamiltonian.
	CoreHamiltonian() *mat.Dense
	// BuildFock assembles the Fock matrix for a density.
	BuildFock(ctx context.Context, density *mat.Dense) (*mat.Dense, error)
	// OneNewtonStep performs a single local Newton-Raphson step from the
	// given coefficients. It is one atomic unit of work even if internally
	// iterative. The boolean reports local convergence.
	OneNewtonStep(ctx context.Context, coeffs *mat.Dense, occ []float64) (*mat.Dense, bool, error)
	// Density builds the density matrix induced by coefficients and a fixed
	// occupation vector.
	Density(coeffs *mat.Dense, occ []float64) *mat.Dense
	// EnergyElectronic evaluates the electronic energy of a density.
	EnergyElectronic(ctx context.Context, density *mat.Dense) (float64, error)
	// EnergyTotal evaluates the total energy of a density.
	EnergyTotal(ctx context.Context, density *mat.Dense) (float64, error)
	// Occupation assigns occupation numbers given orbital energies and
	// coefficients.
	Occupation(ctx context.Context, orbEnergies []float64, coeffs *mat.Dense) ([]float64, error)
	// SecularSolve solves F·C = S·C·diag(e) for orbital energies and
	// coefficients.
	SecularSolve(ctx context.Context, fock, overlap *mat.Dense) ([]float64, *mat.Dense, error)
}

// #endregion interface

// #region dim

// Dim returns the orbital dimension of the engine's basis.
func Dim(o Oracle) int {
	n, _ := o.Overlap().Dims()
	return n
}

// #endregion dim
