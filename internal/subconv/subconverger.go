// Package subconv implements the local optimizer: one agent's Newton-Raphson
// step through the oracle, scored with a trust value in [0,1].
package subconv

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mhalvorsen/multiseed/go-solver/internal/linalg"
	"github.com/mhalvorsen/multiseed/go-solver/internal/oracle"
)

// trustScale converts a density displacement into the distance term of the
// trust function.
const trustScale = 1e-4

// #region subconverger

// Subconverger wraps one call into the oracle's local Newton step and scores
// the result. It holds only the shared read-only oracle and the fixed
// occupation vector, so distinct instances may step concurrently.
type Subconverger struct {
	orc oracle.Oracle
	occ []float64
}

// New creates a subconverger bound to an oracle and occupation vector.
func New(orc oracle.Oracle, occ []float64) *Subconverger {
	return &Subconverger{orc: orc, occ: occ}
}

// Step performs one local Newton-Raphson step from base coefficients and
// returns the new coefficients with their trust. Oracle failures and
// non-finite results are absorbed: the agent keeps its base coefficients
// with trust 0 and is simply deprioritized.
func (s *Subconverger) Step(ctx context.Context, base *mat.Dense) (*mat.Dense, float64) {
	oldDensity := s.orc.Density(base, s.occ)

	newCoeffs, localConv, err := s.orc.OneNewtonStep(ctx, base, s.occ)
	if err != nil || newCoeffs == nil || !linalg.AllFinite(newCoeffs) {
		return base, 0
	}
	newDensity := s.orc.Density(newCoeffs, s.occ)

	trust, ok := s.trust(ctx, oldDensity, newDensity, localConv)
	if !ok {
		return base, 0
	}
	return newCoeffs, trust
}

// #endregion subconverger

// #region trust

// trust scores a step from the density displacement and the energy change:
// small, energy-decreasing steps approach 1; energy-increasing steps are
// exponentially penalized but keep positional information.
func (s *Subconverger) trust(ctx context.Context, oldDensity, newDensity *mat.Dense, localConv bool) (float64, bool) {
	eNew, err := s.orc.EnergyElectronic(ctx, newDensity)
	if err != nil {
		return 0, false
	}
	eOld, err := s.orc.EnergyElectronic(ctx, oldDensity)
	if err != nil {
		return 0, false
	}
	delta := eNew - eOld
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return 0, false
	}

	distance := linalg.FrobDistance(newDensity, oldDensity) * trustScale
	penalty := 1.0
	if delta > 0 {
		penalty = math.Exp(-delta)
	}
	t := penalty / ((1 + distance) * (1 + distance))
	if math.IsNaN(t) {
		return 0, false
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t, true
}

// #endregion trust
