// Package pool holds the candidate pool of the solver: per-agent coefficient
// matrices, trust scores and energies, with a depth-bounded rolling history
// of full pool snapshots addressed through a cyclic cursor.
package pool

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mhalvorsen/multiseed/go-solver/internal/linalg"
)

// EnergySentinel marks a freshly reassigned, not-yet-stepped slot. The value
// is finite (float32 max) so it survives serialization.
const EnergySentinel = float64(math.MaxFloat32)

// #region ring-struct

// Ring is the depth-bounded circular buffer of pool snapshots. Writes happen
// only at the current cursor row; reading cursor−1 (mod depth) yields the
// last fully committed snapshot. Energies are tracked for the current cycle
// only, matching their role as a per-cycle diagnostic.
type Ring struct {
	depth   int
	slots   int
	cursor  int
	trusts  [][]float64
	coeffs  [][]*mat.Dense
	energy  []float64
}

// NewRing allocates a ring with the given history depth and slot count.
// Coefficients start nil and trusts zero; energies start at the sentinel.
func NewRing(depth, slots int) (*Ring, error) {
	if depth < 1 {
		return nil, fmt.Errorf("ring depth must be >= 1, got %d", depth)
	}
	if slots < 1 {
		return nil, fmt.Errorf("slot count must be >= 1, got %d", slots)
	}
	r := &Ring{
		depth:  depth,
		slots:  slots,
		trusts: make([][]float64, depth),
		coeffs: make([][]*mat.Dense, depth),
		energy: make([]float64, slots),
	}
	for i := 0; i < depth; i++ {
		r.trusts[i] = make([]float64, slots)
		r.coeffs[i] = make([]*mat.Dense, slots)
	}
	for i := range r.energy {
		r.energy[i] = EnergySentinel
	}
	return r, nil
}

// Depth returns the history depth.
func (r *Ring) Depth() int { return r.depth }

// Slots returns the number of agent slots.
func (r *Ring) Slots() int { return r.slots }

// #endregion ring-struct

// #region cursor

// WriteCursor returns the row currently open for writes.
func (r *Ring) WriteCursor() int { return r.cursor }

// ReadCursor returns the row of the last committed snapshot.
func (r *Ring) ReadCursor() int {
	if r.cursor == 0 {
		return r.depth - 1
	}
	return r.cursor - 1
}

// Advance commits the write row and moves the cursor forward.
func (r *Ring) Advance() {
	r.cursor = (r.cursor + 1) % r.depth
}

// SetCursor restores a cursor position, for checkpoint resume.
func (r *Ring) SetCursor(c int) error {
	if c < 0 || c >= r.depth {
		return fmt.Errorf("cursor %d out of range [0,%d)", c, r.depth)
	}
	r.cursor = c
	return nil
}

// CommittedRows reports how many history rows hold real data after the given
// number of completed cycles.
func (r *Ring) CommittedRows(cycle int) int {
	if cycle < r.depth {
		return cycle
	}
	return r.depth
}

// #endregion cursor

// #region accessors

// Trust returns the trust of a slot in a history row.
func (r *Ring) Trust(row, slot int) float64 { return r.trusts[row][slot] }

// SetTrust stores a trust value. Values are clamped into [0,1].
func (r *Ring) SetTrust(row, slot int, v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	r.trusts[row][slot] = v
}

// TrustRow returns a copy of one history row of trusts.
func (r *Ring) TrustRow(row int) []float64 {
	out := make([]float64, r.slots)
	copy(out, r.trusts[row])
	return out
}

// TrustSlab returns a deep copy of the first rows history rows of trusts,
// ordered by row index. The policy decays these in place.
func (r *Ring) TrustSlab(rows int) [][]float64 {
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = r.TrustRow(i)
	}
	return out
}

// Coeffs returns the coefficient matrix of a slot in a history row. The
// returned matrix is shared; callers must not mutate it.
func (r *Ring) Coeffs(row, slot int) *mat.Dense { return r.coeffs[row][slot] }

// CoeffSlab returns the first rows history rows of coefficient matrices.
func (r *Ring) CoeffSlab(rows int) [][]*mat.Dense {
	out := make([][]*mat.Dense, rows)
	for i := 0; i < rows; i++ {
		out[i] = r.coeffs[i]
	}
	return out
}

// SetCoeffs stores a coefficient matrix.
func (r *Ring) SetCoeffs(row, slot int, c *mat.Dense) { r.coeffs[row][slot] = c }

// CloneRow returns a copy-on-write buffer of a row's coefficients. Matrices
// themselves are shared until a slot is overwritten via the buffer.
func (r *Ring) CloneRow(row int) []*mat.Dense {
	out := make([]*mat.Dense, r.slots)
	copy(out, r.coeffs[row])
	return out
}

// SetRow installs a buffer produced by CloneRow as the given row.
func (r *Ring) SetRow(row int, buf []*mat.Dense) {
	copy(r.coeffs[row], buf)
}

// Energy returns the current-cycle energy of a slot.
func (r *Ring) Energy(slot int) float64 { return r.energy[slot] }

// SetEnergy stores a current-cycle energy.
func (r *Ring) SetEnergy(slot int, e float64) { r.energy[slot] = e }

// ResetEnergy marks a slot as freshly reassigned.
func (r *Ring) ResetEnergy(slot int) { r.energy[slot] = EnergySentinel }

// Energies returns a copy of the current-cycle energies.
func (r *Ring) Energies() []float64 {
	out := make([]float64, r.slots)
	copy(out, r.energy)
	return out
}

// #endregion accessors

// #region queries

// BestTrust returns the slot with the highest trust in a row.
func (r *Ring) BestTrust(row int) (slot int, trust float64) {
	trust = -1
	for i, v := range r.trusts[row] {
		if v > trust {
			slot, trust = i, v
		}
	}
	return slot, trust
}

// MinEnergy returns the slot with the lowest current energy.
func (r *Ring) MinEnergy() (slot int, energy float64) {
	energy = math.Inf(1)
	for i, v := range r.energy {
		if v < energy {
			slot, energy = i, v
		}
	}
	return slot, energy
}

// #endregion queries

// #region seed

// Seed fills every history row of a slot with the same coefficients, used
// when bootstrapping the pool from the initial guess.
func (r *Ring) Seed(slot int, c *mat.Dense) {
	for row := 0; row < r.depth; row++ {
		r.coeffs[row][slot] = linalg.Clone(c)
	}
}

// #endregion seed
