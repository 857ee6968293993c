// Package reassign implements the trust-driven reallocation policy: purged
// agents are reseeded near statistically promising candidates, sampled from
// the decay-weighted trust distribution over the retained history.
package reassign

import (
	"log"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/mhalvorsen/multiseed/go-solver/internal/linalg"
)

// maxRadius bounds the perturbation radius drawn for zero-trust sources,
// where the exponential law degenerates.
const maxRadius = math.Pi

// #region config

// Config holds the sampling-temperature schedule and the history decay.
type Config struct {
	// TrustScaleMin/Max/Exp define the temperature schedule
	// alpha = 1 / ((max-min)·(1-maxTrust)^exp + min): low alpha permits wide
	// exploration while no strong candidate exists.
	TrustScaleMin float64
	TrustScaleMax float64
	TrustScaleExp float64
	// MemScale is the per-cycle exponential decay applied to retained trusts.
	MemScale float64
}

// DefaultConfig returns the standard schedule.
func DefaultConfig() Config {
	return Config{
		TrustScaleMin: 0.01,
		TrustScaleMax: 0.2,
		TrustScaleExp: 8,
		MemScale:      0.2,
	}
}

// #endregion config

// #region manager

// Manager synthesizes new starting points for purged agents. It owns no pool
// state; the orchestrator passes in the retained history slabs each cycle.
// All randomness comes from the injected stream, which keeps runs
// reproducible under a fixed seed.
type Manager struct {
	cfg Config
	n   int // orbital dimension
	dof int // rotation-generator dimension n(n-1)/2
	rng *rand.Rand
}

// New creates a manager for an n-orbital system.
func New(cfg Config, n int, rng *rand.Rand) *Manager {
	return &Manager{cfg: cfg, n: n, dof: linalg.PackedLen(n), rng: rng}
}

// #endregion manager

// #region generate-shifts

// GenerateShifts produces total new starting coefficient matrices. trusts and
// coeffs are the retained history slabs (rows × slots), cursor is the read
// row the ages are measured from. Every output lies on the same rotation
// manifold as its source.
func (m *Manager) GenerateShifts(trusts [][]float64, coeffs [][]*mat.Dense, total, cursor int) []*mat.Dense {
	if total <= 0 {
		return nil
	}

	// The temperature tracks the best trust ever retained, before decay.
	var maxTrust float64
	for _, row := range trusts {
		if v := maxOf(row); v > maxTrust {
			maxTrust = v
		}
	}
	flatTrusts, flatCoeffs := m.flattenDecayed(trusts, coeffs, cursor)
	alpha := m.alpha(maxTrust)
	log.Printf("[REASSIGN] alpha=%.4f candidates=%d total=%d", alpha, len(flatTrusts), total)

	shifts := make([]*mat.Dense, total)
	for i := 0; i < total; i++ {
		src := m.sampleSource(flatTrusts)
		radius := m.sampleRadius(alpha, flatTrusts[src])
		dir := m.spherePoint()
		for k := range dir {
			dir[k] *= radius
		}
		shifts[i] = linalg.Rotate(flatCoeffs[src], linalg.Unpack(dir, m.n))
	}
	return shifts
}

// flattenDecayed collapses the history slabs into flat slices, weighting each
// row's trusts by MemScale^age with age the cyclic distance from the cursor.
func (m *Manager) flattenDecayed(trusts [][]float64, coeffs [][]*mat.Dense, cursor int) ([]float64, []*mat.Dense) {
	rows := len(trusts)
	var flatTrusts []float64
	var flatCoeffs []*mat.Dense
	for i := 0; i < rows; i++ {
		age := (cursor - i) % rows
		if age < 0 {
			age += rows
		}
		w := math.Pow(m.cfg.MemScale, float64(age))
		for j := range trusts[i] {
			flatTrusts = append(flatTrusts, trusts[i][j]*w)
			flatCoeffs = append(flatCoeffs, coeffs[i][j])
		}
	}
	return flatTrusts, flatCoeffs
}

// alpha recomputes the sampling temperature from the maximum observed trust.
func (m *Manager) alpha(maxTrust float64) float64 {
	spread := (m.cfg.TrustScaleMax - m.cfg.TrustScaleMin) * math.Pow(1-maxTrust, m.cfg.TrustScaleExp)
	return 1 / (spread + m.cfg.TrustScaleMin)
}

// #endregion generate-shifts

// #region sampling

// sampleSource draws a source index from the normalized trust distribution
// via inverse-CDF sampling. With zero total trust mass (cold start) the
// choice degenerates to uniform.
func (m *Manager) sampleSource(trusts []float64) int {
	var sum float64
	for _, t := range trusts {
		sum += t
	}
	if sum <= 0 {
		return m.rng.Intn(len(trusts))
	}
	x := m.rng.Float64() * sum
	for i, t := range trusts {
		if x < t {
			return i
		}
		x -= t
	}
	return len(trusts) - 1
}

// sampleRadius draws a perturbation radius from an exponential law with rate
// alpha·trust, so low-trust seeds explore farther. The draw is clamped to
// maxRadius to keep zero-trust sources bounded.
func (m *Manager) sampleRadius(alpha, trust float64) float64 {
	rate := alpha * trust
	u := m.rng.Float64()
	if rate <= 0 {
		return maxRadius
	}
	r := -math.Log(1-u) / rate
	if r > maxRadius {
		r = maxRadius
	}
	return r
}

// spherePoint samples a direction on the unit hypersphere of the generator
// space by box inflation: one captain axis is pinned to ±1, the remaining
// components are filled uniformly, and the vector is normalized.
func (m *Manager) spherePoint() []float64 {
	if m.dof == 1 {
		if m.rng.Intn(2) == 0 {
			return []float64{1}
		}
		return []float64{-1}
	}

	capt := m.rng.Intn(m.dof)
	sign := float64(m.rng.Intn(2)*2 - 1)

	p := make([]float64, m.dof)
	var norm float64
	for i := range p {
		if i == capt {
			p[i] = sign
		} else {
			p[i] = m.rng.Float64()
		}
		norm += p[i] * p[i]
	}
	norm = math.Sqrt(norm)
	for i := range p {
		p[i] /= norm
	}
	return p
}

// #endregion sampling

func maxOf(v []float64) float64 {
	best := 0.0
	for _, x := range v {
		if x > best {
			best = x
		}
	}
	return best
}
