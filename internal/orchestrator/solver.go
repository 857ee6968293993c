// Package orchestrator drives the population search: it owns the candidate
// pool and its history ring, fans the per-agent Newton steps out over a
// bounded worker pool, merges results under a stochastic acceptance rule,
// reassigns low-value agents through the trust policy, and tests convergence
// under a non-variational safety check.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/mhalvorsen/multiseed/go-solver/internal/checkpoint"
	"github.com/mhalvorsen/multiseed/go-solver/internal/linalg"
	"github.com/mhalvorsen/multiseed/go-solver/internal/oracle"
	"github.com/mhalvorsen/multiseed/go-solver/internal/pool"
	"github.com/mhalvorsen/multiseed/go-solver/internal/reassign"
	"github.com/mhalvorsen/multiseed/go-solver/internal/subconv"
)

// #region solver-struct

// Solver is the orchestrator of one run. It exclusively owns the pool and
// history; the oracle is shared read-only with the agents.
type Solver struct {
	cfg    Config
	orc    oracle.Oracle
	ring   *pool.Ring
	rm     *reassign.Manager
	subs   []*subconv.Subconverger
	slotOf []int // agent j currently holds the candidate in slot slotOf[j]
	rng    *rand.Rand
	occ    []float64
	basis  *mat.Dense // slot-0 coefficients after the bootstrap pass
	thresh float64
	n      int

	ckpt  *checkpoint.Store
	runID string
}

// #endregion solver-struct

// #region constructor

// New validates the configuration, checks the initial guess against the
// oracle's basis dimension, bootstraps slot 0 with one self-consistency pass
// and scatters the remaining slots by random rotations up to the configured
// radius. A dimension mismatch is fatal here, before any cycle runs.
func New(ctx context.Context, cfg Config, orc oracle.Oracle, initialGuess *mat.Dense) (*Solver, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if initialGuess == nil {
		return nil, fmt.Errorf("initial guess is required")
	}
	n := oracle.Dim(orc)
	if gr, gc := initialGuess.Dims(); gr != n || gc != n {
		return nil, fmt.Errorf("initial guess is %d×%d but the overlap matrix is %d×%d", gr, gc, n, n)
	}

	basis, occ, err := bootstrap(ctx, orc, initialGuess, n)
	if err != nil {
		return nil, err
	}

	ring, err := pool.NewRing(cfg.MemDepth, cfg.Threads)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	s := &Solver{
		cfg:  cfg,
		orc:  orc,
		ring: ring,
		rm: reassign.New(reassign.Config{
			TrustScaleMin: cfg.TrustScaleMin,
			TrustScaleMax: cfg.TrustScaleMax,
			TrustScaleExp: cfg.TrustScaleExp,
			MemScale:      cfg.MemScale,
		}, n, rng),
		subs:   make([]*subconv.Subconverger, cfg.Threads),
		slotOf: make([]int, cfg.Threads),
		rng:    rng,
		occ:    occ,
		basis:  basis,
		thresh: math.Pow(10, -float64(cfg.ConvergenceDigits)),
		n:      n,
	}
	for j := range s.subs {
		s.subs[j] = subconv.New(orc, occ)
		s.slotOf[j] = j
	}

	s.ring.Seed(0, basis)
	dof := linalg.PackedLen(n)
	for j := 1; j < cfg.Threads; j++ {
		mag := rng.Float64() * cfg.InitScattering
		v := make([]float64, dof)
		for k := range v {
			v[k] = (rng.Float64() - 0.5) * mag
		}
		s.ring.Seed(j, linalg.Rotate(basis, linalg.Unpack(v, n)))
	}
	return s, nil
}

// bootstrap performs one Roothaan self-consistency pass on the initial guess
// and derives the fixed occupation vector for the run.
func bootstrap(ctx context.Context, orc oracle.Oracle, guess *mat.Dense, n int) (*mat.Dense, []float64, error) {
	placeholder := make([]float64, n)
	for i := range placeholder {
		placeholder[i] = float64(i)
	}
	occ0, err := orc.Occupation(ctx, placeholder, guess)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap occupation: %w", err)
	}

	d := orc.Density(guess, occ0)
	f, err := orc.BuildFock(ctx, d)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap fock build: %w", err)
	}
	orbE, c, err := orc.SecularSolve(ctx, f, orc.Overlap())
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap secular solve: %w", err)
	}
	occ, err := orc.Occupation(ctx, orbE, c)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap occupation: %w", err)
	}
	return c, occ, nil
}

// AttachCheckpoint makes the solver persist the pool after every cycle.
func (s *Solver) AttachCheckpoint(st *checkpoint.Store, runID string) {
	s.ckpt = st
	s.runID = runID
}

// Restore installs a checkpointed pool snapshot as the starting state of the
// next Run, so an interrupted search continues from its last committed pool
// instead of the initial guess.
func (s *Solver) Restore(slots []checkpoint.SlotRecord) error {
	if len(slots) != s.cfg.Threads {
		return fmt.Errorf("checkpoint has %d slots but the pool holds %d", len(slots), s.cfg.Threads)
	}
	for _, rec := range slots {
		if rec.Slot < 0 || rec.Slot >= s.cfg.Threads {
			return fmt.Errorf("checkpoint slot %d out of range", rec.Slot)
		}
		s.ring.Seed(rec.Slot, rec.Coeffs)
		for row := 0; row < s.ring.Depth(); row++ {
			s.ring.SetTrust(row, rec.Slot, rec.Trust)
		}
		s.ring.SetEnergy(rec.Slot, rec.Energy)
	}
	return nil
}

// #endregion constructor

// #region run

// Run executes the cycle loop until convergence, budget exhaustion or
// cancellation. Exhaustion is a normal terminal outcome: the best candidate
// found is materialized with Converged=false. Cancellation is honored at the
// per-cycle barrier.
func (s *Solver) Run(ctx context.Context) (Result, error) {
	if e, err := s.orc.EnergyElectronic(ctx, s.orc.Density(s.basis, s.occ)); err == nil {
		log.Printf("[SOLVER] guess energy: %.10f", e)
	}

	converged := false
	cycles := s.cfg.MaxCycle
	finalRow := 0
	winner := 0

	for cycle := 0; cycle < s.cfg.MaxCycle; cycle++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("run canceled at cycle %d: %w", cycle, err)
		}

		write := s.ring.WriteCursor()
		read := s.ring.ReadCursor()
		if cycle == 0 {
			read = write
		}

		// a. Purge and reassign low-value slots.
		var purged []int
		if cycle > 0 && s.cfg.Threads > 1 {
			purged = purgeSet(s.ring.TrustRow(read), s.cfg.PurgeFraction, s.thresh)
			if len(purged) > 0 {
				rows := s.ring.CommittedRows(cycle)
				shifts := s.rm.GenerateShifts(s.ring.TrustSlab(rows), s.ring.CoeffSlab(rows), len(purged), read)
				for k, slot := range purged {
					s.ring.SetCoeffs(write, slot, shifts[k])
					s.ring.ResetEnergy(slot)
				}
				log.Printf("[SOLVER] cycle=%d purging %d/%d slots", cycle, len(purged), s.cfg.Threads)
			}
		}
		purgedSet := make(map[int]bool, len(purged))
		for _, p := range purged {
			purgedSet[p] = true
		}

		// b/c. Step every agent from its read position, in parallel up to the
		// worker bound, with a full barrier before the merge.
		bases := make([]*mat.Dense, s.cfg.Threads)
		for j := range bases {
			slot := s.slotOf[j]
			row := read
			if purgedSet[slot] {
				row = write
			}
			bases[j] = s.ring.Coeffs(row, slot)
		}
		outs := s.stepAll(ctx, bases)

		// d. Merge with the stochastic acceptance rule. Agent j targets the
		// j-th lowest-trust slot; results with zero trust are dropped.
		readTrusts := s.ring.TrustRow(read)
		targets := acceptanceTargets(readTrusts)
		buf := s.ring.CloneRow(read)
		for j := 0; j < s.cfg.Threads; j++ {
			s.ring.SetTrust(write, j, readTrusts[j])
		}
		for j := 0; j < s.cfg.Threads; j++ {
			res := outs[j]
			if res.trust == 0 {
				continue
			}
			target := 0
			if j > 0 {
				target = targets[j-1]
			}
			if (j == 0 && readTrusts[0] > 0) || s.cfg.Threads == 1 {
				s.ring.SetTrust(write, j, res.trust)
				buf[j] = res.coeffs
				s.slotOf[j] = j
			} else if s.rng.Float64() < 1-readTrusts[target]+res.trust {
				s.ring.SetTrust(write, target, res.trust)
				buf[target] = res.coeffs
				s.slotOf[j] = target
			}
		}
		s.ring.SetRow(write, buf)

		// e. Recompute every slot's objective energy.
		for j := 0; j < s.cfg.Threads; j++ {
			d := s.orc.Density(s.ring.Coeffs(write, j), s.occ)
			e, err := s.orc.EnergyElectronic(ctx, d)
			if err != nil || math.IsNaN(e) {
				log.Printf("[SOLVER] cycle=%d slot=%d energy evaluation failed: %v", cycle, j, err)
				s.ring.ResetEnergy(j)
				continue
			}
			s.ring.SetEnergy(j, e)
		}

		// f. Convergence test and non-variational safety check.
		best, bestTrust := s.ring.BestTrust(write)
		tconv := 1-pow4(bestTrust) < s.thresh
		_, minE := s.ring.MinEnergy()
		safety := false
		if tconv && minE-s.ring.Energy(best) < -s.thresh {
			bestE := s.ring.Energy(best)
			for j := 0; j < s.cfg.Threads; j++ {
				if s.ring.Energy(j) >= bestE && 1-pow4(s.ring.Trust(write, j)) < s.thresh {
					s.ring.SetTrust(write, j, 0)
				}
			}
			log.Printf("[SOLVER] cycle=%d disregarding slot=%d as non-variational (energy %.10f vs pool minimum %.10f)",
				cycle, best, bestE, minE)
			tconv = false
			safety = true
			best, bestTrust = s.ring.BestTrust(write)
		}

		log.Printf("[SOLVER] cycle=%d best_slot=%d best_trust=%.8f best_energy=%.10f",
			cycle, best, bestTrust, s.ring.Energy(best))
		if s.cfg.OnCycle != nil {
			s.cfg.OnCycle(CycleStats{
				Cycle:       cycle,
				BestSlot:    best,
				BestTrust:   bestTrust,
				BestEnergy:  s.ring.Energy(best),
				MinEnergy:   minE,
				Purged:      len(purged),
				SafetyFired: safety,
			})
		}
		s.saveCheckpoint(cycle, write)

		winner = best
		finalRow = write
		if tconv {
			converged = true
			cycles = cycle + 1
			break
		}
		// g. Full barrier: commit the cycle.
		s.ring.Advance()
	}

	return s.finalize(ctx, finalRow, winner, converged, cycles)
}

// #endregion run

// #region step-pool

type stepResult struct {
	coeffs *mat.Dense
	trust  float64
}

// stepAll fans the local Newton steps out over a bounded worker pool. Slot
// writes are disjoint by construction; the only shared state is the
// read-only oracle.
func (s *Solver) stepAll(ctx context.Context, bases []*mat.Dense) []stepResult {
	workers := s.cfg.Workers
	if workers <= 0 || workers > len(bases) {
		workers = len(bases)
	}

	outs := make([]stepResult, len(bases))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for j := range bases {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			coeffs, trust := s.subs[j].Step(ctx, bases[j])
			outs[j] = stepResult{coeffs: coeffs, trust: trust}
		}(j)
	}
	wg.Wait()
	return outs
}

// #endregion step-pool

// #region finalize

// finalize materializes a slot into the run result: orbital energies from
// the secular solve of its Fock matrix, total energy, coefficients and
// occupation.
func (s *Solver) finalize(ctx context.Context, row, slot int, converged bool, cycles int) (Result, error) {
	coeffs := linalg.Clone(s.ring.Coeffs(row, slot))
	d := s.orc.Density(coeffs, s.occ)

	f, err := s.orc.BuildFock(ctx, d)
	if err != nil {
		return Result{}, fmt.Errorf("finalize fock build: %w", err)
	}
	orbE, _, err := s.orc.SecularSolve(ctx, f, s.orc.Overlap())
	if err != nil {
		return Result{}, fmt.Errorf("finalize secular solve: %w", err)
	}
	eTot, err := s.orc.EnergyTotal(ctx, d)
	if err != nil {
		return Result{}, fmt.Errorf("finalize total energy: %w", err)
	}

	occ := make([]float64, len(s.occ))
	copy(occ, s.occ)

	log.Printf("[SOLVER] final energy: %.10f converged=%v cycles=%d", eTot, converged, cycles)
	return Result{
		Converged:       converged,
		TotalEnergy:     eTot,
		OrbitalEnergies: orbE,
		Coeffs:          coeffs,
		Occupation:      occ,
		Cycles:          cycles,
	}, nil
}

// #endregion finalize

// #region helpers

// acceptanceTargets ranks the non-privileged slots by ascending trust, so
// agent j overwrites the j-th least trusted slot on acceptance.
func acceptanceTargets(trusts []float64) []int {
	idx := make([]int, 0, len(trusts)-1)
	for i := 1; i < len(trusts); i++ {
		idx = append(idx, i)
	}
	// Stable sort keeps tie order deterministic.
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && trusts[idx[j]] < trusts[idx[j-1]]; j-- {
			idx[j], idx[j-1] = idx[j-1], idx[j]
		}
	}
	return idx
}

func pow4(x float64) float64 {
	x2 := x * x
	return x2 * x2
}

func (s *Solver) saveCheckpoint(cycle, row int) {
	if s.ckpt == nil {
		return
	}
	slots := make([]checkpoint.SlotRecord, s.cfg.Threads)
	for j := range slots {
		slots[j] = checkpoint.SlotRecord{
			Slot:   j,
			Trust:  s.ring.Trust(row, j),
			Energy: s.ring.Energy(j),
			Coeffs: s.ring.Coeffs(row, j),
		}
	}
	if err := s.ckpt.SaveCycle(s.runID, cycle, row, slots); err != nil {
		log.Printf("[CKPT] save failed at cycle %d: %v", cycle, err)
	}
}

// #endregion helpers
