package orchestrator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// #region config

// Config holds every recognized solver option.
type Config struct {
	// Threads is the number of agents (subconvergers) in the pool.
	Threads int
	// PurgeFraction is the share of lowest-trust agents reassigned each cycle.
	PurgeFraction float64
	// ConvergenceDigits sets the convergence threshold to 10^-digits.
	ConvergenceDigits int
	// InitScattering is the rotation radius used to scatter the initial pool.
	InitScattering float64
	// TrustScaleMin/Max/Exp parameterize the reassignment temperature schedule.
	TrustScaleMin float64
	TrustScaleMax float64
	TrustScaleExp float64
	// MemDepth is the history-ring depth in pool snapshots.
	MemDepth int
	// MemScale is the per-cycle decay applied to retained trusts.
	MemScale float64
	// StepSize caps the oracle's Newton step.
	StepSize float64
	// MaxCycle bounds the number of cycles before the run is declared
	// exhausted.
	MaxCycle int
	// Seed fixes the random stream; identical seeds reproduce identical
	// reassignment sequences.
	Seed int64
	// Workers bounds the per-cycle step pool; 0 means one worker per agent.
	Workers int
	// OnCycle, when set, receives per-cycle statistics after the merge and
	// safety check of every cycle.
	OnCycle func(CycleStats)
}

// DefaultConfig returns the standard parameterization.
func DefaultConfig() Config {
	return Config{
		Threads:           8,
		PurgeFraction:     0.5,
		ConvergenceDigits: 8,
		InitScattering:    0.3,
		TrustScaleMin:     0.01,
		TrustScaleMax:     0.2,
		TrustScaleExp:     8,
		MemDepth:          1,
		MemScale:          0.2,
		StepSize:          0.2,
		MaxCycle:          200,
		Seed:              1,
	}
}

func (c Config) validate() error {
	if c.Threads < 1 {
		return fmt.Errorf("threads must be >= 1, got %d", c.Threads)
	}
	if c.PurgeFraction < 0 || c.PurgeFraction > 1 {
		return fmt.Errorf("purge fraction must be in [0,1], got %v", c.PurgeFraction)
	}
	if c.ConvergenceDigits < 1 {
		return fmt.Errorf("convergence digits must be >= 1, got %d", c.ConvergenceDigits)
	}
	if c.InitScattering < 0 {
		return fmt.Errorf("initial scattering must be >= 0, got %v", c.InitScattering)
	}
	if c.TrustScaleMin <= 0 || c.TrustScaleMax <= c.TrustScaleMin {
		return fmt.Errorf("trust scale range (%v,%v) is invalid", c.TrustScaleMin, c.TrustScaleMax)
	}
	if c.MemDepth < 1 {
		return fmt.Errorf("history depth must be >= 1, got %d", c.MemDepth)
	}
	if c.MemScale <= 0 || c.MemScale > 1 {
		return fmt.Errorf("history decay must be in (0,1], got %v", c.MemScale)
	}
	if c.StepSize <= 0 {
		return fmt.Errorf("step size must be > 0, got %v", c.StepSize)
	}
	if c.MaxCycle < 1 {
		return fmt.Errorf("max cycle must be >= 1, got %d", c.MaxCycle)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	return nil
}

// #endregion config

// #region result

// Result is the terminal outcome of a run. A non-converged run still carries
// the best candidate found.
type Result struct {
	Converged       bool
	TotalEnergy     float64
	OrbitalEnergies []float64
	Coeffs          *mat.Dense
	Occupation      []float64
	Cycles          int
}

// CycleStats summarizes one completed cycle for logging, checkpointing and
// tests.
type CycleStats struct {
	Cycle       int
	BestSlot    int
	BestTrust   float64
	BestEnergy  float64
	MinEnergy   float64
	Purged      int
	SafetyFired bool
}

// #endregion result
