package subconv

import (
	"context"
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/mhalvorsen/multiseed/go-solver/internal/linalg"
	"github.com/mhalvorsen/multiseed/go-solver/internal/oracle"
)

// faultyEngine wraps the two-level model and injects step failures.
type faultyEngine struct {
	*oracle.TwoLevel
	stepErr    error
	nonFinite  bool
	energyBump float64 // added to the electronic energy of stepped densities
}

func (f *faultyEngine) OneNewtonStep(ctx context.Context, coeffs *mat.Dense, occ []float64) (*mat.Dense, bool, error) {
	if f.stepErr != nil {
		return nil, false, f.stepErr
	}
	if f.nonFinite {
		return mat.NewDense(2, 2, []float64{math.NaN(), 0, 0, 1}), true, nil
	}
	return f.TwoLevel.OneNewtonStep(ctx, coeffs, occ)
}

func identity() *mat.Dense { return mat.NewDense(2, 2, []float64{1, 0, 0, 1}) }

func TestStepTrustInUnitInterval(t *testing.T) {
	s := New(oracle.DefaultTwoLevel(), []float64{2, 0})

	starts := []*mat.Dense{
		identity(),
		linalg.Rotate(identity(), linalg.Unpack([]float64{0.7}, 2)),
		linalg.Rotate(identity(), linalg.Unpack([]float64{-1.1}, 2)),
	}
	for i, base := range starts {
		_, trust := s.Step(context.Background(), base)
		if trust < 0 || trust > 1 {
			t.Fatalf("start %d: trust %v outside [0,1]", i, trust)
		}
	}
}

func TestStepRewardsStationarity(t *testing.T) {
	e := oracle.DefaultTwoLevel()
	s := New(e, []float64{2, 0})
	ctx := context.Background()

	// First step lands on the fixed point; re-stepping from it moves the
	// density by ~0, so trust should be essentially 1.
	c1, trust1 := s.Step(ctx, identity())
	if trust1 <= 0 {
		t.Fatalf("first step trust = %v", trust1)
	}
	_, trust2 := s.Step(ctx, c1)
	if trust2 < trust1 {
		t.Fatalf("trust did not improve toward stationarity: %v then %v", trust1, trust2)
	}
	if 1-trust2 > 1e-8 {
		t.Fatalf("stationary trust should approach 1, got %v", trust2)
	}
}

func TestStepOracleErrorIsAbsorbed(t *testing.T) {
	e := &faultyEngine{TwoLevel: oracle.DefaultTwoLevel(), stepErr: fmt.Errorf("engine crashed")}
	s := New(e, []float64{2, 0})

	base := identity()
	out, trust := s.Step(context.Background(), base)
	if trust != 0 {
		t.Fatalf("failed step should carry trust 0, got %v", trust)
	}
	if out != base {
		t.Fatal("failed step should return the base coefficients unchanged")
	}
}

func TestStepNonFiniteResultIsAbsorbed(t *testing.T) {
	e := &faultyEngine{TwoLevel: oracle.DefaultTwoLevel(), nonFinite: true}
	s := New(e, []float64{2, 0})

	base := identity()
	out, trust := s.Step(context.Background(), base)
	if trust != 0 || out != base {
		t.Fatalf("non-finite step not absorbed: trust=%v", trust)
	}
}

func TestTrustPenalizesEnergyIncrease(t *testing.T) {
	s := New(oracle.DefaultTwoLevel(), []float64{2, 0})

	// Densities engineered so the "step" raises the energy by a known amount.
	low := linalg.DensityMatrix(identity(), []float64{2, 0})
	e := oracle.DefaultTwoLevel()
	ctx := context.Background()
	eLow, _ := e.EnergyElectronic(ctx, low)

	// Swap occupation onto the higher orbital for a higher-energy density.
	high := linalg.DensityMatrix(identity(), []float64{0, 2})
	eHigh, _ := e.EnergyElectronic(ctx, high)
	if eHigh <= eLow {
		t.Fatalf("test setup: expected higher energy, got %v <= %v", eHigh, eLow)
	}

	up, ok := s.trust(ctx, low, high, false)
	if !ok {
		t.Fatal("trust evaluation failed")
	}
	down, ok := s.trust(ctx, high, low, false)
	if !ok {
		t.Fatal("trust evaluation failed")
	}
	if up >= down {
		t.Fatalf("energy-increasing step not penalized: up=%v down=%v", up, down)
	}
	if up <= 0 {
		t.Fatal("penalized step should keep positional information (trust > 0)")
	}
}
