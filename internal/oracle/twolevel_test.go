package oracle

import (
	"context"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/mhalvorsen/multiseed/go-solver/internal/linalg"
)

func TestTwoLevelFixedPointStationary(t *testing.T) {
	e := DefaultTwoLevel()
	ctx := context.Background()
	occ := []float64{2, 0}

	guess := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	c1, conv, err := e.OneNewtonStep(ctx, guess, occ)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	if !conv {
		t.Fatal("inner iteration did not converge")
	}

	// Stepping again from the fixed point must not move the density.
	c2, conv, err := e.OneNewtonStep(ctx, c1, occ)
	if err != nil {
		t.Fatalf("second step: %v", err)
	}
	if !conv {
		t.Fatal("second step did not converge")
	}
	d1 := e.Density(c1, occ)
	d2 := e.Density(c2, occ)
	if linalg.FrobDistance(d1, d2) > 1e-10 {
		t.Fatalf("fixed point not stationary: moved %v", linalg.FrobDistance(d1, d2))
	}
}

func TestTwoLevelStepLowersEnergy(t *testing.T) {
	e := DefaultTwoLevel()
	ctx := context.Background()
	occ := []float64{2, 0}

	// Start from a rotated (non-stationary) point.
	start := linalg.Rotate(mat.NewDense(2, 2, []float64{1, 0, 0, 1}), linalg.Unpack([]float64{0.5}, 2))
	e0, _ := e.EnergyElectronic(ctx, e.Density(start, occ))

	c, _, err := e.OneNewtonStep(ctx, start, occ)
	if err != nil {
		t.Fatalf("step: %v", err)
	}
	e1, _ := e.EnergyElectronic(ctx, e.Density(c, occ))
	if e1 > e0 {
		t.Fatalf("step raised energy: %v -> %v", e0, e1)
	}
}

func TestTwoLevelFixedPointUnique(t *testing.T) {
	e := DefaultTwoLevel()
	ctx := context.Background()
	occ := []float64{2, 0}

	identity := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	starts := []*mat.Dense{
		identity,
		linalg.Rotate(identity, linalg.Unpack([]float64{0.8}, 2)),
		linalg.Rotate(identity, linalg.Unpack([]float64{-1.2}, 2)),
	}

	var ref float64
	for i, s := range starts {
		c, _, err := e.OneNewtonStep(ctx, s, occ)
		if err != nil {
			t.Fatalf("step from start %d: %v", i, err)
		}
		en, _ := e.EnergyElectronic(ctx, e.Density(c, occ))
		if i == 0 {
			ref = en
			continue
		}
		if math.Abs(en-ref) > 1e-10 {
			t.Fatalf("start %d converged to a different energy: %v vs %v", i, en, ref)
		}
	}
}

func TestTwoLevelOccupation(t *testing.T) {
	e := DefaultTwoLevel()
	occ, err := e.Occupation(context.Background(), []float64{-1.2, 0.3}, nil)
	if err != nil {
		t.Fatalf("Occupation: %v", err)
	}
	if occ[0] != 2 || occ[1] != 0 {
		t.Fatalf("unexpected occupation %v", occ)
	}
}

func TestTwoLevelEnergyConsistentWithFock(t *testing.T) {
	// dE/dD of tr(D·H) + (u/2)·tr(D·D) is H + u·D, which must equal the Fock
	// build.
	e := DefaultTwoLevel()
	ctx := context.Background()
	d := mat.NewDense(2, 2, []float64{1.5, 0.5, 0.5, 0.5})

	f, err := e.BuildFock(ctx, d)
	if err != nil {
		t.Fatalf("BuildFock: %v", err)
	}
	var want mat.Dense
	want.Scale(0.1, d)
	want.Add(&want, e.CoreHamiltonian())
	if linalg.FrobDistance(f, &want) > 1e-14 {
		t.Fatalf("fock inconsistent with energy model")
	}
}
