package reassign

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/mhalvorsen/multiseed/go-solver/internal/linalg"
)

func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func TestGenerateShiftsEmptyPurgeSet(t *testing.T) {
	m := New(DefaultConfig(), 2, rand.New(rand.NewSource(1)))
	trusts := [][]float64{{0.5, 0.5}}
	coeffs := [][]*mat.Dense{{identity(2), identity(2)}}

	if got := m.GenerateShifts(trusts, coeffs, 0, 0); got != nil {
		t.Fatalf("expected no shifts, got %d", len(got))
	}
}

func TestGenerateShiftsStayOnManifold(t *testing.T) {
	m := New(DefaultConfig(), 3, rand.New(rand.NewSource(7)))
	trusts := [][]float64{{0.9, 0.1, 0.4}}
	coeffs := [][]*mat.Dense{{identity(3), identity(3), identity(3)}}

	shifts := m.GenerateShifts(trusts, coeffs, 5, 0)
	if len(shifts) != 5 {
		t.Fatalf("expected 5 shifts, got %d", len(shifts))
	}
	for i, s := range shifts {
		var gram mat.Dense
		gram.Mul(s.T(), s)
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				want := 0.0
				if r == c {
					want = 1.0
				}
				if math.Abs(gram.At(r, c)-want) > 1e-10 {
					t.Fatalf("shift %d left the rotation manifold", i)
				}
			}
		}
	}
}

func TestSampleSourceMatchesTrustDistribution(t *testing.T) {
	// Chi-square goodness of fit of the empirical source distribution
	// against the normalized trusts.
	m := New(DefaultConfig(), 2, rand.New(rand.NewSource(42)))
	trusts := []float64{0.1, 0.2, 0.3, 0.4}

	const draws = 40000
	counts := make([]float64, len(trusts))
	for i := 0; i < draws; i++ {
		counts[m.sampleSource(trusts)]++
	}

	var sum float64
	for _, tr := range trusts {
		sum += tr
	}
	var chi2 float64
	for i, tr := range trusts {
		expected := draws * tr / sum
		diff := counts[i] - expected
		chi2 += diff * diff / expected
	}
	// df = 3, p = 0.001 critical value.
	if chi2 > 16.27 {
		t.Fatalf("sampling law rejected: chi2 = %v, counts = %v", chi2, counts)
	}
}

func TestSampleSourceColdStartUniform(t *testing.T) {
	m := New(DefaultConfig(), 2, rand.New(rand.NewSource(3)))
	trusts := []float64{0, 0, 0}

	const draws = 30000
	counts := make([]float64, len(trusts))
	for i := 0; i < draws; i++ {
		counts[m.sampleSource(trusts)]++
	}
	expected := float64(draws) / 3
	var chi2 float64
	for _, c := range counts {
		diff := c - expected
		chi2 += diff * diff / expected
	}
	// df = 2, p = 0.001 critical value.
	if chi2 > 13.82 {
		t.Fatalf("cold start not uniform: chi2 = %v, counts = %v", chi2, counts)
	}
}

func TestSampleRadiusZeroTrustClamped(t *testing.T) {
	m := New(DefaultConfig(), 2, rand.New(rand.NewSource(5)))
	for i := 0; i < 100; i++ {
		r := m.sampleRadius(10, 0)
		if r != maxRadius {
			t.Fatalf("zero-trust radius not clamped: %v", r)
		}
	}
}

func TestSampleRadiusLowTrustExploresFarther(t *testing.T) {
	m := New(DefaultConfig(), 2, rand.New(rand.NewSource(9)))
	meanAt := func(trust float64) float64 {
		var sum float64
		const n = 5000
		for i := 0; i < n; i++ {
			sum += m.sampleRadius(5, trust)
		}
		return sum / n
	}
	lo := meanAt(0.05)
	hi := meanAt(0.95)
	if lo <= hi {
		t.Fatalf("low-trust seeds should explore farther: mean(0.05)=%v mean(0.95)=%v", lo, hi)
	}
}

func TestSpherePointUnitNorm(t *testing.T) {
	for _, n := range []int{2, 3, 5} {
		m := New(DefaultConfig(), n, rand.New(rand.NewSource(11)))
		for i := 0; i < 50; i++ {
			p := m.spherePoint()
			if len(p) != linalg.PackedLen(n) {
				t.Fatalf("n=%d: direction has dimension %d", n, len(p))
			}
			var norm float64
			for _, x := range p {
				norm += x * x
			}
			if math.Abs(math.Sqrt(norm)-1) > 1e-12 {
				t.Fatalf("n=%d: direction not unit norm: %v", n, norm)
			}
		}
	}
}

func TestAlphaSchedule(t *testing.T) {
	m := New(DefaultConfig(), 2, rand.New(rand.NewSource(1)))

	cold := m.alpha(0)  // no strong candidate: wide exploration
	hot := m.alpha(1.0) // converged candidate: tight sampling
	if cold >= hot {
		t.Fatalf("alpha should rise with confidence: cold=%v hot=%v", cold, hot)
	}
	if math.Abs(cold-1/0.2) > 1e-12 {
		t.Fatalf("cold alpha = %v, want 5", cold)
	}
	if math.Abs(hot-1/0.01) > 1e-12 {
		t.Fatalf("hot alpha = %v, want 100", hot)
	}
}

func TestGenerateShiftsDeterministic(t *testing.T) {
	trusts := [][]float64{{0.9, 0.1, 0.4}, {0.2, 0.6, 0.3}}
	mk := func() [][]*mat.Dense {
		return [][]*mat.Dense{
			{identity(3), identity(3), identity(3)},
			{identity(3), identity(3), identity(3)},
		}
	}

	a := New(DefaultConfig(), 3, rand.New(rand.NewSource(99))).GenerateShifts(trusts, mk(), 4, 1)
	b := New(DefaultConfig(), 3, rand.New(rand.NewSource(99))).GenerateShifts(trusts, mk(), 4, 1)

	for i := range a {
		if linalg.FrobDistance(a[i], b[i]) != 0 {
			t.Fatalf("shift %d differs across identically seeded runs", i)
		}
	}
}

func TestHistoryDecayFavorsRecentRows(t *testing.T) {
	m := New(DefaultConfig(), 2, rand.New(rand.NewSource(17)))

	// Same trust everywhere: after decay the cursor row must dominate.
	trusts := [][]float64{{0.5, 0.5}, {0.5, 0.5}, {0.5, 0.5}}
	coeffs := [][]*mat.Dense{
		{identity(2), identity(2)},
		{identity(2), identity(2)},
		{identity(2), identity(2)},
	}
	flat, _ := m.flattenDecayed(trusts, coeffs, 1)

	// cursor=1: row 1 has age 0, row 0 age 1, row 2 age 2.
	if !(flat[2] > flat[0] && flat[0] > flat[4]) {
		t.Fatalf("decay weights wrong: %v", flat)
	}
}
