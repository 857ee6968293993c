package pool

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewRingValidation(t *testing.T) {
	if _, err := NewRing(0, 4); err == nil {
		t.Fatal("expected error for zero depth")
	}
	if _, err := NewRing(2, 0); err == nil {
		t.Fatal("expected error for zero slots")
	}
}

func TestRingCursorInvariant(t *testing.T) {
	r, err := NewRing(3, 2)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}

	// Read cursor always trails the write cursor by one, mod depth.
	for i := 0; i < 7; i++ {
		w := r.WriteCursor()
		rd := r.ReadCursor()
		if (rd+1)%r.Depth() != w {
			t.Fatalf("cycle %d: read %d does not trail write %d", i, rd, w)
		}
		r.Advance()
	}
	if r.WriteCursor() != 7%3 {
		t.Fatalf("cursor drifted: %d", r.WriteCursor())
	}
}

func TestRingCommittedRows(t *testing.T) {
	r, _ := NewRing(3, 2)
	cases := []struct{ cycle, want int }{
		{0, 0}, {1, 1}, {2, 2}, {3, 3}, {10, 3},
	}
	for _, c := range cases {
		if got := r.CommittedRows(c.cycle); got != c.want {
			t.Errorf("CommittedRows(%d) = %d, want %d", c.cycle, got, c.want)
		}
	}
}

func TestRingTrustClamped(t *testing.T) {
	r, _ := NewRing(1, 1)
	r.SetTrust(0, 0, 1.7)
	if r.Trust(0, 0) != 1 {
		t.Fatalf("trust not clamped above: %v", r.Trust(0, 0))
	}
	r.SetTrust(0, 0, -0.3)
	if r.Trust(0, 0) != 0 {
		t.Fatalf("trust not clamped below: %v", r.Trust(0, 0))
	}
}

func TestRingEnergySentinel(t *testing.T) {
	r, _ := NewRing(1, 2)
	if r.Energy(0) != EnergySentinel {
		t.Fatal("fresh slot should carry the energy sentinel")
	}
	r.SetEnergy(0, -1.5)
	r.ResetEnergy(0)
	if r.Energy(0) != EnergySentinel {
		t.Fatal("reset should restore the sentinel")
	}
}

func TestRingCloneRowCopyOnWrite(t *testing.T) {
	r, _ := NewRing(2, 2)
	a := mat.NewDense(1, 1, []float64{1})
	b := mat.NewDense(1, 1, []float64{2})
	r.SetCoeffs(0, 0, a)
	r.SetCoeffs(0, 1, b)

	buf := r.CloneRow(0)
	buf[1] = mat.NewDense(1, 1, []float64{3})

	// Buffer mutation must not leak into the committed row until SetRow.
	if r.Coeffs(0, 1).At(0, 0) != 2 {
		t.Fatal("buffer write leaked into committed row")
	}
	r.SetRow(1, buf)
	if r.Coeffs(1, 1).At(0, 0) != 3 {
		t.Fatal("SetRow did not install the buffer")
	}
	// The untouched slot shares the committed matrix.
	if r.Coeffs(1, 0) != a {
		t.Fatal("unchanged slot should share the committed matrix")
	}
}

func TestRingBestTrustAndMinEnergy(t *testing.T) {
	r, _ := NewRing(1, 3)
	r.SetTrust(0, 0, 0.2)
	r.SetTrust(0, 1, 0.9)
	r.SetTrust(0, 2, 0.5)
	if slot, trust := r.BestTrust(0); slot != 1 || trust != 0.9 {
		t.Fatalf("BestTrust = (%d, %v)", slot, trust)
	}

	r.SetEnergy(0, -0.5)
	r.SetEnergy(1, -2.5)
	r.SetEnergy(2, 1.0)
	if slot, e := r.MinEnergy(); slot != 1 || e != -2.5 {
		t.Fatalf("MinEnergy = (%d, %v)", slot, e)
	}
}

func TestRingTrustSlabIsACopy(t *testing.T) {
	r, _ := NewRing(2, 2)
	r.SetTrust(0, 0, 0.4)
	slab := r.TrustSlab(2)
	slab[0][0] = 0.99
	if r.Trust(0, 0) != 0.4 {
		t.Fatal("slab mutation leaked into ring")
	}
}
