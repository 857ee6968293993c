package checkpoint

import (
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func snapshot(trusts, energies []float64, n int) []SlotRecord {
	slots := make([]SlotRecord, len(trusts))
	for i := range slots {
		data := make([]float64, n*n)
		for k := range data {
			data[k] = float64(i*100 + k)
		}
		slots[i] = SlotRecord{
			Slot:   i,
			Trust:  trusts[i],
			Energy: energies[i],
			Coeffs: mat.NewDense(n, n, data),
		}
	}
	return slots
}

func TestCreateRunAndList(t *testing.T) {
	s := tempStore(t)

	id, err := s.CreateRun(map[string]int{"threads": 8})
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty run ID")
	}

	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].RunID != id {
		t.Fatalf("expected %s, got %s", id, runs[0].RunID)
	}
	if runs[0].ConfigJSON != `{"threads":8}` {
		t.Fatalf("unexpected config json: %s", runs[0].ConfigJSON)
	}
}

func TestSaveAndLoadCycle(t *testing.T) {
	s := tempStore(t)
	id, err := s.CreateRun(nil)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	slots := snapshot([]float64{0.9, 0.2, 0.5}, []float64{-1.5, -0.3, -0.8}, 2)
	if err := s.SaveCycle(id, 4, 1, slots); err != nil {
		t.Fatalf("SaveCycle: %v", err)
	}

	rec, err := s.LoadCycle(id, 4)
	if err != nil {
		t.Fatalf("LoadCycle: %v", err)
	}
	if rec.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", rec.Cursor)
	}
	if len(rec.Slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(rec.Slots))
	}
	for i, got := range rec.Slots {
		want := slots[i]
		if got.Slot != want.Slot || got.Trust != want.Trust || got.Energy != want.Energy {
			t.Fatalf("slot %d: got %+v", i, got)
		}
		if !mat.Equal(got.Coeffs, want.Coeffs) {
			t.Fatalf("slot %d: coefficient round-trip mismatch", i)
		}
	}
}

func TestLoadLatestPicksHighestCycle(t *testing.T) {
	s := tempStore(t)
	id, err := s.CreateRun(nil)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	for cycle := 0; cycle < 3; cycle++ {
		slots := snapshot([]float64{float64(cycle) / 10}, []float64{-float64(cycle)}, 2)
		if err := s.SaveCycle(id, cycle, cycle%2, slots); err != nil {
			t.Fatalf("SaveCycle %d: %v", cycle, err)
		}
	}

	rec, err := s.LoadLatest(id)
	if err != nil {
		t.Fatalf("LoadLatest: %v", err)
	}
	if rec.Cycle != 2 {
		t.Fatalf("expected cycle 2, got %d", rec.Cycle)
	}
	if rec.Slots[0].Energy != -2 {
		t.Fatalf("expected energy -2, got %f", rec.Slots[0].Energy)
	}
}

func TestSaveCycleOverwritesStaleRows(t *testing.T) {
	s := tempStore(t)
	id, err := s.CreateRun(nil)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}

	if err := s.SaveCycle(id, 0, 0, snapshot([]float64{0.1, 0.2}, []float64{-1, -2}, 2)); err != nil {
		t.Fatalf("first SaveCycle: %v", err)
	}
	if err := s.SaveCycle(id, 0, 0, snapshot([]float64{0.7, 0.8}, []float64{-3, -4}, 2)); err != nil {
		t.Fatalf("second SaveCycle: %v", err)
	}

	rec, err := s.LoadCycle(id, 0)
	if err != nil {
		t.Fatalf("LoadCycle: %v", err)
	}
	if len(rec.Slots) != 2 {
		t.Fatalf("expected 2 slots after overwrite, got %d", len(rec.Slots))
	}
	if rec.Slots[0].Trust != 0.7 {
		t.Fatalf("expected fresh trust 0.7, got %f", rec.Slots[0].Trust)
	}
}

func TestDecodeMatrixRejectsMalformedBlobs(t *testing.T) {
	if _, err := decodeMatrix([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for short blob")
	}

	// Header claims 2x2 but carries a single value.
	blob := encodeMatrix(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	if _, err := decodeMatrix(blob[:8+8]); err == nil {
		t.Fatal("expected error for truncated payload")
	}
}

func TestLoadCycleMissingSnapshot(t *testing.T) {
	s := tempStore(t)
	id, err := s.CreateRun(nil)
	if err != nil {
		t.Fatalf("CreateRun: %v", err)
	}
	if _, err := s.LoadCycle(id, 7); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}
