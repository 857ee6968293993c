package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/mhalvorsen/multiseed/go-solver/internal/checkpoint"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the checkpoint database")
	last := flag.Int("last", 20, "show N most recent runs")
	run := flag.String("run", "", "show the latest pool snapshot of one run")
	cycle := flag.Int("cycle", -1, "with --run, show a specific cycle")
	jsonOut := flag.Bool("json", false, "output as JSON instead of a table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/solver.db [--last N] [--run id [--cycle N]] [--json]")
		os.Exit(2)
	}

	store, err := checkpoint.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *run != "" {
		err = showRun(store, *run, *cycle, *jsonOut)
	} else {
		err = listRuns(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func listRuns(store *checkpoint.Store, limit int, jsonOut bool) error {
	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}
	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	fmt.Printf("%-36s  %-25s  %s\n", "RUN", "CREATED", "CONFIG")
	for _, r := range runs {
		cfg := r.ConfigJSON
		if len(cfg) > 60 {
			cfg = cfg[:57] + "..."
		}
		fmt.Printf("%-36s  %-25s  %s\n", r.RunID, r.CreatedAt.Format("2006-01-02 15:04:05"), cfg)
	}
	return nil
}

// #endregion list-mode

// #region run-mode

func showRun(store *checkpoint.Store, runID string, cycle int, jsonOut bool) error {
	var rec checkpoint.CycleRecord
	var err error
	if cycle >= 0 {
		rec, err = store.LoadCycle(runID, cycle)
	} else {
		rec, err = store.LoadLatest(runID)
	}
	if err != nil {
		return err
	}

	if jsonOut {
		type slotView struct {
			Slot   int     `json:"slot"`
			Trust  float64 `json:"trust"`
			Energy float64 `json:"energy"`
		}
		view := struct {
			Cycle  int        `json:"cycle"`
			Cursor int        `json:"cursor"`
			Slots  []slotView `json:"slots"`
		}{Cycle: rec.Cycle, Cursor: rec.Cursor}
		for _, s := range rec.Slots {
			view.Slots = append(view.Slots, slotView{Slot: s.Slot, Trust: s.Trust, Energy: s.Energy})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	fmt.Printf("run %s, cycle %d, cursor %d\n\n", runID, rec.Cycle, rec.Cursor)
	fmt.Printf("%-5s  %-12s  %s\n", "SLOT", "TRUST", "ENERGY")
	for _, s := range rec.Slots {
		fmt.Printf("%-5d  %-12.8f  %.10f\n", s.Slot, s.Trust, s.Energy)
	}
	return nil
}

// #endregion run-mode
