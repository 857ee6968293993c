package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gonum.org/v1/gonum/mat"

	"github.com/mhalvorsen/multiseed/go-solver/internal/checkpoint"
	"github.com/mhalvorsen/multiseed/go-solver/internal/oracle"
	"github.com/mhalvorsen/multiseed/go-solver/internal/orchestrator"
)

// #region main
func main() {
	cfg := orchestrator.DefaultConfig()

	demo := flag.Bool("demo", false, "solve the built-in two-level model instead of a remote engine")
	engineAddr := flag.String("engine", envOr("ENGINE_ADDR", "localhost:50051"), "gRPC address of the numerical engine")
	dbPath := flag.String("db", envOr("SOLVER_DB", ""), "optional SQLite checkpoint database")
	resume := flag.String("resume", "", "run ID to resume from the checkpoint database")
	flag.IntVar(&cfg.Threads, "threads", cfg.Threads, "number of agents in the pool")
	flag.IntVar(&cfg.MaxCycle, "cycles", cfg.MaxCycle, "cycle budget")
	flag.IntVar(&cfg.ConvergenceDigits, "digits", cfg.ConvergenceDigits, "convergence threshold digits")
	flag.IntVar(&cfg.MemDepth, "depth", cfg.MemDepth, "history ring depth")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "step worker bound (0 = one per agent)")
	flag.Float64Var(&cfg.InitScattering, "scattering", cfg.InitScattering, "initial pool scattering radius")
	flag.Float64Var(&cfg.StepSize, "step-size", cfg.StepSize, "engine step size cap")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var orc oracle.Oracle
	if *demo {
		orc = oracle.DefaultTwoLevel()
	} else {
		remote, err := oracle.NewRemote(ctx, *engineAddr, cfg.StepSize)
		if err != nil {
			log.Fatalf("connect to engine at %s: %v", *engineAddr, err)
		}
		defer remote.Close()
		orc = remote
	}

	cfg.OnCycle = func(st orchestrator.CycleStats) {
		fmt.Printf("cycle %3d  trust=%.8f  energy=%.10f  purged=%d\n",
			st.Cycle, st.BestTrust, st.BestEnergy, st.Purged)
	}

	solver, err := orchestrator.New(ctx, cfg, orc, identityGuess(orc))
	if err != nil {
		log.Fatalf("initialize solver: %v", err)
	}

	if *dbPath != "" {
		store, err := checkpoint.NewStore(*dbPath)
		if err != nil {
			log.Fatalf("open checkpoint db: %v", err)
		}
		defer store.Close()

		runID := *resume
		if runID == "" {
			runID, err = store.CreateRun(cfg)
			if err != nil {
				log.Fatalf("register run: %v", err)
			}
		} else {
			rec, err := store.LoadLatest(runID)
			if err != nil {
				log.Fatalf("load checkpoint for run %s: %v", runID, err)
			}
			if err := solver.Restore(rec.Slots); err != nil {
				log.Fatalf("restore pool: %v", err)
			}
			fmt.Printf("resuming run %s from cycle %d\n", runID, rec.Cycle)
		}
		solver.AttachCheckpoint(store, runID)
		fmt.Printf("checkpointing to %s (run %s)\n", *dbPath, runID)
	}

	res, err := solver.Run(ctx)
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}

	fmt.Println()
	if res.Converged {
		fmt.Printf("converged in %d cycles\n", res.Cycles)
	} else {
		fmt.Printf("exhausted after %d cycles, best candidate follows\n", res.Cycles)
	}
	fmt.Printf("total energy: %.10f\n", res.TotalEnergy)
	fmt.Print("orbital energies:")
	for _, e := range res.OrbitalEnergies {
		fmt.Printf(" %.6f", e)
	}
	fmt.Println()
	fmt.Printf("occupation: %v\n", res.Occupation)

	if !res.Converged {
		os.Exit(1)
	}
}
// #endregion main

// #region helpers
func identityGuess(orc oracle.Oracle) *mat.Dense {
	n := oracle.Dim(orc)
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
