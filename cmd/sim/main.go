// Command sim прогоняет забеги без окна под автопилотом и сохраняет итоги.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"go-survivor/internal/app"
	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/event"
	"go-survivor/internal/store"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := flag.String("config", "config/survivor.yaml", "path to simulation config")
	runs := flag.Int("runs", 8, "number of runs")
	seed := flag.Uint64("seed", 1, "seed of the first run, the rest follow it")
	minutes := flag.Float64("minutes", 10, "time limit of a single run in game minutes")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "parallel runs")
	dsn := flag.String("dsn", "", "PostgreSQL DSN, overrides database_dsn from config")
	flag.Parse()

	cfg, err := config.LoadSim(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	if *dsn != "" {
		cfg.DatabaseDSN = *dsn
	}
	if *runs <= 0 {
		return errors.New("runs must be positive")
	}
	if *seed == 0 {
		// Нулевой сид означает случайный, а серия должна воспроизводиться.
		return errors.New("seed must be non-zero")
	}

	lib, err := loadLibrary(cfg.DefsDir)
	if err != nil {
		return fmt.Errorf("loading definitions: %w", err)
	}

	rec, closeStore, err := openStore(ctx, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer closeStore()

	maxTicks := int(*minutes * 60 * float64(cfg.TPS))
	results := make([]event.RunSummary, *runs)
	started := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(*workers, 1))
	for i := range *runs {
		runCfg := cfg
		runCfg.Seed = *seed + uint64(i)
		g.Go(func() error {
			game := app.NewGame(runCfg, lib, event.NopCues{})
			summary, err := app.Simulate(gctx, game, maxTicks)
			if err != nil {
				return fmt.Errorf("run seed %d: %w", runCfg.Seed, err)
			}
			results[i] = summary
			slog.Info("run finished",
				"seed", summary.Seed,
				"time", summary.ElapsedTime,
				"wave", summary.Wave,
				"level", summary.Level,
				"kills", summary.Kills,
				"gems", summary.Gems)
			if err := rec.Record(gctx, summary); err != nil {
				return fmt.Errorf("recording run seed %d: %w", runCfg.Seed, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	best, err := rec.Best(ctx)
	if err != nil {
		return fmt.Errorf("loading records: %w", err)
	}
	slog.Info("simulation complete",
		"runs", len(results),
		"duration", time.Since(started).Round(time.Millisecond),
		"best_time", best.BestTime,
		"best_wave", best.BestWave,
		"total_kills", best.TotalKills,
		"recorded_runs", best.Runs)
	return nil
}

func loadLibrary(dir string) (*defs.Library, error) {
	if dir == "" {
		return defs.LoadDefault()
	}
	return defs.LoadLibrary(dir)
}

func openStore(ctx context.Context, dsn string) (store.Recorder, func(), error) {
	if dsn == "" {
		return store.NewMemory(), func() {}, nil
	}
	if err := store.RunMigrations(ctx, dsn); err != nil {
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	pg, err := store.Open(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	return pg, pg.Close, nil
}
