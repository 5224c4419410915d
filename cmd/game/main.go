// cmd/game/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-survivor/internal/config"
	"go-survivor/internal/defs"
	"go-survivor/internal/event"
	"go-survivor/internal/state"
	"go-survivor/internal/store"
)

const (
	ConfigPath    = "config/survivor.yaml"
	startFromGame = false // true — начинать сразу с забега, false — с меню
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := ConfigPath
	if p := os.Getenv("SURVIVOR_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSim(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	if addr := os.Getenv("SURVIVOR_PPROF"); addr != "" {
		go func() {
			slog.Info("pprof stopped", "err", http.ListenAndServe(addr, nil))
		}()
	}

	lib, err := loadLibrary(cfg.DefsDir)
	if err != nil {
		return fmt.Errorf("loading definitions: %w", err)
	}

	rec, closeStore, err := openStore(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer closeStore()

	env := state.NewEnv(cfg, lib, rec, event.LogCues{})
	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewGameState(sm, env))
	} else {
		sm.SetState(state.NewMenuState(sm, env))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Survivor")
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func loadLibrary(dir string) (*defs.Library, error) {
	if dir == "" {
		return defs.LoadDefault()
	}
	return defs.LoadLibrary(dir)
}

// openStore подключает PostgreSQL, если задан DSN, иначе хранит рекорды в памяти.
func openStore(dsn string) (store.Recorder, func(), error) {
	if dsn == "" {
		slog.Info("no database configured, records kept in memory")
		return store.NewMemory(), func() {}, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := store.RunMigrations(ctx, dsn); err != nil {
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	pg, err := store.Open(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	slog.Info("database connected")
	return pg, pg.Close, nil
}
