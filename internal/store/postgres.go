package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"go-survivor/internal/event"
	"go-survivor/internal/store/migrations"
)

// Postgres пишет забеги в таблицу runs.
type Postgres struct {
	pool *pgxpool.Pool
}

// Open подключается к PostgreSQL и проверяет соединение.
func Open(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

// NewPostgres оборачивает уже открытый pool.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Close() {
	p.pool.Close()
}

// RunMigrations применяет встроенные миграции goose.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

func (p *Postgres) Record(ctx context.Context, run event.RunSummary) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO runs (seed, elapsed_time, ticks, kills, wave, level, gems)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		int64(run.Seed), run.ElapsedTime, run.Ticks, run.Kills, run.Wave, run.Level, run.Gems,
	)
	if err != nil {
		return fmt.Errorf("recording run (seed %d): %w", run.Seed, err)
	}
	return nil
}

func (p *Postgres) Best(ctx context.Context) (Records, error) {
	var r Records
	err := p.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(elapsed_time), 0), COALESCE(MAX(wave), 0),
		        COALESCE(SUM(kills), 0), COUNT(*), COALESCE(SUM(gems), 0)
		 FROM runs`,
	).Scan(&r.BestTime, &r.BestWave, &r.TotalKills, &r.Runs, &r.Gems)
	if err != nil {
		return Records{}, fmt.Errorf("querying records: %w", err)
	}
	return r, nil
}
