package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivor/internal/event"
)

func TestPostgres_RecordAndBest(t *testing.T) {
	p := setupPostgres(t)
	ctx := context.Background()

	r, err := p.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, Records{}, r)

	require.NoError(t, p.Record(ctx, event.RunSummary{Seed: 7, ElapsedTime: 120.25, Ticks: 7215, Kills: 80, Wave: 5, Level: 6, Gems: 9}))
	require.NoError(t, p.Record(ctx, event.RunSummary{Seed: 8, ElapsedTime: 44, Ticks: 2640, Kills: 20, Wave: 7, Level: 3}))

	r, err = p.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, Records{BestTime: 120.25, BestWave: 7, TotalKills: 100, Runs: 2, Gems: 9}, r)

	// Повторный прогон миграций ничего не меняет и данные остаются.
	require.NoError(t, RunMigrations(ctx, p.pool.Config().ConnString()))
	r, err = p.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Runs)
}

func TestPostgres_OpenBadDSN(t *testing.T) {
	_, err := Open(context.Background(), "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1")
	require.Error(t, err)
}
