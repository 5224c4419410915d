package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-survivor/internal/event"
)

func TestMemory_EmptyRecords(t *testing.T) {
	r, err := NewMemory().Best(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Records{}, r)
}

func TestMemory_Aggregates(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Record(ctx, event.RunSummary{Seed: 1, ElapsedTime: 95.5, Kills: 40, Wave: 3, Level: 4, Gems: 2}))
	require.NoError(t, m.Record(ctx, event.RunSummary{Seed: 2, ElapsedTime: 61, Kills: 12, Wave: 6, Level: 2}))
	require.NoError(t, m.Record(ctx, event.RunSummary{Seed: 3, ElapsedTime: 30, Kills: 3, Wave: 1, Level: 1, Gems: 5}))

	r, err := m.Best(ctx)
	require.NoError(t, err)
	assert.Equal(t, Records{BestTime: 95.5, BestWave: 6, TotalKills: 55, Runs: 3, Gems: 7}, r)
	assert.Len(t, m.Runs(), 3)
	assert.Equal(t, uint64(2), m.Runs()[1].Seed)
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewMemory()

	assert.ErrorIs(t, m.Record(ctx, event.RunSummary{}), context.Canceled)
	_, err := m.Best(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Runs())
}
