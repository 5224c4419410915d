// Package store сохраняет итоги забегов и считает рекорды.
package store

import (
	"context"

	"go-survivor/internal/event"
)

// Records — агрегаты по всем сохранённым забегам.
type Records struct {
	BestTime   float64
	BestWave   int
	TotalKills int
	Runs       int
	Gems       int
}

// Recorder сохраняет итог забега и отдаёт рекорды.
type Recorder interface {
	Record(ctx context.Context, run event.RunSummary) error
	Best(ctx context.Context) (Records, error)
}

// add учитывает один забег в агрегатах.
func (r *Records) add(run event.RunSummary) {
	r.Runs++
	r.TotalKills += run.Kills
	r.Gems += run.Gems
	r.BestTime = max(r.BestTime, run.ElapsedTime)
	r.BestWave = max(r.BestWave, run.Wave)
}

var (
	_ Recorder = (*Memory)(nil)
	_ Recorder = (*Postgres)(nil)
)
