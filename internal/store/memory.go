package store

import (
	"context"
	"sync"

	"go-survivor/internal/event"
)

// Memory держит забеги в памяти процесса. Используется без базы и в тестах.
type Memory struct {
	mu   sync.Mutex
	runs []event.RunSummary
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Record(ctx context.Context, run event.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return nil
}

func (m *Memory) Best(ctx context.Context) (Records, error) {
	if err := ctx.Err(); err != nil {
		return Records{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var r Records
	for _, run := range m.runs {
		r.add(run)
	}
	return r, nil
}

// Runs возвращает копию сохранённых забегов в порядке записи.
func (m *Memory) Runs() []event.RunSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]event.RunSummary(nil), m.runs...)
}
