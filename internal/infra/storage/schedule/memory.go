package schedule

import (
	"context"
	"sync"

	"github.com/Totaedandan/auame/internal/domain"
)

// MemoryRepository шаблон расписания в памяти, живёт до перезапуска процесса
type MemoryRepository struct {
	mu       sync.RWMutex
	schedule domain.Schedule
}

// NewMemoryRepository создает хранилище с шаблоном initial (или шаблоном по умолчанию)
func NewMemoryRepository(initial domain.Schedule) *MemoryRepository {
	if initial == nil {
		initial = domain.DefaultSchedule()
	}
	return &MemoryRepository{schedule: initial.Clone()}
}

// Get возвращает копию текущего шаблона
func (r *MemoryRepository) Get(_ context.Context) (domain.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.schedule.Clone(), nil
}

// Save записывает переданные дни поверх текущих
func (r *MemoryRepository) Save(_ context.Context, days domain.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for day, cfg := range days {
		r.schedule[day] = cfg
	}
	return nil
}
