package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Totaedandan/auame/internal/domain"
	"github.com/Totaedandan/auame/pkg/types"
)

// MemoryRepository хранит бронирования в памяти процесса.
// Проверка слота и вставка выполняются под одной блокировкой,
// active индексирует слоты, занятые активными бронями.
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	active   map[domain.Slot]string
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		bookings: make(map[string]*domain.Booking),
		active:   make(map[domain.Slot]string),
	}
}

// IsSlotBusy проверяет, занят ли слот активной бронью
func (r *MemoryRepository) IsSlotBusy(_ context.Context, slot domain.Slot) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, busy := r.active[slot]
	return busy, nil
}

// BusySlots возвращает время всех активных броней на дату
func (r *MemoryRepository) BusySlots(_ context.Context, date types.DateString) (map[types.TimeString]struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	busy := make(map[types.TimeString]struct{})
	for slot := range r.active {
		if slot.Date == date {
			busy[slot.Time] = struct{}{}
		}
	}
	return busy, nil
}

// Create атомарно проверяет слот и сохраняет бронь
func (r *MemoryRepository) Create(_ context.Context, booking *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return fmt.Errorf("%w: Create - id=%s", ErrDuplicateID, booking.ID)
	}

	if booking.IsActive() {
		if _, busy := r.active[booking.Slot()]; busy {
			return fmt.Errorf("%w: Create - date=%s time=%s", ErrSlotNotAvailable, booking.Date, booking.Time)
		}
	}

	r.insert(booking)
	return nil
}

// CreateBatch сохраняет все брони или ни одной.
// Слоты, занятые в хранилище или повторяющиеся внутри пакета, возвращаются в *SlotConflictError.
func (r *MemoryRepository) CreateBatch(_ context.Context, bookings []*domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conflicts := make([]domain.Slot, 0)
	seen := make(map[domain.Slot]struct{}, len(bookings))
	for _, b := range bookings {
		if _, exists := r.bookings[b.ID]; exists {
			return fmt.Errorf("%w: CreateBatch - id=%s", ErrDuplicateID, b.ID)
		}
		if !b.IsActive() {
			continue
		}

		slot := b.Slot()
		_, busy := r.active[slot]
		_, dup := seen[slot]
		if busy || dup {
			conflicts = append(conflicts, slot)
		}
		seen[slot] = struct{}{}
	}

	if len(conflicts) > 0 {
		return &SlotConflictError{Slots: conflicts}
	}

	for _, b := range bookings {
		r.insert(b)
	}
	return nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: GetByID - id=%s", ErrBookingNotFound, id)
	}
	cp := *b
	return &cp, nil
}

// List возвращает брони по фильтру, сначала новые
func (r *MemoryRepository) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if filter.Date != nil && b.Date != *filter.Date {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		cp := *b
		result = append(result, &cp)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp > result[j].Timestamp
	})

	return result, nil
}

// UpdateStatus меняет статус брони.
// Возврат отменённой брони в активный статус невозможен, если её слот уже занят.
func (r *MemoryRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("%w: UpdateStatus - id=%s", ErrBookingNotFound, id)
	}

	slot := b.Slot()
	switch {
	case b.IsActive() && !status.IsActive():
		if r.active[slot] == b.ID {
			delete(r.active, slot)
		}
	case !b.IsActive() && status.IsActive():
		if holder, busy := r.active[slot]; busy && holder != b.ID {
			return nil, fmt.Errorf("%w: UpdateStatus - id=%s date=%s time=%s",
				ErrSlotNotAvailable, id, b.Date, b.Time)
		}
		r.active[slot] = b.ID
	}

	b.Status = status
	cp := *b
	return &cp, nil
}

func (r *MemoryRepository) insert(b *domain.Booking) {
	cp := *b
	r.bookings[cp.ID] = &cp
	if cp.IsActive() {
		r.active[cp.Slot()] = cp.ID
	}
}
