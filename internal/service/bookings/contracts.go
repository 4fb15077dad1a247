package bookings

import (
	"context"

	"github.com/Totaedandan/auame/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	IsSlotBusy(ctx context.Context, slot domain.Slot) (bool, error)
}

// StampSequence источник строго возрастающих меток времени
type StampSequence interface {
	Next(n int) int64
}

// MetricsRecorder бизнес-метрики
type MetricsRecorder interface {
	BookingCreated(source string, count int)
	SlotConflict(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
