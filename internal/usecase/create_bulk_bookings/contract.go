package create_bulk_bookings

import (
	"context"

	"github.com/Totaedandan/auame/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CreateBatch сохраняет все брони или ни одной
	CreateBatch(ctx context.Context, bookings []*domain.Booking) error
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
