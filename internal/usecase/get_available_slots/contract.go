package get_available_slots

import (
	"context"

	"github.com/Totaedandan/auame/internal/domain"
	"github.com/Totaedandan/auame/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// BusySlots время всех активных (не отменённых) броней на дату
	BusySlots(ctx context.Context, date types.DateString) (map[types.TimeString]struct{}, error)
}

// ScheduleService источник недельного шаблона
type ScheduleService interface {
	GetDomain(ctx context.Context) (domain.Schedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
