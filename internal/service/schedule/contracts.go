package schedule

import (
	"context"

	"github.com/Totaedandan/auame/internal/domain"
)

// ScheduleRepository интерфейс хранилища недельного шаблона
type ScheduleRepository interface {
	Get(ctx context.Context) (domain.Schedule, error)
	Save(ctx context.Context, days domain.Schedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
