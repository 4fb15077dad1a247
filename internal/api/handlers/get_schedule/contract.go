package get_schedule

import (
	"context"

	"github.com/Totaedandan/auame/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context) (models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
