package update_booking_status

import (
	"context"

	"github.com/Totaedandan/auame/internal/service/bookings/models"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, id string, status string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
