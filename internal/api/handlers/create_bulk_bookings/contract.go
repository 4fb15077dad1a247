package create_bulk_bookings

import (
	"context"

	createBulkBookings "github.com/Totaedandan/auame/internal/usecase/create_bulk_bookings"
)

type CreateBulkBookingsUseCase interface {
	Execute(ctx context.Context, req *createBulkBookings.Request) (*createBulkBookings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
