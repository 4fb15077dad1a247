package create_bulk_bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Totaedandan/auame/internal/domain"
	bookingRepo "github.com/Totaedandan/auame/internal/infra/storage/booking"
	"github.com/Totaedandan/auame/pkg/types"
)

const metricsSource = "bulk"

// UseCase use case для создания пакета броней одного клиента
type UseCase struct {
	bookingRepo BookingRepository
	stamps      StampSequence
	metrics     MetricsRecorder
	logger      Logger
	newID       func() string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	stamps StampSequence,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		stamps:      stamps,
		metrics:     metrics,
		logger:      logger,
		newID:       uuid.NewString,
	}
}

// Execute создает по брони на каждый сеанс. Если хотя бы один слот занят
// (или повторяется внутри пакета), не создается ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBulkBookings: client=%s phone=%s package=%s sessions=%d",
		req.ClientName, req.ClientPhone, req.PackageName, len(req.Sessions))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBulkBookings: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализация сеансов
	sessions := normalizeSessions(req.Sessions)
	if len(sessions) == 0 {
		uc.logger.Warn("CreateBulkBookings: no valid sessions")
		return nil, ErrNoSessions
	}

	// 3. Формат даты и времени
	if invalid := invalidSessions(sessions); len(invalid) > 0 {
		uc.logger.Warn("CreateBulkBookings: %d sessions have invalid format", len(invalid))
		return nil, &FormatError{Sessions: invalid}
	}

	// 4. Собираем брони
	price := 0.0
	if req.Price != nil {
		price = *req.Price
	}

	base := uc.stamps.Next(len(sessions))
	bookings := make([]*domain.Booking, len(sessions))
	for i, s := range sessions {
		bookings[i] = &domain.Booking{
			ID:          uc.newID(),
			ServiceID:   domain.PackageServiceID,
			ServiceName: req.PackageName,
			Price:       price,
			Date:        types.DateString(s.Date),
			Time:        types.TimeString(s.Time),
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			Status:      domain.StatusPaid,
			Timestamp:   base + int64(i),
			UserID:      domain.PackageUserID,
		}
	}

	// 5. Проверка конфликтов и вставка атомарно в хранилище
	if err := uc.bookingRepo.CreateBatch(ctx, bookings); err != nil {
		var conflictErr *bookingRepo.SlotConflictError
		if errors.As(err, &conflictErr) {
			conflicts := make([]Session, 0, len(conflictErr.Slots))
			for _, slot := range conflictErr.Slots {
				conflicts = append(conflicts, Session{Date: slot.Date.String(), Time: slot.Time.String()})
			}
			uc.logger.Warn("CreateBulkBookings: %d sessions conflict with existing bookings", len(conflicts))
			uc.metrics.SlotConflict(metricsSource)
			return nil, &ConflictError{Conflicts: conflicts}
		}
		uc.logger.Error("CreateBulkBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to create bookings: %v", ErrInternal, err)
	}

	uc.metrics.BookingCreated(metricsSource, len(bookings))
	uc.logger.Info("CreateBulkBookings: created %d bookings for client=%s (%s)",
		len(bookings), req.ClientName, req.ClientPhone)

	return &Response{
		Created:  len(bookings),
		Bookings: bookings,
	}, nil
}
