package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Totaedandan/auame/internal/domain"
	bookingRepo "github.com/Totaedandan/auame/internal/infra/storage/booking"
	"github.com/Totaedandan/auame/internal/service/bookings/models"
	"github.com/Totaedandan/auame/pkg/types"
)

const metricsSource = "single"

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	stamps      StampSequence
	metrics     MetricsRecorder
	logger      Logger
	newID       func() string
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	stamps StampSequence,
	metrics MetricsRecorder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		stamps:      stamps,
		metrics:     metrics,
		logger:      logger,
		newID:       uuid.NewString,
	}
}

// Create создает бронирование со статусом Paid.
// Проверка слота и вставка выполняются хранилищем атомарно.
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: creating booking service=%s date=%s time=%s", req.ServiceID, req.Date, req.Time)

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	userID := req.UserID
	if userID == "" {
		userID = domain.AnonymousUserID
	}

	booking := &domain.Booking{
		ID:          s.newID(),
		ServiceID:   req.ServiceID,
		ServiceName: req.ServiceName,
		Price:       *req.Price,
		Date:        types.DateString(req.Date),
		Time:        types.TimeString(req.Time),
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		Status:      domain.StatusPaid,
		Timestamp:   s.stamps.Next(1),
		UserID:      userID,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
			s.logger.Warn("Create: slot date=%s time=%s is busy", req.Date, req.Time)
			s.metrics.SlotConflict(metricsSource)
			return nil, ErrSlotNotAvailable
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.metrics.BookingCreated(metricsSource, 1)
	s.logger.Info("Create: booking id=%s created for date=%s time=%s", booking.ID, booking.Date, booking.Time)
	return models.FromDomainBooking(booking), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает бронирования, сначала новые. Дата и статус фильтруют по точному совпадению.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) ([]models.BookingResponse, error) {
	s.logger.Info("List: fetching bookings date=%q status=%q", req.Date, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		if errors.Is(err, models.ErrInvalidStatus) {
			return nil, fmt.Errorf("%w: status=%s", ErrInvalidStatus, req.Status)
		}
		return nil, fmt.Errorf("%w: date=%s", ErrInvalidBookingDate, req.Date)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус бронирования. Разрешён любой переход,
// кроме возврата отменённой брони в слот, который уже занят.
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", id, status)

	newStatus, ok := domain.ParseStatus(status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%s", status, id)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
			s.logger.Warn("UpdateStatus: booking id=%s cannot be reactivated, slot is busy", id)
			s.metrics.SlotConflict("status")
			return nil, ErrSlotNotAvailable
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%s now has status=%s", id, booking.Status)
	return models.FromDomainBooking(booking), nil
}

// IsSlotBusy проверяет, занят ли слот активной бронью
func (s *Service) IsSlotBusy(ctx context.Context, date, time string) (bool, error) {
	busy, err := s.bookingRepo.IsSlotBusy(ctx, domain.Slot{
		Date: types.DateString(date),
		Time: types.TimeString(time),
	})
	if err != nil {
		s.logger.Error("IsSlotBusy: repository error for date=%s time=%s: %v", date, time, err)
		return false, fmt.Errorf("%w: IsSlotBusy - repository error: %v", ErrInternal, err)
	}
	return busy, nil
}

func validateCreate(req *models.CreateBookingRequest) error {
	missing := make([]string, 0)
	check := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}
	check("serviceId", req.ServiceID)
	check("serviceName", req.ServiceName)
	if req.Price == nil {
		missing = append(missing, "price")
	}
	check("date", req.Date)
	check("time", req.Time)
	check("clientName", req.ClientName)
	check("clientPhone", req.ClientPhone)

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	if *req.Price < 0 {
		return fmt.Errorf("%w: price=%v", ErrInvalidPrice, *req.Price)
	}

	if err := types.DateString(req.Date).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBookingDate, err)
	}
	if err := types.TimeString(req.Time).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBookingDate, err)
	}

	return nil
}
