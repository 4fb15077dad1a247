package get_available_slots

import (
	"context"
	"fmt"

	"github.com/Totaedandan/auame/internal/domain"
)

// UseCase use case для получения слотов дня с признаком занятости
type UseCase struct {
	bookingRepo     BookingRepository
	scheduleService ScheduleService
	stepMinutes     int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleService ScheduleService,
	stepMinutes int,
	logger Logger,
) *UseCase {
	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}
	return &UseCase{
		bookingRepo:     bookingRepo,
		scheduleService: scheduleService,
		stepMinutes:     stepMinutes,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	weekday, err := domain.WeekdayOf(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// 2. Настройки дня из шаблона
	schedule, err := uc.scheduleService.GetDomain(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	day := schedule[weekday]

	resp := &Response{
		Date:        date,
		Weekday:     weekday,
		Enabled:     day.Enabled,
		StepMinutes: uc.stepMinutes,
		Slots:       []domain.AvailableSlot{},
	}

	if !day.Enabled {
		uc.logger.Info("GetAvailableSlots: %s (%s) is a day off", date, weekday)
		return resp, nil
	}

	// 3. Генерируем временные слоты
	timeSlots, err := generateTimeSlots(day, uc.stepMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 4. Занятые слоты на дату
	busy, err := uc.bookingRepo.BusySlots(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp.Slots = markBusy(timeSlots, busy)

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, %d busy", len(resp.Slots), date, len(busy))
	return resp, nil
}
