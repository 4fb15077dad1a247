package schedule

import (
	"context"
	"fmt"
	"sync"

	"github.com/Totaedandan/auame/internal/domain"
	"github.com/Totaedandan/auame/internal/service/schedule/models"
	"github.com/Totaedandan/auame/pkg/types"
)

// Service сервис недельного шаблона расписания
type Service struct {
	// mu сериализует чтение-слияние-запись при обновлении
	mu           sync.Mutex
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Get возвращает текущий шаблон
func (s *Service) Get(ctx context.Context) (models.ScheduleResponse, error) {
	schedule, err := s.GetDomain(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSchedule(schedule), nil
}

// GetDomain возвращает текущий шаблон в виде domain модели
func (s *Service) GetDomain(ctx context.Context) (domain.Schedule, error) {
	schedule, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return schedule, nil
}

// Update проверяет все 7 дней по порядку monday..sunday и сливает их с текущим шаблоном.
// Неизвестные ключи игнорируются. При ошибке шаблон не меняется.
func (s *Service) Update(ctx context.Context, req models.UpdateScheduleRequest) (models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule")

	days := make(domain.Schedule, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		dayReq, present := req[string(day)]
		if !present {
			s.logger.Warn("Update: missing settings for day=%s", day)
			return nil, &DayError{Day: day, Missing: true}
		}

		cfg, ok := toDayConfig(dayReq)
		if !ok {
			s.logger.Warn("Update: invalid settings for day=%s", day)
			return nil, &DayError{Day: day}
		}
		days[day] = cfg
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.scheduleRepo.Save(ctx, days); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	schedule, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: repository error on reload: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: schedule updated")
	return models.FromDomainSchedule(schedule), nil
}

// toDayConfig проверяет день: enabled обязателен; у выключенного дня start/end
// только непустые, у включенного это время HH:MM и end > start
func toDayConfig(req *models.DayRequest) (domain.DayConfig, bool) {
	if req == nil || req.Enabled == nil || req.Start == nil || req.End == nil {
		return domain.DayConfig{}, false
	}

	cfg := domain.DayConfig{
		Enabled: *req.Enabled,
		Start:   *req.Start,
		End:     *req.End,
	}

	if !cfg.Enabled {
		return cfg, cfg.Start != "" && cfg.End != ""
	}

	start, err := types.TimeString(cfg.Start).Minutes()
	if err != nil {
		return cfg, false
	}
	end, err := types.TimeString(cfg.End).Minutes()
	if err != nil {
		return cfg, false
	}

	return cfg, end > start
}
