package models

import "github.com/Totaedandan/auame/internal/domain"

// DayRequest настройки дня из запроса. nil поле означает, что значение
// отсутствует или имеет неверный тип.
type DayRequest struct {
	Enabled *bool
	Start   *string
	End     *string
}

// UpdateScheduleRequest день недели -> настройки.
// Ключ с nil значением: день передан, но его не удалось разобрать.
type UpdateScheduleRequest map[string]*DayRequest

// DayResponse настройки дня
type DayResponse struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// ScheduleResponse недельный шаблон, ключи monday..sunday
type ScheduleResponse map[string]DayResponse

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(s domain.Schedule) ScheduleResponse {
	resp := make(ScheduleResponse, len(s))
	for day, cfg := range s {
		resp[string(day)] = DayResponse{
			Enabled: cfg.Enabled,
			Start:   cfg.Start,
			End:     cfg.End,
		}
	}
	return resp
}
