package update_schedule

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Totaedandan/auame/internal/api/handlers"
	"github.com/Totaedandan/auame/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "Неверные данные расписания"
	msgMissingDay         = "Отсутствуют настройки для дня: %s"
	msgInvalidDay         = "Некорректные значения для дня: %s"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest())
	if err != nil {
		var dayErr *schedule.DayError
		switch {
		case errors.As(err, &dayErr):
			h.logger.Warn("PUT /schedule - Invalid day: day=%s, missing=%t", dayErr.Day, dayErr.Missing)
			if dayErr.Missing {
				handlers.RespondBadRequest(w, fmt.Sprintf(msgMissingDay, dayErr.Day))
			} else {
				handlers.RespondBadRequest(w, fmt.Sprintf(msgInvalidDay, dayErr.Day))
			}

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule - Invalid data: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /schedule - Failed to update schedule: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule - Schedule updated successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
