package get_bookings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Totaedandan/auame/internal/api/handlers"
	"github.com/Totaedandan/auame/internal/service/bookings"
	"github.com/Totaedandan/auame/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "Неверный статус"
	msgInvalidDate   = "Неверный формат даты. Ожидается YYYY-MM-DD."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings
// Query params: date (optional, YYYY-MM-DD), status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{
		Date:   strings.TrimSpace(query.Get("date")),
		Status: strings.TrimSpace(query.Get("status")),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid status filter: status=%q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidBookingDate):
			h.logger.Warn("GET /bookings - Invalid date filter: date=%q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: date=%q, status=%q, count=%d",
		req.Date, req.Status, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
