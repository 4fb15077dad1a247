package create_booking

import (
	"errors"
	"net/http"

	"github.com/Totaedandan/auame/internal/api/handlers"
	"github.com/Totaedandan/auame/internal/service/bookings"
)

const (
	msgMissingFields    = "Не все поля заполнены"
	msgInvalidPrice     = "Цена не может быть отрицательной"
	msgInvalidFormat    = "Неверный формат даты или времени. Ожидается YYYY-MM-DD и HH:mm."
	msgSlotNotAvailable = "В это время уже есть запись. Выберите другое время."
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

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		// поле неверного типа (например, price строкой) равносильно незаполненному
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	booking, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Missing fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, bookings.ErrInvalidPrice):
			h.logger.Warn("POST /bookings - Negative price: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, bookings.ErrInvalidBookingDate):
			h.logger.Warn("POST /bookings - Invalid date or time: date=%q, time=%q", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidFormat)

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, time=%s",
		booking.ID, booking.Date, booking.Time)
	handlers.RespondJSON(w, http.StatusCreated, booking)
}
