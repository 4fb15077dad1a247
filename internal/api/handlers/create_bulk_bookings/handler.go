package create_bulk_bookings

import (
	"errors"
	"net/http"

	"github.com/Totaedandan/auame/internal/api/handlers"
	"github.com/Totaedandan/auame/internal/service/bookings/models"
	createBulkBookings "github.com/Totaedandan/auame/internal/usecase/create_bulk_bookings"
)

const (
	msgInvalidData   = "Неверные данные. Проверьте клиента и сеансы."
	msgNoSessions    = "Нужно указать хотя бы одну дату и время для сеанса."
	msgInvalidFormat = "Неверный формат даты или времени. Ожидается YYYY-MM-DD и HH:mm."
	msgConflicts     = "Некоторые слоты уже заняты. Исправьте расписание."
	msgCreated       = "Записи по пакету успешно созданы."
)

type Handler struct {
	useCase CreateBulkBookingsUseCase
	logger  Logger
}

func NewHandler(useCase CreateBulkBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bulk-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BulkBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bulk-bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var (
			formatErr   *createBulkBookings.FormatError
			conflictErr *createBulkBookings.ConflictError
		)
		switch {
		case errors.Is(err, createBulkBookings.ErrInvalidInput):
			h.logger.Warn("POST /bulk-bookings - Invalid data: client=%q, package=%q", req.ClientName, req.PackageName)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createBulkBookings.ErrNoSessions):
			h.logger.Warn("POST /bulk-bookings - No sessions: client=%q", req.ClientName)
			handlers.RespondBadRequest(w, msgNoSessions)

		case errors.As(err, &formatErr):
			h.logger.Warn("POST /bulk-bookings - Invalid session format: client=%q, invalid=%d",
				req.ClientName, len(formatErr.Sessions))
			handlers.RespondJSON(w, http.StatusBadRequest, InvalidSessionsResponse{
				Code:    http.StatusBadRequest,
				Message: msgInvalidFormat,
				Invalid: toSessionPayloads(formatErr.Sessions),
			})

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bulk-bookings - Slots already taken: client=%q, conflicts=%d",
				req.ClientName, len(conflictErr.Conflicts))
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Code:      http.StatusConflict,
				Message:   msgConflicts,
				Conflicts: toSessionPayloads(conflictErr.Conflicts),
			})

		default:
			h.logger.Error("POST /bulk-bookings - Failed to create bookings: client=%q, error=%v", req.ClientName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bulk-bookings - Package booked successfully: client=%s, package=%s, created=%d",
		req.ClientName, req.PackageName, result.Created)
	handlers.RespondJSON(w, http.StatusCreated, BulkBookingResponse{
		Message:  msgCreated,
		Created:  result.Created,
		Bookings: models.FromDomainBookingList(result.Bookings),
	})
}
