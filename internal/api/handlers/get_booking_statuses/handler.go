package get_booking_statuses

import (
	"net/http"

	"github.com/Totaedandan/auame/internal/api/handlers"
	"github.com/Totaedandan/auame/internal/domain"
)

// Подписи статусов для интерфейса. Коды в API и хранилище не меняются.
var labels = map[domain.BookingStatus]string{
	domain.StatusPending:   "Ожидает",
	domain.StatusPaid:      "Забронировано",
	domain.StatusConfirmed: "Подтверждён",
	domain.StatusCanceled:  "Отменено",
	domain.StatusCompleted: "Завершено",
}

// StatusLabel код статуса и его подпись
type StatusLabel struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Label подпись статуса; для неизвестного кода возвращается сам код
func Label(status domain.BookingStatus) string {
	if label, ok := labels[status]; ok {
		return label
	}
	return string(status)
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/booking-statuses
func (h *Handler) Handle(w http.ResponseWriter, _ *http.Request) {
	resp := make([]StatusLabel, 0, len(domain.Statuses))
	for _, status := range domain.Statuses {
		resp = append(resp, StatusLabel{Code: string(status), Label: Label(status)})
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}
