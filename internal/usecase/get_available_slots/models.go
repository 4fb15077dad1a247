package get_available_slots

import (
	"github.com/Totaedandan/auame/internal/domain"
	"github.com/Totaedandan/auame/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа со списком слотов дня
type Response struct {
	Date        types.DateString
	Weekday     domain.Weekday
	Enabled     bool // рабочий ли день по шаблону
	StepMinutes int
	Slots       []domain.AvailableSlot
}
