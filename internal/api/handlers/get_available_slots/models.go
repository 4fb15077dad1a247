package get_available_slots

import (
	getAvailableSlots "github.com/Totaedandan/auame/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date        string          `json:"date"`
	Weekday     string          `json:"weekday"`
	Enabled     bool            `json:"enabled"`
	StepMinutes int             `json:"stepMinutes"`
	Slots       []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Time string `json:"time"`
	Busy bool   `json:"busy"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time: slot.Time.String(),
			Busy: slot.Busy,
		}
	}

	return &AvailableSlotsResponse{
		Date:        resp.Date.String(),
		Weekday:     string(resp.Weekday),
		Enabled:     resp.Enabled,
		StepMinutes: resp.StepMinutes,
		Slots:       slots,
	}
}
