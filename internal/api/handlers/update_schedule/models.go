package update_schedule

import (
	"encoding/json"

	"github.com/Totaedandan/auame/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model: день недели -> настройки дня
type UpdateScheduleRequest map[string]json.RawMessage

type dayPayload struct {
	Enabled *bool   `json:"enabled"`
	Start   *string `json:"start"`
	End     *string `json:"end"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса.
// null равносилен отсутствию дня, день неверного типа передается как nil.
func (r UpdateScheduleRequest) ToServiceRequest() models.UpdateScheduleRequest {
	req := make(models.UpdateScheduleRequest, len(r))
	for day, raw := range r {
		if string(raw) == "null" {
			continue
		}

		var p dayPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			req[day] = nil
			continue
		}
		req[day] = &models.DayRequest{
			Enabled: p.Enabled,
			Start:   p.Start,
			End:     p.End,
		}
	}
	return req
}
