package get_available_slots

import (
	"fmt"

	"github.com/Totaedandan/auame/internal/domain"
	"github.com/Totaedandan/auame/pkg/types"
)

// generateTimeSlots генерирует начала слотов дня с шагом step.
// Слот попадает в список, только если целиком помещается до конца дня:
// start=10:00 end=11:30 step=60 дает ["10:00"].
func generateTimeSlots(day domain.DayConfig, step int) ([]types.TimeString, error) {
	if !day.Enabled {
		return []types.TimeString{}, nil
	}
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", step)
	}

	start, err := types.TimeString(day.Start).Minutes()
	if err != nil {
		return nil, err
	}
	end, err := types.TimeString(day.End).Minutes()
	if err != nil {
		return nil, err
	}

	slots := make([]types.TimeString, 0, (end-start)/step+1)
	for current := start; current+step <= end; current += step {
		slot, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// markBusy отмечает слоты, занятые активными бронями
func markBusy(slots []types.TimeString, busy map[types.TimeString]struct{}) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(slots))
	for i, slot := range slots {
		_, taken := busy[slot]
		result[i] = domain.AvailableSlot{Time: slot, Busy: taken}
	}
	return result
}
