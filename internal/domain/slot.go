package domain

import "github.com/Totaedandan/auame/pkg/types"

// AvailableSlot слот расписания на конкретную дату
type AvailableSlot struct {
	Time types.TimeString
	Busy bool
}
