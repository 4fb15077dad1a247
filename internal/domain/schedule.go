package domain

import (
	"time"

	"github.com/Totaedandan/auame/pkg/types"
)

// Weekday ключ дня недели в шаблоне расписания
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays порядок проверки и вывода дней
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayByTime = map[time.Weekday]Weekday{
	time.Sunday:    Sunday,
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
}

// WeekdayOf ключ дня недели для даты
func WeekdayOf(date types.DateString) (Weekday, error) {
	wd, err := date.Weekday()
	if err != nil {
		return "", err
	}
	return weekdayByTime[wd], nil
}

// DayConfig настройки одного дня. Для выключенного дня Start/End не проверяются как время
type DayConfig struct {
	Enabled bool
	Start   string
	End     string
}

// Schedule недельный шаблон, всегда содержит все 7 дней
type Schedule map[Weekday]DayConfig

// Clone копия расписания
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// DefaultSchedule шаблон по умолчанию: будни 10-19, суббота 10-18, воскресенье выходной
func DefaultSchedule() Schedule {
	return Schedule{
		Monday:    {Enabled: true, Start: "10:00", End: "19:00"},
		Tuesday:   {Enabled: true, Start: "10:00", End: "19:00"},
		Wednesday: {Enabled: true, Start: "10:00", End: "19:00"},
		Thursday:  {Enabled: true, Start: "10:00", End: "19:00"},
		Friday:    {Enabled: true, Start: "10:00", End: "19:00"},
		Saturday:  {Enabled: true, Start: "10:00", End: "18:00"},
		Sunday:    {Enabled: false, Start: "10:00", End: "17:00"},
	}
}
