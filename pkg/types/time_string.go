package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var (
	// ErrInvalidTimeFormat возвращается, если строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, если результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time out of day range")
)

var timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

// TimeString время суток в формате "HH:MM" (24 часа, без часового пояса)
type TimeString string

// NewTimeStringFromMinutes создаёт TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Validate проверяет формат HH:MM (00-23 часы, 00-59 минуты)
func (t TimeString) Validate() error {
	if !timeRegex.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	hours, _ := strconv.Atoi(string(t[0:2]))
	minutes, _ := strconv.Atoi(string(t[3:5]))
	return hours*60 + minutes, nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут.
// Переход через полночь считается ошибкой.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// Truncate обрезает строку до первых 5 символов ("10:00:00" -> "10:00")
func Truncate(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
