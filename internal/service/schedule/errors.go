package schedule

import (
	"errors"
	"fmt"

	"github.com/Totaedandan/auame/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// DayError ошибка валидации конкретного дня.
// Missing == true: настроек дня нет в запросе, иначе значения некорректны.
type DayError struct {
	Day     domain.Weekday
	Missing bool
}

func (e *DayError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%v: missing settings for day %s", ErrInvalidInput, e.Day)
	}
	return fmt.Sprintf("%v: invalid settings for day %s", ErrInvalidInput, e.Day)
}

func (e *DayError) Unwrap() error {
	return ErrInvalidInput
}
