package types

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidDateFormat возвращается, если строка не является датой YYYY-MM-DD
var ErrInvalidDateFormat = errors.New("invalid date string format")

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateLayout формат даты для time.Parse
const DateLayout = "2006-01-02"

// DateString календарная дата "YYYY-MM-DD" без часового пояса
type DateString string

// NewDateStringFromString создаёт DateString из строки с проверкой формата
func NewDateStringFromString(s string) (DateString, error) {
	d := DateString(s)
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// String возвращает строковое представление
func (d DateString) String() string {
	return string(d)
}

// Validate проверяет формат и то, что дата существует в календаре
func (d DateString) Validate() error {
	if !dateRegex.MatchString(string(d)) {
		return fmt.Errorf("%w: %q", ErrInvalidDateFormat, string(d))
	}
	if _, err := time.Parse(DateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidDateFormat, string(d), err)
	}
	return nil
}

// Time возвращает полночь даты в UTC
func (d DateString) Time() (time.Time, error) {
	if err := d.Validate(); err != nil {
		return time.Time{}, err
	}
	return time.Parse(DateLayout, string(d))
}

// Weekday возвращает день недели даты
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}
