package create_bulk_bookings

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput не указан клиент, пакет или список сеансов
	ErrInvalidInput = errors.New("create_bulk_bookings: invalid input data")

	// ErrNoSessions после нормализации не осталось ни одного сеанса
	ErrNoSessions = errors.New("create_bulk_bookings: no sessions")

	// ErrInvalidFormat дата или время сеанса в неверном формате
	ErrInvalidFormat = errors.New("create_bulk_bookings: invalid date or time format")

	// ErrSlotNotAvailable часть слотов пакета занята
	ErrSlotNotAvailable = errors.New("create_bulk_bookings: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_bulk_bookings: internal error")
)

// FormatError сеансы с неверной датой или временем
type FormatError struct {
	Sessions []Session
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %d sessions", ErrInvalidFormat, len(e.Sessions))
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// ConflictError сеансы, слоты которых заняты или повторяются внутри пакета
type ConflictError struct {
	Conflicts []Session
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %d conflicts", ErrSlotNotAvailable, len(e.Conflicts))
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
