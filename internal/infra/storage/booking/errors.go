package booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Totaedandan/auame/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят активной бронью
	ErrSlotNotAvailable = errors.New("booking.repository: slot not available")

	// ErrDuplicateID возвращается при попытке сохранить бронь с существующим ID
	ErrDuplicateID = errors.New("booking.repository: duplicate booking id")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("booking.repository: transaction error")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)

// SlotConflictError пакетная вставка отклонена, Slots содержит все занятые слоты пакета
type SlotConflictError struct {
	Slots []domain.Slot
}

func (e *SlotConflictError) Error() string {
	parts := make([]string, 0, len(e.Slots))
	for _, s := range e.Slots {
		parts = append(parts, fmt.Sprintf("%s %s", s.Date, s.Time))
	}
	return fmt.Sprintf("%v: %s", ErrSlotNotAvailable, strings.Join(parts, ", "))
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
