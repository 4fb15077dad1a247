package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotNotAvailable возвращается, когда слот занят активной бронью
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidPrice возвращается при отрицательной цене
	ErrInvalidPrice = errors.New("price must be non-negative")

	// ErrInvalidBookingDate возвращается при некорректной дате или времени бронирования
	ErrInvalidBookingDate = errors.New("invalid booking date or time")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
