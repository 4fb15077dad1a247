package domain

import (
	"github.com/Totaedandan/auame/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusPaid      BookingStatus = "Paid" // «забронировано», к оплате отношения не имеет
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCanceled  BookingStatus = "Canceled"
	StatusCompleted BookingStatus = "Completed"
)

// Statuses все допустимые статусы в порядке жизненного цикла
var Statuses = []BookingStatus{
	StatusPending,
	StatusPaid,
	StatusConfirmed,
	StatusCanceled,
	StatusCompleted,
}

// ParseStatus проверяет, что строка является допустимым статусом
func ParseStatus(s string) (BookingStatus, bool) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// IsActive активная бронь занимает слот
func (s BookingStatus) IsActive() bool {
	return s != StatusCanceled
}

// Booking запись клиента на сеанс
type Booking struct {
	ID          string
	ServiceID   string
	ServiceName string
	Price       float64
	Date        types.DateString
	Time        types.TimeString
	ClientName  string
	ClientPhone string
	Status      BookingStatus
	Timestamp   int64 // unix ms, строго возрастает в пределах процесса
	UserID      string
}

// Slot пара дата + время, единица конфликта
type Slot struct {
	Date types.DateString
	Time types.TimeString
}

// Slot возвращает слот, который занимает бронь
func (b *Booking) Slot() Slot {
	return Slot{Date: b.Date, Time: b.Time}
}

// IsActive returns true if the booking holds its slot
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// BookingsFilter фильтр списка бронирований, nil поля не применяются
type BookingsFilter struct {
	Date   *types.DateString
	Status *BookingStatus
}
