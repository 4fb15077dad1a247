package create_bulk_bookings

import "github.com/Totaedandan/auame/internal/domain"

// Request модель запроса на создание пакета броней
type Request struct {
	ClientName  string
	ClientPhone string
	PackageName string
	Price       *float64 // nil: цена не передана или не число, используется 0
	// Sessions == nil означает, что список сеансов не передан.
	// nil элемент соответствует сеансу, который не удалось разобрать.
	Sessions []*SessionRequest
}

// SessionRequest сеанс из запроса
type SessionRequest struct {
	Date string
	Time string
}

// Session нормализованный сеанс
type Session struct {
	Date string
	Time string
}

// Response модель ответа с созданными бронями
type Response struct {
	Created  int
	Bookings []*domain.Booking
}
