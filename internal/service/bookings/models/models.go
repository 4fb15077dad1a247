package models

import (
	"github.com/Totaedandan/auame/internal/domain"
	"github.com/Totaedandan/auame/pkg/types"
)

// Request модели

// CreateBookingRequest запрос на создание бронирования.
// Price == nil означает, что цена не передана или передана не числом.
type CreateBookingRequest struct {
	ServiceID   string
	ServiceName string
	Price       *float64
	Date        string
	Time        string
	ClientName  string
	ClientPhone string
	UserID      string
}

// ListBookingsRequest фильтр списка, пустые поля не применяются
type ListBookingsRequest struct {
	Date   string
	Status string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          string  `json:"id"`
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"` // "2025-10-15"
	Time        string  `json:"time"` // "10:00"
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	Status      string  `json:"status"`
	Timestamp   int64   `json:"timestamp"`
	UserID      string  `json:"userId"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		Price:       b.Price,
		Date:        b.Date.String(),
		Time:        b.Time.String(),
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		Status:      string(b.Status),
		Timestamp:   b.Timestamp,
		UserID:      b.UserID,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp = append(resp, *bookingResp)
		}
	}
	return resp
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if r.Date != "" {
		date, err := types.NewDateStringFromString(r.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}

	if r.Status != "" {
		status, ok := domain.ParseStatus(r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}
