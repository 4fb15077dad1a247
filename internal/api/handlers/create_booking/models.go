package create_booking

import "github.com/Totaedandan/auame/internal/service/bookings/models"

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID   string   `json:"serviceId"`
	ServiceName string   `json:"serviceName"`
	Price       *float64 `json:"price"`
	Date        string   `json:"date"` // "2025-06-02"
	Time        string   `json:"time"` // "14:00"
	ClientName  string   `json:"clientName"`
	ClientPhone string   `json:"clientPhone"`
	UserID      string   `json:"userId,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBookingRequest) ToServiceRequest() *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
		Price:       r.Price,
		Date:        r.Date,
		Time:        r.Time,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		UserID:      r.UserID,
	}
}
