package create_bulk_bookings

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Totaedandan/auame/internal/service/bookings/models"
	createBulkBookings "github.com/Totaedandan/auame/internal/usecase/create_bulk_bookings"
)

// BulkBookingRequest HTTP request model.
// price и sessions разбираются вручную: нечисловая цена означает 0,
// sessions не массивом считается структурной ошибкой.
type BulkBookingRequest struct {
	ClientName  string          `json:"clientName"`
	ClientPhone string          `json:"clientPhone"`
	PackageName string          `json:"packageName"`
	Price       interface{}     `json:"price,omitempty"`
	Sessions    json.RawMessage `json:"sessions"`
}

// SessionPayload сеанс в запросе и в ответах с ошибками
type SessionPayload struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// sessionInput сеанс в том виде, в котором пришел.
// Нестроковые date/time не отбрасываются, а попадают в проверку формата.
type sessionInput struct {
	Date interface{} `json:"date"`
	Time interface{} `json:"time"`
}

// BulkBookingResponse HTTP response model
type BulkBookingResponse struct {
	Message  string                   `json:"message"`
	Created  int                      `json:"created"`
	Bookings []models.BookingResponse `json:"bookings"`
}

// InvalidSessionsResponse 400 с перечнем сеансов в неверном формате
type InvalidSessionsResponse struct {
	Code    int              `json:"code"`
	Message string           `json:"message"`
	Invalid []SessionPayload `json:"invalid"`
}

// ConflictResponse 409 с перечнем занятых слотов
type ConflictResponse struct {
	Code      int              `json:"code"`
	Message   string           `json:"message"`
	Conflicts []SessionPayload `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BulkBookingRequest) ToUseCaseRequest() *createBulkBookings.Request {
	req := &createBulkBookings.Request{
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		PackageName: r.PackageName,
	}

	if price, ok := r.Price.(float64); ok {
		req.Price = &price
	}

	var raw []json.RawMessage
	if len(r.Sessions) == 0 || json.Unmarshal(r.Sessions, &raw) != nil || raw == nil {
		return req
	}

	req.Sessions = make([]*createBulkBookings.SessionRequest, 0, len(raw))
	for _, item := range raw {
		var s sessionInput
		if err := json.Unmarshal(item, &s); err != nil {
			// сеанс не объектом отбрасывается при нормализации
			req.Sessions = append(req.Sessions, nil)
			continue
		}
		req.Sessions = append(req.Sessions, &createBulkBookings.SessionRequest{
			Date: stringify(s.Date),
			Time: stringify(s.Time),
		})
	}
	return req
}

// stringify приводит JSON значение к строке; null дает пустую строку
func stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		if data, err := json.Marshal(v); err == nil {
			return string(data)
		}
		return fmt.Sprint(v)
	}
}

func toSessionPayloads(sessions []createBulkBookings.Session) []SessionPayload {
	result := make([]SessionPayload, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, SessionPayload{Date: s.Date, Time: s.Time})
	}
	return result
}
