package create_bulk_bookings

import (
	"fmt"

	"github.com/Totaedandan/auame/pkg/types"
)

// validateRequest проверяет клиента, пакет и наличие списка сеансов
func validateRequest(req *Request) error {
	if req.ClientName == "" || req.ClientPhone == "" || req.PackageName == "" {
		return fmt.Errorf("%w: clientName, clientPhone and packageName are required", ErrInvalidInput)
	}
	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	if req.Sessions == nil {
		return fmt.Errorf("%w: sessions must be a list", ErrInvalidInput)
	}
	return nil
}

// normalizeSessions отбрасывает сеансы без даты или времени и обрезает время до HH:MM
func normalizeSessions(sessions []*SessionRequest) []Session {
	result := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s == nil || s.Date == "" || s.Time == "" {
			continue
		}
		result = append(result, Session{
			Date: s.Date,
			Time: types.Truncate(s.Time),
		})
	}
	return result
}

// invalidSessions сеансы с неверным форматом даты или времени
func invalidSessions(sessions []Session) []Session {
	invalid := make([]Session, 0)
	for _, s := range sessions {
		if !isValidDate(s.Date) || types.TimeString(s.Time).Validate() != nil {
			invalid = append(invalid, s)
		}
	}
	return invalid
}

func isValidDate(date string) bool {
	return types.DateString(date).Validate() == nil
}
