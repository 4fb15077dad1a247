package get_available_slots

import (
	"fmt"

	"github.com/Totaedandan/auame/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (types.DateString, error) {
	if req.Date == "" {
		return "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	return date, nil
}
