package get_booking_statuses

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Totaedandan/auame/internal/domain"
)

func TestLabel(t *testing.T) {
	assert.Equal(t, "Забронировано", Label(domain.StatusPaid))
	assert.Equal(t, "Отменено", Label(domain.StatusCanceled))
	assert.Equal(t, "Archived", Label(domain.BookingStatus("Archived")))

	for _, status := range domain.Statuses {
		assert.NotEqual(t, string(status), Label(status), status)
	}
}
