package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "midnight", value: "00:00"},
		{name: "last minute", value: "23:59"},
		{name: "regular", value: "14:30"},
		{name: "hour 24", value: "24:00", wantErr: true},
		{name: "minute 60", value: "10:60", wantErr: true},
		{name: "single digit hour", value: "9:00", wantErr: true},
		{name: "with seconds", value: "10:00:00", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeString_Arithmetic(t *testing.T) {
	start := TimeString("10:30")

	minutes, err := start.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	next, err := start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("12:00"), next)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "10:00", Truncate("10:00:00"))
	assert.Equal(t, "10:00", Truncate("10:00"))
	assert.Equal(t, "9", Truncate("9"))
}

func TestDateString_Validate(t *testing.T) {
	assert.NoError(t, DateString("2025-06-02").Validate())
	assert.ErrorIs(t, DateString("2025-6-2").Validate(), ErrInvalidDateFormat)
	assert.ErrorIs(t, DateString("2025-13-01").Validate(), ErrInvalidDateFormat)
	assert.ErrorIs(t, DateString("").Validate(), ErrInvalidDateFormat)
}

func TestDateString_Weekday(t *testing.T) {
	weekday, err := DateString("2025-06-02").Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, weekday)

	weekday, err = DateString("2025-06-01").Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, weekday)
}
