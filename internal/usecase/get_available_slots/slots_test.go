package get_available_slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Totaedandan/auame/internal/domain"
	"github.com/Totaedandan/auame/pkg/types"
)

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name string
		day  domain.DayConfig
		step int
		want []types.TimeString
	}{
		{
			name: "partial last slot is dropped",
			day:  domain.DayConfig{Enabled: true, Start: "10:00", End: "11:30"},
			step: 60,
			want: []types.TimeString{"10:00"},
		},
		{
			name: "full weekday",
			day:  domain.DayConfig{Enabled: true, Start: "10:00", End: "19:00"},
			step: 60,
			want: []types.TimeString{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00"},
		},
		{
			name: "half hour step",
			day:  domain.DayConfig{Enabled: true, Start: "09:30", End: "11:00"},
			step: 30,
			want: []types.TimeString{"09:30", "10:00", "10:30"},
		},
		{
			name: "range shorter than step",
			day:  domain.DayConfig{Enabled: true, Start: "10:00", End: "10:45"},
			step: 60,
			want: []types.TimeString{},
		},
		{
			name: "day off",
			day:  domain.DayConfig{Enabled: false, Start: "10:00", End: "17:00"},
			step: 60,
			want: []types.TimeString{},
		},
		{
			name: "late evening does not cross midnight",
			day:  domain.DayConfig{Enabled: true, Start: "22:00", End: "23:59"},
			step: 60,
			want: []types.TimeString{"22:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := generateTimeSlots(tt.day, tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateTimeSlots_Errors(t *testing.T) {
	_, err := generateTimeSlots(domain.DayConfig{Enabled: true, Start: "10:00", End: "19:00"}, 0)
	assert.Error(t, err)

	_, err = generateTimeSlots(domain.DayConfig{Enabled: true, Start: "ten", End: "19:00"}, 60)
	assert.Error(t, err)
}

func TestGenerateTimeSlots_Restartable(t *testing.T) {
	day := domain.DayConfig{Enabled: true, Start: "10:00", End: "14:00"}

	first, err := generateTimeSlots(day, 60)
	require.NoError(t, err)
	second, err := generateTimeSlots(day, 60)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMarkBusy(t *testing.T) {
	slots := []types.TimeString{"10:00", "11:00", "12:00"}
	busy := map[types.TimeString]struct{}{"11:00": {}, "15:00": {}}

	got := markBusy(slots, busy)
	assert.Equal(t, []domain.AvailableSlot{
		{Time: "10:00", Busy: false},
		{Time: "11:00", Busy: true},
		{Time: "12:00", Busy: false},
	}, got)
}
