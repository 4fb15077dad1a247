package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Totaedandan/auame/internal/domain"
	scheduleRepo "github.com/Totaedandan/auame/internal/infra/storage/schedule"
	"github.com/Totaedandan/auame/internal/service/schedule/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(enabled bool, start, end string) *models.DayRequest {
	return &models.DayRequest{Enabled: &enabled, Start: &start, End: &end}
}

func fullRequest() models.UpdateScheduleRequest {
	req := models.UpdateScheduleRequest{}
	for _, d := range domain.Weekdays {
		req[string(d)] = day(true, "09:00", "18:00")
	}
	return req
}

func newTestService() *Service {
	return NewService(scheduleRepo.NewMemoryRepository(nil), nopLogger{})
}

func TestService_GetDefault(t *testing.T) {
	got, err := newTestService().Get(context.Background())
	require.NoError(t, err)

	assert.Len(t, got, 7)
	assert.Equal(t, models.DayResponse{Enabled: true, Start: "10:00", End: "19:00"}, got["monday"])
	assert.Equal(t, models.DayResponse{Enabled: true, Start: "10:00", End: "18:00"}, got["saturday"])
	assert.Equal(t, models.DayResponse{Enabled: false, Start: "10:00", End: "17:00"}, got["sunday"])
}

func TestService_UpdateSuccess(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	req := fullRequest()
	req["sunday"] = day(false, "00:00", "00:00")
	req["holiday"] = day(true, "10:00", "12:00")

	got, err := svc.Update(ctx, req)
	require.NoError(t, err)
	assert.Len(t, got, 7)
	assert.Equal(t, "09:00", got["monday"].Start)
	assert.False(t, got["sunday"].Enabled)
	assert.NotContains(t, got, "holiday")

	again, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestService_UpdateValidation(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(req models.UpdateScheduleRequest)
		wantDay     domain.Weekday
		wantMissing bool
	}{
		{
			name:        "missing day",
			modify:      func(req models.UpdateScheduleRequest) { delete(req, "wednesday") },
			wantDay:     domain.Wednesday,
			wantMissing: true,
		},
		{
			name:    "undecodable day",
			modify:  func(req models.UpdateScheduleRequest) { req["tuesday"] = nil },
			wantDay: domain.Tuesday,
		},
		{
			name:    "inverted range",
			modify:  func(req models.UpdateScheduleRequest) { req["monday"] = day(true, "18:00", "10:00") },
			wantDay: domain.Monday,
		},
		{
			name:    "equal start and end",
			modify:  func(req models.UpdateScheduleRequest) { req["friday"] = day(true, "10:00", "10:00") },
			wantDay: domain.Friday,
		},
		{
			name:    "bad time format",
			modify:  func(req models.UpdateScheduleRequest) { req["saturday"] = day(true, "9:00", "18:00") },
			wantDay: domain.Saturday,
		},
		{
			name:    "enabled not boolean",
			modify:  func(req models.UpdateScheduleRequest) { req["thursday"].Enabled = nil },
			wantDay: domain.Thursday,
		},
		{
			name:    "disabled with empty end",
			modify:  func(req models.UpdateScheduleRequest) { req["sunday"] = day(false, "10:00", "") },
			wantDay: domain.Sunday,
		},
		{
			name: "first failing day wins",
			modify: func(req models.UpdateScheduleRequest) {
				req["friday"] = day(true, "20:00", "10:00")
				req["monday"] = day(true, "20:00", "10:00")
			},
			wantDay: domain.Monday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newTestService()
			req := fullRequest()
			tt.modify(req)

			_, err := svc.Update(ctx, req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)

			var dayErr *DayError
			require.True(t, errors.As(err, &dayErr))
			assert.Equal(t, tt.wantDay, dayErr.Day)
			assert.Equal(t, tt.wantMissing, dayErr.Missing)

			// шаблон не изменился
			got, err := svc.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, "10:00", got["monday"].Start)
		})
	}
}

func TestService_DisabledDayTimesNotValidated(t *testing.T) {
	req := fullRequest()
	req["sunday"] = day(false, "closed", "closed")

	got, err := newTestService().Update(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "closed", got["sunday"].Start)
}
