package bookings

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Totaedandan/auame/internal/domain"
	bookingRepo "github.com/Totaedandan/auame/internal/infra/storage/booking"
	"github.com/Totaedandan/auame/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type counterStamps struct {
	next int64
}

func (c *counterStamps) Next(n int) int64 {
	base := c.next
	c.next += int64(n)
	return base
}

type recordingMetrics struct {
	created   map[string]int
	conflicts map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{created: map[string]int{}, conflicts: map[string]int{}}
}

func (m *recordingMetrics) BookingCreated(source string, count int) { m.created[source] += count }
func (m *recordingMetrics) SlotConflict(source string)              { m.conflicts[source]++ }

func newTestService() (*Service, *recordingMetrics) {
	m := newRecordingMetrics()
	svc := NewService(bookingRepo.NewMemoryRepository(), &counterStamps{next: 1000}, m, nopLogger{})
	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return svc, m
}

func price(v float64) *float64 { return &v }

func validRequest(date, time string) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		ServiceID:   "trial",
		ServiceName: "Пробный сеанс AIR VIBE",
		Price:       price(7000),
		Date:        date,
		Time:        time,
		ClientName:  "Анна",
		ClientPhone: "+77001234567",
	}
}

func TestService_CreateAndConflict(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService()

	created, err := svc.Create(ctx, validRequest("2025-06-02", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, string(domain.StatusPaid), created.Status)
	assert.Equal(t, domain.AnonymousUserID, created.UserID)
	assert.Equal(t, int64(1000), created.Timestamp)

	_, err = svc.Create(ctx, validRequest("2025-06-02", "10:00"))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	assert.Equal(t, 1, m.created[metricsSource])
	assert.Equal(t, 1, m.conflicts[metricsSource])

	busy, err := svc.IsSlotBusy(ctx, "2025-06-02", "10:00")
	require.NoError(t, err)
	assert.True(t, busy)
}

func TestService_CreateKeepsUserID(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest("2025-06-02", "10:00")
	req.UserID = "user-42"

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "user-42", created.UserID)
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *models.CreateBookingRequest)
		wantErr error
	}{
		{name: "no service id", modify: func(r *models.CreateBookingRequest) { r.ServiceID = "" }, wantErr: ErrInvalidInput},
		{name: "no service name", modify: func(r *models.CreateBookingRequest) { r.ServiceName = "" }, wantErr: ErrInvalidInput},
		{name: "no price", modify: func(r *models.CreateBookingRequest) { r.Price = nil }, wantErr: ErrInvalidInput},
		{name: "no client name", modify: func(r *models.CreateBookingRequest) { r.ClientName = "" }, wantErr: ErrInvalidInput},
		{name: "no client phone", modify: func(r *models.CreateBookingRequest) { r.ClientPhone = "" }, wantErr: ErrInvalidInput},
		{name: "no date", modify: func(r *models.CreateBookingRequest) { r.Date = "" }, wantErr: ErrInvalidInput},
		{name: "negative price", modify: func(r *models.CreateBookingRequest) { r.Price = price(-1) }, wantErr: ErrInvalidPrice},
		{name: "bad date", modify: func(r *models.CreateBookingRequest) { r.Date = "02.06.2025" }, wantErr: ErrInvalidBookingDate},
		{name: "bad time", modify: func(r *models.CreateBookingRequest) { r.Time = "25:00" }, wantErr: ErrInvalidBookingDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			req := validRequest("2025-06-02", "10:00")
			tt.modify(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_ZeroPriceIsValid(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest("2025-06-02", "10:00")
	req.Price = price(0)

	created, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, float64(0), created.Price)
}

func TestService_ListOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	for _, tm := range []string{"10:00", "11:00", "12:00"} {
		_, err := svc.Create(ctx, validRequest("2025-06-02", tm))
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, &models.ListBookingsRequest{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "id-3", list[0].ID)
	assert.Equal(t, "id-2", list[1].ID)
	assert.Equal(t, "id-1", list[2].ID)

	_, err = svc.List(ctx, &models.ListBookingsRequest{Status: "paid"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.List(ctx, &models.ListBookingsRequest{Date: "2025/06/02"})
	assert.ErrorIs(t, err, ErrInvalidBookingDate)

	list, err = svc.List(ctx, &models.ListBookingsRequest{Date: "2025-06-03"})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService()

	created, err := svc.Create(ctx, validRequest("2025-06-02", "10:00"))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, "Unknown")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, "missing", "Confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	canceled, err := svc.UpdateStatus(ctx, created.ID, "Canceled")
	require.NoError(t, err)
	assert.Equal(t, "Canceled", canceled.Status)

	// слот освобождён
	_, err = svc.Create(ctx, validRequest("2025-06-02", "10:00"))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, "Paid")
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, m.conflicts["status"])

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Canceled", got.Status)

	_, err = svc.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
