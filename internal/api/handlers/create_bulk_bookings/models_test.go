package create_bulk_bookings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) *BulkBookingRequest {
	t.Helper()
	var req BulkBookingRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	return &req
}

func TestToUseCaseRequest(t *testing.T) {
	req := decode(t, `{
		"clientName": "Мария",
		"clientPhone": "+77007654321",
		"packageName": "Абонемент",
		"price": 48000,
		"sessions": [{"date": "2025-06-02", "time": "10:00"}, 42, {"date": "2025-06-03"}]
	}`).ToUseCaseRequest()

	require.NotNil(t, req.Price)
	assert.Equal(t, 48000.0, *req.Price)
	require.Len(t, req.Sessions, 3)
	assert.Equal(t, "2025-06-02", req.Sessions[0].Date)
	assert.Nil(t, req.Sessions[1])
	assert.Empty(t, req.Sessions[2].Time)
}

func TestToUseCaseRequest_LooseFields(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantPrice    bool
		wantSessions bool
	}{
		{name: "price as string", raw: `{"price": "48000", "sessions": []}`, wantSessions: true},
		{name: "no sessions", raw: `{"price": 1}`, wantPrice: true},
		{name: "sessions null", raw: `{"sessions": null}`},
		{name: "sessions object", raw: `{"sessions": {"date": "2025-06-02"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := decode(t, tt.raw).ToUseCaseRequest()
			assert.Equal(t, tt.wantPrice, req.Price != nil)
			assert.Equal(t, tt.wantSessions, req.Sessions != nil)
		})
	}
}

func TestToUseCaseRequest_NonStringSessionFields(t *testing.T) {
	req := decode(t, `{
		"sessions": [
			{"date": 20250603, "time": "11:00"},
			{"date": "2025-06-04", "time": true},
			{"date": {"y": 2025}, "time": "12:00"},
			{"date": null, "time": "13:00"}
		]
	}`).ToUseCaseRequest()

	require.Len(t, req.Sessions, 4)
	assert.Equal(t, "20250603", req.Sessions[0].Date)
	assert.Equal(t, "11:00", req.Sessions[0].Time)
	assert.Equal(t, "true", req.Sessions[1].Time)
	assert.Equal(t, `{"y":2025}`, req.Sessions[2].Date)
	// null равносилен отсутствию поля
	assert.Empty(t, req.Sessions[3].Date)
}
