package update_schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServiceRequest(t *testing.T) {
	var req UpdateScheduleRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"monday": {"enabled": true, "start": "10:00", "end": "19:00"},
		"tuesday": {"enabled": "yes", "start": "10:00", "end": "19:00"},
		"wednesday": null,
		"holiday": {"enabled": false}
	}`), &req))

	got := req.ToServiceRequest()

	require.Contains(t, got, "monday")
	require.NotNil(t, got["monday"])
	assert.True(t, *got["monday"].Enabled)
	assert.Equal(t, "19:00", *got["monday"].End)

	// неверный тип: день передан, но не разобран
	require.Contains(t, got, "tuesday")
	assert.Nil(t, got["tuesday"])

	// null равносилен отсутствию дня
	assert.NotContains(t, got, "wednesday")

	require.Contains(t, got, "holiday")
	assert.Nil(t, got["holiday"].Start)
}
