package metrics

import (
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.BookingCreated("single", 1)
	m.BookingCreated("bulk", 3)
	m.SlotConflict("single")
	m.ObserveHTTP(http.MethodPost, "/api/bookings", http.StatusCreated, 10*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingsCreated.WithLabelValues("single")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.BookingsCreated.WithLabelValues("bulk")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingConflicts.WithLabelValues("single")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/api/bookings", "201")))
}

func TestMetrics_DBStats(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.SetDBStats(sql.DBStats{OpenConnections: 4, InUse: 1, Idle: 3})
	m.ObserveDBQuery("query", 5*time.Millisecond, nil)

	assert.Equal(t, float64(4), testutil.ToFloat64(m.DBOpenConnections))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DBInUseConnections))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.DBIdleConnections))
	assert.Equal(t, 1, testutil.CollectAndCount(m.DBQueryDuration))
}
