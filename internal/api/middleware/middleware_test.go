package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{}) {}

type staticVerifier struct {
	login, password string
}

func (v staticVerifier) Verify(login, password string) bool {
	return login == v.login && password == v.password
}

type httpObservation struct {
	method, route string
	status        int
}

type fakeHTTPRecorder struct {
	observed []httpObservation
}

func (f *fakeHTTPRecorder) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.observed = append(f.observed, httpObservation{method: method, route: route, status: status})
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAdminAuth(t *testing.T) {
	guarded := AdminAuth(staticVerifier{login: "admin", password: "secret"}, nopLogger{})(okHandler)

	tests := []struct {
		name     string
		setAuth  bool
		login    string
		password string
		want     int
	}{
		{name: "no credentials", want: http.StatusUnauthorized},
		{name: "wrong password", setAuth: true, login: "admin", password: "nope", want: http.StatusUnauthorized},
		{name: "valid", setAuth: true, login: "admin", password: "secret", want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/schedule", nil)
			if tt.setAuth {
				req.SetBasicAuth(tt.login, tt.password)
			}
			rec := httptest.NewRecorder()

			guarded.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(1, 2, nopLogger{})
	handler := rl.Middleware(okHandler)

	do := func(remote string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/services", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:5002"))

	// у другого клиента свой лимит
	assert.Equal(t, http.StatusOK, do("10.0.0.2:5000"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1, nopLogger{})
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("10.0.0.1")
	now = now.Add(visitorTTL + time.Second)
	rl.getLimiter("10.0.0.2")

	rl.Cleanup()

	assert.Len(t, rl.visitors, 1)
	assert.Contains(t, rl.visitors, "10.0.0.2")
}

func TestClientIP(t *testing.T) {
	rl := NewRateLimiter(1, 1, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.10:4321"
	assert.Equal(t, "192.168.1.10", rl.clientIP(req))

	// без доверенных прокси заголовок игнорируется
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "192.168.1.10", rl.clientIP(req))
}

func TestClientIP_TrustedProxies(t *testing.T) {
	rl := NewRateLimiter(1, 1, nopLogger{})
	require.NoError(t, rl.TrustProxies([]string{"10.0.0.0/8"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:4321"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", rl.clientIP(req))

	// подставленный клиентом адрес левее реального не учитывается
	req.Header.Set("X-Forwarded-For", "1.1.1.1, 203.0.113.7")
	assert.Equal(t, "203.0.113.7", rl.clientIP(req))

	// заголовок от недоверенного адреса игнорируется
	req.RemoteAddr = "192.168.1.10:4321"
	assert.Equal(t, "192.168.1.10", rl.clientIP(req))

	assert.Error(t, rl.TrustProxies([]string{"not-a-cidr"}))
}

func TestRateLimiter_SpoofedForwardedFor(t *testing.T) {
	rl := NewRateLimiter(1, 1, nopLogger{})
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for _, forwarded := range []string{"198.51.100.1", "198.51.100.2", "198.51.100.3"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.168.1.10:4321"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	recorder := &fakeHTTPRecorder{}

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(recorder))
	router.HandleFunc("/api/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings/abc-123", nil))

	require.Len(t, recorder.observed, 1)
	assert.Equal(t, httpObservation{
		method: http.MethodGet,
		route:  "/api/bookings/{bookingId}",
		status: http.StatusNotFound,
	}, recorder.observed[0])
}
