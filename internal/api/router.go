package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	adminLoginHandler "github.com/Totaedandan/auame/internal/api/handlers/admin_login"
	createBookingHandler "github.com/Totaedandan/auame/internal/api/handlers/create_booking"
	createBulkBookingsHandler "github.com/Totaedandan/auame/internal/api/handlers/create_bulk_bookings"
	getAvailableSlotsHandler "github.com/Totaedandan/auame/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/Totaedandan/auame/internal/api/handlers/get_booking"
	getBookingStatusesHandler "github.com/Totaedandan/auame/internal/api/handlers/get_booking_statuses"
	getBookingsHandler "github.com/Totaedandan/auame/internal/api/handlers/get_bookings"
	getScheduleHandler "github.com/Totaedandan/auame/internal/api/handlers/get_schedule"
	getServicesHandler "github.com/Totaedandan/auame/internal/api/handlers/get_services"
	updateBookingStatusHandler "github.com/Totaedandan/auame/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/Totaedandan/auame/internal/api/handlers/update_schedule"
	"github.com/Totaedandan/auame/internal/api/handlers"
	"github.com/Totaedandan/auame/internal/api/middleware"
	"github.com/Totaedandan/auame/internal/service/admin"
	bookingsService "github.com/Totaedandan/auame/internal/service/bookings"
	"github.com/Totaedandan/auame/internal/service/catalog"
	scheduleService "github.com/Totaedandan/auame/internal/service/schedule"
	createBulkBookingsUC "github.com/Totaedandan/auame/internal/usecase/create_bulk_bookings"
	getAvailableSlotsUC "github.com/Totaedandan/auame/internal/usecase/get_available_slots"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Dependencies всё, что нужно для сборки HTTP API
type Dependencies struct {
	Bookings       *bookingsService.Service
	Schedule       *scheduleService.Service
	Catalog        *catalog.Service
	Admin          *admin.Service
	BulkBookings   *createBulkBookingsUC.UseCase
	AvailableSlots *getAvailableSlotsUC.UseCase
	Logger         Logger

	// AdminAuthEnabled закрывает изменяющие маршруты Basic авторизацией
	AdminAuthEnabled bool
	// RateLimiter nil отключает ограничение запросов
	RateLimiter *middleware.RateLimiter
	// HTTPMetrics и MetricsHandler nil отключают метрики
	HTTPMetrics    middleware.HTTPRecorder
	MetricsHandler http.Handler
	MetricsPath    string
	AllowedOrigins []string
}

// NewRouter собирает маршруты /api, /health и метрик, обернутые в CORS
func NewRouter(deps Dependencies) http.Handler {
	log := deps.Logger

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(deps.Bookings, log)
	getBookings := getBookingsHandler.NewHandler(deps.Bookings, log)
	getBooking := getBookingHandler.NewHandler(deps.Bookings, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(deps.Bookings, log)
	createBulkBookings := createBulkBookingsHandler.NewHandler(deps.BulkBookings, log)
	getSchedule := getScheduleHandler.NewHandler(deps.Schedule, log)
	updateSchedule := updateScheduleHandler.NewHandler(deps.Schedule, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(deps.AvailableSlots, log)
	getServices := getServicesHandler.NewHandler(deps.Catalog)
	getBookingStatuses := getBookingStatusesHandler.NewHandler()
	adminLogin := adminLoginHandler.NewHandler(deps.Admin, log)

	r := mux.NewRouter()

	if deps.HTTPMetrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.HTTPMetrics))
	}

	if deps.MetricsHandler != nil && deps.MetricsPath != "" {
		r.Handle(deps.MetricsPath, deps.MetricsHandler).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware)
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking-statuses", getBookingStatuses.Handle).Methods(http.MethodGet)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (Basic авторизация, если включена)
	// ============================================================

	protected := api
	if deps.AdminAuthEnabled {
		protected = api.PathPrefix("").Subrouter()
		protected.Use(middleware.AdminAuth(deps.Admin, log))
	}

	protected.HandleFunc("/bookings/{bookingId}", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bulk-bookings", createBulkBookings.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}).Handler(r)
}
