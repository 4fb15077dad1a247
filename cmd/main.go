package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Totaedandan/auame/internal/api"
	"github.com/Totaedandan/auame/internal/api/middleware"
	"github.com/Totaedandan/auame/internal/config"
	"github.com/Totaedandan/auame/internal/domain"
	bookingRepo "github.com/Totaedandan/auame/internal/infra/storage/booking"
	scheduleRepo "github.com/Totaedandan/auame/internal/infra/storage/schedule"
	"github.com/Totaedandan/auame/internal/service/admin"
	bookingsService "github.com/Totaedandan/auame/internal/service/bookings"
	"github.com/Totaedandan/auame/internal/service/catalog"
	scheduleService "github.com/Totaedandan/auame/internal/service/schedule"
	createBulkBookingsUC "github.com/Totaedandan/auame/internal/usecase/create_bulk_bookings"
	getAvailableSlotsUC "github.com/Totaedandan/auame/internal/usecase/get_available_slots"
	"github.com/Totaedandan/auame/pkg/clock"
	"github.com/Totaedandan/auame/pkg/dbmetrics"
	"github.com/Totaedandan/auame/pkg/logger"
	"github.com/Totaedandan/auame/pkg/metrics"
)

// bookingStore хранилище броней, нужное сервисам и use cases
type bookingStore interface {
	bookingsService.BookingRepository
	getAvailableSlotsUC.BookingRepository
	createBulkBookingsUC.BookingRepository
}

// businessMetrics счетчики броней и конфликтов
type businessMetrics interface {
	BookingCreated(source string, count int)
	SlotConflict(source string)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting AIR VIBE booking service...")
	log.Info("Configuration loaded (storage=%s, port=%d)", cfg.Storage.Driver, cfg.Server.HTTPPort)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		bizMetrics       businessMetrics = metrics.Nop{}
		dbRecorder       dbmetrics.Recorder
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		bizMetrics = metricsCollector
		dbRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем репозитории
	var (
		bookingRepository  bookingStore
		scheduleRepository scheduleService.ScheduleRepository
	)

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		var wrappedDB *dbmetrics.DB
		if cfg.Metrics.Enabled {
			wrappedDB = dbmetrics.WrapWithDefault(db, dbRecorder, stopMetricsCh)
			log.Info("Database metrics collection started")
		} else {
			wrappedDB = dbmetrics.Wrap(db, nil)
		}

		// Проверяем соединение
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = wrappedDB.PingContext(pingCtx)
		cancel()
		if err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)

	default:
		bookingRepository = bookingRepo.NewMemoryRepository()
		scheduleRepository = scheduleRepo.NewMemoryRepository(domain.DefaultSchedule())
		log.Warn("Using in-memory storage, bookings are lost on restart")
	}

	// Инициализируем сервисы
	stamps := clock.NewSequence(nil)

	bookingSvc := bookingsService.NewService(bookingRepository, stamps, bizMetrics, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	catalogSvc := catalog.NewService(nil)
	adminSvc := admin.NewService(admin.Credentials{
		Login:        cfg.Admin.Login,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
	}, log)

	// Инициализируем use cases
	createBulkBookingsUseCase := createBulkBookingsUC.NewUseCase(bookingRepository, stamps, bizMetrics, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleSvc,
		cfg.Schedule.SlotStepMinutes,
		log,
	)

	deps := api.Dependencies{
		Bookings:         bookingSvc,
		Schedule:         scheduleSvc,
		Catalog:          catalogSvc,
		Admin:            adminSvc,
		BulkBookings:     createBulkBookingsUseCase,
		AvailableSlots:   getAvailableSlotsUseCase,
		Logger:           log,
		AdminAuthEnabled: cfg.Admin.Enabled,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
	}

	if cfg.Metrics.Enabled {
		deps.HTTPMetrics = metricsCollector
		deps.MetricsHandler = promhttp.Handler()
		deps.MetricsPath = cfg.Metrics.Path
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	limiterCtx, stopLimiter := context.WithCancel(context.Background())
	defer stopLimiter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		if err := limiter.TrustProxies(cfg.RateLimit.TrustedProxies); err != nil {
			log.Fatal("Invalid rate_limit.trusted_proxies: %v", err)
		}
		go limiter.Run(limiterCtx)
		deps.RateLimiter = limiter
		log.Info("Rate limit enabled: %.1f req/s, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	if cfg.Admin.Enabled {
		log.Info("Admin routes are protected with basic auth")
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(deps),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("AIR VIBE backend started on http://localhost%s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopLimiter()

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
