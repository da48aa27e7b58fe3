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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getDraftHandler "github.com/m1shk4/ASB-BookingFront/internal/api/handlers/get_draft"
	getMonthAvailabilityHandler "github.com/m1shk4/ASB-BookingFront/internal/api/handlers/get_month_availability"
	getQuoteHandler "github.com/m1shk4/ASB-BookingFront/internal/api/handlers/get_quote"
	getScheduleEligibilityHandler "github.com/m1shk4/ASB-BookingFront/internal/api/handlers/get_schedule_eligibility"
	saveDraftHandler "github.com/m1shk4/ASB-BookingFront/internal/api/handlers/save_draft"
	submitBookingHandler "github.com/m1shk4/ASB-BookingFront/internal/api/handlers/submit_booking"
	validateCouponHandler "github.com/m1shk4/ASB-BookingFront/internal/api/handlers/validate_coupon"
	"github.com/m1shk4/ASB-BookingFront/internal/api/middleware"
	"github.com/m1shk4/ASB-BookingFront/internal/config"
	draftRepo "github.com/m1shk4/ASB-BookingFront/internal/infra/storage/draft"
	academyServiceClient "github.com/m1shk4/ASB-BookingFront/internal/integrations/academyservice"
	identityServiceClient "github.com/m1shk4/ASB-BookingFront/internal/integrations/identityservice"
	availabilityService "github.com/m1shk4/ASB-BookingFront/internal/service/availability"
	couponsService "github.com/m1shk4/ASB-BookingFront/internal/service/coupons"
	draftsService "github.com/m1shk4/ASB-BookingFront/internal/service/drafts"
	scheduleGateService "github.com/m1shk4/ASB-BookingFront/internal/service/schedulegate"
	getMonthAvailabilityUC "github.com/m1shk4/ASB-BookingFront/internal/usecase/get_month_availability"
	getQuoteUC "github.com/m1shk4/ASB-BookingFront/internal/usecase/get_quote"
	submitBookingUC "github.com/m1shk4/ASB-BookingFront/internal/usecase/submit_booking"
	"github.com/m1shk4/ASB-BookingFront/pkg/dbmetrics"
	"github.com/m1shk4/ASB-BookingFront/pkg/logger"
	"github.com/m1shk4/ASB-BookingFront/pkg/metrics"
)

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

	log.Info("Starting ASB-BookingFront...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (хранилище черновиков)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	academyClient := academyServiceClient.NewClient(
		cfg.AcademyService.URL,
		time.Duration(cfg.AcademyService.Timeout)*time.Second,
		log,
	)
	identityClient := identityServiceClient.NewClient(
		cfg.IdentityService.URL,
		time.Duration(cfg.IdentityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AcademyService=%s timeout=%ds, IdentityService=%s timeout=%ds)",
		cfg.AcademyService.URL, cfg.AcademyService.Timeout, cfg.IdentityService.URL, cfg.IdentityService.Timeout)

	// Инициализируем репозиторий черновиков (с метриками или без)
	var draftRepository *draftRepo.Repository

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
		draftRepository = draftRepo.NewRepository(wrappedDB)
	} else {
		draftRepository = draftRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(academyClient, log)
	couponSvc := couponsService.NewService(academyClient, log)
	scheduleGateSvc := scheduleGateService.NewService(academyClient, log)
	draftSvc := draftsService.NewService(draftRepository, identityClient, log)

	// Инициализируем use cases
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(availabilitySvc, log)
	getQuoteUseCase := getQuoteUC.NewUseCase(availabilitySvc, scheduleGateSvc, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		availabilitySvc,
		scheduleGateSvc,
		draftSvc,
		academyClient,
		identityClient,
		log,
	)

	// Инициализируем handlers
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	getScheduleEligibility := getScheduleEligibilityHandler.NewHandler(scheduleGateSvc, log)
	validateCoupon := validateCouponHandler.NewHandler(couponSvc, log)
	getQuote := getQuoteHandler.NewHandler(getQuoteUseCase, log)
	getDraft := getDraftHandler.NewHandler(draftSvc, log)
	saveDraft := saveDraftHandler.NewHandler(draftSvc, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без X-Client-ID)
	// ============================================================

	// Слоты доступности расписания на месяц
	api.HandleFunc("/schedules/{scheduleId}/availability",
		getMonthAvailability.Handle).Methods(http.MethodGet)

	// Проверка допуска расписания к бронированию
	api.HandleFunc("/schedules/{scheduleId}/eligibility",
		getScheduleEligibility.Handle).Methods(http.MethodGet)

	// Валидация купона
	api.HandleFunc("/coupons/validate", validateCoupon.Handle).Methods(http.MethodPost)

	// Расчёт стоимости
	api.HandleFunc("/quotes", getQuote.Handle).Methods(http.MethodPost)

	// ============================================================
	// CLIENT ROUTES (требуют X-Client-ID header)
	// ============================================================

	client := api.PathPrefix("").Subrouter()
	client.Use(middleware.RequireClientID)

	// --- Черновики ---
	// Восстановление черновика
	client.HandleFunc("/drafts/{itemType}/{itemId}", getDraft.Handle).Methods(http.MethodGet)

	// Сохранение черновика
	client.HandleFunc("/drafts/{itemType}/{itemId}", saveDraft.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	// Отправка бронирования
	client.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
