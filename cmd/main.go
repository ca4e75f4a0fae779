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

	checkAvailabilityHandler "github.com/lavexpress/booking-service/internal/api/handlers/check_availability"
	createFormulaHandler "github.com/lavexpress/booking-service/internal/api/handlers/create_formula"
	createReservationHandler "github.com/lavexpress/booking-service/internal/api/handlers/create_reservation"
	deleteFormulaHandler "github.com/lavexpress/booking-service/internal/api/handlers/delete_formula"
	deleteReservationHandler "github.com/lavexpress/booking-service/internal/api/handlers/delete_reservation"
	getAvailableSlotsHandler "github.com/lavexpress/booking-service/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/lavexpress/booking-service/internal/api/handlers/get_reservation"
	getReservationStatsHandler "github.com/lavexpress/booking-service/internal/api/handlers/get_reservation_stats"
	getWeekReservationsHandler "github.com/lavexpress/booking-service/internal/api/handlers/get_week_reservations"
	listDayReservationsHandler "github.com/lavexpress/booking-service/internal/api/handlers/list_day_reservations"
	listFormulasHandler "github.com/lavexpress/booking-service/internal/api/handlers/list_formulas"
	listServiceOptionsHandler "github.com/lavexpress/booking-service/internal/api/handlers/list_service_options"
	purgeReservationsHandler "github.com/lavexpress/booking-service/internal/api/handlers/purge_reservations"
	updateFormulaHandler "github.com/lavexpress/booking-service/internal/api/handlers/update_formula"
	updateReservationHandler "github.com/lavexpress/booking-service/internal/api/handlers/update_reservation"
	updateReservationStatusHandler "github.com/lavexpress/booking-service/internal/api/handlers/update_reservation_status"
	updateServiceOptionHandler "github.com/lavexpress/booking-service/internal/api/handlers/update_service_option"
	"github.com/lavexpress/booking-service/internal/api/middleware"
	"github.com/lavexpress/booking-service/internal/config"
	formulaRepo "github.com/lavexpress/booking-service/internal/infra/storage/formula"
	reservationRepo "github.com/lavexpress/booking-service/internal/infra/storage/reservation"
	"github.com/lavexpress/booking-service/internal/integrations/mailer"
	formulasService "github.com/lavexpress/booking-service/internal/service/formulas"
	reservationsService "github.com/lavexpress/booking-service/internal/service/reservations"
	"github.com/lavexpress/booking-service/internal/service/scheduling"
	createReservationUC "github.com/lavexpress/booking-service/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/lavexpress/booking-service/internal/usecase/get_available_slots"
	updateReservationUC "github.com/lavexpress/booking-service/internal/usecase/update_reservation"
	"github.com/lavexpress/booking-service/pkg/dbmetrics"
	"github.com/lavexpress/booking-service/pkg/logger"
	"github.com/lavexpress/booking-service/pkg/metrics"
	"github.com/lavexpress/booking-service/pkg/simpletxmanager"
	"github.com/lavexpress/booking-service/pkg/txmanager"
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

	log.Info("Starting LavExpress BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Почтовые уведомления персонала
	staffMailer := mailer.New(mailer.Config{
		Enabled:  cfg.Mail.Enabled,
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		To:       cfg.Mail.To,
	}, log)
	log.Info("Mailer initialized (enabled=%t, recipients=%d)", cfg.Mail.Enabled, len(cfg.Mail.To))

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		formulaRepository     *formulaRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		formulaRepository = formulaRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		formulaRepository = formulaRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Планирование: резолвер длительности и проверка пересечений
	durationResolver := scheduling.NewResolver(formulaRepository, log)
	conflictChecker := scheduling.NewChecker(reservationRepository, durationResolver, log)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	formulasSvc := formulasService.NewService(formulaRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		conflictChecker,
		txMgr,
		staffMailer,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		conflictChecker,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		durationResolver,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(conflictChecker, log)
	listDayReservations := listDayReservationsHandler.NewHandler(reservationsSvc, log)
	getWeekReservations := getWeekReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	purgeReservations := purgeReservationsHandler.NewHandler(reservationsSvc, log)
	getReservationStats := getReservationStatsHandler.NewHandler(reservationsSvc, log)
	listFormulas := listFormulasHandler.NewHandler(formulasSvc, log)
	createFormula := createFormulaHandler.NewHandler(formulasSvc, log)
	updateFormula := updateFormulaHandler.NewHandler(formulasSvc, log)
	deleteFormula := deleteFormulaHandler.NewHandler(formulasSvc, log)
	listServiceOptions := listServiceOptionsHandler.NewHandler(formulasSvc, log)
	updateServiceOption := updateServiceOptionHandler.NewHandler(formulasSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (форма бронирования на сайте)
	// ============================================================

	// Создание бронирования клиентом
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Проверка доступности конкретного слота
	api.HandleFunc("/reservations/check", checkAvailability.Handle).Methods(http.MethodGet)

	// Сетка слотов дня для выбранной формулы
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Витрина формул и дополнительных услуг категории
	api.HandleFunc("/formulas/{category}", listFormulas.Handle).Methods(http.MethodGet)
	api.HandleFunc("/options/{category}", listServiceOptions.Handle).Methods(http.MethodGet)

	// Календарь дня и недели: форма показывает занятые слоты без авторизации
	api.HandleFunc("/reservations", listDayReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/week", getWeekReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (админка, X-Admin-Token)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.AdminToken))

	// Статистика за период
	protected.HandleFunc("/reservations/stats", getReservationStats.Handle).Methods(http.MethodGet)

	// Массовая чистка по диапазону месяцев
	protected.HandleFunc("/reservations", purgeReservations.Handle).
		Methods(http.MethodDelete).
		Queries("from", "{from}", "to", "{to}")

	// --- Бронирования ---
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", updateReservation.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}/status", updateReservationStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/reservations/{reservationId:[0-9]+}", deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Формулы и опции услуг ---
	protected.HandleFunc("/formulas", createFormula.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/formulas/{formulaId:[0-9]+}", updateFormula.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/formulas/{formulaId:[0-9]+}", deleteFormula.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/options", updateServiceOption.Handle).Methods(http.MethodPut)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
