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

	createCourtHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/create_court"
	createReservationHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/create_reservation"
	createSurfaceHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/create_surface"
	deleteCourtHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/delete_court"
	deleteReservationHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/delete_reservation"
	deleteSurfaceHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/delete_surface"
	getCourtHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/get_court"
	getCourtReservationsHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/get_court_reservations"
	getReservationHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/get_reservation"
	getUserReservationsHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/get_user_reservations"
	listCourtsHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/list_courts"
	listReservationsHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/list_reservations"
	listSurfacesHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/list_surfaces"
	updateCourtHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/update_court"
	updateReservationHandler "github.com/m04kA/SMC-TennisClubService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-TennisClubService/internal/api/middleware"
	"github.com/m04kA/SMC-TennisClubService/internal/config"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/migrations"
	"github.com/m04kA/SMC-TennisClubService/internal/infra/seed"
	courtRepo "github.com/m04kA/SMC-TennisClubService/internal/infra/storage/court"
	reservationRepo "github.com/m04kA/SMC-TennisClubService/internal/infra/storage/reservation"
	surfaceRepo "github.com/m04kA/SMC-TennisClubService/internal/infra/storage/surface"
	userRepo "github.com/m04kA/SMC-TennisClubService/internal/infra/storage/user"
	"github.com/m04kA/SMC-TennisClubService/internal/service/availability"
	courtsService "github.com/m04kA/SMC-TennisClubService/internal/service/courts"
	reservationsService "github.com/m04kA/SMC-TennisClubService/internal/service/reservations"
	surfacesService "github.com/m04kA/SMC-TennisClubService/internal/service/surfaces"
	usersService "github.com/m04kA/SMC-TennisClubService/internal/service/users"
	admissionUC "github.com/m04kA/SMC-TennisClubService/internal/usecase/reservation_admission"
	"github.com/m04kA/SMC-TennisClubService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TennisClubService/pkg/logger"
	"github.com/m04kA/SMC-TennisClubService/pkg/metrics"
	"github.com/m04kA/SMC-TennisClubService/pkg/txmanager"
)

const configPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-TennisClubService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	defer cancelStartup()

	// Проверяем соединение
	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.MigrateOnStart {
		if err := migrations.Apply(startupCtx, db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Оборачиваем соединение (с метриками или без).
	// Collector передается только ненулевым, иначе в интерфейс попадет typed nil
	var (
		wrappedDB        *dbmetrics.DB
		admissionMetrics admissionUC.Metrics
	)
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		admissionMetrics = metricsCollector
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем репозитории
	surfaceRepository := surfaceRepo.NewRepository(wrappedDB)
	courtRepository := courtRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)

	// Начальное наполнение справочников
	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(surfaceRepository, courtRepository, txMgr, log)
		if err := seeder.Run(startupCtx); err != nil {
			log.Fatal("Failed to seed reference data: %v", err)
		}
	}

	// Инициализируем сервисы
	surfaceSvc := surfacesService.NewService(surfaceRepository, log)
	courtSvc := courtsService.NewService(courtRepository, surfaceRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	userResolver := usersService.NewResolver(userRepository, log)
	availabilityChecker := availability.NewChecker(reservationRepository)

	// Инициализируем use cases
	admissionUseCase := admissionUC.NewUseCase(
		courtRepository,
		reservationRepository,
		userResolver,
		availabilityChecker,
		txMgr,
		admissionMetrics,
		admissionUC.Policy{CheckConflictsOnUpdate: cfg.Admission.CheckConflictsOnUpdate},
		log,
	)
	log.Info("Reservation admission initialized (check_conflicts_on_update=%t)", cfg.Admission.CheckConflictsOnUpdate)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(admissionUseCase, log)
	updateReservation := updateReservationHandler.NewHandler(admissionUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getCourtReservations := getCourtReservationsHandler.NewHandler(reservationSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	getCourt := getCourtHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	deleteCourt := deleteCourtHandler.NewHandler(courtSvc, log)
	createSurface := createSurfaceHandler.NewHandler(surfaceSvc, log)
	listSurfaces := listSurfacesHandler.NewHandler(surfaceSvc, log)
	deleteSurface := deleteSurfaceHandler.NewHandler(surfaceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/courts/{courtId}/reservations", getCourtReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{phoneNumber}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Корты ---
	api.HandleFunc("/courts", createCourt.Handle).Methods(http.MethodPost)
	api.HandleFunc("/courts", listCourts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}", getCourt.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courts/{courtId}", updateCourt.Handle).Methods(http.MethodPut)
	api.HandleFunc("/courts/{courtId}", deleteCourt.Handle).Methods(http.MethodDelete)

	// --- Покрытия ---
	api.HandleFunc("/surfaces", createSurface.Handle).Methods(http.MethodPost)
	api.HandleFunc("/surfaces", listSurfaces.Handle).Methods(http.MethodGet)
	api.HandleFunc("/surfaces/{surfaceId}", deleteSurface.Handle).Methods(http.MethodDelete)

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
