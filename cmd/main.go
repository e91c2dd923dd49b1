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

	bookRoomHandler "github.com/m04kA/SMC-RoomFinderService/internal/api/handlers/book_room"
	cancelRoomBookingsHandler "github.com/m04kA/SMC-RoomFinderService/internal/api/handlers/cancel_room_bookings"
	findAvailableRoomsHandler "github.com/m04kA/SMC-RoomFinderService/internal/api/handlers/find_available_rooms"
	getBuildingsHandler "github.com/m04kA/SMC-RoomFinderService/internal/api/handlers/get_buildings"
	searchRoomsHandler "github.com/m04kA/SMC-RoomFinderService/internal/api/handlers/search_rooms"
	updateCriteriaHandler "github.com/m04kA/SMC-RoomFinderService/internal/api/handlers/update_criteria"
	"github.com/m04kA/SMC-RoomFinderService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomFinderService/internal/config"
	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-RoomFinderService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-RoomFinderService/internal/infra/storage/ledger"
	"github.com/m04kA/SMC-RoomFinderService/internal/infra/storage/staticcatalog"
	finderService "github.com/m04kA/SMC-RoomFinderService/internal/service/finder"
	bookRoomUC "github.com/m04kA/SMC-RoomFinderService/internal/usecase/book_room"
	findAvailableRoomsUC "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_available_rooms"
	"github.com/m04kA/SMC-RoomFinderService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomFinderService/pkg/logger"
	"github.com/m04kA/SMC-RoomFinderService/pkg/metrics"
)

// CatalogProvider общий интерфейс источника каталога.
// Реализуется репозиторием PostgreSQL и статическим провайдером.
type CatalogProvider interface {
	GetBuildings(ctx context.Context) ([]domain.Building, error)
	GetRooms(ctx context.Context) ([]domain.Room, error)
	GetScheduleSlots(ctx context.Context) ([]domain.ScheduleSlot, error)
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

	log.Info("Starting SMC-RoomFinderService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем источник каталога
	var catalog CatalogProvider

	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
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

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			catalog = catalogRepo.NewRepository(wrappedDB)
			log.Info("Database metrics collection started")
		} else {
			catalog = catalogRepo.NewRepository(db)
		}

	case config.CatalogSourceStatic:
		catalog = staticcatalog.NewCampus()
		log.Info("Using built-in static catalog")

	default:
		log.Fatal("Unknown catalog source: %s", cfg.Catalog.Source)
	}

	// Журнал локальных бронирований живет только в памяти процесса
	bookingLedger := ledger.New()

	// Инициализируем use cases
	findAvailableRoomsUseCase := findAvailableRoomsUC.NewUseCase(catalog, bookingLedger, log)
	bookRoomUseCase := bookRoomUC.NewUseCase(catalog, bookingLedger, log)

	// Инициализируем оркестратор поисковых сессий
	finderSvc := finderService.NewService(
		findAvailableRoomsUseCase,
		bookRoomUseCase,
		bookingLedger,
		catalog,
		log,
	)

	// Инициализируем handlers
	getBuildings := getBuildingsHandler.NewHandler(catalog, log)
	findAvailableRooms := findAvailableRoomsHandler.NewHandler(findAvailableRoomsUseCase, log)
	updateCriteria := updateCriteriaHandler.NewHandler(finderSvc, log)
	searchRooms := searchRoomsHandler.NewHandler(finderSvc, log)
	bookRoom := bookRoomHandler.NewHandler(finderSvc, log)
	cancelRoomBookings := cancelRoomBookingsHandler.NewHandler(finderSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Список зданий для фильтра поиска
	api.HandleFunc("/buildings", getBuildings.Handle).Methods(http.MethodGet)

	// Разовый поиск свободных помещений без сессии
	api.HandleFunc("/rooms/available", findAvailableRooms.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Поисковая сессия ---
	// Изменение критериев поиска
	protected.HandleFunc("/finder/criteria", updateCriteria.Handle).Methods(http.MethodPut)

	// Запуск поиска по текущим критериям
	protected.HandleFunc("/finder/search", searchRooms.Handle).Methods(http.MethodPost)

	// Текущее состояние сессии
	protected.HandleFunc("/finder/state", searchRooms.HandleState).Methods(http.MethodGet)

	// --- Бронирования ---
	// Бронирование помещения на сегодня
	protected.HandleFunc("/bookings", bookRoom.Handle).Methods(http.MethodPost)

	// Снятие всех броней помещения
	protected.HandleFunc("/rooms/{roomId}/bookings", cancelRoomBookings.Handle).Methods(http.MethodDelete)

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
