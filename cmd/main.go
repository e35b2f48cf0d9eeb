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

	cancelBookingHandler "github.com/m04kA/SMC-SpaBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-SpaBooking/internal/api/handlers/create_booking"
	createCouplesBookingHandler "github.com/m04kA/SMC-SpaBooking/internal/api/handlers/create_couples_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SpaBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SpaBooking/internal/api/handlers/get_booking"
	getSalonConfigHandler "github.com/m04kA/SMC-SpaBooking/internal/api/handlers/get_salon_config"
	getStaffDayHandler "github.com/m04kA/SMC-SpaBooking/internal/api/handlers/get_staff_day"
	getUserBookingsHandler "github.com/m04kA/SMC-SpaBooking/internal/api/handlers/get_user_bookings"
	recommendRoomHandler "github.com/m04kA/SMC-SpaBooking/internal/api/handlers/recommend_room"
	validateBookingHandler "github.com/m04kA/SMC-SpaBooking/internal/api/handlers/validate_booking"
	"github.com/m04kA/SMC-SpaBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBooking/internal/config"
	"github.com/m04kA/SMC-SpaBooking/internal/infra/catalog"
	reservationRepo "github.com/m04kA/SMC-SpaBooking/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-SpaBooking/internal/service/bookingvalidator"
	bookingsService "github.com/m04kA/SMC-SpaBooking/internal/service/bookings"
	reservationsService "github.com/m04kA/SMC-SpaBooking/internal/service/reservations"
	createBookingUC "github.com/m04kA/SMC-SpaBooking/internal/usecase/create_booking"
	createCouplesBookingUC "github.com/m04kA/SMC-SpaBooking/internal/usecase/create_couples_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SpaBooking/internal/usecase/get_available_slots"
	recommendRoomUC "github.com/m04kA/SMC-SpaBooking/internal/usecase/recommend_room"
	validateBookingUC "github.com/m04kA/SMC-SpaBooking/internal/usecase/validate_booking"
	"github.com/m04kA/SMC-SpaBooking/pkg/logger"
	"github.com/m04kA/SMC-SpaBooking/pkg/metrics"
	"github.com/m04kA/SMC-SpaBooking/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("SPA_BOOKING_CONFIG"); p != "" {
		configPath = p
	}

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

	log.Info("Starting SMC-SpaBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	// Методы *metrics.Metrics безопасны для nil, поэтому use cases получают коллектор всегда
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Загружаем каталог услуг, комнат и мастеров
	spaCatalog, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded from %s", cfg.Catalog.Path)

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

	// Инициализируем репозиторий и сервисы
	txMgr := txmanager.NewTransactionManager(db)
	reservationRepository := reservationRepo.NewRepository(db, txMgr)

	bookingSvc := bookingsService.NewService(spaCatalog, reservationRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, spaCatalog, log)
	validator := bookingvalidator.New(cfg.Booking.BusinessHours())

	// Инициализируем use cases
	validateBookingUseCase := validateBookingUC.NewUseCase(
		bookingSvc,
		validator,
		metricsCollector,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		reservationRepository,
		bookingSvc,
		validator,
		metricsCollector,
		log,
	)

	createCouplesBookingUseCase := createCouplesBookingUC.NewUseCase(
		reservationRepository,
		bookingSvc,
		validator,
		metricsCollector,
		createCouplesBookingUC.Config{
			MaxAttempts: cfg.Booking.CouplesMaxAttempts,
			BackoffStep: cfg.Booking.CouplesBackoffStep(),
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingSvc,
		validator,
		cfg.Booking.SlotStepMinutes,
		log,
	)

	recommendRoomUseCase := recommendRoomUC.NewUseCase(bookingSvc, log)

	// Инициализируем handlers
	validateBooking := validateBookingHandler.NewHandler(validateBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	createCouplesBooking := createCouplesBookingHandler.NewHandler(createCouplesBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	recommendRoom := recommendRoomHandler.NewHandler(recommendRoomUseCase, log)
	getSalonConfig := getSalonConfigHandler.NewHandler(spaCatalog, getSalonConfigHandler.Settings{
		BusinessHours:   cfg.Booking.BusinessHours(),
		SlotStepMinutes: cfg.Booking.SlotStepMinutes,
	}, log)
	getBooking := getBookingHandler.NewHandler(reservationSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(reservationSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(reservationSvc, log)
	getStaffDay := getStaffDayHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка бронирования без сохранения
	api.HandleFunc("/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)

	// Доступные времена начала у мастера на дату
	api.HandleFunc("/services/{serviceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Рекомендация комнаты
	api.HandleFunc("/rooms/recommendation", recommendRoom.Handle).Methods(http.MethodGet)

	// Рабочие часы, услуги, комнаты и мастера
	api.HandleFunc("/salon/config", getSalonConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Парное бронирование: обе половины или ни одной
	protected.HandleFunc("/bookings/couples", createCouplesBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// День мастера: смена и бронирования
	protected.HandleFunc("/staff/{staffId}/day", getStaffDay.Handle).Methods(http.MethodGet)

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
