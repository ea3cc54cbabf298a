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
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	createBookingHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_available_slots"
	getServicesHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/get_services"
	joinWaitlistHandler "github.com/m04kA/SMC-SalonBooking/internal/api/handlers/join_waitlist"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBooking/internal/config"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/infra/storage/kv"
	ledgerRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/ledger"
	overridesRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/overrides"
	waitlistRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/waitlist"
	catalogClient "github.com/m04kA/SMC-SalonBooking/internal/integrations/catalogsource"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/mailer"
	catalogService "github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	seederService "github.com/m04kA/SMC-SalonBooking/internal/service/seeder"
	createBookingUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	joinWaitlistUC "github.com/m04kA/SMC-SalonBooking/internal/usecase/join_waitlist"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
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

	log.Info("Starting SMC-SalonBooking...")
	log.Info("Configuration loaded from config.toml")

	ctx := context.Background()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем key-value хранилище по конфигурации
	var store kv.Store
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}

		pgStore := kv.NewPostgresStore(db)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to ensure kv schema: %v", err)
		}
		store = pgStore
		log.Info("Storage: postgres (host=%s, port=%d, db=%s)",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.Port, cfg.Storage.Postgres.DBName)

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		store = kv.NewRedisStore(client)
		log.Info("Storage: redis (addr=%s, db=%d)", cfg.Storage.Redis.Addr, cfg.Storage.Redis.DB)

	default:
		// Демо-режим: данные живут до перезапуска процесса
		store = kv.NewMemoryStore()
		log.Info("Storage: in-memory (demo mode, data is lost on restart)")
	}

	// Инициализируем репозитории поверх хранилища
	ledger := ledgerRepo.NewRepository(store)
	overrides := overridesRepo.NewRepository(store)
	waitlist := waitlistRepo.NewRepository(store)

	// Календарная политика: закрытые дни из конфигурации (по умолчанию Вс+Пн)
	closedWeekdays := make([]time.Weekday, 0, len(cfg.Booking.ClosedWeekdays))
	for _, d := range cfg.Booking.ClosedWeekdays {
		closedWeekdays = append(closedWeekdays, time.Weekday(d))
	}
	calendar := domain.NewCalendarPolicy(closedWeekdays)

	// Загружаем каталог услуг. Без каталога сервис не стартует:
	// генерировать слоты и принимать брони не из чего.
	source := catalogClient.NewClient(cfg.Catalog.URL, cfg.Catalog.TimeoutDuration(), log)
	catalog := catalogService.NewService(source, overrides, log)
	if err := catalog.Load(ctx); err != nil {
		log.Fatal("Failed to load service catalog: %v", err)
	}

	// Одноразовый посев демо-данных - до первого запроса слотов
	seeder := seederService.NewService(ledger, waitlist, calendar, log)
	if err := seeder.SeedOnce(ctx, cfg.Seed.LookaheadDays, cfg.Seed.FallbackDurationMinutes); err != nil {
		log.Fatal("Failed to seed demo bookings: %v", err)
	}
	if cfg.Seed.DemoWaitlist {
		if list, err := catalog.List(); err == nil && len(list) > 0 {
			if err := seeder.SeedDemoWaitlistEntry(ctx, list[0].ID, list[0].Name); err != nil {
				log.Warn("Failed to seed demo waitlist entry: %v", err)
			}
		}
	}

	// Отправитель писем: SendGrid либо заглушка
	var mailSender mailer.Sender
	if cfg.Mail.Enabled {
		mailSender = mailer.NewClient(cfg.Mail.APIKey, cfg.Mail.FromEmail, cfg.Mail.FromName, cfg.Mail.SalonName, log)
		log.Info("Mail: sendgrid (from=%s)", cfg.Mail.FromEmail)
	} else {
		mailSender = mailer.NewStubClient(log)
		log.Info("Mail: disabled, using stub sender")
	}

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(ledger, catalog, calendar, log)
	createBookingUseCase := createBookingUC.NewUseCase(ledger, catalog, calendar, mailSender, cfg.Booking.ThanksURL, log)
	joinWaitlistUseCase := joinWaitlistUC.NewUseCase(waitlist, catalog, log)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(catalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	joinWaitlist := joinWaitlistHandler.NewHandler(joinWaitlistUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все роуты публичные: виджет работает без аутентификации
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/waitlist", joinWaitlist.Handle).Methods(http.MethodPost)

	// CORS: виджет живет на статической странице на другом origin
	handler := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
