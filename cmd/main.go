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

	adminLoginHandler "github.com/salonbelleza/turnos-service/internal/api/handlers/admin_login"
	cancelAppointmentHandler "github.com/salonbelleza/turnos-service/internal/api/handlers/cancel_appointment"
	completeAppointmentHandler "github.com/salonbelleza/turnos-service/internal/api/handlers/complete_appointment"
	confirmAppointmentHandler "github.com/salonbelleza/turnos-service/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/salonbelleza/turnos-service/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/salonbelleza/turnos-service/internal/api/handlers/get_available_slots"
	listAppointmentsHandler "github.com/salonbelleza/turnos-service/internal/api/handlers/list_appointments"
	lookupAppointmentsHandler "github.com/salonbelleza/turnos-service/internal/api/handlers/lookup_appointments"
	"github.com/salonbelleza/turnos-service/internal/api/middleware"
	"github.com/salonbelleza/turnos-service/internal/config"
	appointmentRepo "github.com/salonbelleza/turnos-service/internal/infra/storage/appointment"
	appointmentsService "github.com/salonbelleza/turnos-service/internal/service/appointments"
	authService "github.com/salonbelleza/turnos-service/internal/service/auth"
	createAppointmentUC "github.com/salonbelleza/turnos-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/salonbelleza/turnos-service/internal/usecase/get_available_slots"
	"github.com/salonbelleza/turnos-service/migrations"
	"github.com/salonbelleza/turnos-service/pkg/dbmetrics"
	"github.com/salonbelleza/turnos-service/pkg/logger"
	"github.com/salonbelleza/turnos-service/pkg/metrics"
	"github.com/salonbelleza/turnos-service/pkg/simpletxmanager"
	"github.com/salonbelleza/turnos-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting turnos-service...")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := migrations.Apply(context.Background(), db); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Migrations applied")

	// Repository and transaction manager, with or without query metrics.
	var (
		repository *appointmentRepo.Repository
		txManager  createAppointmentUC.TransactionManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		repository = appointmentRepo.NewRepository(wrappedDB)
		txManager = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		repository = appointmentRepo.NewRepository(db)
		txManager = simpletxmanager.NewTransactionManager(db)
	}

	// Services.
	apptSvc := appointmentsService.NewService(repository, log)
	authSvc := authService.NewService(
		cfg.Auth.AdminUser,
		cfg.Auth.AdminPassword,
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute,
		log,
	)

	// Use cases.
	createAppointmentUseCase := createAppointmentUC.NewUseCase(repository, txManager, cfg.Booking.InitialStatus, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(repository, log)
	log.Info("Booking policy: initial status=%s", cfg.Booking.InitialStatus)

	// Handlers.
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	lookupAppointments := lookupAppointmentsHandler.NewHandler(apptSvc, log)
	adminLogin := adminLoginHandler.NewHandler(authSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(apptSvc, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(apptSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(apptSvc, log)
	completeAppointment := completeAppointmentHandler.NewHandler(apptSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public booking flow.
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/lookup", lookupAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// Admin routes require a Bearer session token.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(authSvc))
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/appointments/{appointmentId}/confirm", confirmAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/appointments/{appointmentId}/complete", completeAppointment.Handle).Methods(http.MethodPatch)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
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
