package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/salonbelleza/turnos-service/internal/config"
	appointmentRepo "github.com/salonbelleza/turnos-service/internal/infra/storage/appointment"
	"github.com/salonbelleza/turnos-service/internal/usecase/sweep_expired"
	"github.com/salonbelleza/turnos-service/pkg/dbmetrics"
	"github.com/salonbelleza/turnos-service/pkg/logger"
	"github.com/salonbelleza/turnos-service/pkg/metrics"
	"github.com/salonbelleza/turnos-service/pkg/simpletxmanager"
	"github.com/salonbelleza/turnos-service/pkg/txmanager"
)

// The sweeper runs as a one-shot batch: select PENDING holds older than the
// configured window, cancel them, log each one and exit. Scheduling is left
// to cron or an equivalent external trigger.
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

	log.Info("Starting sweeper...")

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	var (
		repository       *appointmentRepo.Repository
		txManager        sweep_expired.TransactionManager
		metricsCollector *metrics.Metrics
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName + "-sweeper")
		wrappedDB := dbmetrics.Wrap(db, metricsCollector)
		repository = appointmentRepo.NewRepository(wrappedDB)
		txManager = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = appointmentRepo.NewRepository(db)
		txManager = simpletxmanager.NewTransactionManager(db)
	}

	holdDuration := time.Duration(cfg.Booking.HoldDurationHours) * time.Hour
	useCase := sweep_expired.NewUseCase(repository, txManager, holdDuration, log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary, err := useCase.Execute(ctx)
	if metricsCollector != nil {
		cancelled := 0
		if summary != nil {
			cancelled = int(summary.Cancelled)
		}
		metricsCollector.ObserveSweeperRun(err, cancelled)
	}
	if err != nil {
		log.Error("Sweeper run failed: %v", err)
		os.Exit(1)
	}

	log.Info("Sweeper finished: cancelled=%d, cutoff=%s",
		summary.Cancelled, summary.Cutoff.Format(time.RFC3339))
}
