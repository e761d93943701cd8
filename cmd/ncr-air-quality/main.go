package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	httpapi "github.com/i474232898/ncr-air-quality/internal/api/http"
	"github.com/i474232898/ncr-air-quality/internal/config"
	"github.com/i474232898/ncr-air-quality/internal/dashboard"
	"github.com/i474232898/ncr-air-quality/internal/logging"
	"github.com/i474232898/ncr-air-quality/internal/metrics"
	"github.com/i474232898/ncr-air-quality/internal/scheduler"
	"github.com/i474232898/ncr-air-quality/internal/store"
)

const serviceName = "ncr-air-quality"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logging.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("failed to configure logging: %v", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// In-memory snapshot store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	service := dashboard.NewService(memStore, dashboard.Options{
		Stations:      cfg.Stations,
		Outlook:       cfg.Outlook,
		RegionMaxAQI:  cfg.RegionMaxAQI,
		RegionMaxPM10: cfg.RegionMaxPM10,
		Location:      cfg.Location,
		Metrics:       m,
	})

	// Scheduler that periodically recomputes station snapshots.
	sched := scheduler.New(cfg.RefreshInterval, service)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler:          httpapi.ErrorHandler,
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())

	httpapi.RegisterOps(app, serviceName, reg)
	httpapi.RegisterRoutes(app, service, m)

	go func() {
		log.WithFields(log.Fields{
			"port":     cfg.Port,
			"stations": len(cfg.Stations),
		}).Info("starting server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Errorf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorf("error during shutdown: %v", err)
	}
}
