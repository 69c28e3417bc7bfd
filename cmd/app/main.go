package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parceltracker/cmd"
	httpin "parceltracker/internal/adapters/in/http"
	"parceltracker/internal/adapters/out/events"
	"parceltracker/internal/adapters/out/postgres"
	"parceltracker/internal/core/ports"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, logger); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = postgres.Migrate(ctx, gormDB); err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	publisher := events.Fanout{events.NewMetricsPublisher(registry)}
	if configs.NatsURL != "" {
		conn, err := events.Connect(configs.NatsURL, logger)
		if err != nil {
			return err
		}
		defer conn.Drain() //nolint:errcheck
		publisher = append(publisher, events.NewNatsPublisher(conn, logger))
	} else {
		logger.Info("NATS_URL is empty, parcel events are only counted")
	}

	app := cmd.NewCompositionRoot(configs, gormDB, ports.EventPublisher(publisher), logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, registry, configs.HTTPPort, logger)
}

func startWebServer(
	ctx context.Context,
	app cmd.CompositionRoot,
	registry *prometheus.Registry,
	port string,
	logger *slog.Logger,
) error {
	e := httpin.NewRouter(app.CreateServer(), app.CreateAuthenticator(), registry, logger)
	e.Logger = log.New("echo")

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("HTTP server started", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("HTTP server shutting down")
		return e.Shutdown(shutdownCtx)
	})
	return group.Wait()
}
