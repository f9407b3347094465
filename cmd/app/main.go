package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pizzeria/api"
	"pizzeria/cmd"
	httpin "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/menu"
	"pizzeria/internal/adapters/out/postgres"

	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(configs.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, logger); err != nil {
		logger.Fatal("pizzeria stopped", zap.Error(err))
	}
}

func run(ctx context.Context, configs cmd.Config, logger *zap.Logger) error {
	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m, err := menu.Load(configs.MenuFile, time.Now())
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(configs, gormDB, m, logger)
	if err = app.SeedOrderNumbers(ctx); err != nil {
		return err
	}

	if configs.KitchenJobEnabled {
		jobManager := app.JobManager(configs.KitchenJobSchedule)
		if err = jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()
	}

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *zap.Logger) error {
	doc, err := api.Load(ctx)
	if err != nil {
		return err
	}

	e, err := httpin.NewEcho(httpin.NewServer(app.HTTPHandlers(), logger), doc, logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("port", port))
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if atomicLevel.Level() == zap.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = atomicLevel
	return cfg.Build()
}
