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

	"forwarding/cmd"
	httpin "forwarding/internal/adapters/in/http"
	"forwarding/internal/adapters/out/kafka"
	"forwarding/internal/adapters/out/postgres"
	"forwarding/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := postgres.Open(postgres.MakeDSN(
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	))
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	producer := kafka.NewStorageWarningProducer(configs.KafkaHost, configs.KafkaStorageWarningTopic)

	app := cmd.NewCompositionRoot(
		configs,
		gormDB,
		producer,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, app, configs.HTTPPort, logger)
	stop()

	if closeErr := producer.Close(); closeErr != nil {
		logger.Error("Failed to close storage warning producer", "error", closeErr)
	}
	if sqlDB, dbErr := gormDB.DB(); dbErr == nil {
		_ = sqlDB.Close()
	}

	if err != nil {
		log.Fatalf("Service stopped: %v", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:                goDotEnvVariable("KAFKA_HOST"),
		KafkaStorageWarningTopic: goDotEnvVariable("KAFKA_STORAGE_WARNING_TOPIC"),
		StorageWarningSchedule:   goDotEnvVariable("STORAGE_WARNING_SCHEDULE"),
	}
	if config.StorageWarningSchedule == "" {
		config.StorageWarningSchedule = jobs.DefaultStorageWarningSchedule
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// run serves HTTP and runs the scheduled jobs until ctx is cancelled or the
// server fails, then shuts both down.
func run(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := httpin.NewRouter(app.CreateHTTPServer(), logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server started", "port", port)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); !errors.Is(startErr, http.ErrServerClosed) {
			return startErr
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
