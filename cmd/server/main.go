package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"petStayWs/internal/config"
	"petStayWs/internal/modules/booking/application/port"
	"petStayWs/internal/modules/booking/application/usecase"
	"petStayWs/internal/modules/booking/infrastructure"
	transport "petStayWs/internal/modules/booking/interface"
	"petStayWs/internal/modules/realtime"
	"petStayWs/internal/platform/broker"
	"petStayWs/internal/shared/auth"
	"petStayWs/internal/shared/logging"
)

func main() {
	// Attempt to load variables from .env so local runs honour configuration tweaks.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("booking api config resolved", slog.String("baseUrl", cfg.REST.BaseURL), slog.Duration("timeout", cfg.REST.Timeout))

	hub := realtime.NewHub()
	notifier := realtime.NewAvailabilityBroadcaster(hub)
	store := usecase.NewStore()

	var fallback port.FallbackStore
	if cfg.Redis.Enabled {
		if client := infrastructure.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); client != nil {
			fallback = infrastructure.NewRedisFallback(client)
			slog.Info("unavailable-date mirror enabled", slog.String("addr", cfg.Redis.Addr))
		} else {
			slog.Warn("redis unreachable, unavailable-date mirror disabled", slog.String("addr", cfg.Redis.Addr))
		}
	}

	api := infrastructure.NewBookingHTTPClient(cfg.REST.BaseURL, cfg.REST.Timeout, cfg.REST.Token, nil)
	refresher := usecase.NewRefreshService(api, fallback, store, notifier)
	availability := usecase.NewAvailabilityService(store)
	submit := usecase.NewSubmitService(api, availability, refresher)
	status := usecase.NewStatusService(api, store, refresher)
	unavailable := usecase.NewUnavailableDateService(api, fallback, store, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initial sync; a failed first fetch leaves availability unknown until
	// a broker event or write triggers the next refresh.
	startupCtx, startupCancel := context.WithTimeout(ctx, 30*time.Second)
	if err := refresher.Refresh(startupCtx); err != nil {
		slog.Warn("initial refresh failed", slog.Any("error", err))
	}
	startupCancel()

	if cfg.Kafka.Enabled {
		broker.StartKafkaConsumers(ctx, refresher, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topics)
		slog.Info("kafka consumers started", slog.Any("brokers", cfg.Kafka.Brokers), slog.Any("topics", cfg.Kafka.Topics))
	}

	e := echo.New()
	e.Logger.SetOutput(log.Writer())

	validator := auth.NewJWTValidator(cfg.Security.JWTSecret)
	handler := transport.NewHandler(availability, submit, status, unavailable, store, validator, hub, cfg.Websocket.SendBuffer)
	handler.Register(e)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")
	e.Close()
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	file, err := logging.OpenDailyFile(cfg.Directory)
	if err != nil {
		return nil, nil, err
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
