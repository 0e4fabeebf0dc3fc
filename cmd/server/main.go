package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/byword/intake-api/internal/config"
	"github.com/byword/intake-api/internal/handler"
	"github.com/byword/intake-api/internal/logging"
	"github.com/byword/intake-api/internal/metrics"
	"github.com/byword/intake-api/internal/service"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.ServiceName)
	logger := slog.Default()

	m := metrics.New()
	intakeService := service.NewIntakeService(service.Options{Logger: logger, Metrics: m})
	h := handler.New(cfg, intakeService, logger, m)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.NewRouter(h),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	var metricsServer *metrics.Server
	if cfg.MetricsAddr != "" {
		metricsServer = metrics.NewServer(cfg.MetricsAddr, m)
		go func() {
			slog.Info("metrics listening", "addr", cfg.MetricsAddr)
			if err := metricsServer.Start(); err != nil {
				slog.Error("metrics server error", "error", err)
			}
		}()
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "version", cfg.Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	// Requests in flight are not drained.
	slog.Info("shutting down", "signal", sig.String())
	if metricsServer != nil {
		if err := metricsServer.Close(); err != nil {
			slog.Warn("metrics close error", "error", err)
		}
	}
	if err := server.Close(); err != nil {
		slog.Warn("close error", "error", err)
	}
}
