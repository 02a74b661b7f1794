package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sertdev/ctxscale/internal/api"
	"github.com/sertdev/ctxscale/internal/config"
	"github.com/sertdev/ctxscale/internal/logging"
	"github.com/sertdev/ctxscale/internal/metrics"
	"github.com/sertdev/ctxscale/internal/server"
	"github.com/sertdev/ctxscale/internal/slogger"
	"github.com/sertdev/ctxscale/internal/translate"
)

func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Validate config
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	// 3. Setup structured logging
	logger := slogger.Setup(cfg.LogFormat)

	// 4. Scaling diagnostics go to the debug log
	observers := translate.Observers{logging.NewScalingLogger(logger)}

	// 5. Initialize metrics (if enabled)
	apiOpts := api.Opts{ScalingEnabled: cfg.ScalingEnabled}
	serverOpts := &server.Opts{Logger: logger}
	if cfg.MetricsEnabled {
		m := metrics.New()
		observers = append(observers, m)
		apiOpts.Recorder = m
		serverOpts.MetricsMiddleware = metrics.Middleware(m)
		serverOpts.MetricsHandler = m.Handler()
	}
	apiOpts.Observer = observers

	// 6. Build the main server router with middleware
	router := server.New(cfg, api.NewRouter(apiOpts), serverOpts)

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("ctxscale listening",
			slog.String("addr", cfg.ListenAddr),
			slog.Bool("scaling_enabled", cfg.ScalingEnabled),
			slog.Bool("metrics_enabled", cfg.MetricsEnabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}
