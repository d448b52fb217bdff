package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gitlab.com/dirk.krummacker/persons-service/internal/api"
	"gitlab.com/dirk.krummacker/persons-service/internal/config"
	"gitlab.com/dirk.krummacker/persons-service/internal/logging"
	"gitlab.com/dirk.krummacker/persons-service/internal/metrics"
	"gitlab.com/dirk.krummacker/persons-service/internal/service"
	"gitlab.com/dirk.krummacker/persons-service/internal/store"
)

// Usage example on the command line:
// > PORT=8080 DBUSER=dirk DBPWD=bullo92 GIN_MODE=release GIN_LOGGING=OFF go run main.go
func main() {
	// Variables already set in the environment win over the .env file.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	cfg := config.MustLoad()
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("configuration loaded", "config", cfg.String())

	sqlDB, err := store.OpenDatabase(cfg.Database)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, cfg.Database.Name),
	)
	services, err := service.SetupServices(sqlDB, metrics.New(reg))
	if err != nil {
		slog.Error("failed to prepare statements", "error", err)
		os.Exit(1)
	}

	router := api.NewRouter(services, api.Options{
		RequestLogging: cfg.Server.RequestLogging(),
		MaxUploadSize:  cfg.Server.MaxUploadSize,
		Metrics:        promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
	server := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
	<-idle
	slog.Info("server stopped")
}
