// Command server runs the expense-settlement HTTP API.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/jakobj/money-helsinki/internal/auth"
	"github.com/jakobj/money-helsinki/internal/config"
	"github.com/jakobj/money-helsinki/internal/middleware"
	"github.com/jakobj/money-helsinki/internal/service"
	"github.com/jakobj/money-helsinki/internal/storage/sqlite"
	"github.com/jakobj/money-helsinki/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	svc := service.New(store,
		auth.NewPasswordAuthenticator(store),
		auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
	)

	mux := http.NewServeMux()
	svc.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.Logging(middleware.CORS(middleware.Metrics(mux)))

	// h2c serves HTTP/2 without TLS so clients behind a terminating proxy
	// can multiplex.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	slog.Info("Server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
