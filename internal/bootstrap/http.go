package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/inkpress/erp-gateway/config"
	httpx "github.com/inkpress/erp-gateway/internal/http"
)

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *config.AppConfig, services *ServiceContainer, logger *slog.Logger) *http.Server {
	if logger == nil {
		logger = slog.Default()
	}

	router := httpx.NewRouter(httpx.RouterServices{
		Production:     services.Production,
		Login:          services.Login,
		GRN:            services.GRN,
		Notify:         services.Notify,
		Contractors:    services.Contractors,
		VoiceNotes:     services.VoiceNotes,
		Artwork:        services.Artwork,
		QR:             services.QR,
		MaxUploadBytes: cfg.HTTP.MaxUploadBytes,
	})

	// Order: Recover -> Logging -> Router
	handler := httpx.Recover(logger)(httpx.Logging(logger)(router))

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownHTTPServer drains in-flight requests before stopping the server.
func ShutdownHTTPServer(server *http.Server, logger *slog.Logger) {
	if server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil && logger != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
