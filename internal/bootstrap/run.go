package bootstrap

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/inkpress/erp-gateway/config"
)

// RunServicesWithShutdown starts the enabled runtimes and blocks until a
// shutdown signal arrives or one of them fails. The HTTP server drains on
// shutdown; in-flight tracker jobs are abandoned with the process, which the
// in-memory lifecycle already implies.
func RunServicesWithShutdown(
	ctx context.Context,
	cfg *config.AppConfig,
	services *ServiceContainer,
	logger *slog.Logger,
) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if cfg.IsHTTPServerEnabled() {
		server := StartHTTPServer(cfg, services, logger)
		g.Go(func() error {
			<-gctx.Done()
			ShutdownHTTPServer(server, logger)
			return nil
		})
	}

	if cfg.IsTrackerEnabled() {
		g.Go(func() error {
			return services.Tracker.Run(gctx)
		})
	}

	err := g.Wait()
	if logger != nil {
		logger.InfoContext(ctx, "gateway stopped")
	}
	return err
}
