// Command gateway runs the printing-company ERP integration gateway.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/inkpress/erp-gateway/config"
	"github.com/inkpress/erp-gateway/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logStartupInfo(ctx, logger, &cfg)

	if err = bootstrap.ValidateServiceConfig(&cfg); err != nil {
		return err
	}

	partitions, err := bootstrap.ConnectPartitions(&cfg, logger)
	if err != nil {
		return err
	}
	defer bootstrap.ClosePartitions(partitions, logger)

	redisClient, err := bootstrap.ConnectRedis(cfg.Redis, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := redisClient.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close redis failed", "error", cerr)
		}
	}()

	services, err := bootstrap.NewServices(&bootstrap.ServiceDeps{
		Config:     &cfg,
		Partitions: partitions,
		Redis:      redisClient,
		Logger:     logger,
	})
	if err != nil {
		return err
	}
	if services.Metrics != nil {
		defer func() {
			if cerr := services.Metrics.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close statsd failed", "error", cerr)
			}
		}()
	}

	return bootstrap.RunServicesWithShutdown(ctx, &cfg, services, logger)
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting erp gateway",
		"kol_db_host", cfg.KOL.Host,
		"ahm_db_host", cfg.AHM.Host,
		"redis_addr", cfg.Redis.Addr,
		"enabled_services", bootstrap.GetEnabledServices(cfg))
}
