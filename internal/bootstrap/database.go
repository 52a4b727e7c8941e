package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
	"github.com/redis/go-redis/v9"

	"github.com/inkpress/erp-gateway/config"
	"github.com/inkpress/erp-gateway/internal/domain/model"
)

// ConnectPartitions opens a database handle per ERP partition. Either
// partition failing to connect fails startup; the gateway never runs with
// half its sites reachable.
func ConnectPartitions(cfg *config.AppConfig, logger *slog.Logger) (map[model.Partition]*sql.DB, error) {
	handles := make(map[model.Partition]*sql.DB, 2)

	for target, pc := range map[model.Partition]config.PartitionConfig{
		model.PartitionKOL: cfg.KOL,
		model.PartitionAHM: cfg.AHM,
	} {
		db, err := connectPartition(pc)
		if err != nil {
			closePartitions(handles, logger)
			return nil, fmt.Errorf("connect partition %s: %w", target, err)
		}
		handles[target] = db

		if logger != nil {
			logger.Info("partition connected",
				"partition", target,
				"host", pc.Host,
				"port", pc.Port,
				"database", pc.Name,
			)
		}
	}

	return handles, nil
}

func connectPartition(pc config.PartitionConfig) (*sql.DB, error) {
	// Build DSN using url.URL to safely handle special characters in credentials
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(pc.User, pc.Password),
		Host:   net.JoinHostPort(pc.Host, strconv.Itoa(pc.Port)),
		Path:   "/" + pc.Name,
	}
	q := u.Query()
	q.Set("sslmode", pc.SSLMode)
	u.RawQuery = q.Encode()

	db, err := sql.Open("pgx", u.String())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(pc.MaxOpenConns)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		if closeErr := db.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close database connection: %w", closeErr))
		}
		return nil, fmt.Errorf("ping database: %w", pingErr)
	}

	return db, nil
}

func closePartitions(handles map[model.Partition]*sql.DB, logger *slog.Logger) {
	for target, db := range handles {
		if err := db.Close(); err != nil && logger != nil {
			logger.Error("close partition failed", "partition", target, "error", err)
		}
	}
}

// ClosePartitions closes every partition handle, logging failures.
func ClosePartitions(handles map[model.Partition]*sql.DB, logger *slog.Logger) {
	closePartitions(handles, logger)
}

// ConnectRedis establishes the document store connection.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func ConnectRedis(cfg config.RedisConfig, logger *slog.Logger) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis: %w", pingErr)
	}

	if logger != nil {
		logger.Info("redis connected", "addr", cfg.Addr)
	}

	return client, nil
}
