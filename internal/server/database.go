package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invox/invox/gen/ent"
	repo "github.com/invox/invox/internal/repository"
)

// ConnectDB opens the database with sane pool defaults and verifies it with a
// ping before anyone takes traffic.
func ConnectDB(ctx context.Context, dbURL string, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             dbURL,
		MaxConns:        20,
		MinConns:        5,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	if err := repo.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		repo.Close(entc, pool, logger)
		return nil, nil, err
	}
	return entc, pool, nil
}
