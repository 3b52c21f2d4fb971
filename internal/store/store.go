// Package store persists the normalized tables in a relational database
// and exposes the SQL side of the aggregation cross-check. Two backends:
// an embedded sqlite file for local runs, and Postgres (via pgx) when a
// DSN is configured.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/nacc-tools/disclosure-etl/internal/common"
)

// Store wraps the relational database connection.
type Store struct {
	db       *sql.DB
	pool     *pgxpool.Pool
	postgres bool
	logger   *slog.Logger
}

// Open connects to the configured backend. A non-empty DSN selects
// Postgres; otherwise the embedded sqlite file at cfg.Path is used.
func Open(ctx context.Context, cfg common.StoreConfig, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if cfg.DSN != "" {
		logger.Info("store.connect", "backend", "postgres")
		pc, err := pgxpool.ParseConfig(cfg.DSN)
		if err != nil {
			return nil, common.WrapError(err, "parse store dsn")
		}
		pc.ConnConfig.RuntimeParams["application_name"] = "disclosure-etl"

		if cfg.DialTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
			defer cancel()
		}
		pool, err := pgxpool.NewWithConfig(ctx, pc)
		if err != nil {
			return nil, common.WrapError(err, "connect postgres")
		}
		return &Store{db: stdlib.OpenDBFromPool(pool), pool: pool, postgres: true, logger: logger}, nil
	}

	logger.Info("store.connect", "backend", "sqlite", "path", cfg.Path)
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, common.WrapError(err, "open sqlite")
	}
	// The embedded backend serializes writers itself; one connection avoids
	// SQLITE_BUSY under the pipeline's single-writer discipline.
	db.SetMaxOpenConns(1)
	return &Store{db: db, logger: logger}, nil
}

// Close closes the database connections gracefully.
func (s *Store) Close() {
	s.logger.Info("store.close")
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("store.close.failed", "error", err)
		}
	}
	if s.pool != nil {
		s.pool.Close()
	}
}

// HealthCheck pings the backend to catch DSN issues early.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// rebind converts ?-style placeholders to $N for the Postgres backend.
func (s *Store) rebind(query string) string {
	if !s.postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
