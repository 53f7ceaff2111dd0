package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/yigit/devcamper/internal/config"
	"github.com/yigit/devcamper/internal/pkg/helpers"
	"github.com/yigit/devcamper/internal/pkg/logger"
)

// PostgresDB database connection structure
type PostgresDB struct {
	DB *sql.DB
}

// NewPostgresDB opens a PostgreSQL connection pool and verifies it
func NewPostgresDB(cfg *config.Config) (*PostgresDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := sql.Open("pgx", cfg.GetPostgresConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Database.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	conn.SetConnMaxLifetime(helpers.ParseDuration(cfg.Database.ConnMaxLifetime, 5*time.Minute))

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &PostgresDB{DB: conn}, nil
}

// Ping checks the connection, used by the health endpoint
func (db *PostgresDB) Ping(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

// Close closing method
func (db *PostgresDB) Close() {
	if db.DB != nil {
		if err := db.DB.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close database")
		}
	}
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sql.Tx) error

// WithTransaction runs a function within a transaction
func (db *PostgresDB) WithTransaction(ctx context.Context, fn TransactionFn) error {
	return WithTransaction(ctx, db.DB, fn)
}

// WithTransaction runs fn inside a transaction on conn, rolling back on error or panic
func WithTransaction(ctx context.Context, conn *sql.DB, fn TransactionFn) error {
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return fmt.Errorf("error: %v, rollback error: %w", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
