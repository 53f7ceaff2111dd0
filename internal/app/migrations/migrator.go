package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/yigit/devcamper/internal/pkg/logger"
)

//go:embed sql/*.sql
var embedMigrations embed.FS

// Migrate applies every pending migration in sql/ to db
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "sql"); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through zerolog
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	logger.Info().Str("component", "migrations").Msgf(format, v...)
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	logger.Fatal().Str("component", "migrations").Msgf(format, v...)
}
