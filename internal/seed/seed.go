package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/devcamper/internal/app/models"
	appRepos "github.com/yigit/devcamper/internal/app/repositories"
	"github.com/yigit/devcamper/internal/config"
	"github.com/yigit/devcamper/internal/db"
)

// SampleBootcamp is created when the bootcamps table is empty
var SampleBootcamp = appModels.Bootcamp{
	Name:        "Devworks Bootcamp",
	Description: "Devworks is a full stack JavaScript Bootcamp located in the heart of Boston",
}

// CreateDefaultData inserts the sample bootcamp if no bootcamp exists yet.
// The check and the insert share one transaction.
func CreateDefaultData(ctx context.Context, conn *sql.DB, cfg config.SeedConfig, lgr zerolog.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	ownerID := uuid.New()
	if cfg.OwnerID != "" {
		parsed, err := uuid.Parse(cfg.OwnerID)
		if err != nil {
			return fmt.Errorf("invalid seed owner id: %w", err)
		}
		ownerID = parsed
	}

	lgr.Info().Msg("Checking/Creating default data (Bootcamps)...")

	return db.WithTransaction(ctx, conn, func(ctx context.Context, tx *sql.Tx) error {
		repo := appRepos.NewBootcampRepository(tx)

		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			lgr.Info().Int64("bootcamps", count).Msg("Bootcamps present, skipping seed")
			return nil
		}

		bootcamp := SampleBootcamp
		bootcamp.ID = uuid.New()
		bootcamp.UserID = ownerID
		if err := repo.Create(ctx, &bootcamp); err != nil {
			return fmt.Errorf("creating sample bootcamp: %w", err)
		}

		lgr.Info().
			Str("bootcampID", bootcamp.ID.String()).
			Str("ownerID", ownerID.String()).
			Msg("Sample bootcamp created")
		return nil
	})
}
