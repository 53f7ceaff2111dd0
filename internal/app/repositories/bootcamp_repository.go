package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/dberrors"
	"github.com/yigit/devcamper/internal/pkg/logger"
)

// BootcampRepository handles database operations for bootcamps
type BootcampRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewBootcampRepository creates a new BootcampRepository
func NewBootcampRepository(db DBTX) *BootcampRepository {
	return &BootcampRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetByID retrieves a bootcamp by ID
func (r *BootcampRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bootcamp, error) {
	query, args, err := r.sb.Select("id", "name", "description", "user_id", "average_cost", "created_at").
		From("bootcamps").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get bootcamp SQL")
		return nil, fmt.Errorf("failed to build get bootcamp query: %w", err)
	}

	bootcamp, err := scanBootcamp(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrBootcampNotFound
		}
		logger.Error().Err(err).Str("bootcampID", id.String()).Msg("Error scanning bootcamp row")
		return nil, fmt.Errorf("error retrieving bootcamp: %w", err)
	}

	return bootcamp, nil
}

// List returns all bootcamps ordered by name
func (r *BootcampRepository) List(ctx context.Context) ([]*models.Bootcamp, error) {
	query, args, err := r.sb.Select("id", "name", "description", "user_id", "average_cost", "created_at").
		From("bootcamps").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list bootcamps SQL")
		return nil, fmt.Errorf("failed to build list bootcamps query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list bootcamps query")
		return nil, fmt.Errorf("error listing bootcamps: %w", err)
	}
	defer rows.Close()

	bootcamps := make([]*models.Bootcamp, 0)
	for rows.Next() {
		bootcamp, err := scanBootcamp(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning bootcamp row: %w", err)
		}
		bootcamps = append(bootcamps, bootcamp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bootcamp rows: %w", err)
	}

	return bootcamps, nil
}

// ListIDs returns the id of every bootcamp
func (r *BootcampRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	query, args, err := r.sb.Select("id").From("bootcamps").OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list bootcamp ids query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list bootcamp ids query")
		return nil, fmt.Errorf("error listing bootcamp ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning bootcamp id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Count returns the number of bootcamps
func (r *BootcampRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := r.sb.Select("COUNT(*)").From("bootcamps").ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count bootcamps query: %w", err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting bootcamps: %w", err)
	}
	return count, nil
}

// Create inserts a bootcamp. The ID must already be set.
func (r *BootcampRepository) Create(ctx context.Context, bootcamp *models.Bootcamp) error {
	query, args, err := r.sb.Insert("bootcamps").
		Columns("id", "name", "description", "user_id").
		Values(bootcamp.ID, bootcamp.Name, bootcamp.Description, bootcamp.UserID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create bootcamp SQL")
		return fmt.Errorf("failed to build create bootcamp query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&bootcamp.CreatedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "bootcamps_name_key") {
			return apperrors.ErrResourceAlreadyExists
		}
		logger.Error().Err(err).Str("name", bootcamp.Name).Msg("Error executing create bootcamp query")
		return fmt.Errorf("error creating bootcamp: %w", err)
	}

	return nil
}

// UpdateAverageCost replaces the average_cost column only. A nil cost
// clears it.
func (r *BootcampRepository) UpdateAverageCost(ctx context.Context, id uuid.UUID, cost *int64) error {
	var value interface{}
	if cost != nil {
		value = *cost
	}

	query, args, err := r.sb.Update("bootcamps").
		Set("average_cost", value).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update average cost SQL")
		return fmt.Errorf("failed to build update average cost query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating average cost: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrBootcampNotFound
	}

	return nil
}

func scanBootcamp(row rowScanner) (*models.Bootcamp, error) {
	var (
		bootcamp models.Bootcamp
		average  sql.NullInt64
	)

	err := row.Scan(
		&bootcamp.ID,
		&bootcamp.Name,
		&bootcamp.Description,
		&bootcamp.UserID,
		&average,
		&bootcamp.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if average.Valid {
		cost := average.Int64
		bootcamp.AverageCost = &cost
	}
	return &bootcamp, nil
}
