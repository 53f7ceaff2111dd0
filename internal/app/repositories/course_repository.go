package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/dberrors"
	"github.com/yigit/devcamper/internal/pkg/logger"
)

const courseBootcampFK = "courses_bootcamp_id_fkey"

var courseColumns = []string{
	"c.id", "c.title", "c.description", "c.weeks", "c.tuition", "c.minimum_skill",
	"c.scholarship_available", "c.created_at", "c.bootcamp_id", "c.user_id",
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db DBTX) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a course. The ID must already be set; CreatedAt is filled
// from the database default.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query, args, err := r.sb.Insert("courses").
		Columns("id", "title", "description", "weeks", "tuition", "minimum_skill",
			"scholarship_available", "bootcamp_id", "user_id").
		Values(course.ID, course.Title, course.Description, course.Weeks, course.Tuition,
			string(course.MinimumSkill), course.ScholarshipAvailable, course.BootcampID, course.UserID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&course.CreatedAt); err != nil {
		return mapCourseWriteError(err, course)
	}

	return nil
}

// GetByID retrieves a course with its bootcamp summary
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query, args, err := r.selectCourses().
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get course SQL")
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error scanning course row")
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// List returns courses matching filter, oldest first
func (r *CourseRepository) List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	builder := r.selectCourses().OrderBy("c.created_at ASC", "c.id ASC")
	if filter.BootcampID != nil {
		builder = builder.Where(squirrel.Eq{"c.bootcamp_id": *filter.BootcampID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list courses SQL")
		return nil, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// Update writes the mutable fields of a course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query, args, err := r.sb.Update("courses").
		Set("title", course.Title).
		Set("description", course.Description).
		Set("weeks", course.Weeks).
		Set("tuition", course.Tuition).
		Set("minimum_skill", string(course.MinimumSkill)).
		Set("scholarship_available", course.ScholarshipAvailable).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update course SQL")
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapCourseWriteError(err, course)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course and returns the bootcamp it belonged to, read in
// the same statement as the removal.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	query, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING bootcamp_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete course SQL")
		return uuid.Nil, fmt.Errorf("failed to build delete course query: %w", err)
	}

	var bootcampID uuid.UUID
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&bootcampID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", id.String()).Msg("Error executing delete course query")
		return uuid.Nil, fmt.Errorf("error deleting course: %w", err)
	}

	return bootcampID, nil
}

// AverageTuition counts a bootcamp's courses and averages their tuition.
// Average is zero when Count is zero.
func (r *CourseRepository) AverageTuition(ctx context.Context, bootcampID uuid.UUID) (*models.TuitionAggregate, error) {
	query, args, err := r.sb.Select("COUNT(*)", "AVG(tuition)").
		From("courses").
		Where(squirrel.Eq{"bootcamp_id": bootcampID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building average tuition SQL")
		return nil, fmt.Errorf("failed to build average tuition query: %w", err)
	}

	var (
		count   int64
		average decimal.NullDecimal
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count, &average); err != nil {
		return nil, fmt.Errorf("error aggregating tuition: %w", err)
	}

	agg := &models.TuitionAggregate{BootcampID: bootcampID, Count: count}
	if average.Valid {
		agg.Average = average.Decimal
	}
	return agg, nil
}

func (r *CourseRepository) selectCourses() squirrel.SelectBuilder {
	return r.sb.Select(courseColumns...).
		Columns("b.id", "b.name", "b.description").
		From("courses c").
		LeftJoin("bootcamps b ON b.id = c.bootcamp_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCourse(row rowScanner) (*models.Course, error) {
	var (
		course        models.Course
		skill         string
		bootcampID    uuid.NullUUID
		bootcampName  sql.NullString
		bootcampDescr sql.NullString
	)

	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.Weeks,
		&course.Tuition,
		&skill,
		&course.ScholarshipAvailable,
		&course.CreatedAt,
		&course.BootcampID,
		&course.UserID,
		&bootcampID,
		&bootcampName,
		&bootcampDescr,
	)
	if err != nil {
		return nil, err
	}

	course.MinimumSkill = models.SkillLevel(skill)
	if bootcampID.Valid {
		course.Bootcamp = &models.BootcampSummary{
			ID:          bootcampID.UUID,
			Name:        bootcampName.String,
			Description: bootcampDescr.String,
		}
	}

	return &course, nil
}

func mapCourseWriteError(err error, course *models.Course) error {
	switch {
	case dberrors.IsForeignKeyViolation(err, courseBootcampFK):
		logger.Warn().Str("bootcampID", course.BootcampID.String()).Msg("Course references unknown bootcamp")
		return apperrors.ErrBootcampNotFound
	case dberrors.IsCheckViolation(err):
		return fmt.Errorf("%w: %s", apperrors.ErrValidationFailed, err.Error())
	case dberrors.IsDuplicateConstraintError(err, "courses_pkey"):
		return apperrors.ErrResourceAlreadyExists
	}
	logger.Error().Err(err).Str("courseID", course.ID.String()).Msg("Error writing course")
	return fmt.Errorf("error writing course: %w", err)
}
