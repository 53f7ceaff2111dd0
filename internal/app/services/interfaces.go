package services

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/google/uuid"
	"github.com/yigit/devcamper/internal/app/auth"
	"github.com/yigit/devcamper/internal/app/models"
)

// CourseStore is the persistence the course service and the average cost
// maintainer need. Implemented by repositories.CourseRepository.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	List(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	AverageTuition(ctx context.Context, bootcampID uuid.UUID) (*models.TuitionAggregate, error)
}

// BootcampStore is implemented by repositories.BootcampRepository
type BootcampStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Bootcamp, error)
	List(ctx context.Context) ([]*models.Bootcamp, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	UpdateAverageCost(ctx context.Context, id uuid.UUID, cost *int64) error
}

// CourseService defines the interface for course operations
type CourseService interface {
	GetCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error)
	CreateCourse(ctx context.Context, actor auth.Actor, course *models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, actor auth.Actor, id uuid.UUID, update models.CourseUpdate) (*models.Course, error)
	DeleteCourse(ctx context.Context, actor auth.Actor, id uuid.UUID) error
}

// BootcampService defines the read-only bootcamp operations
type BootcampService interface {
	GetBootcamps(ctx context.Context) ([]*models.Bootcamp, error)
	GetBootcamp(ctx context.Context, id uuid.UUID) (*models.Bootcamp, error)
}
