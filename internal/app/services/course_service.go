package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yigit/devcamper/internal/app/auth"
	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/logger"
)

// Messages reported per field when a course fails validation
var courseFieldMessages = map[string]string{
	"title":        "Please add a course title",
	"description":  "Please add a description",
	"weeks":        "Please add number of weeks",
	"minimumSkill": "Please add a minimum skill: beginner, intermediate or advanced",
	"bootcampId":   "Course must belong to a bootcamp",
	"userId":       "Course must have an author",
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courseRepo   CourseStore
	bootcampRepo BootcampStore
	authzService *auth.AuthorizationService
	events       *CourseEvents
	validate     *validator.Validate
}

// NewCourseService creates a new CourseService. Lifecycle hooks registered on
// events run after each successful mutation.
func NewCourseService(
	courseRepo CourseStore,
	bootcampRepo BootcampStore,
	authzService *auth.AuthorizationService,
	events *CourseEvents,
) CourseService {
	return &courseServiceImpl{
		courseRepo:   courseRepo,
		bootcampRepo: bootcampRepo,
		authzService: authzService,
		events:       events,
		validate:     newCourseValidator(),
	}
}

func newCourseValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateCourse trims the title and checks the course's required fields
func (s *courseServiceImpl) validateCourse(course *models.Course) error {
	course.Title = strings.TrimSpace(course.Title)

	err := s.validate.Struct(course)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidationFailed, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := courseFieldMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		}
		fields[fe.Field()] = msg
	}
	return apperrors.NewValidationError(fields)
}

// GetCourses lists courses, optionally for one bootcamp
func (s *courseServiceImpl) GetCourses(ctx context.Context, filter models.CourseFilter) ([]*models.Course, error) {
	courses, err := s.courseRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error getting courses: %w", err)
	}
	return courses, nil
}

// GetCourse retrieves a single course
func (s *courseServiceImpl) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	return course, nil
}

// CreateCourse persists a new course authored by actor. The bootcamp average
// is recomputed by the CourseCreated hooks without delaying the response.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, actor auth.Actor, course *models.Course) (*models.Course, error) {
	if course == nil {
		return nil, apperrors.NewBadRequestError("course is required")
	}

	course.ID = uuid.New()
	course.UserID = actor.UserID
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	bootcamp, err := s.bootcampRepo.GetByID(ctx, course.BootcampID)
	if err != nil {
		return nil, fmt.Errorf("error getting bootcamp: %w", err)
	}
	if err := s.authzService.CanAddCourseToBootcamp(actor, bootcamp); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	course.Bootcamp = &models.BootcampSummary{
		ID:          bootcamp.ID,
		Name:        bootcamp.Name,
		Description: bootcamp.Description,
	}

	logger.Info().
		Str("courseID", course.ID.String()).
		Str("bootcampID", course.BootcampID.String()).
		Str("userID", actor.UserID.String()).
		Msg("Course created")

	s.events.Publish(ctx, CourseEvent{
		Type:       CourseCreated,
		CourseID:   course.ID,
		BootcampID: course.BootcampID,
	})

	return course, nil
}

// UpdateCourse applies a partial update. Bootcamp and author never change.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, actor auth.Actor, id uuid.UUID, update models.CourseUpdate) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting course: %w", err)
	}
	if err := s.authzService.CanModifyCourse(actor, course); err != nil {
		return nil, err
	}

	tuitionChanged := update.Apply(course)
	if err := s.validateCourse(course); err != nil {
		return nil, err
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	s.events.Publish(ctx, CourseEvent{
		Type:           CourseUpdated,
		CourseID:       course.ID,
		BootcampID:     course.BootcampID,
		TuitionChanged: tuitionChanged,
	})

	return course, nil
}

// DeleteCourse removes a course. CourseDeleted hooks run before it returns,
// so the bootcamp average already excludes the course when the caller sees
// the result. Hook failures never fail the delete.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error getting course: %w", err)
	}
	if err := s.authzService.CanModifyCourse(actor, course); err != nil {
		return err
	}

	bootcampID, err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	logger.Info().
		Str("courseID", id.String()).
		Str("bootcampID", bootcampID.String()).
		Str("userID", actor.UserID.String()).
		Msg("Course deleted")

	s.events.Publish(ctx, CourseEvent{
		Type:       CourseDeleted,
		CourseID:   id,
		BootcampID: bootcampID,
	})

	return nil
}
