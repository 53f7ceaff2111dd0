package auth

import (
	"github.com/google/uuid"
	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/logger"
)

// Actor is the authenticated caller of a mutating operation
type Actor struct {
	UserID uuid.UUID
	Role   models.RoleType
}

// IsAdmin reports whether the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// AuthorizationService decides ownership questions for courses and bootcamps
type AuthorizationService struct{}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService() *AuthorizationService {
	return &AuthorizationService{}
}

// CanAddCourseToBootcamp allows the bootcamp owner and admins
func (s *AuthorizationService) CanAddCourseToBootcamp(actor Actor, bootcamp *models.Bootcamp) error {
	if bootcamp == nil {
		return apperrors.ErrBootcampNotFound
	}
	if actor.IsAdmin() || bootcamp.UserID == actor.UserID {
		return nil
	}

	logger.Warn().
		Str("userID", actor.UserID.String()).
		Str("bootcampID", bootcamp.ID.String()).
		Msg("User is not authorized to add a course to bootcamp")
	return apperrors.NewForbiddenError("User " + actor.UserID.String() + " is not authorized to add a course to bootcamp " + bootcamp.ID.String())
}

// CanModifyCourse allows the course author and admins
func (s *AuthorizationService) CanModifyCourse(actor Actor, course *models.Course) error {
	if course == nil {
		return apperrors.ErrCourseNotFound
	}
	if actor.IsAdmin() || course.UserID == actor.UserID {
		return nil
	}

	logger.Warn().
		Str("userID", actor.UserID.String()).
		Str("courseID", course.ID.String()).
		Msg("User is not authorized to modify course")
	return apperrors.NewForbiddenError("User " + actor.UserID.String() + " is not authorized to modify course " + course.ID.String())
}
