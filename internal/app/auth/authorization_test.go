package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
)

func TestCanModifyCourse(t *testing.T) {
	owner := uuid.New()
	course := &models.Course{ID: uuid.New(), UserID: owner}
	svc := NewAuthorizationService()

	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{name: "owner", actor: Actor{UserID: owner, Role: models.RolePublisher}},
		{name: "admin", actor: Actor{UserID: uuid.New(), Role: models.RoleAdmin}},
		{name: "other publisher", actor: Actor{UserID: uuid.New(), Role: models.RolePublisher}, wantErr: apperrors.ErrPermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CanModifyCourse(tt.actor, course)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.ErrorIs(t, svc.CanModifyCourse(Actor{Role: models.RoleAdmin}, nil), apperrors.ErrCourseNotFound)
}

func TestCanAddCourseToBootcamp(t *testing.T) {
	owner := uuid.New()
	bootcamp := &models.Bootcamp{ID: uuid.New(), UserID: owner}
	svc := NewAuthorizationService()

	assert.NoError(t, svc.CanAddCourseToBootcamp(Actor{UserID: owner, Role: models.RolePublisher}, bootcamp))
	assert.NoError(t, svc.CanAddCourseToBootcamp(Actor{UserID: uuid.New(), Role: models.RoleAdmin}, bootcamp))
	assert.ErrorIs(t, svc.CanAddCourseToBootcamp(Actor{UserID: uuid.New(), Role: models.RolePublisher}, bootcamp), apperrors.ErrPermissionDenied)
	assert.ErrorIs(t, svc.CanAddCourseToBootcamp(Actor{UserID: owner}, nil), apperrors.ErrBootcampNotFound)
}
