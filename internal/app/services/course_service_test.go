package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/devcamper/internal/app/auth"
	"github.com/yigit/devcamper/internal/app/mock"
	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/config"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/logger"
	"go.uber.org/mock/gomock"
)

type courseServiceFixture struct {
	svc        CourseService
	courses    *mock.MockCourseStore
	bootcamps  *mock.MockBootcampStore
	events     *CourseEvents
	maintainer *AverageCostMaintainer
	owner      auth.Actor
	bootcamp   *models.Bootcamp
}

func newCourseServiceFixture(t *testing.T, onEmpty string) *courseServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	courses := mock.NewMockCourseStore(ctrl)
	bootcamps := mock.NewMockBootcampStore(ctrl)
	events := NewCourseEvents(logger.Nop())

	maintainer := NewAverageCostMaintainer(courses, bootcamps, AverageCostOptions{
		OnEmpty: onEmpty,
		Timeout: time.Second,
		Logger:  logger.Nop(),
	})
	maintainer.Subscribe(events)

	owner := auth.Actor{UserID: uuid.New(), Role: models.RolePublisher}
	return &courseServiceFixture{
		svc:        NewCourseService(courses, bootcamps, auth.NewAuthorizationService(), events),
		courses:    courses,
		bootcamps:  bootcamps,
		events:     events,
		maintainer: maintainer,
		owner:      owner,
		bootcamp:   &models.Bootcamp{ID: uuid.New(), Name: "Devworks", Description: "Full stack", UserID: owner.UserID},
	}
}

func (f *courseServiceFixture) newCourse(tuition float64) *models.Course {
	return &models.Course{
		Title:        "  Front End Web Development  ",
		Description:  "HTML, CSS and JavaScript",
		Weeks:        "8",
		Tuition:      tuition,
		MinimumSkill: models.SkillBeginner,
		BootcampID:   f.bootcamp.ID,
	}
}

func (f *courseServiceFixture) existingCourse(tuition float64) *models.Course {
	c := f.newCourse(tuition)
	c.ID = uuid.New()
	c.Title = "Front End Web Development"
	c.UserID = f.owner.UserID
	return c
}

func TestCreateCourse_FirstCourseSetsAverage(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)

	f.bootcamps.EXPECT().GetByID(gomock.Any(), f.bootcamp.ID).Return(f.bootcamp, nil)
	f.courses.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Course) error {
			assert.Equal(t, "Front End Web Development", c.Title)
			assert.Equal(t, f.owner.UserID, c.UserID)
			assert.NotEqual(t, uuid.Nil, c.ID)
			c.CreatedAt = time.Now()
			return nil
		})
	f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).Return(aggregate(f.bootcamp.ID, 2000), nil)
	f.bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), f.bootcamp.ID, int64Ptr(2000)).Return(nil)

	created, err := f.svc.CreateCourse(context.Background(), f.owner, f.newCourse(2000))
	require.NoError(t, err)
	require.NotNil(t, created.Bootcamp)
	assert.Equal(t, "Devworks", created.Bootcamp.Name)

	require.NoError(t, f.maintainer.Wait(context.Background()))
}

func TestCreateCourse_SecondCourseAveragesBoth(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	var stored []float64

	f.bootcamps.EXPECT().GetByID(gomock.Any(), f.bootcamp.ID).Return(f.bootcamp, nil).Times(2)
	f.courses.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *models.Course) error {
			stored = append(stored, c.Tuition)
			return nil
		}).Times(2)
	f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).DoAndReturn(
		func(context.Context, uuid.UUID) (*models.TuitionAggregate, error) {
			return aggregate(f.bootcamp.ID, stored...), nil
		}).Times(2)

	gomock.InOrder(
		f.bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), f.bootcamp.ID, int64Ptr(1000)).Return(nil),
		f.bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), f.bootcamp.ID, int64Ptr(1010)).Return(nil),
	)

	_, err := f.svc.CreateCourse(context.Background(), f.owner, f.newCourse(1000))
	require.NoError(t, err)
	require.NoError(t, f.maintainer.Wait(context.Background()))

	_, err = f.svc.CreateCourse(context.Background(), f.owner, f.newCourse(1020))
	require.NoError(t, err)
	require.NoError(t, f.maintainer.Wait(context.Background()))
}

func TestCreateCourse_DoesNotWaitForRecompute(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	release := make(chan struct{})

	f.bootcamps.EXPECT().GetByID(gomock.Any(), f.bootcamp.ID).Return(f.bootcamp, nil)
	f.courses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).DoAndReturn(
		func(context.Context, uuid.UUID) (*models.TuitionAggregate, error) {
			<-release
			return aggregate(f.bootcamp.ID, 1000), nil
		})
	f.bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), f.bootcamp.ID, int64Ptr(1000)).Return(nil)

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.CreateCourse(context.Background(), f.owner, f.newCourse(1000))
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("CreateCourse blocked on the average cost recompute")
	}

	close(release)
	require.NoError(t, f.maintainer.Wait(context.Background()))
}

func TestCreateCourse_RecomputeFailureDoesNotFailCreate(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)

	f.bootcamps.EXPECT().GetByID(gomock.Any(), f.bootcamp.ID).Return(f.bootcamp, nil)
	f.courses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).Return(nil, errors.New("db down"))

	_, err := f.svc.CreateCourse(context.Background(), f.owner, f.newCourse(1000))
	require.NoError(t, err)
	require.NoError(t, f.maintainer.Wait(context.Background()))
}

func TestCreateCourse_ValidationErrors(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)

	course := f.newCourse(1000)
	course.Title = "   "
	course.MinimumSkill = "expert"

	_, err := f.svc.CreateCourse(context.Background(), f.owner, course)
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)

	ce, ok := apperrors.AsCustomError(err)
	require.True(t, ok)
	assert.Equal(t, "Please add a course title", ce.Details["title"])
	assert.Contains(t, ce.Details, "minimumSkill")
	assert.NotContains(t, ce.Details, "weeks")
}

func TestCreateCourse_ZeroTuitionIsAllowed(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)

	f.bootcamps.EXPECT().GetByID(gomock.Any(), f.bootcamp.ID).Return(f.bootcamp, nil)
	f.courses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).Return(aggregate(f.bootcamp.ID, 0), nil)
	f.bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), f.bootcamp.ID, int64Ptr(0)).Return(nil)

	_, err := f.svc.CreateCourse(context.Background(), f.owner, f.newCourse(0))
	require.NoError(t, err)
	require.NoError(t, f.maintainer.Wait(context.Background()))
}

func TestCreateCourse_UnknownBootcamp(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	f.bootcamps.EXPECT().GetByID(gomock.Any(), f.bootcamp.ID).Return(nil, apperrors.ErrBootcampNotFound)

	_, err := f.svc.CreateCourse(context.Background(), f.owner, f.newCourse(1000))
	assert.ErrorIs(t, err, apperrors.ErrBootcampNotFound)
}

func TestCreateCourse_NotBootcampOwner(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	f.bootcamps.EXPECT().GetByID(gomock.Any(), f.bootcamp.ID).Return(f.bootcamp, nil)

	stranger := auth.Actor{UserID: uuid.New(), Role: models.RolePublisher}
	_, err := f.svc.CreateCourse(context.Background(), stranger, f.newCourse(1000))
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDeleteCourse_RecomputesBeforeReturning(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	course := f.existingCourse(1000)
	var written atomic.Bool

	f.courses.EXPECT().GetByID(gomock.Any(), course.ID).Return(course, nil)
	f.courses.EXPECT().Delete(gomock.Any(), course.ID).Return(f.bootcamp.ID, nil)
	f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).Return(aggregate(f.bootcamp.ID, 3000), nil)
	f.bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), f.bootcamp.ID, int64Ptr(3000)).DoAndReturn(
		func(context.Context, uuid.UUID, *int64) error {
			written.Store(true)
			return nil
		})

	require.NoError(t, f.svc.DeleteCourse(context.Background(), f.owner, course.ID))
	assert.True(t, written.Load())
}

func TestDeleteCourse_LastCourse(t *testing.T) {
	t.Run("skip keeps the stale average", func(t *testing.T) {
		f := newCourseServiceFixture(t, config.OnEmptySkip)
		course := f.existingCourse(1000)

		f.courses.EXPECT().GetByID(gomock.Any(), course.ID).Return(course, nil)
		f.courses.EXPECT().Delete(gomock.Any(), course.ID).Return(f.bootcamp.ID, nil)
		f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).Return(aggregate(f.bootcamp.ID), nil)

		assert.NoError(t, f.svc.DeleteCourse(context.Background(), f.owner, course.ID))
	})

	t.Run("reset clears the average", func(t *testing.T) {
		f := newCourseServiceFixture(t, config.OnEmptyReset)
		course := f.existingCourse(1000)

		f.courses.EXPECT().GetByID(gomock.Any(), course.ID).Return(course, nil)
		f.courses.EXPECT().Delete(gomock.Any(), course.ID).Return(f.bootcamp.ID, nil)
		f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).Return(aggregate(f.bootcamp.ID), nil)
		f.bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), f.bootcamp.ID, nil).Return(nil)

		assert.NoError(t, f.svc.DeleteCourse(context.Background(), f.owner, course.ID))
	})
}

func TestDeleteCourse_RecomputeFailureStillSucceeds(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	course := f.existingCourse(1000)

	f.courses.EXPECT().GetByID(gomock.Any(), course.ID).Return(course, nil)
	f.courses.EXPECT().Delete(gomock.Any(), course.ID).Return(f.bootcamp.ID, nil)
	f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).Return(aggregate(f.bootcamp.ID, 1000), nil)
	f.bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), f.bootcamp.ID, int64Ptr(1000)).Return(apperrors.ErrBootcampNotFound)

	assert.NoError(t, f.svc.DeleteCourse(context.Background(), f.owner, course.ID))
}

func TestDeleteCourse_Forbidden(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	course := f.existingCourse(1000)
	f.courses.EXPECT().GetByID(gomock.Any(), course.ID).Return(course, nil)

	stranger := auth.Actor{UserID: uuid.New(), Role: models.RolePublisher}
	assert.ErrorIs(t, f.svc.DeleteCourse(context.Background(), stranger, course.ID), apperrors.ErrPermissionDenied)
}

func TestDeleteCourse_AdminMayDeleteAnyCourse(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	course := f.existingCourse(1000)

	f.courses.EXPECT().GetByID(gomock.Any(), course.ID).Return(course, nil)
	f.courses.EXPECT().Delete(gomock.Any(), course.ID).Return(f.bootcamp.ID, nil)
	f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).Return(aggregate(f.bootcamp.ID), nil)

	admin := auth.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	assert.NoError(t, f.svc.DeleteCourse(context.Background(), admin, course.ID))
}

func TestDeleteCourse_NotFound(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	id := uuid.New()
	f.courses.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrCourseNotFound)

	assert.ErrorIs(t, f.svc.DeleteCourse(context.Background(), f.owner, id), apperrors.ErrResourceNotFound)
}

func TestUpdateCourse_TuitionChangeRecomputes(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	course := f.existingCourse(1000)
	tuition := 1500.0

	f.courses.EXPECT().GetByID(gomock.Any(), course.ID).Return(course, nil)
	f.courses.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).Return(aggregate(f.bootcamp.ID, 1500), nil)
	f.bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), f.bootcamp.ID, int64Ptr(1500)).Return(nil)

	updated, err := f.svc.UpdateCourse(context.Background(), f.owner, course.ID, models.CourseUpdate{Tuition: &tuition})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, updated.Tuition)
	require.NoError(t, f.maintainer.Wait(context.Background()))
}

func TestUpdateCourse_OtherFieldsDoNotRecompute(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	course := f.existingCourse(1000)
	title := "  Back End Development "

	f.courses.EXPECT().GetByID(gomock.Any(), course.ID).Return(course, nil)
	f.courses.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := f.svc.UpdateCourse(context.Background(), f.owner, course.ID, models.CourseUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Back End Development", updated.Title)
	require.NoError(t, f.maintainer.Wait(context.Background()))
}

func TestUpdateCourse_BlankTitleRejected(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	course := f.existingCourse(1000)
	blank := " "

	f.courses.EXPECT().GetByID(gomock.Any(), course.ID).Return(course, nil)

	_, err := f.svc.UpdateCourse(context.Background(), f.owner, course.ID, models.CourseUpdate{Title: &blank})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCourseEvents_PanickingHookIsRecovered(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	var mu sync.Mutex
	var seen []CourseEventType

	f.events.Subscribe(func(context.Context, CourseEvent) { panic("broken hook") }, CourseCreated)
	f.events.Subscribe(func(_ context.Context, e CourseEvent) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, e.Type)
	}, CourseCreated)

	f.bootcamps.EXPECT().GetByID(gomock.Any(), f.bootcamp.ID).Return(f.bootcamp, nil)
	f.courses.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.courses.EXPECT().AverageTuition(gomock.Any(), f.bootcamp.ID).Return(aggregate(f.bootcamp.ID, 1000), nil)
	f.bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), f.bootcamp.ID, int64Ptr(1000)).Return(nil)

	_, err := f.svc.CreateCourse(context.Background(), f.owner, f.newCourse(1000))
	require.NoError(t, err)
	require.NoError(t, f.maintainer.Wait(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []CourseEventType{CourseCreated}, seen)
}

func TestGetCourses_PassesFilter(t *testing.T) {
	f := newCourseServiceFixture(t, config.OnEmptySkip)
	filter := models.CourseFilter{BootcampID: &f.bootcamp.ID}
	f.courses.EXPECT().List(gomock.Any(), filter).Return([]*models.Course{f.existingCourse(1000)}, nil)

	courses, err := f.svc.GetCourses(context.Background(), filter)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}
