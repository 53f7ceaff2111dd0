package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/devcamper/internal/app/mock"
	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/config"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	"github.com/yigit/devcamper/internal/pkg/logger"
	"github.com/yigit/devcamper/internal/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 { return &v }

func aggregate(bootcampID uuid.UUID, tuitions ...float64) *models.TuitionAggregate {
	agg := &models.TuitionAggregate{BootcampID: bootcampID, Count: int64(len(tuitions))}
	if len(tuitions) == 0 {
		return agg
	}
	sum := decimal.Zero
	for _, t := range tuitions {
		sum = sum.Add(decimal.NewFromFloat(t))
	}
	agg.Average = sum.Div(decimal.NewFromInt(agg.Count))
	return agg
}

func newTestMaintainer(t *testing.T, onEmpty string) (*AverageCostMaintainer, *mock.MockCourseStore, *mock.MockBootcampStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	courses := mock.NewMockCourseStore(ctrl)
	bootcamps := mock.NewMockBootcampStore(ctrl)

	m := NewAverageCostMaintainer(courses, bootcamps, AverageCostOptions{
		OnEmpty: onEmpty,
		Timeout: time.Second,
		Metrics: metrics.NewRecorder(prometheus.NewRegistry()),
		Logger:  logger.Nop(),
	})
	return m, courses, bootcamps
}

func TestCeilToTen(t *testing.T) {
	tests := []struct {
		mean    string
		want    int64
		wantErr bool
	}{
		{mean: "1000", want: 1000},
		{mean: "1001", want: 1010},
		{mean: "1002.5", want: 1010},
		{mean: "1010", want: 1010},
		{mean: "1010.0001", want: 1020},
		{mean: "2000", want: 2000},
		{mean: "0", want: 0},
		{mean: "3.3333333333333333", want: 10},
		{mean: "9223372036854775800", want: 9223372036854775800},
		{mean: "9223372036854775801", wantErr: true},
		{mean: "10000000000000000000", wantErr: true},
		{mean: "-10000000000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.mean, func(t *testing.T) {
			got, err := CeilToTen(decimal.RequireFromString(tt.mean))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAverageCostOutOfRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecompute_OutOfRangeMeanIsNotWritten(t *testing.T) {
	m, courses, _ := newTestMaintainer(t, config.OnEmptySkip)
	id := uuid.New()

	courses.EXPECT().AverageTuition(gomock.Any(), id).Return(aggregate(id, 1e19), nil)

	_, err := m.Recompute(context.Background(), id)
	assert.ErrorIs(t, err, ErrAverageCostOutOfRange)

	// logged and swallowed on the event path
	courses.EXPECT().AverageTuition(gomock.Any(), id).Return(aggregate(id, 1e19), nil)
	m.RecomputeAndLog(context.Background(), id, TriggerCreate)
}

func TestRecompute_WritesRoundedMean(t *testing.T) {
	tests := []struct {
		name     string
		tuitions []float64
		want     int64
	}{
		{name: "single exact", tuitions: []float64{1000}, want: 1000},
		{name: "single rounds up", tuitions: []float64{1001}, want: 1010},
		{name: "mean 1002.5", tuitions: []float64{1000, 1005}, want: 1010},
		{name: "mean 1010", tuitions: []float64{1000, 1020}, want: 1010},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, courses, bootcamps := newTestMaintainer(t, config.OnEmptySkip)
			id := uuid.New()

			courses.EXPECT().AverageTuition(gomock.Any(), id).Return(aggregate(id, tt.tuitions...), nil)
			bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), id, int64Ptr(tt.want)).Return(nil).Times(1)

			result, err := m.Recompute(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, metrics.ResultUpdated, result.Outcome)
			assert.Equal(t, tt.want, *result.AverageCost)
			assert.Equal(t, int64(len(tt.tuitions)), result.CourseCount)
		})
	}
}

func TestRecompute_Idempotent(t *testing.T) {
	m, courses, bootcamps := newTestMaintainer(t, config.OnEmptySkip)
	id := uuid.New()

	courses.EXPECT().AverageTuition(gomock.Any(), id).Return(aggregate(id, 1000, 1005), nil).Times(2)
	bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), id, int64Ptr(1010)).Return(nil).Times(2)

	first, err := m.Recompute(context.Background(), id)
	require.NoError(t, err)
	second, err := m.Recompute(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, *first.AverageCost, *second.AverageCost)
}

func TestRecompute_EmptySkipLeavesAverage(t *testing.T) {
	m, courses, _ := newTestMaintainer(t, config.OnEmptySkip)
	id := uuid.New()

	courses.EXPECT().AverageTuition(gomock.Any(), id).Return(aggregate(id), nil)
	// no UpdateAverageCost expectation: any write fails the test

	result, err := m.Recompute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, metrics.ResultSkipped, result.Outcome)
	assert.Nil(t, result.AverageCost)
}

func TestRecompute_EmptyResetClearsAverage(t *testing.T) {
	m, courses, bootcamps := newTestMaintainer(t, config.OnEmptyReset)
	id := uuid.New()

	courses.EXPECT().AverageTuition(gomock.Any(), id).Return(aggregate(id), nil)
	bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), id, nil).Return(nil)

	result, err := m.Recompute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, metrics.ResultCleared, result.Outcome)
}

func TestRecompute_PropagatesStoreErrors(t *testing.T) {
	m, courses, bootcamps := newTestMaintainer(t, config.OnEmptySkip)
	id := uuid.New()

	courses.EXPECT().AverageTuition(gomock.Any(), id).Return(nil, errors.New("connection refused"))
	_, err := m.Recompute(context.Background(), id)
	assert.ErrorContains(t, err, "connection refused")

	courses.EXPECT().AverageTuition(gomock.Any(), id).Return(aggregate(id, 500), nil)
	bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), id, int64Ptr(500)).Return(apperrors.ErrBootcampNotFound)
	_, err = m.Recompute(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrBootcampNotFound)
}

func TestRecomputeAndLog_SwallowsErrors(t *testing.T) {
	m, courses, _ := newTestMaintainer(t, config.OnEmptySkip)
	id := uuid.New()

	courses.EXPECT().AverageTuition(gomock.Any(), id).Return(nil, errors.New("boom"))

	assert.NotPanics(t, func() {
		m.RecomputeAndLog(context.Background(), id, TriggerDelete)
	})
}

func TestRecomputeAndLog_IgnoresCallerCancellation(t *testing.T) {
	m, courses, bootcamps := newTestMaintainer(t, config.OnEmptySkip)
	id := uuid.New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	courses.EXPECT().AverageTuition(gomock.Any(), id).DoAndReturn(
		func(ctx context.Context, _ uuid.UUID) (*models.TuitionAggregate, error) {
			assert.NoError(t, ctx.Err())
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return aggregate(id, 2000), nil
		})
	bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), id, int64Ptr(2000)).Return(nil)

	m.RecomputeAndLog(ctx, id, TriggerDelete)
}

func TestRecomputeAsync_ReturnsImmediatelyAndWaitDrains(t *testing.T) {
	m, courses, bootcamps := newTestMaintainer(t, config.OnEmptySkip)
	id := uuid.New()
	release := make(chan struct{})
	var written atomic.Bool

	courses.EXPECT().AverageTuition(gomock.Any(), id).DoAndReturn(
		func(context.Context, uuid.UUID) (*models.TuitionAggregate, error) {
			<-release
			return aggregate(id, 2000), nil
		})
	bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), id, int64Ptr(2000)).DoAndReturn(
		func(context.Context, uuid.UUID, *int64) error {
			written.Store(true)
			return nil
		})

	m.RecomputeAsync(context.Background(), id, TriggerCreate)
	assert.False(t, written.Load())

	short, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, m.Wait(short), context.DeadlineExceeded)

	close(release)
	require.NoError(t, m.Wait(context.Background()))
	assert.True(t, written.Load())
}

func TestDrain_RunsLateRecomputesInline(t *testing.T) {
	m, courses, bootcamps := newTestMaintainer(t, config.OnEmptySkip)
	id := uuid.New()
	var written atomic.Bool

	require.NoError(t, m.Drain(context.Background()))

	courses.EXPECT().AverageTuition(gomock.Any(), id).Return(aggregate(id, 1000), nil)
	bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), id, int64Ptr(1000)).DoAndReturn(
		func(context.Context, uuid.UUID, *int64) error {
			written.Store(true)
			return nil
		})

	m.RecomputeAsync(context.Background(), id, TriggerCreate)

	// the write already happened on this goroutine
	assert.True(t, written.Load())
	require.NoError(t, m.Wait(context.Background()))
}

func TestRecompute_SerialisedPerBootcamp(t *testing.T) {
	m, courses, bootcamps := newTestMaintainer(t, config.OnEmptySkip)
	id := uuid.New()
	const n = 8

	var active, maxActive atomic.Int32
	courses.EXPECT().AverageTuition(gomock.Any(), id).DoAndReturn(
		func(context.Context, uuid.UUID) (*models.TuitionAggregate, error) {
			cur := active.Add(1)
			for {
				prev := maxActive.Load()
				if cur <= prev || maxActive.CompareAndSwap(prev, cur) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			return aggregate(id, 1000), nil
		}).Times(n)
	bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), id, int64Ptr(1000)).DoAndReturn(
		func(context.Context, uuid.UUID, *int64) error {
			active.Add(-1)
			return nil
		}).Times(n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.Recompute(context.Background(), id)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive.Load())
	assert.Zero(t, m.locks.size())
}

func TestRecompute_DifferentBootcampsRunInParallel(t *testing.T) {
	m, courses, bootcamps := newTestMaintainer(t, config.OnEmptySkip)
	a, b := uuid.New(), uuid.New()
	bothInside := make(chan struct{})
	var inside atomic.Int32

	courses.EXPECT().AverageTuition(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*models.TuitionAggregate, error) {
			if inside.Add(1) == 2 {
				close(bothInside)
			}
			select {
			case <-bothInside:
			case <-time.After(time.Second):
				return nil, errors.New("recomputes were serialised across bootcamps")
			}
			return aggregate(id, 1000), nil
		}).Times(2)
	bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), gomock.Any(), int64Ptr(1000)).Return(nil).Times(2)

	var wg sync.WaitGroup
	for _, id := range []uuid.UUID{a, b} {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			_, err := m.Recompute(context.Background(), id)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()
}

func TestRecomputeAll_CountsFailures(t *testing.T) {
	m, courses, bootcamps := newTestMaintainer(t, config.OnEmptySkip)
	ok, broken := uuid.New(), uuid.New()

	bootcamps.EXPECT().ListIDs(gomock.Any()).Return([]uuid.UUID{ok, broken}, nil)
	courses.EXPECT().AverageTuition(gomock.Any(), ok).Return(aggregate(ok, 1500, 1600), nil)
	bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), ok, int64Ptr(1550)).Return(nil)
	courses.EXPECT().AverageTuition(gomock.Any(), broken).Return(nil, errors.New("timeout"))

	failed, err := m.RecomputeAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, failed)
}

func TestRecomputeAll_ListError(t *testing.T) {
	m, _, bootcamps := newTestMaintainer(t, config.OnEmptySkip)
	bootcamps.EXPECT().ListIDs(gomock.Any()).Return(nil, errors.New("down"))

	_, err := m.RecomputeAll(context.Background())
	assert.ErrorContains(t, err, "listing bootcamps")
}

func TestSubscribe_WiresLifecycleEvents(t *testing.T) {
	m, courses, bootcamps := newTestMaintainer(t, config.OnEmptySkip)
	events := NewCourseEvents(logger.Nop())
	m.Subscribe(events)
	id := uuid.New()

	// created: background recompute
	courses.EXPECT().AverageTuition(gomock.Any(), id).Return(aggregate(id, 2000), nil)
	bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), id, int64Ptr(2000)).Return(nil)
	events.Publish(context.Background(), CourseEvent{Type: CourseCreated, BootcampID: id})
	require.NoError(t, m.Wait(context.Background()))

	// updated without a tuition change: nothing
	events.Publish(context.Background(), CourseEvent{Type: CourseUpdated, BootcampID: id})
	require.NoError(t, m.Wait(context.Background()))

	// deleted: recompute finished when Publish returns
	var written atomic.Bool
	courses.EXPECT().AverageTuition(gomock.Any(), id).Return(aggregate(id, 3000), nil)
	bootcamps.EXPECT().UpdateAverageCost(gomock.Any(), id, int64Ptr(3000)).DoAndReturn(
		func(context.Context, uuid.UUID, *int64) error {
			written.Store(true)
			return nil
		})
	events.Publish(context.Background(), CourseEvent{Type: CourseDeleted, BootcampID: id})
	assert.True(t, written.Load())
}

func TestNewAverageCostMaintainer_Defaults(t *testing.T) {
	m := NewAverageCostMaintainer(nil, nil, AverageCostOptions{})
	assert.Equal(t, config.OnEmptySkip, m.onEmpty)
	assert.Equal(t, 5*time.Second, m.timeout)
}
