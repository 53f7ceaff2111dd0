package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/yigit/devcamper/internal/config"
	"github.com/yigit/devcamper/internal/pkg/metrics"
)

// Recompute triggers, used as log fields and metric labels
const (
	TriggerCreate    = "create"
	TriggerUpdate    = "update"
	TriggerDelete    = "delete"
	TriggerReconcile = "reconcile"
)

// ErrAverageCostOutOfRange is returned when a rounded mean does not fit the
// average_cost column
var ErrAverageCostOutOfRange = errors.New("average cost out of range")

var (
	ten     = decimal.NewFromInt(10)
	maxCost = decimal.NewFromInt(math.MaxInt64)
	minCost = decimal.NewFromInt(math.MinInt64)
)

// CeilToTen rounds a mean tuition up to the next multiple of ten
func CeilToTen(mean decimal.Decimal) (int64, error) {
	ceiled := mean.Div(ten).Ceil().Mul(ten)
	if ceiled.GreaterThan(maxCost) || ceiled.LessThan(minCost) {
		return 0, fmt.Errorf("%w: %s", ErrAverageCostOutOfRange, ceiled.String())
	}
	return ceiled.IntPart(), nil
}

// RecomputeResult describes what a recompute did
type RecomputeResult struct {
	BootcampID  uuid.UUID
	CourseCount int64
	// AverageCost is the value written, nil when cleared or skipped
	AverageCost *int64
	Outcome     string
}

// AverageCostOptions configures an AverageCostMaintainer
type AverageCostOptions struct {
	// OnEmpty is config.OnEmptySkip or config.OnEmptyReset
	OnEmpty string
	// Timeout bounds each recompute that is detached from its caller
	Timeout time.Duration
	Metrics *metrics.Recorder
	Logger  zerolog.Logger
}

// AverageCostMaintainer keeps Bootcamp.averageCost equal to the rounded
// mean tuition of the bootcamp's courses.
type AverageCostMaintainer struct {
	courses   CourseStore
	bootcamps BootcampStore
	onEmpty   string
	timeout   time.Duration
	metrics   *metrics.Recorder
	log       zerolog.Logger

	locks   *bootcampLocks
	pending sync.WaitGroup

	// mu guards draining and every pending.Add
	mu       sync.Mutex
	draining bool
}

// NewAverageCostMaintainer creates a maintainer over the given stores
func NewAverageCostMaintainer(courses CourseStore, bootcamps BootcampStore, opts AverageCostOptions) *AverageCostMaintainer {
	if opts.OnEmpty == "" {
		opts.OnEmpty = config.OnEmptySkip
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}

	return &AverageCostMaintainer{
		courses:   courses,
		bootcamps: bootcamps,
		onEmpty:   opts.OnEmpty,
		timeout:   opts.Timeout,
		metrics:   opts.Metrics,
		log:       opts.Logger.With().Str("component", "average_cost").Logger(),
		locks:     newBootcampLocks(),
	}
}

// Recompute aggregates the bootcamp's courses and writes the rounded mean.
// Recomputes of one bootcamp are serialised; the aggregate is read under the
// lock so the last write always reflects the latest committed courses.
func (m *AverageCostMaintainer) Recompute(ctx context.Context, bootcampID uuid.UUID) (*RecomputeResult, error) {
	unlock := m.locks.Lock(bootcampID)
	defer unlock()

	agg, err := m.courses.AverageTuition(ctx, bootcampID)
	if err != nil {
		return nil, fmt.Errorf("aggregating tuition: %w", err)
	}

	result := &RecomputeResult{BootcampID: bootcampID, CourseCount: agg.Count}

	if agg.Count == 0 {
		if m.onEmpty != config.OnEmptyReset {
			result.Outcome = metrics.ResultSkipped
			return result, nil
		}
		if err := m.bootcamps.UpdateAverageCost(ctx, bootcampID, nil); err != nil {
			return nil, fmt.Errorf("clearing average cost: %w", err)
		}
		result.Outcome = metrics.ResultCleared
		return result, nil
	}

	cost, err := CeilToTen(agg.Average)
	if err != nil {
		return nil, err
	}
	if err := m.bootcamps.UpdateAverageCost(ctx, bootcampID, &cost); err != nil {
		return nil, fmt.Errorf("writing average cost: %w", err)
	}

	result.AverageCost = &cost
	result.Outcome = metrics.ResultUpdated
	return result, nil
}

// RecomputeAndLog runs a recompute on a context detached from ctx's
// cancellation and bounded by the configured timeout. Failures are logged
// and counted, never returned.
func (m *AverageCostMaintainer) RecomputeAndLog(ctx context.Context, bootcampID uuid.UUID, trigger string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
	defer cancel()

	start := time.Now()
	result, err := m.Recompute(ctx, bootcampID)
	elapsed := time.Since(start)

	if err != nil {
		m.metrics.ObserveRecompute(trigger, metrics.ResultFailed, elapsed)
		m.log.Error().
			Err(err).
			Str("bootcampID", bootcampID.String()).
			Str("trigger", trigger).
			Bool("timeout", errors.Is(err, context.DeadlineExceeded)).
			Msg("Failed to recompute bootcamp average cost")
		return
	}

	m.metrics.ObserveRecompute(trigger, result.Outcome, elapsed)
	event := m.log.Debug().
		Str("bootcampID", bootcampID.String()).
		Str("trigger", trigger).
		Str("outcome", result.Outcome).
		Int64("courses", result.CourseCount)
	if result.AverageCost != nil {
		event = event.Int64("averageCost", *result.AverageCost)
	}
	event.Dur("elapsed", elapsed).Msg("Recomputed bootcamp average cost")
}

// RecomputeAsync schedules RecomputeAndLog in the background and returns
// immediately. Wait drains scheduled recomputes. Once Drain has started the
// recompute runs on the caller's goroutine instead.
func (m *AverageCostMaintainer) RecomputeAsync(ctx context.Context, bootcampID uuid.UUID, trigger string) {
	detached := context.WithoutCancel(ctx)

	m.mu.Lock()
	if m.draining {
		m.mu.Unlock()
		m.RecomputeAndLog(detached, bootcampID, trigger)
		return
	}
	m.pending.Add(1)
	m.mu.Unlock()

	m.metrics.AsyncStarted()
	go func() {
		defer m.pending.Done()
		defer m.metrics.AsyncFinished()
		m.RecomputeAndLog(detached, bootcampID, trigger)
	}()
}

// Wait blocks until every scheduled recompute finished or ctx is done
func (m *AverageCostMaintainer) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for average cost recomputes: %w", ctx.Err())
	}
}

// Drain stops scheduling background recomputes and waits for the pending
// ones until ctx is done
func (m *AverageCostMaintainer) Drain(ctx context.Context) error {
	m.mu.Lock()
	m.draining = true
	m.mu.Unlock()

	return m.Wait(ctx)
}

// RecomputeAll recomputes every bootcamp and returns how many failed
func (m *AverageCostMaintainer) RecomputeAll(ctx context.Context) (int, error) {
	ids, err := m.bootcamps.ListIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing bootcamps: %w", err)
	}

	failed := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return failed, ctx.Err()
		}

		rctx, cancel := context.WithTimeout(ctx, m.timeout)
		start := time.Now()
		result, err := m.Recompute(rctx, id)
		cancel()

		if err != nil {
			failed++
			m.metrics.ObserveRecompute(TriggerReconcile, metrics.ResultFailed, time.Since(start))
			m.log.Warn().Err(err).Str("bootcampID", id.String()).Msg("Reconcile recompute failed")
			continue
		}
		m.metrics.ObserveRecompute(TriggerReconcile, result.Outcome, time.Since(start))
	}

	return failed, nil
}

// Subscribe attaches the maintainer to course lifecycle events: creates and
// tuition changes recompute in the background, deletes recompute before the
// delete returns.
func (m *AverageCostMaintainer) Subscribe(events *CourseEvents) {
	events.Subscribe(func(ctx context.Context, e CourseEvent) {
		m.RecomputeAsync(ctx, e.BootcampID, TriggerCreate)
	}, CourseCreated)

	events.Subscribe(func(ctx context.Context, e CourseEvent) {
		if e.TuitionChanged {
			m.RecomputeAsync(ctx, e.BootcampID, TriggerUpdate)
		}
	}, CourseUpdated)

	events.Subscribe(func(ctx context.Context, e CourseEvent) {
		m.RecomputeAndLog(ctx, e.BootcampID, TriggerDelete)
	}, CourseDeleted)
}
