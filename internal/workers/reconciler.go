package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// AverageCostRecomputer recomputes the average cost of every bootcamp
type AverageCostRecomputer interface {
	RecomputeAll(ctx context.Context) (int, error)
}

// Reconciler periodically repairs average costs that drifted, for example
// after a failed fire-and-forget recompute.
type Reconciler struct {
	cron       *cron.Cron
	recomputer AverageCostRecomputer
	timeout    time.Duration
	log        zerolog.Logger
	enabled    bool
}

// NewReconciler registers the reconcile job on schedule. An empty schedule
// returns a disabled reconciler whose Start and Stop do nothing.
func NewReconciler(schedule string, recomputer AverageCostRecomputer, timeout time.Duration, lgr zerolog.Logger) (*Reconciler, error) {
	r := &Reconciler{
		recomputer: recomputer,
		timeout:    timeout,
		log:        lgr.With().Str("component", "reconciler").Logger(),
	}
	if schedule == "" {
		return r, nil
	}

	r.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := r.cron.AddFunc(schedule, r.Run); err != nil {
		return nil, fmt.Errorf("invalid reconcile schedule %q: %w", schedule, err)
	}
	r.enabled = true

	return r, nil
}

// Enabled reports whether a schedule was configured
func (r *Reconciler) Enabled() bool {
	return r.enabled
}

// Start starts the scheduler in its own goroutine
func (r *Reconciler) Start() {
	if !r.enabled {
		r.log.Info().Msg("Average cost reconciler disabled")
		return
	}
	r.cron.Start()
	r.log.Info().Msg("Average cost reconciler started")
}

// Stop stops the scheduler and waits for a running job until ctx is done
func (r *Reconciler) Stop(ctx context.Context) {
	if !r.enabled {
		return
	}

	select {
	case <-r.cron.Stop().Done():
		r.log.Info().Msg("Average cost reconciler stopped")
	case <-ctx.Done():
		r.log.Warn().Err(ctx.Err()).Msg("Reconcile job still running at shutdown")
	}
}

// Run executes one reconcile pass
func (r *Reconciler) Run() {
	ctx := context.Background()
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	failed, err := r.recomputer.RecomputeAll(ctx)
	if err != nil {
		r.log.Error().Err(err).Msg("Average cost reconcile failed")
		return
	}

	event := r.log.Info()
	if failed > 0 {
		event = r.log.Warn()
	}
	event.Int("failed", failed).Dur("took", time.Since(start)).Msg("Average cost reconcile finished")
}
