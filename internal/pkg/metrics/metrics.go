package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recompute outcomes
const (
	ResultUpdated = "updated"
	ResultCleared = "cleared"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

// Recorder collects average cost maintenance metrics
type Recorder struct {
	recomputes *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	inFlight   prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg.
// A nil registerer leaves them unregistered.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		recomputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "devcamper",
			Subsystem: "average_cost",
			Name:      "recompute_total",
			Help:      "Bootcamp average cost recomputes by result.",
		}, []string{"result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "devcamper",
			Subsystem: "average_cost",
			Name:      "recompute_duration_seconds",
			Help:      "Time spent aggregating and writing a bootcamp average cost.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"trigger"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "devcamper",
			Subsystem: "average_cost",
			Name:      "async_in_flight",
			Help:      "Asynchronous recomputes not yet finished.",
		}),
	}

	if reg != nil {
		reg.MustRegister(r.recomputes, r.duration, r.inFlight)
	}
	return r
}

// ObserveRecompute records one recompute attempt
func (r *Recorder) ObserveRecompute(trigger, result string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.recomputes.WithLabelValues(result).Inc()
	r.duration.WithLabelValues(trigger).Observe(elapsed.Seconds())
}

// AsyncStarted increments the in-flight gauge
func (r *Recorder) AsyncStarted() {
	if r == nil {
		return
	}
	r.inFlight.Inc()
}

// AsyncFinished decrements the in-flight gauge
func (r *Recorder) AsyncFinished() {
	if r == nil {
		return
	}
	r.inFlight.Dec()
}
