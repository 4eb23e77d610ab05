package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// NewRateLimitExceededTotal returns a Prometheus counter for location pings rejected by the per-rider limiter
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewAssignmentTransitionsTotal returns a counter of applied assignment transitions by event and target status
func NewAssignmentTransitionsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_transitions_total",
		Help: "Total number of applied assignment state transitions",
	}, []string{"event", "to"})
}

// NewDispatchOutcomesTotal returns a counter of dispatch results (assigned, existing, unassigned, manual_required, error)
func NewDispatchOutcomesTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_outcomes_total",
		Help: "Total number of dispatch attempts by outcome",
	}, []string{"outcome"})
}

// NewLocationUpdatesTotal returns a counter of recorded rider location pings
func NewLocationUpdatesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rider_location_updates_total",
		Help: "Total number of recorded rider location pings",
	})
}

// NewOrderEventsTotal returns a counter of consumed order events by status and result
func NewOrderEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_events_total",
		Help: "Total number of consumed order lifecycle events",
	}, []string{"status", "result"})
}

// Register registers c and returns the collector that ended up registered.
// A collector registered earlier under the same descriptor is reused.
func Register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, err
	}
	return c, nil
}
