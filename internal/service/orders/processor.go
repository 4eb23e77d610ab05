package orders

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/logx"
)

// Results recorded per handled event.
const (
	resultHandled = "handled"
	resultIgnored = "ignored"
	resultSkipped = "skipped"
	resultFailed  = "failed"
)

// Processor processes orders events
type Processor struct {
	dispatcher  DispatchPort
	assignments AssignmentPort
	factory     *actionFactory
	events      *prometheus.CounterVec
	logger      logx.Logger
}

// Option configures a Processor.
type Option func(*Processor)

// WithEventsCounter counts handled order events by status and result.
func WithEventsCounter(c *prometheus.CounterVec) Option {
	return func(p *Processor) { p.events = c }
}

// WithLogger sets the processor logger.
func WithLogger(l logx.Logger) Option {
	return func(p *Processor) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProcessor creates a new orders.Processor
func NewProcessor(d DispatchPort, a AssignmentPort, opts ...Option) *Processor {
	p := &Processor{
		dispatcher:  d,
		assignments: a,
		logger:      logx.Nop(),
	}
	p.factory = newActionFactory(p.onDispatchable, p.onCanceled)
	for _, o := range opts {
		o(p)
	}
	return p
}

// Handle processes a single orders.Event. Unknown statuses are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		// unknown statuses share one label value
		p.count(Event{Status: "other"}, resultIgnored)
		return nil
	}
	if e.OrderID <= 0 {
		p.count(e, resultFailed)
		return apperr.ErrInvalid
	}
	result, err := fn(ctx, e)
	if err != nil {
		p.count(e, resultFailed)
		return err
	}
	p.count(e, result)
	return nil
}

func (p *Processor) onDispatchable(ctx context.Context, e Event) (string, error) {
	res, err := p.dispatcher.Dispatch(ctx, e.OrderID)
	switch {
	case errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrOrderNotDispatchable):
		p.logger.Debug("order event skipped",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", normalize(e.Status)),
			logx.Err(err),
		)
		return resultSkipped, nil
	case err != nil:
		return "", err
	}
	p.logger.Info("order event dispatched",
		logx.String("event", "order_event_dispatched"),
		logx.Int64("order_id", e.OrderID),
		logx.String("status", normalize(e.Status)),
		logx.String("outcome", string(res.Outcome)),
	)
	return resultHandled, nil
}

func (p *Processor) onCanceled(ctx context.Context, e Event) (string, error) {
	a, err := p.assignments.CancelByOrder(ctx, e.OrderID, "order_"+normalize(e.Status))
	if errors.Is(err, apperr.ErrNotFound) {
		return resultSkipped, nil
	}
	if err != nil {
		return "", err
	}
	if a == nil {
		// the order itself is cancelled even with no rider on it
		return resultHandled, nil
	}
	p.logger.Info("assignment cancelled by order event",
		logx.String("event", "order_event_cancelled"),
		logx.Int64("order_id", e.OrderID),
		logx.Int64("assignment_id", a.ID),
	)
	return resultHandled, nil
}

func (p *Processor) count(e Event, result string) {
	if p.events != nil {
		p.events.WithLabelValues(normalize(e.Status), result).Inc()
	}
}
