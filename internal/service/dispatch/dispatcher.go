package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/logx"
	"rider-dispatch/internal/service/assignment"
)

// Outcome is the result kind of a dispatch request.
type Outcome string

// List of dispatch outcomes
const (
	OutcomeAssigned       Outcome = "assigned"
	OutcomeExisting       Outcome = "existing"
	OutcomeUnassigned     Outcome = "unassigned"
	OutcomeManual         Outcome = "manual"
	OutcomeClaimed        Outcome = "claimed"
	OutcomeManualRequired Outcome = "manual_required"
)

// Reasons attached to manual_required events.
const (
	ReasonRematchExhausted = "rematch_exhausted"
	ReasonNoCandidate      = "no_candidate"
)

// ReasonClaimFailed is stored on a claimed assignment cancelled because its accept failed.
const ReasonClaimFailed = "claim_failed"

// maxCandidateTries bounds how many ranked riders one Dispatch call tries to reserve.
const maxCandidateTries = 5

// Result is what Dispatch did for an order.
type Result struct {
	Outcome    Outcome
	Assignment *domain.Assignment
}

// Config holds the dispatch policy.
type Config struct {
	MaxRematchAttempts int
	OperationTimeout   time.Duration
}

// Dispatcher turns dispatchable orders into assignments and re-matches after rejections.
type Dispatcher struct {
	orders      orderReader
	assignments assignments
	matcher     matcher
	cfg         Config

	locator  RiderLocator
	riders   RiderNotifier
	events   EventSink
	outcomes *prometheus.CounterVec
	logger   logx.Logger
	now      func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRiderLocator sets where manual and claimed assignments read the rider position from.
func WithRiderLocator(l RiderLocator) Option {
	return func(d *Dispatcher) { d.locator = l }
}

// WithRiderNotifier sets the rider notification collaborator.
func WithRiderNotifier(n RiderNotifier) Option {
	return func(d *Dispatcher) { d.riders = n }
}

// WithEventSink sets where manual_required events go.
func WithEventSink(e EventSink) Option {
	return func(d *Dispatcher) { d.events = e }
}

// WithOutcomesCounter counts dispatch outcomes.
func WithOutcomesCounter(c *prometheus.CounterVec) Option {
	return func(d *Dispatcher) { d.outcomes = c }
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(orders orderReader, as assignments, m matcher, cfg Config, logger logx.Logger, opts ...Option) *Dispatcher {
	if cfg.MaxRematchAttempts < 0 {
		cfg.MaxRematchAttempts = 0
	}
	if cfg.OperationTimeout <= 0 {
		cfg.OperationTimeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	d := &Dispatcher{
		orders:      orders,
		assignments: as,
		matcher:     m,
		cfg:         cfg,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Dispatch assigns the best available rider to the order.
// It is safe to call again: an order that already has an active assignment gets it back.
// Riders that rejected or let an earlier assignment of the order expire are skipped.
func (d *Dispatcher) Dispatch(ctx context.Context, orderID int64) (Result, error) {
	if orderID <= 0 {
		return Result{}, apperr.ErrInvalid
	}
	if a, err := d.assignments.Active(ctx, orderID); err != nil {
		return Result{}, err
	} else if a != nil {
		d.count(OutcomeExisting)
		return Result{Outcome: OutcomeExisting, Assignment: a}, nil
	}

	order, err := d.dispatchableOrder(ctx, orderID)
	if err != nil {
		return Result{}, err
	}
	history, err := d.assignments.ListByOrder(ctx, orderID)
	if err != nil {
		return Result{}, err
	}

	matches, err := d.matcher.Rank(ctx, *order, rejectedRiders(history))
	if err != nil {
		return Result{}, err
	}

	for i, m := range matches {
		if i == maxCandidateTries {
			break
		}
		pos := m.Position
		a, err := d.assignments.Create(ctx, assignment.CreateInput{
			OrderID:       orderID,
			RiderID:       m.Rider.ID,
			Type:          domain.AssignmentAuto,
			Attempt:       len(history) + 1,
			RiderPosition: &pos,
		})
		switch {
		case err == nil:
			d.logger.Info("order dispatched",
				logx.String("event", "dispatch_assigned"),
				logx.Int64("order_id", orderID),
				logx.Int64("assignment_id", a.ID),
				logx.Int64("rider_id", m.Rider.ID),
				logx.Float64("distance_km", m.DistanceKm),
				logx.Int("attempt", a.Attempt),
			)
			d.notifyRider(ctx, *a)
			d.count(OutcomeAssigned)
			return Result{Outcome: OutcomeAssigned, Assignment: a}, nil

		case errors.Is(err, apperr.ErrRiderUnavailable):
			d.logger.Debug("candidate taken, trying next",
				logx.Int64("order_id", orderID),
				logx.Int64("rider_id", m.Rider.ID),
			)
			continue

		case errors.Is(err, apperr.ErrActiveAssignment):
			active, aerr := d.assignments.Active(ctx, orderID)
			if aerr != nil {
				return Result{}, aerr
			}
			if active == nil {
				return Result{}, fmt.Errorf("order %d: %w", orderID, apperr.ErrConflict)
			}
			d.count(OutcomeExisting)
			return Result{Outcome: OutcomeExisting, Assignment: active}, nil

		default:
			return Result{}, err
		}
	}

	d.logger.Info("no rider available for order",
		logx.String("event", "dispatch_unassigned"),
		logx.Int64("order_id", orderID),
		logx.Int("candidates", len(matches)),
	)
	d.count(OutcomeUnassigned)
	return Result{Outcome: OutcomeUnassigned}, nil
}

// AssignManually creates a manual assignment of riderID to the order without ranking.
func (d *Dispatcher) AssignManually(ctx context.Context, orderID, riderID int64) (*domain.Assignment, error) {
	a, err := d.create(ctx, orderID, riderID, domain.AssignmentManual)
	if err != nil {
		return nil, err
	}
	d.logger.Info("order assigned manually",
		logx.String("event", "dispatch_manual"),
		logx.Int64("order_id", orderID),
		logx.Int64("assignment_id", a.ID),
		logx.Int64("rider_id", riderID),
	)
	d.notifyRider(ctx, *a)
	d.count(OutcomeManual)
	return a, nil
}

// Claim lets a rider take an order: the assignment is created and accepted at once.
func (d *Dispatcher) Claim(ctx context.Context, orderID, riderID int64) (*domain.Assignment, error) {
	a, err := d.create(ctx, orderID, riderID, domain.AssignmentRiderClaimed)
	if err != nil {
		return nil, err
	}
	accepted, err := d.assignments.Accept(ctx, a.ID, riderID)
	if err != nil {
		d.releaseClaim(ctx, *a, err)
		return nil, fmt.Errorf("accept claimed assignment %d: %w", a.ID, err)
	}
	d.logger.Info("order claimed by rider",
		logx.String("event", "dispatch_claimed"),
		logx.Int64("order_id", orderID),
		logx.Int64("assignment_id", a.ID),
		logx.Int64("rider_id", riderID),
	)
	d.count(OutcomeClaimed)
	return accepted, nil
}

// releaseClaim cancels a claimed assignment whose accept failed, freeing the rider and the order.
// It runs on a fresh deadline since the failed accept may have used up ctx.
func (d *Dispatcher) releaseClaim(ctx context.Context, a domain.Assignment, cause error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.cfg.OperationTimeout)
	defer cancel()

	if _, err := d.assignments.Cancel(ctx, a.ID, ReasonClaimFailed); err != nil {
		d.logger.Error("claimed assignment left pending",
			logx.String("event", "claim_release_failed"),
			logx.Int64("order_id", a.OrderID),
			logx.Int64("assignment_id", a.ID),
			logx.OptInt64("rider_id", a.RiderID),
			logx.String("cause", cause.Error()),
			logx.Err(err),
		)
		return
	}
	d.logger.Warn("claim rolled back",
		logx.String("event", "claim_released"),
		logx.Int64("order_id", a.OrderID),
		logx.Int64("assignment_id", a.ID),
		logx.OptInt64("rider_id", a.RiderID),
		logx.Err(cause),
	)
}

func (d *Dispatcher) create(ctx context.Context, orderID, riderID int64, typ domain.AssignmentType) (*domain.Assignment, error) {
	if orderID <= 0 || riderID <= 0 {
		return nil, apperr.ErrInvalid
	}
	history, err := d.assignments.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return d.assignments.Create(ctx, assignment.CreateInput{
		OrderID:       orderID,
		RiderID:       riderID,
		Type:          typ,
		Attempt:       len(history) + 1,
		RiderPosition: d.position(ctx, riderID),
	})
}

func (d *Dispatcher) dispatchableOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := d.orders.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("order %d: %w", orderID, apperr.ErrNotFound)
	}
	if !order.Dispatchable() {
		return nil, fmt.Errorf("order %d is %s: %w", orderID, order.Status, apperr.ErrOrderNotDispatchable)
	}
	return order, nil
}

func (d *Dispatcher) position(ctx context.Context, riderID int64) *domain.Point {
	if d.locator == nil {
		return nil
	}
	loc, err := d.locator.CurrentLocation(ctx, riderID)
	if err != nil || loc == nil {
		return nil
	}
	return &loc.Position
}

func (d *Dispatcher) notifyRider(ctx context.Context, a domain.Assignment) {
	if d.riders == nil || a.RiderID == nil {
		return
	}
	if err := d.riders.NotifyRiderOfAssignment(ctx, *a.RiderID, a); err != nil {
		d.logger.Warn("rider notification dropped",
			logx.String("event", "notification_failed"),
			logx.Int64("assignment_id", a.ID),
			logx.Int64("order_id", a.OrderID),
			logx.Int64("rider_id", *a.RiderID),
			logx.Err(err),
		)
	}
}

func (d *Dispatcher) count(o Outcome) {
	if d.outcomes != nil {
		d.outcomes.WithLabelValues(string(o)).Inc()
	}
}

// rejectedRiders returns riders whose assignment of the order was rejected or expired.
func rejectedRiders(history []domain.Assignment) []int64 {
	var out []int64
	for _, a := range history {
		if a.Status == domain.AssignmentRejected && a.RiderID != nil {
			out = append(out, *a.RiderID)
		}
	}
	return out
}
