package assignment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/logx"
	"rider-dispatch/internal/ports/dispatchtx"
)

const sweepBatch = 100

// Service owns the lifecycle of delivery assignments and keeps the linked order and rider in step.
type Service struct {
	store            store
	pricing          EarningsPolicy
	customers        CustomerNotifier
	events           EventSink
	transitions      *prometheus.CounterVec
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time

	mu        sync.RWMutex
	listeners []Listener
}

// Option configures a Service.
type Option func(*Service)

// WithCustomerNotifier sets the customer notification collaborator.
func WithCustomerNotifier(n CustomerNotifier) Option {
	return func(s *Service) { s.customers = n }
}

// WithEventSink sets where lifecycle events are published.
func WithEventSink(e EventSink) Option {
	return func(s *Service) { s.events = e }
}

// WithTransitionsCounter counts applied transitions by event and target status.
func WithTransitionsCounter(c *prometheus.CounterVec) Option {
	return func(s *Service) { s.transitions = c }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a new assignment Service.
func NewService(st store, pricing EarningsPolicy, timeout time.Duration, logger logx.Logger, opts ...Option) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	s := &Service{
		store:            st,
		pricing:          pricing,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Subscribe registers l for post-commit transition callbacks.
func (s *Service) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// CreateInput describes a new PENDING assignment.
type CreateInput struct {
	OrderID       int64
	RiderID       int64
	Type          domain.AssignmentType
	Attempt       int
	RiderPosition *domain.Point
}

// Create reserves the rider and inserts a PENDING assignment for the order in one transaction.
// The order must be dispatchable and have no active assignment; the rider must be available.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Assignment, error) {
	if in.OrderID <= 0 || in.RiderID <= 0 || !in.Type.Valid() {
		return nil, apperr.ErrInvalid
	}
	if in.Attempt <= 0 {
		in.Attempt = 1
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var created *domain.Assignment
	err := s.store.WithTx(ctx, func(tx dispatchtx.Repository) error {
		order, err := tx.LockOrder(ctx, in.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("order %d: %w", in.OrderID, apperr.ErrNotFound)
		}
		if !order.Dispatchable() {
			return fmt.Errorf("order %d is %s: %w", order.ID, order.Status, apperr.ErrOrderNotDispatchable)
		}

		active, err := tx.FindActiveAssignment(ctx, order.ID)
		if err != nil {
			return err
		}
		if active != nil {
			return apperr.ErrActiveAssignment
		}

		rider, err := tx.GetRiderForUpdate(ctx, in.RiderID)
		if err != nil {
			return err
		}
		if rider == nil {
			return fmt.Errorf("rider %d: %w", in.RiderID, apperr.ErrNotFound)
		}
		if !rider.Eligible() {
			return apperr.ErrRiderUnavailable
		}
		reserved, err := tx.UpdateRiderStatus(ctx, rider.ID, domain.RiderBusy, domain.RiderAvailable)
		if err != nil {
			return err
		}
		if !reserved {
			return apperr.ErrRiderUnavailable
		}

		tripKm := order.DeliveryDistanceKm()
		totalKm := tripKm
		if in.RiderPosition != nil {
			totalKm += domain.HaversineKm(*in.RiderPosition, order.Outlet)
		}

		a, err := tx.InsertAssignment(ctx, domain.NewAssignment{
			OrderID:                  order.ID,
			RiderID:                  rider.ID,
			Type:                     in.Type,
			Attempt:                  in.Attempt,
			AssignedAt:               s.now(),
			Pickup:                   order.Outlet,
			Current:                  in.RiderPosition,
			EstimatedDistanceKm:      tripKm,
			EstimatedDurationMinutes: domain.EstimateDurationMinutes(totalKm, rider.VehicleType),
		})
		if err != nil {
			return err
		}
		if err := tx.SetOrderRider(ctx, order.ID, &rider.ID); err != nil {
			return err
		}
		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("assignment created",
		logx.String("event", "assignment_created"),
		logx.Int64("assignment_id", created.ID),
		logx.Int64("order_id", created.OrderID),
		logx.OptInt64("rider_id", created.RiderID),
		logx.String("type", string(created.Type)),
		logx.Int("attempt", created.Attempt),
	)
	s.publish(ctx, domain.LifecycleEvent{
		Type:         domain.EventAssignmentCreated,
		AssignmentID: created.ID,
		OrderID:      created.OrderID,
		RiderID:      created.RiderID,
		To:           domain.AssignmentPending,
		At:           created.AssignedAt,
	})
	return created, nil
}

// Accept moves a PENDING assignment to ACCEPTED on behalf of its rider.
func (s *Service) Accept(ctx context.Context, id, riderID int64) (*domain.Assignment, error) {
	return s.transition(ctx, id, domain.EventAccept, &riderID, "")
}

// Reject moves a PENDING assignment to REJECTED on behalf of its rider and frees the order.
func (s *Service) Reject(ctx context.Context, id, riderID int64, reason string) (*domain.Assignment, error) {
	return s.transition(ctx, id, domain.EventReject, &riderID, reason)
}

// Pickup moves an ACCEPTED assignment to PICKED_UP.
func (s *Service) Pickup(ctx context.Context, id, riderID int64) (*domain.Assignment, error) {
	return s.transition(ctx, id, domain.EventPickup, &riderID, "")
}

// Deliver completes a PICKED_UP assignment and stores the rider earnings in the same write.
func (s *Service) Deliver(ctx context.Context, id, riderID int64) (*domain.Assignment, error) {
	return s.transition(ctx, id, domain.EventDeliver, &riderID, "")
}

// Cancel cancels a PENDING or ACCEPTED assignment.
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*domain.Assignment, error) {
	return s.transition(ctx, id, domain.EventCancel, nil, reason)
}

// CancelByOrder cancels an order: its active assignment, if any, is cancelled and the order
// moves to cancelled in the same transaction, so it can no longer be dispatched. Picked-up and
// delivered orders fail with ErrInvalidTransition. The assignment is nil when none was active.
func (s *Service) CancelByOrder(ctx context.Context, orderID int64, reason string) (*domain.Assignment, error) {
	if orderID <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		res     *applied
		changed bool
	)
	err := s.store.WithTx(ctx, func(tx dispatchtx.Repository) error {
		order, err := tx.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("order %d: %w", orderID, apperr.ErrNotFound)
		}
		if order.Status == domain.OrderDelivered {
			return fmt.Errorf("cancel order %d in status %s: %w", orderID, order.Status, apperr.ErrInvalidTransition)
		}
		a, err := tx.FindActiveAssignment(ctx, orderID)
		if err != nil {
			return err
		}
		if a != nil {
			if res, err = s.apply(ctx, tx, order, a, domain.EventCancel, nil, reason); err != nil {
				return err
			}
		}
		if order.Status == domain.OrderCancelled {
			return nil
		}
		changed = true
		return tx.SetOrderStatus(ctx, orderID, domain.OrderCancelled)
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.logger.Info("order cancelled",
			logx.String("event", "order_cancelled"),
			logx.Int64("order_id", orderID),
			logx.String("reason", reason),
		)
	}
	if res == nil {
		return nil, nil
	}
	if changed {
		res.orderStatus = domain.OrderCancelled
	}
	s.afterCommit(ctx, res)
	return &res.assignment, nil
}

// ExpirePending rejects PENDING assignments older than olderThan with reason "timeout".
// Assignments that moved on concurrently are skipped. It returns how many were expired.
func (s *Service) ExpirePending(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := s.now().Add(-olderThan)
	stale, err := s.store.ListStalePending(ctx, cutoff, sweepBatch)
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, a := range stale {
		if err := ctx.Err(); err != nil {
			return expired, err
		}
		_, err := s.transition(ctx, a.ID, domain.EventExpire, nil, domain.ReasonTimeout)
		switch {
		case err == nil:
			expired++
		case errors.Is(err, apperr.ErrInvalidTransition), errors.Is(err, apperr.ErrConflict):
			continue
		default:
			return expired, err
		}
	}
	if expired > 0 {
		s.logger.Info("pending assignments expired",
			logx.String("event", "assignments_expired"),
			logx.Int("count", expired),
			logx.Time("cutoff", cutoff),
		)
	}
	return expired, nil
}

// Rate stores the customer rating (1..5) of a COMPLETED assignment. A rating is stored once.
func (s *Service) Rate(ctx context.Context, id int64, rating int) (*domain.Assignment, error) {
	if id <= 0 || rating < 1 || rating > 5 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out *domain.Assignment
	err := s.store.WithTx(ctx, func(tx dispatchtx.Repository) error {
		a, err := tx.GetAssignmentForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return fmt.Errorf("assignment %d: %w", id, apperr.ErrNotFound)
		}
		if a.Status != domain.AssignmentCompleted {
			return fmt.Errorf("rate %s assignment: %w", a.Status, apperr.ErrInvalidTransition)
		}
		ok, err := tx.SetRating(ctx, id, rating)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("assignment %d already rated: %w", id, apperr.ErrConflict)
		}
		out, err = tx.GetAssignmentForUpdate(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.LifecycleEvent{
		Type:         domain.EventAssignmentRated,
		AssignmentID: out.ID,
		OrderID:      out.OrderID,
		RiderID:      out.RiderID,
		From:         out.Status,
		To:           out.Status,
		At:           s.now(),
	})
	return out, nil
}

// Get returns an assignment by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Assignment, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	a, err := s.store.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, apperr.ErrNotFound
	}
	return a, nil
}

// ListByOrder returns every assignment of the order, oldest first.
func (s *Service) ListByOrder(ctx context.Context, orderID int64) ([]domain.Assignment, error) {
	if orderID <= 0 {
		return nil, apperr.ErrInvalid
	}
	return s.store.ListByOrder(ctx, orderID)
}

// Active returns the active assignment of the order or nil.
func (s *Service) Active(ctx context.Context, orderID int64) (*domain.Assignment, error) {
	list, err := s.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].Status.Active() {
			return &list[i], nil
		}
	}
	return nil, nil
}
