package assignment

import (
	"context"
	"fmt"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/logx"
	"rider-dispatch/internal/ports/dispatchtx"
)

// applied is the committed outcome of one transition.
type applied struct {
	assignment  domain.Assignment
	event       domain.Event
	from        domain.AssignmentStatus
	orderStatus domain.OrderStatus
}

func (s *Service) transition(ctx context.Context, id int64, ev domain.Event, actor *int64, reason string) (*domain.Assignment, error) {
	if id <= 0 || (actor != nil && *actor <= 0) {
		return nil, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// the order id is needed to take the order lock before the assignment lock
	peek, err := s.store.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	if peek == nil {
		return nil, fmt.Errorf("assignment %d: %w", id, apperr.ErrNotFound)
	}

	var res *applied
	err = s.store.WithTx(ctx, func(tx dispatchtx.Repository) error {
		order, err := tx.LockOrder(ctx, peek.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return fmt.Errorf("order %d: %w", peek.OrderID, apperr.ErrNotFound)
		}
		a, err := tx.GetAssignmentForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return fmt.Errorf("assignment %d: %w", id, apperr.ErrNotFound)
		}
		res, err = s.apply(ctx, tx, order, a, ev, actor, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, res)
	return &res.assignment, nil
}

// apply runs guards and side effects of ev inside tx. The order and assignment rows are locked by the caller.
func (s *Service) apply(
	ctx context.Context,
	tx dispatchtx.Repository,
	order *domain.Order,
	a *domain.Assignment,
	ev domain.Event,
	actor *int64,
	reason string,
) (*applied, error) {
	to, ok := domain.Next(a.Status, ev)
	if !ok {
		return nil, fmt.Errorf("%s assignment %d in status %s: %w", ev, a.ID, a.Status, apperr.ErrInvalidTransition)
	}
	if actor != nil && !a.OwnedBy(*actor) {
		return nil, apperr.ErrNotOwner
	}

	tr := domain.Transition{AssignmentID: a.ID, From: a.Status, To: to, At: s.now(), Reason: reason}

	var (
		orderStatus domain.OrderStatus
		clearRider  bool
		riderTo     domain.RiderStatus
		riderFrom   []domain.RiderStatus
	)

	switch ev {
	case domain.EventAccept:
		orderStatus = domain.OrderAssigned
		riderTo = domain.RiderOnDelivery

	case domain.EventReject, domain.EventExpire:
		clearRider = true
		if order.Status != domain.OrderCancelled {
			orderStatus = domain.OrderPending
		}
		riderTo, riderFrom = domain.RiderAvailable, []domain.RiderStatus{domain.RiderBusy}

	case domain.EventPickup:
		if order.Status != domain.OrderAssigned {
			return nil, fmt.Errorf("pickup with order in status %s: %w", order.Status, apperr.ErrInvalidTransition)
		}
		orderStatus = domain.OrderPickedUp

	case domain.EventDeliver:
		if order.Status != domain.OrderPickedUp {
			return nil, fmt.Errorf("deliver with order in status %s: %w", order.Status, apperr.ErrInvalidTransition)
		}
		earnings := s.pricing.ComputeRiderEarnings(a.EstimatedDistanceKm, *order)
		if a.RiderEarnings != nil {
			earnings = *a.RiderEarnings
		}
		tr.RiderEarnings = &earnings
		orderStatus = domain.OrderDelivered
		riderTo, riderFrom = domain.RiderAvailable, []domain.RiderStatus{domain.RiderOnDelivery, domain.RiderBusy}

	case domain.EventCancel:
		clearRider = true
		if order.Status == domain.OrderAssigned {
			orderStatus = domain.OrderPending
		}
		riderTo, riderFrom = domain.RiderAvailable, []domain.RiderStatus{domain.RiderBusy, domain.RiderOnDelivery}
	}

	ok, err := tx.ApplyTransition(ctx, tr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("assignment %d left status %s concurrently: %w", a.ID, a.Status, apperr.ErrConflict)
	}

	if orderStatus != "" && orderStatus != order.Status {
		if err := tx.SetOrderStatus(ctx, order.ID, orderStatus); err != nil {
			return nil, err
		}
	} else {
		orderStatus = ""
	}
	if clearRider && order.RiderID != nil {
		if err := tx.SetOrderRider(ctx, order.ID, nil); err != nil {
			return nil, err
		}
	}
	if riderTo != "" && a.RiderID != nil {
		if _, err := tx.UpdateRiderStatus(ctx, *a.RiderID, riderTo, riderFrom...); err != nil {
			return nil, err
		}
	}

	updated, err := tx.GetAssignmentForUpdate(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("assignment %d vanished: %w", a.ID, apperr.ErrConflict)
	}
	return &applied{assignment: *updated, event: ev, from: a.Status, orderStatus: orderStatus}, nil
}

// afterCommit runs the side effects that must stay outside the transaction.
func (s *Service) afterCommit(ctx context.Context, res *applied) {
	a := res.assignment
	if s.transitions != nil {
		s.transitions.WithLabelValues(string(res.event), string(a.Status)).Inc()
	}

	fields := []logx.Field{
		logx.String("event", "assignment_"+string(a.Status)),
		logx.Int64("assignment_id", a.ID),
		logx.Int64("order_id", a.OrderID),
		logx.OptInt64("rider_id", a.RiderID),
		logx.String("from", string(res.from)),
		logx.String("to", string(a.Status)),
	}
	if a.Reason != "" {
		fields = append(fields, logx.String("reason", a.Reason))
	}
	if a.RiderEarnings != nil && a.Status == domain.AssignmentCompleted {
		fields = append(fields, logx.Float64("rider_earnings", *a.RiderEarnings))
	}
	s.logger.Info("assignment transition", fields...)

	s.publish(ctx, domain.LifecycleEvent{
		Type:          domain.EventTypeFor(a.Status),
		AssignmentID:  a.ID,
		OrderID:       a.OrderID,
		RiderID:       a.RiderID,
		From:          res.from,
		To:            a.Status,
		At:            s.now(),
		RiderEarnings: a.RiderEarnings,
		Reason:        a.Reason,
	})

	if res.orderStatus != "" && s.customers != nil {
		if err := s.customers.NotifyCustomerOfStatusChange(ctx, a.OrderID, res.orderStatus); err != nil {
			s.logger.Warn("customer notification dropped",
				logx.String("event", "notification_failed"),
				logx.Int64("order_id", a.OrderID),
				logx.String("status", string(res.orderStatus)),
				logx.Err(err),
			)
		}
	}

	s.mu.RLock()
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.RUnlock()
	for _, l := range listeners {
		l.AssignmentChanged(ctx, a, res.event)
	}
}

func (s *Service) publish(ctx context.Context, e domain.LifecycleEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, e); err != nil {
		s.logger.Warn("lifecycle event dropped",
			logx.String("event", "event_publish_failed"),
			logx.String("type", string(e.Type)),
			logx.Int64("assignment_id", e.AssignmentID),
			logx.Int64("order_id", e.OrderID),
			logx.Err(err),
		)
	}
}
