package dispatch

import (
	"context"
	"errors"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/logx"
	"rider-dispatch/internal/service/assignment"
)

var _ assignment.Listener = (*Dispatcher)(nil)

// AssignmentChanged re-matches the order after a rejection or a pending timeout.
// After MaxRematchAttempts re-matches, or when nobody is left, the order is flagged for manual dispatch.
func (d *Dispatcher) AssignmentChanged(ctx context.Context, a domain.Assignment, ev domain.Event) {
	if ev != domain.EventReject && ev != domain.EventExpire {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.cfg.OperationTimeout)
	defer cancel()

	history, err := d.assignments.ListByOrder(ctx, a.OrderID)
	if err != nil {
		d.logRematchFailed(a, err)
		return
	}
	if len(rejectedRiders(history)) > d.cfg.MaxRematchAttempts {
		d.manualRequired(ctx, a, ReasonRematchExhausted)
		return
	}

	res, err := d.Dispatch(ctx, a.OrderID)
	switch {
	case errors.Is(err, apperr.ErrOrderNotDispatchable), errors.Is(err, apperr.ErrNotFound):
		d.logger.Debug("order no longer dispatchable, skipping re-match",
			logx.Int64("order_id", a.OrderID),
			logx.Err(err),
		)
	case err != nil:
		d.logRematchFailed(a, err)
	case res.Outcome == OutcomeUnassigned:
		d.manualRequired(ctx, a, ReasonNoCandidate)
	default:
		d.logger.Info("order re-matched",
			logx.String("event", "dispatch_rematched"),
			logx.Int64("order_id", a.OrderID),
			logx.Int64("previous_assignment_id", a.ID),
			logx.Int64("assignment_id", res.Assignment.ID),
			logx.OptInt64("rider_id", res.Assignment.RiderID),
		)
	}
}

func (d *Dispatcher) manualRequired(ctx context.Context, a domain.Assignment, reason string) {
	d.logger.Warn("order needs manual dispatch",
		logx.String("event", "dispatch_manual_required"),
		logx.Int64("order_id", a.OrderID),
		logx.Int64("assignment_id", a.ID),
		logx.OptInt64("rider_id", a.RiderID),
		logx.String("reason", reason),
	)
	d.count(OutcomeManualRequired)
	if d.events == nil {
		return
	}
	err := d.events.Publish(ctx, domain.LifecycleEvent{
		Type:         domain.EventManualRequired,
		AssignmentID: a.ID,
		OrderID:      a.OrderID,
		RiderID:      a.RiderID,
		From:         a.Status,
		To:           a.Status,
		At:           d.now(),
		Reason:       reason,
	})
	if err != nil {
		d.logger.Warn("lifecycle event dropped",
			logx.String("event", "event_publish_failed"),
			logx.String("type", string(domain.EventManualRequired)),
			logx.Int64("order_id", a.OrderID),
			logx.Err(err),
		)
	}
}

func (d *Dispatcher) logRematchFailed(a domain.Assignment, err error) {
	d.logger.Error("re-match failed",
		logx.String("event", "dispatch_rematch_failed"),
		logx.Int64("order_id", a.OrderID),
		logx.Int64("assignment_id", a.ID),
		logx.Err(err),
	)
}
