package memstore

import (
	"context"
	"fmt"
	"slices"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/domain"
)

// txRepo operates on state owned by the enclosing WithTx call.
type txRepo struct {
	st *state
}

func (t *txRepo) LockOrder(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := t.st.orders[id]
	if !ok {
		return nil, nil
	}
	o = t.st.withOutlet(o)
	return &o, nil
}

func (t *txRepo) SetOrderStatus(_ context.Context, id int64, status domain.OrderStatus) error {
	o, ok := t.st.orders[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
	}
	o.Status = status
	t.st.orders[id] = o
	return nil
}

func (t *txRepo) SetOrderRider(_ context.Context, id int64, riderID *int64) error {
	o, ok := t.st.orders[id]
	if !ok {
		return fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
	}
	if riderID != nil {
		v := *riderID
		riderID = &v
	}
	o.RiderID = riderID
	t.st.orders[id] = o
	return nil
}

func (t *txRepo) GetAssignmentForUpdate(_ context.Context, id int64) (*domain.Assignment, error) {
	a, ok := t.st.assignments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (t *txRepo) FindActiveAssignment(_ context.Context, orderID int64) (*domain.Assignment, error) {
	for _, a := range t.st.byOrder(orderID) {
		if a.Status.Active() {
			return &a, nil
		}
	}
	return nil, nil
}

func (t *txRepo) InsertAssignment(ctx context.Context, n domain.NewAssignment) (*domain.Assignment, error) {
	if _, ok := t.st.orders[n.OrderID]; !ok {
		return nil, fmt.Errorf("insert assignment: order %d: %w", n.OrderID, apperr.ErrNotFound)
	}
	if _, ok := t.st.riders[n.RiderID]; !ok {
		return nil, fmt.Errorf("insert assignment: rider %d: %w", n.RiderID, apperr.ErrNotFound)
	}
	if active, _ := t.FindActiveAssignment(ctx, n.OrderID); active != nil {
		return nil, apperr.ErrActiveAssignment
	}

	t.st.nextAssign++
	riderID := n.RiderID
	pickup := n.Pickup
	a := domain.Assignment{
		ID:                       t.st.nextAssign,
		OrderID:                  n.OrderID,
		RiderID:                  &riderID,
		Type:                     n.Type,
		Status:                   domain.AssignmentPending,
		Attempt:                  n.Attempt,
		AssignedAt:               n.AssignedAt,
		Pickup:                   &pickup,
		EstimatedDistanceKm:      n.EstimatedDistanceKm,
		EstimatedDurationMinutes: n.EstimatedDurationMinutes,
	}
	if n.Current != nil {
		cur := *n.Current
		a.Current = &cur
	}
	t.st.assignments[a.ID] = a
	return &a, nil
}

func (t *txRepo) ApplyTransition(_ context.Context, tr domain.Transition) (bool, error) {
	a, ok := t.st.assignments[tr.AssignmentID]
	if !ok || a.Status != tr.From {
		return false, nil
	}
	at := tr.At
	switch tr.To {
	case domain.AssignmentAccepted:
		a.AcceptedAt = &at
	case domain.AssignmentPickedUp:
		a.PickupTime = &at
	case domain.AssignmentCompleted:
		a.DeliveredAt = &at
	case domain.AssignmentRejected:
		a.RejectedAt = &at
	case domain.AssignmentCancelled:
		a.CancelledAt = &at
	default:
		return false, fmt.Errorf("no timestamp for status %q: %w", tr.To, apperr.ErrInvalidTransition)
	}
	a.Status = tr.To
	if a.RiderEarnings == nil && tr.RiderEarnings != nil {
		v := *tr.RiderEarnings
		a.RiderEarnings = &v
	}
	if tr.Reason != "" {
		a.Reason = tr.Reason
	}
	t.st.assignments[a.ID] = a
	return true, nil
}

func (t *txRepo) SetRating(_ context.Context, id int64, rating int) (bool, error) {
	a, ok := t.st.assignments[id]
	if !ok || a.Status != domain.AssignmentCompleted || a.RatingByCustomer != nil {
		return false, nil
	}
	a.RatingByCustomer = &rating
	t.st.assignments[id] = a
	return true, nil
}

func (t *txRepo) GetRiderForUpdate(_ context.Context, id int64) (*domain.Rider, error) {
	r, ok := t.st.riders[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (t *txRepo) UpdateRiderStatus(_ context.Context, id int64, to domain.RiderStatus, from ...domain.RiderStatus) (bool, error) {
	r, ok := t.st.riders[id]
	if !ok {
		return false, nil
	}
	if len(from) > 0 && !slices.Contains(from, r.Status) {
		return false, nil
	}
	r.Status = to
	t.st.riders[id] = r
	return true, nil
}
