package dispatchtx

import (
	"context"

	"rider-dispatch/internal/domain"
)

// Repository is the set of writes available inside one dispatch transaction.
// Lock order is order, then assignment, then rider. Lookups return nil, nil when the row is missing.
type Repository interface {
	LockOrder(ctx context.Context, id int64) (*domain.Order, error)
	SetOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	SetOrderRider(ctx context.Context, id int64, riderID *int64) error

	GetAssignmentForUpdate(ctx context.Context, id int64) (*domain.Assignment, error)
	FindActiveAssignment(ctx context.Context, orderID int64) (*domain.Assignment, error)
	InsertAssignment(ctx context.Context, a domain.NewAssignment) (*domain.Assignment, error)
	// ApplyTransition reports false when the assignment no longer has status t.From.
	ApplyTransition(ctx context.Context, t domain.Transition) (bool, error)
	// SetRating reports false when the assignment is not completed or is already rated.
	SetRating(ctx context.Context, id int64, rating int) (bool, error)

	GetRiderForUpdate(ctx context.Context, id int64) (*domain.Rider, error)
	// UpdateRiderStatus applies to only when the current status is one of from (any status if from is empty).
	UpdateRiderStatus(ctx context.Context, id int64, to domain.RiderStatus, from ...domain.RiderStatus) (bool, error)
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
