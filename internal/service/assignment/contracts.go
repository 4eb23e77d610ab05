//go:generate mockgen -source=contracts.go -destination=assignment_mocks_test.go -package=assignment_test

package assignment

import (
	"context"
	"time"

	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/ports/dispatchtx"
)

type store interface {
	dispatchtx.Runner
	GetAssignment(ctx context.Context, id int64) (*domain.Assignment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Assignment, error)
	ListStalePending(ctx context.Context, before time.Time, limit int) ([]domain.Assignment, error)
}

// EarningsPolicy computes what a rider is paid for a completed delivery.
type EarningsPolicy interface {
	ComputeRiderEarnings(distanceKm float64, order domain.Order) float64
}

// CustomerNotifier tells the customer that the order status changed.
type CustomerNotifier interface {
	NotifyCustomerOfStatusChange(ctx context.Context, orderID int64, status domain.OrderStatus) error
}

// EventSink receives lifecycle events after commit.
type EventSink interface {
	Publish(ctx context.Context, e domain.LifecycleEvent) error
}

// Listener is told about every committed transition.
type Listener interface {
	AssignmentChanged(ctx context.Context, a domain.Assignment, ev domain.Event)
}
