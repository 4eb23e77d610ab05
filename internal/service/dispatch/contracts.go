//go:generate mockgen -source=contracts.go -destination=dispatch_mocks_test.go -package=dispatch_test

package dispatch

import (
	"context"

	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/service/assignment"
)

type orderReader interface {
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
}

type assignments interface {
	Create(ctx context.Context, in assignment.CreateInput) (*domain.Assignment, error)
	Accept(ctx context.Context, id, riderID int64) (*domain.Assignment, error)
	Cancel(ctx context.Context, id int64, reason string) (*domain.Assignment, error)
	Active(ctx context.Context, orderID int64) (*domain.Assignment, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Assignment, error)
}

type matcher interface {
	Rank(ctx context.Context, order domain.Order, exclude []int64) ([]domain.Match, error)
}

// RiderLocator returns a rider's current location.
type RiderLocator interface {
	CurrentLocation(ctx context.Context, riderID int64) (*domain.Location, error)
}

// RiderNotifier tells a rider about a new assignment. Delivery is best effort.
type RiderNotifier interface {
	NotifyRiderOfAssignment(ctx context.Context, riderID int64, a domain.Assignment) error
}

// EventSink receives dispatch events.
type EventSink interface {
	Publish(ctx context.Context, e domain.LifecycleEvent) error
}
