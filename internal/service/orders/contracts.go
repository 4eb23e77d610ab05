//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/service/dispatch"
)

// DispatchPort abstracts the dispatcher operation
// needed by orders Processor when an order becomes dispatchable
type DispatchPort interface {
	Dispatch(ctx context.Context, orderID int64) (dispatch.Result, error)
}

// AssignmentPort abstracts the assignment operation
// needed by orders Processor when an order goes away
type AssignmentPort interface {
	CancelByOrder(ctx context.Context, orderID int64, reason string) (*domain.Assignment, error)
}
