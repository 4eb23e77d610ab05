//go:generate mockgen -source=contracts.go -destination=handlers_mocks_test.go -package=handlers_test

package handlers

import (
	"context"
	"iter"
	"time"

	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/service/dispatch"
)

type dispatchUsecase interface {
	Dispatch(ctx context.Context, orderID int64) (dispatch.Result, error)
	AssignManually(ctx context.Context, orderID, riderID int64) (*domain.Assignment, error)
	Claim(ctx context.Context, orderID, riderID int64) (*domain.Assignment, error)
}

type assignmentUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Assignment, error)
	Accept(ctx context.Context, id, riderID int64) (*domain.Assignment, error)
	Reject(ctx context.Context, id, riderID int64, reason string) (*domain.Assignment, error)
	Pickup(ctx context.Context, id, riderID int64) (*domain.Assignment, error)
	Deliver(ctx context.Context, id, riderID int64) (*domain.Assignment, error)
	Cancel(ctx context.Context, id int64, reason string) (*domain.Assignment, error)
	Rate(ctx context.Context, id int64, rating int) (*domain.Assignment, error)
}

type locationUsecase interface {
	RecordLocation(ctx context.Context, u domain.LocationUpdate) (*domain.Location, error)
	CurrentLocation(ctx context.Context, riderID int64) (*domain.Location, error)
	History(ctx context.Context, riderID int64, since time.Time) iter.Seq2[domain.Location, error]
}

type registryUsecase interface {
	SetStatus(ctx context.Context, id int64, status domain.RiderStatus) error
	ListCandidates(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error)
}
