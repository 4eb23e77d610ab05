//go:generate mockgen -source=contracts.go -destination=registry_mocks_test.go -package=registry_test

package registry

import (
	"context"

	"rider-dispatch/internal/domain"
)

type riderRepository interface {
	Get(ctx context.Context, id int64) (*domain.Rider, error)
	SetStatus(ctx context.Context, id int64, status domain.RiderStatus) (bool, error)
	ListCandidates(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error)
}

type positionReader interface {
	Current(ctx context.Context, riderID int64) (*domain.Location, error)
}

// ProximityIndex holds the latest rider positions for radius queries. It may lag storage.
type ProximityIndex interface {
	Nearby(ctx context.Context, p domain.Point, radiusKm float64) ([]int64, error)
	Upsert(ctx context.Context, riderID int64, p domain.Point) error
	Remove(ctx context.Context, riderID int64) error
}
