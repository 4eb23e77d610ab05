//go:generate mockgen -source=contracts.go -destination=location_mocks_test.go -package=location_test

package location

import (
	"context"

	"rider-dispatch/internal/domain"
)

type locationRepository interface {
	Record(ctx context.Context, u domain.LocationUpdate) (*domain.Location, error)
	Current(ctx context.Context, riderID int64) (*domain.Location, error)
	HistoryPage(ctx context.Context, riderID int64, after domain.LocationCursor, limit int) ([]domain.Location, error)
}

// PositionIndex mirrors current rider positions for proximity queries.
type PositionIndex interface {
	Upsert(ctx context.Context, riderID int64, p domain.Point) error
}
