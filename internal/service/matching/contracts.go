//go:generate mockgen -source=contracts.go -destination=matching_mocks_test.go -package=matching_test

package matching

import (
	"context"

	"rider-dispatch/internal/domain"
)

// CandidateLister is the part of the availability registry the engine reads.
type CandidateLister interface {
	ListCandidates(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error)
}

// DistanceFunc returns the distance in kilometres between two points.
type DistanceFunc func(a, b domain.Point) float64
