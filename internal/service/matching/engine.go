// Package matching picks the best rider for an order.
//
// Candidates are available, verified and active riders with a current location
// whose vehicle can carry the order and whose own delivery range covers the
// distance to the outlet. They are ranked greedily: nearest first, then higher
// rating, then lower rider id.
package matching

import (
	"context"
	"fmt"
	"sort"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/domain"
)

// Engine ranks riders for orders.
type Engine struct {
	candidates      CandidateLister
	distance        DistanceFunc
	radiusKm        float64
	defaultParcelKg float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithDistance replaces the great-circle distance.
func WithDistance(fn DistanceFunc) Option {
	return func(e *Engine) {
		if fn != nil {
			e.distance = fn
		}
	}
}

// NewEngine creates an engine searching radiusKm around the outlet.
// A non-positive radius leaves the search bounded by each rider's own range only.
func NewEngine(c CandidateLister, radiusKm, defaultParcelKg float64, opts ...Option) *Engine {
	e := &Engine{
		candidates:      c,
		distance:        domain.HaversineKm,
		radiusKm:        radiusKm,
		defaultParcelKg: defaultParcelKg,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Rank returns every feasible rider for the order, best first. exclude lists riders to skip.
func (e *Engine) Rank(ctx context.Context, order domain.Order, exclude []int64) ([]domain.Match, error) {
	if !order.Outlet.Valid() {
		return nil, fmt.Errorf("order %d outlet: %w", order.ID, apperr.ErrInvalid)
	}
	required := order.RequiredCapacityKg(e.defaultParcelKg)
	origin := order.Outlet

	cs, err := e.candidates.ListCandidates(ctx, domain.CandidateFilter{
		Origin:        &origin,
		MaxDistanceKm: e.radiusKm,
		MinCapacityKg: required,
		ExcludeRiders: exclude,
	})
	if err != nil {
		return nil, fmt.Errorf("list candidates for order %d: %w", order.ID, err)
	}
	return Rank(origin, required, cs, e.distance), nil
}

// FindCandidate returns the best rider for the order or apperr.ErrNoCandidate.
func (e *Engine) FindCandidate(ctx context.Context, order domain.Order, exclude []int64) (domain.Match, error) {
	ms, err := e.Rank(ctx, order, exclude)
	if err != nil {
		return domain.Match{}, err
	}
	if len(ms) == 0 {
		return domain.Match{}, fmt.Errorf("order %d: %w", order.ID, apperr.ErrNoCandidate)
	}
	return ms[0], nil
}

// Rank filters and orders candidates for a pickup at origin. It does no I/O.
func Rank(origin domain.Point, requiredKg float64, cs []domain.Candidate, distance DistanceFunc) []domain.Match {
	if distance == nil {
		distance = domain.HaversineKm
	}
	out := make([]domain.Match, 0, len(cs))
	for _, c := range cs {
		if !c.Rider.Eligible() || c.Rider.VehicleCapacityKg < requiredKg {
			continue
		}
		d := distance(origin, c.Position)
		if d > c.Rider.MaxDeliveryDistanceKm {
			continue
		}
		out = append(out, domain.Match{Rider: c.Rider, Position: c.Position, DistanceKm: d})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.DistanceKm != b.DistanceKm {
			return a.DistanceKm < b.DistanceKm
		}
		if a.Rider.Rating != b.Rider.Rating {
			return a.Rider.Rating > b.Rider.Rating
		}
		return a.Rider.ID < b.Rider.ID
	})
	return out
}
