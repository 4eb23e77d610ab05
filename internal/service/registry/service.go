package registry

import (
	"context"
	"fmt"
	"math"
	"slices"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/logx"
)

// Service is the rider availability registry. Storage decides who is a candidate; the
// proximity index is kept in sync on a best-effort basis and repaired when it lags.
type Service struct {
	repo      riderRepository
	positions positionReader
	index     ProximityIndex
	logger    logx.Logger
}

// NewService creates a registry. index may be nil.
func NewService(repo riderRepository, positions positionReader, index ProximityIndex, logger logx.Logger) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{repo: repo, positions: positions, index: index, logger: logger}
}

// Get returns a rider by id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Rider, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("rider %d: %w", id, apperr.ErrNotFound)
	}
	return r, nil
}

// SetStatus changes the rider status. Only enum membership is checked.
func (s *Service) SetStatus(ctx context.Context, id int64, status domain.RiderStatus) error {
	if id <= 0 || !status.Valid() {
		return fmt.Errorf("rider %d status %q: %w", id, status, apperr.ErrInvalid)
	}
	ok, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("rider %d: %w", id, apperr.ErrNotFound)
	}

	s.logger.Info("rider status changed",
		logx.String("event", "rider_status_changed"),
		logx.Int64("rider_id", id),
		logx.String("status", string(status)),
	)

	s.syncIndex(ctx, id, status)
	return nil
}

// syncIndex drops offline riders from the index and puts everyone else back at their
// current stored position.
func (s *Service) syncIndex(ctx context.Context, id int64, status domain.RiderStatus) {
	if s.index == nil {
		return
	}
	var err error
	switch {
	case status == domain.RiderOffline:
		err = s.index.Remove(ctx, id)
	case s.positions != nil:
		var cur *domain.Location
		if cur, err = s.positions.Current(ctx, id); err == nil && cur != nil {
			err = s.index.Upsert(ctx, id, cur.Position)
		}
	}
	if err != nil {
		s.logger.Warn("geo index sync failed",
			logx.String("event", "geo_index_failed"),
			logx.Int64("rider_id", id),
			logx.Err(err),
		)
	}
}

// ListCandidates returns available, verified and active riders matching f, ordered by rider id.
// With an origin and radius only riders within the great-circle distance are kept. Candidates
// missing from the proximity index are written back to it.
func (s *Service) ListCandidates(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	all, err := s.repo.ListCandidates(ctx, f)
	if err != nil {
		return nil, err
	}
	if f.Origin == nil || f.MaxDistanceKm <= 0 {
		return all, nil
	}

	out := all[:0]
	for _, c := range all {
		if domain.HaversineKm(*f.Origin, c.Position) <= f.MaxDistanceKm {
			out = append(out, c)
		}
	}
	s.repairIndex(ctx, *f.Origin, f.MaxDistanceKm, out)
	return out, nil
}

func (s *Service) repairIndex(ctx context.Context, origin domain.Point, radiusKm float64, cs []domain.Candidate) {
	if s.index == nil || len(cs) == 0 {
		return
	}
	indexed, err := s.index.Nearby(ctx, origin, radiusKm)
	if err != nil {
		s.logger.Warn("geo index lookup failed",
			logx.String("event", "geo_index_failed"),
			logx.Err(err),
		)
		return
	}
	for _, c := range cs {
		if slices.Contains(indexed, c.Rider.ID) {
			continue
		}
		s.logger.Info("geo index missing rider",
			logx.String("event", "geo_index_repaired"),
			logx.Int64("rider_id", c.Rider.ID),
		)
		if err := s.index.Upsert(ctx, c.Rider.ID, c.Position); err != nil {
			s.logger.Warn("geo index upsert failed",
				logx.String("event", "geo_index_failed"),
				logx.Int64("rider_id", c.Rider.ID),
				logx.Err(err),
			)
			return
		}
	}
}

func validateFilter(f domain.CandidateFilter) error {
	if f.Origin != nil && !f.Origin.Valid() {
		return fmt.Errorf("origin: %w", apperr.ErrInvalid)
	}
	if f.MaxDistanceKm < 0 || math.IsNaN(f.MaxDistanceKm) {
		return fmt.Errorf("max distance: %w", apperr.ErrInvalid)
	}
	if f.MinCapacityKg < 0 || math.IsNaN(f.MinCapacityKg) {
		return fmt.Errorf("min capacity: %w", apperr.ErrInvalid)
	}
	for _, t := range f.VehicleTypes {
		if !t.Valid() {
			return fmt.Errorf("vehicle type %q: %w", t, apperr.ErrInvalid)
		}
	}
	return nil
}
