package location

import (
	"context"
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/logx"
)

const defaultPageSize = 500

// Service records rider positions and serves current and historical locations.
type Service struct {
	repo     locationRepository
	index    PositionIndex
	updates  prometheus.Counter
	logger   logx.Logger
	now      func() time.Time
	pageSize int
}

// NewService creates a new location Service. index and updates may be nil.
func NewService(repo locationRepository, index PositionIndex, updates prometheus.Counter, logger logx.Logger) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:     repo,
		index:    index,
		updates:  updates,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		pageSize: defaultPageSize,
	}
}

// RecordLocation stores a ping as the rider's current location. A zero RecordedAt means now.
func (s *Service) RecordLocation(ctx context.Context, u domain.LocationUpdate) (*domain.Location, error) {
	if err := validate(u); err != nil {
		return nil, err
	}
	if u.RecordedAt.IsZero() {
		u.RecordedAt = s.now()
	}

	loc, err := s.repo.Record(ctx, u)
	if err != nil {
		return nil, err
	}
	if s.updates != nil {
		s.updates.Inc()
	}

	if loc.IsCurrent && s.index != nil {
		if err := s.index.Upsert(ctx, loc.RiderID, loc.Position); err != nil {
			s.logger.Warn("geo index update failed",
				logx.String("event", "geo_index_failed"),
				logx.Int64("rider_id", loc.RiderID),
				logx.Err(err),
			)
		}
	}
	if !loc.IsCurrent {
		s.logger.Debug("late location ping stored as history",
			logx.Int64("rider_id", loc.RiderID),
			logx.Time("recorded_at", loc.RecordedAt),
		)
	}
	return loc, nil
}

// CurrentLocation returns the rider's current location.
func (s *Service) CurrentLocation(ctx context.Context, riderID int64) (*domain.Location, error) {
	if riderID <= 0 {
		return nil, apperr.ErrInvalid
	}
	loc, err := s.repo.Current(ctx, riderID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("location of rider %d: %w", riderID, apperr.ErrNotFound)
	}
	return loc, nil
}

// History returns the rider's locations recorded at or after since, ascending by recorded_at.
// The sequence reads lazily in pages and can be ranged over again from the start.
func (s *Service) History(ctx context.Context, riderID int64, since time.Time) iter.Seq2[domain.Location, error] {
	return func(yield func(domain.Location, error) bool) {
		if riderID <= 0 {
			yield(domain.Location{}, apperr.ErrInvalid)
			return
		}
		// ids start at 1, so (since, 0) still includes rows recorded exactly at since
		cursor := domain.LocationCursor{RecordedAt: since, ID: 0}
		for {
			page, err := s.repo.HistoryPage(ctx, riderID, cursor, s.pageSize)
			if err != nil {
				yield(domain.Location{}, err)
				return
			}
			for _, l := range page {
				if !yield(l, nil) {
					return
				}
			}
			if len(page) < s.pageSize {
				return
			}
			last := page[len(page)-1]
			cursor = domain.LocationCursor{RecordedAt: last.RecordedAt, ID: last.ID}
		}
	}
}

func validate(u domain.LocationUpdate) error {
	if u.RiderID <= 0 {
		return fmt.Errorf("rider id: %w", apperr.ErrInvalid)
	}
	if !u.Position.Valid() {
		return fmt.Errorf("coordinates (%v, %v) out of range: %w", u.Position.Lat, u.Position.Lon, apperr.ErrInvalid)
	}
	if u.Accuracy != nil && (*u.Accuracy < 0 || math.IsNaN(*u.Accuracy)) {
		return fmt.Errorf("accuracy: %w", apperr.ErrInvalid)
	}
	if u.Speed != nil && (*u.Speed < 0 || math.IsNaN(*u.Speed)) {
		return fmt.Errorf("speed: %w", apperr.ErrInvalid)
	}
	if u.Heading != nil && (*u.Heading < 0 || *u.Heading >= 360 || math.IsNaN(*u.Heading)) {
		return fmt.Errorf("heading: %w", apperr.ErrInvalid)
	}
	return nil
}
