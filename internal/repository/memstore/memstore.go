// Package memstore is a single-writer in-process store implementing the same
// contracts as the Postgres repositories. One mutex guards all state, and a
// failed transaction restores the snapshot taken when it began.
package memstore

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/ports/dispatchtx"
)

type state struct {
	outlets     map[int64]domain.Point
	riders      map[int64]domain.Rider
	orders      map[int64]domain.Order
	assignments map[int64]domain.Assignment
	locations   map[int64][]domain.Location
	nextAssign  int64
	nextLoc     int64
}

func (s *state) clone() *state {
	c := &state{
		outlets:     maps.Clone(s.outlets),
		riders:      maps.Clone(s.riders),
		orders:      maps.Clone(s.orders),
		assignments: maps.Clone(s.assignments),
		locations:   make(map[int64][]domain.Location, len(s.locations)),
		nextAssign:  s.nextAssign,
		nextLoc:     s.nextLoc,
	}
	for id, ls := range s.locations {
		c.locations[id] = slices.Clone(ls)
	}
	return c
}

// Store is an in-memory dispatch store.
type Store struct {
	mu sync.Mutex
	st *state
}

// New returns an empty store.
func New() *Store {
	return &Store{st: &state{
		outlets:     map[int64]domain.Point{},
		riders:      map[int64]domain.Rider{},
		orders:      map[int64]domain.Order{},
		assignments: map[int64]domain.Assignment{},
		locations:   map[int64][]domain.Location{},
	}}
}

// PutOutlet creates or replaces an outlet position.
func (s *Store) PutOutlet(id int64, p domain.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.outlets[id] = p
}

// PutRider creates or replaces a rider.
func (s *Store) PutRider(r domain.Rider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.riders[r.ID] = r
}

// PutOrder creates or replaces an order. The outlet position is taken from PutOutlet when present.
func (s *Store) PutOrder(o domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.orders[o.ID] = o
}

// Order returns a copy of the order as stored.
func (s *Store) Order(id int64) (domain.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.st.orders[id]
	if ok {
		o = s.st.withOutlet(o)
	}
	return o, ok
}

// GetOrder returns the order or nil.
func (s *Store) GetOrder(_ context.Context, id int64) (*domain.Order, error) {
	o, ok := s.Order(id)
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// WithTx runs fn holding the store lock. State is restored if fn fails or panics.
func (s *Store) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) (err error) {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	defer func() {
		if p := recover(); p != nil {
			s.st = snapshot
			panic(p)
		}
	}()

	if err := fn(&txRepo{st: s.st}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

// GetAssignment returns an assignment or nil.
func (s *Store) GetAssignment(_ context.Context, id int64) (*domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.st.assignments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// ListByOrder returns every assignment of an order, oldest first.
func (s *Store) ListByOrder(_ context.Context, orderID int64) ([]domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.byOrder(orderID), nil
}

// ListStalePending returns PENDING assignments created before the cutoff, oldest first.
func (s *Store) ListStalePending(_ context.Context, before time.Time, limit int) ([]domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Assignment
	for _, a := range s.st.assignments {
		if a.Status == domain.AssignmentPending && a.AssignedAt.Before(before) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AssignedAt.Equal(out[j].AssignedAt) {
			return out[i].AssignedAt.Before(out[j].AssignedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Get returns a rider or nil.
func (s *Store) Get(_ context.Context, id int64) (*domain.Rider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.riders[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

// SetStatus sets the rider status and reports whether the rider exists.
func (s *Store) SetStatus(_ context.Context, id int64, status domain.RiderStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.riders[id]
	if !ok {
		return false, nil
	}
	r.Status = status
	s.st.riders[id] = r
	return true, nil
}

// ListCandidates returns available, verified, active riders with a current location, ordered by id.
func (s *Store) ListCandidates(_ context.Context, f domain.CandidateFilter) ([]domain.Candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Candidate
	for id, r := range s.st.riders {
		if !r.Eligible() || r.VehicleCapacityKg < f.MinCapacityKg || f.Excludes(id) {
			continue
		}
		if len(f.VehicleTypes) > 0 && !slices.Contains(f.VehicleTypes, r.VehicleType) {
			continue
		}
		cur, ok := s.st.current(id)
		if !ok {
			continue
		}
		out = append(out, domain.Candidate{Rider: r, Position: cur.Position})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rider.ID < out[j].Rider.ID })
	return out, nil
}

// Record appends a location ping; the previous current row is unset in the same critical section.
// A ping older than the current row is kept as history only.
func (s *Store) Record(_ context.Context, u domain.LocationUpdate) (*domain.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.st.riders[u.RiderID]; !ok {
		return nil, fmt.Errorf("rider %d: %w", u.RiderID, apperr.ErrNotFound)
	}

	ls := s.st.locations[u.RiderID]
	isCurrent := true
	for i := range ls {
		if !ls[i].IsCurrent {
			continue
		}
		if u.RecordedAt.Before(ls[i].RecordedAt) {
			isCurrent = false
			break
		}
		ls[i].IsCurrent = false
	}

	s.st.nextLoc++
	l := domain.Location{
		ID:         s.st.nextLoc,
		RiderID:    u.RiderID,
		Position:   u.Position,
		Accuracy:   u.Accuracy,
		Speed:      u.Speed,
		Heading:    u.Heading,
		IsCurrent:  isCurrent,
		RecordedAt: u.RecordedAt,
	}
	s.st.locations[u.RiderID] = append(ls, l)
	return &l, nil
}

// Current returns the current location of a rider or nil.
func (s *Store) Current(_ context.Context, riderID int64) (*domain.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.st.current(riderID)
	if !ok {
		return nil, nil
	}
	return &l, nil
}

// CurrentCount returns how many rows of the rider are flagged current.
func (s *Store) CurrentCount(riderID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.st.locations[riderID] {
		if l.IsCurrent {
			n++
		}
	}
	return n
}

// HistoryPage returns up to limit locations strictly after the cursor, ordered by (recorded_at, id).
func (s *Store) HistoryPage(_ context.Context, riderID int64, after domain.LocationCursor, limit int) ([]domain.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Location
	for _, l := range s.st.locations[riderID] {
		if l.RecordedAt.After(after.RecordedAt) || (l.RecordedAt.Equal(after.RecordedAt) && l.ID > after.ID) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].RecordedAt.Before(out[j].RecordedAt)
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *state) current(riderID int64) (domain.Location, bool) {
	for _, l := range s.locations[riderID] {
		if l.IsCurrent {
			return l, true
		}
	}
	return domain.Location{}, false
}

func (s *state) withOutlet(o domain.Order) domain.Order {
	if p, ok := s.outlets[o.OutletID]; ok {
		o.Outlet = p
	}
	return o
}

func (s *state) byOrder(orderID int64) []domain.Assignment {
	var out []domain.Assignment
	for _, a := range s.assignments {
		if a.OrderID == orderID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var _ dispatchtx.Repository = (*txRepo)(nil)
