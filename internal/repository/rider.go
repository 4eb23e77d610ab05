package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"rider-dispatch/internal/domain"
)

// RiderRepo represents rider repository.
type RiderRepo struct{ db *pgxpool.Pool }

// NewRiderRepo creates a new RiderRepo.
func NewRiderRepo(db *pgxpool.Pool) *RiderRepo { return &RiderRepo{db: db} }

// Get - returns rider by its ID.
func (r *RiderRepo) Get(ctx context.Context, id int64) (*domain.Rider, error) {
	rd, err := scanRider(r.db.QueryRow(ctx, `SELECT `+riderColumns+` FROM riders WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rider %d: %w", id, err)
	}
	return rd, nil
}

// SetStatus sets the rider status and reports whether the rider exists.
func (r *RiderRepo) SetStatus(ctx context.Context, id int64, status domain.RiderStatus) (bool, error) {
	return updateRiderStatus(ctx, r.db, id, status)
}

// ListCandidates returns available, verified, active riders that have a current location.
// Distance filtering is left to the caller.
func (r *RiderRepo) ListCandidates(ctx context.Context, f domain.CandidateFilter) ([]domain.Candidate, error) {
	q := `
		SELECT r.id, r.current_status, r.vehicle_type, r.vehicle_capacity_kg, r.max_delivery_distance_km,
		       r.commission_rate, r.rating, r.is_verified, r.is_active,
		       l.latitude, l.longitude
		FROM riders r
		JOIN rider_locations l ON l.rider_id = r.id AND l.is_current
		WHERE r.current_status = 'available' AND r.is_verified AND r.is_active
		  AND r.vehicle_capacity_kg >= $1`
	args := []any{f.MinCapacityKg}

	if len(f.VehicleTypes) > 0 {
		types := make([]string, len(f.VehicleTypes))
		for i, t := range f.VehicleTypes {
			types[i] = string(t)
		}
		q += fmt.Sprintf(" AND r.vehicle_type = ANY($%d)", len(args)+1)
		args = append(args, types)
	}
	if len(f.ExcludeRiders) > 0 {
		q += fmt.Sprintf(" AND NOT (r.id = ANY($%d))", len(args)+1)
		args = append(args, f.ExcludeRiders)
	}
	q += " ORDER BY r.id"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}
	defer rows.Close()

	var out []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(
			&c.Rider.ID, &c.Rider.Status, &c.Rider.VehicleType, &c.Rider.VehicleCapacityKg,
			&c.Rider.MaxDeliveryDistanceKm, &c.Rider.CommissionRate, &c.Rider.Rating,
			&c.Rider.IsVerified, &c.Rider.IsActive,
			&c.Position.Lat, &c.Position.Lon,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
