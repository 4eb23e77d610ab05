package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/domain"
)

const locationColumns = `id, rider_id, latitude, longitude, accuracy, speed, heading, is_current, recorded_at`

// LocationRepo stores rider location history with one current row per rider.
type LocationRepo struct{ db *pgxpool.Pool }

// NewLocationRepo creates a new LocationRepo.
func NewLocationRepo(db *pgxpool.Pool) *LocationRepo { return &LocationRepo{db: db} }

// Record inserts a location ping. The rider row lock serializes pings of one rider,
// so the previous current row is unset and the new one inserted with no window in between.
// A ping older than the current row is kept as history only.
func (r *LocationRepo) Record(ctx context.Context, u domain.LocationUpdate) (*domain.Location, error) {
	var loc *domain.Location
	err := pgx.BeginTxFunc(ctx, r.db, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var riderID int64
		if err := tx.QueryRow(ctx, `SELECT id FROM riders WHERE id = $1 FOR UPDATE`, u.RiderID).Scan(&riderID); err != nil {
			if IsNotFound(err) {
				return fmt.Errorf("rider %d: %w", u.RiderID, apperr.ErrNotFound)
			}
			return fmt.Errorf("lock rider %d: %w", u.RiderID, err)
		}

		var (
			curID int64
			curAt time.Time
		)
		err := tx.QueryRow(ctx,
			`SELECT id, recorded_at FROM rider_locations WHERE rider_id = $1 AND is_current`, u.RiderID,
		).Scan(&curID, &curAt)
		switch {
		case IsNotFound(err):
			curID = 0
		case err != nil:
			return fmt.Errorf("read current location of rider %d: %w", u.RiderID, err)
		}

		current := curID == 0 || !u.RecordedAt.Before(curAt)
		if current && curID != 0 {
			if _, err := tx.Exec(ctx, `UPDATE rider_locations SET is_current = FALSE WHERE id = $1`, curID); err != nil {
				return fmt.Errorf("unset current location %d: %w", curID, err)
			}
		}

		l, err := scanLocation(tx.QueryRow(ctx, `
			INSERT INTO rider_locations (rider_id, latitude, longitude, accuracy, speed, heading, is_current, recorded_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+locationColumns,
			u.RiderID, u.Position.Lat, u.Position.Lon, u.Accuracy, u.Speed, u.Heading, current, u.RecordedAt,
		))
		if err != nil {
			return fmt.Errorf("insert location: %w", err)
		}
		loc = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loc, nil
}

// Current returns the current location of a rider or nil if none was recorded.
func (r *LocationRepo) Current(ctx context.Context, riderID int64) (*domain.Location, error) {
	l, err := scanLocation(r.db.QueryRow(ctx,
		`SELECT `+locationColumns+` FROM rider_locations WHERE rider_id = $1 AND is_current`, riderID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("current location of rider %d: %w", riderID, err)
	}
	return l, nil
}

// HistoryPage returns up to limit locations strictly after the cursor, ordered by (recorded_at, id).
func (r *LocationRepo) HistoryPage(ctx context.Context, riderID int64, after domain.LocationCursor, limit int) ([]domain.Location, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+locationColumns+`
		FROM rider_locations
		WHERE rider_id = $1 AND (recorded_at, id) > ($2, $3)
		ORDER BY recorded_at, id
		LIMIT $4
	`, riderID, after.RecordedAt, after.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("location history of rider %d: %w", riderID, err)
	}
	defer rows.Close()

	out := make([]domain.Location, 0, limit)
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

func scanLocation(row pgx.Row) (*domain.Location, error) {
	var l domain.Location
	if err := row.Scan(
		&l.ID, &l.RiderID, &l.Position.Lat, &l.Position.Lon,
		&l.Accuracy, &l.Speed, &l.Heading, &l.IsCurrent, &l.RecordedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}
