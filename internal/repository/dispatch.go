package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"rider-dispatch/internal/apperr"
	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/ports/dispatchtx"
)

const assignmentColumns = `
	id, order_id, rider_id, assignment_type, assignment_status, attempt,
	assigned_at, accepted_at, pickup_time, delivered_at, rejected_at, cancelled_at, reason,
	pickup_latitude, pickup_longitude, current_latitude, current_longitude,
	estimated_distance_km, estimated_duration_minutes, rider_earnings::float8, rating_by_customer`

const riderColumns = `
	id, current_status, vehicle_type, vehicle_capacity_kg, max_delivery_distance_km,
	commission_rate, rating, is_verified, is_active`

const orderColumns = `
	o.id, o.status, o.customer_id, o.outlet_id, o.rider_id,
	ol.latitude, ol.longitude, o.delivery_latitude, o.delivery_longitude,
	o.items_weight_kg, o.delivery_fee::float8, o.total_amount::float8`

const orderFrom = `
	FROM orders o
	JOIN outlets ol ON ol.id = o.outlet_id`

// DispatchRepo owns transactions over orders, assignments and rider status.
type DispatchRepo struct {
	db *pgxpool.Pool
}

// NewDispatchRepo creates a new DispatchRepo.
func NewDispatchRepo(db *pgxpool.Pool) *DispatchRepo {
	return &DispatchRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *DispatchRepo) WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				panic(fmt.Sprintf("%v (rollback: %v)", p, rbErr))
			}
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}

// GetOrder returns the order joined with its outlet position without locking it.
func (r *DispatchRepo) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+orderFrom+` WHERE o.id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return o, nil
}

// GetAssignment returns an assignment without locking it.
func (r *DispatchRepo) GetAssignment(ctx context.Context, id int64) (*domain.Assignment, error) {
	a, err := scanAssignment(r.db.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM delivery_assignments WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment %d: %w", id, err)
	}
	return a, nil
}

// ListByOrder returns every assignment of an order, oldest first.
func (r *DispatchRepo) ListByOrder(ctx context.Context, orderID int64) ([]domain.Assignment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+assignmentColumns+` FROM delivery_assignments WHERE order_id = $1 ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list assignments of order %d: %w", orderID, err)
	}
	return collectAssignments(rows)
}

// ListStalePending returns PENDING assignments created before the cutoff, oldest first.
func (r *DispatchRepo) ListStalePending(ctx context.Context, before time.Time, limit int) ([]domain.Assignment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+assignmentColumns+`
		FROM delivery_assignments
		WHERE assignment_status = $1 AND assigned_at < $2
		ORDER BY assigned_at, id
		LIMIT $3
	`, string(domain.AssignmentPending), before, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale pending assignments: %w", err)
	}
	return collectAssignments(rows)
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ dispatchtx.Repository = (*TxRepo)(nil)

// LockOrder reads the order joined with its outlet position and locks the order row.
func (r *TxRepo) LockOrder(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(r.tx.QueryRow(ctx, `SELECT `+orderColumns+orderFrom+` WHERE o.id = $1 FOR UPDATE OF o`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock order %d: %w", id, err)
	}
	return o, nil
}

// SetOrderStatus - update order status.
func (r *TxRepo) SetOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	ct, err := r.tx.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("set order %d status: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// SetOrderRider - set or clear the rider of an order.
func (r *TxRepo) SetOrderRider(ctx context.Context, id int64, riderID *int64) error {
	ct, err := r.tx.Exec(ctx,
		`UPDATE orders SET rider_id = $2, updated_at = now() WHERE id = $1`, id, riderID)
	if err != nil {
		return fmt.Errorf("set order %d rider: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}

// GetAssignmentForUpdate reads and locks an assignment row.
func (r *TxRepo) GetAssignmentForUpdate(ctx context.Context, id int64) (*domain.Assignment, error) {
	a, err := scanAssignment(r.tx.QueryRow(ctx,
		`SELECT `+assignmentColumns+` FROM delivery_assignments WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment %d for update: %w", id, err)
	}
	return a, nil
}

// FindActiveAssignment returns the PENDING, ACCEPTED or PICKED_UP assignment of the order, if any.
func (r *TxRepo) FindActiveAssignment(ctx context.Context, orderID int64) (*domain.Assignment, error) {
	a, err := scanAssignment(r.tx.QueryRow(ctx, `
		SELECT `+assignmentColumns+`
		FROM delivery_assignments
		WHERE order_id = $1 AND assignment_status IN ('pending','accepted','picked_up')
		FOR UPDATE
	`, orderID))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find active assignment of order %d: %w", orderID, err)
	}
	return a, nil
}

// InsertAssignment - insert a new PENDING assignment.
// The partial unique index on active assignments turns a concurrent insert into ErrActiveAssignment.
func (r *TxRepo) InsertAssignment(ctx context.Context, n domain.NewAssignment) (*domain.Assignment, error) {
	var curLat, curLon *float64
	if n.Current != nil {
		curLat, curLon = &n.Current.Lat, &n.Current.Lon
	}
	a, err := scanAssignment(r.tx.QueryRow(ctx, `
		INSERT INTO delivery_assignments (
			order_id, rider_id, assignment_type, assignment_status, attempt, assigned_at,
			pickup_latitude, pickup_longitude, current_latitude, current_longitude,
			estimated_distance_km, estimated_duration_minutes
		)
		VALUES ($1, $2, $3, 'pending', $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+assignmentColumns,
		n.OrderID, n.RiderID, string(n.Type), n.Attempt, n.AssignedAt,
		n.Pickup.Lat, n.Pickup.Lon, curLat, curLon,
		n.EstimatedDistanceKm, n.EstimatedDurationMinutes,
	))
	if err != nil {
		if IsDuplicate(err) {
			return nil, apperr.ErrActiveAssignment
		}
		if IsForeignKey(err) {
			return nil, fmt.Errorf("insert assignment: %w", apperr.ErrNotFound)
		}
		return nil, fmt.Errorf("insert assignment: %w", err)
	}
	return a, nil
}

// ApplyTransition moves an assignment from t.From to t.To and stamps the matching timestamp column.
// Earnings are written only if none are stored yet.
func (r *TxRepo) ApplyTransition(ctx context.Context, t domain.Transition) (bool, error) {
	column, err := timestampColumn(t.To)
	if err != nil {
		return false, err
	}
	ct, err := r.tx.Exec(ctx, `
		UPDATE delivery_assignments
		SET assignment_status = $3,
		    `+column+` = $4,
		    rider_earnings = COALESCE(rider_earnings, $5),
		    reason = CASE WHEN $6 = '' THEN reason ELSE $6 END
		WHERE id = $1 AND assignment_status = $2
	`, t.AssignmentID, string(t.From), string(t.To), t.At, t.RiderEarnings, t.Reason)
	if err != nil {
		return false, fmt.Errorf("apply transition %s->%s on assignment %d: %w", t.From, t.To, t.AssignmentID, err)
	}
	return ct.RowsAffected() == 1, nil
}

// SetRating stores the customer rating on a completed, unrated assignment.
func (r *TxRepo) SetRating(ctx context.Context, id int64, rating int) (bool, error) {
	ct, err := r.tx.Exec(ctx, `
		UPDATE delivery_assignments
		SET rating_by_customer = $2
		WHERE id = $1 AND assignment_status = 'completed' AND rating_by_customer IS NULL
	`, id, rating)
	if err != nil {
		return false, fmt.Errorf("rate assignment %d: %w", id, err)
	}
	return ct.RowsAffected() == 1, nil
}

// GetRiderForUpdate reads and locks a rider row.
func (r *TxRepo) GetRiderForUpdate(ctx context.Context, id int64) (*domain.Rider, error) {
	rd, err := scanRider(r.tx.QueryRow(ctx, `SELECT `+riderColumns+` FROM riders WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rider %d for update: %w", id, err)
	}
	return rd, nil
}

// UpdateRiderStatus - update rider status, optionally only from one of the given statuses.
func (r *TxRepo) UpdateRiderStatus(ctx context.Context, id int64, to domain.RiderStatus, from ...domain.RiderStatus) (bool, error) {
	return updateRiderStatus(ctx, r.tx, id, to, from...)
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func updateRiderStatus(ctx context.Context, db querier, id int64, to domain.RiderStatus, from ...domain.RiderStatus) (bool, error) {
	q := `UPDATE riders SET current_status = $2, updated_at = now() WHERE id = $1`
	args := []any{id, string(to)}
	if len(from) > 0 {
		states := make([]string, len(from))
		for i, s := range from {
			states[i] = string(s)
		}
		q += ` AND current_status = ANY($3)`
		args = append(args, states)
	}
	ct, err := db.Exec(ctx, q, args...)
	if err != nil {
		return false, fmt.Errorf("update rider %d status: %w", id, err)
	}
	return ct.RowsAffected() == 1, nil
}

func timestampColumn(to domain.AssignmentStatus) (string, error) {
	switch to {
	case domain.AssignmentAccepted:
		return "accepted_at", nil
	case domain.AssignmentPickedUp:
		return "pickup_time", nil
	case domain.AssignmentCompleted:
		return "delivered_at", nil
	case domain.AssignmentRejected:
		return "rejected_at", nil
	case domain.AssignmentCancelled:
		return "cancelled_at", nil
	default:
		return "", fmt.Errorf("no timestamp for status %q: %w", to, apperr.ErrInvalidTransition)
	}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.Status, &o.CustomerID, &o.OutletID, &o.RiderID,
		&o.Outlet.Lat, &o.Outlet.Lon, &o.Delivery.Lat, &o.Delivery.Lon,
		&o.ItemsWeightKg, &o.DeliveryFee, &o.TotalAmount,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var (
		a          domain.Assignment
		pLat, pLon *float64
		cLat, cLon *float64
		rating     *int16
	)
	err := row.Scan(
		&a.ID, &a.OrderID, &a.RiderID, &a.Type, &a.Status, &a.Attempt,
		&a.AssignedAt, &a.AcceptedAt, &a.PickupTime, &a.DeliveredAt, &a.RejectedAt, &a.CancelledAt, &a.Reason,
		&pLat, &pLon, &cLat, &cLon,
		&a.EstimatedDistanceKm, &a.EstimatedDurationMinutes, &a.RiderEarnings, &rating,
	)
	if err != nil {
		return nil, err
	}
	if pLat != nil && pLon != nil {
		a.Pickup = &domain.Point{Lat: *pLat, Lon: *pLon}
	}
	if cLat != nil && cLon != nil {
		a.Current = &domain.Point{Lat: *cLat, Lon: *cLon}
	}
	if rating != nil {
		v := int(*rating)
		a.RatingByCustomer = &v
	}
	return &a, nil
}

func collectAssignments(rows pgx.Rows) ([]domain.Assignment, error) {
	defer rows.Close()
	var out []domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func scanRider(row pgx.Row) (*domain.Rider, error) {
	var rd domain.Rider
	err := row.Scan(
		&rd.ID, &rd.Status, &rd.VehicleType, &rd.VehicleCapacityKg, &rd.MaxDeliveryDistanceKm,
		&rd.CommissionRate, &rd.Rating, &rd.IsVerified, &rd.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &rd, nil
}
