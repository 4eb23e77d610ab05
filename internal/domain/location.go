package domain

import "time"

// Location is one recorded rider position. Rows are never updated, only superseded.
type Location struct {
	ID         int64
	RiderID    int64
	Position   Point
	Accuracy   *float64
	Speed      *float64
	Heading    *float64
	IsCurrent  bool
	RecordedAt time.Time
}

// LocationUpdate carries a single location ping from a rider.
// A zero RecordedAt means "now".
type LocationUpdate struct {
	RiderID    int64
	Position   Point
	Accuracy   *float64
	Speed      *float64
	Heading    *float64
	RecordedAt time.Time
}

// LocationCursor is a keyset position in a rider's location history.
type LocationCursor struct {
	RecordedAt time.Time
	ID         int64
}
