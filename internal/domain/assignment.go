package domain

import "time"

type (
	// AssignmentStatus represents the lifecycle status of a delivery assignment.
	AssignmentStatus string
	// AssignmentType records how the rider was chosen.
	AssignmentType string
	// Event is an input to the assignment state machine.
	Event string
)

// List of assignment statuses
const (
	AssignmentPending   AssignmentStatus = "pending"
	AssignmentAccepted  AssignmentStatus = "accepted"
	AssignmentPickedUp  AssignmentStatus = "picked_up"
	AssignmentRejected  AssignmentStatus = "rejected"
	AssignmentCancelled AssignmentStatus = "cancelled"
	AssignmentCompleted AssignmentStatus = "completed"
)

// List of assignment types
const (
	AssignmentAuto         AssignmentType = "auto"
	AssignmentManual       AssignmentType = "manual"
	AssignmentRiderClaimed AssignmentType = "rider_claimed"
)

// List of state machine events
const (
	EventAccept  Event = "accept"
	EventReject  Event = "reject"
	EventPickup  Event = "pickup"
	EventDeliver Event = "deliver"
	EventCancel  Event = "cancel"
	EventExpire  Event = "expire"
)

// ReasonTimeout is stored on assignments rejected by the pending sweep.
const ReasonTimeout = "timeout"

var allowedAssignmentTypes = [...]AssignmentType{
	AssignmentAuto, AssignmentManual, AssignmentRiderClaimed,
}

type edge struct {
	from  AssignmentStatus
	event Event
}

var transitions = map[edge]AssignmentStatus{
	{AssignmentPending, EventAccept}:   AssignmentAccepted,
	{AssignmentPending, EventReject}:   AssignmentRejected,
	{AssignmentPending, EventExpire}:   AssignmentRejected,
	{AssignmentAccepted, EventPickup}:  AssignmentPickedUp,
	{AssignmentPickedUp, EventDeliver}: AssignmentCompleted,
	{AssignmentPending, EventCancel}:   AssignmentCancelled,
	{AssignmentAccepted, EventCancel}:  AssignmentCancelled,
}

// Next returns the status reached by applying ev to from.
// ok is false when the edge does not exist.
func Next(from AssignmentStatus, ev Event) (to AssignmentStatus, ok bool) {
	to, ok = transitions[edge{from: from, event: ev}]
	return to, ok
}

// Active reports whether the status still holds the order.
func (s AssignmentStatus) Active() bool {
	switch s {
	case AssignmentPending, AssignmentAccepted, AssignmentPickedUp:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is possible.
func (s AssignmentStatus) Terminal() bool {
	switch s {
	case AssignmentRejected, AssignmentCancelled, AssignmentCompleted:
		return true
	default:
		return false
	}
}

// Valid checks if the AssignmentType is valid
func (t AssignmentType) Valid() bool {
	for _, v := range allowedAssignmentTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ActiveAssignmentStatuses lists the statuses guarded by the one-active-per-order rule.
func ActiveAssignmentStatuses() []AssignmentStatus {
	return []AssignmentStatus{AssignmentPending, AssignmentAccepted, AssignmentPickedUp}
}

// Assignment links one order to one rider for a single delivery attempt.
type Assignment struct {
	ID                       int64
	OrderID                  int64
	RiderID                  *int64
	Type                     AssignmentType
	Status                   AssignmentStatus
	Attempt                  int
	AssignedAt               time.Time
	AcceptedAt               *time.Time
	PickupTime               *time.Time
	DeliveredAt              *time.Time
	RejectedAt               *time.Time
	CancelledAt              *time.Time
	Reason                   string
	Pickup                   *Point
	Current                  *Point
	EstimatedDistanceKm      float64
	EstimatedDurationMinutes int
	RiderEarnings            *float64
	RatingByCustomer         *int
}

// OwnedBy reports whether riderID is the rider the assignment was offered to.
func (a Assignment) OwnedBy(riderID int64) bool {
	return a.RiderID != nil && *a.RiderID == riderID
}

// Transition is the conditional write applied to an assignment row.
// It takes effect only if the row still has status From.
type Transition struct {
	AssignmentID  int64
	From          AssignmentStatus
	To            AssignmentStatus
	At            time.Time
	RiderEarnings *float64
	Reason        string
}

// NewAssignment is the input for inserting a PENDING assignment.
type NewAssignment struct {
	OrderID                  int64
	RiderID                  int64
	Type                     AssignmentType
	Attempt                  int
	AssignedAt               time.Time
	Pickup                   Point
	Current                  *Point
	EstimatedDistanceKm      float64
	EstimatedDurationMinutes int
}

// Match is a ranked candidate for an order.
type Match struct {
	Rider      Rider
	Position   Point
	DistanceKm float64
}

// EstimateDurationMinutes converts a distance into whole minutes at the vehicle's average speed.
func EstimateDurationMinutes(distanceKm float64, vehicle VehicleType) int {
	if distanceKm <= 0 {
		return 0
	}
	minutes := distanceKm / vehicle.AverageSpeedKmh() * 60
	n := int(minutes)
	if float64(n) < minutes {
		n++
	}
	return n
}
