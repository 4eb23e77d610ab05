package domain

import "time"

// EventType names a published dispatch event.
type EventType string

// List of published event types
const (
	EventAssignmentCreated   EventType = "assignment.created"
	EventAssignmentAccepted  EventType = "assignment.accepted"
	EventAssignmentRejected  EventType = "assignment.rejected"
	EventAssignmentPickedUp  EventType = "assignment.picked_up"
	EventAssignmentCompleted EventType = "assignment.completed"
	EventAssignmentCancelled EventType = "assignment.cancelled"
	EventAssignmentRated     EventType = "assignment.rated"
	EventManualRequired      EventType = "dispatch.manual_required"
)

// LifecycleEvent describes one committed change of an assignment or the dispatch of an order.
type LifecycleEvent struct {
	Type          EventType
	AssignmentID  int64
	OrderID       int64
	RiderID       *int64
	From          AssignmentStatus
	To            AssignmentStatus
	At            time.Time
	RiderEarnings *float64
	Reason        string
}

// EventTypeFor maps a target assignment status to the event published for it.
func EventTypeFor(to AssignmentStatus) EventType {
	switch to {
	case AssignmentPending:
		return EventAssignmentCreated
	case AssignmentAccepted:
		return EventAssignmentAccepted
	case AssignmentRejected:
		return EventAssignmentRejected
	case AssignmentPickedUp:
		return EventAssignmentPickedUp
	case AssignmentCompleted:
		return EventAssignmentCompleted
	default:
		return EventAssignmentCancelled
	}
}
