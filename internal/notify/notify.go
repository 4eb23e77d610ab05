// Package notify carries rider and customer notifications and lifecycle events out of the
// process. Delivery is best effort; callers log and drop failures.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"rider-dispatch/internal/domain"
	"rider-dispatch/internal/logx"
)

// Notification kinds.
const (
	KindRiderAssignment     = "rider.assignment"
	KindCustomerOrderStatus = "customer.order_status"
)

// Publisher writes a keyed message to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, value []byte) error
}

type eventEnvelope struct {
	EventID       string    `json:"event_id"`
	Type          string    `json:"type"`
	AssignmentID  int64     `json:"assignment_id,omitempty"`
	OrderID       int64     `json:"order_id"`
	RiderID       *int64    `json:"rider_id,omitempty"`
	From          string    `json:"from,omitempty"`
	To            string    `json:"to,omitempty"`
	At            time.Time `json:"at"`
	RiderEarnings *float64  `json:"rider_earnings,omitempty"`
	Reason        string    `json:"reason,omitempty"`
}

type notification struct {
	EventID      string    `json:"event_id"`
	Kind         string    `json:"kind"`
	OrderID      int64     `json:"order_id"`
	RiderID      int64     `json:"rider_id,omitempty"`
	AssignmentID int64     `json:"assignment_id,omitempty"`
	Status       string    `json:"status,omitempty"`
	At           time.Time `json:"at"`
}

// EventSink publishes lifecycle events keyed by order id.
type EventSink struct {
	pub   Publisher
	topic string
	newID func() string
}

// NewEventSink creates an EventSink writing to topic.
func NewEventSink(pub Publisher, topic string) *EventSink {
	return &EventSink{pub: pub, topic: topic, newID: uuid.NewString}
}

// Publish encodes e and sends it.
func (s *EventSink) Publish(ctx context.Context, e domain.LifecycleEvent) error {
	b, err := json.Marshal(eventEnvelope{
		EventID:       s.newID(),
		Type:          string(e.Type),
		AssignmentID:  e.AssignmentID,
		OrderID:       e.OrderID,
		RiderID:       e.RiderID,
		From:          string(e.From),
		To:            string(e.To),
		At:            e.At.UTC(),
		RiderEarnings: e.RiderEarnings,
		Reason:        e.Reason,
	})
	if err != nil {
		return fmt.Errorf("encode %s event: %w", e.Type, err)
	}
	return s.pub.Publish(ctx, s.topic, strconv.FormatInt(e.OrderID, 10), b)
}

// KafkaNotifier sends rider and customer notifications to a topic
// for the delivery service that owns push, SMS and email.
type KafkaNotifier struct {
	pub   Publisher
	topic string
	newID func() string
	now   func() time.Time
}

// NewKafkaNotifier creates a KafkaNotifier writing to topic.
func NewKafkaNotifier(pub Publisher, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		pub:   pub,
		topic: topic,
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// NotifyRiderOfAssignment asks the rider to accept or reject a.
func (n *KafkaNotifier) NotifyRiderOfAssignment(ctx context.Context, riderID int64, a domain.Assignment) error {
	return n.send(ctx, strconv.FormatInt(riderID, 10), notification{
		Kind:         KindRiderAssignment,
		OrderID:      a.OrderID,
		RiderID:      riderID,
		AssignmentID: a.ID,
		Status:       string(a.Status),
	})
}

// NotifyCustomerOfStatusChange tells the customer the order moved to status.
func (n *KafkaNotifier) NotifyCustomerOfStatusChange(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	return n.send(ctx, strconv.FormatInt(orderID, 10), notification{
		Kind:    KindCustomerOrderStatus,
		OrderID: orderID,
		Status:  string(status),
	})
}

func (n *KafkaNotifier) send(ctx context.Context, key string, msg notification) error {
	msg.EventID = n.newID()
	msg.At = n.now()
	b, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s notification: %w", msg.Kind, err)
	}
	return n.pub.Publish(ctx, n.topic, key, b)
}

// LogNotifier writes notifications and events to the log. It is used when Kafka is off.
type LogNotifier struct {
	logger logx.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger logx.Logger) *LogNotifier {
	if logger == nil {
		logger = logx.Nop()
	}
	return &LogNotifier{logger: logger}
}

// NotifyRiderOfAssignment logs the notification.
func (n *LogNotifier) NotifyRiderOfAssignment(_ context.Context, riderID int64, a domain.Assignment) error {
	n.logger.Info("rider notified",
		logx.String("event", "notify_rider"),
		logx.Int64("rider_id", riderID),
		logx.Int64("assignment_id", a.ID),
		logx.Int64("order_id", a.OrderID),
	)
	return nil
}

// NotifyCustomerOfStatusChange logs the notification.
func (n *LogNotifier) NotifyCustomerOfStatusChange(_ context.Context, orderID int64, status domain.OrderStatus) error {
	n.logger.Info("customer notified",
		logx.String("event", "notify_customer"),
		logx.Int64("order_id", orderID),
		logx.String("status", string(status)),
	)
	return nil
}

// Publish logs a lifecycle event.
func (n *LogNotifier) Publish(_ context.Context, e domain.LifecycleEvent) error {
	n.logger.Debug("lifecycle event",
		logx.String("type", string(e.Type)),
		logx.Int64("assignment_id", e.AssignmentID),
		logx.Int64("order_id", e.OrderID),
		logx.String("to", string(e.To)),
	)
	return nil
}
