package kafka

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"rider-dispatch/internal/service/orders"
)

// OrderRef is an order id that may arrive as a JSON number or a numeric string
type OrderRef int64

// UnmarshalJSON accepts 42 and "42"
func (r *OrderRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*r = 0
			return nil
		}
		b = []byte(s)
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("order_id %q: %w", b, err)
	}
	*r = OrderRef(id)
	return nil
}

// EventDTO is a data transfer object for orders.Event
type EventDTO struct {
	OrderID   OrderRef  `json:"order_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) orders.Event {
	return orders.Event{
		OrderID:   int64(dto.OrderID),
		Status:    strings.TrimSpace(dto.Status),
		CreatedAt: dto.CreatedAt,
	}
}
