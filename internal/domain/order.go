package domain

// OrderStatus represents the lifecycle status of an order.
type OrderStatus string

// List of order statuses known to dispatch
const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderAssigned  OrderStatus = "assigned"
	OrderPickedUp  OrderStatus = "picked_up"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// DefaultParcelWeightKg is assumed when an order carries no item weight.
const DefaultParcelWeightKg = 2.0

// Order is the subset of an order that dispatch reads. Dispatch writes only Status and RiderID.
type Order struct {
	ID            int64
	Status        OrderStatus
	CustomerID    int64
	OutletID      int64
	RiderID       *int64
	Outlet        Point
	Delivery      Point
	ItemsWeightKg *float64
	DeliveryFee   float64
	TotalAmount   float64
}

// Dispatchable reports whether a rider may be assigned to the order in its current status.
func (o Order) Dispatchable() bool {
	switch o.Status {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady:
		return true
	default:
		return false
	}
}

// RequiredCapacityKg returns the vehicle capacity needed to carry the order.
func (o Order) RequiredCapacityKg(fallback float64) float64 {
	if o.ItemsWeightKg != nil && *o.ItemsWeightKg > 0 {
		return *o.ItemsWeightKg
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultParcelWeightKg
}

// DeliveryDistanceKm is the outlet to customer distance.
func (o Order) DeliveryDistanceKm() float64 {
	return HaversineKm(o.Outlet, o.Delivery)
}
