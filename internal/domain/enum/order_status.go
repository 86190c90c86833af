package enum

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPaid     OrderStatus = "paid"
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusRefunded OrderStatus = "refunded"
	OrderStatusShipped  OrderStatus = "shipped"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPaid, OrderStatusPending, OrderStatusRefunded, OrderStatusShipped:
		return true
	}
	return false
}

// OrderStatusValues lists the accepted statuses, used by validation errors
// and the schema endpoint.
func OrderStatusValues() []string {
	return []string{
		string(OrderStatusPaid),
		string(OrderStatusPending),
		string(OrderStatusRefunded),
		string(OrderStatusShipped),
	}
}
