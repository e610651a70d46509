package models

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// DeliveryType is how an order reaches the customer.
type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDelivery DeliveryType = "delivery"
)

func (d DeliveryType) Valid() bool {
	return d == DeliveryTypePickup || d == DeliveryTypeDelivery
}

// Order is a snapshot of the cart taken at checkout. Only Status changes
// after creation.
type Order struct {
	ID           string       `json:"id"`
	Items        []CartLine   `json:"items"`
	Total        float64      `json:"total"`
	Status       OrderStatus  `json:"status"`
	CreateTime   string       `json:"createTime"`
	DeliveryType DeliveryType `json:"deliveryType"`
	Address      string       `json:"address,omitempty"`
}
