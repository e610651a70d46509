package store

import "errors"

var (
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrLineNotFound        = errors.New("cart line not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInvalidDeliveryType = errors.New("invalid delivery type")
	ErrAddressRequired     = errors.New("address is required for delivery orders")
)
