package api

import "gitlab.connectwisedev.com/coffee-service/models"

type AddCartItemRequest struct {
	ProductID   string `json:"productId"`
	Quantity    *int   `json:"quantity"`
	Size        string `json:"size"`
	Temperature string `json:"temperature"`
}

type UpdateCartItemRequest struct {
	Quantity    int    `json:"quantity"`
	Size        string `json:"size"`
	Temperature string `json:"temperature"`
}

type CartResponse struct {
	Items      []models.CartLine `json:"items"`
	ItemCount  int               `json:"itemCount"`
	TotalPrice float64           `json:"totalPrice"`
}

type CatalogResponse struct {
	Products []models.Product `json:"products"`
	Loading  bool             `json:"loading"`
	Error    string           `json:"error,omitempty"`
}

type CreateOrderRequest struct {
	DeliveryType models.DeliveryType `json:"deliveryType"`
	Address      string              `json:"address"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

type FavoriteResponse struct {
	ProductID string `json:"productId"`
	Favorite  bool   `json:"favorite"`
}
