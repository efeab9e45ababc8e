package models

import "time"

// Order statuses.
const (
	OrderPending   = "pending"
	OrderPaid      = "paid"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// OrderItem is one product line on an order. UnitPrice is captured at
// order time so later catalog price changes do not rewrite history.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
}

// Order is a client purchase of catalog products.
type Order struct {
	ID        string      `bson:"id" json:"id"`
	TenantID  string      `bson:"tenantId" json:"tenantId"`
	ClientID  string      `bson:"clientId" json:"clientId"`
	Items     []OrderItem `bson:"items" json:"items"`
	Total     float64     `bson:"total" json:"total"`
	Status    string      `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	ClientID string `json:"clientId" binding:"required"`
	Items    []struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}
