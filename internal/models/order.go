package models

import "time"

// OrderItem is a single line of an order. Price is the unit price at the
// time the order was placed.
type OrderItem struct {
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is an immutable ledger entry: appended at checkout, never updated
// or deleted. TotalPrice is computed once at creation from the items.
type Order struct {
	ID              uint        `json:"orderId" gorm:"primaryKey;autoIncrement"`
	UserID          uint        `json:"userId" gorm:"index"`
	Items           []OrderItem `json:"items" gorm:"serializer:json"`
	TotalPrice      float64     `json:"totalPrice"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// OrderStatusPending is the only status an order ever holds here; there
// is no fulfilment pipeline to transition it.
const OrderStatusPending = "Pending"
