package entity

import (
	"time"
)

const (
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is a snapshot taken at order creation, not a live Product
// reference; later product edits do not rewrite order history.
type OrderItem struct {
	ID       string  `json:"id" bson:"id"`
	Name     string  `json:"name" bson:"name"`
	Price    float64 `json:"price" bson:"price"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Vertical string  `json:"vertical" bson:"vertical"`
}

type Order struct {
	ID              string      `json:"id" bson:"id"`
	UserID          string      `json:"userId" bson:"userId"`
	Items           []OrderItem `json:"items" bson:"items"`
	Total           float64     `json:"total" bson:"total"`
	Status          string      `json:"status" bson:"status"`
	DeliveryAddress string      `json:"deliveryAddress" bson:"deliveryAddress"`
	PaymentMode     string      `json:"paymentMode" bson:"paymentMode"`
	Date            time.Time   `json:"date" bson:"date"`
	CreatedAt       time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt" bson:"updatedAt"`
}

// CanTransition is the closed order lifecycle: forward one step at a time,
// or cancel anything that has not reached a terminal state.
func CanTransition(from, to string) bool {
	switch to {
	case OrderStatusProcessing:
		return from == OrderStatusConfirmed
	case OrderStatusShipped:
		return from == OrderStatusProcessing
	case OrderStatusDelivered:
		return from == OrderStatusShipped
	case OrderStatusCancelled:
		return from != OrderStatusDelivered && from != OrderStatusCancelled
	}
	return false
}

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
