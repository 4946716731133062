package entity

import (
	"time"
)

// Verticals are the app's three merchandising categories.
const (
	VerticalDeals  = "DEALS"
	VerticalRural  = "RURAL"
	VerticalMakers = "MAKERS"
)

const (
	DefaultStock  = 100
	DefaultRating = 4.5
)

type Product struct {
	ID            string  `json:"id" bson:"id"`
	Name          string  `json:"name" bson:"name"`
	Description   string  `json:"description" bson:"description"`
	Price         float64 `json:"price" bson:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty" bson:"originalPrice,omitempty"`
	Discount      string  `json:"discount,omitempty" bson:"discount,omitempty"`
	Image         string  `json:"image" bson:"image"`
	Category      string  `json:"category" bson:"category"`
	Vertical      string  `json:"vertical" bson:"vertical"`
	StoreName     string  `json:"storeName" bson:"storeName"`
	StoreID       string  `json:"storeId" bson:"storeId"`
	Stock         int     `json:"stock" bson:"stock"`
	Rating        float64 `json:"rating" bson:"rating"`
	Distance      string  `json:"distance,omitempty" bson:"distance,omitempty"`
	DeliveryTime  string  `json:"deliveryTime,omitempty" bson:"deliveryTime,omitempty"`

	// Vertical specific fields
	ExpiryDate string `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"` // DEALS
	Weight     string `json:"weight,omitempty" bson:"weight,omitempty"`         // RURAL
	Origin     string `json:"origin,omitempty" bson:"origin,omitempty"`         // RURAL
	Material   string `json:"material,omitempty" bson:"material,omitempty"`     // MAKERS
	Dimensions string `json:"dimensions,omitempty" bson:"dimensions,omitempty"` // MAKERS

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func ValidVertical(v string) bool {
	switch v {
	case VerticalDeals, VerticalRural, VerticalMakers:
		return true
	}
	return false
}
