package entity

import (
	"time"
)

const (
	RoleConsumer = "consumer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// DefaultCoins is the signup bonus credited to every new account.
const DefaultCoins = 50

type SellerProfile struct {
	BusinessName    string `json:"businessName" bson:"businessName"`
	BusinessAddress string `json:"businessAddress" bson:"businessAddress"`
	GSTNumber       string `json:"gstNumber" bson:"gstNumber"`
	BankAccount     string `json:"bankAccount" bson:"bankAccount"`
	Category        string `json:"category" bson:"category"`
}

type User struct {
	UID           string         `json:"uid" bson:"uid"`
	PhoneNumber   string         `json:"phoneNumber" bson:"phoneNumber"`
	Name          string         `json:"name" bson:"name"`
	Email         string         `json:"email" bson:"email"`
	Address       string         `json:"address" bson:"address"`
	Role          string         `json:"role" bson:"role"`
	SellerProfile *SellerProfile `json:"sellerProfile,omitempty" bson:"sellerProfile,omitempty"`
	Wishlist      []string       `json:"wishlist" bson:"wishlist"`
	Coins         int            `json:"coins" bson:"coins"`
	CreatedAt     time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt" bson:"updatedAt"`
}
