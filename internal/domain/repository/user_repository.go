package repository

import (
	"context"

	"clearx/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUID(ctx context.Context, uid string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	AddToWishlist(ctx context.Context, uid, productID string) (*entity.User, error)
	RemoveFromWishlist(ctx context.Context, uid, productID string) (*entity.User, error)
	UpgradeToSeller(ctx context.Context, uid string, profile *entity.SellerProfile) (*entity.User, error)
}
