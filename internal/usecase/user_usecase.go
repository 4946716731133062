package usecase

import (
	"context"

	"clearx/internal/domain/entity"
	"clearx/internal/domain/repository"
	"clearx/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type UpdateProfileInput struct {
	Name        string
	Email       string
	Address     string
	PhoneNumber string
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update user profile", err)
	}

	return uc.userRepo.GetByUID(ctx, uid)
}

func (uc *UserUseCase) GetWishlist(ctx context.Context, uid string) ([]string, error) {
	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	if user.Wishlist == nil {
		return []string{}, nil
	}
	return user.Wishlist, nil
}

func (uc *UserUseCase) AddToWishlist(ctx context.Context, uid, productID string) (*entity.User, error) {
	user, err := uc.userRepo.AddToWishlist(ctx, uid, productID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *UserUseCase) RemoveFromWishlist(ctx context.Context, uid, productID string) (*entity.User, error) {
	user, err := uc.userRepo.RemoveFromWishlist(ctx, uid, productID)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}

func (uc *UserUseCase) UpgradeToSeller(ctx context.Context, uid string, profile *entity.SellerProfile) (*entity.User, error) {
	user, err := uc.userRepo.UpgradeToSeller(ctx, uid, profile)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
