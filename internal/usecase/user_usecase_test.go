package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearx/internal/adapter/repository"
	"clearx/internal/domain/entity"
	domainrepo "clearx/internal/domain/repository"
	"clearx/pkg/errors"
)

func newUserTestCase(t *testing.T) (*UserUseCase, domainrepo.UserRepository) {
	repo := repository.NewMemoryUserRepository()
	return NewUserUseCase(repo), repo
}

func seedUser(t *testing.T, repo domainrepo.UserRepository, uid string) {
	t.Helper()
	err := repo.Create(context.Background(), &entity.User{
		UID:         uid,
		PhoneNumber: "+919876543210",
		Role:        entity.RoleConsumer,
		Coins:       entity.DefaultCoins,
	})
	require.NoError(t, err)
}

func TestUpdateProfilePartial(t *testing.T) {
	uc, repo := newUserTestCase(t)
	seedUser(t, repo, "user-1")
	ctx := context.Background()

	updated, err := uc.UpdateProfile(ctx, "user-1", UpdateProfileInput{
		Name:    "Asha",
		Address: "12 Market Road",
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha", updated.Name)
	assert.Equal(t, "12 Market Road", updated.Address)
	// Untouched fields survive a partial update.
	assert.Equal(t, "+919876543210", updated.PhoneNumber)

	_, err = uc.UpdateProfile(ctx, "nobody", UpdateProfileInput{Name: "x"})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestWishlistAddRemove(t *testing.T) {
	uc, repo := newUserTestCase(t)
	seedUser(t, repo, "user-1")
	ctx := context.Background()

	user, err := uc.AddToWishlist(ctx, "user-1", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-1"}, user.Wishlist)

	// Adding the same id twice does not duplicate it.
	user, err = uc.AddToWishlist(ctx, "user-1", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-1"}, user.Wishlist)

	user, err = uc.AddToWishlist(ctx, "user-1", "prod-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-1", "prod-2"}, user.Wishlist)

	user, err = uc.RemoveFromWishlist(ctx, "user-1", "prod-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-2"}, user.Wishlist)

	// Removing an absent id is a no-op, not an error.
	user, err = uc.RemoveFromWishlist(ctx, "user-1", "prod-99")
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-2"}, user.Wishlist)

	wishlist, err := uc.GetWishlist(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"prod-2"}, wishlist)
}

func TestUpgradeToSeller(t *testing.T) {
	uc, repo := newUserTestCase(t)
	seedUser(t, repo, "user-1")

	user, err := uc.UpgradeToSeller(context.Background(), "user-1", &entity.SellerProfile{
		BusinessName: "Daily Dairy",
		Category:     "Dairy",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleSeller, user.Role)
	require.NotNil(t, user.SellerProfile)
	assert.Equal(t, "Daily Dairy", user.SellerProfile.BusinessName)

	_, err = uc.UpgradeToSeller(context.Background(), "nobody", &entity.SellerProfile{})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
