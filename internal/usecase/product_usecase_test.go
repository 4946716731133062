package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearx/internal/adapter/repository"
	"clearx/internal/domain/entity"
	"clearx/pkg/errors"
)

func newProductTestCase() *ProductUseCase {
	return NewProductUseCase(repository.NewMemoryProductRepository())
}

func TestCreateProductDefaults(t *testing.T) {
	uc := newProductTestCase()

	product, err := uc.Create(context.Background(), ProductInput{
		Name:     "Fresh Milk",
		Price:    45,
		Vertical: entity.VerticalDeals,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(product.ID, "prod-"))
	assert.Equal(t, entity.DefaultStock, product.Stock)
	assert.Equal(t, entity.DefaultRating, product.Rating)
}

func TestCreateProductKeepsExplicitValues(t *testing.T) {
	uc := newProductTestCase()

	product, err := uc.Create(context.Background(), ProductInput{
		ID:     "prod-custom",
		Name:   "Handwoven Basket",
		Price:  350,
		Stock:  7,
		Rating: 3.9,
	})
	require.NoError(t, err)

	assert.Equal(t, "prod-custom", product.ID)
	assert.Equal(t, 7, product.Stock)
	assert.Equal(t, 3.9, product.Rating)
}

func TestCreateProductRejectsDuplicateID(t *testing.T) {
	uc := newProductTestCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, ProductInput{ID: "prod-custom", Name: "Fresh Milk", Price: 45})
	require.NoError(t, err)

	_, err = uc.Create(ctx, ProductInput{ID: "prod-custom", Name: "Other Milk", Price: 50})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestCreateProductRejectsUnknownVertical(t *testing.T) {
	uc := newProductTestCase()

	_, err := uc.Create(context.Background(), ProductInput{
		Name:     "Fresh Milk",
		Price:    45,
		Vertical: "GROCERY",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestListProductsFilters(t *testing.T) {
	uc := newProductTestCase()
	ctx := context.Background()

	seed := []ProductInput{
		{Name: "Fresh Milk", Description: "Farm fresh milk", Price: 45, Vertical: entity.VerticalDeals, Category: "Dairy"},
		{Name: "Organic Honey", Description: "Raw forest honey", Price: 250, Vertical: entity.VerticalRural, Category: "Pantry"},
		{Name: "Milk Chocolate", Description: "Handmade bar", Price: 120, Vertical: entity.VerticalMakers, Category: "Snacks"},
	}
	for _, input := range seed {
		_, err := uc.Create(ctx, input)
		require.NoError(t, err)
	}

	all, err := uc.List(ctx, "", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	deals, err := uc.List(ctx, entity.VerticalDeals, "", "")
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "Fresh Milk", deals[0].Name)

	// Search matches name or description, case-insensitively.
	milk, err := uc.List(ctx, "", "", "milk")
	require.NoError(t, err)
	assert.Len(t, milk, 2)

	dealsMilk, err := uc.List(ctx, entity.VerticalDeals, "", "milk")
	require.NoError(t, err)
	require.Len(t, dealsMilk, 1)
	assert.Equal(t, "Fresh Milk", dealsMilk[0].Name)

	none, err := uc.List(ctx, "", "Electronics", "")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateProductPreservesIdentity(t *testing.T) {
	uc := newProductTestCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, ProductInput{Name: "Fresh Milk", Price: 45})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, created.ID, ProductInput{
		ID:    "prod-spoofed",
		Name:  "Fresh Milk 1L",
		Price: 50,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Fresh Milk 1L", updated.Name)
	assert.Equal(t, 50.0, updated.Price)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = uc.Update(ctx, "prod-missing", ProductInput{Name: "x", Price: 1})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteProduct(t *testing.T) {
	uc := newProductTestCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, ProductInput{Name: "Fresh Milk", Price: 45})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.GetByID(ctx, created.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	assert.True(t, errors.Is(uc.Delete(ctx, created.ID), "NOT_FOUND"))
}
