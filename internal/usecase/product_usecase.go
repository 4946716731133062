package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"clearx/internal/domain/entity"
	"clearx/internal/domain/repository"
	"clearx/pkg/errors"
)

// listLimit caps product listings; there is no pagination cursor.
const listLimit = 100

type ProductUseCase struct {
	productRepo repository.ProductRepository
}

func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
	}
}

type ProductInput struct {
	ID            string
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	Discount      string
	Image         string
	Category      string
	Vertical      string
	StoreName     string
	StoreID       string
	Stock         int
	Rating        float64
	Distance      string
	DeliveryTime  string
	ExpiryDate    string
	Weight        string
	Origin        string
	Material      string
	Dimensions    string
}

func (uc *ProductUseCase) List(ctx context.Context, vertical, category, search string) ([]*entity.Product, error) {
	filter := repository.ListFilter{
		Vertical: vertical,
		Category: category,
		Search:   search,
	}

	products, err := uc.productRepo.List(ctx, filter, listLimit)
	if err != nil {
		return nil, errors.Internal("Failed to list products", err)
	}
	if products == nil {
		products = []*entity.Product{}
	}
	return products, nil
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Product", err)
	}
	return product, nil
}

func (uc *ProductUseCase) Create(ctx context.Context, input ProductInput) (*entity.Product, error) {
	if input.Vertical != "" && !entity.ValidVertical(input.Vertical) {
		return nil, errors.BadRequest("Invalid vertical", nil)
	}

	product := productFromInput(input)

	if product.ID == "" {
		product.ID = "prod-" + strings.Split(uuid.NewString(), "-")[0]
	} else if _, err := uc.productRepo.GetByID(ctx, product.ID); err == nil {
		return nil, errors.Conflict("Product id already exists")
	}
	if product.Stock == 0 {
		product.Stock = entity.DefaultStock
	}
	if product.Rating == 0 {
		product.Rating = entity.DefaultRating
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Internal("Failed to create product", err)
	}
	return product, nil
}

func (uc *ProductUseCase) Update(ctx context.Context, id string, input ProductInput) (*entity.Product, error) {
	existing, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("Product", err)
	}
	if input.Vertical != "" && !entity.ValidVertical(input.Vertical) {
		return nil, errors.BadRequest("Invalid vertical", nil)
	}

	product := productFromInput(input)
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if product.Stock == 0 {
		product.Stock = existing.Stock
	}
	if product.Rating == 0 {
		product.Rating = existing.Rating
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Internal("Failed to update product", err)
	}
	return product, nil
}

func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return errors.NotFound("Product", err)
	}
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return errors.Internal("Failed to delete product", err)
	}
	return nil
}

func productFromInput(input ProductInput) *entity.Product {
	return &entity.Product{
		ID:            input.ID,
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
		Discount:      input.Discount,
		Image:         input.Image,
		Category:      input.Category,
		Vertical:      input.Vertical,
		StoreName:     input.StoreName,
		StoreID:       input.StoreID,
		Stock:         input.Stock,
		Rating:        input.Rating,
		Distance:      input.Distance,
		DeliveryTime:  input.DeliveryTime,
		ExpiryDate:    input.ExpiryDate,
		Weight:        input.Weight,
		Origin:        input.Origin,
		Material:      input.Material,
		Dimensions:    input.Dimensions,
	}
}
