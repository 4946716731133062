package repository

import (
	"context"

	"clearx/internal/domain/entity"
)

// ListFilter narrows a product listing. Vertical and Category are equality
// matches; Search is a case-insensitive substring match over name and
// description.
type ListFilter struct {
	Vertical string
	Category string
	Search   string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, filter ListFilter, limit int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, products []*entity.Product) (int, error)
}
