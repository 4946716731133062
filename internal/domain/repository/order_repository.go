package repository

import (
	"context"

	"clearx/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error)
}
