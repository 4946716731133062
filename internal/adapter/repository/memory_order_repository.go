package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"clearx/internal/domain/entity"
	"clearx/internal/domain/repository"
)

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order
	order  []string
}

func NewMemoryOrderRepository() repository.OrderRepository {
	return &memoryOrderRepository{
		orders: make(map[string]*entity.Order),
	}
}

func (r *memoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Date.IsZero() {
		order.Date = now
	}
	cp := *order
	r.orders[order.ID] = &cp
	r.order = append(r.order, order.ID)
	return nil
}

func (r *memoryOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *o
	return &cp, nil
}

func (r *memoryOrderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first, matching the mongo implementation's sort.
	var orders []*entity.Order
	for i := len(r.order) - 1; i >= 0; i-- {
		o := r.orders[r.order[i]]
		if o.UserID == userID {
			cp := *o
			orders = append(orders, &cp)
		}
	}
	return orders, nil
}

func (r *memoryOrderRepository) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	o.Status = status
	o.UpdatedAt = time.Now().UTC()
	cp := *o
	return &cp, nil
}
