package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"clearx/internal/domain/entity"
	"clearx/internal/domain/repository"
)

// memoryProductRepository keeps products in process memory. It mirrors the
// mongo implementation's filter semantics and backs the test suite.
type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
	order    []string
}

func NewMemoryProductRepository() repository.ProductRepository {
	return &memoryProductRepository{
		products: make(map[string]*entity.Product),
	}
}

func (r *memoryProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	cp := *product
	if _, exists := r.products[product.ID]; !exists {
		r.order = append(r.order, product.ID)
	}
	r.products[product.ID] = &cp
	return nil
}

func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *p
	return &cp, nil
}

func matchesFilter(p *entity.Product, filter repository.ListFilter) bool {
	if filter.Vertical != "" && p.Vertical != filter.Vertical {
		return false
	}
	if filter.Category != "" && p.Category != filter.Category {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	return true
}

func (r *memoryProductRepository) List(ctx context.Context, filter repository.ListFilter, limit int) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []*entity.Product
	for _, id := range r.order {
		if len(products) >= limit {
			break
		}
		p := r.products[id]
		if matchesFilter(p, filter) {
			cp := *p
			products = append(products, &cp)
		}
	}
	return products, nil
}

func (r *memoryProductRepository) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return mongo.ErrNoDocuments
	}
	product.UpdatedAt = time.Now().UTC()
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *memoryProductRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryProductRepository) ReplaceAll(ctx context.Context, products []*entity.Product) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make(map[string]*entity.Product, len(products))
	r.order = r.order[:0]
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
		r.order = append(r.order, p.ID)
	}
	return len(products), nil
}
