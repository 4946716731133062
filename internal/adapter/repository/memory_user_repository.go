package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"clearx/internal/domain/entity"
	"clearx/internal/domain/repository"
)

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

func NewMemoryUserRepository() repository.UserRepository {
	return &memoryUserRepository{
		users: make(map[string]*entity.User),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Wishlist == nil {
		user.Wishlist = []string{}
	}
	cp := *user
	r.users[user.UID] = &cp
	return nil
}

func (r *memoryUserRepository) GetByUID(ctx context.Context, uid string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[uid]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	cp := *u
	cp.Wishlist = append([]string(nil), u.Wishlist...)
	return &cp, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[user.UID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	existing.Name = user.Name
	existing.Email = user.Email
	existing.Address = user.Address
	if user.PhoneNumber != "" {
		existing.PhoneNumber = user.PhoneNumber
	}
	existing.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memoryUserRepository) AddToWishlist(ctx context.Context, uid, productID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[uid]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := false
	for _, id := range u.Wishlist {
		if id == productID {
			found = true
			break
		}
	}
	if !found {
		u.Wishlist = append(u.Wishlist, productID)
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	cp.Wishlist = append([]string(nil), u.Wishlist...)
	return &cp, nil
}

func (r *memoryUserRepository) RemoveFromWishlist(ctx context.Context, uid, productID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[uid]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for i, id := range u.Wishlist {
		if id == productID {
			u.Wishlist = append(u.Wishlist[:i], u.Wishlist[i+1:]...)
			break
		}
	}
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	cp.Wishlist = append([]string(nil), u.Wishlist...)
	return &cp, nil
}

func (r *memoryUserRepository) UpgradeToSeller(ctx context.Context, uid string, profile *entity.SellerProfile) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[uid]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	u.Role = entity.RoleSeller
	u.SellerProfile = profile
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	cp.Wishlist = append([]string(nil), u.Wishlist...)
	return &cp, nil
}
