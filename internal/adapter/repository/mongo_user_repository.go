package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clearx/internal/domain/entity"
	"clearx/internal/domain/repository"
)

type mongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) repository.UserRepository {
	return &mongoUserRepository{
		col: db.Collection("users"),
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Wishlist == nil {
		user.Wishlist = []string{}
	}
	_, err := r.col.InsertOne(ctx, user)
	return err
}

func (r *mongoUserRepository) GetByUID(ctx context.Context, uid string) (*entity.User, error) {
	var user entity.User
	if err := r.col.FindOne(ctx, bson.M{"uid": uid}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepository) Update(ctx context.Context, user *entity.User) error {
	update := bson.M{
		"name":      user.Name,
		"email":     user.Email,
		"address":   user.Address,
		"updatedAt": time.Now().UTC(),
	}
	if user.PhoneNumber != "" {
		update["phoneNumber"] = user.PhoneNumber
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"uid": user.UID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// AddToWishlist uses $addToSet so repeated adds stay idempotent.
func (r *mongoUserRepository) AddToWishlist(ctx context.Context, uid, productID string) (*entity.User, error) {
	return r.findAndUpdate(ctx, uid, bson.M{
		"$addToSet": bson.M{"wishlist": productID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
}

// RemoveFromWishlist uses $pull; removing an absent id is a no-op.
func (r *mongoUserRepository) RemoveFromWishlist(ctx context.Context, uid, productID string) (*entity.User, error) {
	return r.findAndUpdate(ctx, uid, bson.M{
		"$pull": bson.M{"wishlist": productID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *mongoUserRepository) UpgradeToSeller(ctx context.Context, uid string, profile *entity.SellerProfile) (*entity.User, error) {
	return r.findAndUpdate(ctx, uid, bson.M{
		"$set": bson.M{
			"role":          entity.RoleSeller,
			"sellerProfile": profile,
			"updatedAt":     time.Now().UTC(),
		},
	})
}

func (r *mongoUserRepository) findAndUpdate(ctx context.Context, uid string, update bson.M) (*entity.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user entity.User
	if err := r.col.FindOneAndUpdate(ctx, bson.M{"uid": uid}, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
