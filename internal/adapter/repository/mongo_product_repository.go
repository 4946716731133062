package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clearx/internal/domain/entity"
	"clearx/internal/domain/repository"
)

type mongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) repository.ProductRepository {
	return &mongoProductRepository{
		col: db.Collection("products"),
	}
}

func (r *mongoProductRepository) Create(ctx context.Context, product *entity.Product) error {
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, product)
	return err
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	if err := r.col.FindOne(ctx, bson.M{"id": id}).Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// buildListFilter turns a ListFilter into the mongo query: equality on
// vertical/category, case-insensitive substring match over name and
// description. Search terms are regex-quoted so "1+1 offer" matches
// literally.
func buildListFilter(filter repository.ListFilter) bson.M {
	query := bson.M{}

	if filter.Vertical != "" {
		query["vertical"] = filter.Vertical
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	return query
}

func (r *mongoProductRepository) List(ctx context.Context, filter repository.ListFilter, limit int) ([]*entity.Product, error) {
	opts := options.Find().SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, buildListFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var products []*entity.Product
	for cur.Next(ctx) {
		var p entity.Product
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, cur.Err()
}

func (r *mongoProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now().UTC()

	res, err := r.col.ReplaceOne(ctx, bson.M{"id": product.ID}, product)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoProductRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ReplaceAll wipes the collection and bulk-inserts the given products.
// Used by the seeding CLI only.
func (r *mongoProductRepository) ReplaceAll(ctx context.Context, products []*entity.Product) (int, error) {
	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, err
	}

	docs := make([]interface{}, len(products))
	now := time.Now().UTC()
	for i, p := range products {
		p.CreatedAt = now
		p.UpdatedAt = now
		docs[i] = p
	}

	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}
