package seed

import (
	"context"
	"os"

	"clearx/internal/domain/repository"
	"clearx/pkg/logger"
)

type Seeder struct {
	productRepo repository.ProductRepository
}

func NewSeeder(productRepo repository.ProductRepository) *Seeder {
	return &Seeder{
		productRepo: productRepo,
	}
}

// Run reads the mock module at path, parses the PRODUCTS fixture and
// replaces the products collection with it. Returns the inserted count.
func (s *Seeder) Run(ctx context.Context, path string) (int, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	logger.Info("Read %s, parsing PRODUCTS fixture", path)

	products, err := ParseProducts(string(src))
	if err != nil {
		return 0, err
	}
	logger.Info("Parsed %d products", len(products))

	count, err := s.productRepo.ReplaceAll(ctx, products)
	if err != nil {
		return 0, err
	}
	return count, nil
}
