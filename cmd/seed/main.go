package main

import (
	"context"
	"os"
	"strings"

	"clearx/internal/adapter/repository"
	"clearx/internal/infrastructure/mongodb"
	"clearx/internal/seed"
	"clearx/pkg/config"
	"clearx/pkg/logger"
)

// Seeds the products collection from the frontend mock module. No flags;
// everything comes from the environment.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	if cfg.MongoURI == "" || strings.Contains(cfg.MongoURI, "your_mongodb") {
		logger.Error("Please set a valid MONGO_URI before running the seed command")
		os.Exit(1)
	}

	ctx := context.Background()

	mongoClient, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		logger.Error("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	defer mongoClient.Disconnect(ctx)
	logger.Info("Connected to MongoDB")

	productRepo := repository.NewMongoProductRepository(mongoClient.Database(cfg.MongoDatabase))

	seeder := seed.NewSeeder(productRepo)
	count, err := seeder.Run(ctx, cfg.MockDataPath)
	if err != nil {
		logger.Error("Seeding error: %v", err)
		os.Exit(1)
	}

	logger.Info("Inserted %d products", count)
}
