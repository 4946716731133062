package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"clearx/internal/adapter/api"
	"clearx/internal/adapter/api/handler"
	apimiddleware "clearx/internal/adapter/api/middleware"
	"clearx/internal/adapter/api/router"
	"clearx/internal/adapter/repository"
	"clearx/internal/cart"
	"clearx/internal/infrastructure/firebase"
	"clearx/internal/infrastructure/mongodb"
	"clearx/internal/usecase"
	"clearx/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is not set")
	}

	mongoClient, err := mongodb.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)
	db := mongoClient.Database(cfg.MongoDatabase)

	firebaseApp, err := firebase.NewApp(ctx, cfg.FirebaseProject)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}
	authClient := firebase.NewAuthClient(fbAuth)

	userRepo := repository.NewMongoUserRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)

	authUseCase := usecase.NewAuthUseCase(
		userRepo,
		authClient,
		cfg.JWTSecret,
		time.Duration(cfg.JWTExpiry)*time.Second,
		cfg.IsProduction(),
	)
	userUseCase := usecase.NewUserUseCase(userRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo)

	cartManager := cart.NewManager(24 * time.Hour)
	cartManager.StartSweeper(ctx, 30*time.Minute)

	handler.Setup(authUseCase, userUseCase, productUseCase, orderUseCase, cartManager)

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	rateLimiter := apimiddleware.NewRateLimiter(200, time.Minute)
	e.Use(rateLimiter.Middleware())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authUseCase)
	roleMiddleware := apimiddleware.NewRoleMiddleware(userRepo)

	router.Setup(e, authMiddleware, roleMiddleware)

	log.Printf("ClearX backend running on port %s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
