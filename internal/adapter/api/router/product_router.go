package router

import (
	"github.com/labstack/echo/v4"

	"clearx/internal/adapter/api/handler"
	"clearx/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	productHandler := handler.GetProductHandler()

	// Browsing is public.
	products := e.Group("/api/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/:id", productHandler.GetProduct)

	// Writes require a seller account.
	sellerProducts := e.Group("/api/products")
	sellerProducts.Use(authMiddleware.Authenticate)
	sellerProducts.Use(roleMiddleware.SellerOnly)
	sellerProducts.POST("", productHandler.CreateProduct)
	sellerProducts.PUT("/:id", productHandler.UpdateProduct)
	sellerProducts.DELETE("/:id", productHandler.DeleteProduct)
}
