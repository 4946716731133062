package router

import (
	"github.com/labstack/echo/v4"

	"clearx/internal/adapter/api/handler"
	"clearx/internal/adapter/api/middleware"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	carts := e.Group("/api/cart")
	carts.Use(authMiddleware.Authenticate)

	carts.GET("", cartHandler.GetCart)
	carts.POST("/items", cartHandler.AddItem)
	carts.PUT("/items/:id", cartHandler.UpdateItem)
	carts.DELETE("/items/:id", cartHandler.RemoveItem)
	carts.DELETE("", cartHandler.ClearCart)

	carts.POST("/checkout", cartHandler.Checkout)
	carts.GET("/order-success", cartHandler.OrderSuccess)
	carts.POST("/wishlist/:id", cartHandler.ToggleWishlist)
	carts.POST("/wishlist/:id/move", cartHandler.MoveWishlistToCart)
}
