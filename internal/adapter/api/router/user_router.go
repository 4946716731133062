package router

import (
	"github.com/labstack/echo/v4"

	"clearx/internal/adapter/api/handler"
	"clearx/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/api/users")
	users.Use(authMiddleware.Authenticate)

	users.GET("/profile", userHandler.GetProfile)
	users.PUT("/profile", userHandler.UpdateProfile)

	users.GET("/wishlist", userHandler.GetWishlist)
	users.POST("/wishlist/add", userHandler.AddToWishlist)
	users.POST("/wishlist/remove", userHandler.RemoveFromWishlist)

	users.POST("/upgrade-seller", userHandler.UpgradeToSeller)
}
