package router

import (
	"github.com/labstack/echo/v4"

	"clearx/internal/adapter/api/handler"
	"clearx/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/api/orders")
	orders.Use(authMiddleware.Authenticate)

	orders.GET("", orderHandler.ListOrders)
	orders.POST("", orderHandler.CreateOrder)
	orders.PUT("/:id", orderHandler.UpdateOrder)
	orders.DELETE("/:id", orderHandler.CancelOrder)
	orders.POST("/:id/redeem", orderHandler.RedeemOrder)
}
