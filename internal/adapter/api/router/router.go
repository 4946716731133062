package router

import (
	"github.com/labstack/echo/v4"

	"clearx/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupProductRouter(e, authMiddleware, roleMiddleware)
	SetupOrderRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
