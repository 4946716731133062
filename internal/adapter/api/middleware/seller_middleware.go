package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clearx/internal/domain/entity"
	"clearx/internal/domain/repository"
)

type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

// SellerOnly gates product write endpoints to sellers and admins.
func (m *RoleMiddleware) SellerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByUID(c.Request().Context(), uid)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to verify seller privileges")
		}

		if user.Role != entity.RoleSeller && user.Role != entity.RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Seller privileges required")
		}

		return next(c)
	}
}
