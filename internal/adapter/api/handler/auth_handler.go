package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clearx/internal/usecase"
	"clearx/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type loginRequest struct {
	IDToken string `json:"idToken"`

	// Dev-mode fields, accepted only outside production.
	UID         string `json:"uid"`
	PhoneNumber string `json:"phoneNumber"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authUseCase.Login(c.Request().Context(), usecase.LoginInput{
		IDToken:     req.IDToken,
		UID:         req.UID,
		PhoneNumber: req.PhoneNumber,
		Name:        req.Name,
		Email:       req.Email,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}

// Logout is stateless; the token is discarded client-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUseCase.Logout(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}
