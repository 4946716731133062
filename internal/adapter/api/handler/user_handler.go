package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clearx/internal/domain/entity"
	"clearx/internal/usecase"
	"clearx/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type updateProfileRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phoneNumber"`
}

type wishlistRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type sellerProfileRequest struct {
	BusinessName    string `json:"businessName" validate:"required"`
	BusinessAddress string `json:"businessAddress"`
	GSTNumber       string `json:"gstNumber"`
	BankAccount     string `json:"bankAccount"`
	Category        string `json:"category"`
}

type upgradeSellerRequest struct {
	SellerProfile sellerProfileRequest `json:"sellerProfile" validate:"required"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetWishlist(c echo.Context) error {
	uid := c.Get("uid").(string)

	wishlist, err := h.userUseCase.GetWishlist(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, wishlist)
}

func (h *UserHandler) AddToWishlist(c echo.Context) error {
	var req wishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.AddToWishlist(c.Request().Context(), uid, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) RemoveFromWishlist(c echo.Context) error {
	var req wishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.RemoveFromWishlist(c.Request().Context(), uid, req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpgradeToSeller(c echo.Context) error {
	var req upgradeSellerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpgradeToSeller(c.Request().Context(), uid, &entity.SellerProfile{
		BusinessName:    req.SellerProfile.BusinessName,
		BusinessAddress: req.SellerProfile.BusinessAddress,
		GSTNumber:       req.SellerProfile.GSTNumber,
		BankAccount:     req.SellerProfile.BankAccount,
		Category:        req.SellerProfile.Category,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, user)
}
