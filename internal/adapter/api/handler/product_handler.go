package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clearx/internal/usecase"
	"clearx/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	OriginalPrice float64 `json:"originalPrice"`
	Discount      string  `json:"discount"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Vertical      string  `json:"vertical" validate:"omitempty,oneof=DEALS RURAL MAKERS"`
	StoreName     string  `json:"storeName"`
	StoreID       string  `json:"storeId"`
	Stock         int     `json:"stock" validate:"omitempty,gte=0"`
	Rating        float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Distance      string  `json:"distance"`
	DeliveryTime  string  `json:"deliveryTime"`
	ExpiryDate    string  `json:"expiryDate"`
	Weight        string  `json:"weight"`
	Origin        string  `json:"origin"`
	Material      string  `json:"material"`
	Dimensions    string  `json:"dimensions"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		Discount:      r.Discount,
		Image:         r.Image,
		Category:      r.Category,
		Vertical:      r.Vertical,
		StoreName:     r.StoreName,
		StoreID:       r.StoreID,
		Stock:         r.Stock,
		Rating:        r.Rating,
		Distance:      r.Distance,
		DeliveryTime:  r.DeliveryTime,
		ExpiryDate:    r.ExpiryDate,
		Weight:        r.Weight,
		Origin:        r.Origin,
		Material:      r.Material,
		Dimensions:    r.Dimensions,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productUseCase.List(
		c.Request().Context(),
		c.QueryParam("vertical"),
		c.QueryParam("category"),
		c.QueryParam("search"),
	)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	product, err := h.productUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	if err := h.productUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Product deleted",
	})
}
