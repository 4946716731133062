package handler

import (
	"github.com/labstack/echo/v4"

	"clearx/internal/cart"
	"clearx/internal/usecase"
	"clearx/pkg/errors"
	"clearx/pkg/response"
)

// CartHandler exposes the per-session cart: lines live in the cart manager
// for the lifetime of the login session; checkout is the only path that
// touches the order store.
type CartHandler struct {
	carts          *cart.Manager
	productUseCase *usecase.ProductUseCase
	orderUseCase   *usecase.OrderUseCase
}

func NewCartHandler(carts *cart.Manager, productUseCase *usecase.ProductUseCase, orderUseCase *usecase.OrderUseCase) *CartHandler {
	return &CartHandler{
		carts:          carts,
		productUseCase: productUseCase,
		orderUseCase:   orderUseCase,
	}
}

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type checkoutRequest struct {
	ItemIDs         []string `json:"itemIds"`
	DeliveryAddress string   `json:"deliveryAddress" validate:"required"`
	PaymentMode     string   `json:"paymentMode" validate:"required"`
}

type cartView struct {
	Items []cart.Item `json:"items"`
	Total float64     `json:"total"`
}

func (h *CartHandler) session(c echo.Context) *cart.Session {
	return h.carts.Session(c.Get("uid").(string))
}

func (h *CartHandler) GetCart(c echo.Context) error {
	s := h.session(c)

	items := s.Items()
	if items == nil {
		items = []cart.Item{}
	}

	return response.Success(c, cartView{
		Items: items,
		Total: s.Total(),
	})
}

func (h *CartHandler) AddItem(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.GetByID(c.Request().Context(), req.ProductID)
	if err != nil {
		return response.Error(c, err)
	}

	s := h.session(c)
	s.AddToCart(*product)

	return response.Success(c, cartView{
		Items: s.Items(),
		Total: s.Total(),
	})
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	s := h.session(c)
	if !s.UpdateQuantity(c.Param("id"), req.Quantity) {
		return response.Error(c, errors.NotFound("Cart item", nil))
	}

	return response.Success(c, cartView{
		Items: s.Items(),
		Total: s.Total(),
	})
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	s := h.session(c)
	s.RemoveFromCart(c.Param("id"))

	return response.Success(c, cartView{
		Items: s.Items(),
		Total: s.Total(),
	})
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	s := h.session(c)
	s.ClearCart()

	return response.Success(c, cartView{Items: []cart.Item{}, Total: 0})
}

// Checkout snapshots the selected cart lines into a persisted order, then
// removes exactly those lines from the cart. An empty itemIds list checks
// out the whole cart.
func (h *CartHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	s := h.carts.Session(uid)

	staged := s.InitiateCheckout(req.ItemIDs)

	items := make([]usecase.OrderItemInput, len(staged))
	var total float64
	for i, item := range staged {
		items[i] = usecase.OrderItemInput{
			ID:       item.Product.ID,
			Name:     item.Product.Name,
			Price:    item.Product.Price,
			Quantity: item.Quantity,
			Vertical: item.Product.Vertical,
		}
		total += item.LineTotal()
	}

	order, err := h.orderUseCase.Create(c.Request().Context(), uid, usecase.CreateOrderInput{
		Items:           items,
		Total:           total,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMode:     req.PaymentMode,
	})
	if err != nil {
		return response.Error(c, err)
	}

	s.CompleteCheckout()

	return response.Created(c, order)
}

// ToggleWishlist flips a product id in the session wishlist.
func (h *CartHandler) ToggleWishlist(c echo.Context) error {
	productID := c.Param("id")

	s := h.session(c)
	inWishlist := s.ToggleWishlist(productID)

	return response.Success(c, map[string]interface{}{
		"productId":  productID,
		"inWishlist": inWishlist,
		"wishlist":   s.Wishlist(),
	})
}

// MoveWishlistToCart moves a wishlisted product into the cart.
func (h *CartHandler) MoveWishlistToCart(c echo.Context) error {
	product, err := h.productUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	s := h.session(c)
	s.MoveToCart(*product)

	return response.Success(c, map[string]interface{}{
		"items":    s.Items(),
		"total":    s.Total(),
		"wishlist": s.Wishlist(),
	})
}

// OrderSuccess reports and clears the one-shot flag raised by checkout; the
// client shows the success modal exactly once.
func (h *CartHandler) OrderSuccess(c echo.Context) error {
	s := h.session(c)

	return response.Success(c, map[string]interface{}{
		"orderSuccess": s.OrderSuccess(),
	})
}
