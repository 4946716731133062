package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"clearx/internal/usecase"
	"clearx/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type orderItemRequest struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Vertical string  `json:"vertical"`
}

type createOrderRequest struct {
	Items           []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	Total           float64            `json:"total" validate:"gte=0"`
	DeliveryAddress string             `json:"deliveryAddress"`
	PaymentMode     string             `json:"paymentMode"`
}

type updateOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed processing shipped delivered cancelled"`
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	uid := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Vertical: item.Vertical,
		}
	}

	order, err := h.orderUseCase.Create(c.Request().Context(), uid, usecase.CreateOrderInput{
		Items:           items,
		Total:           req.Total,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMode:     req.PaymentMode,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), uid, c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

// CancelOrder marks the order cancelled; the record is kept for history.
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	if _, err := h.orderUseCase.Cancel(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Order cancelled",
	})
}

// RedeemOrder marks an order delivered when the pickup QR is redeemed.
func (h *OrderHandler) RedeemOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.Redeem(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, order)
}
