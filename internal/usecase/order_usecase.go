package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"clearx/internal/domain/entity"
	"clearx/internal/domain/repository"
	"clearx/pkg/errors"
)

// orderSeq backs order id generation: a process-wide monotonic counter
// seeded from the clock, so ids keep the familiar ord-NNNNNN shape without
// the same-millisecond collisions a raw timestamp slice had.
var orderSeq atomic.Int64

func init() {
	orderSeq.Store(time.Now().UnixMilli())
}

func nextOrderID() string {
	return fmt.Sprintf("ord-%06d", orderSeq.Add(1)%1000000)
}

type OrderUseCase struct {
	orderRepo repository.OrderRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
	}
}

type OrderItemInput struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
	Vertical string
}

type CreateOrderInput struct {
	Items           []OrderItemInput
	Total           float64
	DeliveryAddress string
	PaymentMode     string
}

// Create persists a new order for the caller. Status is always confirmed
// regardless of what the client sent, and the id is server-assigned.
func (uc *OrderUseCase) Create(ctx context.Context, userID string, input CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, errors.BadRequest("Order must contain at least one item", nil)
	}

	items := make([]entity.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Vertical: item.Vertical,
		}
	}

	order := &entity.Order{
		ID:              nextOrderID(),
		UserID:          userID,
		Items:           items,
		Total:           input.Total,
		Status:          entity.OrderStatusConfirmed,
		DeliveryAddress: input.DeliveryAddress,
		PaymentMode:     input.PaymentMode,
		Date:            time.Now().UTC(),
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Internal("Failed to create order", err)
	}
	return order, nil
}

// ListByUser is always scoped to the authenticated caller.
func (uc *OrderUseCase) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := uc.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Internal("Failed to list orders", err)
	}
	if orders == nil {
		orders = []*entity.Order{}
	}
	return orders, nil
}

// UpdateStatus advances an order through the closed lifecycle table.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, userID, orderID, status string) (*entity.Order, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, errors.BadRequest("Invalid order status", nil)
	}

	order, err := uc.getOwned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !entity.CanTransition(order.Status, status) {
		return nil, errors.BadRequest(
			fmt.Sprintf("Cannot change order status from %s to %s", order.Status, status), nil)
	}

	updated, err := uc.orderRepo.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, errors.Internal("Failed to update order status", err)
	}
	return updated, nil
}

// Cancel marks the order cancelled. The record is kept; order history
// survives cancellation.
func (uc *OrderUseCase) Cancel(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	return uc.UpdateStatus(ctx, userID, orderID, entity.OrderStatusCancelled)
}

// Redeem marks an order delivered on pickup redemption. Redemption is proof
// of handover, so it is accepted from any non-terminal state rather than
// walking the shipping steps.
func (uc *OrderUseCase) Redeem(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.getOwned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == entity.OrderStatusDelivered || order.Status == entity.OrderStatusCancelled {
		return nil, errors.BadRequest("Order is not redeemable", nil)
	}

	updated, err := uc.orderRepo.UpdateStatus(ctx, orderID, entity.OrderStatusDelivered)
	if err != nil {
		return nil, errors.Internal("Failed to redeem order", err)
	}
	return updated, nil
}

func (uc *OrderUseCase) getOwned(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, errors.NotFound("Order", err)
	}
	if order.UserID != userID {
		return nil, errors.Forbidden("You don't have permission to modify this order", nil)
	}
	return order, nil
}
