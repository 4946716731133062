package usecase

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearx/internal/adapter/repository"
	"clearx/internal/domain/entity"
	"clearx/pkg/errors"
)

var orderIDPattern = regexp.MustCompile(`^ord-\d{6}$`)

func newOrderTestCase() *OrderUseCase {
	return NewOrderUseCase(repository.NewMemoryOrderRepository())
}

func testOrderInput() CreateOrderInput {
	return CreateOrderInput{
		Items: []OrderItemInput{
			{ID: "prod-1", Name: "Fresh Milk", Price: 45, Quantity: 2, Vertical: "DEALS"},
		},
		Total:           90,
		DeliveryAddress: "12 Market Road",
		PaymentMode:     "cod",
	}
}

func TestCreateOrder(t *testing.T) {
	uc := newOrderTestCase()

	order, err := uc.Create(context.Background(), "user-1", testOrderInput())
	require.NoError(t, err)

	assert.Regexp(t, orderIDPattern, order.ID)
	assert.Equal(t, entity.OrderStatusConfirmed, order.Status)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, 90.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Fresh Milk", order.Items[0].Name)
	assert.False(t, order.Date.IsZero())
}

func TestCreateOrderIDsAreUnique(t *testing.T) {
	uc := newOrderTestCase()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		order, err := uc.Create(context.Background(), "user-1", testOrderInput())
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "duplicate id %s", order.ID)
		seen[order.ID] = true
	}
}

func TestCreateOrderRequiresItems(t *testing.T) {
	uc := newOrderTestCase()

	_, err := uc.Create(context.Background(), "user-1", CreateOrderInput{Total: 10})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestListByUserScoped(t *testing.T) {
	uc := newOrderTestCase()

	_, err := uc.Create(context.Background(), "user-1", testOrderInput())
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), "user-2", testOrderInput())
	require.NoError(t, err)

	orders, err := uc.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "user-1", orders[0].UserID)

	none, err := uc.ListByUser(context.Background(), "user-3")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestUpdateStatusWalksLifecycle(t *testing.T) {
	uc := newOrderTestCase()
	ctx := context.Background()

	order, err := uc.Create(ctx, "user-1", testOrderInput())
	require.NoError(t, err)

	for _, status := range []string{
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
	} {
		updated, err := uc.UpdateStatus(ctx, "user-1", order.ID, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
	}
}

func TestUpdateStatusRejectsSkips(t *testing.T) {
	uc := newOrderTestCase()
	ctx := context.Background()

	order, err := uc.Create(ctx, "user-1", testOrderInput())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, "user-1", order.ID, entity.OrderStatusDelivered)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.UpdateStatus(ctx, "user-1", order.ID, "refunded")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCancelKeepsOrder(t *testing.T) {
	uc := newOrderTestCase()
	ctx := context.Background()

	order, err := uc.Create(ctx, "user-1", testOrderInput())
	require.NoError(t, err)

	cancelled, err := uc.Cancel(ctx, "user-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)

	// Cancelled orders stay in history.
	orders, err := uc.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderStatusCancelled, orders[0].Status)

	// And are terminal.
	_, err = uc.Cancel(ctx, "user-1", order.ID)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestRedeem(t *testing.T) {
	uc := newOrderTestCase()
	ctx := context.Background()

	order, err := uc.Create(ctx, "user-1", testOrderInput())
	require.NoError(t, err)

	// Redemption is proof of handover, so it works straight from confirmed.
	redeemed, err := uc.Redeem(ctx, "user-1", order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, redeemed.Status)

	_, err = uc.Redeem(ctx, "user-1", order.ID)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestOrderOwnership(t *testing.T) {
	uc := newOrderTestCase()
	ctx := context.Background()

	order, err := uc.Create(ctx, "user-1", testOrderInput())
	require.NoError(t, err)

	_, err = uc.Cancel(ctx, "user-2", order.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.Redeem(ctx, "user-2", order.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.Cancel(ctx, "user-1", "ord-missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
