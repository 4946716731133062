package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clearx/internal/domain/entity"
)

func product(id string, price float64) entity.Product {
	return entity.Product{ID: id, Name: "product " + id, Price: price}
}

func TestAddToCartAggregatesQuantity(t *testing.T) {
	s := newSession()

	s.AddToCart(product("p1", 10))
	s.AddToCart(product("p1", 10))
	s.AddToCart(product("p2", 5))

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 25.0, s.Total())
}

func TestUpdateQuantity(t *testing.T) {
	s := newSession()
	s.AddToCart(product("p1", 10))

	assert.True(t, s.UpdateQuantity("p1", 5))
	assert.Equal(t, 50.0, s.Total())

	// Zero or negative removes the line instead of keeping a dead row.
	assert.True(t, s.UpdateQuantity("p1", 0))
	assert.Empty(t, s.Items())

	assert.False(t, s.UpdateQuantity("missing", 3))
}

func TestRemoveAndClear(t *testing.T) {
	s := newSession()
	s.AddToCart(product("p1", 10))
	s.AddToCart(product("p2", 20))

	s.RemoveFromCart("p1")
	require.Len(t, s.Items(), 1)
	assert.Equal(t, "p2", s.Items()[0].Product.ID)

	s.ClearCart()
	assert.Empty(t, s.Items())
	assert.Equal(t, 0.0, s.Total())
}

func TestToggleWishlistIsSelfInverse(t *testing.T) {
	s := newSession()

	assert.True(t, s.ToggleWishlist("p1"))
	assert.Equal(t, []string{"p1"}, s.Wishlist())

	assert.False(t, s.ToggleWishlist("p1"))
	assert.Empty(t, s.Wishlist())
}

func TestMoveToCart(t *testing.T) {
	s := newSession()
	s.ToggleWishlist("p1")
	s.ToggleWishlist("p2")

	s.MoveToCart(product("p1", 10))

	assert.Equal(t, []string{"p2"}, s.Wishlist())
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].Product.ID)
	assert.Equal(t, 1, items[0].Quantity)

	// Moving a product already in the cart bumps the existing line.
	s.ToggleWishlist("p1")
	s.MoveToCart(product("p1", 10))
	assert.Equal(t, 2, s.Items()[0].Quantity)
	assert.Empty(t, s.Wishlist())
}

func TestCheckoutRemovesOnlyStagedLines(t *testing.T) {
	s := newSession()
	s.AddToCart(product("p1", 10))
	s.AddToCart(product("p2", 20))
	s.AddToCart(product("p3", 30))

	staged := s.InitiateCheckout([]string{"p1", "p3"})
	require.Len(t, staged, 2)

	s.CompleteCheckout()

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].Product.ID)

	// The success flag reads once, then resets.
	assert.True(t, s.OrderSuccess())
	assert.False(t, s.OrderSuccess())
}

func TestCheckoutWholeCart(t *testing.T) {
	s := newSession()
	s.AddToCart(product("p1", 10))
	s.AddToCart(product("p2", 20))

	staged := s.InitiateCheckout(nil)
	require.Len(t, staged, 2)

	s.CompleteCheckout()
	assert.Empty(t, s.Items())
}

func TestManagerSessionPerUID(t *testing.T) {
	m := NewManager(time.Hour)

	a := m.Session("user-a")
	b := m.Session("user-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, m.Session("user-a"))

	a.AddToCart(product("p1", 10))
	assert.Empty(t, b.Items())

	m.Drop("user-a")
	assert.Empty(t, m.Session("user-a").Items())
}

func TestManagerSweepEvictsIdleSessions(t *testing.T) {
	m := NewManager(10 * time.Millisecond)

	s := m.Session("user-a")
	s.AddToCart(product("p1", 10))

	time.Sleep(20 * time.Millisecond)
	m.sweep()

	assert.Empty(t, m.Session("user-a").Items())
}
