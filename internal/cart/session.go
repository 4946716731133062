package cart

import (
	"sync"
	"time"

	"clearx/internal/domain/entity"
)

// Item is a product with a quantity counter. A session holds at most one
// Item per product id; quantity never drops below 1 (anything lower removes
// the line).
type Item struct {
	Product  entity.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

func (i Item) LineTotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}

// Session is one shopper's in-memory state: cart lines, wishlist toggles,
// the checkout staging area and the one-shot order-success flag. It lives
// for the lifetime of the login session, not the database.
type Session struct {
	mu            sync.Mutex
	items         []Item
	wishlist      []string
	checkoutItems []Item
	orderSuccess  bool
	lastActive    time.Time
}

func newSession() *Session {
	return &Session{
		lastActive: time.Now(),
	}
}

func (s *Session) touch() {
	s.lastActive = time.Now()
}

// AddToCart appends a new line at quantity 1, or bumps the existing line's
// quantity by 1.
func (s *Session) AddToCart(product entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, Item{Product: product, Quantity: 1})
}

func (s *Session) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.removeLocked(productID)
}

func (s *Session) removeLocked(productID string) {
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the absolute quantity for a line. Zero or negative
// removes the line. Returns false if no line matches.
func (s *Session) UpdateQuantity(productID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	for i := range s.items {
		if s.items[i].Product.ID == productID {
			if quantity <= 0 {
				s.removeLocked(productID)
			} else {
				s.items[i].Quantity = quantity
			}
			return true
		}
	}
	return false
}

func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()
	s.items = nil
}

func (s *Session) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Item(nil), s.items...)
}

func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

// ToggleWishlist flips a product id in the session wishlist and reports
// whether the id is present afterwards. Calling it twice restores the
// prior state.
func (s *Session) ToggleWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	for i, id := range s.wishlist {
		if id == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			return false
		}
	}
	s.wishlist = append(s.wishlist, productID)
	return true
}

func (s *Session) Wishlist() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.wishlist == nil {
		return []string{}
	}
	return append([]string(nil), s.wishlist...)
}

// MoveToCart moves a wishlisted product into the cart: the id leaves the
// wishlist and a cart line is added or incremented.
func (s *Session) MoveToCart(product entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	for i, id := range s.wishlist {
		if id == product.ID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			break
		}
	}

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, Item{Product: product, Quantity: 1})
}

// InitiateCheckout stages the cart lines matching the given ids. An empty
// id list stages the whole cart.
func (s *Session) InitiateCheckout(productIDs []string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if len(productIDs) == 0 {
		s.checkoutItems = append([]Item(nil), s.items...)
	} else {
		wanted := make(map[string]bool, len(productIDs))
		for _, id := range productIDs {
			wanted[id] = true
		}
		s.checkoutItems = nil
		for _, item := range s.items {
			if wanted[item.Product.ID] {
				s.checkoutItems = append(s.checkoutItems, item)
			}
		}
	}
	return append([]Item(nil), s.checkoutItems...)
}

// CompleteCheckout removes exactly the staged ids from the cart, clears the
// staging area and raises the one-shot success flag. Lines that were not
// part of the checkout are untouched.
func (s *Session) CompleteCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	purchased := make(map[string]bool, len(s.checkoutItems))
	for _, item := range s.checkoutItems {
		purchased[item.Product.ID] = true
	}

	remaining := s.items[:0]
	for _, item := range s.items {
		if !purchased[item.Product.ID] {
			remaining = append(remaining, item)
		}
	}
	s.items = remaining
	s.checkoutItems = nil
	s.orderSuccess = true
}

// OrderSuccess reports and clears the success flag; the modal that consumes
// it is shown exactly once.
func (s *Session) OrderSuccess() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	flag := s.orderSuccess
	s.orderSuccess = false
	return flag
}
