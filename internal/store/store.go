// Package store owns the in-memory catalog, cart, order, and membership
// collections behind the MCP tool surface.
//
// The store holds no business rules: handlers decide whether a product may be
// added to a cart; the store only applies mutations. Every operation runs
// inside a single critical section, so cart read-modify-write sequences are
// serialized without per-caller coordination. Returned entities are copies
// and never alias internal state.
package store

import (
	"sync"
	"time"
)

// Store is the in-memory owner of all domain collections. Construct one per
// process (or per test fixture) and inject it into the tool handlers.
type Store struct {
	mu sync.Mutex

	products    []Product
	productByID map[string]int
	carts       map[string]*Cart
	orders      []Order
	memberships map[string]Membership
	memberIDs   []string

	now func() time.Time
}

// New returns a store seeded with the demo catalog, orders, and memberships.
func New() *Store {
	return newStore(time.Now)
}

// newStore wires the clock separately so tests can pin timestamps.
func newStore(now func() time.Time) *Store {
	s := &Store{
		productByID: make(map[string]int),
		carts:       make(map[string]*Cart),
		memberships: make(map[string]Membership),
		now:         now,
	}
	s.seed()
	return s
}

// Products returns the full catalog snapshot in declaration order.
func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Product returns the catalog entry for id.
func (s *Store) Product(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.productByID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[idx], true
}

// GetOrCreateCart returns the cart for userID, creating an empty one with
// the deterministic id "cart_<userID>" on first access. Calling it twice
// without an intervening mutation returns the same cart state.
func (s *Store) GetOrCreateCart(userID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyCart(s.cart(userID))
}

// AddCartItem adds quantity of productID to the user's cart. An existing
// line item is incremented; otherwise a new item is appended with AddedAt set
// to now. The product id is not validated here: existence and stock checks
// belong to the tool handler, which must reject before mutating.
func (s *Store) AddCartItem(userID, productID string, quantity int) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(userID)
	now := s.now()
	if item := findItem(cart, productID); item != nil {
		item.Quantity += quantity
	} else {
		cart.Items = append(cart.Items, CartItem{
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   now,
		})
	}
	cart.UpdatedAt = now
	return copyCart(cart)
}

// RemoveCartItem deletes the matching line item if present. Removing an
// absent item is a no-op, not an error. UpdatedAt is refreshed either way.
func (s *Store) RemoveCartItem(userID, productID string) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.removeItem(userID, productID)
	return copyCart(cart)
}

// SetCartItemQuantity overwrites the quantity of an existing line item.
// A quantity of zero or less delegates to removal. Setting a quantity on a
// product that is not in the cart is a no-op: only AddCartItem creates line
// items.
func (s *Store) SetCartItemQuantity(userID, productID string, quantity int) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(userID)
	item := findItem(cart, productID)
	if item == nil {
		return copyCart(cart)
	}
	if quantity <= 0 {
		return copyCart(s.removeItem(userID, productID))
	}
	item.Quantity = quantity
	cart.UpdatedAt = s.now()
	return copyCart(cart)
}

// Order returns the order with the given id.
func (s *Store) Order(id string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID == id {
			return copyOrder(order), true
		}
	}
	return Order{}, false
}

// OrdersForUser returns the user's orders in seed order.
func (s *Store) OrdersForUser(userID string) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Order
	for _, order := range s.orders {
		if order.UserID == userID {
			out = append(out, copyOrder(order))
		}
	}
	return out
}

// Membership returns the membership record for userID.
func (s *Store) Membership(userID string) (Membership, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	membership, ok := s.memberships[userID]
	if !ok {
		return Membership{}, false
	}
	return copyMembership(membership), true
}

// MembershipUserIDs returns the user ids that hold a membership, in seed
// order. The not-found suggestion payload is built from this list.
func (s *Store) MembershipUserIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.memberIDs))
	copy(out, s.memberIDs)
	return out
}

// cart returns the live cart for userID, creating it if needed. Callers must
// hold s.mu.
func (s *Store) cart(userID string) *Cart {
	if cart, ok := s.carts[userID]; ok {
		return cart
	}
	now := s.now()
	cart := &Cart{
		ID:        "cart_" + userID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.carts[userID] = cart
	return cart
}

// removeItem drops productID from the user's cart. Callers must hold s.mu.
func (s *Store) removeItem(userID, productID string) *Cart {
	cart := s.cart(userID)
	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	cart.UpdatedAt = s.now()
	return cart
}

func findItem(cart *Cart, productID string) *CartItem {
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			return &cart.Items[i]
		}
	}
	return nil
}

func copyCart(cart *Cart) Cart {
	out := *cart
	out.Items = make([]CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return out
}

func copyOrder(order Order) Order {
	items := make([]OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}

func copyMembership(membership Membership) Membership {
	benefits := make([]string, len(membership.Benefits))
	copy(benefits, membership.Benefits)
	membership.Benefits = benefits
	return membership
}
