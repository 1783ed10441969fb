package store

import "time"

// Product is an immutable catalog entry. The catalog is populated at startup
// and never mutated by tools.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Currency    string
	Category    string
	InStock     bool
	StockCount  int
	ImageURL    string
	Rating      float64
	Reviews     int
}

// CartItem is a single product line in a cart. A cart holds at most one item
// per product id.
type CartItem struct {
	ProductID string
	Quantity  int
	AddedAt   time.Time
}

// Cart holds the shopping cart for one user. Carts are created lazily on
// first access and never deleted.
type Cart struct {
	ID        string
	UserID    string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderItem records a purchased product with its price frozen at purchase
// time, independent of the current catalog price.
type OrderItem struct {
	ProductID       string
	Quantity        int
	PriceAtPurchase float64
}

// Order is an immutable historical record. Orders are read-only from the
// tool surface; status comes from seed data, not from any tool.
type Order struct {
	ID                string
	UserID            string
	Items             []OrderItem
	Status            OrderStatus
	Total             float64
	ShippingAddress   string
	CreatedAt         time.Time
	EstimatedDelivery time.Time
	TrackingNumber    string
}

// MembershipTier enumerates loyalty tiers.
type MembershipTier string

const (
	TierFree     MembershipTier = "free"
	TierSilver   MembershipTier = "silver"
	TierGold     MembershipTier = "gold"
	TierPlatinum MembershipTier = "platinum"
)

// MembershipStatus enumerates membership lifecycle states.
type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipExpired   MembershipStatus = "expired"
	MembershipCancelled MembershipStatus = "cancelled"
	MembershipPaused    MembershipStatus = "paused"
)

// Membership holds loyalty program data for one user (at most one record per
// user). Read-only from the tool surface.
type Membership struct {
	UserID          string
	Tier            MembershipTier
	Status          MembershipStatus
	StartDate       time.Time
	RenewalDate     time.Time
	Benefits        []string
	PointsBalance   int
	LifetimePoints  int
	DiscountPercent int
	FreeShipping    bool
	PrioritySupport bool
}
