package domain

import (
	"fmt"
	"time"

	"github.com/shopkit-demo/storefront-mcp/internal/store"
)

// defaultUserID identifies the demo user that user-scoped tools fall back to
// when the caller omits userId.
const defaultUserID = "user_demo"

// statusDescriptions are the human-readable order status lines shown to
// agents alongside the raw status value.
var statusDescriptions = map[store.OrderStatus]string{
	store.OrderPending:    "Order received and awaiting processing",
	store.OrderProcessing: "Order is being prepared for shipment",
	store.OrderShipped:    "Order has been shipped and is on its way",
	store.OrderDelivered:  "Order has been delivered",
	store.OrderCancelled:  "Order has been cancelled",
}

// tierDescriptions are the human-readable membership tier lines.
var tierDescriptions = map[store.MembershipTier]string{
	store.TierFree:     "Basic membership with points earning",
	store.TierSilver:   "Enhanced membership with modest discounts",
	store.TierGold:     "Premium membership with great perks",
	store.TierPlatinum: "Top-tier membership with maximum benefits",
}

// statusDescription falls back to the raw status for values outside the
// known lifecycle.
func statusDescription(status store.OrderStatus) string {
	if description, ok := statusDescriptions[status]; ok {
		return description
	}
	return string(status)
}

func tierDescription(tier store.MembershipTier) string {
	if description, ok := tierDescriptions[tier]; ok {
		return description
	}
	return string(tier)
}

// formatPrice renders money the way the storefront UI does.
func formatPrice(value float64) string {
	return fmt.Sprintf("$%.2f", value)
}

// formatRating renders the catalog rating summary, e.g. "4.8/5 (1247 reviews)".
func formatRating(rating float64, reviews int) string {
	return fmt.Sprintf("%g/5 (%d reviews)", rating, reviews)
}

// formatTimestamp returns an RFC3339 timestamp or empty string for zero
// values so optional dates drop out of compact payloads.
func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(time.RFC3339)
}

// resolveUserID applies the demo-user default for user-scoped tools.
func resolveUserID(userID string) string {
	if userID == "" {
		return defaultUserID
	}
	return userID
}
