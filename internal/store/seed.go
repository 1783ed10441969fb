package store

import "time"

// seed loads the demo catalog, orders, and memberships. Carts start empty and
// are created lazily per user.
//
// Stock flags are seeded as-is and the store does not derive InStock from
// StockCount; the two fields may diverge if seed data says so.
func (s *Store) seed() {
	s.products = []Product{
		{
			ID:          "prod_001",
			Name:        "Wireless Noise-Canceling Headphones",
			Description: "Premium over-ear headphones with active noise cancellation, 30-hour battery life, and exceptional sound quality.",
			Price:       299.99,
			Currency:    "USD",
			Category:    "Electronics",
			InStock:     true,
			StockCount:  45,
			ImageURL:    "/images/headphones.jpg",
			Rating:      4.8,
			Reviews:     1247,
		},
		{
			ID:          "prod_002",
			Name:        "Ergonomic Mechanical Keyboard",
			Description: "Split design mechanical keyboard with Cherry MX switches, RGB backlighting, and programmable macros.",
			Price:       189.99,
			Currency:    "USD",
			Category:    "Electronics",
			InStock:     true,
			StockCount:  23,
			ImageURL:    "/images/keyboard.jpg",
			Rating:      4.6,
			Reviews:     892,
		},
		{
			ID:          "prod_003",
			Name:        "Organic Cotton T-Shirt",
			Description: "Soft, breathable organic cotton t-shirt. Available in multiple colors. Sustainably sourced.",
			Price:       34.99,
			Currency:    "USD",
			Category:    "Apparel",
			InStock:     true,
			StockCount:  156,
			ImageURL:    "/images/tshirt.jpg",
			Rating:      4.4,
			Reviews:     2341,
		},
		{
			ID:          "prod_004",
			Name:        "Smart Fitness Watch",
			Description: "Advanced fitness tracker with heart rate monitoring, GPS, sleep tracking, and 7-day battery life.",
			Price:       249.99,
			Currency:    "USD",
			Category:    "Electronics",
			InStock:     true,
			StockCount:  67,
			ImageURL:    "/images/watch.jpg",
			Rating:      4.7,
			Reviews:     3156,
		},
		{
			ID:          "prod_005",
			Name:        "Minimalist Leather Wallet",
			Description: "Slim RFID-blocking leather wallet with space for 8 cards and a bill compartment.",
			Price:       59.99,
			Currency:    "USD",
			Category:    "Accessories",
			InStock:     true,
			StockCount:  89,
			ImageURL:    "/images/wallet.jpg",
			Rating:      4.5,
			Reviews:     567,
		},
		{
			ID:          "prod_006",
			Name:        "Portable Bluetooth Speaker",
			Description: "Waterproof portable speaker with 360-degree sound, 20-hour playtime, and built-in microphone.",
			Price:       79.99,
			Currency:    "USD",
			Category:    "Electronics",
			InStock:     false,
			StockCount:  0,
			ImageURL:    "/images/speaker.jpg",
			Rating:      4.3,
			Reviews:     1823,
		},
		{
			ID:          "prod_007",
			Name:        "Yoga Mat Pro",
			Description: "Extra thick eco-friendly yoga mat with alignment lines and carrying strap included.",
			Price:       68.99,
			Currency:    "USD",
			Category:    "Sports",
			InStock:     true,
			StockCount:  234,
			ImageURL:    "/images/yogamat.jpg",
			Rating:      4.9,
			Reviews:     445,
		},
		{
			ID:          "prod_008",
			Name:        "Stainless Steel Water Bottle",
			Description: "Double-walled insulated bottle keeps drinks cold 24hrs or hot 12hrs. BPA-free, 32oz capacity.",
			Price:       29.99,
			Currency:    "USD",
			Category:    "Accessories",
			InStock:     true,
			StockCount:  312,
			ImageURL:    "/images/bottle.jpg",
			Rating:      4.6,
			Reviews:     2890,
		},
	}
	for i, product := range s.products {
		s.productByID[product.ID] = i
	}

	s.orders = []Order{
		{
			ID:     "ord_001",
			UserID: "user_demo",
			Items: []OrderItem{
				{ProductID: "prod_001", Quantity: 1, PriceAtPurchase: 299.99},
				{ProductID: "prod_005", Quantity: 2, PriceAtPurchase: 59.99},
			},
			Status:            OrderShipped,
			Total:             419.97,
			ShippingAddress:   "123 Demo Street, San Francisco, CA 94102",
			CreatedAt:         date(2025, time.January, 28, 10, 30),
			EstimatedDelivery: date(2025, time.February, 5, 18, 0),
			TrackingNumber:    "1Z999AA10123456784",
		},
		{
			ID:     "ord_002",
			UserID: "user_demo",
			Items: []OrderItem{
				{ProductID: "prod_004", Quantity: 1, PriceAtPurchase: 249.99},
			},
			Status:            OrderDelivered,
			Total:             249.99,
			ShippingAddress:   "123 Demo Street, San Francisco, CA 94102",
			CreatedAt:         date(2025, time.January, 15, 14, 20),
			EstimatedDelivery: date(2025, time.January, 22, 18, 0),
			TrackingNumber:    "1Z999AA10123456785",
		},
		{
			ID:     "ord_003",
			UserID: "user_demo",
			Items: []OrderItem{
				{ProductID: "prod_003", Quantity: 3, PriceAtPurchase: 34.99},
				{ProductID: "prod_008", Quantity: 1, PriceAtPurchase: 29.99},
			},
			Status:            OrderProcessing,
			Total:             134.96,
			ShippingAddress:   "123 Demo Street, San Francisco, CA 94102",
			CreatedAt:         date(2025, time.February, 1, 9, 15),
			EstimatedDelivery: date(2025, time.February, 8, 18, 0),
		},
	}

	for _, membership := range []Membership{
		{
			UserID:      "user_demo",
			Tier:        TierGold,
			Status:      MembershipActive,
			StartDate:   date(2024, time.June, 15, 0, 0),
			RenewalDate: date(2026, time.June, 15, 0, 0),
			Benefits: []string{
				"10% discount on all orders",
				"Free standard shipping",
				"Early access to sales",
				"Priority customer support",
				"Birthday bonus points",
			},
			PointsBalance:   4250,
			LifetimePoints:  12800,
			DiscountPercent: 10,
			FreeShipping:    true,
			PrioritySupport: true,
		},
		{
			UserID:      "user_002",
			Tier:        TierPlatinum,
			Status:      MembershipActive,
			StartDate:   date(2023, time.January, 10, 0, 0),
			RenewalDate: date(2026, time.January, 10, 0, 0),
			Benefits: []string{
				"15% discount on all orders",
				"Free express shipping",
				"Early access to sales",
				"Priority customer support",
				"Birthday bonus points",
				"Exclusive member-only products",
				"Free gift wrapping",
			},
			PointsBalance:   18500,
			LifetimePoints:  54200,
			DiscountPercent: 15,
			FreeShipping:    true,
			PrioritySupport: true,
		},
		{
			UserID:      "user_003",
			Tier:        TierSilver,
			Status:      MembershipActive,
			StartDate:   date(2025, time.March, 20, 0, 0),
			RenewalDate: date(2026, time.March, 20, 0, 0),
			Benefits: []string{
				"5% discount on all orders",
				"Free standard shipping on orders over $50",
				"Member-only newsletter",
			},
			PointsBalance:   1200,
			LifetimePoints:  3400,
			DiscountPercent: 5,
		},
		{
			UserID:      "user_004",
			Tier:        TierFree,
			Status:      MembershipActive,
			StartDate:   date(2025, time.November, 1, 0, 0),
			RenewalDate: date(2026, time.November, 1, 0, 0),
			Benefits: []string{
				"Earn points on purchases",
				"Access to member deals",
			},
			PointsBalance:  150,
			LifetimePoints: 150,
		},
	} {
		s.memberships[membership.UserID] = membership
		s.memberIDs = append(s.memberIDs, membership.UserID)
	}
}

func date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}
