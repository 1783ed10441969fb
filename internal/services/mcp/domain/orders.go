package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shopkit-demo/storefront-mcp/internal/store"
)

// GetOrderStatusInput represents the MCP tool input for an order lookup.
type GetOrderStatusInput struct {
	OrderID string `json:"orderId" jsonschema:"the order ID (e.g. ord_001)"`
}

// ListOrdersInput represents the MCP tool input for listing a user's orders.
type ListOrdersInput struct {
	UserID string `json:"userId,omitempty" jsonschema:"user ID (defaults to the demo user)"`
}

// OrderItemPayload is one purchased line in the get_order_status reply,
// enriched with the current catalog name.
type OrderItemPayload struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	PriceAtPurchase string `json:"priceAtPurchase"`
	ProductName     string `json:"productName"`
}

// OrderDetailPayload is the get_order_status reply body.
type OrderDetailPayload struct {
	ID                string             `json:"id"`
	UserID            string             `json:"userId"`
	Items             []OrderItemPayload `json:"items"`
	Status            string             `json:"status"`
	Total             string             `json:"total"`
	ShippingAddress   string             `json:"shippingAddress"`
	CreatedAt         string             `json:"createdAt"`
	EstimatedDelivery string             `json:"estimatedDelivery"`
	TrackingNumber    string             `json:"trackingNumber,omitempty"`
	StatusDescription string             `json:"statusDescription"`
}

// OrderSummaryPayload is one row in the list_orders reply.
type OrderSummaryPayload struct {
	OrderID           string `json:"orderId"`
	Status            string `json:"status"`
	StatusDescription string `json:"statusDescription"`
	ItemCount         int    `json:"itemCount"`
	Total             string `json:"total"`
	CreatedAt         string `json:"createdAt"`
	EstimatedDelivery string `json:"estimatedDelivery"`
}

// ListOrdersPayload is the list_orders reply body.
type ListOrdersPayload struct {
	OrderCount int                   `json:"orderCount"`
	Orders     []OrderSummaryPayload `json:"orders"`
}

// GetOrderStatusTool declares the order lookup tool.
func GetOrderStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_order_status",
		Description: "Check the status of a specific order by order ID.",
	}
}

// ListOrdersTool declares the order listing tool.
func ListOrdersTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_orders",
		Description: "List all orders for a user.",
	}
}

// GetOrderStatusHandler returns one order with display formatting and a
// status description. Line items carry the current catalog name; a product
// that has left the catalog is reported as "Unknown Product".
func GetOrderStatusHandler(st *store.Store) mcp.ToolHandlerFor[GetOrderStatusInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetOrderStatusInput) (*mcp.CallToolResult, any, error) {
		order, ok := st.Order(input.OrderID)
		if !ok {
			return errorResult(fmt.Sprintf("Order not found: %s", input.OrderID)), nil, nil
		}

		payload := OrderDetailPayload{
			ID:                order.ID,
			UserID:            order.UserID,
			Items:             make([]OrderItemPayload, 0, len(order.Items)),
			Status:            string(order.Status),
			Total:             formatPrice(order.Total),
			ShippingAddress:   order.ShippingAddress,
			CreatedAt:         formatTimestamp(order.CreatedAt),
			EstimatedDelivery: formatTimestamp(order.EstimatedDelivery),
			TrackingNumber:    order.TrackingNumber,
			StatusDescription: statusDescription(order.Status),
		}
		for _, item := range order.Items {
			name := "Unknown Product"
			if product, ok := st.Product(item.ProductID); ok {
				name = product.Name
			}
			payload.Items = append(payload.Items, OrderItemPayload{
				ProductID:       item.ProductID,
				Quantity:        item.Quantity,
				PriceAtPurchase: formatPrice(item.PriceAtPurchase),
				ProductName:     name,
			})
		}

		result, err := successResult(payload)
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}
}

// ListOrdersHandler returns order summaries for a user. A user with no
// orders gets an empty list, not an error.
func ListOrdersHandler(st *store.Store) mcp.ToolHandlerFor[ListOrdersInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListOrdersInput) (*mcp.CallToolResult, any, error) {
		orders := st.OrdersForUser(resolveUserID(input.UserID))

		payload := ListOrdersPayload{
			OrderCount: len(orders),
			Orders:     make([]OrderSummaryPayload, 0, len(orders)),
		}
		for _, order := range orders {
			payload.Orders = append(payload.Orders, OrderSummaryPayload{
				OrderID:           order.ID,
				Status:            string(order.Status),
				StatusDescription: statusDescription(order.Status),
				ItemCount:         len(order.Items),
				Total:             formatPrice(order.Total),
				CreatedAt:         formatTimestamp(order.CreatedAt),
				EstimatedDelivery: formatTimestamp(order.EstimatedDelivery),
			})
		}

		result, err := successResult(payload)
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}
}
