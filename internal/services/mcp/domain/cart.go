package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shopkit-demo/storefront-mcp/internal/store"
)

// GetCartInput represents the MCP tool input for reading a cart.
type GetCartInput struct {
	UserID string `json:"userId,omitempty" jsonschema:"user ID (defaults to the demo user)"`
}

// AddToCartInput represents the MCP tool input for adding a product.
type AddToCartInput struct {
	ProductID string `json:"productId" jsonschema:"the product ID to add"`
	Quantity  *int   `json:"quantity,omitempty" jsonschema:"quantity to add (defaults to 1)"`
	UserID    string `json:"userId,omitempty" jsonschema:"user ID (defaults to the demo user)"`
}

// RemoveFromCartInput represents the MCP tool input for removing a product.
type RemoveFromCartInput struct {
	ProductID string `json:"productId" jsonschema:"the product ID to remove"`
	UserID    string `json:"userId,omitempty" jsonschema:"user ID (defaults to the demo user)"`
}

// UpdateCartQuantityInput represents the MCP tool input for overwriting a
// line item quantity.
type UpdateCartQuantityInput struct {
	ProductID string `json:"productId" jsonschema:"the product ID to update"`
	Quantity  *int   `json:"quantity" jsonschema:"new quantity (0 removes the item)"`
	UserID    string `json:"userId,omitempty" jsonschema:"user ID (defaults to the demo user)"`
}

// CartItemProduct enriches a cart line with current catalog data.
type CartItemProduct struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Subtotal string `json:"subtotal"`
}

// CartItemPayload is one line in the get_cart reply. Product is null when the
// catalog no longer has the referenced id.
type CartItemPayload struct {
	ProductID string           `json:"productId"`
	Quantity  int              `json:"quantity"`
	AddedAt   string           `json:"addedAt"`
	Product   *CartItemProduct `json:"product"`
}

// CartPayload is the get_cart reply body.
type CartPayload struct {
	CartID    string            `json:"cartId"`
	ItemCount int               `json:"itemCount"`
	Items     []CartItemPayload `json:"items"`
	Total     string            `json:"total"`
	UpdatedAt string            `json:"updatedAt"`
}

// CartMutationPayload is the reply body shared by all cart mutations.
// CartItemCount counts distinct line items, not quantity units.
type CartMutationPayload struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	CartItemCount int    `json:"cartItemCount"`
}

// GetCartTool declares the cart read tool.
func GetCartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_cart",
		Description: "Retrieve the current shopping cart contents for a user.",
	}
}

// AddToCartTool declares the cart add tool.
func AddToCartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_to_cart",
		Description: "Add a product to the shopping cart.",
	}
}

// RemoveFromCartTool declares the cart remove tool.
func RemoveFromCartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "remove_from_cart",
		Description: "Remove a product from the shopping cart.",
	}
}

// UpdateCartQuantityTool declares the cart quantity tool.
func UpdateCartQuantityTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_cart_quantity",
		Description: "Update the quantity of a product in the cart.",
	}
}

// GetCartHandler returns the cart enriched with current catalog prices. The
// total only counts lines whose product still resolves.
func GetCartHandler(st *store.Store) mcp.ToolHandlerFor[GetCartInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetCartInput) (*mcp.CallToolResult, any, error) {
		cart := st.GetOrCreateCart(resolveUserID(input.UserID))

		result, err := successResult(cartPayload(st, cart))
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}
}

// AddToCartHandler validates product existence and stock before mutating, so
// a rejected call leaves the cart untouched.
func AddToCartHandler(st *store.Store) mcp.ToolHandlerFor[AddToCartInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddToCartInput) (*mcp.CallToolResult, any, error) {
		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		if quantity < 1 {
			return errorResult("quantity must be at least 1"), nil, nil
		}

		product, ok := st.Product(input.ProductID)
		if !ok {
			return errorResult(fmt.Sprintf("Product not found: %s", input.ProductID)), nil, nil
		}
		if !product.InStock {
			return errorResult(fmt.Sprintf("Product is out of stock: %s", product.Name)), nil, nil
		}

		cart := st.AddCartItem(resolveUserID(input.UserID), input.ProductID, quantity)

		result, err := successResult(CartMutationPayload{
			Success:       true,
			Message:       fmt.Sprintf("Added %dx %q to cart", quantity, product.Name),
			CartItemCount: len(cart.Items),
		})
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}
}

// RemoveFromCartHandler removes a line item. Removing an id that is not in
// the cart still succeeds; the message names the product when the catalog
// knows it and falls back to the raw id.
func RemoveFromCartHandler(st *store.Store) mcp.ToolHandlerFor[RemoveFromCartInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RemoveFromCartInput) (*mcp.CallToolResult, any, error) {
		cart := st.RemoveCartItem(resolveUserID(input.UserID), input.ProductID)

		result, err := successResult(CartMutationPayload{
			Success:       true,
			Message:       fmt.Sprintf("Removed %q from cart", productDisplayName(st, input.ProductID)),
			CartItemCount: len(cart.Items),
		})
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}
}

// UpdateCartQuantityHandler overwrites a line item quantity. Zero removes the
// line; updating a product that is not in the cart never creates one.
func UpdateCartQuantityHandler(st *store.Store) mcp.ToolHandlerFor[UpdateCartQuantityInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateCartQuantityInput) (*mcp.CallToolResult, any, error) {
		if input.Quantity == nil {
			return errorResult("quantity is required"), nil, nil
		}
		quantity := *input.Quantity
		if quantity < 0 {
			return errorResult("quantity must be at least 0"), nil, nil
		}

		cart := st.SetCartItemQuantity(resolveUserID(input.UserID), input.ProductID, quantity)

		name := productDisplayName(st, input.ProductID)
		message := fmt.Sprintf("Removed %q from cart", name)
		if quantity > 0 {
			message = fmt.Sprintf("Updated %q quantity to %d", name, quantity)
		}

		result, err := successResult(CartMutationPayload{
			Success:       true,
			Message:       message,
			CartItemCount: len(cart.Items),
		})
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}
}

func cartPayload(st *store.Store, cart store.Cart) CartPayload {
	payload := CartPayload{
		CartID:    cart.ID,
		ItemCount: len(cart.Items),
		Items:     make([]CartItemPayload, 0, len(cart.Items)),
		UpdatedAt: formatTimestamp(cart.UpdatedAt),
	}

	var total float64
	for _, item := range cart.Items {
		line := CartItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			AddedAt:   formatTimestamp(item.AddedAt),
		}
		if product, ok := st.Product(item.ProductID); ok {
			subtotal := product.Price * float64(item.Quantity)
			line.Product = &CartItemProduct{
				Name:     product.Name,
				Price:    formatPrice(product.Price),
				Subtotal: formatPrice(subtotal),
			}
			total += subtotal
		}
		payload.Items = append(payload.Items, line)
	}

	payload.Total = formatPrice(total)
	return payload
}

func productDisplayName(st *store.Store, productID string) string {
	if product, ok := st.Product(productID); ok {
		return product.Name
	}
	return productID
}
