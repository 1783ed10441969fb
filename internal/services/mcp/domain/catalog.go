package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shopkit-demo/storefront-mcp/internal/store"
)

// SearchProductsInput represents the MCP tool input for catalog search.
// All filters are optional and conjunctive.
type SearchProductsInput struct {
	Query       string   `json:"query,omitempty" jsonschema:"search query for product name or description"`
	Category    string   `json:"category,omitempty" jsonschema:"filter by category (Electronics, Apparel, Accessories, Sports)"`
	InStockOnly bool     `json:"inStockOnly,omitempty" jsonschema:"only show products that are in stock"`
	MaxPrice    *float64 `json:"maxPrice,omitempty" jsonschema:"maximum price filter"`
	MinRating   *float64 `json:"minRating,omitempty" jsonschema:"minimum rating filter (1-5)"`
}

// GetProductInput represents the MCP tool input for a product detail lookup.
type GetProductInput struct {
	ProductID string `json:"productId" jsonschema:"the product ID (e.g. prod_001)"`
}

// ProductSummary is one catalog row in search results.
type ProductSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Category   string `json:"category"`
	Rating     string `json:"rating"`
	InStock    bool   `json:"inStock"`
	StockCount int    `json:"stockCount"`
}

// SearchProductsPayload is the search_products reply body.
type SearchProductsPayload struct {
	Count    int              `json:"count"`
	Products []ProductSummary `json:"products"`
}

// ProductDetailPayload is the get_product reply body: the full catalog entry
// with display-formatted price, rating, and availability.
type ProductDetailPayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	Currency     string `json:"currency"`
	Category     string `json:"category"`
	InStock      bool   `json:"inStock"`
	StockCount   int    `json:"stockCount"`
	ImageURL     string `json:"imageUrl"`
	Rating       string `json:"rating"`
	Reviews      int    `json:"reviews"`
	Availability string `json:"availability"`
}

// CatalogPayload is the catalog://products resource body.
type CatalogPayload struct {
	Products []ProductDetailPayload `json:"products"`
}

// SearchProductsTool declares the catalog search tool.
func SearchProductsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_products",
		Description: "Search for products by name, category, or description. Returns matching products with details.",
	}
}

// GetProductTool declares the product detail tool.
func GetProductTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_product",
		Description: "Get detailed information about a specific product by its ID.",
	}
}

// SearchProductsHandler filters the catalog with conjunctive optional
// filters. An empty filter set returns the whole catalog; zero matches is a
// success with count 0, not an error.
func SearchProductsHandler(st *store.Store) mcp.ToolHandlerFor[SearchProductsInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SearchProductsInput) (*mcp.CallToolResult, any, error) {
		matches := make([]store.Product, 0)
		for _, product := range st.Products() {
			if !matchesQuery(product, input.Query) {
				continue
			}
			if input.Category != "" && !strings.EqualFold(product.Category, input.Category) {
				continue
			}
			if input.InStockOnly && !product.InStock {
				continue
			}
			if input.MaxPrice != nil && product.Price > *input.MaxPrice {
				continue
			}
			if input.MinRating != nil && product.Rating < *input.MinRating {
				continue
			}
			matches = append(matches, product)
		}

		payload := SearchProductsPayload{
			Count:    len(matches),
			Products: make([]ProductSummary, 0, len(matches)),
		}
		for _, product := range matches {
			payload.Products = append(payload.Products, ProductSummary{
				ID:         product.ID,
				Name:       product.Name,
				Price:      formatPrice(product.Price),
				Category:   product.Category,
				Rating:     formatRating(product.Rating, product.Reviews),
				InStock:    product.InStock,
				StockCount: product.StockCount,
			})
		}

		result, err := successResult(payload)
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}
}

// GetProductHandler returns the full catalog entry for one product id.
func GetProductHandler(st *store.Store) mcp.ToolHandlerFor[GetProductInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetProductInput) (*mcp.CallToolResult, any, error) {
		product, ok := st.Product(input.ProductID)
		if !ok {
			return errorResult(fmt.Sprintf("Product not found: %s", input.ProductID)), nil, nil
		}

		result, err := successResult(productDetail(product))
		if err != nil {
			return nil, nil, err
		}
		return result, nil, nil
	}
}

// CatalogResource declares the readable full-catalog resource.
func CatalogResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         "catalog://products",
		Name:        "product-catalog",
		Description: "The full product catalog with current stock counts.",
		MIMEType:    "application/json",
	}
}

// CatalogResourceHandler returns the whole catalog as one JSON document so
// agents can hydrate without issuing per-product tool calls.
func CatalogResourceHandler(st *store.Store) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		uri := CatalogResource().URI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		products := st.Products()
		payload := CatalogPayload{Products: make([]ProductDetailPayload, 0, len(products))}
		for _, product := range products {
			payload.Products = append(payload.Products, productDetail(product))
		}

		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal catalog: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

// matchesQuery does a case-insensitive substring match on name and
// description. An empty query matches everything.
func matchesQuery(product store.Product, query string) bool {
	if query == "" {
		return true
	}
	lower := strings.ToLower(query)
	return strings.Contains(strings.ToLower(product.Name), lower) ||
		strings.Contains(strings.ToLower(product.Description), lower)
}

func productDetail(product store.Product) ProductDetailPayload {
	availability := "Out of Stock"
	if product.InStock {
		availability = fmt.Sprintf("In Stock (%d available)", product.StockCount)
	}
	return ProductDetailPayload{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Price:        formatPrice(product.Price),
		Currency:     product.Currency,
		Category:     product.Category,
		InStock:      product.InStock,
		StockCount:   product.StockCount,
		ImageURL:     product.ImageURL,
		Rating:       formatRating(product.Rating, product.Reviews),
		Reviews:      product.Reviews,
		Availability: availability,
	}
}
