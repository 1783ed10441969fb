package service

import (
	"net/http"

	"github.com/shopkit-demo/storefront-mcp/internal/platform/branding"
)

// landingPage is the static page served at the root so a developer pointing
// a browser at the server sees what it is and where the MCP endpoint lives.
const landingPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>` + branding.AppName + ` MCP Server</title>
  <style>
    body { font-family: system-ui, sans-serif; max-width: 42rem; margin: 3rem auto; padding: 0 1rem; color: #1a1a1a; }
    code { background: #f2f2f2; padding: 0.15rem 0.35rem; border-radius: 4px; }
    table { border-collapse: collapse; width: 100%; }
    td, th { text-align: left; padding: 0.35rem 0.75rem 0.35rem 0; vertical-align: top; }
  </style>
</head>
<body>
  <h1>` + branding.AppName + ` MCP Server</h1>
  <p>A demo e-commerce MCP server for AI agents: product catalog, shopping
  carts, order history, and memberships over the Model Context Protocol.</p>
  <p>MCP endpoint: <code>POST /mcp</code> (streamable HTTP, stateless).
  Health: <code>GET /mcp/health</code>.</p>
  <h2>Tools</h2>
  <table>
    <tr><td><code>search_products</code></td><td>Search the catalog by name, category, or description</td></tr>
    <tr><td><code>get_product</code></td><td>Product details by id</td></tr>
    <tr><td><code>get_cart</code></td><td>Current cart contents for a user</td></tr>
    <tr><td><code>add_to_cart</code></td><td>Add a product to the cart</td></tr>
    <tr><td><code>remove_from_cart</code></td><td>Remove a product from the cart</td></tr>
    <tr><td><code>update_cart_quantity</code></td><td>Overwrite a line item quantity</td></tr>
    <tr><td><code>get_order_status</code></td><td>Order details by id</td></tr>
    <tr><td><code>list_orders</code></td><td>Order history for a user</td></tr>
    <tr><td><code>get_membership</code></td><td>Membership tier, points, and perks</td></tr>
  </table>
  <h2>Resources</h2>
  <table>
    <tr><td><code>catalog://products</code></td><td>The full product catalog as JSON</td></tr>
  </table>
</body>
</html>
`

// handleLanding serves the root page. Any other unrouted path is a 404.
func (t *HTTPTransport) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if err := t.validateLocalRequest(r); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(landingPage))
}
