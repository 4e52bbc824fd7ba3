// Package app holds the storefront services: the catalog, the cart engine and
// the order repository. Each service owns one key in the KV store and a
// single-writer lock.
package app

const (
	CatalogKey = "fantasy_books_catalog"
	CartKey    = "fantasy_books_cart"
	OrdersKey  = "fantasy_books_orders"
)

// cartKey is the storage key for a shopper session's cart.
func cartKey(session string) string {
	if session == "" {
		return CartKey
	}
	return CartKey + ":" + session
}
