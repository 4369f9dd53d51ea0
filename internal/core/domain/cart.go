package domain

import "time"

// Cart owner kinds. A cart belongs either to a registered user (key = user
// id) or to a guest session (key = guest hash); never both.
const (
	CartOwnerUser  = "user"
	CartOwnerGuest = "guest"
)

// CartItem is one product line inside a cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Cart is a shopping cart resolved from the request identity. The auth core
// never sees this type; ownership resolution happens downstream of the
// interceptors.
type Cart struct {
	ID        string     `json:"id"`
	OwnerKind string     `json:"-"`
	OwnerKey  string     `json:"-"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
}
