package cart

import (
	"time"

	"farmtotable-be/internal/product"
)

// CartLine is one (user, product, quantity) association pending purchase.
type CartLine struct {
	ID        uint      `json:"id"`
	CartID    uint      `json:"cart_id"`
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Product *product.Product `json:"product,omitempty"`
}
