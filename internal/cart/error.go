package cart

import "errors"

var (
	ErrCartNotFound         = errors.New("shopping cart not found")
	ErrLineNotFound         = errors.New("product not found in the cart")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidQuantity      = errors.New("quantity must be greater than zero")
	ErrQuantityExceedsStock = errors.New("requested quantity exceeds available quantity")
)
