package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrOverdraft            = errors.New("debit exceeds balance")
	ErrProductNotFound      = errors.New("product not found")
	ErrProductNameRequired  = errors.New("product name required")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrInvalidStock         = errors.New("invalid stock")
	ErrInvalidWeight        = errors.New("invalid weight")
	ErrExpiryDateRequired   = errors.New("expiry date required for expirable product")
	ErrProductAlreadyExists = errors.New("product already exists")
	ErrInvalidID            = errors.New("invalid id")
)

// InsufficientStockError reports an add with a quantity above the product's
// available stock.
type InsufficientStockError struct {
	Product string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("invalid quantity for product: %s", e.Product)
}

// ExpiredProductError reports an add of an expirable product past its
// expiry date.
type ExpiredProductError struct {
	Product string
}

func (e *ExpiredProductError) Error() string {
	return fmt.Sprintf("%s is expired", e.Product)
}

// InsufficientBalanceError reports a checkout whose total exceeds the
// customer balance. It carries both figures so callers can surface them.
type InsufficientBalanceError struct {
	Total   decimal.Decimal
	Balance decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("total %s is greater than balance %s", e.Total, e.Balance)
}
