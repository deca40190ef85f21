package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one requested (product, quantity) entry. Lines are owned by
// their cart and only ever appended.
type CartLine struct {
	Product  Product
	Quantity int
}

// Total returns the line price, unit price times quantity.
func (l CartLine) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates lines for a single customer in insertion order.
// Stock and expiry are validated when a line is added and not re-checked at
// checkout time.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add validates the request against the product's stock and expiry date and
// appends a line. The cart is left untouched on any failure.
func (c *Cart) Add(p Product, quantity int, today time.Time) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > p.Stock {
		return &InsufficientStockError{Product: p.Name}
	}
	if p.Expired(today) {
		return &ExpiredProductError{Product: p.Name}
	}
	c.lines = append(c.lines, CartLine{Product: p, Quantity: quantity})
	return nil
}

// Lines returns the cart's lines in insertion order. The returned slice is
// shared; callers must not mutate it.
func (c *Cart) Lines() []CartLine {
	return c.lines
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}
