package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product describes a purchasable catalog item. It is reference data: the
// checkout flow never mutates it, and Stock is informational only (no
// reservation happens on add or checkout).
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Stock     int
	Expirable bool
	Shippable bool
	// Weight is the per-unit weight in kilograms; meaningful only when
	// Shippable is true, conventionally zero otherwise.
	Weight decimal.Decimal
	// ExpiryDate is a YYYY-MM-DD calendar date, empty for products that
	// never expire.
	ExpiryDate string
	CreatedAt  time.Time
}

// Expired reports whether the product's expiry date is strictly before
// today, at calendar-day granularity. Non-expirable products never expire,
// and a missing or malformed expiry date is treated as not expired.
func (p Product) Expired(today time.Time) bool {
	if !p.Expirable {
		return false
	}
	exp, err := time.Parse(time.DateOnly, p.ExpiryDate)
	if err != nil {
		return false
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return day.After(exp)
}
