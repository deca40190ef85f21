package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineReceipt is one receipt entry for a cart line.
type LineReceipt struct {
	Name     string
	Quantity int
	Total    decimal.Decimal
}

// Order is the computed result of a successful checkout. It is produced
// fresh per checkout and never persisted.
type Order struct {
	ID          string
	Lines       []LineReceipt
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
	Shipment    Shipment
	CreatedAt   time.Time
}
