package app

import (
	"context"

	"github.com/faridaasaidd/checkout-api/internal/clock"
	"github.com/faridaasaidd/checkout-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptSink receives the shipment notice and checkout receipt emitted by a
// successful checkout.
type ReceiptSink interface {
	ShipmentNotice(s domain.Shipment)
	Receipt(o domain.Order, remaining decimal.Decimal)
}

// CheckoutService runs the checkout pipeline: empty-cart gate, totals,
// balance gate, shipment manifest, debit, receipt. Any failure leaves the
// cart and ledger untouched.
type CheckoutService struct {
	clock       clock.Clock
	sink        ReceiptSink
	shippingFee decimal.Decimal
}

var defaultShippingFee = decimal.NewFromInt(30)

func NewCheckoutService(clk clock.Clock, sink ReceiptSink, opts ...CheckoutServiceOption) *CheckoutService {
	svc := &CheckoutService{
		clock:       clk,
		sink:        sink,
		shippingFee: defaultShippingFee,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type CheckoutServiceOption func(*CheckoutService)

// WithShippingFee overrides the default flat shipping fee.
func WithShippingFee(fee decimal.Decimal) CheckoutServiceOption {
	return func(s *CheckoutService) {
		if !fee.IsNegative() {
			s.shippingFee = fee
		}
	}
}

// ShippingFee returns the flat fee applied to every checkout.
func (s *CheckoutService) ShippingFee() decimal.Decimal {
	return s.shippingFee
}

type CheckoutResult struct {
	Order   domain.Order
	Balance decimal.Decimal
}

func (s *CheckoutService) Checkout(ctx context.Context, cart *domain.Cart, ledger *domain.Ledger) (CheckoutResult, error) {
	if cart.Empty() {
		return CheckoutResult{}, domain.ErrEmptyCart
	}

	lines := cart.Lines()
	receipts := make([]domain.LineReceipt, 0, len(lines))
	subtotal := decimal.Zero
	for _, line := range lines {
		lineTotal := line.Total()
		receipts = append(receipts, domain.LineReceipt{
			Name:     line.Product.Name,
			Quantity: line.Quantity,
			Total:    lineTotal,
		})
		subtotal = subtotal.Add(lineTotal)
	}
	total := subtotal.Add(s.shippingFee)

	balance := ledger.Balance()
	if total.GreaterThan(balance) {
		return CheckoutResult{}, &domain.InsufficientBalanceError{Total: total, Balance: balance}
	}

	order := domain.Order{
		ID:          uuid.NewString(),
		Lines:       receipts,
		Subtotal:    subtotal,
		ShippingFee: s.shippingFee,
		Total:       total,
		Shipment:    domain.BuildShipment(lines),
		CreatedAt:   s.clock.Now(),
	}

	if !order.Shipment.Empty() {
		s.sink.ShipmentNotice(order.Shipment)
	}

	if err := ledger.Debit(total); err != nil {
		return CheckoutResult{}, err
	}
	remaining := ledger.Balance()
	s.sink.Receipt(order, remaining)

	return CheckoutResult{Order: order, Balance: remaining}, nil
}
