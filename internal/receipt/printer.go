// Package receipt renders shipment notices and checkout receipts as
// line-oriented text.
package receipt

import (
	"fmt"
	"io"

	"github.com/faridaasaidd/checkout-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Printer writes notices and receipts to a single output stream.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) ShipmentNotice(s domain.Shipment) {
	if s.Empty() {
		return
	}
	fmt.Fprintln(p.w, "** Shipment notice **")
	for _, line := range s.Lines {
		fmt.Fprintf(p.w, "%dx %s %skg\n", line.Quantity, line.Name, line.TotalWeight)
	}
	fmt.Fprintf(p.w, "Total package weight %skg\n", s.TotalWeight)
}

func (p *Printer) Receipt(o domain.Order, remaining decimal.Decimal) {
	fmt.Fprintln(p.w, "** Checkout receipt **")
	for _, line := range o.Lines {
		fmt.Fprintf(p.w, "%dx %s %s\n", line.Quantity, line.Name, line.Total)
	}
	fmt.Fprintln(p.w, "----------------------")
	fmt.Fprintf(p.w, "Subtotal %s\n", o.Subtotal)
	fmt.Fprintf(p.w, "Shipping %s\n", o.ShippingFee)
	fmt.Fprintf(p.w, "Amount %s\n", o.Total)
	fmt.Fprintf(p.w, "Customer Remaining Balance %s\n", remaining)
}

// Discard is a sink that drops all output, for callers that surface orders
// some other way.
type Discard struct{}

func (Discard) ShipmentNotice(domain.Shipment)        {}
func (Discard) Receipt(domain.Order, decimal.Decimal) {}
