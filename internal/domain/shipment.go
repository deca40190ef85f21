package domain

import "github.com/shopspring/decimal"

// ShipmentLine is one manifest entry for a shippable cart line.
type ShipmentLine struct {
	Name        string
	Quantity    int
	TotalWeight decimal.Decimal
}

// Shipment is the manifest for the shippable portion of a cart. A zero-value
// Shipment (no lines) means no shipment is needed at all, which is distinct
// from a shipment whose lines happen to weigh nothing.
type Shipment struct {
	Lines       []ShipmentLine
	TotalWeight decimal.Decimal
}

func (s Shipment) Empty() bool {
	return len(s.Lines) == 0
}

// BuildShipment partitions the shippable cart lines into a manifest,
// preserving cart order. Each manifest line's weight is the product's unit
// weight times the requested quantity.
func BuildShipment(lines []CartLine) Shipment {
	var shipment Shipment
	total := decimal.Zero
	for _, line := range lines {
		if !line.Product.Shippable {
			continue
		}
		weight := line.Product.Weight.Mul(decimal.NewFromInt(int64(line.Quantity)))
		shipment.Lines = append(shipment.Lines, ShipmentLine{
			Name:        line.Product.Name,
			Quantity:    line.Quantity,
			TotalWeight: weight,
		})
		total = total.Add(weight)
	}
	shipment.TotalWeight = total
	return shipment
}
