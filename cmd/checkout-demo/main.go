// Command checkout-demo drives the checkout pipeline through a set of fixed
// scenarios against an in-memory cart and ledger, printing shipment notices
// and receipts to stdout.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/faridaasaidd/checkout-api/internal/app"
	"github.com/faridaasaidd/checkout-api/internal/clock"
	"github.com/faridaasaidd/checkout-api/internal/domain"
	"github.com/faridaasaidd/checkout-api/internal/receipt"
	"github.com/shopspring/decimal"
)

func main() {
	clk := clock.NewSystem()
	today := clk.Now()
	futureDate := today.AddDate(0, 0, 30).Format(time.DateOnly)

	checkout := app.NewCheckoutService(clk, receipt.NewPrinter(os.Stdout))

	scenarios := []struct {
		name    string
		balance int64
		run     func(cart *domain.Cart) error
	}{
		{
			name:    "Normal purchase",
			balance: 600,
			run: func(cart *domain.Cart) error {
				cheese := product("Cheese", "100", 5, true, true, "0.2", futureDate)
				biscuits := product("Biscuits", "150", 3, true, true, "0.7", futureDate)
				scratchCard := product("Scratch Card", "50", 10, false, false, "0", "")
				if err := cart.Add(cheese, 2, today); err != nil {
					return err
				}
				if err := cart.Add(biscuits, 1, today); err != nil {
					return err
				}
				return cart.Add(scratchCard, 1, today)
			},
		},
		{
			name:    "Expired product",
			balance: 500,
			run: func(cart *domain.Cart) error {
				milk := product("Milk", "50", 5, true, true, "1", "2020-01-01")
				return cart.Add(milk, 1, today)
			},
		},
		{
			name:    "Quantity above stock",
			balance: 500,
			run: func(cart *domain.Cart) error {
				chips := product("Chips", "20", 3, false, false, "0", "")
				return cart.Add(chips, 5, today)
			},
		},
		{
			name:    "Insufficient balance",
			balance: 50,
			run: func(cart *domain.Cart) error {
				tv := product("TV", "300", 3, false, true, "5", "")
				return cart.Add(tv, 1, today)
			},
		},
		{
			name:    "Empty cart",
			balance: 500,
			run:     func(cart *domain.Cart) error { return nil },
		},
		{
			name:    "Only non-shippable items",
			balance: 100,
			run: func(cart *domain.Cart) error {
				scratch := product("Scratch Card", "50", 10, false, false, "0", "")
				return cart.Add(scratch, 1, today)
			},
		},
		{
			name:    "All items shippable",
			balance: 800,
			run: func(cart *domain.Cart) error {
				phone := product("Phone", "200", 3, false, true, "0.4", "")
				speaker := product("Speaker", "150", 2, false, true, "1", "")
				if err := cart.Add(phone, 2, today); err != nil {
					return err
				}
				return cart.Add(speaker, 1, today)
			},
		},
		{
			name:    "Exact balance match",
			balance: 230,
			run: func(cart *domain.Cart) error {
				bag := product("Laptop Bag", "200", 5, false, true, "0.8", "")
				return cart.Add(bag, 1, today)
			},
		},
	}

	ctx := context.Background()
	for i, sc := range scenarios {
		fmt.Printf("===== Scenario %d: %s =====\n", i+1, sc.name)

		cart := domain.NewCart()
		ledger := domain.NewLedger(decimal.NewFromInt(sc.balance))

		err := sc.run(cart)
		if err == nil {
			_, err = checkout.Checkout(ctx, cart, ledger)
		}
		if err != nil {
			fmt.Printf("Checkout failed: %s\n", err)
		} else {
			fmt.Println("Checkout passed.")
		}
		fmt.Println("------------------------------------------------------")
	}
}

func product(name, price string, stock int, expirable, shippable bool, weight, expiryDate string) domain.Product {
	return domain.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		Stock:      stock,
		Expirable:  expirable,
		Shippable:  shippable,
		Weight:     decimal.RequireFromString(weight),
		ExpiryDate: expiryDate,
	}
}
