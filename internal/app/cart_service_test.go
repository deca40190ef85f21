package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/faridaasaidd/checkout-api/internal/clock"
	"github.com/faridaasaidd/checkout-api/internal/domain"
	"github.com/shopspring/decimal"
)

type fakeCatalog struct {
	products map[string]domain.Product
}

func (f *fakeCatalog) GetProductByID(_ context.Context, id string) (domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

func TestCartService_AddItem(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)

	cheese := domain.Product{
		ID: "prod-1", Name: "Cheese", Price: decimal.NewFromInt(100), Stock: 5,
		Expirable: true, Shippable: true,
		Weight: decimal.RequireFromString("0.2"), ExpiryDate: "2025-08-01",
	}
	expiredMilk := domain.Product{
		ID: "prod-2", Name: "Milk", Price: decimal.NewFromInt(50), Stock: 5,
		Expirable: true, ExpiryDate: "2020-01-01",
	}

	makeSvc := func() *CartService {
		catalog := &fakeCatalog{products: map[string]domain.Product{
			cheese.ID:      cheese,
			expiredMilk.ID: expiredMilk,
		}}
		return NewCartService(catalog, clock.NewFixed(now))
	}

	t.Run("adds resolved product to cart", func(t *testing.T) {
		t.Parallel()
		svc := makeSvc()
		cart := domain.NewCart()

		line, err := svc.AddItem(context.Background(), cart, AddItemInput{ProductID: "prod-1", Quantity: 2})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if line.Product.Name != "Cheese" || line.Quantity != 2 {
			t.Fatalf("unexpected line %+v", line)
		}
		if cart.Len() != 1 {
			t.Fatalf("expected 1 cart line, got %d", cart.Len())
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		t.Parallel()
		svc := makeSvc()
		cart := domain.NewCart()

		_, err := svc.AddItem(context.Background(), cart, AddItemInput{ProductID: "missing", Quantity: 1})
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if !cart.Empty() {
			t.Fatalf("expected cart unchanged")
		}
	})

	t.Run("missing product id", func(t *testing.T) {
		t.Parallel()
		svc := makeSvc()

		_, err := svc.AddItem(context.Background(), domain.NewCart(), AddItemInput{Quantity: 1})
		if !errors.Is(err, domain.ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		t.Parallel()
		svc := makeSvc()

		_, err := svc.AddItem(context.Background(), domain.NewCart(), AddItemInput{ProductID: "prod-1", Quantity: 0})
		if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("quantity above stock", func(t *testing.T) {
		t.Parallel()
		svc := makeSvc()
		cart := domain.NewCart()

		_, err := svc.AddItem(context.Background(), cart, AddItemInput{ProductID: "prod-1", Quantity: 6})
		var stockErr *domain.InsufficientStockError
		if !errors.As(err, &stockErr) {
			t.Fatalf("expected InsufficientStockError, got %v", err)
		}
		if !cart.Empty() {
			t.Fatalf("expected cart unchanged")
		}
	})

	t.Run("expired product", func(t *testing.T) {
		t.Parallel()
		svc := makeSvc()
		cart := domain.NewCart()

		_, err := svc.AddItem(context.Background(), cart, AddItemInput{ProductID: "prod-2", Quantity: 1})
		var expiredErr *domain.ExpiredProductError
		if !errors.As(err, &expiredErr) {
			t.Fatalf("expected ExpiredProductError, got %v", err)
		}
		if !cart.Empty() {
			t.Fatalf("expected cart unchanged")
		}
	})
}
