package app

import (
	"context"

	"github.com/faridaasaidd/checkout-api/internal/clock"
	"github.com/faridaasaidd/checkout-api/internal/domain"
)

// ProductGetter is the minimal catalog access the cart service needs.
type ProductGetter interface {
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
}

// CartService resolves catalog products and adds them to a cart. Stock and
// expiry checks happen here, at add time; checkout does not repeat them.
type CartService struct {
	catalog ProductGetter
	clock   clock.Clock
}

func NewCartService(catalog ProductGetter, clk clock.Clock) *CartService {
	return &CartService{
		catalog: catalog,
		clock:   clk,
	}
}

type AddItemInput struct {
	ProductID string
	Quantity  int
}

func (s *CartService) AddItem(ctx context.Context, cart *domain.Cart, in AddItemInput) (domain.CartLine, error) {
	if in.ProductID == "" {
		return domain.CartLine{}, domain.ErrInvalidID
	}
	if in.Quantity <= 0 {
		return domain.CartLine{}, domain.ErrInvalidQuantity
	}

	product, err := s.catalog.GetProductByID(ctx, in.ProductID)
	if err != nil {
		return domain.CartLine{}, err
	}

	if err := cart.Add(product, in.Quantity, s.clock.Now()); err != nil {
		return domain.CartLine{}, err
	}
	return domain.CartLine{Product: product, Quantity: in.Quantity}, nil
}
