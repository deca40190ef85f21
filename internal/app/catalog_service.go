package app

import (
	"context"
	"time"

	"github.com/faridaasaidd/checkout-api/internal/clock"
	"github.com/faridaasaidd/checkout-api/internal/domain"
	"github.com/google/uuid"
)

type CatalogRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id string) (domain.Product, error)
}

// CatalogService manages the product catalog, the reference data checkouts
// draw from.
type CatalogService struct {
	repo  CatalogRepository
	clock clock.Clock
}

func NewCatalogService(repo CatalogRepository, clk clock.Clock) *CatalogService {
	return &CatalogService{
		repo:  repo,
		clock: clk,
	}
}

type CreateProductInput struct {
	Name       string
	Price      string
	Stock      int
	Expirable  bool
	Shippable  bool
	Weight     string
	ExpiryDate string
}

func (s *CatalogService) CreateProduct(ctx context.Context, in CreateProductInput) (domain.Product, error) {
	if in.Name == "" {
		return domain.Product{}, domain.ErrProductNameRequired
	}
	price, err := parsePositiveDecimal(in.Price)
	if err != nil {
		return domain.Product{}, domain.ErrInvalidPrice
	}
	if in.Stock < 0 {
		return domain.Product{}, domain.ErrInvalidStock
	}
	weight, err := parseNonNegativeDecimal(in.Weight)
	if err != nil {
		return domain.Product{}, domain.ErrInvalidWeight
	}
	if in.Expirable {
		if _, err := time.Parse(time.DateOnly, in.ExpiryDate); err != nil {
			return domain.Product{}, domain.ErrExpiryDateRequired
		}
	}

	product := domain.Product{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Price:      price,
		Stock:      in.Stock,
		Expirable:  in.Expirable,
		Shippable:  in.Shippable,
		Weight:     weight,
		ExpiryDate: in.ExpiryDate,
		CreatedAt:  s.clock.Now(),
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return domain.Product{}, err
	}
	return product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, domain.ErrInvalidID
	}
	return s.repo.GetProductByID(ctx, id)
}
