package postgres

import (
	"context"
	"fmt"

	"github.com/faridaasaidd/checkout-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) CreateProduct(ctx context.Context, p domain.Product) error {
	const query = `
INSERT INTO products (id, name, price, stock, expirable, shippable, weight, expiry_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.Name, p.Price.String(), p.Stock, p.Expirable, p.Shippable, p.Weight.String(), p.ExpiryDate, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProductAlreadyExists
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const query = `
SELECT id, name, price::text, stock, expirable, shippable, weight::text, expiry_date, created_at
FROM products
ORDER BY created_at, name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	const query = `
SELECT id, name, price::text, stock, expirable, shippable, weight::text, expiry_date, created_at
FROM products
WHERE id = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Product{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

type row interface {
	Scan(dest ...any) error
}

func scanProduct(r row) (domain.Product, error) {
	var (
		p             domain.Product
		price, weight string
	)
	if err := r.Scan(&p.ID, &p.Name, &price, &p.Stock, &p.Expirable, &p.Shippable, &weight, &p.ExpiryDate, &p.CreatedAt); err != nil {
		return domain.Product{}, err
	}

	var err error
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return domain.Product{}, fmt.Errorf("parse price: %w", err)
	}
	if p.Weight, err = decimal.NewFromString(weight); err != nil {
		return domain.Product{}, fmt.Errorf("parse weight: %w", err)
	}
	return p, nil
}
