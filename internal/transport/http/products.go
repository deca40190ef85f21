package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/faridaasaidd/checkout-api/internal/app"
	"github.com/faridaasaidd/checkout-api/internal/domain"
	"github.com/shopspring/decimal"
)

// CatalogService is the minimal interface needed for product endpoints.
type CatalogService interface {
	CreateProduct(ctx context.Context, in app.CreateProductInput) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

// HandleProducts returns an HTTP handler for product creation/listing.
func HandleProducts(svc CatalogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			products, err := svc.ListProducts(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				return
			}
			resp := make([]productResponse, 0, len(products))
			for _, p := range products {
				resp = append(resp, newProductResponse(p))
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(resp)
			return
		case http.MethodPost:
			var req createProductRequest
			dec := json.NewDecoder(r.Body)
			dec.DisallowUnknownFields()
			if err := dec.Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
				return
			}

			product, err := svc.CreateProduct(r.Context(), app.CreateProductInput{
				Name:       req.Name,
				Price:      req.Price,
				Stock:      req.Stock,
				Expirable:  req.Expirable,
				Shippable:  req.Shippable,
				Weight:     req.Weight,
				ExpiryDate: req.ExpiryDate,
			})
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrProductNameRequired):
					writeError(w, http.StatusBadRequest, codeProductNameRequired, err.Error())
				case errors.Is(err, domain.ErrInvalidPrice):
					writeError(w, http.StatusBadRequest, codeInvalidPrice, err.Error())
				case errors.Is(err, domain.ErrInvalidStock):
					writeError(w, http.StatusBadRequest, codeInvalidStock, err.Error())
				case errors.Is(err, domain.ErrInvalidWeight):
					writeError(w, http.StatusBadRequest, codeInvalidWeight, err.Error())
				case errors.Is(err, domain.ErrExpiryDateRequired):
					writeError(w, http.StatusBadRequest, codeExpiryDateRequired, err.Error())
				case errors.Is(err, domain.ErrProductAlreadyExists):
					writeError(w, http.StatusConflict, codeProductAlreadyExists, err.Error())
				default:
					writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
				}
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(newProductResponse(product))
			return
		default:
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}
	}
}

type createProductRequest struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	Stock      int    `json:"stock"`
	Expirable  bool   `json:"expirable"`
	Shippable  bool   `json:"shippable"`
	Weight     string `json:"weight"`
	ExpiryDate string `json:"expiry_date"`
}

type productResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	Expirable  bool            `json:"expirable"`
	Shippable  bool            `json:"shippable"`
	Weight     decimal.Decimal `json:"weight"`
	ExpiryDate string          `json:"expiry_date,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

func newProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.Stock,
		Expirable:  p.Expirable,
		Shippable:  p.Shippable,
		Weight:     p.Weight,
		ExpiryDate: p.ExpiryDate,
		CreatedAt:  p.CreatedAt,
	}
}
