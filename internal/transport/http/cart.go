package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/faridaasaidd/checkout-api/internal/app"
	"github.com/faridaasaidd/checkout-api/internal/domain"
	"github.com/shopspring/decimal"
)

// CartAdder is the minimal interface needed to add an item to the cart.
type CartAdder interface {
	AddItem(ctx context.Context, cart *domain.Cart, in app.AddItemInput) (domain.CartLine, error)
}

// HandleAddCartItem returns an HTTP handler that adds a catalog product to
// the session cart.
func HandleAddCartItem(session *app.Session, svc CartAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var req addCartItemRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
			return
		}

		var line domain.CartLine
		err := session.Do(func(cart *domain.Cart, _ *domain.Ledger) error {
			var err error
			line, err = svc.AddItem(r.Context(), cart, app.AddItemInput{
				ProductID: req.ProductID,
				Quantity:  req.Quantity,
			})
			return err
		})
		if err != nil {
			var stockErr *domain.InsufficientStockError
			var expiredErr *domain.ExpiredProductError
			switch {
			case errors.Is(err, domain.ErrInvalidID):
				writeError(w, http.StatusBadRequest, codeInvalidID, err.Error())
			case errors.Is(err, domain.ErrInvalidQuantity):
				writeError(w, http.StatusBadRequest, codeInvalidQuantity, err.Error())
			case errors.Is(err, domain.ErrProductNotFound):
				writeError(w, http.StatusNotFound, codeProductNotFound, err.Error())
			case errors.As(err, &stockErr):
				writeError(w, http.StatusConflict, codeInsufficientStock, err.Error())
			case errors.As(err, &expiredErr):
				writeError(w, http.StatusConflict, codeExpiredProduct, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(newCartLineResponse(line))
	}
}

// HandleGetCart returns an HTTP handler listing the session cart lines.
func HandleGetCart(session *app.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		resp := make([]cartLineResponse, 0)
		_ = session.Do(func(cart *domain.Cart, _ *domain.Ledger) error {
			for _, line := range cart.Lines() {
				resp = append(resp, newCartLineResponse(line))
			}
			return nil
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type cartLineResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

func newCartLineResponse(line domain.CartLine) cartLineResponse {
	return cartLineResponse{
		ProductID: line.Product.ID,
		Name:      line.Product.Name,
		Quantity:  line.Quantity,
		UnitPrice: line.Product.Price,
		LineTotal: line.Total(),
	}
}
