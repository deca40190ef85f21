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

// CheckoutRunner is the minimal interface needed to run a checkout.
type CheckoutRunner interface {
	Checkout(ctx context.Context, cart *domain.Cart, ledger *domain.Ledger) (app.CheckoutResult, error)
}

// HandleCheckout returns an HTTP handler running the checkout pipeline
// against the session cart and ledger.
func HandleCheckout(session *app.Session, svc CheckoutRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var result app.CheckoutResult
		err := session.Do(func(cart *domain.Cart, ledger *domain.Ledger) error {
			var err error
			result, err = svc.Checkout(r.Context(), cart, ledger)
			return err
		})
		if err != nil {
			var balanceErr *domain.InsufficientBalanceError
			switch {
			case errors.Is(err, domain.ErrEmptyCart):
				writeError(w, http.StatusConflict, codeEmptyCart, err.Error())
			case errors.As(err, &balanceErr):
				writeError(w, http.StatusPaymentRequired, codeInsufficientBalance, err.Error())
			default:
				writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(newCheckoutResponse(result))
	}
}

// HandleBalance returns an HTTP handler reporting the session balance.
func HandleBalance(session *app.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method not allowed")
			return
		}

		var balance decimal.Decimal
		_ = session.Do(func(_ *domain.Cart, ledger *domain.Ledger) error {
			balance = ledger.Balance()
			return nil
		})

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(balanceResponse{Balance: balance})
	}
}

type checkoutResponse struct {
	OrderID     string                `json:"order_id"`
	Lines       []lineReceiptResponse `json:"lines"`
	Subtotal    decimal.Decimal       `json:"subtotal"`
	ShippingFee decimal.Decimal       `json:"shipping_fee"`
	Total       decimal.Decimal       `json:"total"`
	Shipment    *shipmentResponse     `json:"shipment,omitempty"`
	Balance     decimal.Decimal       `json:"balance"`
	CreatedAt   time.Time             `json:"created_at"`
}

type lineReceiptResponse struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Total    decimal.Decimal `json:"total"`
}

type shipmentResponse struct {
	Lines       []shipmentLineResponse `json:"lines"`
	TotalWeight decimal.Decimal        `json:"total_weight"`
}

type shipmentLineResponse struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Weight   decimal.Decimal `json:"weight"`
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

func newCheckoutResponse(result app.CheckoutResult) checkoutResponse {
	order := result.Order
	resp := checkoutResponse{
		OrderID:     order.ID,
		Lines:       make([]lineReceiptResponse, 0, len(order.Lines)),
		Subtotal:    order.Subtotal,
		ShippingFee: order.ShippingFee,
		Total:       order.Total,
		Balance:     result.Balance,
		CreatedAt:   order.CreatedAt,
	}
	for _, line := range order.Lines {
		resp.Lines = append(resp.Lines, lineReceiptResponse{
			Name:     line.Name,
			Quantity: line.Quantity,
			Total:    line.Total,
		})
	}
	if !order.Shipment.Empty() {
		shipment := &shipmentResponse{TotalWeight: order.Shipment.TotalWeight}
		for _, line := range order.Shipment.Lines {
			shipment.Lines = append(shipment.Lines, shipmentLineResponse{
				Name:     line.Name,
				Quantity: line.Quantity,
				Weight:   line.TotalWeight,
			})
		}
		resp.Shipment = shipment
	}
	return resp
}
