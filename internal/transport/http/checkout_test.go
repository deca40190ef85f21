package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/faridaasaidd/checkout-api/internal/app"
	"github.com/faridaasaidd/checkout-api/internal/domain"
	"github.com/shopspring/decimal"
)

func timeNowForTest() time.Time {
	return time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)
}

func TestHandleCheckout(t *testing.T) {
	t.Parallel()

	successResult := app.CheckoutResult{
		Order: domain.Order{
			ID: "order-123",
			Lines: []domain.LineReceipt{
				{Name: "Cheese", Quantity: 2, Total: decimal.NewFromInt(200)},
			},
			Subtotal:    decimal.NewFromInt(200),
			ShippingFee: decimal.NewFromInt(30),
			Total:       decimal.NewFromInt(230),
			Shipment: domain.Shipment{
				Lines: []domain.ShipmentLine{
					{Name: "Cheese", Quantity: 2, TotalWeight: decimal.RequireFromString("0.4")},
				},
				TotalWeight: decimal.RequireFromString("0.4"),
			},
		},
		Balance: decimal.NewFromInt(370),
	}

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedSubstr string
	}{
		{
			name:           "success",
			expectedStatus: http.StatusOK,
			expectedSubstr: `"order_id":"order-123"`,
		},
		{
			name:           "empty cart",
			serviceErr:     domain.ErrEmptyCart,
			expectedStatus: http.StatusConflict,
			expectedSubstr: codeEmptyCart,
		},
		{
			name:           "insufficient balance",
			serviceErr:     &domain.InsufficientBalanceError{Total: decimal.NewFromInt(330), Balance: decimal.NewFromInt(50)},
			expectedStatus: http.StatusPaymentRequired,
			expectedSubstr: "total 330 is greater than balance 50",
		},
		{
			name:           "internal error",
			serviceErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			session := app.NewSession(decimal.NewFromInt(600))
			svc := &stubCheckoutService{
				result: successResult,
				err:    tt.serviceErr,
			}
			req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
			rec := httptest.NewRecorder()

			HandleCheckout(session, svc).ServeHTTP(rec, req)

			res := rec.Result()
			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}
			if tt.expectedSubstr != "" {
				body := rec.Body.String()
				if !strings.Contains(body, tt.expectedSubstr) {
					t.Fatalf("expected response to contain %q, got %q", tt.expectedSubstr, body)
				}
			}
		})
	}

	t.Run("empty shipment is omitted from the response", func(t *testing.T) {
		t.Parallel()
		session := app.NewSession(decimal.NewFromInt(600))
		result := successResult
		result.Order.Shipment = domain.Shipment{}
		svc := &stubCheckoutService{result: result}

		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		rec := httptest.NewRecorder()
		HandleCheckout(session, svc).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), `"shipment"`) {
			t.Fatalf("expected shipment omitted, got %q", rec.Body.String())
		}
	})
}

func TestHandleBalance(t *testing.T) {
	t.Parallel()

	session := app.NewSession(decimal.NewFromInt(600))
	req := httptest.NewRequest(http.MethodGet, "/balance", nil)
	rec := httptest.NewRecorder()

	HandleBalance(session).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"balance":"600"`) {
		t.Fatalf("expected balance 600, got %q", rec.Body.String())
	}
}

type stubCheckoutService struct {
	result app.CheckoutResult
	err    error
}

func (s *stubCheckoutService) Checkout(_ context.Context, _ *domain.Cart, _ *domain.Ledger) (app.CheckoutResult, error) {
	return s.result, s.err
}
