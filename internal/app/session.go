package app

import (
	"sync"

	"github.com/faridaasaidd/checkout-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Session owns one customer's cart and ledger for the life of the process.
// Do serializes access so a checkout's read-check-debit cannot race a
// concurrent add or checkout against stale state.
type Session struct {
	mu     sync.Mutex
	cart   *domain.Cart
	ledger *domain.Ledger
}

func NewSession(openingBalance decimal.Decimal) *Session {
	return &Session{
		cart:   domain.NewCart(),
		ledger: domain.NewLedger(openingBalance),
	}
}

func (s *Session) Do(fn func(cart *domain.Cart, ledger *domain.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cart, s.ledger)
}
