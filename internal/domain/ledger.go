package domain

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Ledger tracks a single customer's available funds. Sufficiency against an
// order total is the checkout engine's responsibility; the ledger only
// refuses debits that would take the balance negative.
type Ledger struct {
	mu      sync.Mutex
	balance decimal.Decimal
}

func NewLedger(opening decimal.Decimal) *Ledger {
	return &Ledger{balance: opening}
}

// Balance returns the current balance.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Debit reduces the balance by amount. It returns ErrOverdraft, leaving the
// balance unchanged, when amount exceeds the current balance.
func (l *Ledger) Debit(amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if amount.GreaterThan(l.balance) {
		return ErrOverdraft
	}
	l.balance = l.balance.Sub(amount)
	return nil
}
