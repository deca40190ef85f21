package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLedger(t *testing.T) {
	t.Parallel()

	t.Run("debit reduces balance", func(t *testing.T) {
		t.Parallel()
		ledger := NewLedger(decimal.NewFromInt(600))
		if err := ledger.Debit(decimal.NewFromInt(430)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !ledger.Balance().Equal(decimal.NewFromInt(170)) {
			t.Fatalf("expected balance 170, got %s", ledger.Balance())
		}
	})

	t.Run("debit of the full balance reaches exactly zero", func(t *testing.T) {
		t.Parallel()
		ledger := NewLedger(decimal.NewFromInt(230))
		if err := ledger.Debit(decimal.NewFromInt(230)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !ledger.Balance().Equal(decimal.Zero) {
			t.Fatalf("expected balance 0, got %s", ledger.Balance())
		}
	})

	t.Run("overdraft is refused and balance unchanged", func(t *testing.T) {
		t.Parallel()
		ledger := NewLedger(decimal.NewFromInt(50))
		if err := ledger.Debit(decimal.NewFromInt(330)); !errors.Is(err, ErrOverdraft) {
			t.Fatalf("expected ErrOverdraft, got %v", err)
		}
		if !ledger.Balance().Equal(decimal.NewFromInt(50)) {
			t.Fatalf("expected balance unchanged at 50, got %s", ledger.Balance())
		}
	})
}
