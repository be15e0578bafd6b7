// Package helpers seeds test data for integration tests.
package helpers

import (
	"context"
	"testing"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/debtrepo"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
	"github.com/shopspring/decimal"
)

// SeedAccount creates an account with the given balance for a random owner.
func SeedAccount(t *testing.T, db dbpkg.SQLInterface, balance decimal.Decimal) domain.Account {
	t.Helper()

	accountRepo := accountrepo.NewTxRepoPGS(db)

	account, err := accountRepo.Create(context.Background(), randompkg.OwnerID(), balance, currencypkg.USD)
	if err != nil {
		t.Fatalf("accountRepo.Create(ctx, ownerID, %v, USD) returned error: %v", balance, err)
	}

	return account
}

// SeedAccountWith1000USDBalance creates an account holding 1000 USD for a random owner.
func SeedAccountWith1000USDBalance(t *testing.T, db dbpkg.SQLInterface) domain.Account {
	t.Helper()

	return SeedAccount(t, db, decimal.NewFromInt(1000))
}

// SeedDebt creates a pending debt between the given accounts.
func SeedDebt(t *testing.T, db dbpkg.SQLInterface, fromAccountID, toAccountID int64, amount decimal.Decimal) domain.Debt {
	t.Helper()

	debtRepo := debtrepo.NewTxRepoPGS(db)

	debt, err := debtRepo.Create(context.Background(), domain.NewDebt(fromAccountID, toAccountID, amount))
	if err != nil {
		t.Fatalf("debtRepo.Create(ctx, NewDebt(%d, %d, %v)) returned error: %v",
			fromAccountID, toAccountID, amount, err)
	}

	return debt
}
