package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrDebtNotFound indicates that the debt is not found.
var ErrDebtNotFound = errors.New("debt not found")

// DebtStatus is the settlement status of a debt.
type DebtStatus string

// All debt statuses.
const (
	DebtPending DebtStatus = "PENDING"
	DebtSettled DebtStatus = "SETTLED"
)

// Debt is a recorded obligation of FromAccountID towards ToAccountID.
//
// Sign convention: the outstanding balance is the negative of the amount the
// debtor still owes, so a pending debtor row always holds a negative value
// that moves toward zero as the debt is paid down.
type Debt struct {
	ID                 uuid.UUID       `json:"id"`
	FromAccountID      int64           `json:"from_account_id"`
	ToAccountID        int64           `json:"to_account_id"`
	OriginalAmount     decimal.Decimal `json:"original_amount"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	Status             DebtStatus      `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewDebt builds a pending debt of the given positive owed amount from the
// debtor to the creditor, applying the negated storage sign convention.
func NewDebt(fromAccountID, toAccountID int64, amount decimal.Decimal) Debt {
	now := time.Now().UTC()

	return Debt{
		ID:                 uuid.New(),
		FromAccountID:      fromAccountID,
		ToAccountID:        toAccountID,
		OriginalAmount:     amount.Neg(),
		OutstandingBalance: amount.Neg(),
		Status:             DebtPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// OwedAmount returns the positive amount the debtor still owes.
func (d Debt) OwedAmount() decimal.Decimal {
	return d.OutstandingBalance.Neg()
}

// DebtView exposes one pending debt from the perspective of a single account:
// a negative amount means the account owes the counterparty, a positive
// amount means the counterparty owes the account.
type DebtView struct {
	CounterpartyID int64           `json:"counterparty_id"`
	Amount         decimal.Decimal `json:"amount"`
}
