// Package events defines the audit side artifacts the ledger engine emits.
// Events are best effort and never load bearing for balance correctness.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Publisher delivers completed-transaction events to an external sink.
type Publisher interface {
	Publish(ctx context.Context, event TransactionCompleted) error
}

// TransactionCompleted describes one completed balance movement. A zero
// account id marks the external side of a deposit or withdrawal.
type TransactionCompleted struct {
	ID            uuid.UUID       `json:"id"`
	FromAccountID int64           `json:"from_account_id"`
	ToAccountID   int64           `json:"to_account_id"`
	Amount        decimal.Decimal `json:"amount"`
	Remarks       string          `json:"remarks,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

// NewTransactionCompleted builds a transaction event with a fresh id.
func NewTransactionCompleted(fromAccountID, toAccountID int64, amount decimal.Decimal, remarks string) TransactionCompleted {
	return TransactionCompleted{
		ID:            uuid.New(),
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        amount,
		Remarks:       remarks,
		OccurredAt:    time.Now().UTC(),
	}
}

// NopPublisher drops every event.
type NopPublisher struct{}

// NewNopPublisher returns a publisher that drops every event.
func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

// Publish implements Publisher.
func (*NopPublisher) Publish(context.Context, TransactionCompleted) error {
	return nil
}
