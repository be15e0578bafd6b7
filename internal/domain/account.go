// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountNotAvailable indicates that the account is locked or canceled.
	ErrAccountNotAvailable = errors.New("account not available")
	// ErrInvalidAmount indicates invalid amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrVersionConflict indicates that the account was modified concurrently
	// since it was read. The caller decides whether to re-read and retry.
	ErrVersionConflict = errors.New("account version conflict")
)

// AccountStatus is the lifecycle status of an account.
type AccountStatus string

// All account statuses. CANCELED is terminal.
const (
	StatusAvailable AccountStatus = "AVAILABLE"
	StatusLocked    AccountStatus = "LOCKED"
	StatusCanceled  AccountStatus = "CANCELED"
)

// Account holds owner balance data with a version counter for optimistic locking.
//
// Every balance or status mutation must supply the version read at load time;
// the store commits only if the stored version still matches and then
// increments it.
type Account struct {
	ID        int64           `json:"id"`
	OwnerID   int64           `json:"owner_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Status    AccountStatus   `json:"status"`
	Version   int32           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MoveBalanceParams is the input data for the atomic debit+credit movement
// between two accounts. Both legs are version-guarded and commit together.
type MoveBalanceParams struct {
	FromAccountID  int64
	FromNewBalance decimal.Decimal
	FromVersion    int32
	ToAccountID    int64
	ToNewBalance   decimal.Decimal
	ToVersion      int32
}
