// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/shopspring/decimal"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns account RepoPGS bound to an open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns account RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    accounts (owner_id, balance, currency, account_status)
VALUES
    ($1, $2, $3, $4)
RETURNING id, owner_id, balance, currency, account_status, version, created_at, updated_at
`

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, ownerID int64, balance decimal.Decimal, currency string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, ownerID, balance, currency, domain.StatusAvailable)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_owner_id_key":
				return a, domain.ErrAccountNotAvailable
			case "accounts_balance_check":
				return a, domain.ErrInvalidAmount
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT
	id, owner_id, balance, currency, account_status, version, created_at, updated_at
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByOwnerQuery = `
SELECT
	id, owner_id, balance, currency, account_status, version, created_at, updated_at
FROM accounts
WHERE owner_id = $1
`

// GetByOwner returns the account that belongs to the given owner.
func (r *RepoPGS) GetByOwner(ctx context.Context, ownerID int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByOwnerQuery, ownerID)

	a, err := scanAccount(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const updateBalanceQuery = `
UPDATE accounts
SET balance = $1, version = version + 1, updated_at = now()
WHERE id = $2 AND version = $3
RETURNING id, owner_id, balance, currency, account_status, version, created_at, updated_at
`

// UpdateBalance sets the account's balance guarded by the version read at
// load time. A stale version surfaces as domain.ErrVersionConflict.
func (r *RepoPGS) UpdateBalance(ctx context.Context, id int64, newBalance decimal.Decimal, version int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateBalanceQuery, newBalance, id, version)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrVersionConflict
		}

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "accounts_balance_check" {
				return a, domain.ErrInsufficientBalance
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const updateStatusQuery = `
UPDATE accounts
SET account_status = $1, version = version + 1, updated_at = now()
WHERE id = $2 AND version = $3
RETURNING id, owner_id, balance, currency, account_status, version, created_at, updated_at
`

// UpdateStatus sets the account's status guarded by the version read at load time.
func (r *RepoPGS) UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus, version int32) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateStatusQuery, status, id, version)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrVersionConflict
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

// MoveBalance debits one account and credits the other in a single database
// transaction. Both legs are version-guarded; a stale version on either leg
// rolls back the whole movement.
func (r *RepoPGS) MoveBalance(ctx context.Context, arg domain.MoveBalanceParams) (domain.Account, domain.Account, error) {
	l := zerolog.Ctx(ctx)

	var from, to domain.Account

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return from, to, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	txRepo := NewTxRepoPGS(tx)

	// To avoid deadlocks execute statements in consistent id order.
	if arg.FromAccountID < arg.ToAccountID {
		from, err = txRepo.UpdateBalance(ctx, arg.FromAccountID, arg.FromNewBalance, arg.FromVersion)
		if err != nil {
			return from, to, err
		}

		to, err = txRepo.UpdateBalance(ctx, arg.ToAccountID, arg.ToNewBalance, arg.ToVersion)
		if err != nil {
			return from, to, err
		}
	} else {
		to, err = txRepo.UpdateBalance(ctx, arg.ToAccountID, arg.ToNewBalance, arg.ToVersion)
		if err != nil {
			return from, to, err
		}

		from, err = txRepo.UpdateBalance(ctx, arg.FromAccountID, arg.FromNewBalance, arg.FromVersion)
		if err != nil {
			return from, to, err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return from, to, errorspkg.ErrInternal
	}

	return from, to, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.Balance,
		&a.Currency,
		&a.Status,
		&a.Version,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}
