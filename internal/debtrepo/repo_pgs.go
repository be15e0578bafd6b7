// Package debtrepo manages repository layer of debts.
package debtrepo

import (
	"context"
	"database/sql"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/dbpkg"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/google/uuid"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates debt repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns debt RepoPGS bound to an open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns debt RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const createQuery = `
INSERT INTO
    debts (id, from_account_id, to_account_id, original_amount, outstanding_balance, debt_status)
VALUES
    ($1, $2, $3, $4, $5, $6)
RETURNING id, from_account_id, to_account_id, original_amount, outstanding_balance, debt_status, created_at, updated_at
`

// Create creates the debt and then returns it.
func (r *RepoPGS) Create(ctx context.Context, debt domain.Debt) (domain.Debt, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		debt.ID,
		debt.FromAccountID,
		debt.ToAccountID,
		debt.OriginalAmount,
		debt.OutstandingBalance,
		debt.Status,
	)

	d, err := scanDebt(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "debts_from_account_id_fkey", "debts_to_account_id_fkey":
				return d, domain.ErrAccountNotFound
			}
		}

		return d, errorspkg.ErrInternal
	}

	return d, nil
}

const updateQuery = `
UPDATE debts
SET outstanding_balance = $1, debt_status = $2, updated_at = now()
WHERE id = $3
RETURNING id, from_account_id, to_account_id, original_amount, outstanding_balance, debt_status, created_at, updated_at
`

// Update sets the debt's outstanding balance and status.
func (r *RepoPGS) Update(ctx context.Context, debt domain.Debt) (domain.Debt, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery, debt.OutstandingBalance, debt.Status, debt.ID)

	d, err := scanDebt(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return d, domain.ErrDebtNotFound
		}

		return d, errorspkg.ErrInternal
	}

	return d, nil
}

const listByStatusQuery = `
SELECT
	id, from_account_id, to_account_id, original_amount, outstanding_balance, debt_status, created_at, updated_at
FROM debts
WHERE debt_status = $1
ORDER BY created_at, id
`

// ListByStatus returns all debts with the given status, oldest first.
func (r *RepoPGS) ListByStatus(ctx context.Context, status domain.DebtStatus) ([]domain.Debt, error) {
	return r.list(ctx, listByStatusQuery, status)
}

const listPendingByPairQuery = `
SELECT
	id, from_account_id, to_account_id, original_amount, outstanding_balance, debt_status, created_at, updated_at
FROM debts
WHERE debt_status = 'PENDING' AND from_account_id = $1 AND to_account_id = $2
ORDER BY created_at, id
`

// ListPendingByPair returns the pending debts owed by one specific account
// to another.
func (r *RepoPGS) ListPendingByPair(ctx context.Context, fromAccountID, toAccountID int64) ([]domain.Debt, error) {
	return r.list(ctx, listPendingByPairQuery, fromAccountID, toAccountID)
}

const listPendingByDebtorQuery = `
SELECT
	id, from_account_id, to_account_id, original_amount, outstanding_balance, debt_status, created_at, updated_at
FROM debts
WHERE debt_status = 'PENDING' AND from_account_id = $1
ORDER BY created_at, id
`

// ListPendingByDebtor returns the pending debts the given account owes,
// oldest first.
func (r *RepoPGS) ListPendingByDebtor(ctx context.Context, fromAccountID int64) ([]domain.Debt, error) {
	return r.list(ctx, listPendingByDebtorQuery, fromAccountID)
}

const listPendingByAccountQuery = `
SELECT
	id, from_account_id, to_account_id, original_amount, outstanding_balance, debt_status, created_at, updated_at
FROM debts
WHERE debt_status = 'PENDING' AND (from_account_id = $1 OR to_account_id = $1)
ORDER BY created_at, id
`

// ListPendingByAccount returns the pending debts touching the given account
// on either side.
func (r *RepoPGS) ListPendingByAccount(ctx context.Context, accountID int64) ([]domain.Debt, error) {
	return r.list(ctx, listPendingByAccountQuery, accountID)
}

const deleteByIDsQuery = `
DELETE FROM debts
WHERE id = ANY($1)
`

// Replace deletes the given debt ids and inserts the new set within a single
// database transaction, so a failed netting pass never leaves a partial graph.
func (r *RepoPGS) Replace(ctx context.Context, deleteIDs []uuid.UUID, create []domain.Debt) error {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			l.Error().Err(err).Send()
		}
	}()

	ids := make([]string, len(deleteIDs))
	for i, id := range deleteIDs {
		ids[i] = id.String()
	}

	if _, err := tx.ExecContext(ctx, deleteByIDsQuery, pq.Array(ids)); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	txRepo := NewTxRepoPGS(tx)

	for _, d := range create {
		if _, err := txRepo.Create(ctx, d); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...interface{}) ([]domain.Debt, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Debt{}

	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, d)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDebt(row rowScanner) (domain.Debt, error) {
	var d domain.Debt

	err := row.Scan(
		&d.ID,
		&d.FromAccountID,
		&d.ToAccountID,
		&d.OriginalAmount,
		&d.OutstandingBalance,
		&d.Status,
		&d.CreatedAt,
		&d.UpdatedAt,
	)

	return d, err
}
