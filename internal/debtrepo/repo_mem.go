package debtrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/google/uuid"
)

// RepoMem is an in-memory debt repository safe for concurrent use. It mirrors
// RepoPGS semantics, including the atomic Replace, and is meant for tests and
// embedded composition.
type RepoMem struct {
	mu    sync.Mutex
	debts map[uuid.UUID]domain.Debt
}

// NewRepoMem returns an empty in-memory debt repository.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		debts: make(map[uuid.UUID]domain.Debt),
	}
}

// Create creates the debt and then returns it.
func (r *RepoMem) Create(ctx context.Context, debt domain.Debt) (domain.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.debts[debt.ID] = debt

	return debt, nil
}

// Update sets the debt's outstanding balance and status.
func (r *RepoMem) Update(ctx context.Context, debt domain.Debt) (domain.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.debts[debt.ID]
	if !ok {
		return domain.Debt{}, domain.ErrDebtNotFound
	}

	d.OutstandingBalance = debt.OutstandingBalance
	d.Status = debt.Status
	d.UpdatedAt = time.Now().UTC()
	r.debts[d.ID] = d

	return d, nil
}

// ListByStatus returns all debts with the given status, oldest first.
func (r *RepoMem) ListByStatus(ctx context.Context, status domain.DebtStatus) ([]domain.Debt, error) {
	return r.listWhere(func(d domain.Debt) bool {
		return d.Status == status
	}), nil
}

// ListPendingByPair returns the pending debts owed by one specific account to another.
func (r *RepoMem) ListPendingByPair(ctx context.Context, fromAccountID, toAccountID int64) ([]domain.Debt, error) {
	return r.listWhere(func(d domain.Debt) bool {
		return d.Status == domain.DebtPending && d.FromAccountID == fromAccountID && d.ToAccountID == toAccountID
	}), nil
}

// ListPendingByDebtor returns the pending debts the given account owes, oldest first.
func (r *RepoMem) ListPendingByDebtor(ctx context.Context, fromAccountID int64) ([]domain.Debt, error) {
	return r.listWhere(func(d domain.Debt) bool {
		return d.Status == domain.DebtPending && d.FromAccountID == fromAccountID
	}), nil
}

// ListPendingByAccount returns the pending debts touching the given account on either side.
func (r *RepoMem) ListPendingByAccount(ctx context.Context, accountID int64) ([]domain.Debt, error) {
	return r.listWhere(func(d domain.Debt) bool {
		return d.Status == domain.DebtPending && (d.FromAccountID == accountID || d.ToAccountID == accountID)
	}), nil
}

// Replace deletes the given debt ids and inserts the new set atomically.
func (r *RepoMem) Replace(ctx context.Context, deleteIDs []uuid.UUID, create []domain.Debt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range deleteIDs {
		delete(r.debts, id)
	}

	for _, d := range create {
		r.debts[d.ID] = d
	}

	return nil
}

func (r *RepoMem) listWhere(match func(domain.Debt) bool) []domain.Debt {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := []domain.Debt{}

	for _, d := range r.debts {
		if match(d) {
			items = append(items, d)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		}
		return items[i].ID.String() < items[j].ID.String()
	})

	return items
}
