package accountrepo

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// RepoMem is an in-memory account repository safe for concurrent use.
// It mirrors the conditional-write semantics of RepoPGS and is meant for
// tests and embedded composition.
type RepoMem struct {
	mu       sync.Mutex
	accounts map[int64]domain.Account
	nextID   int64
}

// NewRepoMem returns an empty in-memory account repository.
func NewRepoMem() *RepoMem {
	return &RepoMem{
		accounts: make(map[int64]domain.Account),
		nextID:   1,
	}
}

// Create creates the account and then returns it.
func (r *RepoMem) Create(ctx context.Context, ownerID int64, balance decimal.Decimal, currency string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	a := domain.Account{
		ID:        r.nextID,
		OwnerID:   ownerID,
		Balance:   balance,
		Currency:  currency,
		Status:    domain.StatusAvailable,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.nextID++
	r.accounts[a.ID] = a

	return a, nil
}

// Get returns the account with the given id.
func (r *RepoMem) Get(ctx context.Context, id int64) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return a, nil
}

// GetByOwner returns the account that belongs to the given owner.
func (r *RepoMem) GetByOwner(ctx context.Context, ownerID int64) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.accounts {
		if a.OwnerID == ownerID {
			return a, nil
		}
	}

	return domain.Account{}, domain.ErrAccountNotFound
}

// UpdateBalance sets the account's balance if the supplied version still
// matches, then increments the version.
func (r *RepoMem) UpdateBalance(ctx context.Context, id int64, newBalance decimal.Decimal, version int32) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.updateBalanceLocked(id, newBalance, version)
}

// UpdateStatus sets the account's status if the supplied version still matches.
func (r *RepoMem) UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus, version int32) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.accounts[id]
	if !ok || a.Version != version {
		return domain.Account{}, domain.ErrVersionConflict
	}

	a.Status = status
	a.Version++
	a.UpdatedAt = time.Now().UTC()
	r.accounts[id] = a

	return a, nil
}

// MoveBalance debits one account and credits the other atomically. A stale
// version on either leg leaves both accounts untouched.
func (r *RepoMem) MoveBalance(ctx context.Context, arg domain.MoveBalanceParams) (domain.Account, domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fromBefore, ok := r.accounts[arg.FromAccountID]
	if !ok {
		return domain.Account{}, domain.Account{}, domain.ErrVersionConflict
	}

	from, err := r.updateBalanceLocked(arg.FromAccountID, arg.FromNewBalance, arg.FromVersion)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	to, err := r.updateBalanceLocked(arg.ToAccountID, arg.ToNewBalance, arg.ToVersion)
	if err != nil {
		r.accounts[arg.FromAccountID] = fromBefore
		return domain.Account{}, domain.Account{}, err
	}

	return from, to, nil
}

func (r *RepoMem) updateBalanceLocked(id int64, newBalance decimal.Decimal, version int32) (domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok || a.Version != version {
		return domain.Account{}, domain.ErrVersionConflict
	}

	if newBalance.IsNegative() {
		return domain.Account{}, domain.ErrInsufficientBalance
	}

	a.Balance = newBalance
	a.Version++
	a.UpdatedAt = time.Now().UTC()
	r.accounts[id] = a

	return a, nil
}
