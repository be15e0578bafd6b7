package accountrepo

import (
	"context"
	"testing"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createMemAccount(t *testing.T, repo *RepoMem, ownerID int64, balance int64) domain.Account {
	t.Helper()

	account, err := repo.Create(context.Background(), ownerID, decimal.NewFromInt(balance), currencypkg.USD)
	require.NoError(t, err)
	require.Equal(t, int32(1), account.Version)
	require.Equal(t, domain.StatusAvailable, account.Status)

	return account
}

func TestMemGetByOwner(t *testing.T) {
	repo := NewRepoMem()
	account := createMemAccount(t, repo, 42, 100)

	got, err := repo.GetByOwner(context.Background(), account.OwnerID)
	require.NoError(t, err)
	require.Equal(t, account.ID, got.ID)

	_, err = repo.GetByOwner(context.Background(), 43)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestMemUpdateBalanceVersionGuard(t *testing.T) {
	repo := NewRepoMem()
	account := createMemAccount(t, repo, 42, 100)

	// Two writers load the same version; only the first can win.
	updated, err := repo.UpdateBalance(context.Background(), account.ID, decimal.NewFromInt(150), account.Version)
	require.NoError(t, err)
	require.Equal(t, account.Version+1, updated.Version)

	_, err = repo.UpdateBalance(context.Background(), account.ID, decimal.NewFromInt(90), account.Version)
	require.ErrorIs(t, err, domain.ErrVersionConflict)

	got, err := repo.Get(context.Background(), account.ID)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(150).Equal(got.Balance))
}

func TestMemUpdateBalanceRejectsNegative(t *testing.T) {
	repo := NewRepoMem()
	account := createMemAccount(t, repo, 42, 100)

	_, err := repo.UpdateBalance(context.Background(), account.ID, decimal.NewFromInt(-1), account.Version)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)

	got, err := repo.Get(context.Background(), account.ID)
	require.NoError(t, err)
	require.Equal(t, account.Version, got.Version)
}

func TestMemUpdateStatus(t *testing.T) {
	repo := NewRepoMem()
	account := createMemAccount(t, repo, 42, 100)

	updated, err := repo.UpdateStatus(context.Background(), account.ID, domain.StatusCanceled, account.Version)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCanceled, updated.Status)

	_, err = repo.UpdateStatus(context.Background(), account.ID, domain.StatusLocked, account.Version)
	require.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestMemMoveBalance(t *testing.T) {
	repo := NewRepoMem()
	from := createMemAccount(t, repo, 1, 100)
	to := createMemAccount(t, repo, 2, 50)

	arg := domain.MoveBalanceParams{
		FromAccountID:  from.ID,
		FromNewBalance: decimal.NewFromInt(60),
		FromVersion:    from.Version,
		ToAccountID:    to.ID,
		ToNewBalance:   decimal.NewFromInt(90),
		ToVersion:      to.Version,
	}

	gotFrom, gotTo, err := repo.MoveBalance(context.Background(), arg)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(60).Equal(gotFrom.Balance))
	require.True(t, decimal.NewFromInt(90).Equal(gotTo.Balance))
	require.Equal(t, from.Version+1, gotFrom.Version)
	require.Equal(t, to.Version+1, gotTo.Version)
}

func TestMemMoveBalanceRollsBackOnStaleLeg(t *testing.T) {
	repo := NewRepoMem()
	from := createMemAccount(t, repo, 1, 100)
	to := createMemAccount(t, repo, 2, 50)

	arg := domain.MoveBalanceParams{
		FromAccountID:  from.ID,
		FromNewBalance: decimal.NewFromInt(60),
		FromVersion:    from.Version,
		ToAccountID:    to.ID,
		ToNewBalance:   decimal.NewFromInt(90),
		ToVersion:      to.Version + 1, // stale credit leg
	}

	_, _, err := repo.MoveBalance(context.Background(), arg)
	require.ErrorIs(t, err, domain.ErrVersionConflict)

	gotFrom, err := repo.Get(context.Background(), from.ID)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(100).Equal(gotFrom.Balance))
	require.Equal(t, from.Version, gotFrom.Version)

	gotTo, err := repo.Get(context.Background(), to.ID)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(50).Equal(gotTo.Balance))
}
