//go:build integration

package accountrepo_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-petr/pet-ledger/internal/accountrepo"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/integrationtest"
	"github.com/go-petr/pet-ledger/internal/integrationtest/helpers"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	dbDriver string
	dbSource string
)

func TestMain(m *testing.M) {
	config, err := configpkg.Load("../../configs")
	if err != nil {
		log.Fatal("cannot load config:", err)
	}

	dbDriver = config.DBDriver
	dbSource = config.DBSource

	os.Exit(m.Run())
}

func TestCreate(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewTxRepoPGS(tx)

	ownerID := randompkg.OwnerID()
	balance := randompkg.MoneyAmountBetween(1_000, 10_000)
	currency := randompkg.Currency()

	account, err := accountRepo.Create(context.Background(), ownerID, balance, currency)
	require.NoError(t, err)

	require.NotZero(t, account.ID)
	require.Equal(t, ownerID, account.OwnerID)
	require.True(t, balance.Equal(account.Balance))
	require.Equal(t, currency, account.Currency)
	require.Equal(t, domain.StatusAvailable, account.Status)
	require.Equal(t, int32(1), account.Version)
	require.WithinDuration(t, time.Now(), account.CreatedAt, time.Minute)
}

func TestCreateDuplicateOwner(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewTxRepoPGS(tx)

	account := helpers.SeedAccountWith1000USDBalance(t, tx)

	_, err := accountRepo.Create(context.Background(), account.OwnerID, decimal.Zero, "USD")
	require.ErrorIs(t, err, domain.ErrAccountNotAvailable)
}

func TestGet(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewTxRepoPGS(tx)

	want := helpers.SeedAccountWith1000USDBalance(t, tx)

	got, err := accountRepo.Get(context.Background(), want.ID)
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.OwnerID, got.OwnerID)
	require.True(t, want.Balance.Equal(got.Balance))

	_, err = accountRepo.Get(context.Background(), -100500)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGetByOwner(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewTxRepoPGS(tx)

	want := helpers.SeedAccountWith1000USDBalance(t, tx)

	got, err := accountRepo.GetByOwner(context.Background(), want.OwnerID)
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)

	_, err = accountRepo.GetByOwner(context.Background(), -100500)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUpdateBalance(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewTxRepoPGS(tx)

	account := helpers.SeedAccountWith1000USDBalance(t, tx)
	newBalance := decimal.NewFromInt(1500)

	updated, err := accountRepo.UpdateBalance(context.Background(), account.ID, newBalance, account.Version)
	require.NoError(t, err)
	require.True(t, newBalance.Equal(updated.Balance))
	require.Equal(t, account.Version+1, updated.Version)

	// The version consumed above no longer matches.
	_, err = accountRepo.UpdateBalance(context.Background(), account.ID, decimal.NewFromInt(900), account.Version)
	require.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestUpdateBalanceNegative(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewTxRepoPGS(tx)

	account := helpers.SeedAccountWith1000USDBalance(t, tx)

	_, err := accountRepo.UpdateBalance(context.Background(), account.ID, decimal.NewFromInt(-1), account.Version)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestUpdateStatus(t *testing.T) {
	t.Parallel()

	tx := integrationtest.SetupTX(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewTxRepoPGS(tx)

	account := helpers.SeedAccountWith1000USDBalance(t, tx)

	updated, err := accountRepo.UpdateStatus(context.Background(), account.ID, domain.StatusCanceled, account.Version)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCanceled, updated.Status)
	require.Equal(t, account.Version+1, updated.Version)

	_, err = accountRepo.UpdateStatus(context.Background(), account.ID, domain.StatusLocked, account.Version)
	require.ErrorIs(t, err, domain.ErrVersionConflict)
}

func TestMoveBalance(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(db)

	from := helpers.SeedAccountWith1000USDBalance(t, db)
	to := helpers.SeedAccountWith1000USDBalance(t, db)
	amount := decimal.NewFromInt(100)

	arg := domain.MoveBalanceParams{
		FromAccountID:  from.ID,
		FromNewBalance: from.Balance.Sub(amount),
		FromVersion:    from.Version,
		ToAccountID:    to.ID,
		ToNewBalance:   to.Balance.Add(amount),
		ToVersion:      to.Version,
	}

	gotFrom, gotTo, err := accountRepo.MoveBalance(context.Background(), arg)
	require.NoError(t, err)
	require.True(t, from.Balance.Sub(amount).Equal(gotFrom.Balance))
	require.True(t, to.Balance.Add(amount).Equal(gotTo.Balance))
	require.Equal(t, from.Version+1, gotFrom.Version)
	require.Equal(t, to.Version+1, gotTo.Version)
}

func TestMoveBalanceStaleLegRollsBack(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(db)

	from := helpers.SeedAccountWith1000USDBalance(t, db)
	to := helpers.SeedAccountWith1000USDBalance(t, db)
	amount := decimal.NewFromInt(100)

	arg := domain.MoveBalanceParams{
		FromAccountID:  from.ID,
		FromNewBalance: from.Balance.Sub(amount),
		FromVersion:    from.Version,
		ToAccountID:    to.ID,
		ToNewBalance:   to.Balance.Add(amount),
		ToVersion:      to.Version + 1, // stale credit leg
	}

	_, _, err := accountRepo.MoveBalance(context.Background(), arg)
	require.ErrorIs(t, err, domain.ErrVersionConflict)

	gotFrom, err := accountRepo.Get(context.Background(), from.ID)
	require.NoError(t, err)
	require.True(t, from.Balance.Equal(gotFrom.Balance))
	require.Equal(t, from.Version, gotFrom.Version)
}

func TestMoveBalanceConcurrent(t *testing.T) {
	db := integrationtest.SetupDB(t, dbDriver, dbSource)
	accountRepo := accountrepo.NewRepoPGS(db)

	from := helpers.SeedAccountWith1000USDBalance(t, db)
	to := helpers.SeedAccountWith1000USDBalance(t, db)
	amount := decimal.NewFromInt(10)

	// All writers load the same version; exactly one can win.
	n := 5
	errs := make(chan error, n)

	arg := domain.MoveBalanceParams{
		FromAccountID:  from.ID,
		FromNewBalance: from.Balance.Sub(amount),
		FromVersion:    from.Version,
		ToAccountID:    to.ID,
		ToNewBalance:   to.Balance.Add(amount),
		ToVersion:      to.Version,
	}

	for i := 0; i < n; i++ {
		go func() {
			_, _, err := accountRepo.MoveBalance(context.Background(), arg)
			errs <- err
		}()
	}

	var won, conflicted int

	for i := 0; i < n; i++ {
		err := <-errs
		if err == nil {
			won++
			continue
		}

		require.ErrorIs(t, err, domain.ErrVersionConflict)
		conflicted++
	}

	require.Equal(t, 1, won)
	require.Equal(t, n-1, conflicted)

	gotFrom, err := accountRepo.Get(context.Background(), from.ID)
	require.NoError(t, err)
	require.True(t, from.Balance.Sub(amount).Equal(gotFrom.Balance))
}
