// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"errors"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/currencypkg"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, ownerID int64, balance decimal.Decimal, currency string) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	GetByOwner(ctx context.Context, ownerID int64) (domain.Account, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AccountStatus, version int32) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage account bussines logic.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Open returns the owner's account, creating one with zero balance on the
// first lookup for a new owner.
func (s *Service) Open(ctx context.Context, ownerID int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	account, err := s.repo.GetByOwner(ctx, ownerID)
	if err == nil {
		return account, nil
	}

	if !errors.Is(err, domain.ErrAccountNotFound) {
		l.Error().Err(err).Int64("owner_id", ownerID).Send()
		return account, err
	}

	return s.repo.Create(ctx, ownerID, decimal.Zero, currencypkg.USD)
}

// Get returns the account for the given account ID.
func (s *Service) Get(ctx context.Context, id int64) (domain.Account, error) {
	return s.repo.Get(ctx, id)
}

// Cancel transitions the account to the terminal CANCELED status, guarded by
// the version read at load time. A canceled account rejects any further mutation.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	l := zerolog.Ctx(ctx)

	account, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if account.Status == domain.StatusCanceled {
		return domain.ErrAccountNotAvailable
	}

	if _, err := s.repo.UpdateStatus(ctx, account.ID, domain.StatusCanceled, account.Version); err != nil {
		l.Error().Err(err).Int64("account_id", id).Msg("cancel failed")
		return err
	}

	return nil
}
