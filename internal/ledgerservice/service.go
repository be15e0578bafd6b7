// Package ledgerservice manages business logic layer of ledger operations.
package ledgerservice

import (
	"context"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/events"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// AccountRepo provides account data access layer interface needed by ledger
// service layer. Every mutation is guarded by the version read at load time.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type AccountRepo interface {
	Get(ctx context.Context, id int64) (domain.Account, error)
	UpdateBalance(ctx context.Context, id int64, newBalance decimal.Decimal, version int32) (domain.Account, error)
	MoveBalance(ctx context.Context, arg domain.MoveBalanceParams) (domain.Account, domain.Account, error)
}

// DebtRepo provides debt data access layer interface needed by ledger service layer.
type DebtRepo interface {
	Create(ctx context.Context, debt domain.Debt) (domain.Debt, error)
	Update(ctx context.Context, debt domain.Debt) (domain.Debt, error)
	ListPendingByPair(ctx context.Context, fromAccountID, toAccountID int64) ([]domain.Debt, error)
	ListPendingByDebtor(ctx context.Context, fromAccountID int64) ([]domain.Debt, error)
	ListPendingByAccount(ctx context.Context, accountID int64) ([]domain.Debt, error)
}

// Restructurer recomputes the pending-debt graph after a balance-affecting
// operation.
type Restructurer interface {
	Restructure(ctx context.Context) error
}

// Service facilitates ledger service layer logic.
type Service struct {
	accountRepo AccountRepo
	debtRepo    DebtRepo
	netting     Restructurer
	publisher   events.Publisher
}

// New returns ledger service struct to manage ledger business logic.
// A nil publisher disables transaction events.
func New(ar AccountRepo, dr DebtRepo, netting Restructurer, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.NewNopPublisher()
	}

	return &Service{
		accountRepo: ar,
		debtRepo:    dr,
		netting:     netting,
		publisher:   publisher,
	}
}

// Deposit adds the amount to the account's balance and then pays down the
// account's own pending debts with the deposited funds, oldest first.
// A concurrent modification surfaces as domain.ErrVersionConflict without
// automatic retry.
func (s *Service) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal, remarks string) error {
	l := zerolog.Ctx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	account, err := s.availableAccount(ctx, accountID)
	if err != nil {
		l.Info().Err(err).Int64("account_id", accountID).Msg("deposit rejected")
		return err
	}

	account, err = s.accountRepo.UpdateBalance(ctx, account.ID, account.Balance.Add(amount), account.Version)
	if err != nil {
		l.Error().Err(err).Int64("account_id", accountID).Msg("deposit failed")
		return err
	}

	if err := s.payDownDebts(ctx, account.ID, amount); err != nil {
		return err
	}

	s.publish(ctx, events.NewTransactionCompleted(0, accountID, amount, remarks))

	return s.restructure(ctx)
}

// Withdraw subtracts the amount from the account's balance.
func (s *Service) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal, remarks string) error {
	l := zerolog.Ctx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	account, err := s.availableAccount(ctx, accountID)
	if err != nil {
		l.Info().Err(err).Int64("account_id", accountID).Msg("withdraw rejected")
		return err
	}

	if account.Balance.LessThan(amount) {
		return domain.ErrInsufficientBalance
	}

	if _, err := s.accountRepo.UpdateBalance(ctx, account.ID, account.Balance.Sub(amount), account.Version); err != nil {
		l.Error().Err(err).Int64("account_id", accountID).Msg("withdraw failed")
		return err
	}

	s.publish(ctx, events.NewTransactionCompleted(accountID, 0, amount, remarks))

	return s.restructure(ctx)
}

// Transfer moves the amount between two accounts.
//
// If the receiving account already owes the sender, no money moves: the
// requested amount is recorded as a new debt and left for the netting pass to
// settle. Otherwise as much of the amount as the sender's balance covers is
// moved atomically, and any shortfall becomes a debt from sender to receiver.
func (s *Service) Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal, remarks string) error {
	l := zerolog.Ctx(ctx)

	if amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}

	fromAccount, err := s.availableAccount(ctx, fromAccountID)
	if err != nil {
		l.Info().Err(err).Int64("account_id", fromAccountID).Msg("transfer rejected")
		return err
	}

	toAccount, err := s.availableAccount(ctx, toAccountID)
	if err != nil {
		l.Info().Err(err).Int64("account_id", toAccountID).Msg("transfer rejected")
		return err
	}

	deferred, err := s.deferToReverseDebt(ctx, fromAccountID, toAccountID, amount)
	if err != nil {
		return err
	}

	if !deferred {
		settled, err := s.moveFunded(ctx, fromAccount, toAccount, amount)
		if err != nil {
			l.Error().Err(err).
				Int64("from_account_id", fromAccountID).
				Int64("to_account_id", toAccountID).
				Msg("transfer failed")

			return err
		}

		s.publish(ctx, events.NewTransactionCompleted(fromAccountID, toAccountID, settled, remarks))
	}

	return s.restructure(ctx)
}

// GetBalance returns the account's current balance.
func (s *Service) GetBalance(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	account, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return account.Balance, nil
}

// GetOutstandingDebts returns the pending debts touching the account, signed
// from the account's perspective: negative amounts are owed to the
// counterparty, positive amounts are owed by it.
func (s *Service) GetOutstandingDebts(ctx context.Context, accountID int64) ([]domain.DebtView, error) {
	debts, err := s.debtRepo.ListPendingByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	views := make([]domain.DebtView, len(debts))

	for i, d := range debts {
		if d.FromAccountID == accountID {
			views[i] = domain.DebtView{CounterpartyID: d.ToAccountID, Amount: d.OutstandingBalance}
		} else {
			views[i] = domain.DebtView{CounterpartyID: d.FromAccountID, Amount: d.OutstandingBalance.Neg()}
		}
	}

	return views, nil
}

// deferToReverseDebt checks whether the receiver already owes the sender. If
// so the requested amount is recorded as an opposing debt instead of moving
// money; the netting pass settles the pair.
func (s *Service) deferToReverseDebt(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) (bool, error) {
	reverse, err := s.debtRepo.ListPendingByPair(ctx, toAccountID, fromAccountID)
	if err != nil {
		return false, err
	}

	if len(reverse) == 0 {
		return false, nil
	}

	if _, err := s.debtRepo.Create(ctx, domain.NewDebt(fromAccountID, toAccountID, amount)); err != nil {
		return false, err
	}

	return true, nil
}

// moveFunded moves min(balance, amount) between the accounts in one atomic
// repository operation and records any shortfall as a debt. It returns the
// settled amount.
func (s *Service) moveFunded(ctx context.Context, fromAccount, toAccount domain.Account, amount decimal.Decimal) (decimal.Decimal, error) {
	settleAmount := decimal.Min(fromAccount.Balance, amount)

	if settleAmount.IsPositive() {
		arg := domain.MoveBalanceParams{
			FromAccountID:  fromAccount.ID,
			FromNewBalance: fromAccount.Balance.Sub(settleAmount),
			FromVersion:    fromAccount.Version,
			ToAccountID:    toAccount.ID,
			ToNewBalance:   toAccount.Balance.Add(settleAmount),
			ToVersion:      toAccount.Version,
		}

		if _, _, err := s.accountRepo.MoveBalance(ctx, arg); err != nil {
			return decimal.Decimal{}, err
		}
	}

	if shortfall := amount.Sub(settleAmount); shortfall.IsPositive() {
		if _, err := s.debtRepo.Create(ctx, domain.NewDebt(fromAccount.ID, toAccount.ID, shortfall)); err != nil {
			return settleAmount, err
		}
	}

	return settleAmount, nil
}

// payDownDebts settles the account's pending debts with the deposited amount,
// oldest first: each paydown moves funds to the creditor and shifts the
// debt's outstanding balance toward zero, marking it settled when it gets there.
func (s *Service) payDownDebts(ctx context.Context, accountID int64, amount decimal.Decimal) error {
	debts, err := s.debtRepo.ListPendingByDebtor(ctx, accountID)
	if err != nil {
		return err
	}

	remaining := amount

	for _, debt := range debts {
		if !remaining.IsPositive() {
			break
		}

		owed := debt.OwedAmount()
		if !owed.IsPositive() {
			continue
		}

		pay := decimal.Min(remaining, owed)

		fromAccount, err := s.accountRepo.Get(ctx, debt.FromAccountID)
		if err != nil {
			return err
		}

		toAccount, err := s.accountRepo.Get(ctx, debt.ToAccountID)
		if err != nil {
			return err
		}

		arg := domain.MoveBalanceParams{
			FromAccountID:  fromAccount.ID,
			FromNewBalance: fromAccount.Balance.Sub(pay),
			FromVersion:    fromAccount.Version,
			ToAccountID:    toAccount.ID,
			ToNewBalance:   toAccount.Balance.Add(pay),
			ToVersion:      toAccount.Version,
		}

		if _, _, err := s.accountRepo.MoveBalance(ctx, arg); err != nil {
			return err
		}

		debt.OutstandingBalance = debt.OutstandingBalance.Add(pay)
		if debt.OutstandingBalance.IsZero() {
			debt.Status = domain.DebtSettled
		}

		if _, err := s.debtRepo.Update(ctx, debt); err != nil {
			return err
		}

		remaining = remaining.Sub(pay)
	}

	return nil
}

func (s *Service) availableAccount(ctx context.Context, accountID int64) (domain.Account, error) {
	account, err := s.accountRepo.Get(ctx, accountID)
	if err != nil {
		return account, err
	}

	if account.Status != domain.StatusAvailable {
		return account, domain.ErrAccountNotAvailable
	}

	return account, nil
}

// restructure runs a netting pass. Account balances committed by the
// triggering operation are already durable, so a failure here is surfaced but
// recoverable by any later pass.
func (s *Service) restructure(ctx context.Context) error {
	if err := s.netting.Restructure(ctx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("netting pass failed")
		return err
	}

	return nil
}

func (s *Service) publish(ctx context.Context, event events.TransactionCompleted) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("transaction event not published")
	}
}
