// Package nettingservice manages business logic layer of debt netting.
//
// A netting pass collapses the graph of pending inter-account debts into the
// minimum possible number of settlement obligations with the same net
// position per account.
package nettingservice

import (
	"context"
	"sort"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by netting service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package nettingservice
type Repo interface {
	ListByStatus(ctx context.Context, status domain.DebtStatus) ([]domain.Debt, error)
	Replace(ctx context.Context, deleteIDs []uuid.UUID, create []domain.Debt) error
}

// DefaultGreedyThreshold is the net-position vector size above which the
// exhaustive search gives way to the greedy pairing.
const DefaultGreedyThreshold = 16

// Service facilitates netting service layer logic.
type Service struct {
	repo            Repo
	greedyThreshold int
}

// New returns netting service struct to manage debt netting logic.
// A non-positive greedyThreshold falls back to DefaultGreedyThreshold.
func New(repo Repo, greedyThreshold int) *Service {
	if greedyThreshold <= 0 {
		greedyThreshold = DefaultGreedyThreshold
	}

	return &Service{
		repo:            repo,
		greedyThreshold: greedyThreshold,
	}
}

// settlement is one edge of the recomputed debt graph: the debtor pays the
// creditor the given positive amount.
type settlement struct {
	DebtorID   int64
	CreditorID int64
	Amount     decimal.Decimal
}

// Restructure replaces the whole pending-debt set with a minimal equivalent
// set of settlement debts. It is idempotent for an already-netted graph and
// never touches account balances, so a failed pass is recoverable by simply
// running it again.
//
// The exhaustive search is exponential in the number of distinct nonzero net
// positions; above the configured threshold a greedy largest-remaining
// pairing bounds the runtime at the cost of minimality.
func (s *Service) Restructure(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	debts, err := s.repo.ListByStatus(ctx, domain.DebtPending)
	if err != nil {
		l.Error().Err(err).Send()
		return err
	}

	if len(debts) == 0 {
		return nil
	}

	ids, balances := positionVector(netPositions(debts))

	var edges []settlement
	if len(ids) > s.greedyThreshold {
		edges = greedySettle(ids, balances)
	} else {
		edges = minSettle(ids, balances)
	}

	oldIDs := make([]uuid.UUID, len(debts))
	for i, d := range debts {
		oldIDs[i] = d.ID
	}

	newDebts := make([]domain.Debt, len(edges))
	for i, e := range edges {
		newDebts[i] = domain.NewDebt(e.DebtorID, e.CreditorID, e.Amount)
	}

	if err := s.repo.Replace(ctx, oldIDs, newDebts); err != nil {
		l.Error().Err(err).Send()
		return err
	}

	return nil
}

// netPositions accumulates each account's net unsettled position across all
// pending debts: payables drive the position negative, receivables positive.
func netPositions(debts []domain.Debt) map[int64]decimal.Decimal {
	positions := make(map[int64]decimal.Decimal)

	for _, d := range debts {
		positions[d.FromAccountID] = positions[d.FromAccountID].Add(d.OutstandingBalance)
		positions[d.ToAccountID] = positions[d.ToAccountID].Sub(d.OutstandingBalance)
	}

	return positions
}

// positionVector drops zero positions and orders the rest by account id so
// the search output is deterministic.
func positionVector(positions map[int64]decimal.Decimal) ([]int64, []decimal.Decimal) {
	ids := make([]int64, 0, len(positions))

	for id, balance := range positions {
		if !balance.IsZero() {
			ids = append(ids, id)
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	balances := make([]decimal.Decimal, len(ids))
	for i, id := range ids {
		balances[i] = positions[id]
	}

	return ids, balances
}

// minSettle finds a settlement set of minimum size by backtracking: the first
// nonzero position is paired against every later position of opposite sign,
// the smaller absolute value is subtracted from both sides and the search
// re-examines the current position until it zeroes out. An assignment only
// replaces the best one found so far when it has strictly fewer edges.
func minSettle(ids []int64, balances []decimal.Decimal) []settlement {
	var (
		best      []settlement
		cur       []settlement
		bestCount = -1
	)

	var walk func(pos int)
	walk = func(pos int) {
		for pos < len(balances) && balances[pos].IsZero() {
			pos++
		}

		if pos == len(balances) {
			if bestCount == -1 || len(cur) < bestCount {
				bestCount = len(cur)
				best = append([]settlement(nil), cur...)
			}

			return
		}

		// At least one more edge is needed from here.
		if bestCount != -1 && len(cur)+1 >= bestCount {
			return
		}

		for idx := pos + 1; idx < len(balances); idx++ {
			if !balances[idx].Mul(balances[pos]).IsNegative() {
				continue
			}

			amount := decimal.Min(balances[pos].Abs(), balances[idx].Abs())

			var edge settlement
			if balances[pos].IsPositive() {
				edge = settlement{DebtorID: ids[idx], CreditorID: ids[pos], Amount: amount}
				balances[pos] = balances[pos].Sub(amount)
				balances[idx] = balances[idx].Add(amount)
			} else {
				edge = settlement{DebtorID: ids[pos], CreditorID: ids[idx], Amount: amount}
				balances[pos] = balances[pos].Add(amount)
				balances[idx] = balances[idx].Sub(amount)
			}

			cur = append(cur, edge)

			walk(pos)

			cur = cur[:len(cur)-1]

			if edge.DebtorID == ids[pos] {
				balances[pos] = balances[pos].Sub(amount)
				balances[idx] = balances[idx].Add(amount)
			} else {
				balances[pos] = balances[pos].Add(amount)
				balances[idx] = balances[idx].Sub(amount)
			}
		}
	}

	walk(0)

	return best
}

// greedySettle pairs the largest remaining creditor with the largest
// remaining debtor until every position is zero. It produces at most n-1
// edges in O(n^2) time but is not guaranteed minimal.
func greedySettle(ids []int64, balances []decimal.Decimal) []settlement {
	remaining := append([]decimal.Decimal(nil), balances...)
	edges := []settlement{}

	for {
		maxIdx, minIdx := -1, -1

		for i, b := range remaining {
			if b.IsPositive() && (maxIdx == -1 || b.GreaterThan(remaining[maxIdx])) {
				maxIdx = i
			}

			if b.IsNegative() && (minIdx == -1 || b.LessThan(remaining[minIdx])) {
				minIdx = i
			}
		}

		if maxIdx == -1 || minIdx == -1 {
			return edges
		}

		amount := decimal.Min(remaining[maxIdx], remaining[minIdx].Neg())

		edges = append(edges, settlement{
			DebtorID:   ids[minIdx],
			CreditorID: ids[maxIdx],
			Amount:     amount,
		})

		remaining[maxIdx] = remaining[maxIdx].Sub(amount)
		remaining[minIdx] = remaining[minIdx].Add(amount)
	}
}
