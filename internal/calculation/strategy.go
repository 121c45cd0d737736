package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff-calculator/internal/domain"
)

// OrderInstruments returns the instruments still carrying a positive balance,
// ordered for extra-payment allocation under the given strategy:
//
//   - avalanche: descending APR, ties broken by ascending balance
//   - snowball:  ascending balance, ties broken by descending APR
//
// When both keys tie, original input order is preserved (stable sort), so two
// otherwise-identical runs never flip equal instruments. Balances come from
// the balances map, not the instrument snapshot, since simulated balances
// shift month to month.
func OrderInstruments(instruments []domain.DebtInstrument, balances map[string]decimal.Decimal, strategy domain.Strategy) []domain.DebtInstrument {
	ordered := make([]domain.DebtInstrument, 0, len(instruments))
	for _, inst := range instruments {
		if balances[inst.ID].IsPositive() {
			ordered = append(ordered, inst)
		}
	}

	switch strategy {
	case domain.StrategySnowball:
		sort.SliceStable(ordered, func(i, j int) bool {
			bi, bj := balances[ordered[i].ID], balances[ordered[j].ID]
			if bi.Equal(bj) {
				return ordered[i].APR.GreaterThan(ordered[j].APR)
			}
			return bi.LessThan(bj)
		})
	default: // avalanche
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].APR.Equal(ordered[j].APR) {
				return balances[ordered[i].ID].LessThan(balances[ordered[j].ID])
			}
			return ordered[i].APR.GreaterThan(ordered[j].APR)
		})
	}
	return ordered
}
