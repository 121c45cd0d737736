package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff-calculator/internal/domain"
)

// CompareScenarios runs the simulator twice over the same instrument
// snapshot: once with the household's baseline policy and once with the
// caller's overrides merged on top. Nothing is persisted and the inputs are
// never mutated; the baseline run is byte-identical to a direct Simulate
// call with the same policy.
//
// InterestSaved and MonthsSaved are signed: positive values mean the
// simulated scenario wins.
func (s *Simulator) CompareScenarios(instruments []domain.DebtInstrument, baseline domain.PayoffPolicy, overrides domain.ScenarioOverrides, now time.Time) domain.ScenarioComparison {
	current := s.Simulate(domain.SimulationInput{
		Instruments:        instruments,
		MonthlyExtraBudget: baseline.MonthlyExtraBudget,
		Strategy:           baseline.Strategy,
		Now:                now,
	})

	simulatedInput := domain.SimulationInput{
		Instruments:        instruments,
		MonthlyExtraBudget: baseline.MonthlyExtraBudget,
		Strategy:           baseline.Strategy,
		Now:                now,
	}
	if overrides.OneTimeExtra != nil {
		simulatedInput.OneTimeExtra = *overrides.OneTimeExtra
	}
	if overrides.MonthlyExtraBudget != nil {
		simulatedInput.MonthlyExtraBudget = *overrides.MonthlyExtraBudget
	}
	if overrides.Strategy != nil {
		simulatedInput.Strategy = *overrides.Strategy
	}
	simulated := s.Simulate(simulatedInput)

	return domain.ScenarioComparison{
		Current:       current,
		Simulated:     simulated,
		InterestSaved: current.TotalInterestCost.Sub(simulated.TotalInterestCost),
		MonthsSaved:   current.MonthsToDebtFree - simulated.MonthsToDebtFree,
	}
}

// CompareStrategies pits snowball against the baseline's budget under
// avalanche ordering, answering "which method gets this household out
// faster". It is a thin reuse of CompareScenarios with a strategy override.
func (s *Simulator) CompareStrategies(instruments []domain.DebtInstrument, monthlyExtraBudget decimal.Decimal, now time.Time) domain.ScenarioComparison {
	snowball := domain.StrategySnowball
	return s.CompareScenarios(instruments,
		domain.PayoffPolicy{MonthlyExtraBudget: monthlyExtraBudget, Strategy: domain.StrategyAvalanche},
		domain.ScenarioOverrides{Strategy: &snowball},
		now)
}
