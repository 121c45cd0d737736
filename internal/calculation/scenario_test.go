package calculation

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtwise/payoff-calculator/internal/domain"
)

func comparisonFixture() ([]domain.DebtInstrument, domain.PayoffPolicy) {
	instruments := []domain.DebtInstrument{
		instrument("a", "2000.00", "22.99", "45.00"),
		instrument("b", "800.00", "15.49", "25.00"),
	}
	policy := domain.PayoffPolicy{
		MonthlyExtraBudget: dec("150.00"),
		Strategy:           domain.StrategyAvalanche,
	}
	return instruments, policy
}

func TestCompareScenariosBaselineMatchesDirectRun(t *testing.T) {
	instruments, policy := comparisonFixture()
	sim := NewSimulator()

	lump := dec("500.00")
	comparison := sim.CompareScenarios(instruments, policy, domain.ScenarioOverrides{OneTimeExtra: &lump}, testNow)

	direct := sim.Simulate(domain.SimulationInput{
		Instruments:        instruments,
		MonthlyExtraBudget: policy.MonthlyExtraBudget,
		Strategy:           policy.Strategy,
		Now:                testNow,
	})

	if !reflect.DeepEqual(comparison.Current, direct) {
		t.Fatalf("baseline run differs from a direct simulation")
	}
}

func TestCompareScenariosLumpPaymentSaves(t *testing.T) {
	instruments, policy := comparisonFixture()

	lump := dec("1000.00")
	comparison := NewSimulator().CompareScenarios(instruments, policy, domain.ScenarioOverrides{OneTimeExtra: &lump}, testNow)

	assert.True(t, comparison.InterestSaved.IsPositive(), "interest saved got %s", comparison.InterestSaved)
	assert.Greater(t, comparison.MonthsSaved, 0)
	assert.True(t, comparison.InterestSaved.Equal(
		comparison.Current.TotalInterestCost.Sub(comparison.Simulated.TotalInterestCost)))
	assert.Equal(t, comparison.Current.MonthsToDebtFree-comparison.Simulated.MonthsToDebtFree, comparison.MonthsSaved)
}

func TestCompareScenariosBudgetAndStrategyOverrides(t *testing.T) {
	instruments, policy := comparisonFixture()

	budget := dec("400.00")
	snowball := domain.StrategySnowball
	comparison := NewSimulator().CompareScenarios(instruments, policy, domain.ScenarioOverrides{
		MonthlyExtraBudget: &budget,
		Strategy:           &snowball,
	}, testNow)

	assert.True(t, comparison.Simulated.MonthlyExtraBudget.Equal(budget))
	assert.Equal(t, domain.StrategySnowball, comparison.Simulated.Strategy)
	// Baseline stays on the persisted policy.
	assert.True(t, comparison.Current.MonthlyExtraBudget.Equal(policy.MonthlyExtraBudget))
	assert.Equal(t, domain.StrategyAvalanche, comparison.Current.Strategy)
}

func TestCompareScenariosNoOverridesIsNeutral(t *testing.T) {
	instruments, policy := comparisonFixture()

	comparison := NewSimulator().CompareScenarios(instruments, policy, domain.ScenarioOverrides{}, testNow)

	assert.True(t, comparison.InterestSaved.IsZero())
	assert.Equal(t, 0, comparison.MonthsSaved)
}

func TestCompareScenariosDoesNotMutateInstruments(t *testing.T) {
	instruments, policy := comparisonFixture()
	snapshot := make([]domain.DebtInstrument, len(instruments))
	copy(snapshot, instruments)

	lump := dec("750.00")
	NewSimulator().CompareScenarios(instruments, policy, domain.ScenarioOverrides{OneTimeExtra: &lump}, testNow)

	for i := range snapshot {
		require.True(t, instruments[i].CurrentBalance.Equal(snapshot[i].CurrentBalance))
	}
}

func TestCompareStrategies(t *testing.T) {
	instruments := []domain.DebtInstrument{
		instrument("smallCheap", "400.00", "6.00", "20.00"),
		instrument("bigCostly", "5000.00", "26.99", "100.00"),
	}
	comparison := NewSimulator().CompareStrategies(instruments, dec("200.00"), testNow)

	assert.Equal(t, domain.StrategyAvalanche, comparison.Current.Strategy)
	assert.Equal(t, domain.StrategySnowball, comparison.Simulated.Strategy)
	// Avalanche never pays more interest than snowball on this portfolio.
	assert.False(t, comparison.InterestSaved.IsPositive())
}
