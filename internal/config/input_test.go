package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debtwise/payoff-calculator/internal/domain"
)

func writePlan(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

const validPlan = `
policy:
  monthly_extra_budget: "200.00"
  strategy: avalanche
debts:
  - id: visa
    display_name: Visa
    current_balance: "1000.00"
    apr: "24.0"
    minimum_payment: "25.00"
    owner_label: sam
  - id: loan
    display_name: Car Loan
    current_balance: "8500.00"
    apr: "6.5"
    minimum_payment: "230.00"
    owner_label: alex
cards:
  - card_id: visa
    display_name: Visa
    owner_label: sam
    balance: "293.00"
    credit_limit: "1000.00"
history:
  - card_id: visa
    owner_label: sam
    owner_name: Sam
    recorded_at: 2026-01-05T00:00:00Z
    balance: "400.00"
    credit_limit: "1000.00"
`

func TestLoadFromFile(t *testing.T) {
	plan, err := NewInputParser().LoadFromFile(writePlan(t, validPlan))
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyAvalanche, plan.Policy.Strategy)
	assert.Equal(t, "200.00", plan.Policy.MonthlyExtraBudget.StringFixed(2))

	require.Len(t, plan.Debts, 2)
	assert.Equal(t, "visa", plan.Debts[0].ID)
	assert.Equal(t, "24.00", plan.Debts[0].APR.StringFixed(2))

	require.Len(t, plan.Cards, 1)
	assert.Equal(t, "293.00", plan.Cards[0].Balance.StringFixed(2))

	require.Len(t, plan.History, 1)
	assert.Equal(t, 2026, plan.History[0].RecordedAt.Year())
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileBadYAML(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(writePlan(t, "policy: [not: closed"))
	assert.Error(t, err)
}

func TestValidateDefaultsStrategy(t *testing.T) {
	plan := &PlanFile{}
	require.NoError(t, NewInputParser().ValidatePlan(plan))
	assert.Equal(t, domain.StrategyAvalanche, plan.Policy.Strategy)
}

func TestValidateRejectsUnknownStrategy(t *testing.T) {
	const contents = `
policy:
  strategy: highest-first
`
	_, err := NewInputParser().LoadFromFile(writePlan(t, contents))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestValidateCollectsAllProblems(t *testing.T) {
	const contents = `
policy:
  monthly_extra_budget: "-5.00"
  strategy: avalanche
debts:
  - id: visa
    current_balance: "-10.00"
    apr: "-1.0"
    minimum_payment: "25.00"
  - id: visa
    current_balance: "100.00"
    apr: "10.0"
    minimum_payment: "10.00"
cards:
  - card_id: c1
    balance: "-3.00"
    credit_limit: "1000.00"
`
	_, err := NewInputParser().LoadFromFile(writePlan(t, contents))
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, "monthly_extra_budget")
	assert.Contains(t, msg, "current_balance")
	assert.Contains(t, msg, "apr")
	assert.Contains(t, msg, `duplicate id "visa"`)
	assert.Contains(t, msg, "card \"c1\": balance")
}

func TestValidateHistoryRequiresTimestamp(t *testing.T) {
	const contents = `
history:
  - card_id: v1
    balance: "10.00"
    credit_limit: "100.00"
`
	_, err := NewInputParser().LoadFromFile(writePlan(t, contents))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recorded_at is required")
}
