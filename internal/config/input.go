package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/debtwise/payoff-calculator/internal/domain"
)

// PlanFile is the on-disk household plan: payoff policy, debt instruments,
// card snapshots, and optional balance history.
type PlanFile struct {
	Policy  domain.PayoffPolicy      `yaml:"policy"`
	Debts   []domain.DebtInstrument  `yaml:"debts"`
	Cards   []domain.CardBalance     `yaml:"cards"`
	History []domain.BalanceSnapshot `yaml:"history"`
}

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file and validates it. Validation
// here is the precondition gate: the calculation engine assumes amounts are
// non-negative and the strategy tag is recognized.
func (ip *InputParser) LoadFromFile(filename string) (*PlanFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan PlanFile
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &plan, nil
}

// ValidatePlan checks every field and reports all problems at once rather
// than stopping at the first.
func (ip *InputParser) ValidatePlan(plan *PlanFile) error {
	var problems []string

	if plan.Policy.MonthlyExtraBudget.IsNegative() {
		problems = append(problems, "policy: monthly_extra_budget must not be negative")
	}
	if plan.Policy.Strategy == "" {
		plan.Policy.Strategy = domain.StrategyAvalanche
	} else if _, err := domain.ParseStrategy(string(plan.Policy.Strategy)); err != nil {
		problems = append(problems, fmt.Sprintf("policy: %v", err))
	}

	seenIDs := make(map[string]bool)
	for i, debt := range plan.Debts {
		if debt.ID == "" {
			problems = append(problems, fmt.Sprintf("debt %d: id is required", i))
		} else if seenIDs[debt.ID] {
			problems = append(problems, fmt.Sprintf("debt %d: duplicate id %q", i, debt.ID))
		}
		seenIDs[debt.ID] = true
		if debt.CurrentBalance.IsNegative() {
			problems = append(problems, fmt.Sprintf("debt %q: current_balance must not be negative", debt.ID))
		}
		if debt.APR.IsNegative() {
			problems = append(problems, fmt.Sprintf("debt %q: apr must not be negative", debt.ID))
		}
		if debt.MinimumPayment.IsNegative() {
			problems = append(problems, fmt.Sprintf("debt %q: minimum_payment must not be negative", debt.ID))
		}
	}

	for i, card := range plan.Cards {
		if card.CardID == "" {
			problems = append(problems, fmt.Sprintf("card %d: card_id is required", i))
		}
		if card.Balance.IsNegative() {
			problems = append(problems, fmt.Sprintf("card %q: balance must not be negative", card.CardID))
		}
		if card.CreditLimit.IsNegative() {
			problems = append(problems, fmt.Sprintf("card %q: credit_limit must not be negative", card.CardID))
		}
	}

	for i, snap := range plan.History {
		if snap.CardID == "" {
			problems = append(problems, fmt.Sprintf("history %d: card_id is required", i))
		}
		if snap.RecordedAt.IsZero() {
			problems = append(problems, fmt.Sprintf("history %d: recorded_at is required", i))
		}
		if snap.Balance.IsNegative() {
			problems = append(problems, fmt.Sprintf("history %d: balance must not be negative", i))
		}
		if snap.CreditLimit.IsNegative() {
			problems = append(problems, fmt.Sprintf("history %d: credit_limit must not be negative", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%d problem(s):\n  - %s", len(problems), strings.Join(problems, "\n  - "))
	}
	return nil
}
