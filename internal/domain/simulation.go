package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxSimulationMonths caps every payoff projection. A portfolio that is not
// debt-free by this horizon is reported capped rather than simulated further.
const MaxSimulationMonths = 360

// PayoffPolicy is the household's persisted payoff configuration.
type PayoffPolicy struct {
	MonthlyExtraBudget decimal.Decimal `json:"monthly_extra_budget" yaml:"monthly_extra_budget"`
	Strategy           Strategy        `json:"strategy" yaml:"strategy"`
}

// SimulationInput is everything one Simulate call depends on. Now anchors
// month labels and payoff dates so results are reproducible in tests.
type SimulationInput struct {
	Instruments        []DebtInstrument `json:"instruments"`
	MonthlyExtraBudget decimal.Decimal  `json:"monthly_extra_budget"`
	Strategy           Strategy         `json:"strategy"`
	OneTimeExtra       decimal.Decimal  `json:"one_time_extra"` // applied in month 1 only
	Now                time.Time        `json:"-"`
}

// TimelineEntry is one simulated month, recorded after interest, minimums,
// and extra allocation have all been applied.
type TimelineEntry struct {
	Month              int                        `json:"month"` // 1-based
	Label              string                     `json:"label"` // e.g. "Mar 2026"
	Balances           map[string]decimal.Decimal `json:"balances"`
	TotalDebt          decimal.Decimal            `json:"total_debt"`
	InterestAccrued    decimal.Decimal            `json:"interest_accrued"`
	CumulativeInterest decimal.Decimal            `json:"cumulative_interest"`
}

// PaymentInstruction tells the user what to do this month for one
// instrument. PayoffDate is nil when the instrument does not reach zero
// within the simulation horizon.
type PaymentInstruction struct {
	InstrumentID     string          `json:"instrument_id"`
	DisplayName      string          `json:"display_name"`
	MinimumDue       decimal.Decimal `json:"minimum_due"`
	ExtraAllocated   decimal.Decimal `json:"extra_allocated"`
	ResultingBalance decimal.Decimal `json:"resulting_balance"`
	PaysOffThisMonth bool            `json:"pays_off_this_month"`
	PayoffDate       *string         `json:"payoff_date"` // year-month, nil if not within horizon
}

// SimulationResult is the complete outcome of one Simulate call.
type SimulationResult struct {
	PaymentInstructions []PaymentInstruction `json:"payment_instructions"`
	Timeline            []TimelineEntry      `json:"timeline"`
	TotalInterestCost   decimal.Decimal      `json:"total_interest_cost"`
	MonthsToDebtFree    int                  `json:"months_to_debt_free"`
	DebtFreeDate        string               `json:"debt_free_date"` // year-month, empty if capped or no debt
	Capped              bool                 `json:"capped"`

	// Echoed inputs for the caller's convenience.
	TotalCurrentDebt   decimal.Decimal `json:"total_current_debt"`
	MonthlyExtraBudget decimal.Decimal `json:"monthly_extra_budget"`
	Strategy           Strategy        `json:"strategy"`
}

// ScenarioOverrides are the caller-supplied deltas merged over the baseline
// policy for a what-if run. Nil fields leave the baseline value in place.
type ScenarioOverrides struct {
	OneTimeExtra       *decimal.Decimal `json:"one_time_extra,omitempty" yaml:"one_time_extra,omitempty"`
	MonthlyExtraBudget *decimal.Decimal `json:"monthly_extra_budget,omitempty" yaml:"monthly_extra_budget,omitempty"`
	Strategy           *Strategy        `json:"strategy,omitempty" yaml:"strategy,omitempty"`
}

// ScenarioComparison holds a baseline run, a what-if run, and the signed
// savings between them. Positive savings favor the simulated scenario.
type ScenarioComparison struct {
	Current       SimulationResult `json:"current"`
	Simulated     SimulationResult `json:"simulated"`
	InterestSaved decimal.Decimal  `json:"interest_saved"`
	MonthsSaved   int              `json:"months_saved"`
}
