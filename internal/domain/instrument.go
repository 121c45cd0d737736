package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Strategy selects the extra-payment allocation order.
type Strategy string

const (
	// StrategyAvalanche prioritizes the highest-APR debt first.
	StrategyAvalanche Strategy = "avalanche"
	// StrategySnowball prioritizes the lowest-balance debt first.
	StrategySnowball Strategy = "snowball"
)

// ParseStrategy converts a string tag into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAvalanche:
		return StrategyAvalanche, nil
	case StrategySnowball:
		return StrategySnowball, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want avalanche or snowball)", s)
	}
}

// DebtInstrument is one debt as supplied by the caller. The engine treats it
// as an immutable snapshot and never writes through it.
type DebtInstrument struct {
	ID             string          `json:"id" yaml:"id"`
	DisplayName    string          `json:"display_name" yaml:"display_name"`
	CurrentBalance decimal.Decimal `json:"current_balance" yaml:"current_balance"`
	APR            decimal.Decimal `json:"apr" yaml:"apr"` // annual percentage rate, percent
	MinimumPayment decimal.Decimal `json:"minimum_payment" yaml:"minimum_payment"`
	OwnerLabel     string          `json:"owner_label" yaml:"owner_label"`
}

// InstrumentState tags where an instrument is in its payoff lifecycle.
type InstrumentState string

const (
	StateActive  InstrumentState = "active"
	StatePaidOff InstrumentState = "paid_off"
)

// InstrumentStatus is the per-instrument lifecycle record inside one
// simulation. An instrument transitions Active -> PaidOff(month) at most
// once; MarkPaidOff enforces the write-once rule.
type InstrumentStatus struct {
	State        InstrumentState `json:"state"`
	PaidOffMonth int             `json:"paid_off_month,omitempty"` // 1-based, zero while active
}

// Active reports whether the instrument still carries balance.
func (s InstrumentStatus) Active() bool {
	return s.State == StateActive
}

// MarkPaidOff transitions to PaidOff at the given month. The transition
// happens at most once; later calls are ignored and report false.
func (s *InstrumentStatus) MarkPaidOff(month int) bool {
	if s.State == StatePaidOff {
		return false
	}
	s.State = StatePaidOff
	s.PaidOffMonth = month
	return true
}
