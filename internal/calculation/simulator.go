package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff-calculator/internal/domain"
	"github.com/debtwise/payoff-calculator/pkg/dateutil"
	moneyutil "github.com/debtwise/payoff-calculator/pkg/decimal"
)

// Simulator projects a debt portfolio month by month under a payoff policy.
// It is a pure calculator: every call owns its state, never touches the
// input instruments, and is safe to invoke concurrently.
type Simulator struct {
	Logger Logger
}

// NewSimulator creates a simulator with a no-op logger.
func NewSimulator() *Simulator {
	return &Simulator{Logger: NopLogger{}}
}

// SetLogger sets the logger. A nil logger installs the no-op default.
func (s *Simulator) SetLogger(l Logger) {
	if l == nil {
		s.Logger = NopLogger{}
		return
	}
	s.Logger = l
}

// simulationState is the working state of one Simulate call. It is created
// fresh per call and discarded on return.
type simulationState struct {
	balances           map[string]decimal.Decimal
	statuses           map[string]*domain.InstrumentStatus
	freedMinimumPool   moneyutil.Money
	cumulativeInterest moneyutil.Money
}

// monthOneRecord captures what happened to one instrument in month 1, kept
// separately from the timeline to build payment instructions.
type monthOneRecord struct {
	minimumDue       moneyutil.Money
	extraAllocated   moneyutil.Money
	resultingBalance moneyutil.Money
	paysOff          bool
}

// Simulate runs the amortization state machine over months 1..360,
// terminating early once every instrument that started with a positive
// balance reaches zero. Each month it accrues cent-rounded interest, applies
// minimum payments, then allocates the extra pool (monthly budget plus freed
// minimums, plus the one-time extra in month 1) in strategy order. A paid-off
// instrument's minimum joins the freed pool for subsequent months, never the
// month it pays off.
//
// Input amounts are assumed validated by the caller; negative budget figures
// are clamped to zero rather than propagated.
func (s *Simulator) Simulate(input domain.SimulationInput) domain.SimulationResult {
	monthlyExtra := clampNonNegative(input.MonthlyExtraBudget)
	oneTimeExtra := clampNonNegative(input.OneTimeExtra)

	state := &simulationState{
		balances:           make(map[string]decimal.Decimal, len(input.Instruments)),
		statuses:           make(map[string]*domain.InstrumentStatus, len(input.Instruments)),
		freedMinimumPool:   moneyutil.Zero(),
		cumulativeInterest: moneyutil.Zero(),
	}

	// Instruments with no positive balance are excluded from simulation but
	// still appear in the instructions.
	active := make([]domain.DebtInstrument, 0, len(input.Instruments))
	totalDebt := moneyutil.Zero()
	for _, inst := range input.Instruments {
		if inst.CurrentBalance.IsPositive() {
			active = append(active, inst)
			state.balances[inst.ID] = inst.CurrentBalance
			state.statuses[inst.ID] = &domain.InstrumentStatus{State: domain.StateActive}
			totalDebt = totalDebt.Add(moneyutil.NewMoneyFromDecimal(inst.CurrentBalance))
		}
	}

	result := domain.SimulationResult{
		Timeline:           []domain.TimelineEntry{},
		TotalInterestCost:  decimal.Zero,
		TotalCurrentDebt:   totalDebt.Decimal,
		MonthlyExtraBudget: monthlyExtra,
		Strategy:           input.Strategy,
	}

	if len(active) == 0 {
		result.PaymentInstructions = buildInstructions(input.Instruments, nil)
		return result
	}

	monthOne := make(map[string]*monthOneRecord, len(active))

	for month := 1; month <= domain.MaxSimulationMonths; month++ {
		monthInterest := moneyutil.Zero()

		// 1. Accrue interest on every instrument still carrying balance.
		for _, inst := range active {
			if !state.statuses[inst.ID].Active() {
				continue
			}
			balance := moneyutil.NewMoneyFromDecimal(state.balances[inst.ID])
			interest := balance.MonthlyInterest(inst.APR)
			state.balances[inst.ID] = balance.Add(interest).Decimal
			monthInterest = monthInterest.Add(interest)
		}
		state.cumulativeInterest = state.cumulativeInterest.Add(monthInterest)

		// 2. Apply minimum payments, capped at the outstanding balance.
		for _, inst := range active {
			if !state.statuses[inst.ID].Active() {
				continue
			}
			balance := moneyutil.NewMoneyFromDecimal(state.balances[inst.ID])
			payment := moneyutil.Min(moneyutil.NewMoneyFromDecimal(inst.MinimumPayment), balance)
			state.balances[inst.ID] = balance.Sub(payment).Decimal
			if month == 1 {
				monthOne[inst.ID] = &monthOneRecord{minimumDue: payment, extraAllocated: moneyutil.Zero()}
			}
		}

		// 3. The extra pool: budget plus freed minimums, plus the one-time
		// amount in month 1 only.
		available := moneyutil.NewMoneyFromDecimal(monthlyExtra).Add(state.freedMinimumPool)
		if month == 1 {
			available = available.Add(moneyutil.NewMoneyFromDecimal(oneTimeExtra))
		}

		// 4. Allocate in strategy order, recomputed over current balances.
		for _, inst := range OrderInstruments(active, state.balances, input.Strategy) {
			if !available.IsPositive() {
				break
			}
			balance := moneyutil.NewMoneyFromDecimal(state.balances[inst.ID])
			payment := moneyutil.Min(available, balance)
			state.balances[inst.ID] = balance.Sub(payment).Decimal
			available = available.Sub(payment)
			if month == 1 {
				monthOne[inst.ID].extraAllocated = monthOne[inst.ID].extraAllocated.Add(payment)
			}
		}

		// 5. Cascade: clamp to zero, mark paid off once, free the minimum
		// for subsequent months.
		for _, inst := range active {
			status := state.statuses[inst.ID]
			if !status.Active() {
				continue
			}
			if !state.balances[inst.ID].IsPositive() {
				state.balances[inst.ID] = decimal.Zero
				if status.MarkPaidOff(month) {
					state.freedMinimumPool = state.freedMinimumPool.Add(moneyutil.NewMoneyFromDecimal(inst.MinimumPayment))
					s.Logger.Debugf("month %d: %s paid off, freeing %s minimum", month, inst.ID, inst.MinimumPayment.StringFixed(2))
				}
			}
		}

		if month == 1 {
			for _, inst := range active {
				rec := monthOne[inst.ID]
				rec.resultingBalance = moneyutil.NewMoneyFromDecimal(state.balances[inst.ID])
				rec.paysOff = !state.statuses[inst.ID].Active()
			}
		}

		// 6. Record the month with post-allocation balances.
		result.Timeline = append(result.Timeline, domain.TimelineEntry{
			Month:              month,
			Label:              dateutil.MonthLabel(input.Now, month),
			Balances:           snapshotBalances(active, state.balances),
			TotalDebt:          sumBalances(active, state.balances),
			InterestAccrued:    monthInterest.Decimal,
			CumulativeInterest: state.cumulativeInterest.Decimal,
		})

		// 7. Terminate once every originally-positive instrument is paid off.
		if allPaidOff(active, state.statuses) {
			result.MonthsToDebtFree = month
			result.DebtFreeDate = dateutil.YearMonth(input.Now, month)
			break
		}
		if month == domain.MaxSimulationMonths {
			result.Capped = true
			result.MonthsToDebtFree = domain.MaxSimulationMonths
		}
	}

	result.TotalInterestCost = state.cumulativeInterest.Decimal
	result.PaymentInstructions = buildInstructions(input.Instruments, monthOne)
	for i, instr := range result.PaymentInstructions {
		if status, ok := state.statuses[instr.InstrumentID]; ok && !status.Active() {
			date := dateutil.YearMonth(input.Now, status.PaidOffMonth)
			result.PaymentInstructions[i].PayoffDate = &date
		}
	}
	return result
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func snapshotBalances(instruments []domain.DebtInstrument, balances map[string]decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(instruments))
	for _, inst := range instruments {
		out[inst.ID] = balances[inst.ID]
	}
	return out
}

func sumBalances(instruments []domain.DebtInstrument, balances map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, inst := range instruments {
		total = total.Add(balances[inst.ID])
	}
	return total
}

func allPaidOff(instruments []domain.DebtInstrument, statuses map[string]*domain.InstrumentStatus) bool {
	for _, inst := range instruments {
		if statuses[inst.ID].Active() {
			return false
		}
	}
	return true
}

// buildInstructions emits one instruction per input instrument in input
// order. Instruments that never entered the simulation get zero amounts and
// no payoff date.
func buildInstructions(instruments []domain.DebtInstrument, monthOne map[string]*monthOneRecord) []domain.PaymentInstruction {
	instructions := make([]domain.PaymentInstruction, 0, len(instruments))
	for _, inst := range instruments {
		instruction := domain.PaymentInstruction{
			InstrumentID:     inst.ID,
			DisplayName:      inst.DisplayName,
			MinimumDue:       decimal.Zero,
			ExtraAllocated:   decimal.Zero,
			ResultingBalance: decimal.Zero,
		}
		if rec, ok := monthOne[inst.ID]; ok {
			instruction.MinimumDue = rec.minimumDue.Decimal
			instruction.ExtraAllocated = rec.extraAllocated.Decimal
			instruction.ResultingBalance = rec.resultingBalance.Decimal
			instruction.PaysOffThisMonth = rec.paysOff
		}
		instructions = append(instructions, instruction)
	}
	return instructions
}
