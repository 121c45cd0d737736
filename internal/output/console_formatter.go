package output

import (
	"fmt"
	"strings"

	"github.com/debtwise/payoff-calculator/internal/domain"
)

// ConsoleFormatter renders the plan report as plain text tables.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *PlanReport) ([]byte, error) {
	var b strings.Builder

	if report.Simulation != nil {
		writeSimulation(&b, report.Simulation)
	}
	if report.Comparison != nil {
		writeComparison(&b, report.Comparison)
	}
	if report.Utilization != nil {
		writeUtilization(&b, report.Utilization)
	}
	if report.Milestones != nil {
		writeMilestones(&b, report.Milestones)
	}
	if report.History != nil {
		writeHistory(&b, report.History)
	}
	return []byte(b.String()), nil
}

func writeSimulation(b *strings.Builder, sim *domain.SimulationResult) {
	fmt.Fprintf(b, "PAYOFF PLAN (%s)\n", sim.Strategy)
	fmt.Fprintf(b, "================\n")
	fmt.Fprintf(b, "Total current debt:   $%s\n", sim.TotalCurrentDebt.StringFixed(2))
	fmt.Fprintf(b, "Monthly extra budget: $%s\n", sim.MonthlyExtraBudget.StringFixed(2))
	fmt.Fprintf(b, "Total interest cost:  $%s\n", sim.TotalInterestCost.StringFixed(2))
	if sim.Capped {
		fmt.Fprintf(b, "Months to debt-free:  %d (horizon reached, plan incomplete)\n", sim.MonthsToDebtFree)
	} else {
		fmt.Fprintf(b, "Months to debt-free:  %d\n", sim.MonthsToDebtFree)
		if sim.DebtFreeDate != "" {
			fmt.Fprintf(b, "Debt-free date:       %s\n", sim.DebtFreeDate)
		}
	}

	if len(sim.PaymentInstructions) > 0 {
		fmt.Fprintf(b, "\nTHIS MONTH\n")
		fmt.Fprintf(b, "%-20s %12s %12s %14s %s\n", "Debt", "Minimum", "Extra", "New Balance", "Payoff")
		for _, instr := range sim.PaymentInstructions {
			payoff := "-"
			if instr.PayoffDate != nil {
				payoff = *instr.PayoffDate
			}
			if instr.PaysOffThisMonth {
				payoff += " (this month!)"
			}
			fmt.Fprintf(b, "%-20s %12s %12s %14s %s\n",
				instr.DisplayName,
				"$"+instr.MinimumDue.StringFixed(2),
				"$"+instr.ExtraAllocated.StringFixed(2),
				"$"+instr.ResultingBalance.StringFixed(2),
				payoff)
		}
	}
	b.WriteString("\n")
}

func writeComparison(b *strings.Builder, cmp *domain.ScenarioComparison) {
	fmt.Fprintf(b, "SCENARIO COMPARISON\n")
	fmt.Fprintf(b, "===================\n")
	fmt.Fprintf(b, "%-12s %18s %14s\n", "", "Interest", "Months")
	fmt.Fprintf(b, "%-12s %18s %14d\n", "Current", "$"+cmp.Current.TotalInterestCost.StringFixed(2), cmp.Current.MonthsToDebtFree)
	fmt.Fprintf(b, "%-12s %18s %14d\n", "Simulated", "$"+cmp.Simulated.TotalInterestCost.StringFixed(2), cmp.Simulated.MonthsToDebtFree)
	fmt.Fprintf(b, "%-12s %18s %14d\n\n", "Saved", "$"+cmp.InterestSaved.StringFixed(2), cmp.MonthsSaved)
}

func writeUtilization(b *strings.Builder, util *domain.UtilizationReport) {
	fmt.Fprintf(b, "CREDIT UTILIZATION\n")
	fmt.Fprintf(b, "==================\n")
	fmt.Fprintf(b, "%-20s %12s %14s %8s  %s\n", "Card", "Balance", "Limit", "Util", "Rating")
	for _, rec := range util.Cards {
		fmt.Fprintf(b, "%-20s %12s %14s %7s%%  %s\n",
			rec.DisplayName, "$"+rec.Balance.StringFixed(2), "$"+rec.CreditLimit.StringFixed(2),
			rec.Utilization.StringFixed(1), rec.RatingLabel)
	}
	for _, rec := range util.Users {
		fmt.Fprintf(b, "%-20s %12s %14s %7s%%  %s\n",
			"user:"+rec.DisplayName, "$"+rec.Balance.StringFixed(2), "$"+rec.CreditLimit.StringFixed(2),
			rec.Utilization.StringFixed(1), rec.RatingLabel)
	}
	agg := util.Aggregate
	fmt.Fprintf(b, "%-20s %12s %14s %7s%%  %s\n\n",
		"household", "$"+agg.Balance.StringFixed(2), "$"+agg.CreditLimit.StringFixed(2),
		agg.Utilization.StringFixed(1), agg.RatingLabel)
}

func writeMilestones(b *strings.Builder, ms *domain.MilestoneReport) {
	fmt.Fprintf(b, "UTILIZATION MILESTONES (current %s%%, %s)\n",
		ms.CurrentUtilization.StringFixed(1), ms.CurrentRating.Label())
	fmt.Fprintf(b, "======================\n")
	for _, m := range ms.Milestones {
		status := "pay down $" + m.DollarsNeeded.StringFixed(2)
		if m.Achieved {
			status = "achieved"
		}
		fmt.Fprintf(b, "  below %s%%: %s\n", m.ThresholdPercent.StringFixed(0), status)
	}
	b.WriteString("\n")
}

func writeHistory(b *strings.Builder, hist *domain.UtilizationHistory) {
	fmt.Fprintf(b, "UTILIZATION HISTORY\n")
	fmt.Fprintf(b, "===================\n")
	writeSeries(b, hist.Household)
	for _, series := range hist.Users {
		writeSeries(b, series)
	}
}

func writeSeries(b *strings.Builder, series domain.HistoricalSeries) {
	fmt.Fprintf(b, "%s:\n", series.DisplayName)
	for _, p := range series.Points {
		fmt.Fprintf(b, "  %s  %7s%%  ($%s / $%s)\n",
			p.Date.Format("2006-01-02"), p.Utilization.StringFixed(1),
			p.Balance.StringFixed(2), p.CreditLimit.StringFixed(2))
	}
}
