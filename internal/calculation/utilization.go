package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff-calculator/internal/domain"
	moneyutil "github.com/debtwise/payoff-calculator/pkg/decimal"
)

// MilestoneThresholds are the fixed utilization targets, highest first.
// The list is a constant of the product, not configurable.
var MilestoneThresholds = []int64{75, 50, 30, 10}

// CalculateUtilization computes balance-to-limit ratios at three
// granularities: per card, per owning user (balances and limits summed
// independently before dividing), and one household aggregate. Ratios are
// percentages rounded to one decimal; a non-positive limit yields 0.
func CalculateUtilization(cards []domain.CardBalance) domain.UtilizationReport {
	report := domain.UtilizationReport{
		Cards: make([]domain.UtilizationRecord, 0, len(cards)),
	}

	type userTotals struct {
		balance decimal.Decimal
		limit   decimal.Decimal
	}
	userOrder := make([]string, 0)
	users := make(map[string]*userTotals)

	totalBalance := decimal.Zero
	totalLimit := decimal.Zero

	for _, card := range cards {
		report.Cards = append(report.Cards, utilizationRecord(card.CardID, card.DisplayName, card.Balance, card.CreditLimit))

		totals, seen := users[card.OwnerLabel]
		if !seen {
			totals = &userTotals{balance: decimal.Zero, limit: decimal.Zero}
			users[card.OwnerLabel] = totals
			userOrder = append(userOrder, card.OwnerLabel)
		}
		totals.balance = totals.balance.Add(card.Balance)
		totals.limit = totals.limit.Add(card.CreditLimit)

		totalBalance = totalBalance.Add(card.Balance)
		totalLimit = totalLimit.Add(card.CreditLimit)
	}

	report.Users = make([]domain.UtilizationRecord, 0, len(userOrder))
	for _, label := range userOrder {
		totals := users[label]
		report.Users = append(report.Users, utilizationRecord(label, label, totals.balance, totals.limit))
	}

	report.Aggregate = utilizationRecord("household", "Household", totalBalance, totalLimit)
	return report
}

func utilizationRecord(subject, displayName string, balance, limit decimal.Decimal) domain.UtilizationRecord {
	utilization := moneyutil.Percent(balance, limit)
	rating := domain.RateUtilization(utilization)
	return domain.UtilizationRecord{
		Subject:     subject,
		DisplayName: displayName,
		Balance:     balance,
		CreditLimit: limit,
		Utilization: utilization,
		Rating:      rating,
		RatingLabel: rating.Label(),
	}
}

// CalculateMilestones reports, for each fixed threshold, the dollar amount
// that must be paid down from the aggregate balance to reach it:
// max(0, balance - threshold% * limit), rounded to cents. A threshold is
// achieved once current utilization is at or below it.
func CalculateMilestones(balance, limit decimal.Decimal) domain.MilestoneReport {
	current := moneyutil.Percent(balance, limit)
	report := domain.MilestoneReport{
		CurrentUtilization: current,
		CurrentRating:      domain.RateUtilization(current),
		Milestones:         make([]domain.Milestone, 0, len(MilestoneThresholds)),
	}

	for _, threshold := range MilestoneThresholds {
		thresholdPct := decimal.NewFromInt(threshold)
		target := limit.Mul(thresholdPct).Div(decimal.NewFromInt(100))
		needed := moneyutil.Max(moneyutil.Zero(), moneyutil.NewMoneyFromDecimal(balance.Sub(target))).RoundCents()
		report.Milestones = append(report.Milestones, domain.Milestone{
			ThresholdPercent: thresholdPct,
			DollarsNeeded:    needed.Decimal,
			Achieved:         current.LessThanOrEqual(thresholdPct),
		})
	}
	return report
}
