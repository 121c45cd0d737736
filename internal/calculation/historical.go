package calculation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtwise/payoff-calculator/internal/domain"
	"github.com/debtwise/payoff-calculator/pkg/dateutil"
	moneyutil "github.com/debtwise/payoff-calculator/pkg/decimal"
)

// dayTotals accumulates every snapshot observed on one calendar day.
type dayTotals struct {
	balance decimal.Decimal
	limit   decimal.Decimal
}

// AggregateHistory regroups point-in-time card snapshots into date-ordered
// utilization series: one for the household and one per user. Snapshots are
// bucketed at day granularity; timestamps within a day are not
// distinguished. A user's series carries the earliest-seen display name for
// that owner label.
func AggregateHistory(snapshots []domain.BalanceSnapshot) domain.UtilizationHistory {
	household := make(map[time.Time]*dayTotals)
	perUser := make(map[string]map[time.Time]*dayTotals)
	userNames := make(map[string]string)
	userOrder := make([]string, 0)

	for _, snap := range snapshots {
		day := dateutil.DayKey(snap.RecordedAt)

		accumulate(household, day, snap.Balance, snap.CreditLimit)

		if _, seen := perUser[snap.OwnerLabel]; !seen {
			perUser[snap.OwnerLabel] = make(map[time.Time]*dayTotals)
			userNames[snap.OwnerLabel] = snap.OwnerName
			userOrder = append(userOrder, snap.OwnerLabel)
		}
		accumulate(perUser[snap.OwnerLabel], day, snap.Balance, snap.CreditLimit)
	}

	history := domain.UtilizationHistory{
		Household: domain.HistoricalSeries{
			Subject:     "household",
			DisplayName: "Household",
			Points:      seriesPoints(household),
		},
		Users: make([]domain.HistoricalSeries, 0, len(userOrder)),
	}
	for _, label := range userOrder {
		history.Users = append(history.Users, domain.HistoricalSeries{
			Subject:     label,
			DisplayName: userNames[label],
			Points:      seriesPoints(perUser[label]),
		})
	}
	return history
}

func accumulate(buckets map[time.Time]*dayTotals, day time.Time, balance, limit decimal.Decimal) {
	totals, ok := buckets[day]
	if !ok {
		totals = &dayTotals{balance: decimal.Zero, limit: decimal.Zero}
		buckets[day] = totals
	}
	totals.balance = totals.balance.Add(balance)
	totals.limit = totals.limit.Add(limit)
}

func seriesPoints(buckets map[time.Time]*dayTotals) []domain.HistoricalPoint {
	points := make([]domain.HistoricalPoint, 0, len(buckets))
	for day, totals := range buckets {
		points = append(points, domain.HistoricalPoint{
			Date:        day,
			Balance:     totals.balance,
			CreditLimit: totals.limit,
			Utilization: moneyutil.Percent(totals.balance, totals.limit),
		})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
