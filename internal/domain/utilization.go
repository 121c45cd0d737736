package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rating is the qualitative band for a utilization ratio.
type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
	RatingVeryPoor  Rating = "very_poor"
)

// Label returns the display form of the rating.
func (r Rating) Label() string {
	switch r {
	case RatingExcellent:
		return "Excellent"
	case RatingGood:
		return "Good"
	case RatingFair:
		return "Fair"
	case RatingPoor:
		return "Poor"
	case RatingVeryPoor:
		return "Very Poor"
	default:
		return string(r)
	}
}

// RateUtilization maps a utilization percentage to its band. The same table
// backs per-card, per-user, and aggregate ratings as well as milestones.
func RateUtilization(utilization decimal.Decimal) Rating {
	switch {
	case utilization.LessThan(decimal.NewFromInt(10)):
		return RatingExcellent
	case utilization.LessThan(decimal.NewFromInt(30)):
		return RatingGood
	case utilization.LessThan(decimal.NewFromInt(50)):
		return RatingFair
	case utilization.LessThan(decimal.NewFromInt(75)):
		return RatingPoor
	default:
		return RatingVeryPoor
	}
}

// CardBalance is one card's balance/limit pair as supplied by the caller.
type CardBalance struct {
	CardID      string          `json:"card_id" yaml:"card_id"`
	DisplayName string          `json:"display_name" yaml:"display_name"`
	OwnerLabel  string          `json:"owner_label" yaml:"owner_label"`
	Balance     decimal.Decimal `json:"balance" yaml:"balance"`
	CreditLimit decimal.Decimal `json:"credit_limit" yaml:"credit_limit"`
}

// UtilizationRecord is one computed ratio at any of the three granularities.
type UtilizationRecord struct {
	Subject     string          `json:"subject"` // card id, owner label, or "household"
	DisplayName string          `json:"display_name"`
	Balance     decimal.Decimal `json:"balance"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Utilization decimal.Decimal `json:"utilization"` // percent, one decimal
	Rating      Rating          `json:"rating"`
	RatingLabel string          `json:"rating_label"`
}

// UtilizationReport groups the three granularities of one calculation.
type UtilizationReport struct {
	Cards     []UtilizationRecord `json:"cards"`
	Users     []UtilizationRecord `json:"users"`
	Aggregate UtilizationRecord   `json:"aggregate"`
}

// Milestone is the dollar distance from the aggregate balance to one fixed
// utilization threshold.
type Milestone struct {
	ThresholdPercent decimal.Decimal `json:"threshold_percent"`
	DollarsNeeded    decimal.Decimal `json:"dollars_needed"`
	Achieved         bool            `json:"achieved"`
}

// MilestoneReport pairs the current aggregate position with the distance to
// every threshold.
type MilestoneReport struct {
	CurrentUtilization decimal.Decimal `json:"current_utilization"`
	CurrentRating      Rating          `json:"current_rating"`
	Milestones         []Milestone     `json:"milestones"`
}

// BalanceSnapshot is one point-in-time card observation used by the
// historical aggregator.
type BalanceSnapshot struct {
	CardID      string          `json:"card_id" yaml:"card_id"`
	OwnerLabel  string          `json:"owner_label" yaml:"owner_label"`
	OwnerName   string          `json:"owner_name" yaml:"owner_name"`
	RecordedAt  time.Time       `json:"recorded_at" yaml:"recorded_at"`
	Balance     decimal.Decimal `json:"balance" yaml:"balance"`
	CreditLimit decimal.Decimal `json:"credit_limit" yaml:"credit_limit"`
}

// HistoricalPoint is one day's aggregated utilization.
type HistoricalPoint struct {
	Date        time.Time       `json:"date"`
	Balance     decimal.Decimal `json:"balance"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Utilization decimal.Decimal `json:"utilization"`
}

// HistoricalSeries is a date-ascending utilization series for one subject.
type HistoricalSeries struct {
	Subject     string            `json:"subject"`
	DisplayName string            `json:"display_name"`
	Points      []HistoricalPoint `json:"points"`
}

// UtilizationHistory is the historical aggregator's output: one household
// series plus one series per user.
type UtilizationHistory struct {
	Household HistoricalSeries   `json:"household"`
	Users     []HistoricalSeries `json:"users"`
}
