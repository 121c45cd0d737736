package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
)

// CSVFormatter exports the simulation timeline as CSV, one row per month.
// Reports without a simulation section produce only the header row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"month", "label", "total_debt", "interest_accrued", "cumulative_interest"}

	// Stable per-instrument columns, sorted by id.
	var ids []string
	if report.Simulation != nil && len(report.Simulation.Timeline) > 0 {
		for id := range report.Simulation.Timeline[0].Balances {
			ids = append(ids, id)
		}
		sort.Strings(ids)
	}
	header = append(header, ids...)
	if err := w.Write(header); err != nil {
		return nil, err
	}

	if report.Simulation != nil {
		for _, entry := range report.Simulation.Timeline {
			row := []string{
				fmt.Sprintf("%d", entry.Month),
				entry.Label,
				entry.TotalDebt.StringFixed(2),
				entry.InterestAccrued.StringFixed(2),
				entry.CumulativeInterest.StringFixed(2),
			}
			for _, id := range ids {
				row = append(row, entry.Balances[id].StringFixed(2))
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
