package output

import (
	"fmt"
	"os"
	"time"

	"github.com/debtwise/payoff-calculator/internal/domain"
)

// PlanReport bundles whatever the caller computed for one report run. Nil
// sections are simply omitted by the formatters.
type PlanReport struct {
	Simulation  *domain.SimulationResult   `json:"simulation,omitempty"`
	Comparison  *domain.ScenarioComparison `json:"comparison,omitempty"`
	Utilization *domain.UtilizationReport  `json:"utilization,omitempty"`
	Milestones  *domain.MilestoneReport    `json:"milestones,omitempty"`
	History     *domain.UtilizationHistory `json:"history,omitempty"`
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(report *PlanReport) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*PlanReport) ([]byte, error)
}

func (ff FormatterFunc) Format(r *PlanReport) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                         { return ff.ID }

// builtInFormatters stores available formatters (extended incrementally).
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	JSONFormatter{},
	CSVFormatter{},
}

// Lookup returns the formatter registered under name.
func Lookup(name string) (Formatter, error) {
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown output format %q", name)
}

// GenerateReport formats the report and writes it to stdout.
func GenerateReport(report *PlanReport, format string) error {
	f, err := Lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatting failed: %w", f.Name(), err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

// WriteFormatted runs a formatter and writes output to a timestamped file
// with the given extension, returning the filename.
func WriteFormatted(f Formatter, report *PlanReport, ext string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("payoff_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
