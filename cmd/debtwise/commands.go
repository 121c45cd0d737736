package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/debtwise/payoff-calculator/internal/calculation"
	"github.com/debtwise/payoff-calculator/internal/config"
	"github.com/debtwise/payoff-calculator/internal/domain"
	"github.com/debtwise/payoff-calculator/internal/output"
	moneyutil "github.com/debtwise/payoff-calculator/pkg/decimal"
)

type rootFlags struct {
	planFile string
	format   string
	verbose  bool
	save     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "debtwise",
		Short: "Debt payoff planning and credit utilization analytics",
		Long: `debtwise projects a household's debt payoff month by month under an
avalanche or snowball strategy and reports credit utilization analytics.
All calculations run from a YAML plan file; nothing is persisted.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&flags.planFile, "plan", "p", "plan.yaml", "path to the household plan file")
	root.PersistentFlags().StringVarP(&flags.format, "format", "f", "console", "output format: console, json, or csv")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&flags.save, "save", false, "also write the report to a timestamped file")

	root.AddCommand(
		newSimulateCmd(flags),
		newCompareCmd(flags),
		newUtilizationCmd(flags),
		newMilestonesCmd(flags),
		newHistoryCmd(flags),
	)
	return root
}

func loadPlan(flags *rootFlags) (*config.PlanFile, error) {
	return config.NewInputParser().LoadFromFile(flags.planFile)
}

func newSimulator(flags *rootFlags) *calculation.Simulator {
	sim := calculation.NewSimulator()
	sim.SetLogger(newEngineLogger(flags.verbose))
	return sim
}

// parseMoneyFlag converts a --budget style flag into a decimal, rejecting
// negatives before anything reaches the engine.
func parseMoneyFlag(name, value string) (decimal.Decimal, error) {
	m, err := moneyutil.NewMoneyFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	if m.IsNegative() {
		return decimal.Zero, fmt.Errorf("--%s must not be negative", name)
	}
	return m.Decimal, nil
}

// emitReport writes the report to stdout and, with --save, also to a
// timestamped file next to the working directory.
func emitReport(flags *rootFlags, report *output.PlanReport) error {
	if flags.save {
		f, err := output.Lookup(flags.format)
		if err != nil {
			return err
		}
		filename, err := output.WriteFormatted(f, report, reportExtension(flags.format))
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "report written to %s\n", filename)
	}
	return output.GenerateReport(report, flags.format)
}

func reportExtension(format string) string {
	if format == "console" {
		return "txt"
	}
	return format
}

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	var budget, oneTime, strategy string
	var summary bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project the payoff plan under the household policy",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(flags)
			if err != nil {
				return err
			}

			input := domain.SimulationInput{
				Instruments:        plan.Debts,
				MonthlyExtraBudget: plan.Policy.MonthlyExtraBudget,
				Strategy:           plan.Policy.Strategy,
				Now:                time.Now(),
			}
			// Transient overrides: never written back to the plan file.
			if budget != "" {
				if input.MonthlyExtraBudget, err = parseMoneyFlag("budget", budget); err != nil {
					return err
				}
			}
			if oneTime != "" {
				if input.OneTimeExtra, err = parseMoneyFlag("one-time", oneTime); err != nil {
					return err
				}
			}
			if strategy != "" {
				if input.Strategy, err = domain.ParseStrategy(strategy); err != nil {
					return err
				}
			}

			result := newSimulator(flags).Simulate(input)
			if summary {
				result.Timeline = nil
			}
			return emitReport(flags, &output.PlanReport{Simulation: &result})
		},
	}

	cmd.Flags().StringVar(&budget, "budget", "", "override the monthly extra budget for this run")
	cmd.Flags().StringVar(&oneTime, "one-time", "", "one-time extra payment applied in month 1")
	cmd.Flags().StringVar(&strategy, "strategy", "", "override the strategy: avalanche or snowball")
	cmd.Flags().BoolVar(&summary, "summary", false, "omit the month-by-month timeline")
	return cmd
}

func newCompareCmd(flags *rootFlags) *cobra.Command {
	var budget, oneTime, strategy string
	var strategies bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the baseline plan against a what-if scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(flags)
			if err != nil {
				return err
			}
			sim := newSimulator(flags)
			now := time.Now()

			var comparison domain.ScenarioComparison
			if strategies {
				comparison = sim.CompareStrategies(plan.Debts, plan.Policy.MonthlyExtraBudget, now)
			} else {
				var overrides domain.ScenarioOverrides
				if budget != "" {
					d, err := parseMoneyFlag("budget", budget)
					if err != nil {
						return err
					}
					overrides.MonthlyExtraBudget = &d
				}
				if oneTime != "" {
					d, err := parseMoneyFlag("one-time", oneTime)
					if err != nil {
						return err
					}
					overrides.OneTimeExtra = &d
				}
				if strategy != "" {
					s, err := domain.ParseStrategy(strategy)
					if err != nil {
						return err
					}
					overrides.Strategy = &s
				}
				comparison = sim.CompareScenarios(plan.Debts, plan.Policy, overrides, now)
			}
			return emitReport(flags, &output.PlanReport{Comparison: &comparison})
		},
	}

	cmd.Flags().StringVar(&budget, "budget", "", "substitute monthly extra budget")
	cmd.Flags().StringVar(&oneTime, "one-time", "", "one-time lump payment applied in month 1")
	cmd.Flags().StringVar(&strategy, "strategy", "", "substitute strategy: avalanche or snowball")
	cmd.Flags().BoolVar(&strategies, "strategies", false, "compare avalanche vs snowball under the baseline budget")
	return cmd
}

func newUtilizationCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "utilization",
		Short: "Report per-card, per-user, and household credit utilization",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(flags)
			if err != nil {
				return err
			}
			report := calculation.CalculateUtilization(plan.Cards)
			return emitReport(flags, &output.PlanReport{Utilization: &report})
		},
	}
}

func newMilestonesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "milestones",
		Short: "Report the dollar distance to each utilization threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(flags)
			if err != nil {
				return err
			}
			util := calculation.CalculateUtilization(plan.Cards)
			report := calculation.CalculateMilestones(util.Aggregate.Balance, util.Aggregate.CreditLimit)
			return emitReport(flags, &output.PlanReport{Milestones: &report})
		},
	}
}

func newHistoryCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Aggregate balance snapshots into utilization series",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := loadPlan(flags)
			if err != nil {
				return err
			}
			history := calculation.AggregateHistory(plan.History)
			return emitReport(flags, &output.PlanReport{History: &history})
		},
	}
}
