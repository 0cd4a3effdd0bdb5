package config

import (
	"fmt"
	"os"

	"github.com/fireplan/fireplan/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of plan files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file, validates it, and normalizes
// it so the engine receives in-range values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	plan.Normalize()
	return &plan, nil
}

// ValidatePlan rejects structurally unusable plans. Out-of-range rates are
// not errors here: Normalize clamps them so interactive callers stay
// renderable.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if plan.CurrentAge <= 0 {
		return fmt.Errorf("current_age must be positive, got %v", plan.CurrentAge)
	}
	if plan.RetirementAge <= plan.CurrentAge {
		return fmt.Errorf("retirement_age (%v) must be greater than current_age (%v)",
			plan.RetirementAge, plan.CurrentAge)
	}
	if !plan.FireNumber.GreaterThan(decimal.Zero) && !plan.AnnualExpenses.GreaterThan(decimal.Zero) {
		return fmt.Errorf("one of fire_number or annual_expenses must be set")
	}
	for i, ls := range plan.LumpSums {
		if ls.Age < plan.CurrentAge {
			return fmt.Errorf("lump_sums[%d] (%s): age %v is before current_age %v",
				i, ls.Label, ls.Age, plan.CurrentAge)
		}
	}
	for i, stage := range plan.ContributionStages {
		if stage.EndAge <= plan.CurrentAge {
			return fmt.Errorf("contribution_stages[%d]: end_age %v does not extend past current_age %v",
				i, stage.EndAge, plan.CurrentAge)
		}
	}
	return nil
}

// ExamplePlan returns a filled-in plan suitable for a generated starter file.
func ExamplePlan() domain.Plan {
	return domain.Plan{
		FireNumber:                 decimal.NewFromInt(1_000_000),
		CurrentAge:                 30,
		RetirementAge:              65,
		AnnualReturnRate:           domain.DefaultReturnRate,
		InflationRate:              domain.DefaultInflation,
		WithdrawalRate:             domain.DefaultWithdrawal,
		MonthlyContribution:        decimal.NewFromInt(1000),
		MonthlyContributionReduced: decimal.NewFromInt(400),
		Principal:                  decimal.NewFromInt(100_000),
		Currency:                   domain.DefaultCurrency,
	}
}

// WriteExampleFile writes the starter plan as YAML to the given path.
func WriteExampleFile(path string) error {
	plan := ExamplePlan()
	data, err := yaml.Marshal(&plan)
	if err != nil {
		return fmt.Errorf("failed to marshal example plan: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
