package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Bounds applied by Normalize. Rates outside these ranges make the period
// solver diverge, so they are clamped rather than rejected: an interactive
// caller dragging a slider should always get a renderable result.
var (
	MaxRate           = decimal.NewFromFloat(0.20)
	DefaultReturnRate = decimal.NewFromFloat(0.07)
	DefaultInflation  = decimal.NewFromFloat(0.03)
	DefaultWithdrawal = decimal.NewFromFloat(0.04)
)

// DefaultHorizonAge is the last simulated age when a plan does not set one.
const DefaultHorizonAge = 80.0

// DefaultCurrency is used when a plan does not name a currency code.
const DefaultCurrency = "USD"

// LumpSum is a one-time cash injection at a specific age.
type LumpSum struct {
	Age    float64         `yaml:"age" json:"age"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
	Label  string          `yaml:"label,omitempty" json:"label,omitempty"`
}

// ContributionStage is a span of ages with a constant monthly contribution.
// Stages are consulted in ascending EndAge order; the first stage whose
// EndAge exceeds the current simulated age is the one in effect.
type ContributionStage struct {
	EndAge              float64         `yaml:"end_age" json:"end_age"`
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
}

// Plan is the engine's sole input aggregate. It is built fresh from caller
// state on every parameter change; the engine never mutates it.
type Plan struct {
	FireNumber     decimal.Decimal `yaml:"fire_number" json:"fire_number"`
	AnnualExpenses decimal.Decimal `yaml:"annual_expenses,omitempty" json:"annual_expenses,omitempty"`

	CurrentAge    float64 `yaml:"current_age" json:"current_age"`
	RetirementAge float64 `yaml:"retirement_age" json:"retirement_age"`
	HorizonAge    float64 `yaml:"horizon_age,omitempty" json:"horizon_age,omitempty"`

	AnnualReturnRate decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
	InflationRate    decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	WithdrawalRate   decimal.Decimal `yaml:"withdrawal_rate" json:"withdrawal_rate"`

	MonthlyContribution        decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	MonthlyContributionReduced decimal.Decimal `yaml:"monthly_contribution_reduced" json:"monthly_contribution_reduced"`

	// Principal is the current portfolio value, already expressed in one
	// consistent currency. Conversion is the caller's concern.
	Principal decimal.Decimal `yaml:"principal" json:"principal"`

	AdjustGoalForInflation bool   `yaml:"adjust_goal_for_inflation" json:"adjust_goal_for_inflation"`
	Currency               string `yaml:"currency,omitempty" json:"currency,omitempty"`

	LumpSums           []LumpSum           `yaml:"lump_sums,omitempty" json:"lump_sums,omitempty"`
	ContributionStages []ContributionStage `yaml:"contribution_stages,omitempty" json:"contribution_stages,omitempty"`
}

// Normalize clamps out-of-range values to safe bounds and fills defaults.
// It never returns an error: invalid input degrades to a computable plan.
func (p *Plan) Normalize() {
	p.AnnualReturnRate = clampRate(p.AnnualReturnRate)
	p.InflationRate = clampRate(p.InflationRate)
	p.WithdrawalRate = clampRate(p.WithdrawalRate)
	if p.WithdrawalRate.IsZero() {
		p.WithdrawalRate = DefaultWithdrawal
	}

	p.FireNumber = nonNegative(p.FireNumber)
	p.AnnualExpenses = nonNegative(p.AnnualExpenses)
	p.Principal = nonNegative(p.Principal)
	p.MonthlyContribution = nonNegative(p.MonthlyContribution)
	p.MonthlyContributionReduced = nonNegative(p.MonthlyContributionReduced)

	if p.CurrentAge < 0 {
		p.CurrentAge = 0
	}
	if p.RetirementAge <= p.CurrentAge {
		p.RetirementAge = p.CurrentAge + 1
	}
	if p.HorizonAge <= p.RetirementAge {
		p.HorizonAge = DefaultHorizonAge
	}
	if p.HorizonAge <= p.RetirementAge {
		p.HorizonAge = p.RetirementAge + 1
	}

	if p.Currency == "" {
		p.Currency = DefaultCurrency
	}

	// Slices are copied before sorting so normalizing a plan never reorders
	// the caller's backing arrays.
	p.LumpSums = append([]LumpSum(nil), p.LumpSums...)
	sort.SliceStable(p.LumpSums, func(i, j int) bool {
		return p.LumpSums[i].Age < p.LumpSums[j].Age
	})
	for i := range p.LumpSums {
		p.LumpSums[i].Amount = nonNegative(p.LumpSums[i].Amount)
	}

	// A plan without stages behaves as a single flat stage.
	if len(p.ContributionStages) == 0 {
		p.ContributionStages = []ContributionStage{
			{EndAge: p.RetirementAge, MonthlyContribution: p.MonthlyContribution},
		}
	}
	p.ContributionStages = append([]ContributionStage(nil), p.ContributionStages...)
	sort.SliceStable(p.ContributionStages, func(i, j int) bool {
		return p.ContributionStages[i].EndAge < p.ContributionStages[j].EndAge
	})
	for i := range p.ContributionStages {
		p.ContributionStages[i].MonthlyContribution = nonNegative(p.ContributionStages[i].MonthlyContribution)
	}
}

// FireTarget is the Traditional FIRE dollar target: annual expenses divided
// by the safe withdrawal rate when expenses are supplied, otherwise the
// explicit fire number.
func (p *Plan) FireTarget() decimal.Decimal {
	if p.AnnualExpenses.GreaterThan(decimal.Zero) && p.WithdrawalRate.GreaterThan(decimal.Zero) {
		return p.AnnualExpenses.Div(p.WithdrawalRate)
	}
	return p.FireNumber
}

// ContributionAt returns the monthly contribution in effect at the given
// simulated age. Gaps in the stage table leave the preceding stage in effect
// until the next stage's end age; past the final stage, the final stage's
// amount remains in effect.
func (p *Plan) ContributionAt(age float64) decimal.Decimal {
	if len(p.ContributionStages) == 0 {
		return p.MonthlyContribution
	}
	for _, stage := range p.ContributionStages {
		if stage.EndAge > age {
			return stage.MonthlyContribution
		}
	}
	return p.ContributionStages[len(p.ContributionStages)-1].MonthlyContribution
}

// YearsToRetirement returns the length of the accumulation window.
func (p *Plan) YearsToRetirement() float64 {
	return p.RetirementAge - p.CurrentAge
}

func clampRate(rate decimal.Decimal) decimal.Decimal {
	if rate.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if rate.GreaterThan(MaxRate) {
		return MaxRate
	}
	return rate
}

func nonNegative(value decimal.Decimal) decimal.Decimal {
	if value.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return value
}
