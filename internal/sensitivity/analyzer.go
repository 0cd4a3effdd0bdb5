package sensitivity

import (
	"fmt"

	"github.com/fireplan/fireplan/internal/domain"
	"github.com/fireplan/fireplan/internal/fire"
	"github.com/shopspring/decimal"
)

// Parameter names a plan field to sweep and the range to sweep it over.
type Parameter struct {
	Name  string          `yaml:"name" json:"name"`
	Min   decimal.Decimal `yaml:"min" json:"min"`
	Max   decimal.Decimal `yaml:"max" json:"max"`
	Steps int             `yaml:"steps" json:"steps"`
}

// Sweepable parameter names.
const (
	ParamReturnRate     = "annual_return_rate"
	ParamInflationRate  = "inflation_rate"
	ParamContribution   = "monthly_contribution"
	ParamWithdrawalRate = "withdrawal_rate"
	ParamPrincipal      = "principal"
)

// Result captures the key metrics of one sweep point.
type Result struct {
	Value decimal.Decimal `json:"value"`

	TraditionalAchieved bool             `json:"traditional_achieved"`
	TraditionalYears    *decimal.Decimal `json:"traditional_years,omitempty"`
	CoastSwitchAge      *float64         `json:"coast_switch_age,omitempty"`
	BaristaSwitchAge    *float64         `json:"barista_switch_age,omitempty"`
	FinalBalance        decimal.Decimal  `json:"final_balance"`
}

// Analysis is a full single-parameter sweep.
type Analysis struct {
	Parameter Parameter   `json:"parameter"`
	BasePlan  domain.Plan `json:"base_plan"`
	Results   []Result    `json:"results"`
}

// Analyzer performs parameter sweeps through the projection engine, so the
// what-if surface can never drift from the main results.
type Analyzer struct {
	engine *fire.Engine
}

// NewAnalyzer creates an analyzer with a fresh engine.
func NewAnalyzer() *Analyzer {
	return &Analyzer{engine: fire.NewEngine()}
}

// NewAnalyzerWithEngine shares an existing engine (and its clock).
func NewAnalyzerWithEngine(engine *fire.Engine) *Analyzer {
	return &Analyzer{engine: engine}
}

// AnalyzeParameter sweeps one parameter across its range, holding everything
// else in the plan fixed, and reports the key metrics per value.
func (a *Analyzer) AnalyzeParameter(plan domain.Plan, param Parameter) (*Analysis, error) {
	if param.Steps < 2 {
		param.Steps = 5
	}
	if param.Max.LessThan(param.Min) {
		return nil, fmt.Errorf("parameter %s: max %s below min %s",
			param.Name, param.Max.String(), param.Min.String())
	}

	values := generateValues(param)
	results := make([]Result, 0, len(values))
	for _, value := range values {
		modified, err := applyParameter(plan, param.Name, value)
		if err != nil {
			return nil, err
		}
		proj := a.engine.Project(modified)

		result := Result{
			Value:               value,
			TraditionalAchieved: proj.Traditional.Achieved,
			TraditionalYears:    proj.Traditional.YearsRemaining,
			CoastSwitchAge:      proj.Coast.SwitchAge,
			BaristaSwitchAge:    proj.Barista.SwitchAge,
			FinalBalance:        proj.FinalBalance(),
		}
		results = append(results, result)
	}

	return &Analysis{Parameter: param, BasePlan: plan, Results: results}, nil
}

func generateValues(param Parameter) []decimal.Decimal {
	steps := param.Steps
	span := param.Max.Sub(param.Min)
	increment := span.Div(decimal.NewFromInt(int64(steps - 1)))
	values := make([]decimal.Decimal, 0, steps)
	for i := 0; i < steps; i++ {
		values = append(values, param.Min.Add(increment.Mul(decimal.NewFromInt(int64(i)))))
	}
	return values
}

func applyParameter(plan domain.Plan, name string, value decimal.Decimal) (domain.Plan, error) {
	switch name {
	case ParamReturnRate:
		plan.AnnualReturnRate = value
	case ParamInflationRate:
		plan.InflationRate = value
	case ParamContribution:
		plan.MonthlyContribution = value
		// Flat sweeps override the stage table, otherwise the swept value
		// would never take effect.
		plan.ContributionStages = nil
	case ParamWithdrawalRate:
		plan.WithdrawalRate = value
	case ParamPrincipal:
		plan.Principal = value
	default:
		return plan, fmt.Errorf("unknown sweep parameter: %s", name)
	}
	return plan, nil
}
