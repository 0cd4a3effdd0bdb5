package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/fireplan/fireplan/internal/domain"
	"github.com/fireplan/fireplan/internal/fire"
	"github.com/fireplan/fireplan/internal/tui/components"
)

// Slider indices.
const (
	sliderReturnRate = iota
	sliderInflation
	sliderContribution
	sliderReducedContribution
	sliderRetirementAge
	sliderWithdrawalRate
	sliderCount
)

// Model is the what-if screen state: the base plan from the plan file, the
// slider overrides, and the projection recomputed on every change.
type Model struct {
	basePlan domain.Plan
	engine   *fire.Engine

	sliders []*components.ParameterSlider
	focus   int
	keys    KeyMap

	projection *domain.Projection

	width  int
	height int
}

// NewModel creates the what-if model seeded from a plan.
func NewModel(plan domain.Plan) Model {
	plan.Normalize()
	m := Model{
		basePlan: plan,
		engine:   fire.NewEngine(),
		keys:     DefaultKeyMap(),
		width:    100,
		height:   32,
	}
	m.sliders = buildSliders(plan)
	m.sliders[m.focus].IsFocused = true
	m.recompute()
	return m
}

func buildSliders(plan domain.Plan) []*components.ParameterSlider {
	sliders := make([]*components.ParameterSlider, sliderCount)
	sliders[sliderReturnRate] = components.NewParameterSlider(
		"Expected return", ratePercent(plan.AnnualReturnRate), 0, 15, 0.25).WithUnit("%")
	sliders[sliderInflation] = components.NewParameterSlider(
		"Inflation", ratePercent(plan.InflationRate), 0, 10, 0.25).WithUnit("%")
	sliders[sliderContribution] = components.NewParameterSlider(
		"Monthly contribution", plan.MonthlyContribution.InexactFloat64(), 0, 10000, 100).
		WithFormat("%.0f").WithUnit("$")
	sliders[sliderReducedContribution] = components.NewParameterSlider(
		"Barista contribution", plan.MonthlyContributionReduced.InexactFloat64(), 0, 5000, 100).
		WithFormat("%.0f").WithUnit("$")
	sliders[sliderRetirementAge] = components.NewParameterSlider(
		"Retirement age", plan.RetirementAge, plan.CurrentAge+1, 75, 0.5).
		WithFormat("%.1f")
	sliders[sliderWithdrawalRate] = components.NewParameterSlider(
		"Withdrawal rate", ratePercent(plan.WithdrawalRate), 1, 10, 0.25).WithUnit("%")
	return sliders
}

// currentPlan overlays the slider values on the base plan.
func (m *Model) currentPlan() domain.Plan {
	plan := m.basePlan
	plan.AnnualReturnRate = percentRate(m.sliders[sliderReturnRate].Value)
	plan.InflationRate = percentRate(m.sliders[sliderInflation].Value)
	plan.MonthlyContribution = decimal.NewFromFloat(m.sliders[sliderContribution].Value)
	plan.MonthlyContributionReduced = decimal.NewFromFloat(m.sliders[sliderReducedContribution].Value)
	plan.RetirementAge = m.sliders[sliderRetirementAge].Value
	plan.WithdrawalRate = percentRate(m.sliders[sliderWithdrawalRate].Value)
	// Slider-driven contributions replace the stage table.
	plan.ContributionStages = nil
	return plan
}

func (m *Model) recompute() {
	m.projection = m.engine.Project(m.currentPlan())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func ratePercent(rate decimal.Decimal) float64 {
	return rate.Mul(decimal.NewFromInt(100)).InexactFloat64()
}

func percentRate(percent float64) decimal.Decimal {
	return decimal.NewFromFloat(percent).Div(decimal.NewFromInt(100))
}
