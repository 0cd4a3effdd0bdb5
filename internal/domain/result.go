package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant names a FIRE flavor.
type Variant string

const (
	VariantTraditional Variant = "traditional"
	VariantCoast       Variant = "coast"
	VariantBarista     Variant = "barista"
)

// VariantResult is the outcome of the target calculation for one FIRE
// variant. YearsRemaining, AchievementAge and AchievementDate are nil when
// the variant is not achievable within the search horizon.
type VariantResult struct {
	Variant  Variant         `json:"variant"`
	Target   decimal.Decimal `json:"target"`
	Achieved bool            `json:"achieved"`

	// ProgressPercentage is capped at 100; RawProgressPercentage is not, so
	// over-achievement (e.g. 120%) stays displayable.
	ProgressPercentage    decimal.Decimal `json:"progress_percentage"`
	RawProgressPercentage decimal.Decimal `json:"raw_progress_percentage"`

	YearsRemaining  *decimal.Decimal `json:"years_remaining"`
	AchievementAge  *float64         `json:"achievement_age"`
	AchievementDate *time.Time       `json:"achievement_date"`

	// SwitchAge is the age at which contributions may drop to the reduced
	// amount (Coast/Barista only).
	SwitchAge *float64 `json:"switch_age,omitempty"`

	Message string `json:"message,omitempty"`
}

// TrajectoryPoint is one month-end portfolio balance.
type TrajectoryPoint struct {
	Age     float64         `json:"age"`
	Balance decimal.Decimal `json:"balance"`
}

// Projection is the engine's full output for one plan: the three variant
// results plus the monthly trajectories used for charting.
type Projection struct {
	Plan Plan `json:"plan"`

	Traditional VariantResult `json:"traditional"`
	Coast       VariantResult `json:"coast"`
	Barista     VariantResult `json:"barista"`

	// PlanTrajectory follows the contribution stages as-is.
	// CoastTrajectory and BaristaTrajectory down-shift at the discovered
	// switch ages. GoalLine is the (possibly inflation-adjusted) target over
	// the same months, for charting a reference line.
	PlanTrajectory    []TrajectoryPoint `json:"plan_trajectory"`
	CoastTrajectory   []TrajectoryPoint `json:"coast_trajectory,omitempty"`
	BaristaTrajectory []TrajectoryPoint `json:"barista_trajectory,omitempty"`
	GoalLine          []TrajectoryPoint `json:"goal_line"`

	GeneratedAt time.Time `json:"generated_at"`
}

// Results returns the variant results in presentation order.
func (p *Projection) Results() []VariantResult {
	return []VariantResult{p.Traditional, p.Coast, p.Barista}
}

// FinalBalance returns the last balance of the plan trajectory, or zero for
// an empty trajectory.
func (p *Projection) FinalBalance() decimal.Decimal {
	if len(p.PlanTrajectory) == 0 {
		return decimal.Zero
	}
	return p.PlanTrajectory[len(p.PlanTrajectory)-1].Balance
}
