package fire

import (
	"log"
	"time"

	"github.com/fireplan/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// Logger receives invariant warnings from the engine. The zero value of
// Engine logs through the standard library.
type Logger interface {
	Warnf(format string, args ...any)
}

// Engine is the single entry point for all FIRE math. It is stateless:
// every call is a pure function of the plan it receives, so callers may
// recompute on every parameter change without coordination.
type Engine struct {
	Logger Logger

	// Now supplies the clock for achievement dates. Tests pin it for
	// deterministic output; nil means time.Now.
	Now func() time.Time
}

// NewEngine creates an engine with the real clock.
func NewEngine() *Engine {
	return &Engine{}
}

// Project computes the full projection for one plan: the Traditional, Coast
// and Barista results, the three monthly trajectories, and the goal
// reference line. The plan is normalized first, so out-of-range input
// degrades to a computable plan instead of failing.
func (e *Engine) Project(plan domain.Plan) *domain.Projection {
	plan.Normalize()
	now := e.now()

	proj := &domain.Projection{Plan: plan, GeneratedAt: now}
	proj.Traditional = e.traditionalResult(&plan, now)
	proj.Coast = e.variantResult(&plan, domain.VariantCoast, decimal.Zero, now)
	proj.Barista = e.variantResult(&plan, domain.VariantBarista, plan.MonthlyContributionReduced, now)

	proj.PlanTrajectory = RunProjection(&plan, DynamicStrategy())
	if proj.Coast.SwitchAge != nil {
		proj.CoastTrajectory = RunProjection(&plan, VariantStrategy(*proj.Coast.SwitchAge, decimal.Zero))
	}
	if proj.Barista.SwitchAge != nil {
		proj.BaristaTrajectory = RunProjection(&plan, VariantStrategy(*proj.Barista.SwitchAge, plan.MonthlyContributionReduced))
	}
	proj.GoalLine = GoalLine(&plan)

	return proj
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now().UTC()
	}
	return time.Now().UTC()
}

func (e *Engine) warnf(format string, args ...any) {
	if e.Logger != nil {
		e.Logger.Warnf(format, args...)
		return
	}
	log.Printf("WARN: "+format, args...)
}
