package fire

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireplan/fireplan/internal/domain"
)

type captureLogger struct {
	warnings []string
}

func (l *captureLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func testEngine() (*Engine, *captureLogger) {
	logger := &captureLogger{}
	e := NewEngine()
	e.Logger = logger
	e.Now = func() time.Time {
		return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	}
	return e, logger
}

func savingPlan() domain.Plan {
	return domain.Plan{
		FireNumber:          decimal.NewFromInt(1000000),
		CurrentAge:          30,
		RetirementAge:       65,
		AnnualReturnRate:    decimal.NewFromFloat(0.07),
		MonthlyContribution: decimal.NewFromInt(1000),
		Principal:           decimal.NewFromInt(100000),
	}
}

func TestProject_TraditionalAchieved(t *testing.T) {
	e, logger := testEngine()
	plan := savingPlan()
	plan.Principal = decimal.NewFromInt(1200000)

	proj := e.Project(plan)
	trad := proj.Traditional

	assert.True(t, trad.Achieved)
	assert.True(t, trad.Target.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, trad.ProgressPercentage.Equal(decimal.NewFromInt(100)), "display progress is capped")
	assert.True(t, trad.RawProgressPercentage.Equal(decimal.NewFromInt(120)), "raw progress keeps the over-achievement")
	require.NotNil(t, trad.YearsRemaining)
	assert.True(t, trad.YearsRemaining.IsZero())
	require.NotNil(t, trad.AchievementAge)
	assert.Equal(t, 30.0, *trad.AchievementAge)
	require.NotNil(t, trad.AchievementDate)
	assert.Equal(t, e.Now(), *trad.AchievementDate)
	assert.Empty(t, logger.warnings, "achieved at 120%% raw progress is consistent")
}

func TestProject_TraditionalYearsRemaining(t *testing.T) {
	e, logger := testEngine()
	proj := e.Project(savingPlan())
	trad := proj.Traditional

	assert.False(t, trad.Achieved)
	require.NotNil(t, trad.YearsRemaining)
	years := trad.YearsRemaining.InexactFloat64()
	assert.Greater(t, years, 20.5, "100k + 1000/month at 7%% needs over two decades to reach 1M")
	assert.Less(t, years, 22.0)
	require.NotNil(t, trad.AchievementAge)
	assert.InDelta(t, 30+years, *trad.AchievementAge, 1e-9)
	assert.Empty(t, logger.warnings)
}

func TestProject_SolverAgreesWithTrajectory(t *testing.T) {
	// The achievement date from the period solver and the month the
	// simulated balance first crosses the target must tell the same story.
	e, _ := testEngine()
	proj := e.Project(savingPlan())
	require.NotNil(t, proj.Traditional.YearsRemaining)

	target := decimal.NewFromInt(1000000)
	crossing := -1
	for i, pt := range proj.PlanTrajectory {
		if pt.Balance.GreaterThanOrEqual(target) {
			crossing = i
			break
		}
	}
	require.GreaterOrEqual(t, crossing, 0, "trajectory never crosses the target")

	solverMonths := proj.Traditional.YearsRemaining.InexactFloat64() * 12
	assert.LessOrEqual(t, math.Abs(float64(crossing)-solverMonths), 2.0,
		"solver says month %.1f, trajectory crosses at month %d", solverMonths, crossing)
}

func TestProject_NoContributions(t *testing.T) {
	e, _ := testEngine()
	plan := savingPlan()
	plan.MonthlyContribution = decimal.Zero

	trad := e.Project(plan).Traditional
	assert.False(t, trad.Achieved)
	assert.Nil(t, trad.YearsRemaining)
	assert.Nil(t, trad.AchievementAge)
	assert.Contains(t, trad.Message, "no contributions")
}

func TestProject_NotAchievableWithinHorizon(t *testing.T) {
	e, _ := testEngine()
	plan := domain.Plan{
		FireNumber:          decimal.NewFromInt(100000000),
		CurrentAge:          30,
		RetirementAge:       65,
		MonthlyContribution: decimal.NewFromInt(100),
	}

	trad := e.Project(plan).Traditional
	assert.False(t, trad.Achieved)
	assert.Nil(t, trad.YearsRemaining)
	assert.Contains(t, trad.Message, "50 year")
}

func TestProject_CoastAlreadyAchieved(t *testing.T) {
	// 100k at 7% real compounds to ~1.07M over 35 years, so coasting from
	// today clears the 1M target without another contribution.
	e, logger := testEngine()
	proj := e.Project(savingPlan())
	coast := proj.Coast

	assert.True(t, coast.Achieved)
	require.NotNil(t, coast.SwitchAge)
	assert.Equal(t, 30.0, *coast.SwitchAge)
	require.NotNil(t, coast.YearsRemaining)
	assert.True(t, coast.YearsRemaining.IsZero())
	assert.Contains(t, coast.Message, "coasting")
	assert.NotEmpty(t, proj.CoastTrajectory)
	assert.Empty(t, logger.warnings)
}

func TestProject_CoastAndBaristaSwitchAges(t *testing.T) {
	e, logger := testEngine()
	plan := savingPlan()
	plan.Principal = decimal.NewFromInt(50000)
	plan.MonthlyContributionReduced = decimal.NewFromInt(400)

	proj := e.Project(plan)
	coast, barista := proj.Coast, proj.Barista

	require.NotNil(t, coast.SwitchAge)
	require.NotNil(t, barista.SwitchAge)
	assert.False(t, coast.Achieved)
	assert.False(t, barista.Achieved)
	assert.Greater(t, *coast.SwitchAge, 30.0)
	assert.Less(t, *coast.SwitchAge, 65.0)
	assert.Less(t, *barista.SwitchAge, *coast.SwitchAge,
		"barista income after the switch moves the switch age earlier")
	assert.True(t, barista.Target.LessThan(coast.Target))
	assert.NotEmpty(t, proj.CoastTrajectory)
	assert.NotEmpty(t, proj.BaristaTrajectory)
	assert.Empty(t, logger.warnings)
}

func TestProject_VariantNotAchievable(t *testing.T) {
	e, _ := testEngine()
	plan := domain.Plan{
		FireNumber:          decimal.NewFromInt(1000000),
		CurrentAge:          30,
		RetirementAge:       65,
		MonthlyContribution: decimal.NewFromInt(10),
	}

	proj := e.Project(plan)
	assert.Nil(t, proj.Coast.SwitchAge)
	assert.Contains(t, proj.Coast.Message, "not achievable")
	assert.Empty(t, proj.CoastTrajectory, "no trajectory without a switch age")
}

func TestProject_MoreContributionsFinishSooner(t *testing.T) {
	e, _ := testEngine()

	lighter := savingPlan()
	lighter.MonthlyContribution = decimal.NewFromInt(500)
	heavier := savingPlan()

	yearsLight := e.Project(lighter).Traditional.YearsRemaining
	yearsHeavy := e.Project(heavier).Traditional.YearsRemaining
	require.NotNil(t, yearsLight)
	require.NotNil(t, yearsHeavy)
	assert.True(t, yearsLight.GreaterThan(*yearsHeavy),
		"halving the contribution must not shorten the wait: %s vs %s", yearsLight.String(), yearsHeavy.String())
}

func TestProject_ExpensesDeriveTarget(t *testing.T) {
	e, _ := testEngine()
	plan := savingPlan()
	plan.AnnualExpenses = decimal.NewFromInt(40000)
	plan.WithdrawalRate = decimal.NewFromFloat(0.04)

	trad := e.Project(plan).Traditional
	assert.True(t, trad.Target.Equal(decimal.NewFromInt(1000000)),
		"40k expenses at a 4%% withdrawal rate means a 1M target, got %s", trad.Target.String())
}

func TestProject_Deterministic(t *testing.T) {
	e, _ := testEngine()
	plan := savingPlan()

	a := e.Project(plan)
	b := e.Project(plan)

	assert.Equal(t, a.GeneratedAt, b.GeneratedAt)
	assert.True(t, a.FinalBalance().Equal(b.FinalBalance()))
	require.Equal(t, len(a.PlanTrajectory), len(b.PlanTrajectory))
	assert.True(t, a.Traditional.YearsRemaining.Equal(*b.Traditional.YearsRemaining))
}

func TestProject_ResultsOrder(t *testing.T) {
	e, _ := testEngine()
	results := e.Project(savingPlan()).Results()
	require.Len(t, results, 3)
	assert.Equal(t, domain.VariantTraditional, results[0].Variant)
	assert.Equal(t, domain.VariantCoast, results[1].Variant)
	assert.Equal(t, domain.VariantBarista, results[2].Variant)
}

func TestProject_NormalizesWithoutMutatingInput(t *testing.T) {
	e, _ := testEngine()
	plan := domain.Plan{
		FireNumber:       decimal.NewFromInt(1000000),
		CurrentAge:       30,
		RetirementAge:    65,
		AnnualReturnRate: decimal.NewFromFloat(0.50), // clamped inside Project
	}

	proj := e.Project(plan)
	assert.True(t, plan.AnnualReturnRate.Equal(decimal.NewFromFloat(0.50)), "caller's plan is untouched")
	assert.True(t, proj.Plan.AnnualReturnRate.Equal(domain.MaxRate), "projection carries the normalized plan")
}
