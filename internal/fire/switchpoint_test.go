package fire

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireplan/fireplan/internal/domain"
)

// switchPlan is a saver who cannot coast yet: 50k at 7% real grows to ~534k
// by 65, short of the 1M target, so some years of full saving are required.
func switchPlan() *domain.Plan {
	p := &domain.Plan{
		FireNumber:          decimal.NewFromInt(1000000),
		CurrentAge:          30,
		RetirementAge:       65,
		AnnualReturnRate:    decimal.NewFromFloat(0.07),
		MonthlyContribution: decimal.NewFromInt(1000),
		Principal:           decimal.NewFromInt(50000),
	}
	p.Normalize()
	return p
}

func TestFindSwitchAge_AlreadyAchieved(t *testing.T) {
	p := switchPlan()
	p.Principal = decimal.NewFromInt(200000)

	sp := FindSwitchAge(p, decimal.Zero)
	require.True(t, sp.Possible)
	assert.True(t, sp.AlreadyAchieved, "200k at 7%% real coasts past 1M in 35 years")
	assert.Equal(t, p.CurrentAge, sp.Age)
	assert.Equal(t, 0.0, sp.FullYears)
	assert.True(t, sp.RequiredAtSwitch.LessThanOrEqual(p.Principal),
		"required balance %s should not exceed the principal that already coasts", sp.RequiredAtSwitch.String())
}

func TestFindSwitchAge_MidWindow(t *testing.T) {
	p := switchPlan()

	sp := FindSwitchAge(p, decimal.Zero)
	require.True(t, sp.Possible)
	assert.False(t, sp.AlreadyAchieved)
	assert.Greater(t, sp.Age, p.CurrentAge)
	assert.Less(t, sp.Age, p.RetirementAge)
	assert.InDelta(t, sp.Age, p.CurrentAge+sp.FullYears, 1e-9)
	assert.True(t, sp.RequiredAtSwitch.GreaterThan(p.Principal),
		"the switch balance lies ahead of today's principal")
}

func TestFindSwitchAge_NotPossible(t *testing.T) {
	p := &domain.Plan{
		FireNumber:          decimal.NewFromInt(1000000),
		CurrentAge:          30,
		RetirementAge:       65,
		MonthlyContribution: decimal.NewFromInt(10),
	}
	p.Normalize()

	sp := FindSwitchAge(p, decimal.Zero)
	assert.False(t, sp.Possible, "10/month at zero growth cannot reach 1M in 35 years")
}

func TestFindSwitchAge_BaristaBeforeCoast(t *testing.T) {
	p := switchPlan()

	coast := FindSwitchAge(p, decimal.Zero)
	barista := FindSwitchAge(p, decimal.NewFromInt(500))
	require.True(t, coast.Possible)
	require.True(t, barista.Possible)
	assert.Less(t, barista.FullYears, coast.FullYears,
		"keeping 500/month after the switch allows down-shifting earlier")
	assert.True(t, barista.RequiredAtSwitch.LessThan(coast.RequiredAtSwitch),
		"reduced contributions after the switch lower the balance needed at the switch")
}

func TestFindSwitchAge_DrivesSimulatorToTarget(t *testing.T) {
	p := switchPlan()
	target := p.FireTarget()

	sp := FindSwitchAge(p, decimal.Zero)
	require.True(t, sp.Possible)

	atRetirement := func(switchAge float64) decimal.Decimal {
		traj := RunProjection(p, VariantStrategy(switchAge, decimal.Zero))
		idx := monthsBetweenAges(p.CurrentAge, p.RetirementAge)
		require.Less(t, idx, len(traj))
		return traj[idx].Balance
	}

	reached := atRetirement(sp.Age)
	assert.True(t, reached.GreaterThanOrEqual(target.Mul(decimal.NewFromFloat(0.999))),
		"switching at the discovered age must reach the target by retirement, got %s", reached.String())

	short := atRetirement(sp.Age - 2.0/12)
	assert.True(t, short.LessThan(target),
		"switching two months earlier must fall short, got %s", short.String())
}

func TestRequiredBalanceAtSwitch_CoastInversion(t *testing.T) {
	// With no contributions after the switch, the required balance is the
	// target discounted by the remaining growth.
	target := decimal.NewFromInt(1000000)
	monthlyRate := realMonthlyRate(0.07)
	required := requiredBalanceAtSwitch(target, decimal.Zero, monthlyRate, 35, 0)

	grown := accumulate(decimal.Zero, required, monthlyRate, 35*12)
	assert.True(t, grown.Sub(target).Abs().LessThan(decimal.NewFromInt(1)),
		"required balance grown over the window should recover the target, got %s", grown.String())
}

func TestRequiredBalanceAtSwitch_FloorsAtZero(t *testing.T) {
	// Reduced contributions alone overshoot a tiny target: nothing needs to
	// be saved before the switch.
	required := requiredBalanceAtSwitch(decimal.NewFromInt(1000), decimal.NewFromInt(500), realMonthlyRate(0.07), 35, 0)
	assert.True(t, required.IsZero())
}
