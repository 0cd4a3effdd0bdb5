package fire

import (
	"math"

	"github.com/fireplan/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

// StrategyDynamic follows the plan's contribution stage table as-is.
// StrategyVariant follows the stage table until SwitchAge, then applies a
// fixed reduced (possibly zero) contribution.
const (
	StrategyDynamic = "dynamic"
	StrategyVariant = "variant"
)

// Strategy selects how contributions evolve over a simulated trajectory.
type Strategy struct {
	Kind                string
	SwitchAge           float64
	ReducedContribution decimal.Decimal
}

// DynamicStrategy runs the stage table unmodified.
func DynamicStrategy() Strategy {
	return Strategy{Kind: StrategyDynamic}
}

// VariantStrategy down-shifts to the reduced contribution at switchAge.
func VariantStrategy(switchAge float64, reducedContribution decimal.Decimal) Strategy {
	return Strategy{Kind: StrategyVariant, SwitchAge: switchAge, ReducedContribution: reducedContribution}
}

// RunProjection simulates month-end balances from the plan's current age to
// its horizon age. The result is a pure function of (plan, strategy): two
// identical calls produce identical output.
//
// Each month, in order: the contribution or withdrawal is applied, then any
// lump sum scheduled for that exact month, then one month of growth at the
// real (inflation-deflated) rate. Balances never go below zero.
func RunProjection(plan *domain.Plan, strategy Strategy) []domain.TrajectoryPoint {
	months := monthsBetweenAges(plan.CurrentAge, plan.HorizonAge)
	realAnnual := realAnnualRate(plan.AnnualReturnRate.InexactFloat64(), plan.InflationRate.InexactFloat64())
	growthFactor := decimal.NewFromFloat(1 + realMonthlyRate(realAnnual))
	monthlyWithdrawal := plan.WithdrawalRate.Div(decimal.NewFromInt(12))

	lumpByMonth := make(map[int]decimal.Decimal, len(plan.LumpSums))
	for _, ls := range plan.LumpSums {
		m := monthsBetweenAges(plan.CurrentAge, ls.Age)
		if m < 1 {
			m = 1
		}
		if m > months {
			continue
		}
		lumpByMonth[m] = lumpByMonth[m].Add(ls.Amount)
	}

	balance := plan.Principal
	points := make([]domain.TrajectoryPoint, 0, months+1)
	points = append(points, domain.TrajectoryPoint{Age: plan.CurrentAge, Balance: balance})

	for m := 1; m <= months; m++ {
		age := plan.CurrentAge + float64(m-1)/12

		if age >= plan.RetirementAge {
			goal := GoalAt(plan, age)
			if balance.GreaterThanOrEqual(goal) {
				balance = balance.Sub(balance.Mul(monthlyWithdrawal))
			}
			// Underfunded past retirement age: no withdrawal, no contribution.
		} else {
			balance = balance.Add(contributionFor(plan, strategy, age))
		}

		if lump, ok := lumpByMonth[m]; ok {
			balance = balance.Add(lump)
		}

		balance = balance.Mul(growthFactor)
		if balance.LessThan(decimal.Zero) {
			balance = decimal.Zero
		}

		points = append(points, domain.TrajectoryPoint{Age: plan.CurrentAge + float64(m)/12, Balance: balance})
	}

	return points
}

// GoalAt returns the target in effect at the given simulated age: flat, or
// grown with inflation from the current age when the plan asks for an
// inflation-adjusted goal.
func GoalAt(plan *domain.Plan, age float64) decimal.Decimal {
	goal := plan.FireTarget()
	if !plan.AdjustGoalForInflation {
		return goal
	}
	years := age - plan.CurrentAge
	if years <= 0 {
		return goal
	}
	factor := math.Pow(1+plan.InflationRate.InexactFloat64(), years)
	return goal.Mul(decimal.NewFromFloat(factor))
}

// GoalLine produces the goal reference series over the same months as
// RunProjection, for charting against the trajectories.
func GoalLine(plan *domain.Plan) []domain.TrajectoryPoint {
	months := monthsBetweenAges(plan.CurrentAge, plan.HorizonAge)
	points := make([]domain.TrajectoryPoint, 0, months+1)
	for m := 0; m <= months; m++ {
		age := plan.CurrentAge + float64(m)/12
		points = append(points, domain.TrajectoryPoint{Age: age, Balance: GoalAt(plan, age)})
	}
	return points
}

func contributionFor(plan *domain.Plan, strategy Strategy, age float64) decimal.Decimal {
	if strategy.Kind == StrategyVariant && age >= strategy.SwitchAge {
		return strategy.ReducedContribution
	}
	return plan.ContributionAt(age)
}

// monthsBetweenAges rounds the span to the nearest whole month, so a lump sum
// dated exactly five years out lands on month 60, not 59 or 61.
func monthsBetweenAges(from, to float64) int {
	return int(math.Round((to - from) * 12))
}
