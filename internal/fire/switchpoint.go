package fire

import (
	"math"

	"github.com/fireplan/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	switchSearchRounds    = 4
	switchSearchDivisions = 10
	monthlyPeriods        = 12
)

// SwitchPoint is the outcome of the Coast/Barista switch-age search.
type SwitchPoint struct {
	// Possible is false when no amount of full saving inside the window
	// reaches the target by retirement.
	Possible bool
	// AlreadyAchieved is true when coasting from today already reaches the
	// target, so no further full-contribution years are needed.
	AlreadyAchieved bool
	// Age is the earliest age at which contributions may drop to the
	// reduced amount. FullYears is the same point as years from now.
	Age       float64
	FullYears float64
	// RequiredAtSwitch is the balance that must be saved before
	// down-shifting: the amount that, together with reduced contributions,
	// still compounds to the target by retirement.
	RequiredAtSwitch decimal.Decimal
}

// FindSwitchAge finds the earliest age at which the saver may drop from full
// contributions to reducedContribution (zero for pure Coast FIRE) while still
// reaching the plan's target by retirement age.
//
// The candidate "years of full saving" window [0, retirement−current] is
// refined over a fixed number of 10-way subdivision rounds, giving sub-month
// precision without recursion. Accumulation uses the same monthly convention
// as the trajectory simulator (contribution first, then growth, at the real
// monthly rate), so a discovered switch age drives the simulator to the
// target within floating-point tolerance.
func FindSwitchAge(plan *domain.Plan, reducedContribution decimal.Decimal) SwitchPoint {
	target := plan.FireTarget()
	realAnnual := realAnnualRate(plan.AnnualReturnRate.InexactFloat64(), plan.InflationRate.InexactFloat64())
	monthlyRate := realMonthlyRate(realAnnual)
	window := plan.YearsToRetirement()
	full := plan.ContributionAt(plan.CurrentAge)

	reaches := func(fullYears float64) bool {
		coast := accumulate(full, plan.Principal, monthlyRate, fullYears*monthlyPeriods)
		remaining := window - fullYears
		final := accumulate(reducedContribution, coast, monthlyRate, remaining*monthlyPeriods)
		return final.GreaterThanOrEqual(target)
	}

	if reaches(0) {
		return SwitchPoint{
			Possible:         true,
			AlreadyAchieved:  true,
			Age:              plan.CurrentAge,
			FullYears:        0,
			RequiredAtSwitch: requiredBalanceAtSwitch(target, reducedContribution, monthlyRate, window, 0),
		}
	}
	if !reaches(window) {
		return SwitchPoint{Possible: false}
	}

	// Invariant: reaches(hi) holds, reaches(lo) does not.
	lo, hi := 0.0, window
	for round := 0; round < switchSearchRounds; round++ {
		step := (hi - lo) / switchSearchDivisions
		if step <= 0 {
			break
		}
		found := false
		for k := 1; k < switchSearchDivisions; k++ {
			trial := lo + step*float64(k)
			if reaches(trial) {
				hi = trial
				lo = trial - step
				found = true
				break
			}
		}
		if !found {
			lo = hi - step
		}
	}

	return SwitchPoint{
		Possible:         true,
		Age:              plan.CurrentAge + hi,
		FullYears:        hi,
		RequiredAtSwitch: requiredBalanceAtSwitch(target, reducedContribution, monthlyRate, window, hi),
	}
}

// accumulate grows a balance over fractional months with a level payment at
// the start of each month, mirroring the trajectory simulator's step order.
func accumulate(payment, principal decimal.Decimal, monthlyRate, months float64) decimal.Decimal {
	if months <= 0 {
		return principal
	}
	if monthlyRate == 0 {
		return principal.Add(payment.Mul(decimal.NewFromFloat(months)))
	}
	growth := math.Pow(1+monthlyRate, months)
	annuityDue := (growth - 1) / monthlyRate * (1 + monthlyRate)
	return principal.Mul(decimal.NewFromFloat(growth)).
		Add(payment.Mul(decimal.NewFromFloat(annuityDue)))
}

// requiredBalanceAtSwitch inverts the coasting leg: the balance needed at the
// switch point so that reduced contributions alone still reach the target.
func requiredBalanceAtSwitch(target, reducedContribution decimal.Decimal, monthlyRate, window, fullYears float64) decimal.Decimal {
	remainingMonths := (window - fullYears) * monthlyPeriods
	if remainingMonths <= 0 {
		return target
	}
	seriesOnly := accumulate(reducedContribution, decimal.Zero, monthlyRate, remainingMonths)
	growth := math.Pow(1+monthlyRate, remainingMonths)
	required := target.Sub(seriesOnly).Div(decimal.NewFromFloat(growth))
	if required.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return required
}
