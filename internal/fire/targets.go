package fire

import (
	"time"

	"github.com/fireplan/fireplan/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// traditionalResult tests full independence against the current principal:
// achieving Traditional FIRE means the money is already there today, not on
// some projected date. Coast and Barista instead test a projected future
// balance at a hypothetical switch point; that asymmetry is intentional.
func (e *Engine) traditionalResult(plan *domain.Plan, now time.Time) domain.VariantResult {
	target := plan.FireTarget()
	res := domain.VariantResult{Variant: domain.VariantTraditional, Target: target}
	res.RawProgressPercentage, res.ProgressPercentage = progressAgainst(plan.Principal, target)

	if plan.Principal.GreaterThanOrEqual(target) {
		res.Achieved = true
		zero := decimal.Zero
		res.YearsRemaining = &zero
		age := plan.CurrentAge
		res.AchievementAge = &age
		res.AchievementDate = &now
		res.Message = "portfolio already funds full independence"
		e.checkConsistency(&res)
		return res
	}

	contribution := plan.ContributionAt(plan.CurrentAge)
	if !contribution.GreaterThan(decimal.Zero) {
		res.Message = "no contributions and principal below target"
		e.checkConsistency(&res)
		return res
	}

	realAnnual := realAnnualRate(plan.AnnualReturnRate.InexactFloat64(), plan.InflationRate.InexactFloat64())
	monthlyRate := realMonthlyRate(realAnnual)
	periods, err := PeriodsToTarget(monthlyRate, -contribution.InexactFloat64(), -plan.Principal.InexactFloat64(), target.InexactFloat64(), PayEnd)
	if err != nil {
		res.Message = "not achievable within the 50 year horizon"
		e.checkConsistency(&res)
		return res
	}

	years := periods / 12
	yearsDec := decimal.NewFromFloat(years)
	res.YearsRemaining = &yearsDec
	age := plan.CurrentAge + years
	res.AchievementAge = &age
	res.AchievementDate = dateAfterYears(now, years)
	e.checkConsistency(&res)
	return res
}

// variantResult covers Coast (reduced contribution zero) and Barista
// (reduced contribution above zero). The reported target is the balance
// required at the discovered switch age, not the full Traditional target.
func (e *Engine) variantResult(plan *domain.Plan, variant domain.Variant, reducedContribution decimal.Decimal, now time.Time) domain.VariantResult {
	res := domain.VariantResult{Variant: variant}

	sp := FindSwitchAge(plan, reducedContribution)
	if !sp.Possible {
		res.Target = plan.FireTarget()
		res.RawProgressPercentage, res.ProgressPercentage = progressAgainst(plan.Principal, res.Target)
		res.Message = "not achievable by retirement age"
		e.checkConsistency(&res)
		return res
	}

	res.Target = sp.RequiredAtSwitch
	res.RawProgressPercentage, res.ProgressPercentage = progressAgainst(plan.Principal, res.Target)
	res.Achieved = sp.AlreadyAchieved

	switchAge := sp.Age
	res.SwitchAge = &switchAge
	res.AchievementAge = &switchAge
	years := decimal.NewFromFloat(sp.FullYears)
	res.YearsRemaining = &years
	res.AchievementDate = dateAfterYears(now, sp.FullYears)

	if sp.AlreadyAchieved {
		res.Message = "coasting from today already reaches the target"
	}
	e.checkConsistency(&res)
	return res
}

// progressAgainst returns the raw and the capped progress percentage of
// principal against target. A zero target counts as fully achieved.
func progressAgainst(principal, target decimal.Decimal) (raw, capped decimal.Decimal) {
	if !target.GreaterThan(decimal.Zero) {
		return decimalHundred, decimalHundred
	}
	raw = principal.Div(target).Mul(decimalHundred)
	capped = raw
	if capped.GreaterThan(decimalHundred) {
		capped = decimalHundred
	}
	return raw, capped
}

// checkConsistency guards the achieved/progress invariant. Disagreement is a
// defect, not a state to coerce: log it and keep Achieved as ground truth.
func (e *Engine) checkConsistency(res *domain.VariantResult) {
	atTarget := res.RawProgressPercentage.GreaterThanOrEqual(decimalHundred)
	if res.Achieved != atTarget {
		e.warnf("variant %s: achieved=%t disagrees with raw progress %s%%",
			res.Variant, res.Achieved, res.RawProgressPercentage.StringFixed(2))
	}
}

func dateAfterYears(now time.Time, years float64) *time.Time {
	days := int(years*365.25 + 0.5)
	date := now.AddDate(0, 0, days)
	return &date
}
