package fire

import (
	"math"
)

// Timing says whether payments land at the start or end of each period,
// matching spreadsheet NPER semantics.
type Timing int

const (
	PayEnd Timing = iota
	PayBegin
)

// MaxPeriods caps the iterative solver at 50 years of monthly compounding.
const MaxPeriods = 600

// SolvePeriods solves the annuity equation for the number of compounding
// periods needed to turn presentValue into targetFutureValue.
//
// Sign convention follows spreadsheet NPER: outflows are negative, so a
// starting balance already invested and ongoing contributions are passed as
// negative presentValue and negative payment.
//
// Returns ErrNotComputable (wrapped) when the closed form is invalid for
// these inputs; callers should fall back to SimulatePeriods.
func SolvePeriods(rate, payment, presentValue, targetFutureValue float64, timing Timing) (float64, error) {
	if rate == 0 {
		if targetFutureValue+presentValue <= 0 {
			// Already at or past the target.
			return 0, nil
		}
		if payment == 0 {
			return math.NaN(), &CalcError{
				Op:      "solve_periods",
				Message: "zero rate and zero payment cannot change the balance",
				Cause:   ErrNotComputable,
			}
		}
		periods := -(targetFutureValue + presentValue) / payment
		if periods < 0 {
			// The balance moves away from the target at zero rate.
			return math.NaN(), &CalcError{
				Op:      "solve_periods",
				Message: "payments move the balance away from the target",
				Cause:   ErrNotComputable,
			}
		}
		return periods, nil
	}

	when := 0.0
	if timing == PayBegin {
		when = 1.0
	}
	adjPayment := -payment * (1 + rate*when)
	adjPresent := -presentValue

	numerator := targetFutureValue*rate + adjPayment
	denominator := adjPresent*rate + adjPayment
	if denominator == 0 || numerator/denominator <= 0 {
		return math.NaN(), &CalcError{
			Op:      "solve_periods",
			Message: "non-positive logarithm argument",
			Cause:   ErrNotComputable,
		}
	}

	periods := math.Log(numerator/denominator) / math.Log(1+rate)
	if math.IsNaN(periods) || math.IsInf(periods, 0) {
		return math.NaN(), &CalcError{
			Op:      "solve_periods",
			Message: "closed form diverged",
			Cause:   ErrNotComputable,
		}
	}
	if periods < 0 {
		// Target is already behind the starting trajectory.
		return 0, nil
	}
	return periods, nil
}

// SimulatePeriods is the iterative fallback: it compounds period by period,
// using the same sign convention as SolvePeriods, and counts periods until
// the balance reaches the target or the horizon cap is hit.
func SimulatePeriods(rate, payment, presentValue, targetFutureValue float64) (int, error) {
	balance := -presentValue
	if balance >= targetFutureValue {
		return 0, nil
	}
	for period := 1; period <= MaxPeriods; period++ {
		balance = balance*(1+rate) - payment
		if balance >= targetFutureValue {
			return period, nil
		}
	}
	return 0, &CalcError{
		Op:      "simulate_periods",
		Message: "target not reached within the 50 year horizon",
		Cause:   ErrNotAchievable,
	}
}

// PeriodsToTarget tries the closed form and falls back to the iterative
// solver when the closed form is not computable or lands past the horizon.
func PeriodsToTarget(rate, payment, presentValue, targetFutureValue float64, timing Timing) (float64, error) {
	periods, err := SolvePeriods(rate, payment, presentValue, targetFutureValue, timing)
	if err == nil {
		if periods > MaxPeriods {
			return 0, &CalcError{
				Op:      "periods_to_target",
				Message: "solution lies past the 50 year horizon",
				Cause:   ErrNotAchievable,
			}
		}
		return periods, nil
	}
	simulated, simErr := SimulatePeriods(rate, payment, presentValue, targetFutureValue)
	if simErr != nil {
		return 0, simErr
	}
	return float64(simulated), nil
}
