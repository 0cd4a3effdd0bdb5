package fire

import (
	"math"

	"github.com/shopspring/decimal"
)

// FutureValue grows a single lump sum: P·(1+r/n)^(n·t). A zero-year or
// zero-rate input returns the principal's value unchanged/ungrown.
func FutureValue(principal decimal.Decimal, rate float64, periodsPerYear int, years float64) decimal.Decimal {
	if years <= 0 || rate == 0 || periodsPerYear <= 0 {
		return principal
	}
	factor := math.Pow(1+rate/float64(periodsPerYear), float64(periodsPerYear)*years)
	return principal.Mul(decimal.NewFromFloat(factor))
}

// FutureValueOfSeries returns the future value of a level payment stream plus
// the growth of a starting principal. At rate zero the stream degrades to
// simple linear accumulation.
func FutureValueOfSeries(payment decimal.Decimal, rate float64, periodsPerYear int, years float64, startingPrincipal decimal.Decimal) decimal.Decimal {
	if years <= 0 || periodsPerYear <= 0 {
		return startingPrincipal
	}
	periods := float64(periodsPerYear) * years
	if rate == 0 {
		return startingPrincipal.Add(payment.Mul(decimal.NewFromFloat(periods)))
	}
	periodicRate := rate / float64(periodsPerYear)
	growth := math.Pow(1+periodicRate, periods)
	annuity := payment.Mul(decimal.NewFromFloat((growth - 1) / periodicRate))
	return annuity.Add(FutureValue(startingPrincipal, rate, periodsPerYear, years))
}

// realAnnualRate deflates a nominal annual return by inflation:
// (1+nominal)/(1+inflation) − 1.
func realAnnualRate(nominal, inflation float64) float64 {
	if inflation == 0 {
		return nominal
	}
	return (1+nominal)/(1+inflation) - 1
}

// realMonthlyRate converts a real annual rate to its monthly equivalent.
func realMonthlyRate(realAnnual float64) float64 {
	return math.Pow(1+realAnnual, 1.0/12) - 1
}
