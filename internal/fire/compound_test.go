package fire

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFutureValue_ZeroYears(t *testing.T) {
	principal := decimal.NewFromInt(1000)
	result := FutureValue(principal, 0.07, 12, 0)
	assert.True(t, result.Equal(principal), "Zero years should return principal unchanged")
}

func TestFutureValue_ZeroRate(t *testing.T) {
	principal := decimal.NewFromInt(1000)
	result := FutureValue(principal, 0, 12, 10)
	assert.True(t, result.Equal(principal), "Zero rate should return principal unchanged")
}

func TestFutureValue_AnnualCompounding(t *testing.T) {
	principal := decimal.NewFromInt(1000)
	result := FutureValue(principal, 0.07, 1, 1)
	expected := decimal.NewFromInt(1070)
	assert.True(t, result.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"1000 at 7%% for one year should be ~1070, got %s", result.String())
}

func TestFutureValue_MonthlyCompounding(t *testing.T) {
	principal := decimal.NewFromInt(10000)
	result := FutureValue(principal, 0.06, 12, 5)

	// Manual: 10000 * (1.005)^60
	manual := decimal.NewFromInt(10000)
	factor := decimal.NewFromFloat(1.005)
	for i := 0; i < 60; i++ {
		manual = manual.Mul(factor)
	}
	assert.True(t, result.Sub(manual).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"closed form and manual loop disagree: %s vs %s", result.String(), manual.String())
}

func TestFutureValueOfSeries_ZeroRateIsLinear(t *testing.T) {
	// For rate 0: p + pmt·n·t exactly, no division by zero.
	cases := []struct {
		payment   int64
		years     float64
		principal int64
		expected  int64
	}{
		{100, 10, 500, 12500},
		{0, 10, 500, 500},
		{250, 1, 0, 3000},
		{0, 0, 0, 0},
	}
	for _, tc := range cases {
		result := FutureValueOfSeries(decimal.NewFromInt(tc.payment), 0, 12, tc.years, decimal.NewFromInt(tc.principal))
		assert.True(t, result.Equal(decimal.NewFromInt(tc.expected)),
			"pmt=%d years=%v principal=%d: expected %d, got %s",
			tc.payment, tc.years, tc.principal, tc.expected, result.String())
	}
}

func TestFutureValueOfSeries_MatchesPeriodLoop(t *testing.T) {
	result := FutureValueOfSeries(decimal.NewFromInt(100), 0.06, 12, 5, decimal.NewFromInt(1000))

	// End-of-period payments: balance = balance*(1+i) + pmt.
	balance := decimal.NewFromInt(1000)
	factor := decimal.NewFromFloat(1.005)
	payment := decimal.NewFromInt(100)
	for i := 0; i < 60; i++ {
		balance = balance.Mul(factor).Add(payment)
	}

	assert.True(t, result.Sub(balance).Abs().LessThan(decimal.NewFromFloat(0.01)),
		"series formula and period loop disagree: %s vs %s", result.String(), balance.String())
}

func TestRealRates(t *testing.T) {
	real := realAnnualRate(0.07, 0.02)
	assert.InDelta(t, 0.04902, real, 0.0001, "real rate should deflate nominal by inflation")

	assert.InDelta(t, 0.07, realAnnualRate(0.07, 0), 1e-12, "zero inflation keeps the nominal rate")

	monthly := realMonthlyRate(0.07)
	assert.InDelta(t, 0.005654, monthly, 0.00001)
}
