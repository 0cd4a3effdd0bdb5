package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fireplan/fireplan/internal/domain"
)

const samplePlanYAML = `
fire_number: 1000000
current_age: 30
retirement_age: 65
annual_return_rate: 0.07
inflation_rate: 0.03
withdrawal_rate: 0.04
monthly_contribution: 1000
monthly_contribution_reduced: 400
principal: 100000
currency: EUR
lump_sums:
  - age: 40
    amount: 25000
    label: vesting
contribution_stages:
  - end_age: 45
    monthly_contribution: 1500
  - end_age: 65
    monthly_contribution: 500
`

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	parser := NewInputParser()
	plan, err := parser.LoadFromFile(writePlanFile(t, samplePlanYAML))
	require.NoError(t, err)

	assert.Equal(t, 30.0, plan.CurrentAge)
	assert.Equal(t, 65.0, plan.RetirementAge)
	assert.Equal(t, "EUR", plan.Currency)
	assert.True(t, plan.FireNumber.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, plan.MonthlyContributionReduced.Equal(decimal.NewFromInt(400)))
	require.Len(t, plan.LumpSums, 1)
	assert.Equal(t, "vesting", plan.LumpSums[0].Label)
	require.Len(t, plan.ContributionStages, 2)
	assert.True(t, plan.ContributionStages[0].MonthlyContribution.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, domain.DefaultHorizonAge, plan.HorizonAge, "loading normalizes missing fields")
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_MalformedYAML(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(writePlanFile(t, "fire_number: [not a number"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidatePlan(t *testing.T) {
	parser := NewInputParser()

	cases := []struct {
		name    string
		mutate  func(*domain.Plan)
		wantErr string
	}{
		{"valid", func(p *domain.Plan) {}, ""},
		{"zero current age", func(p *domain.Plan) { p.CurrentAge = 0 }, "current_age"},
		{"retirement before current", func(p *domain.Plan) { p.RetirementAge = 25 }, "retirement_age"},
		{"no target at all", func(p *domain.Plan) {
			p.FireNumber = decimal.Zero
			p.AnnualExpenses = decimal.Zero
		}, "fire_number or annual_expenses"},
		{"lump sum in the past", func(p *domain.Plan) {
			p.LumpSums = []domain.LumpSum{{Age: 20, Amount: decimal.NewFromInt(1)}}
		}, "lump_sums[0]"},
		{"stage already over", func(p *domain.Plan) {
			p.ContributionStages = []domain.ContributionStage{{EndAge: 30}}
		}, "contribution_stages[0]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := ExamplePlan()
			tc.mutate(&plan)
			err := parser.ValidatePlan(&plan)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidatePlan_ExpensesOnly(t *testing.T) {
	plan := ExamplePlan()
	plan.FireNumber = decimal.Zero
	plan.AnnualExpenses = decimal.NewFromInt(40000)
	assert.NoError(t, NewInputParser().ValidatePlan(&plan))
}

func TestWriteExampleFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.yaml")
	require.NoError(t, WriteExampleFile(path))

	plan, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.True(t, plan.FireNumber.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, plan.Principal.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, domain.DefaultCurrency, plan.Currency)
}
