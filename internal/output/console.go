package output

import (
	"fmt"
	"strings"

	"github.com/fireplan/fireplan/internal/domain"
)

// ConsoleFormatter renders a projection as a plain-text report.
type ConsoleFormatter struct{}

// Format generates the console report.
func (cf *ConsoleFormatter) Format(proj *domain.Projection) string {
	var sb strings.Builder
	currency := proj.Plan.Currency

	sb.WriteString("==========================================================\n")
	sb.WriteString("FIRE PROJECTION\n")
	sb.WriteString("==========================================================\n\n")

	fmt.Fprintf(&sb, "Current age:          %.1f\n", proj.Plan.CurrentAge)
	fmt.Fprintf(&sb, "Retirement age:       %.1f\n", proj.Plan.RetirementAge)
	fmt.Fprintf(&sb, "Portfolio value:      %s\n", FormatCurrency(proj.Plan.Principal, currency))
	fmt.Fprintf(&sb, "Monthly contribution: %s\n", FormatCurrency(proj.Plan.MonthlyContribution, currency))
	fmt.Fprintf(&sb, "Expected return:      %s\n", FormatPercent(proj.Plan.AnnualReturnRate))
	fmt.Fprintf(&sb, "Inflation:            %s\n", FormatPercent(proj.Plan.InflationRate))
	fmt.Fprintf(&sb, "Withdrawal rate:      %s\n", FormatPercent(proj.Plan.WithdrawalRate))
	sb.WriteString("\n")

	for _, res := range proj.Results() {
		cf.writeVariant(&sb, res, currency)
	}

	fmt.Fprintf(&sb, "Projected balance at age %.0f: %s\n",
		proj.Plan.HorizonAge, FormatCurrency(proj.FinalBalance(), currency))

	return sb.String()
}

func (cf *ConsoleFormatter) writeVariant(sb *strings.Builder, res domain.VariantResult, currency string) {
	fmt.Fprintf(sb, "%s\n", strings.ToUpper(string(res.Variant))+" FIRE")
	fmt.Fprintf(sb, "%s\n", strings.Repeat("-", 40))
	fmt.Fprintf(sb, "Target:        %s\n", FormatCurrency(res.Target, currency))
	fmt.Fprintf(sb, "Progress:      %s%% (raw %s%%)\n",
		res.ProgressPercentage.StringFixed(1), res.RawProgressPercentage.StringFixed(1))

	switch {
	case res.Achieved:
		fmt.Fprintf(sb, "Status:        achieved\n")
	case res.YearsRemaining == nil:
		fmt.Fprintf(sb, "Status:        not achievable within horizon\n")
	default:
		fmt.Fprintf(sb, "Status:        %s years remaining\n", res.YearsRemaining.StringFixed(1))
	}

	if res.AchievementAge != nil && !res.Achieved {
		fmt.Fprintf(sb, "Reached at:    age %.1f", *res.AchievementAge)
		if res.AchievementDate != nil {
			fmt.Fprintf(sb, " (%s)", res.AchievementDate.Format("Jan 2006"))
		}
		sb.WriteString("\n")
	}
	if res.SwitchAge != nil && !res.Achieved {
		fmt.Fprintf(sb, "Down-shift at: age %.1f\n", *res.SwitchAge)
	}
	if res.Message != "" {
		fmt.Fprintf(sb, "Note:          %s\n", res.Message)
	}
	sb.WriteString("\n")
}
