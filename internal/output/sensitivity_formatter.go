package output

import (
	"fmt"
	"strings"

	"github.com/fireplan/fireplan/internal/sensitivity"
	"github.com/goccy/go-json"
)

// SensitivityFormatter renders a parameter sweep.
type SensitivityFormatter struct{}

// FormatConsole generates a plain-text sweep table.
func (sf *SensitivityFormatter) FormatConsole(analysis *sensitivity.Analysis) string {
	var sb strings.Builder
	currency := analysis.BasePlan.Currency

	fmt.Fprintf(&sb, "SENSITIVITY: %s (%s to %s, %d steps)\n",
		analysis.Parameter.Name,
		analysis.Parameter.Min.String(),
		analysis.Parameter.Max.String(),
		analysis.Parameter.Steps)
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	fmt.Fprintf(&sb, "%-14s %-12s %-14s %-12s %s\n",
		"Value", "Traditional", "Coast switch", "Barista sw.", "Balance at horizon")

	for _, res := range analysis.Results {
		traditional := "beyond horizon"
		if res.TraditionalAchieved {
			traditional = "achieved"
		} else if res.TraditionalYears != nil {
			traditional = res.TraditionalYears.StringFixed(1) + "y"
		}
		fmt.Fprintf(&sb, "%-14s %-12s %-14s %-12s %s\n",
			res.Value.String(),
			traditional,
			formatAge(res.CoastSwitchAge),
			formatAge(res.BaristaSwitchAge),
			FormatCurrency(res.FinalBalance, currency))
	}

	return sb.String()
}

// FormatJSON generates JSON output for a sweep.
func (sf *SensitivityFormatter) FormatJSON(analysis *sensitivity.Analysis) (string, error) {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func formatAge(age *float64) string {
	if age == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *age)
}
