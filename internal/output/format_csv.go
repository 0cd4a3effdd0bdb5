package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/fireplan/fireplan/internal/domain"
)

// CSVFormatter formats the per-variant results as CSV.
type CSVFormatter struct{}

// Format generates one CSV row per FIRE variant.
func (cf *CSVFormatter) Format(proj *domain.Projection) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Variant",
		"Target",
		"Achieved",
		"Progress %",
		"Raw Progress %",
		"Years Remaining",
		"Achievement Age",
		"Switch Age",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, res := range proj.Results() {
		if err := writer.Write(cf.formatRow(res)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(res domain.VariantResult) []string {
	yearsRemaining := ""
	if res.YearsRemaining != nil {
		yearsRemaining = res.YearsRemaining.StringFixed(2)
	}
	achievementAge := ""
	if res.AchievementAge != nil {
		achievementAge = strconv.FormatFloat(*res.AchievementAge, 'f', 2, 64)
	}
	switchAge := ""
	if res.SwitchAge != nil {
		switchAge = strconv.FormatFloat(*res.SwitchAge, 'f', 2, 64)
	}
	return []string{
		string(res.Variant),
		res.Target.StringFixed(2),
		strconv.FormatBool(res.Achieved),
		res.ProgressPercentage.StringFixed(2),
		res.RawProgressPercentage.StringFixed(2),
		yearsRemaining,
		achievementAge,
		switchAge,
	}
}

// TrajectoryCSV renders monthly trajectory series as CSV, one column per
// named series plus the goal line.
func TrajectoryCSV(proj *domain.Projection) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"Age", "Plan", "Coast", "Barista", "Goal"}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for i, point := range proj.PlanTrajectory {
		row := []string{
			strconv.FormatFloat(point.Age, 'f', 4, 64),
			point.Balance.StringFixed(2),
			trajectoryCell(proj.CoastTrajectory, i),
			trajectoryCell(proj.BaristaTrajectory, i),
			trajectoryCell(proj.GoalLine, i),
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func trajectoryCell(series []domain.TrajectoryPoint, i int) string {
	if i >= len(series) {
		return ""
	}
	return series[i].Balance.StringFixed(2)
}
