package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/fireplan/fireplan/internal/domain"
	"github.com/fireplan/fireplan/internal/output"
	"github.com/fireplan/fireplan/internal/tui/components"
	"github.com/fireplan/fireplan/internal/tui/tuistyles"
)

// A variant within ten years reads as good news on the cards.
var yearsSoon = decimal.NewFromInt(10)

// View renders the what-if screen.
func (m Model) View() string {
	if m.projection == nil {
		return tuistyles.InfoStyle.Render("Calculating...")
	}

	var sections []string
	sections = append(sections, tuistyles.TitleStyle.Render("fireplan — what-if"))
	sections = append(sections, m.renderCards())
	sections = append(sections, m.renderSliders())
	sections = append(sections, m.renderChart())
	sections = append(sections, m.renderHelp())

	return tuistyles.AppStyle.Render(strings.Join(sections, "\n\n"))
}

func (m Model) renderCards() string {
	currency := m.projection.Plan.Currency
	cards := make([]string, 0, 3)
	for _, res := range m.projection.Results() {
		label := strings.ToUpper(string(res.Variant)[:1]) + string(res.Variant)[1:] + " FIRE"
		card := components.NewMetricCard(label, output.FormatCurrency(res.Target, currency))
		switch {
		case res.Achieved:
			card.WithStatus("achieved", true)
		case res.YearsRemaining == nil:
			card.WithStatus("out of reach", false)
		default:
			card.WithStatus(res.YearsRemaining.StringFixed(1)+" years to go", res.YearsRemaining.LessThan(yearsSoon))
		}
		cards = append(cards, card.Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) renderSliders() string {
	lines := make([]string, 0, len(m.sliders))
	for _, slider := range m.sliders {
		lines = append(lines, slider.Render())
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderChart() string {
	chart := components.NewASCIIChart(
		fmt.Sprintf("Portfolio to age %.0f (today's dollars)", m.projection.Plan.HorizonAge))
	chart.AddSeries("Plan", trajectoryValues(m.projection.PlanTrajectory), tuistyles.ColorChartLine1)
	if len(m.projection.CoastTrajectory) > 0 {
		chart.AddSeries("Coast", trajectoryValues(m.projection.CoastTrajectory), tuistyles.ColorChartLine2)
	}
	if len(m.projection.BaristaTrajectory) > 0 {
		chart.AddSeries("Barista", trajectoryValues(m.projection.BaristaTrajectory), tuistyles.ColorChartLine3)
	}
	chart.AddSeries("Goal", trajectoryValues(m.projection.GoalLine), tuistyles.ColorChartLine4)

	width := m.width - 20
	if width < 40 {
		width = 40
	}
	if width > 90 {
		width = 90
	}
	return chart.WithSize(width, 12).Render()
}

func (m Model) renderHelp() string {
	pairs := [][2]string{
		{"↑↓", "select"},
		{"←→", "adjust"},
		{"r", "reset"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		parts = append(parts,
			tuistyles.HelpKeyStyle.Render(pair[0])+" "+tuistyles.HelpDescStyle.Render(pair[1]))
	}
	return strings.Join(parts, "  ")
}

func trajectoryValues(points []domain.TrajectoryPoint) []float64 {
	values := make([]float64, len(points))
	for i, point := range points {
		values[i] = point.Balance.InexactFloat64()
	}
	return values
}
