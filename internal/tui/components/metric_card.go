package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fireplan/fireplan/internal/tui/tuistyles"
)

// MetricCard displays a single metric with label, value, and a status line.
type MetricCard struct {
	Label      string
	Value      string
	Status     string
	StatusGood bool
	Width      int
}

// NewMetricCard creates a new metric card.
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 28,
	}
}

// WithStatus adds a colored status line.
func (m *MetricCard) WithStatus(status string, good bool) *MetricCard {
	m.Status = status
	m.StatusGood = good
	return m
}

// WithWidth sets the card width.
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

// Render returns the styled metric card.
func (m *MetricCard) Render() string {
	label := tuistyles.MetricLabelStyle.Render(m.Label)
	value := tuistyles.MetricValueStyle.Render(m.Value)

	lines := []string{label, value}
	if m.Status != "" {
		statusStyle := tuistyles.MetricNegativeStyle
		if m.StatusGood {
			statusStyle = tuistyles.MetricPositiveStyle
		}
		lines = append(lines, statusStyle.Render(m.Status))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return tuistyles.CardStyle.Width(m.Width).Render(content)
}
