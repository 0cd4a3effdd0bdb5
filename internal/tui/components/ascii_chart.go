package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fireplan/fireplan/internal/tui/tuistyles"
)

// DataSeries is a single line in a chart.
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart displays a simple multi-series line chart.
type ASCIIChart struct {
	Title      string
	Series     []*DataSeries
	Width      int
	Height     int
	ShowLegend bool
}

// NewASCIIChart creates a new ASCII chart.
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:      title,
		Width:      60,
		Height:     14,
		ShowLegend: true,
	}
}

// AddSeries adds a data series to the chart.
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{Name: name, Points: points, Color: color})
	return c
}

// WithSize sets the chart dimensions.
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	c.Width = width
	c.Height = height
	return c
}

// Render returns the styled chart.
func (c *ASCIIChart) Render() string {
	if len(c.Series) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	minVal, maxVal := c.bounds()
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	// grid[row][col] holds the series index occupying that cell, -1 if empty.
	grid := make([][]int, c.Height)
	for r := range grid {
		grid[r] = make([]int, c.Width)
		for col := range grid[r] {
			grid[r][col] = -1
		}
	}

	for si, series := range c.Series {
		for col := 0; col < c.Width; col++ {
			value, ok := sampleAt(series.Points, col, c.Width)
			if !ok {
				continue
			}
			frac := (value - minVal) / (maxVal - minVal)
			row := c.Height - 1 - int(math.Round(frac*float64(c.Height-1)))
			if row < 0 {
				row = 0
			}
			if row >= c.Height {
				row = c.Height - 1
			}
			grid[row][col] = si
		}
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n")
	}

	axisStyle := tuistyles.SubtitleStyle
	for row := 0; row < c.Height; row++ {
		switch row {
		case 0:
			content.WriteString(axisStyle.Render(fmt.Sprintf("%10s ", compactValue(maxVal))))
		case c.Height - 1:
			content.WriteString(axisStyle.Render(fmt.Sprintf("%10s ", compactValue(minVal))))
		default:
			content.WriteString(strings.Repeat(" ", 11))
		}
		content.WriteString(axisStyle.Render("│"))
		for col := 0; col < c.Width; col++ {
			si := grid[row][col]
			if si < 0 {
				content.WriteString(" ")
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.Series[si].Color)
			content.WriteString(style.Render("•"))
		}
		content.WriteString("\n")
	}
	content.WriteString(strings.Repeat(" ", 11))
	content.WriteString(axisStyle.Render("└" + strings.Repeat("─", c.Width)))

	if c.ShowLegend {
		content.WriteString("\n")
		var legend []string
		for _, series := range c.Series {
			style := lipgloss.NewStyle().Foreground(series.Color)
			legend = append(legend, style.Render("•")+" "+series.Name)
		}
		content.WriteString(strings.Repeat(" ", 12) + strings.Join(legend, "   "))
	}

	return content.String()
}

func (c *ASCIIChart) bounds() (minVal, maxVal float64) {
	minVal = math.Inf(1)
	maxVal = math.Inf(-1)
	for _, series := range c.Series {
		for _, v := range series.Points {
			minVal = math.Min(minVal, v)
			maxVal = math.Max(maxVal, v)
		}
	}
	if math.IsInf(minVal, 1) {
		return 0, 0
	}
	return minVal, maxVal
}

// sampleAt maps a chart column back into the source points.
func sampleAt(points []float64, col, width int) (float64, bool) {
	if len(points) == 0 {
		return 0, false
	}
	idx := col * (len(points) - 1) / maxInt(width-1, 1)
	if idx >= len(points) {
		return 0, false
	}
	return points[idx], true
}

func compactValue(v float64) string {
	switch {
	case math.Abs(v) >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case math.Abs(v) >= 1_000:
		return fmt.Sprintf("%.0fk", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
