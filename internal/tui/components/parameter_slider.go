package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fireplan/fireplan/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable plan parameter with a visual slider.
type ParameterSlider struct {
	Label     string
	Value     float64
	Min       float64
	Max       float64
	Step      float64
	Unit      string // e.g. "%", "years", "$"
	Format    string // e.g. "%.2f", "%.0f"
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a new parameter slider.
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	return &ParameterSlider{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.2f",
		Width:  30,
	}
}

// WithUnit sets the unit suffix.
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// WithFormat sets the value format string.
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// Increment increases the value by step.
func (p *ParameterSlider) Increment() {
	newValue := p.Value + p.Step
	if newValue <= p.Max {
		p.Value = newValue
	}
}

// Decrement decreases the value by step.
func (p *ParameterSlider) Decrement() {
	newValue := p.Value - p.Step
	if newValue >= p.Min {
		p.Value = newValue
	}
}

// SetValue sets the value directly, clamping to min/max.
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Percentage returns the value as a fraction of the range.
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Render returns a single-line styled slider.
func (p *ParameterSlider) Render() string {
	valueStr := fmt.Sprintf(p.Format, p.Value)
	if p.Unit != "" {
		valueStr += p.Unit
	}

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	label := labelStyle.Width(22).Render(p.Label)
	value := valueStyle.Width(12).Render(valueStr)

	return lipgloss.JoinHorizontal(lipgloss.Top, label, p.renderSliderBar(), " ", value)
}

func (p *ParameterSlider) renderSliderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}

	trackStyle := tuistyles.SliderTrackStyle
	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty := p.Width - filled; empty > 1 {
		bar.WriteString(trackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")
	return bar.String()
}
