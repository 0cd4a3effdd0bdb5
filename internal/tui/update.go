package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.setFocus(m.focus - 1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.setFocus(m.focus + 1)
			return m, nil

		case key.Matches(msg, m.keys.Left):
			m.sliders[m.focus].Decrement()
			m.recompute()
			return m, nil

		case key.Matches(msg, m.keys.Right):
			m.sliders[m.focus].Increment()
			m.recompute()
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			m.sliders = buildSliders(m.basePlan)
			m.setFocus(m.focus)
			m.recompute()
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) setFocus(focus int) {
	if focus < 0 {
		focus = len(m.sliders) - 1
	}
	if focus >= len(m.sliders) {
		focus = 0
	}
	m.sliders[m.focus].IsFocused = false
	m.focus = focus
	m.sliders[m.focus].IsFocused = true
}
