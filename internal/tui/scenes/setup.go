package scenes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/swrgo/internal/domain"
	"github.com/rgehrsitz/swrgo/internal/tui/components"
	"github.com/rgehrsitz/swrgo/internal/tui/tuimsg"
	"github.com/rgehrsitz/swrgo/internal/tui/tuistyles"
)

// SetupModel shows the portfolio and lets the user tune run settings
type SetupModel struct {
	portfolio *domain.Portfolio
	sliders   []*components.ParameterSlider
	focus     int
	width     int
	height    int
}

const (
	sliderThreshold = iota
	sliderRuns
	sliderIterations
)

// NewSetupModel creates the setup scene with starting settings
func NewSetupModel(runs int, threshold float64, iterations int) *SetupModel {
	m := &SetupModel{
		sliders: []*components.ParameterSlider{
			components.NewParameterSlider("Target success", threshold*100, 50, 99, 1).
				WithFormat("%.0f%%").
				WithDescription("Share of simulated lifetimes that must not run out of money"),
			components.NewParameterSlider("Simulations", float64(runs), 100, 10000, 100).
				WithDescription("Trials per search step; more is slower but steadier"),
			components.NewParameterSlider("Search steps", float64(iterations), 5, 30, 1).
				WithDescription("Bisection steps; each halves the remaining interval"),
		},
	}
	m.sliders[0].IsFocused = true
	return m
}

// SetPortfolio updates the portfolio shown above the settings
func (m *SetupModel) SetPortfolio(p *domain.Portfolio) {
	m.portfolio = p
}

// SetSize updates the scene dimensions
func (m *SetupModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Request builds the solve request for the current slider values
func (m *SetupModel) Request() tuimsg.SolveRequestedMsg {
	return tuimsg.SolveRequestedMsg{
		Threshold:  m.sliders[sliderThreshold].Value / 100,
		Runs:       int(m.sliders[sliderRuns].Value),
		Iterations: int(m.sliders[sliderIterations].Value),
	}
}

// Update handles messages for the setup scene
func (m *SetupModel) Update(msg tea.Msg) (*SetupModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.setFocus(m.focus - 1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j", "tab"))):
		m.setFocus(m.focus + 1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "h", "-"))):
		m.sliders[m.focus].Decrement()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "l", "+"))):
		m.sliders[m.focus].Increment()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		if m.portfolio == nil {
			return m, nil
		}
		req := m.Request()
		return m, func() tea.Msg { return req }
	}
	return m, nil
}

func (m *SetupModel) setFocus(i int) {
	n := len(m.sliders)
	i = (i%n + n) % n
	m.sliders[m.focus].IsFocused = false
	m.focus = i
	m.sliders[i].IsFocused = true
}

// View renders the setup scene
func (m *SetupModel) View() string {
	portfolio := tuistyles.InfoStyle.Render("Loading portfolio...")
	if m.portfolio != nil {
		portfolio = components.AssetTable(m.portfolio)
	}

	settings := make([]string, len(m.sliders))
	for i, s := range m.sliders {
		settings[i] = s.Render()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		tuistyles.TitleStyle.Render("Portfolio"),
		portfolio,
		"",
		tuistyles.TitleStyle.Render("Run settings"),
		lipgloss.JoinVertical(lipgloss.Left, settings...),
		"",
		tuistyles.SubtitleStyle.Render("↑/↓ select • ←/→ adjust • enter solve"),
	)
}
