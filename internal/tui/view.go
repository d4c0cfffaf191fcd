package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render("⠋ " + m.loadingMessage))
	}
	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneSetup:
		content = m.setupModel.View()
		if m.notice != "" {
			content = lipgloss.JoinVertical(lipgloss.Left, InfoStyle.Render(m.notice), "", content)
		}
	case SceneSolving:
		content = m.renderSolving()
	case SceneResults:
		content = m.resultsModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	title := lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("SWRGO - Safe Withdrawal Rate"),
		SubtitleStyle.Render(m.currentScene.String()),
	)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		content,
		"",
		StatusBarStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) renderSolving() string {
	if m.progress == nil {
		return ""
	}
	hint := SubtitleStyle.Render(fmt.Sprintf("%d simulations per step • x to cancel", m.lastReq.Runs))
	return BorderStyle.Render(m.progress.Render() + "\n\n" + hint)
}

// renderError renders an error message
func (m Model) renderError() string {
	prompt := "Press any key to continue..."
	if m.portfolio == nil {
		prompt = "Press any key to exit."
	}
	return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s\n\n%s", m.err, prompt)))
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `SWRGO - Safe Withdrawal Rate Solver

Finds the largest inflation-adjusted yearly withdrawal that keeps the share of
simulated lifetimes that never run out of money at or above the target.

SETUP:
  ↑/↓      Select a setting
  ←/→      Adjust the selected setting
  Enter    Start the solve

WHILE SOLVING:
  x/ESC    Cancel after the current step

RESULTS:
  r        Re-run with the same settings
  ESC      Back to setup

  ?        Show this help
  q/Ctrl+C Quit`

	return BorderStyle.Render(helpText)
}
