package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.setupModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case PortfolioLoadedMsg:
		m.loading = false
		m.portfolio = msg.Portfolio
		m.setupModel.SetPortfolio(msg.Portfolio)
		return m, nil

	case SolveRequestedMsg:
		m.notice = ""
		return m.beginSolve(msg)

	case SolveProgressMsg:
		if m.progress != nil {
			m.progress.Update(msg.Percent)
		}
		if m.updates == nil {
			return m, nil
		}
		return m, waitForUpdate(m.updates)

	case SolveCompleteMsg:
		return m.finishSolve(msg), nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		// Any key dismisses an error, except quit on a load failure
		if m.portfolio == nil || key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case m.currentScene == SceneSolving:
		if key.Matches(msg, m.keys.Cancel) && m.cancel != nil {
			m.cancel()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		if m.currentScene != SceneHelp {
			m.previousScene = m.currentScene
			m.currentScene = SceneHelp
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		switch m.currentScene {
		case SceneHelp:
			m.currentScene = m.previousScene
		case SceneResults:
			m.currentScene = SceneSetup
		}
		return m, nil

	case m.currentScene == SceneResults && key.Matches(msg, m.keys.Resolve):
		req := m.lastReq
		return m, func() tea.Msg { return req }
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneSetup:
		m.setupModel, cmd = m.setupModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	}
	return m, cmd
}
