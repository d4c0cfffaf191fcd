package tui

import (
	"github.com/rgehrsitz/swrgo/internal/tui/tuimsg"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneSetup Scene = iota
	SceneSolving
	SceneResults
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case SceneSetup:
		return "Setup"
	case SceneSolving:
		return "Solving"
	case SceneResults:
		return "Results"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// Aliases so callers of this package need not import tuimsg
type (
	PortfolioLoadedMsg = tuimsg.PortfolioLoadedMsg
	ErrorMsg           = tuimsg.ErrorMsg
	SolveRequestedMsg  = tuimsg.SolveRequestedMsg
	SolveProgressMsg   = tuimsg.SolveProgressMsg
	SolveCompleteMsg   = tuimsg.SolveCompleteMsg
)
