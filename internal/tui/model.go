package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/swrgo/internal/calculation"
	"github.com/rgehrsitz/swrgo/internal/config"
	"github.com/rgehrsitz/swrgo/internal/domain"
	"github.com/rgehrsitz/swrgo/internal/output"
	"github.com/rgehrsitz/swrgo/internal/tui/components"
	"github.com/rgehrsitz/swrgo/internal/tui/scenes"
	"github.com/rgehrsitz/swrgo/internal/withdrawal"
)

// Options configure a new TUI model
type Options struct {
	PortfolioPath string
	Settings      *config.RunSettings
	Logger        calculation.Logger
}

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	portfolioPath string
	portfolio     *domain.Portfolio
	settings      config.RunSettings
	logger        calculation.Logger

	setupModel   *scenes.SetupModel
	resultsModel *scenes.ResultsModel
	progress     *components.SolveProgress

	// Running solve; updates is nil when idle
	updates  chan tea.Msg
	cancel   context.CancelFunc
	lastSeed uint64
	lastReq  SolveRequestedMsg

	keys keyMap
	help help.Model

	err    error
	notice string

	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	settings := config.RunSettings{
		Runs:       config.DefaultRuns,
		Threshold:  config.DefaultThreshold,
		Iterations: config.DefaultIterations,
	}
	if opts.Settings != nil {
		settings = *opts.Settings
	}
	logger := opts.Logger
	if logger == nil {
		logger = calculation.NopLogger{}
	}

	return Model{
		currentScene:   SceneSetup,
		portfolioPath:  opts.PortfolioPath,
		settings:       settings,
		logger:         logger,
		setupModel:     scenes.NewSetupModel(settings.Runs, settings.Threshold, settings.Iterations),
		resultsModel:   scenes.NewResultsModel(),
		keys:           defaultKeyMap(),
		help:           help.New(),
		width:          80,
		height:         24,
		loading:        true,
		loadingMessage: "Loading portfolio...",
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadPortfolioCmd(m.portfolioPath)
}

// loadPortfolioCmd returns a command that loads the portfolio file
func loadPortfolioCmd(path string) tea.Cmd {
	return func() tea.Msg {
		p, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return PortfolioLoadedMsg{Portfolio: p}
	}
}

// startSolve launches the solver on its own goroutine. Progress and the final
// result arrive on the returned channel, which is closed when the solve ends.
func startSolve(ctx context.Context, solver *withdrawal.Solver, assets []domain.Asset, params domain.SimulationParameters, seed uint64) chan tea.Msg {
	updates := make(chan tea.Msg, 4)
	go func() {
		defer close(updates)
		onProgress := func(percent float64) {
			select {
			case updates <- SolveProgressMsg{Percent: percent}:
			case <-ctx.Done():
			}
		}
		result, err := solver.Solve(ctx, assets, params, calculation.NewSource(seed), onProgress)
		sendFinal(ctx, updates, SolveCompleteMsg{Parameters: params, Result: result, Err: err})
	}()
	return updates
}

// sendFinal delivers msg whenever the buffer has room, even after ctx is
// done, and otherwise gives up once ctx is done.
func sendFinal(ctx context.Context, updates chan<- tea.Msg, msg tea.Msg) {
	select {
	case updates <- msg:
		return
	default:
	}
	select {
	case updates <- msg:
	case <-ctx.Done():
	}
}

// waitForUpdate reads the next message from a running solve. A channel that
// closes before delivering a result reads as a cancelled solve.
func waitForUpdate(updates chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-updates
		if !ok {
			return SolveCompleteMsg{Err: context.Canceled}
		}
		return msg
	}
}

// beginSolve builds the solver for the request and starts it
func (m Model) beginSolve(req SolveRequestedMsg) (Model, tea.Cmd) {
	if m.portfolio == nil || m.updates != nil {
		return m, nil
	}

	opts := withdrawal.DefaultSolverOptions()
	opts.Iterations = req.Iterations
	if m.settings.Workers > 0 {
		opts.Workers = m.settings.Workers
	}
	solver := withdrawal.NewSolver(opts)
	solver.SetLogger(m.logger)

	seed := m.settings.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	params := m.portfolio.SimulationParameters(req.Runs, req.Threshold)
	ctx, cancel := context.WithCancel(context.Background())

	m.lastReq = req
	m.lastSeed = seed
	m.cancel = cancel
	m.progress = components.NewSolveProgress(req.Iterations).WithWidth(max(10, min(50, m.width-10)))
	m.updates = startSolve(ctx, solver, m.portfolio.Assets, params, seed)
	m.previousScene = m.currentScene
	m.currentScene = SceneSolving
	return m, waitForUpdate(m.updates)
}

// finishSolve stores the outcome of a solve and leaves the solving scene
func (m Model) finishSolve(msg SolveCompleteMsg) Model {
	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = nil
	m.updates = nil

	if errors.Is(msg.Err, context.Canceled) {
		m.notice = "Solve cancelled"
		m.currentScene = SceneSetup
		return m
	}
	if msg.Err != nil {
		m.err = msg.Err
		m.currentScene = SceneSetup
		return m
	}

	m.resultsModel.SetReport(&output.Report{
		Portfolio:  m.portfolio,
		Parameters: msg.Parameters,
		Result:     msg.Result,
		Seed:       m.lastSeed,
	})
	m.currentScene = SceneResults
	return m
}

// Report returns the most recent solve, or nil
func (m Model) Report() *output.Report {
	return m.resultsModel.Report()
}

// Scene returns the scene on display
func (m Model) Scene() Scene {
	return m.currentScene
}
