package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rgehrsitz/swrgo/internal/config"
	"github.com/rgehrsitz/swrgo/internal/tui"
)

// newFileLogger logs to path so output does not disturb the terminal UI
func newFileLogger(path string) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: swrgo-tui <portfolio-file>")
		os.Exit(1)
	}
	portfolioPath := os.Args[1]

	if _, err := os.Stat(portfolioPath); os.IsNotExist(err) {
		fmt.Printf("Error: Portfolio file not found: %s\n", portfolioPath)
		os.Exit(1)
	}

	// Run settings come from SWRGO_* environment variables and SWRGO_SETTINGS
	settings, err := config.LoadRunSettings(config.NewSettingsReader(), os.Getenv("SWRGO_SETTINGS"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{PortfolioPath: portfolioPath, Settings: settings}
	if logPath := os.Getenv("SWRGO_LOG"); logPath != "" {
		logger, err := newFileLogger(logPath)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync() //nolint:errcheck
		opts.Logger = logger
	}

	p := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
