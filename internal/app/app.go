package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"launchbox/internal/catalog"
	"launchbox/internal/launch"
	"launchbox/internal/scan"
	"launchbox/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Rows         int
	CachePath    string
	DocumentDirs []string
	HighlightFg  string
	HighlightBg  string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	sources := scan.DefaultSources()
	sources.DocumentDirs = cfg.DocumentDirs
	loader := scan.NewLoader(sources, cfg.CachePath)

	cat := catalog.New(loader.Load())
	model := ui.NewModel(cat, cfg.Rows, loader, launch.NewRunner(), cfg.HighlightFg, cfg.HighlightBg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
