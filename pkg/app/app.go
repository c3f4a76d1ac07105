package app

import (
	"context"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangareader/pkg/app/screens"
	"github.com/kerbaras/mangareader/pkg/config"
	"github.com/kerbaras/mangareader/pkg/services"
)

type App struct {
	cfg *config.Config
}

func NewApp(cfg *config.Config) *App {
	return &App{cfg: cfg}
}

// Run starts the TUI. The alternate screen owns the terminal, so logs go to
// the configured log file or nowhere.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.LogFile != "" {
		f, err := tea.LogToFile(a.cfg.LogFile, "mangareader")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	controller, err := services.NewMangaControllerFromConfig(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer controller.Close()

	model := screens.NewRootScreen(controller)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
