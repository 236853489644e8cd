package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/movies/pkg/app/screens"
	"github.com/kerbaras/movies/pkg/integrations"
	"github.com/kerbaras/movies/pkg/services"
)

type App struct {
	controller *services.MovieController
	exporter   integrations.Exporter
}

func NewApp(controller *services.MovieController, exporter integrations.Exporter) *App {
	return &App{controller: controller, exporter: exporter}
}

func (a *App) Run() error {
	model := screens.NewHomeScreen(a.controller, a.exporter)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
