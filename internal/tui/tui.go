package tui

import (
	"context"

	"campus-cli/internal/gateway"
	"campus-cli/internal/model"
	"campus-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Fetcher is the read side of the transport collaborator. api.Client
// implements it; tests substitute fakes.
type Fetcher interface {
	FetchCourses(ctx context.Context) ([]model.Course, error)
	FetchCourse(ctx context.Context, courseID string) (model.Course, error)
	FetchModules(ctx context.Context, courseID string) ([]model.Module, error)
}

type Deps struct {
	Client  Fetcher
	Gateway *gateway.Gateway
	Cache   store.Cache
	Role    model.Role
	Email   string
}

func Run(deps Deps) error {
	applyColorProfilePreference()
	applyThemePreference()
	m := newAppModel(deps)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
