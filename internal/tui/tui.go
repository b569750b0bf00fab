// Package tui implements the terminal screens of the client: the credential
// form, the session mode choice and the live offline session status.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/internal/service"
	"github.com/MKhiriev/go-offline-keeper/models"
)

type TUI struct {
	sessions  service.UsageSessionService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{
		sessions:  services.SessionService,
		buildInfo: buildInfo,
		logger:    log,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// SessionFlow runs the login form and the mode choice until an offline
// session has started. It returns [ErrUserQuit] when the user leaves first.
func (t *TUI) SessionFlow(ctx context.Context) (Session, error) {
	pages := map[string]tea.Model{
		pageLogin: NewLoginModel(),
		pageMode:  NewModeModel(ctx, t.sessions),
	}

	root := NewRootModel(pages, pageLogin, t.buildInfo)
	finalModel, err := t.run(ctx, root)
	if err != nil {
		return Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser || result.session == nil {
		return Session{}, ErrUserQuit
	}

	t.logger.Info().
		Bool("online_login", result.session.Online != nil).
		Float64("remaining_hours", result.session.Offline.RemainingOfflineHours).
		Msg("offline session started")

	return *result.session, nil
}

// StatusLoop shows the running session fed by updates until the user quits
// or a heartbeat ends the session.
func (t *TUI) StatusLoop(ctx context.Context, session Session, updates <-chan HeartbeatUpdate) (StatusOutcome, error) {
	statusCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	finalModel, err := t.run(ctx, newStatusModel(statusCtx, t.sessions, session, updates))
	if err != nil {
		return StatusOutcome{}, err
	}

	result, ok := finalModel.(statusModel)
	if !ok {
		return StatusOutcome{}, tea.ErrProgramKilled
	}
	return result.outcome, nil
}

func (t *TUI) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	return tea.NewProgram(model, opts...).Run()
}
