package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-offline-keeper/internal/config"
	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/internal/service"
	"github.com/MKhiriev/go-offline-keeper/internal/tui"
	"github.com/MKhiriev/go-offline-keeper/internal/workers"
	"github.com/MKhiriev/go-offline-keeper/models"
)

type App struct {
	services *service.ClientServices
	ui       UI
	interval time.Duration
	logger   *logger.Logger
	out      io.Writer
}

func NewApp(services *service.ClientServices, ui UI, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	return &App{
		services: services,
		ui:       ui,
		interval: cfg.HeartbeatInterval,
		logger:   log,
		out:      os.Stdout,
	}, nil
}

// Run drives one offline session: login flow, heartbeat status screen, and
// the final report. It returns [ErrClockManipulation] when a heartbeat
// detected a wound back clock.
func (a *App) Run(ctx context.Context) error {
	session, err := a.ui.SessionFlow(ctx)
	if errors.Is(err, tui.ErrUserQuit) || a.interrupted(ctx, err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("login flow: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	updates := make(chan tui.HeartbeatUpdate)
	heartbeat := workers.NewHeartbeatWorker(a.services.HeartbeatJob, session.Credential, a.interval,
		func(result models.HeartbeatResult, err error) {
			select {
			case updates <- tui.HeartbeatUpdate{Result: result, Err: err}:
			case <-runCtx.Done():
			}
		})

	bg := workers.NewWorkers(heartbeat)
	bg.Run(runCtx)

	outcome, err := a.ui.StatusLoop(ctx, session, updates)

	cancel()
	bg.Stop()
	// every sender has returned
	close(updates)

	if a.interrupted(ctx, err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("status screen: %w", err)
	}

	return a.finish(ctx, session.Credential, outcome)
}

func (a *App) finish(ctx context.Context, cred models.Credential, outcome tui.StatusOutcome) error {
	if outcome.Err != nil {
		return fmt.Errorf("heartbeat: %w", outcome.Err)
	}

	if outcome.Final != nil {
		fmt.Fprintln(a.out, outcome.Final.Message)
		return a.exitReason(*outcome.Final)
	}

	fmt.Fprintln(a.out, "Stopping heartbeat...")

	final, err := a.services.SessionService.UpdateHeartbeat(ctx, cred)
	if err != nil {
		return fmt.Errorf("final heartbeat: %w", err)
	}
	if !final.Success {
		fmt.Fprintln(a.out, final.Message)
		return a.exitReason(final)
	}

	fmt.Fprintln(a.out, "\nFinal usage stats:")
	fmt.Fprintln(a.out, tui.FormatStats(final.Stats, a.services.SessionService.MaxOfflineTime()))

	return nil
}

// interrupted reports whether err comes from ctx being cancelled by a signal.
func (a *App) interrupted(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() == nil {
		return false
	}
	a.logger.Info().Err(err).Msg("client interrupted")
	return true
}

func (a *App) exitReason(result models.HeartbeatResult) error {
	a.logger.Warn().
		Str("reason", string(result.Reason)).
		Bool("fatal", result.IsFatal()).
		Msg("offline session ended")

	if result.IsFatal() {
		return ErrClockManipulation
	}
	return nil
}
