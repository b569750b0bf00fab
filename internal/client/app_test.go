package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-offline-keeper/internal/config"
	"github.com/MKhiriev/go-offline-keeper/internal/logger"
	"github.com/MKhiriev/go-offline-keeper/internal/mock"
	"github.com/MKhiriev/go-offline-keeper/internal/service"
	"github.com/MKhiriev/go-offline-keeper/internal/tui"
	"github.com/MKhiriev/go-offline-keeper/models"
)

// fakeUI replays canned outcomes and forwards the first heartbeat update it
// is asked to wait for.
type fakeUI struct {
	session    tui.Session
	sessionErr error

	waitUpdate bool
	outcome    tui.StatusOutcome
	statusErr  error

	got     []tui.HeartbeatUpdate
	updates <-chan tui.HeartbeatUpdate
}

func (f *fakeUI) SessionFlow(context.Context) (tui.Session, error) {
	return f.session, f.sessionErr
}

func (f *fakeUI) StatusLoop(_ context.Context, _ tui.Session, updates <-chan tui.HeartbeatUpdate) (tui.StatusOutcome, error) {
	f.updates = updates
	if f.waitUpdate {
		u := <-updates
		f.got = append(f.got, u)
		if !u.Result.Success {
			result := u.Result
			return tui.StatusOutcome{Final: &result}, nil
		}
	}
	return f.outcome, f.statusErr
}

type appFixture struct {
	app      *App
	ui       *fakeUI
	sessions *mock.MockUsageSessionService
	out      *bytes.Buffer
}

func newAppFixture(t *testing.T, ui *fakeUI) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockUsageSessionService(ctrl)
	sessions.EXPECT().MaxOfflineTime().Return(time.Hour).AnyTimes()

	services := &service.ClientServices{
		SessionService: sessions,
		HeartbeatJob:   service.NewClientHeartbeatJob(sessions),
	}

	app, err := NewApp(services, ui, config.ClientWorkers{HeartbeatInterval: 5 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app.out = out
	return &appFixture{app: app, ui: ui, sessions: sessions, out: out}
}

func startedSession() tui.Session {
	return tui.Session{
		Credential: models.NewCredential("alice", "pw"),
		Offline:    models.LoginResult{Success: true},
	}
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_UserQuitBeforeSession(t *testing.T) {
	f := newAppFixture(t, &fakeUI{sessionErr: tui.ErrUserQuit})

	assert.NoError(t, f.app.Run(context.Background()))
}

func TestApp_LoginFlowError(t *testing.T) {
	boom := errors.New("no tty")
	f := newAppFixture(t, &fakeUI{sessionErr: boom})

	err := f.app.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestApp_InterruptedDuringLogin(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := newAppFixture(t, &fakeUI{sessionErr: context.Canceled})

	assert.NoError(t, f.app.Run(ctx))
}

func TestApp_UserQuitRunsFinalHeartbeat(t *testing.T) {
	ui := &fakeUI{session: startedSession(), outcome: tui.StatusOutcome{QuitByUser: true}}
	f := newAppFixture(t, ui)

	stats := models.UsageStats{TotalOfflineHours: 0.25, RemainingOfflineHours: 0.75}
	f.sessions.EXPECT().UpdateHeartbeat(gomock.Any(), ui.session.Credential).
		Return(models.HeartbeatResult{Success: true, Stats: &stats}, nil).
		MinTimes(1)

	require.NoError(t, f.app.Run(context.Background()))
	assert.Contains(t, f.out.String(), "Stopping heartbeat...")
	assert.Contains(t, f.out.String(), "Final usage stats:")
	assert.Contains(t, f.out.String(), "Remaining: 0.7500 hours")
}

func TestApp_ClosesUpdatesAfterStatusLoop(t *testing.T) {
	ui := &fakeUI{session: startedSession(), outcome: tui.StatusOutcome{QuitByUser: true}}
	f := newAppFixture(t, ui)
	f.sessions.EXPECT().UpdateHeartbeat(gomock.Any(), ui.session.Credential).
		Return(models.HeartbeatResult{Success: true, Stats: &models.UsageStats{}}, nil).
		AnyTimes()

	require.NoError(t, f.app.Run(context.Background()))

	require.NotNil(t, ui.updates)
	_, open := <-ui.updates
	assert.False(t, open)
}

func TestApp_FinalHeartbeatDetectsManipulation(t *testing.T) {
	ui := &fakeUI{session: startedSession(), outcome: tui.StatusOutcome{QuitByUser: true}}
	f := newAppFixture(t, ui)

	f.sessions.EXPECT().UpdateHeartbeat(gomock.Any(), gomock.Any()).
		Return(models.HeartbeatResult{
			Reason:                    models.ReasonClockManipulationDetected,
			ClockManipulationDetected: true,
			Message:                   "Clock manipulation detected during offline session. Application will now exit.",
		}, nil).
		MinTimes(1)

	err := f.app.Run(context.Background())
	assert.ErrorIs(t, err, ErrClockManipulation)
	assert.Contains(t, f.out.String(), "Clock manipulation detected")
}

func TestApp_WorkerHeartbeatEndsSession(t *testing.T) {
	tests := []struct {
		name    string
		result  models.HeartbeatResult
		wantErr error
	}{
		{
			name: "limit exceeded exits cleanly",
			result: models.HeartbeatResult{
				Reason:  models.ReasonOfflineLimitExceeded,
				Message: "Offline usage limit exceeded (1.0 hours used). Please connect to the internet to continue.",
			},
		},
		{
			name: "clock manipulation is fatal",
			result: models.HeartbeatResult{
				Reason:                    models.ReasonClockManipulationDetected,
				ClockManipulationDetected: true,
				Message:                   "Clock manipulation detected during offline session. Application will now exit.",
			},
			wantErr: ErrClockManipulation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{session: startedSession(), waitUpdate: true}
			f := newAppFixture(t, ui)
			f.sessions.EXPECT().UpdateHeartbeat(gomock.Any(), gomock.Any()).Return(tt.result, nil).MinTimes(1)

			err := f.app.Run(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.Len(t, ui.got, 1)
			assert.Contains(t, f.out.String(), tt.result.Message)
		})
	}
}

func TestApp_HeartbeatInfraError(t *testing.T) {
	boom := errors.New("disk gone")
	ui := &fakeUI{session: startedSession(), outcome: tui.StatusOutcome{Err: boom}}
	f := newAppFixture(t, ui)
	f.sessions.EXPECT().UpdateHeartbeat(gomock.Any(), gomock.Any()).Return(models.HeartbeatResult{Success: true}, nil).AnyTimes()

	err := f.app.Run(context.Background())
	assert.ErrorIs(t, err, boom)
}
