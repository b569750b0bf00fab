package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-offline-keeper/internal/mock"
	"github.com/MKhiriev/go-offline-keeper/internal/store"
	"github.com/MKhiriev/go-offline-keeper/models"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var keyEnter = tea.KeyMsg{Type: tea.KeyEnter}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// ── LoginModel ───────────────────────────────────────────────────────────────

func TestLoginModel_RequiresBothFields(t *testing.T) {
	m := NewLoginModel()
	m.inputs[0].SetValue("alice")
	m.focusNext()

	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, "Username and password are required", m.errMsg)
	assert.Contains(t, m.View(), "Username and password are required")
}

func TestLoginModel_EnterOnUsernameMovesFocus(t *testing.T) {
	m := NewLoginModel()
	m.inputs[0].SetValue("alice")

	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.focus)
}

func TestLoginModel_SubmitNavigatesToMode(t *testing.T) {
	m := NewLoginModel()
	m.inputs[0].SetValue("  Alice ")
	m.inputs[1].SetValue("s3cret")
	m.focusNext()

	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageMode, nav.Page)
	assert.Equal(t, CredentialsEntered{Credential: models.NewCredential("Alice", "s3cret")}, nav.Payload)
}

func TestLoginModel_TabCycles(t *testing.T) {
	m := NewLoginModel()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, m.focus)
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 1, m.focus)
}

// ── ModeModel ────────────────────────────────────────────────────────────────

func TestModeModel_OnlineThenOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockUsageSessionService(ctrl)
	cred := models.NewCredential("alice", "pw")

	gomock.InOrder(
		sessions.EXPECT().ProcessOnlineLogin(gomock.Any(), cred).
			Return(models.LoginResult{Success: true, Message: "online ok"}, nil),
		sessions.EXPECT().ProcessOfflineLogin(gomock.Any(), cred).
			Return(models.LoginResult{Success: true, Message: "offline ok"}, nil),
	)

	m := NewModeModel(context.Background(), sessions)
	m.Update(CredentialsEntered{Credential: cred})

	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	session, ok := cmd().(Session)
	require.True(t, ok)
	require.NotNil(t, session.Online)
	assert.Equal(t, "online ok", session.Online.Message)
	assert.True(t, session.Offline.Success)
	assert.Equal(t, cred, session.Credential)
}

func TestModeModel_OfflineOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockUsageSessionService(ctrl)
	cred := models.NewCredential("alice", "pw")

	sessions.EXPECT().ProcessOfflineLogin(gomock.Any(), cred).
		Return(models.LoginResult{Reason: models.ReasonNoPriorOnlineLogin, Message: "First login must be online."}, nil)

	m := NewModeModel(context.Background(), sessions)
	m.Update(CredentialsEntered{Credential: cred})
	m.Update(keyRunes("j"))

	_, cmd := m.Update(keyEnter)
	session := cmd().(Session)
	assert.Nil(t, session.Online)

	// the refused session comes back to the page
	m.Update(session)
	assert.False(t, m.submitting)
	assert.Equal(t, "First login must be online.", m.errMsg)
	assert.Contains(t, m.View(), "First login must be online.")
}

func TestModeModel_OnlineFailureSkipsOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockUsageSessionService(ctrl)

	sessions.EXPECT().ProcessOnlineLogin(gomock.Any(), gomock.Any()).
		Return(models.LoginResult{}, store.ErrStoreBusy)

	session := startSession(context.Background(), sessions, models.NewCredential("a", "b"), modeOnlineThenOffline)

	assert.ErrorIs(t, session.Err, store.ErrStoreBusy)
	assert.Equal(t, "Usage record is in use by another instance", humanizeError(session.Err))
}

func TestModeModel_IgnoresKeysWhileSubmitting(t *testing.T) {
	m := NewModeModel(context.Background(), nil)
	m.submitting = true

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
}

// ── RootModel ────────────────────────────────────────────────────────────────

func newTestRoot() RootModel {
	pages := map[string]tea.Model{
		pageLogin: NewLoginModel(),
		pageMode:  NewModeModel(context.Background(), nil),
	}
	return NewRootModel(pages, pageLogin, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"))
}

func TestRootModel_NavigateDeliversPayload(t *testing.T) {
	root := newTestRoot()
	cred := models.NewCredential("alice", "pw")

	updated, cmd := root.Update(NavigateTo{Page: pageMode, Payload: CredentialsEntered{Credential: cred}})
	root = updated.(RootModel)
	require.True(t, root.isModePage())

	updated, _ = root.Update(cmd())
	root = updated.(RootModel)
	assert.Equal(t, cred, root.current.(*ModeModel).cred)
}

func TestRootModel_UnknownPageIsIgnored(t *testing.T) {
	root := newTestRoot()

	updated, cmd := root.Update(NavigateTo{Page: "nope"})

	assert.Nil(t, cmd)
	assert.False(t, updated.(RootModel).isModePage())
}

func TestRootModel_SuccessfulSessionQuits(t *testing.T) {
	root := newTestRoot()
	session := Session{
		Credential: models.NewCredential("alice", "pw"),
		Offline:    models.LoginResult{Success: true},
	}

	updated, cmd := root.Update(session)

	assert.True(t, isQuit(cmd))
	require.NotNil(t, updated.(RootModel).session)
}

func TestRootModel_FailedSessionStays(t *testing.T) {
	root := newTestRoot()
	updated, _ := root.Update(NavigateTo{Page: pageMode})
	root = updated.(RootModel)

	updated, cmd := root.Update(Session{Offline: models.LoginResult{Reason: models.ReasonDataTampered, Message: "tampered"}})

	assert.False(t, isQuit(cmd))
	assert.Nil(t, updated.(RootModel).session)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	updated, cmd := newTestRoot().Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, isQuit(cmd))
	assert.True(t, updated.(RootModel).quitByUser)
}

func TestRootModel_BuildInfoOnModePage(t *testing.T) {
	root := newTestRoot()

	// "v" on the login page is plain input
	updated, _ := root.Update(keyRunes("v"))
	assert.False(t, updated.(RootModel).showBuildInfo)

	updated, _ = root.Update(NavigateTo{Page: pageMode})
	updated, _ = updated.(RootModel).Update(keyRunes("v"))
	root = updated.(RootModel)
	require.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "1.2.3")
	assert.Contains(t, root.View(), "abc123")

	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, updated.(RootModel).showBuildInfo)
}

// ── statusModel ──────────────────────────────────────────────────────────────

func newTestStatus(t *testing.T, updates chan HeartbeatUpdate) (statusModel, *mock.MockUsageSessionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockUsageSessionService(ctrl)
	sessions.EXPECT().MaxOfflineTime().Return(time.Hour).AnyTimes()

	stats := models.UsageStats{RemainingOfflineHours: 1}
	m := newStatusModel(context.Background(), sessions, Session{
		Credential: models.NewCredential("alice", "pw"),
		Offline:    models.LoginResult{Success: true, Message: "Offline login successful. 1.0 hours remaining.", Stats: &stats},
	}, updates)
	m.now = func() time.Time { return time.Date(2026, 10, 1, 12, 30, 0, 0, time.UTC) }
	return m, sessions
}

func TestStatusModel_SuccessfulHeartbeat(t *testing.T) {
	updates := make(chan HeartbeatUpdate, 1)
	m, sessions := newTestStatus(t, updates)

	stats := models.UsageStats{TotalOfflineHours: 0.25, RemainingOfflineHours: 0.75, CurrentSessionDuration: 15 * time.Minute}
	updated, cmd := m.Update(HeartbeatUpdate{Result: models.HeartbeatResult{Success: true, Message: "Heartbeat updated successfully.", Stats: &stats}})
	m = updated.(statusModel)

	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.beats)
	assert.Equal(t, &stats, m.stats)
	assert.False(t, m.outcome.QuitByUser)

	sessions.EXPECT().RecentEvents(gomock.Any(), gomock.Any(), uint64(recentEventsLimit)).
		Return([]models.UsageEvent{{Operation: models.OperationHeartbeat, Success: true}}, nil)
	events := m.cmdLoadEvents()().(eventsLoadedMsg)
	updated, _ = m.Update(events)
	m = updated.(statusModel)

	view := m.View()
	assert.Contains(t, view, "Heartbeat #1 at 12:30:00")
	assert.Contains(t, view, "Remaining: 0.7500 hours")
	assert.Contains(t, view, "heartbeat")
}

func TestStatusModel_FailedHeartbeatEndsSession(t *testing.T) {
	m, _ := newTestStatus(t, nil)

	result := models.HeartbeatResult{Reason: models.ReasonClockManipulationDetected, ClockManipulationDetected: true}
	updated, cmd := m.Update(HeartbeatUpdate{Result: result})

	assert.True(t, isQuit(cmd))
	outcome := updated.(statusModel).outcome
	require.NotNil(t, outcome.Final)
	assert.True(t, outcome.Final.IsFatal())
}

func TestStatusModel_HeartbeatErrorEndsSession(t *testing.T) {
	m, _ := newTestStatus(t, nil)
	boom := errors.New("disk gone")

	updated, cmd := m.Update(HeartbeatUpdate{Err: boom})

	assert.True(t, isQuit(cmd))
	assert.ErrorIs(t, updated.(statusModel).outcome.Err, boom)
}

func TestStatusModel_QuitKey(t *testing.T) {
	m, _ := newTestStatus(t, nil)

	updated, cmd := m.Update(keyRunes("q"))

	assert.True(t, isQuit(cmd))
	assert.True(t, updated.(statusModel).outcome.QuitByUser)
}

func TestStatusModel_WaitForHeartbeat(t *testing.T) {
	updates := make(chan HeartbeatUpdate, 1)
	updates <- HeartbeatUpdate{Result: models.HeartbeatResult{Success: true}}

	ctx := context.Background()
	msg := waitForHeartbeat(ctx, updates)()
	assert.IsType(t, HeartbeatUpdate{}, msg)

	close(updates)
	assert.IsType(t, heartbeatsClosedMsg{}, waitForHeartbeat(ctx, updates)())
}

// После закрытия экрана команда не должна висеть на пустом канале.
func TestStatusModel_WaitForHeartbeatReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan tea.Msg, 1)

	go func() { done <- waitForHeartbeat(ctx, make(chan HeartbeatUpdate))() }()
	cancel()

	select {
	case msg := <-done:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("waitForHeartbeat did not return after cancel")
	}
}

func TestStatusModel_InitialView(t *testing.T) {
	m, _ := newTestStatus(t, nil)

	view := m.View()
	assert.Contains(t, view, "waiting for the first tick")
	assert.Contains(t, view, "Offline login successful")
	assert.True(t, strings.Contains(view, "Recent events:"))
}
