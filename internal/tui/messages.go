package tui

import (
	"github.com/MKhiriev/go-offline-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageLogin = "login"
	pageMode  = "mode"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// CredentialsEntered carries the submitted login form to the mode page.
type CredentialsEntered struct {
	Credential models.Credential
}

// Session is the outcome of the login flow. Online is set only when the
// user asked for an online login first.
type Session struct {
	Credential models.Credential
	Online     *models.LoginResult
	Offline    models.LoginResult
	Err        error
}

// HeartbeatUpdate is one heartbeat outcome delivered to the status screen.
type HeartbeatUpdate struct {
	Result models.HeartbeatResult
	Err    error
}

type eventsLoadedMsg struct {
	events []models.UsageEvent
	err    error
}

// heartbeatsClosedMsg is sent when the update channel is closed.
type heartbeatsClosedMsg struct{}
