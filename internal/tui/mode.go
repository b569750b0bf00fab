package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-offline-keeper/internal/service"
	"github.com/MKhiriev/go-offline-keeper/models"
)

type loginMode int

const (
	modeOnlineThenOffline loginMode = iota
	modeOfflineOnly
)

// ModeModel lets the user choose whether to assert an online login before the
// offline session starts. Choosing a mode runs the logins and produces a
// [Session] message.
type ModeModel struct {
	ctx      context.Context
	sessions service.UsageSessionService

	cred       models.Credential
	items      []string
	idx        int
	submitting bool
	status     string
	errMsg     string
}

func NewModeModel(ctx context.Context, sessions service.UsageSessionService) *ModeModel {
	return &ModeModel{
		ctx:      ctx,
		sessions: sessions,
		items:    []string{"Online login, then offline session", "Offline session only"},
	}
}

func (m *ModeModel) Init() tea.Cmd {
	return nil
}

func (m *ModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CredentialsEntered:
		m.cred = msg.Credential
		m.status = ""
		m.errMsg = ""
		return m, nil
	case Session:
		m.submitting = false
		m.status = ""
		if msg.Online != nil {
			m.status = msg.Online.Message
		}
		switch {
		case msg.Err != nil:
			m.errMsg = humanizeError(msg.Err)
		case !msg.Offline.Success:
			m.errMsg = msg.Offline.Message
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.submitting {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.esc):
		m.errMsg = ""
		m.status = ""
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
	case key.Matches(keyMsg, keys.enter):
		m.errMsg = ""
		m.status = ""
		m.submitting = true
		return m, m.cmdStartSession(loginMode(m.idx))
	}

	return m, nil
}

func (m *ModeModel) View() string {
	var b strings.Builder

	idColWidth := lipgloss.Width("ID") + 2
	actionColWidth := lipgloss.Width("Mode")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("User: %s\n\n", m.cred.Username))
	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Mode"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	if m.submitting {
		b.WriteString("\nStarting session...\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render("OK: " + m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SESSION MODE", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ esc: back │ v: version")
}

func (m *ModeModel) cmdStartSession(mode loginMode) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	cred := m.cred

	return func() tea.Msg {
		return startSession(ctx, sessions, cred, mode)
	}
}

func startSession(ctx context.Context, sessions service.UsageSessionService, cred models.Credential, mode loginMode) Session {
	session := Session{Credential: cred}

	if mode == modeOnlineThenOffline {
		online, err := sessions.ProcessOnlineLogin(ctx, cred)
		if err != nil {
			session.Err = err
			return session
		}
		session.Online = &online
	}

	session.Offline, session.Err = sessions.ProcessOfflineLogin(ctx, cred)
	return session
}
