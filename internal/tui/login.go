// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-offline-keeper/internal/validators"
	"github.com/MKhiriev/go-offline-keeper/models"
)

// LoginModel is the Bubble Tea model for the credential form. It renders two
// text inputs (username and masked password). On submission it navigates to
// the mode page carrying a [CredentialsEntered] payload; nothing touches the
// disk until a mode is chosen.
type LoginModel struct {
	inputs    []textinput.Model
	focus     int
	errMsg    string
	validator validators.Validator
}

// NewLoginModel creates a [LoginModel] with the username input focused.
func NewLoginModel() *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		inputs:    []textinput.Model{usernameInput, passwordInput},
		validator: validators.NewUsageValidator(),
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled keys:
//   - tab / shift+tab: move focus between inputs;
//   - enter: on the username field moves to the password, on the password
//     field validates both and submits.
//
// All other key events are forwarded to the focused input widget.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.focus == 0 {
				m.focusNext()
				return m, nil
			}

			cred := models.NewCredential(strings.TrimSpace(m.inputs[0].Value()), m.inputs[1].Value())
			// the session service accepts any credential; the form does not
			if err := m.validator.Validate(context.Background(), cred); err != nil {
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			return m, func() tea.Msg {
				return NavigateTo{Page: pageMode, Payload: CredentialsEntered{Credential: cred}}
			}
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("LOGIN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: confirm")
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
