package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-offline-keeper/internal/service"
	"github.com/MKhiriev/go-offline-keeper/models"
)

const recentEventsLimit = 5

// StatusOutcome tells the caller why the status screen closed.
type StatusOutcome struct {
	// QuitByUser is set when the user pressed q or ctrl+c.
	QuitByUser bool
	// Final is the failed heartbeat that ended the session.
	Final *models.HeartbeatResult
	// Err is the infrastructure error of the last heartbeat.
	Err error
}

type statusModel struct {
	ctx      context.Context
	sessions service.UsageSessionService
	cred     models.Credential
	limit    time.Duration
	updates  <-chan HeartbeatUpdate
	now      func() time.Time

	stats     *models.UsageStats
	message   string
	beats     int
	lastBeat  time.Time
	events    []models.UsageEvent
	eventsErr error

	outcome StatusOutcome
}

func newStatusModel(ctx context.Context, sessions service.UsageSessionService, session Session, updates <-chan HeartbeatUpdate) statusModel {
	return statusModel{
		ctx:      ctx,
		sessions: sessions,
		cred:     session.Credential,
		limit:    sessions.MaxOfflineTime(),
		updates:  updates,
		now:      time.Now,
		stats:    session.Offline.Stats,
		message:  session.Offline.Message,
	}
}

func (m statusModel) Init() tea.Cmd {
	return tea.Batch(waitForHeartbeat(m.ctx, m.updates), m.cmdLoadEvents())
}

func (m statusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.outcome.QuitByUser = true
			return m, tea.Quit
		}
		return m, nil

	case HeartbeatUpdate:
		m.beats++
		m.lastBeat = m.now()
		if msg.Err != nil {
			m.outcome.Err = msg.Err
			return m, tea.Quit
		}
		if !msg.Result.Success {
			result := msg.Result
			m.outcome.Final = &result
			return m, tea.Quit
		}
		m.stats = msg.Result.Stats
		m.message = msg.Result.Message
		return m, tea.Batch(waitForHeartbeat(m.ctx, m.updates), m.cmdLoadEvents())

	case heartbeatsClosedMsg:
		return m, tea.Quit

	case eventsLoadedMsg:
		m.events = msg.events
		m.eventsErr = msg.err
		return m, nil
	}

	return m, nil
}

func (m statusModel) View() string {
	var b strings.Builder

	fmt.Fprintf(&b, "User: %s\n", m.cred.Username)
	if m.beats == 0 {
		b.WriteString("Heartbeat: waiting for the first tick\n")
	} else {
		fmt.Fprintf(&b, "Heartbeat #%d at %s\n", m.beats, m.lastBeat.Format(time.TimeOnly))
	}
	if m.message != "" {
		b.WriteString(okStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(FormatStats(m.stats, m.limit))
	b.WriteString("\n\nRecent events:\n")

	switch {
	case m.eventsErr != nil:
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(humanizeError(m.eventsErr)))
		b.WriteString("\n")
	case len(m.events) == 0:
		b.WriteString("  -\n")
	default:
		for _, e := range m.events {
			b.WriteString("  ")
			b.WriteString(formatEvent(e))
			b.WriteString("\n")
		}
	}

	return renderPage("OFFLINE SESSION", strings.TrimRight(b.String(), "\n"), "q: stop heartbeat and quit")
}

func (m statusModel) cmdLoadEvents() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	cred := m.cred

	return func() tea.Msg {
		events, err := sessions.RecentEvents(ctx, cred, recentEventsLimit)
		return eventsLoadedMsg{events: events, err: err}
	}
}

// waitForHeartbeat delivers the next update. It gives up once ctx is done so
// no command outlives the status program.
func waitForHeartbeat(ctx context.Context, updates <-chan HeartbeatUpdate) tea.Cmd {
	return func() tea.Msg {
		select {
		case update, ok := <-updates:
			if !ok {
				return heartbeatsClosedMsg{}
			}
			return update
		case <-ctx.Done():
			return nil
		}
	}
}
