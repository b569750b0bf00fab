package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-offline-keeper/models"
)

// RootModel routes messages between the login and mode pages. It owns the
// global keys (ctrl+c, the build info toggle) and ends the program once an
// offline session has started.
type RootModel struct {
	pages   map[string]tea.Model
	page    string
	current tea.Model

	quitByUser bool
	session    *Session
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		page:      startPage,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleGlobalKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case Session:
		if msg.Err == nil && msg.Offline.Success {
			r.session = &msg
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleGlobalKey consumes keys that do not belong to the active page. While
// the build info window is open every other key is swallowed.
func (r *RootModel) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		r.quitByUser = true
		return true, tea.Quit
	case key.Matches(msg, keys.info) && r.isModePage():
		r.showBuildInfo = !r.showBuildInfo
		return true, nil
	case key.Matches(msg, keys.esc) && r.showBuildInfo:
		r.showBuildInfo = false
		return true, nil
	}
	return r.showBuildInfo, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}

	r.page, r.current = nav.Page, next
	r.showBuildInfo = false

	if nav.Payload == nil {
		return r, r.current.Init()
	}
	payload := nav.Payload
	return r, func() tea.Msg { return payload }
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage("OFFLINE KEEPER", "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) isModePage() bool {
	return r.page == pageMode
}
