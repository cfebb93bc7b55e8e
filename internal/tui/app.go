package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/haruki7049/lat/internal/dictionary"
	"github.com/haruki7049/lat/internal/host"
	"github.com/haruki7049/lat/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewConsole ViewType = iota
	ViewVocabulary
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label string
	View  ViewType
}

// Options configures the app.
type Options struct {
	Handler  *host.Handler
	Dict     *dictionary.Dictionary
	Recorder views.Recorder // nil disables history
	Logger   *slog.Logger
}

// AppModel is the main TUI model
type AppModel struct {
	width        int
	height       int
	sidebarWidth int
	ready        bool

	currentView ViewType
	menuItems   []MenuItem

	consoleView    views.ConsoleModel
	vocabularyView views.VocabularyModel
}

// NewApp creates the TUI application
func NewApp(opts Options) AppModel {
	handler := opts.Handler
	if handler == nil {
		handler = host.New(nil, nil, opts.Logger)
	}

	return AppModel{
		sidebarWidth: 18,
		currentView:  ViewConsole,
		menuItems: []MenuItem{
			{Label: "Console", View: ViewConsole},
			{Label: "Vocabulary", View: ViewVocabulary},
		},
		consoleView:    views.NewConsoleModel(handler, opts.Recorder, opts.Logger),
		vocabularyView: views.NewVocabularyModel(opts.Dict),
	}
}

// Run starts the app on the alternate screen and blocks until it quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// CurrentView returns the active view.
func (m AppModel) CurrentView() ViewType {
	return m.currentView
}

// Console returns the console view model.
func (m AppModel) Console() views.ConsoleModel {
	return m.consoleView
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if m.currentView == ViewConsole {
				m.currentView = ViewVocabulary
			} else {
				m.currentView = ViewConsole
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.consoleView.SetSize(contentWidth, contentHeight)
		m.vocabularyView.SetSize(contentWidth, contentHeight)

		return m, nil
	}

	// Key presses go to the active view only; everything else reaches the
	// console so its async results land while the vocabulary is shown.
	var cmd tea.Cmd
	if _, isKey := msg.(tea.KeyMsg); isKey && m.currentView == ViewVocabulary {
		m.vocabularyView, cmd = m.vocabularyView.Update(msg)
	} else {
		m.consoleView, cmd = m.consoleView.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var content string
	switch m.currentView {
	case ViewConsole:
		content = m.consoleView.View()
	case ViewVocabulary:
		content = m.vocabularyView.View()
	}

	mainContent := contentStyle.
		Width(m.width - m.sidebarWidth - 4).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), mainContent)
}

// renderSidebar renders the view menu and the console counters.
func (m AppModel) renderSidebar() string {
	title := sidebarTitleStyle.Foreground(elementColor(m.consoleView.Last()))
	items := []string{title.Render("  LAT  "), ""}

	for _, item := range m.menuItems {
		style := sidebarItemStyle
		if item.View == m.currentView {
			style = sidebarActiveStyle
		}
		items = append(items, style.Render(item.Label))
	}

	items = append(items, "",
		sidebarStatStyle.Render(fmt.Sprintf("sandbox %d", len(m.consoleView.Sandbox()))),
		sidebarStatStyle.Render(fmt.Sprintf("resets  %d", m.consoleView.Resets())),
	)

	usedHeight := len(items) + 4
	for range m.height - usedHeight - 2 {
		items = append(items, "")
	}

	items = append(items, sidebarHelpStyle.Render("tab switch\nesc quit"))

	return sidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}
