package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/haruki7049/lat/internal/lat"
	"github.com/haruki7049/lat/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app, cmd
}

func TestApp_SwitchViews(t *testing.T) {
	m := NewApp(Options{Logger: logging.Discard()})
	assert.Equal(t, ViewConsole, m.CurrentView())
	assert.Equal(t, "Loading...", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Contains(t, m.View(), "Sandbox (0)")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewVocabulary, m.CurrentView())
	assert.Contains(t, m.View(), "CATEGORY")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, ViewConsole, m.CurrentView())
}

func TestApp_TypingReachesConsole(t *testing.T) {
	m := NewApp(Options{Logger: logging.Discard()})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	for _, r := range "Ure Ignis Magnus" {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, m.Console().Sandbox(), 1)
	assert.Equal(t, "Ure Ignis Magnus", m.Console().Last().SourceText)
	assert.Contains(t, m.View(), "sandbox 1")
}

func TestElementColor(t *testing.T) {
	assert.Equal(t, colorTitle, elementColor(nil))
	assert.Equal(t, elementColors[lat.ElementAqua], elementColor(&lat.SpellDescriptor{Element: lat.ElementAqua}))
	for _, e := range lat.Elements {
		assert.Contains(t, elementColors, e)
	}
}

func TestApp_Quit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := NewApp(Options{Logger: logging.Discard()})
		_, cmd := update(t, m, tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}
