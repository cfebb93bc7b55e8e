package views

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/haruki7049/lat/internal/clipboard"
	"github.com/haruki7049/lat/internal/describe"
	"github.com/haruki7049/lat/internal/history"
	"github.com/haruki7049/lat/internal/host"
	"github.com/haruki7049/lat/internal/lat"
	"github.com/haruki7049/lat/internal/tui/banner"
	"github.com/mattn/go-runewidth"
)

// maxSandbox bounds how many casts the sandbox keeps.
const maxSandbox = 50

// Recorder stores casts. *history.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, c history.Cast) error
}

// Message types
type castRecordedMsg struct {
	err error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// ConsoleModel is the spell console view model.
type ConsoleModel struct {
	input    textinput.Model
	handler  *host.Handler
	narrator *describe.Narrator
	recorder Recorder
	copy     func(string) error
	logger   *slog.Logger

	// Casts since the last reset, oldest first
	sandbox []*lat.SpellDescriptor
	last    *lat.SpellDescriptor
	resets  int

	// Last failure and the input that caused it
	err    *host.ErrorPayload
	failed string

	notice     string
	copied     bool
	historyErr error

	width  int
	height int
}

// NewConsoleModel creates a console. recorder may be nil to disable history.
func NewConsoleModel(handler *host.Handler, recorder Recorder, logger *slog.Logger) ConsoleModel {
	ti := textinput.New()
	ti.Placeholder = "Ure Ignis Magnus ad Hostem..."
	ti.Prompt = "✦ "
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60
	ti.PromptStyle = promptStyle
	ti.TextStyle = inputStyle

	if logger == nil {
		logger = slog.Default()
	}

	return ConsoleModel{
		input:    ti,
		handler:  handler,
		narrator: describe.NewNarrator(nil),
		recorder: recorder,
		copy:     clipboard.Write,
		logger:   logger,
	}
}

// SetSize updates the view dimensions.
func (m *ConsoleModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-4, 10)
}

// SetClipboard replaces the clipboard writer.
func (m *ConsoleModel) SetClipboard(fn func(string) error) {
	m.copy = fn
}

// Sandbox returns the casts since the last reset.
func (m ConsoleModel) Sandbox() []*lat.SpellDescriptor {
	return m.sandbox
}

// Last returns the most recent successful cast.
func (m ConsoleModel) Last() *lat.SpellDescriptor {
	return m.last
}

// Err returns the last parse failure, if the most recent submission failed.
func (m ConsoleModel) Err() *host.ErrorPayload {
	return m.err
}

// Resets returns how many times the sandbox has been cleared.
func (m ConsoleModel) Resets() int {
	return m.resets
}

// Update handles messages.
func (m ConsoleModel) Update(msg tea.Msg) (ConsoleModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.submit()
		case "ctrl+y":
			return m.copyLast()
		}

	case castRecordedMsg:
		m.historyErr = msg.err
		if msg.err != nil {
			m.logger.Warn("recording cast", "error", msg.err)
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ConsoleModel) submit() (ConsoleModel, tea.Cmd) {
	text := m.input.Value()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	resp := m.handler.Handle(host.Request{Text: text})
	m.err = nil
	m.failed = ""
	m.notice = ""

	switch {
	case resp.Error != nil:
		m.err = resp.Error
		m.failed = text

	case resp.Resetting:
		m.sandbox = nil
		m.resets++
		if resp.Spell != nil {
			m.last = resp.Spell
		}
		m.notice = "Sandbox cleared"
		m.input.Reset()
		m.logger.Info("sandbox reset", "text", text)

	default:
		m.last = resp.Spell
		m.sandbox = append(m.sandbox, resp.Spell)
		if len(m.sandbox) > maxSandbox {
			m.sandbox = m.sandbox[len(m.sandbox)-maxSandbox:]
		}
		m.input.Reset()
	}

	return m, m.record(history.NewCast(text, resp))
}

func (m ConsoleModel) record(c history.Cast) tea.Cmd {
	if m.recorder == nil {
		return nil
	}
	rec := m.recorder
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return castRecordedMsg{err: rec.Record(ctx, c)}
	}
}

func (m ConsoleModel) copyLast() (ConsoleModel, tea.Cmd) {
	if m.last == nil {
		m.notice = "Nothing to copy yet"
		return m, nil
	}
	if err := m.copy(describe.Canonical(m.last)); err != nil {
		m.notice = fmt.Sprintf("Copy failed: %v", err)
		return m, nil
	}
	m.copied = true
	return m, clearCopiedAfter(2 * time.Second)
}

// View renders the console.
func (m ConsoleModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderBanner())
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(m.renderError())
		b.WriteString("\n")
	case m.last != nil:
		b.WriteString("\n")
		b.WriteString(m.renderSpell(m.last))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSandbox())
	b.WriteString("\n")

	if m.historyErr != nil {
		b.WriteString(errorStyle.Render("history: " + m.historyErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := []string{"enter: cast"}
	if m.last != nil {
		if m.copied {
			help = append(help, "copied!")
		} else {
			help = append(help, "ctrl+y: copy")
		}
	}
	help = append(help, "tab: vocabulary", "esc: quit")
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return b.String()
}

func (m ConsoleModel) renderBanner() string {
	word := "LAT"
	if m.last != nil {
		word = strings.ToUpper(m.narrator.BuildSpellData(m.last).Action.Spelling)
	}
	cols := m.width
	if cols <= 0 {
		cols = 80
	}
	return bannerStyle.Render(banner.Cached(word, cols, 7))
}

func (m ConsoleModel) renderSpell(spell *lat.SpellDescriptor) string {
	data := m.narrator.BuildSpellData(spell)

	words := []string{
		actionStyle.Render(data.Action.Variant),
		elementStyle.Render(data.Element.Variant),
		modifierStyle.Render(data.Modifier.Variant),
	}
	if data.Target != nil {
		words = append(words, extensionStyle.Render(data.To+" "+data.Target.Variant))
	}
	if data.Origin != nil {
		words = append(words, extensionStyle.Render(data.From+" "+data.Origin.Variant))
	}
	for _, e := range data.Emphasis {
		words = append(words, extensionStyle.Render(e.Variant))
	}

	gloss, err := m.narrator.Narrate(spell)
	if err != nil {
		gloss = spell.Core()
	}

	return boxStyle.Render(strings.Join(words, " ") + "\n" + glossStyle.Render(gloss))
}

func (m ConsoleModel) renderError() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(m.err.Kind))
	b.WriteString(errorStyle.Render(m.err.Message))

	if src, caret := caretLine(m.failed, m.err.Line, m.err.Column, m.err.Word); caret != "" {
		b.WriteString("\n\n  ")
		b.WriteString(valueStyle.Render(src))
		b.WriteString("\n  ")
		b.WriteString(caretStyle.Render(caret))
	}

	return b.String()
}

// caretLine returns the source line at line and a caret marking column.
// The caret spans word when it is set. Columns count runes from 1.
func caretLine(text string, line, column int, word string) (string, string) {
	lines := strings.Split(text, "\n")
	if line < 1 || line > len(lines) || column < 1 {
		return "", ""
	}

	src := strings.TrimRight(lines[line-1], "\r")
	runes := []rune(src)
	col := min(column-1, len(runes))
	pad := runewidth.StringWidth(string(runes[:col]))

	width := max(runewidth.StringWidth(word), 1)
	return src, strings.Repeat(" ", pad) + strings.Repeat("^", width)
}

func (m ConsoleModel) renderSandbox() string {
	title := headerStyle.Render(fmt.Sprintf("Sandbox (%d)", len(m.sandbox)))
	if m.resets > 0 {
		title += helpStyle.Render(fmt.Sprintf("  resets: %d", m.resets))
	}
	if len(m.sandbox) == 0 {
		return title + "\n" + helpStyle.Render("  empty")
	}

	visible := m.sandbox
	if limit := m.height - 22; limit > 0 && len(visible) > limit {
		visible = visible[len(visible)-limit:]
	}

	var rows []string
	offset := len(m.sandbox) - len(visible)
	for i, spell := range visible {
		rows = append(rows, fmt.Sprintf("  %2d  %s", offset+i+1, valueStyle.Render(describe.Canonical(spell))))
	}
	return title + "\n" + strings.Join(rows, "\n")
}
