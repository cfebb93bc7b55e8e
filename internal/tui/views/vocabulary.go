package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/haruki7049/lat/internal/dictionary"
	"github.com/haruki7049/lat/internal/lat"
	"github.com/mattn/go-runewidth"
)

// VocabularyHeader names the table columns.
var VocabularyHeader = []string{"WORD", "CATEGORY", "VARIANT", "GLOSS"}

// VocabularyRows formats entries as aligned table rows, header first.
func VocabularyRows(entries []dictionary.Entry) []string {
	cells := [][]string{VocabularyHeader}
	for _, e := range entries {
		cells = append(cells, []string{e.Word, e.Category.String(), e.Variant, e.Gloss()})
	}

	widths := make([]int, len(VocabularyHeader))
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	rows := make([]string, len(cells))
	for r, row := range cells {
		var b strings.Builder
		for i, c := range row {
			if i == len(row)-1 {
				b.WriteString(c)
				break
			}
			b.WriteString(runewidth.FillRight(c, widths[i]))
			b.WriteString("  ")
		}
		rows[r] = b.String()
	}
	return rows
}

// VocabularyModel lists the dictionary.
type VocabularyModel struct {
	dict *dictionary.Dictionary

	// Index into lat.Categories, or -1 for every category
	filter  int
	entries []dictionary.Entry
	rows    []string

	cursor int
	offset int

	width  int
	height int
}

// NewVocabularyModel creates a vocabulary view over dict.
func NewVocabularyModel(dict *dictionary.Dictionary) VocabularyModel {
	if dict == nil {
		dict = dictionary.Default()
	}
	m := VocabularyModel{dict: dict, filter: -1}
	m.applyFilter()
	return m
}

// SetSize updates the view dimensions.
func (m *VocabularyModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampOffset()
}

// Filter returns the selected category, or false when every category is shown.
func (m VocabularyModel) Filter() (lat.Category, bool) {
	if m.filter < 0 {
		return 0, false
	}
	return lat.Categories[m.filter], true
}

// Entries returns the entries shown under the current filter.
func (m VocabularyModel) Entries() []dictionary.Entry {
	return m.entries
}

// Selected returns the entry under the cursor.
func (m VocabularyModel) Selected() (dictionary.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return dictionary.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// Update handles messages.
func (m VocabularyModel) Update(msg tea.Msg) (VocabularyModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = max(len(m.entries)-1, 0)
	case "right", "l":
		m.filter++
		if m.filter >= len(lat.Categories) {
			m.filter = -1
		}
		m.applyFilter()
	case "left", "h":
		m.filter--
		if m.filter < -1 {
			m.filter = len(lat.Categories) - 1
		}
		m.applyFilter()
	}

	m.clampOffset()
	return m, nil
}

func (m *VocabularyModel) applyFilter() {
	if c, ok := m.Filter(); ok {
		m.entries = m.dict.WordsIn(c)
	} else {
		m.entries = m.dict.Words()
	}
	m.rows = VocabularyRows(m.entries)
	m.cursor = 0
	m.offset = 0
}

// pageSize is the number of body rows that fit.
func (m VocabularyModel) pageSize() int {
	if m.height <= 0 {
		return len(m.entries)
	}
	return max(m.height-6, 1)
}

func (m *VocabularyModel) clampOffset() {
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
}

// View renders the vocabulary table.
func (m VocabularyModel) View() string {
	var b strings.Builder

	tabs := []string{m.tab("All", m.filter == -1)}
	for i, c := range lat.Categories {
		tabs = append(tabs, m.tab(c.String(), m.filter == i))
	}
	b.WriteString(strings.Join(tabs, ""))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(m.rows[0]))
	b.WriteString("\n")

	end := min(m.offset+m.pageSize(), len(m.entries))
	for i := m.offset; i < end; i++ {
		row := m.rows[i+1]
		if i == m.cursor {
			b.WriteString(selectedStyle.Render(row))
		} else {
			b.WriteString(valueStyle.Render(row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d words • ←/→: category • j/k: move • tab: console • esc: quit", len(m.entries))))

	return b.String()
}

func (m VocabularyModel) tab(label string, active bool) string {
	if active {
		return tabActiveStyle.Render(label)
	}
	return tabStyle.Render(label)
}
