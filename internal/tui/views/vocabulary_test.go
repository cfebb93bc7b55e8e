package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/haruki7049/lat/internal/dictionary"
	"github.com/haruki7049/lat/internal/lat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestVocabularyRows(t *testing.T) {
	rows := VocabularyRows([]dictionary.Entry{
		{Word: "ure", Category: lat.CategoryAction, Variant: "Ure"},
		{Word: "hostem", Category: lat.CategoryTarget, Variant: "Hostis"},
	})

	require.Len(t, rows, 3)
	assert.Equal(t, "WORD    CATEGORY  VARIANT  GLOSS", rows[0])
	assert.Equal(t, "ure     Action    Ure      Burn", rows[1])
	assert.Equal(t, "hostem  Target    Hostis   the enemy", rows[2])
}

func TestVocabulary_Filter(t *testing.T) {
	m := NewVocabularyModel(nil)
	assert.Len(t, m.Entries(), len(dictionary.Default().Words()))

	_, ok := m.Filter()
	assert.False(t, ok)

	m, _ = m.Update(key("l"))
	c, ok := m.Filter()
	require.True(t, ok)
	assert.Equal(t, lat.CategoryAction, c)
	assert.Len(t, m.Entries(), 4)

	m, _ = m.Update(key("h"))
	m, _ = m.Update(key("h"))
	c, ok = m.Filter()
	require.True(t, ok)
	assert.Equal(t, lat.CategoryPreposition, c)
	assert.Contains(t, m.View(), "ToTarget")
}

func TestVocabulary_Cursor(t *testing.T) {
	m := NewVocabularyModel(nil)
	m.SetSize(80, 10)

	m, _ = m.Update(key("k"))
	e, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, m.Entries()[0], e)

	m, _ = m.Update(key("G"))
	e, _ = m.Selected()
	assert.Equal(t, m.Entries()[len(m.Entries())-1], e)
	assert.Equal(t, len(m.Entries())-m.pageSize(), m.offset)

	view := m.View()
	assert.Contains(t, view, e.Word)
	assert.Equal(t, m.pageSize(), strings.Count(view, "\n")-4)

	m, _ = m.Update(key("g"))
	assert.Equal(t, 0, m.offset)
}
