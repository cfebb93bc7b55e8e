package banner

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out := Render("URE")
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 7)
	for _, line := range lines {
		assert.Equal(t, 21, utf8.RuneCountInString(line))
	}
	assert.True(t, strings.ContainsAny(out, "█▀▄"))
}

func TestRender_Empty(t *testing.T) {
	assert.Empty(t, Render(""))
	assert.Empty(t, RenderFit("", 10, 10))
	assert.Empty(t, RenderFit("Ure", 0, 3))
}

func TestRenderFit_Scales(t *testing.T) {
	out := RenderFit("DEFENDE", 20, 3)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 20, utf8.RuneCountInString(line))
	}
}

func TestRenderFit_Native(t *testing.T) {
	assert.Equal(t, Render("Sana"), RenderFit("Sana", 80, 10))
}

func TestCached(t *testing.T) {
	first := Cached("Feri", 80, 10)
	assert.Equal(t, first, Cached("Feri", 80, 10))
	assert.Equal(t, Render("Feri"), first)
}
