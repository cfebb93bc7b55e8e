// Package tui provides the interactive spell console.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/haruki7049/lat/internal/lat"
)

var (
	colorTitle  = lipgloss.Color("#c9a227")
	colorActive = lipgloss.Color("#f4f1de")
	colorMuted  = lipgloss.Color("#6c757d")
	colorPanel  = lipgloss.Color("#22223b")
	colorRule   = lipgloss.Color("#4a4e69")
)

// elementColors tints the sidebar title after the element of the last cast.
var elementColors = map[lat.Element]lipgloss.Color{
	lat.ElementIgnis:  "#e63946",
	lat.ElementAqua:   "#457b9d",
	lat.ElementVentus: "#8ecae6",
	lat.ElementTerra:  "#a98467",
	lat.ElementLumen:  "#ffd166",
	lat.ElementUmbra:  "#7b2cbf",
}

func elementColor(spell *lat.SpellDescriptor) lipgloss.Color {
	if spell == nil {
		return colorTitle
	}
	if c, ok := elementColors[spell.Element]; ok {
		return c
	}
	return colorTitle
}

var (
	sidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(colorRule).
			Padding(1, 1)

	sidebarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Background(colorPanel).
				Padding(0, 1).
				MarginBottom(1)

	sidebarItemStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 1)

	sidebarActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorActive).
				Background(colorPanel).
				Padding(0, 1)

	sidebarStatStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				PaddingLeft(1)

	sidebarHelpStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				MarginTop(1).
				Padding(0, 1)

	contentStyle = lipgloss.NewStyle().Padding(1, 2)
)
