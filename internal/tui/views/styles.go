// Package views provides the individual views for the spell console.
package views

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	colorPrimary   = lipgloss.Color("#FF6B6B") // Red - errors, action words
	colorSecondary = lipgloss.Color("#4ecdc4") // Teal - prompts, elements
	colorAccent    = lipgloss.Color("#ffe66d") // Yellow - banner, modifiers
	colorMuted     = lipgloss.Color("#666666") // Gray - help text
	colorSuccess   = lipgloss.Color("#a8e6cf") // Green - resets, copied
	colorText      = lipgloss.Color("#f1faee")
	colorLabel     = lipgloss.Color("#a8dadc")
	colorBgAlt     = lipgloss.Color("#2d3436")
	colorBorder    = lipgloss.Color("#3d5a80")
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	promptStyle = lipgloss.NewStyle().Foreground(colorSecondary)
	inputStyle  = lipgloss.NewStyle().Foreground(colorAccent)

	actionStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	elementStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	modifierStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	extensionStyle = lipgloss.NewStyle().Foreground(colorLabel)

	glossStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Bold(true).
			Width(10)

	valueStyle = lipgloss.NewStyle().Foreground(colorText)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	caretStyle = lipgloss.NewStyle().Foreground(colorPrimary)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorLabel)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Background(colorBgAlt)

	tabStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Background(colorBgAlt).
			Padding(0, 1)
)
