// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     explorer
// Description: Styles for the token explorer TUI
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/combilex/internal/render"
)

// Background colors
var (
	ColorDimmed  = lipgloss.Color("#374151") // Dark Gray
	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800
)

// Logo/Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(render.ColorPrimary).
			Padding(0, 2)
)

// Panel styles
var (
	InputPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(render.ColorPrimary).
			Padding(0, 1)

	TokenPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(render.ColorText).
			Padding(0, 1)

	StatusMatchedStyle = lipgloss.NewStyle().
				Foreground(render.ColorSuccess).
				Bold(true)

	StatusFailedStyle = lipgloss.NewStyle().
				Foreground(render.ColorError).
				Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(render.ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(render.ColorTextMuted)
)

// Logo
const Logo = "combilex Explorer"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}
