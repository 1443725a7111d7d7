package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/combilex/pkg/lexer"
)

// Color palette, shared with the explorer
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Styles bundles the styles of the text renderer. The zero value renders
// plain text.
type Styles struct {
	Header      lipgloss.Style
	Kind        lipgloss.Style
	Identifier  lipgloss.Style
	Literal     lipgloss.Style
	Operator    lipgloss.Style
	Punctuation lipgloss.Style
	Matched     lipgloss.Style
	Failed      lipgloss.Style
	Muted       lipgloss.Style
}

// DefaultStyles returns the colored styles
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Kind:        lipgloss.NewStyle().Foreground(ColorTextMuted),
		Identifier:  lipgloss.NewStyle().Foreground(ColorText),
		Literal:     lipgloss.NewStyle().Foreground(ColorAccent),
		Operator:    lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true),
		Punctuation: lipgloss.NewStyle().Foreground(ColorTextDim),
		Matched:     lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		Failed:      lipgloss.NewStyle().Foreground(ColorError).Bold(true),
		Muted:       lipgloss.NewStyle().Foreground(ColorTextDim).Italic(true),
	}
}

// PlainStyles returns styles without any decoration
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header:      plain,
		Kind:        plain,
		Identifier:  plain,
		Literal:     plain,
		Operator:    plain,
		Punctuation: plain,
		Matched:     plain,
		Failed:      plain,
		Muted:       plain,
	}
}

// ForKind returns the style for the text of a token of kind k
func (s Styles) ForKind(k lexer.Kind) lipgloss.Style {
	switch {
	case k == lexer.KindIdentifier:
		return s.Identifier
	case k.IsLiteral():
		return s.Literal
	case k == lexer.KindArithmeticOperator:
		return s.Operator
	default:
		return s.Punctuation
	}
}
