// ============================================================================
// combilex - Parser-Combinator Lexer
// ============================================================================
//
// Package:     explorer
// Description: Bubbletea model lexing the input while it is typed
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwlog "github.com/msto63/combilex/foundation/core/log"
	"github.com/msto63/combilex/internal/render"
	"github.com/msto63/combilex/pkg/core/version"
	"github.com/msto63/combilex/pkg/lexer"
)

// Config holds explorer configuration
type Config struct {
	Initial string // text loaded into the editor on start
	Color   bool
	Logger  *mdwlog.Logger
}

// Model is the main Bubbletea model for the explorer
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	textarea textarea.Model
	viewport viewport.Model

	// Lex state; rev counts edits, shown is the revision on screen
	rev     int
	shown   int
	result  *lexer.Result
	err     error
	content string

	styles render.Styles
	logger *mdwlog.Logger
}

// New creates a new explorer model
func New(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Quelltext eingeben..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(8)
	ta.ShowLineNumbers = true
	ta.SetValue(cfg.Initial)

	styles := render.PlainStyles()
	if cfg.Color {
		styles = render.DefaultStyles()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = mdwlog.Discard()
	}

	return Model{
		textarea: ta,
		viewport: viewport.New(80, 10),
		styles:   styles,
		logger:   logger.WithName("explorer"),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		lexCmd(m.rev, m.textarea.Value()),
	)
}

// lexCmd lexes text off the update loop
func lexCmd(rev int, text string) tea.Cmd {
	return func() tea.Msg {
		res, err := lexer.Lex(text)
		return lexedMsg{rev: rev, result: res, err: err}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+l":
			m.textarea.Reset()
			m.rev++
			return m, lexCmd(m.rev, "")

		case "pgup":
			m.viewport.ViewUp()
			return m, nil

		case "pgdown":
			m.viewport.ViewDown()
			return m, nil
		}

		before := m.textarea.Value()
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
		if m.textarea.Value() != before {
			m.rev++
			cmds = append(cmds, lexCmd(m.rev, m.textarea.Value()))
		}
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Title panel, editor with border, status bar and help
		headerHeight := 4
		inputHeight := m.textarea.Height() + 2
		footerHeight := 3
		viewportHeight := msg.Height - headerHeight - inputHeight - footerHeight - 2
		if viewportHeight < 3 {
			viewportHeight = 3
		}

		m.textarea.SetWidth(msg.Width - 4)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = viewportHeight
		m.ready = true
		m.viewport.SetContent(m.content)

	case lexedMsg:
		// Drop results of outdated revisions
		if msg.rev < m.shown {
			return m, nil
		}
		m.shown = msg.rev
		m.result = msg.result
		m.err = msg.err
		m.updateViewportContent()
		if msg.err != nil {
			m.logger.Debug("input rejected", mdwlog.Err(msg.err))
		}
		return m, nil
	}

	m.textarea, cmd = m.textarea.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// updateViewportContent renders the current tokens into the viewport
func (m *Model) updateViewportContent() {
	switch {
	case m.err != nil:
		m.content = m.styles.Failed.Render("Fehler: " + m.err.Error())
	case m.result == nil || len(m.result.Tokens) == 0:
		m.content = m.styles.Muted.Render("Keine Tokens")
	default:
		m.content = strings.TrimRight(render.FormatTokens(m.result.Tokens, m.styles), "\n")
	}
	m.viewport.SetContent(m.content)
}

// Matched reports whether the current input matches the program grammar
func (m Model) Matched() bool {
	return m.err == nil && m.result != nil && m.result.Matched
}

// Tokens returns the tokens of the most recent lex result
func (m Model) Tokens() []lexer.Token {
	if m.result == nil {
		return nil
	}
	return m.result.Tokens
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade Explorer..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(InputPanelStyle.Width(m.width - 2).Render(m.textarea.View()))
	b.WriteString("\n")

	b.WriteString(TokenPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo and version
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render("v"+version.Version),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderStatusBar renders the match state and token count
func (m Model) renderStatusBar() string {
	var status string
	switch {
	case m.err != nil:
		status = StatusFailedStyle.Render("Ungültige Eingabe")
	case m.Matched():
		status = StatusMatchedStyle.Render("Erkannt")
	default:
		status = StatusFailedStyle.Render("Keine Übereinstimmung")
	}

	count := HelpDescStyle.Render(fmt.Sprintf("%d Tokens", len(m.Tokens())))
	return StatusBarStyle.Width(m.width - 2).Render(status + "  " + count)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("PgUp/PgDn", "Tokens blättern"),
		RenderKeyHint("Ctrl+L", "Leeren"),
		RenderKeyHint("Esc/Ctrl+C", "Beenden"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the explorer program
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
