// Package app wires the editor, the renderer and the terminal together as
// a Bubble Tea program.
package app

import (
	"log/slog"
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"

	"github.com/zhubert/jwtui/internal/clipboard"
	"github.com/zhubert/jwtui/internal/config"
	"github.com/zhubert/jwtui/internal/editor"
	"github.com/zhubert/jwtui/internal/logger"
	"github.com/zhubert/jwtui/internal/ui"
)

// Model is the main application model
type Model struct {
	cfg  *config.Config
	clip clipboard.Clipboard

	editor  *editor.Editor
	vc      *ui.ViewContext
	panels  *ui.Panels
	helpBar *ui.HelpBar

	runID string
	log   *slog.Logger

	width  int
	height int
}

// New creates a new app model. clip receives copied fields; nil disables
// the system clipboard and leaves only the terminal copy.
func New(cfg *config.Config, clip clipboard.Clipboard) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	runID := uuid.NewString()
	m := &Model{
		cfg:     cfg,
		clip:    clip,
		editor:  editor.New(),
		vc:      ui.NewViewContext(),
		panels:  ui.NewPanels(cfg.GetHighlight()),
		helpBar: ui.NewHelpBar(),
		runID:   runID,
		log:     logger.WithSession(runID),
	}
	m.log.Info("Model created", "theme", ui.CurrentThemeName(), "highlight", cfg.GetHighlight())
	return m
}

// Editor exposes the editing state, mainly for tests.
func (m *Model) Editor() *editor.Editor {
	return m.editor
}

// RunID identifies this run in the log file.
func (m *Model) RunID() string {
	return m.runID
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		return m.handleKey(keyFromTea(msg.Key(), false))

	case tea.KeyReleaseMsg:
		return m.handleKey(keyFromTea(msg.Key(), true))

	case tea.PasteMsg:
		return m, m.handlePaste(msg.Content)

	case ClipboardResultMsg:
		if msg.Err != nil {
			m.log.Warn("System clipboard write failed", "field", msg.Field, "error", msg.Err)
			return m, m.ShowFlashWarning("Copied " + msg.Field.Title() + " via terminal only")
		}
		return m, m.ShowFlashSuccess("Copied " + msg.Field.Title())

	case ui.FlashTickMsg:
		m.helpBar.ClearIfExpired()
		if m.helpBar.HasFlash() {
			return m, ui.FlashTick()
		}
	}

	return m, nil
}

// handleKey runs one key through the editor and turns its action into a
// command.
func (m *Model) handleKey(k editor.Key) (tea.Model, tea.Cmd) {
	switch m.editor.Handle(k) {
	case editor.ActionQuit:
		m.log.Info("Quit requested")
		return m, tea.Quit
	case editor.ActionCopy:
		return m, m.copyFocused()
	}
	return m, nil
}

// handlePaste inserts pasted text into the focused field. Pastes are text
// input, so they only apply while editing.
func (m *Model) handlePaste(content string) tea.Cmd {
	if m.editor.Mode() != editor.ModeEditing || content == "" {
		return nil
	}
	content, dropped := sanitizePaste(content)
	m.log.Debug("Paste", "field", m.editor.Focus(), "bytes", len(content), "dropped", dropped)
	m.editor.InsertString(content)
	if dropped {
		return m.ShowFlashInfo("Removed control characters from paste")
	}
	return nil
}

// copyFocused sends the focused field to the terminal clipboard and, when
// one is configured, to the system clipboard.
func (m *Model) copyFocused() tea.Cmd {
	field := m.editor.Focus()
	text := m.editor.Active().String()
	m.log.Debug("Copy", "field", field, "bytes", len(text))

	if m.clip == nil {
		return tea.Batch(tea.SetClipboard(text), m.ShowFlashSuccess("Copied "+field.Title()))
	}

	clip := m.clip
	return tea.Batch(
		tea.SetClipboard(text),
		func() tea.Msg {
			return ClipboardResultMsg{Field: field, Err: clip.WriteText(text)}
		},
	)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// sanitizePaste normalizes newlines and removes terminal escape sequences
// and control characters other than newline and tab. Rendered text goes to
// the terminal as-is, so anything left here would be executed by it.
// dropped reports whether anything was removed.
func sanitizePaste(s string) (clean string, dropped bool) {
	s = normalizeNewlines(s)
	stripped := ansi.Strip(s)
	clean = strings.Map(func(r rune) rune {
		if r != '\n' && r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, stripped)
	return clean, clean != s
}
