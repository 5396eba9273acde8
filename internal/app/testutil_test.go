package app

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/jwtui/internal/clipboard"
	"github.com/zhubert/jwtui/internal/config"
	"github.com/zhubert/jwtui/internal/keys"
)

// testConfig creates a config that saves into a temp directory.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	return cfg
}

// testModel creates a test Model backed by an in-memory clipboard.
func testModel(t *testing.T) (*Model, *clipboard.Memory) {
	t.Helper()
	clip := &clipboard.Memory{}
	return New(testConfig(t), clip), clip
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, width, height int) (*Model, *clipboard.Memory) {
	t.Helper()
	m, clip := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m, clip
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "tab", "esc", "ctrl+u", "left"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Delete:
		return tea.KeyPressMsg{Code: tea.KeyDelete}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case keys.Space:
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case keys.CtrlU:
		return tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		// Regular character - set both Code and Text
		r := []rune(key)
		if len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// keyRelease creates the release event matching keyPress(key).
func keyRelease(key string) tea.KeyReleaseMsg {
	p := keyPress(key)
	return tea.KeyReleaseMsg{Code: p.Code, Mod: p.Mod}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// runCmd executes cmd and any batched commands it contains, returning every
// message produced. Never pass it a command that includes a tick: ticks
// block until they fire.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
