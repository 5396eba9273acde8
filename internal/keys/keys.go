// Package keys provides string constants for Bubble Tea v2 key press events
// and the key bindings shown in jwtui's help line.
//
// The constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
package keys

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Navigation keys
var (
	Left  = tea.KeyPressMsg{Code: tea.KeyLeft}.String()  // "left"
	Right = tea.KeyPressMsg{Code: tea.KeyRight}.String() // "right"
	Home  = tea.KeyPressMsg{Code: tea.KeyHome}.String()  // "home"
	End   = tea.KeyPressMsg{Code: tea.KeyEnd}.String()   // "end"
)

// Action keys
var (
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()       // "tab"
	Space     = tea.KeyPressMsg{Code: tea.KeySpace}.String()     // "space"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String() // "backspace"
	Delete    = tea.KeyPressMsg{Code: tea.KeyDelete}.String()    // "delete"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()    // "esc"
)

// Ctrl combinations
var (
	CtrlU = (tea.KeyPressMsg{Code: 'u', Mod: tea.ModCtrl}).String() // "ctrl+u"
	CtrlY = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String() // "ctrl+y"
)

// Normal-mode command keys
const (
	Quit = "q"
	Edit = "e"
)

// KeyMap holds the bindings advertised in the help line. Dispatch itself is
// done by the editor package; these bindings only describe it.
type KeyMap struct {
	Quit       key.Binding
	Edit       key.Binding
	Normal     key.Binding
	NextField  key.Binding
	Backspace  key.Binding
	Delete     key.Binding
	Left       key.Binding
	Right      key.Binding
	Home       key.Binding
	End        key.Binding
	ClearField key.Binding
	Copy       key.Binding
}

// DefaultKeyMap returns jwtui's key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys(Quit), key.WithHelp(Quit, "quit")),
		Edit:       key.NewBinding(key.WithKeys(Edit), key.WithHelp(Edit, "edit")),
		Normal:     key.NewBinding(key.WithKeys(Escape), key.WithHelp("ESC", "normal")),
		NextField:  key.NewBinding(key.WithKeys(Tab), key.WithHelp("TAB", "switch panel")),
		Backspace:  key.NewBinding(key.WithKeys(Backspace), key.WithHelp("⌫", "delete back")),
		Delete:     key.NewBinding(key.WithKeys(Delete), key.WithHelp("del", "delete")),
		Left:       key.NewBinding(key.WithKeys(Left), key.WithHelp("←", "left")),
		Right:      key.NewBinding(key.WithKeys(Right), key.WithHelp("→", "right")),
		Home:       key.NewBinding(key.WithKeys(Home), key.WithHelp("home", "start")),
		End:        key.NewBinding(key.WithKeys(End), key.WithHelp("end", "end")),
		ClearField: key.NewBinding(key.WithKeys(CtrlU), key.WithHelp(CtrlU, "clear field")),
		Copy:       key.NewBinding(key.WithKeys(CtrlY), key.WithHelp(CtrlY, "copy field")),
	}
}

// NormalBindings are shown while keys are commands.
func (k KeyMap) NormalBindings() []key.Binding {
	return []key.Binding{k.Quit, k.Edit}
}

// EditingBindings are shown while keys edit text.
func (k KeyMap) EditingBindings() []key.Binding {
	return []key.Binding{k.Normal, k.NextField}
}

// EditingFullBindings groups every editing binding for the expanded help.
func (k KeyMap) EditingFullBindings() [][]key.Binding {
	return [][]key.Binding{
		{k.Normal, k.NextField},
		{k.Left, k.Right, k.Home, k.End},
		{k.Backspace, k.Delete, k.ClearField, k.Copy},
	}
}
