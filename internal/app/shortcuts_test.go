package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/jwtui/internal/editor"
)

func TestKeyFromTea(t *testing.T) {
	tests := []struct {
		name    string
		key     tea.Key
		release bool
		want    editor.Key
	}{
		{"letter", tea.Key{Code: 'a', Text: "a"}, false, editor.Key{Code: editor.KeyRune, Text: "a"}},
		{"shifted letter", tea.Key{Code: 'a', Text: "A", Mod: tea.ModShift}, false, editor.Key{Code: editor.KeyRune, Text: "A"}},
		{"space", tea.Key{Code: tea.KeySpace, Text: " "}, false, editor.Key{Code: editor.KeyRune, Text: " "}},
		{"multi-rune text", tea.Key{Code: 'e', Text: "e\u0301"}, false, editor.Key{Code: editor.KeyRune, Text: "e\u0301"}},
		{"release has no text", tea.Key{Code: 'q'}, true, editor.Key{Code: editor.KeyRune, Text: "q", Release: true}},
		{"shift+q press", tea.Key{Code: 'q', ShiftedCode: 'Q', Mod: tea.ModShift, Text: "Q"}, false, editor.Key{Code: editor.KeyRune, Text: "Q"}},
		{"shift+q release", tea.Key{Code: 'q', ShiftedCode: 'Q', Mod: tea.ModShift}, true, editor.Key{Code: editor.KeyRune, Text: "Q", Release: true}},
		{"caps lock release", tea.Key{Code: 'q', ShiftedCode: 'Q', Mod: tea.ModCapsLock}, true, editor.Key{Code: editor.KeyRune, Text: "Q", Release: true}},
		{"shift release without shifted code", tea.Key{Code: 'q', Mod: tea.ModShift}, true, editor.Key{Code: editor.KeyRune, Text: "Q", Release: true}},
		{"backspace", tea.Key{Code: tea.KeyBackspace}, false, editor.Key{Code: editor.KeyBackspace}},
		{"delete", tea.Key{Code: tea.KeyDelete}, false, editor.Key{Code: editor.KeyDelete}},
		{"left", tea.Key{Code: tea.KeyLeft}, false, editor.Key{Code: editor.KeyLeft}},
		{"right", tea.Key{Code: tea.KeyRight}, false, editor.Key{Code: editor.KeyRight}},
		{"home", tea.Key{Code: tea.KeyHome}, false, editor.Key{Code: editor.KeyHome}},
		{"end", tea.Key{Code: tea.KeyEnd}, false, editor.Key{Code: editor.KeyEnd}},
		{"tab", tea.Key{Code: tea.KeyTab}, false, editor.Key{Code: editor.KeyTab}},
		{"shift+tab", tea.Key{Code: tea.KeyTab, Mod: tea.ModShift}, false, editor.Key{Code: editor.KeyOther}},
		{"esc", tea.Key{Code: tea.KeyEscape}, false, editor.Key{Code: editor.KeyEscape}},
		{"ctrl+u", tea.Key{Code: 'u', Mod: tea.ModCtrl}, false, editor.Key{Code: editor.KeyCtrlU, Ctrl: true}},
		{"ctrl+y", tea.Key{Code: 'y', Mod: tea.ModCtrl}, false, editor.Key{Code: editor.KeyCtrlY, Ctrl: true}},
		{"ctrl+c", tea.Key{Code: 'c', Mod: tea.ModCtrl}, false, editor.Key{Code: editor.KeyRune, Text: "c", Ctrl: true}},
		{"alt+x", tea.Key{Code: 'x', Mod: tea.ModAlt}, false, editor.Key{Code: editor.KeyRune, Text: "x", Alt: true}},
		{"enter", tea.Key{Code: tea.KeyEnter}, false, editor.Key{Code: editor.KeyOther}},
		{"up", tea.Key{Code: tea.KeyUp}, false, editor.Key{Code: editor.KeyOther}},
		{"f1", tea.Key{Code: tea.KeyF1}, false, editor.Key{Code: editor.KeyOther}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyFromTea(tt.key, tt.release); got != tt.want {
				t.Errorf("keyFromTea() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
