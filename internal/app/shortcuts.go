package app

import (
	"unicode"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/jwtui/internal/editor"
)

// keyFromTea translates a Bubble Tea key into the editor's key model.
// Keys the editor has no use for map to KeyOther and are ignored.
func keyFromTea(k tea.Key, release bool) editor.Key {
	ek := editor.Key{
		Release: release,
		Ctrl:    k.Mod.Contains(tea.ModCtrl),
		Alt:     k.Mod.Contains(tea.ModAlt),
	}

	switch k.Code {
	case tea.KeyBackspace:
		ek.Code = editor.KeyBackspace
	case tea.KeyDelete:
		ek.Code = editor.KeyDelete
	case tea.KeyLeft:
		ek.Code = editor.KeyLeft
	case tea.KeyRight:
		ek.Code = editor.KeyRight
	case tea.KeyHome:
		ek.Code = editor.KeyHome
	case tea.KeyEnd:
		ek.Code = editor.KeyEnd
	case tea.KeyEscape:
		ek.Code = editor.KeyEscape
	case tea.KeyTab:
		// shift+tab has no binding
		if !k.Mod.Contains(tea.ModShift) {
			ek.Code = editor.KeyTab
		}
	default:
		switch {
		case ek.Ctrl && !ek.Alt && k.Code == 'u':
			ek.Code = editor.KeyCtrlU
		case ek.Ctrl && !ek.Alt && k.Code == 'y':
			ek.Code = editor.KeyCtrlY
		case k.Text != "":
			ek.Code = editor.KeyRune
			ek.Text = k.Text
		case unicode.IsPrint(k.Code):
			// Release events and modified keys carry no text.
			ek.Code = editor.KeyRune
			ek.Text = string(baseRune(k))
		}
	}

	return ek
}

// baseRune is the character a textless key stands for. Code is the
// unshifted key, so shift+q has to become Q here or its release would read
// as q.
func baseRune(k tea.Key) rune {
	switch {
	case k.ShiftedCode != 0:
		return k.ShiftedCode
	case k.Mod.Contains(tea.ModShift):
		return unicode.ToUpper(k.Code)
	default:
		return k.Code
	}
}
