package editor

// KeyCode identifies a key independently of the terminal library that
// produced it.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyRune          // Printable text; see Key.Text
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyTab
	KeyEscape
	KeyCtrlU
	KeyCtrlY
)

// Key is one keyboard event.
type Key struct {
	Code KeyCode
	// Text is the text a KeyRune produces. It is usually one rune but may be
	// more for keys that compose several code points.
	Text string
	// Release marks key-up events. Terminals that report both press and
	// release would otherwise trigger every edit twice.
	Release bool
	// Ctrl and Alt are set for modified presses; modified runes are never
	// inserted as text.
	Ctrl bool
	Alt  bool
}

// Rune returns a KeyRune event for r.
func Rune(r rune) Key {
	return Key{Code: KeyRune, Text: string(r)}
}

// Action tells the event loop what to do after a key was handled.
type Action int

const (
	ActionNone Action = iota
	ActionQuit        // Stop the event loop
	ActionCopy        // Copy the focused buffer to the clipboard
)

// Normal-mode command keys.
const (
	QuitRune = 'q'
	EditRune = 'e'
)

// Handle routes k through the handler for the current mode and reports what
// the event loop should do next. Unrecognised keys are ignored in both modes.
func (e *Editor) Handle(k Key) Action {
	switch e.mode {
	case ModeNormal:
		return e.handleNormal(k)
	case ModeEditing:
		if k.Release {
			return ActionNone
		}
		return e.handleEditing(k)
	}
	return ActionNone
}

// handleNormal interprets command keys. Release events are accepted here:
// a stray release of 'e' or 'q' behaves like its press.
func (e *Editor) handleNormal(k Key) Action {
	if k.Code != KeyRune || k.Ctrl || k.Alt {
		return ActionNone
	}
	switch k.Text {
	case string(QuitRune):
		e.log.Debug("quit requested")
		return ActionQuit
	case string(EditRune):
		e.EnterEditing()
	}
	return ActionNone
}

func (e *Editor) handleEditing(k Key) Action {
	switch k.Code {
	case KeyEscape:
		e.EnterNormal()
	case KeyTab:
		e.NextFocus()
	case KeyRune:
		if k.Ctrl || k.Alt {
			return ActionNone
		}
		e.InsertString(k.Text)
	case KeyBackspace:
		e.Backspace()
	case KeyDelete:
		e.Delete()
	case KeyLeft:
		e.MoveLeft()
	case KeyRight:
		e.MoveRight()
	case KeyHome:
		e.Home()
	case KeyEnd:
		e.End()
	case KeyCtrlU:
		e.ClearField()
	case KeyCtrlY:
		return ActionCopy
	}
	return ActionNone
}
