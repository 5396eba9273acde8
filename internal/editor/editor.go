// Package editor is the input state machine that sits between keyboard
// events and the buffer store.
//
// An Editor tracks three things: the four field buffers, which field has
// focus, and whether keystrokes are commands (ModeNormal) or text
// (ModeEditing). Handle is the single entry point for key events; it never
// fails, and keys that mean nothing in the current mode are ignored.
package editor

import (
	"log/slog"

	"github.com/zhubert/jwtui/internal/buffer"
	"github.com/zhubert/jwtui/internal/logger"
)

// Mode is how keystrokes are interpreted.
type Mode int

const (
	ModeNormal  Mode = iota // Keys are commands: quit or start editing
	ModeEditing             // Keys edit the focused buffer
)

// String returns a human-readable name for the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeEditing:
		return "Editing"
	default:
		return "Unknown"
	}
}

// Editor owns the buffers, the focus and the input mode.
type Editor struct {
	store *buffer.Store
	focus buffer.Field
	mode  Mode
	log   *slog.Logger
}

// New returns an editor with four empty buffers, focus on the token field
// and the editing mode active.
func New() *Editor {
	return &Editor{
		store: buffer.NewStore(),
		focus: buffer.Token,
		mode:  ModeEditing,
		log:   logger.WithComponent("editor"),
	}
}

// Focus returns the field receiving edits.
func (e *Editor) Focus() buffer.Field {
	return e.focus
}

// Mode returns the current input mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Active returns the focused buffer.
func (e *Editor) Active() *buffer.Buffer {
	return e.store.Get(e.focus)
}

// Buffer returns the buffer for f regardless of focus.
func (e *Editor) Buffer(f buffer.Field) *buffer.Buffer {
	return e.store.Get(f)
}

// NextFocus moves focus to the next field in cycle order. Cursors are left
// where they were, so returning to a field resumes at the same offset.
func (e *Editor) NextFocus() {
	prev := e.focus
	e.focus = e.focus.Next()
	e.log.Debug("focus changed", "from", prev, "to", e.focus)
}

// EnterEditing switches to ModeEditing.
func (e *Editor) EnterEditing() {
	e.setMode(ModeEditing)
}

// EnterNormal switches to ModeNormal.
func (e *Editor) EnterNormal() {
	e.setMode(ModeNormal)
}

func (e *Editor) setMode(m Mode) {
	if e.mode != m {
		e.log.Debug("mode transition", "from", e.mode, "to", m)
		e.mode = m
	}
}

// Edit operations on the focused buffer.

func (e *Editor) Insert(r rune) { e.Active().Insert(r) }
func (e *Editor) InsertString(s string) { e.Active().InsertString(s) }
func (e *Editor) Backspace() { e.Active().Backspace() }
func (e *Editor) Delete() { e.Active().Delete() }
func (e *Editor) MoveLeft() { e.Active().MoveLeft() }
func (e *Editor) MoveRight() { e.Active().MoveRight() }
func (e *Editor) Home() { e.Active().Home() }
func (e *Editor) End() { e.Active().End() }
func (e *Editor) ClearField() { e.Active().Clear() }

// Snapshot is the read-only view handed to the renderer.
type Snapshot struct {
	Buffers [buffer.NumFields]buffer.Snapshot
	Focus   buffer.Field
	Mode    Mode
}

// Focused returns the snapshot of the focused buffer.
func (s Snapshot) Focused() buffer.Snapshot {
	return s.Buffers[s.Focus]
}

// Snapshot copies the editor state.
func (e *Editor) Snapshot() Snapshot {
	return Snapshot{
		Buffers: e.store.Snapshot(),
		Focus:   e.focus,
		Mode:    e.mode,
	}
}
