package buffer

import "slices"

// Buffer is one field's text and its cursor.
//
// The cursor is an offset in runes, not bytes, so multi-byte characters are
// inserted and removed as a unit.
type Buffer struct {
	text   []rune
	cursor int
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int {
	return len(b.text)
}

// Cursor returns the cursor offset in runes.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// String returns the buffer contents.
func (b *Buffer) String() string {
	return string(b.text)
}

// BeforeCursor returns the text to the left of the cursor.
func (b *Buffer) BeforeCursor() string {
	return string(b.text[:b.cursor])
}

// Insert puts r at the cursor and moves the cursor past it.
// The offset is read from the live cursor at call time.
func (b *Buffer) Insert(r rune) {
	b.text = slices.Insert(b.text, b.cursor, r)
	b.cursor++
}

// InsertString inserts every rune of s at the cursor, in order.
func (b *Buffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Backspace removes the rune before the cursor. At offset zero it does
// nothing.
func (b *Buffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.text = slices.Delete(b.text, b.cursor-1, b.cursor)
	b.cursor--
}

// Delete removes the rune under the cursor. At the end of the buffer it does
// nothing.
func (b *Buffer) Delete() {
	if b.cursor >= len(b.text) {
		return
	}
	b.text = slices.Delete(b.text, b.cursor, b.cursor+1)
}

// MoveLeft moves the cursor one rune left, stopping at zero.
func (b *Buffer) MoveLeft() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// MoveRight moves the cursor one rune right, stopping at the current length.
func (b *Buffer) MoveRight() {
	b.cursor = min(b.cursor+1, len(b.text))
}

// Home moves the cursor to the start of the buffer.
func (b *Buffer) Home() {
	b.cursor = 0
}

// End moves the cursor to the end of the buffer.
func (b *Buffer) End() {
	b.cursor = len(b.text)
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.text = b.text[:0]
	b.cursor = 0
}

// Snapshot is a read-only copy of a Buffer.
type Snapshot struct {
	Text   string
	Cursor int
}

// Snapshot copies the buffer's current text and cursor.
func (b *Buffer) Snapshot() Snapshot {
	return Snapshot{Text: string(b.text), Cursor: b.cursor}
}

// BeforeCursor returns the text to the left of the snapshot's cursor.
func (s Snapshot) BeforeCursor() string {
	runes := []rune(s.Text)
	if s.Cursor > len(runes) {
		return s.Text
	}
	return string(runes[:s.Cursor])
}
