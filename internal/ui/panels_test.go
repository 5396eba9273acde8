package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/jwtui/internal/buffer"
	"github.com/zhubert/jwtui/internal/editor"
)

// snapshotWith builds an editor snapshot with text in field f and the
// cursor at the end of it.
func snapshotWith(f buffer.Field, text string, mode editor.Mode) editor.Snapshot {
	var snap editor.Snapshot
	snap.Focus = f
	snap.Mode = mode
	snap.Buffers[f] = buffer.Snapshot{Text: text, Cursor: len([]rune(text))}
	return snap
}

func testContext(width, height int) *ViewContext {
	vc := NewViewContext()
	vc.UpdateTerminalSize(width, height)
	return vc
}

func TestPanels_Caret(t *testing.T) {
	// At 80x24 the token panel is rows 1-4 and the middle row starts at 5.
	tests := []struct {
		name   string
		field  buffer.Field
		text   string
		cursor int
		wantX  int
		wantY  int
	}{
		{"empty token", buffer.Token, "", 0, 1, 2},
		{"token end", buffer.Token, "abc", 3, 4, 2},
		{"token middle", buffer.Token, "abc", 1, 2, 2},
		{"payload", buffer.Payload, `{"a":1}`, 7, 48, 6},
		{"header", buffer.Header, `{"alg":"HS256"}`, 14, 15, 6},
		{"signing key", buffer.SigningKey, "secret", 6, 7, 18},
		{"second line", buffer.Token, "ab\ncd", 4, 2, 3},
		{"wide runes", buffer.Token, "日本", 2, 5, 2},
		{"tab", buffer.Token, "\tx", 1, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc := testContext(80, 24)
			snap := snapshotWith(tt.field, tt.text, editor.ModeEditing)
			snap.Buffers[tt.field].Cursor = tt.cursor

			p := NewPanels(false)
			p.Follow(vc, snap)
			x, y, ok := p.Caret(vc, snap)
			if !ok {
				t.Fatal("Expected caret in editing mode")
			}
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Caret() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPanels_CaretHiddenInNormalMode(t *testing.T) {
	vc := testContext(80, 24)
	snap := snapshotWith(buffer.Token, "abc", editor.ModeNormal)

	p := NewPanels(false)
	p.Follow(vc, snap)
	if _, _, ok := p.Caret(vc, snap); ok {
		t.Error("Expected no caret in normal mode")
	}
}

func TestPanels_CaretHiddenInBorderOnlyPanel(t *testing.T) {
	vc := testContext(MinTerminalWidth, MinTerminalHeight) // token panel is one row
	if h := vc.Panel(buffer.Token).Inner().Height; h > 0 {
		t.Fatalf("Expected token panel without text rows, got %d", h)
	}

	p := NewPanels(false)
	snap := snapshotWith(buffer.Token, "abc", editor.ModeEditing)
	p.Follow(vc, snap)
	if _, _, ok := p.Caret(vc, snap); ok {
		t.Error("Expected no caret when the panel has no text rows")
	}

	snap = snapshotWith(buffer.Header, "{}", editor.ModeEditing)
	p.Follow(vc, snap)
	x, y, ok := p.Caret(vc, snap)
	if !ok {
		t.Fatal("Expected caret in the header panel")
	}
	header := vc.Panel(buffer.Header)
	if y <= header.Y || y >= header.Y+header.Height-1 || x <= header.X {
		t.Errorf("Caret (%d, %d) outside header text area %+v", x, y, header)
	}
}

func TestPanels_FollowScrollsVertically(t *testing.T) {
	vc := testContext(80, 24) // token panel has 2 text rows
	snap := snapshotWith(buffer.Token, "a\nb\nc\nd", editor.ModeEditing)

	p := NewPanels(false)
	p.Follow(vc, snap)
	x, y, _ := p.Caret(vc, snap)
	if x != 2 || y != 3 {
		t.Errorf("Caret() = (%d, %d), want (2, 3)", x, y)
	}

	view := ansi.Strip(p.View(vc, snap))
	lines := strings.Split(view, "\n")
	if !strings.HasPrefix(lines[1], "│c") || !strings.HasPrefix(lines[2], "│d") {
		t.Errorf("Expected rows c and d visible, got %q and %q", lines[1], lines[2])
	}

	// Moving back to the top scrolls up again.
	snap.Buffers[buffer.Token].Cursor = 0
	p.Follow(vc, snap)
	if _, y, _ := p.Caret(vc, snap); y != 2 {
		t.Errorf("Expected caret on first text row after scrolling up, got y=%d", y)
	}
}

func TestPanels_FollowScrollsHorizontally(t *testing.T) {
	vc := testContext(80, 24) // 78 text columns
	text := strings.Repeat("x", 100)
	snap := snapshotWith(buffer.Token, text, editor.ModeEditing)

	p := NewPanels(false)
	p.Follow(vc, snap)
	x, _, _ := p.Caret(vc, snap)
	if x != 78 {
		t.Errorf("Expected caret on last text column 78, got %d", x)
	}
}

func TestPanels_View(t *testing.T) {
	vc := testContext(80, 24)
	var snap editor.Snapshot
	snap.Mode = editor.ModeEditing
	snap.Focus = buffer.Payload
	snap.Buffers[buffer.Token] = buffer.Snapshot{Text: "eyJhbGciOiJIUzI1NiJ9"}
	snap.Buffers[buffer.Header] = buffer.Snapshot{Text: `{"alg":"HS256"}`}
	snap.Buffers[buffer.Payload] = buffer.Snapshot{Text: `{"sub":"1234"}`}
	snap.Buffers[buffer.SigningKey] = buffer.Snapshot{Text: "secret"}

	for _, highlight := range []bool{false, true} {
		p := NewPanels(highlight)
		p.Follow(vc, snap)
		view := ansi.Strip(p.View(vc, snap))
		lines := strings.Split(view, "\n")

		if len(lines) != 23 {
			t.Fatalf("highlight=%v: expected 23 panel rows, got %d", highlight, len(lines))
		}
		for i, line := range lines {
			if w := ansi.StringWidth(line); w != 80 {
				t.Errorf("highlight=%v: row %d has width %d: %q", highlight, i, w, line)
			}
		}

		for _, want := range []string{
			"╭JWT String",
			"╭Header",
			"╭Payload",
			"╭Signing Key",
			"eyJhbGciOiJIUzI1NiJ9",
			`{"alg":"HS256"}`,
			`{"sub":"1234"}`,
			"secret",
		} {
			if !strings.Contains(view, want) {
				t.Errorf("highlight=%v: expected view to contain %q", highlight, want)
			}
		}
	}
}

func TestPanels_ViewTruncatesLongLines(t *testing.T) {
	vc := testContext(40, 20)
	snap := snapshotWith(buffer.SigningKey, strings.Repeat("k", 200), editor.ModeNormal)
	snap.Buffers[buffer.SigningKey].Cursor = 0

	p := NewPanels(false)
	p.Follow(vc, snap)
	view := ansi.Strip(p.View(vc, snap))
	for i, line := range strings.Split(view, "\n") {
		if w := ansi.StringWidth(line); w != 40 {
			t.Errorf("row %d has width %d", i, w)
		}
	}
	if !strings.Contains(view, "│"+strings.Repeat("k", 38)+"│") {
		t.Error("Expected key text cut to the panel width")
	}
}

func TestPanels_FocusedBorderColor(t *testing.T) {
	vc := testContext(80, 24)
	p := NewPanels(false)
	r := vc.Panel(buffer.Token)

	focused := p.renderPanel(r, buffer.Token, "", true)
	blurred := p.renderPanel(r, buffer.Token, "", false)

	if ansi.Strip(focused) != ansi.Strip(blurred) {
		t.Error("Focus should only change colors, not content")
	}
	if !strings.Contains(focused, PanelFocusedBorderStyle.Render("│")) {
		t.Error("Expected focused panel to use the focus border style")
	}
}

func TestExpandTabs(t *testing.T) {
	if got := expandTabs("a\tb"); got != "a    b" {
		t.Errorf("expandTabs() = %q", got)
	}
}
