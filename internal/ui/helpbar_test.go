package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/jwtui/internal/buffer"
	"github.com/zhubert/jwtui/internal/editor"
)

func TestHelpBar_ModeText(t *testing.T) {
	tests := []struct {
		name       string
		mode       editor.Mode
		width      int
		wantPrefix string
		notWant    string
	}{
		{"normal", editor.ModeNormal, 80, "q quit | e edit", "ESC"},
		{"editing wide", editor.ModeEditing, 200, "ESC normal | TAB switch panel | ← left", ""},
		{"editing narrow", editor.ModeEditing, 40, "ESC normal | TAB switch panel", "clear field"},
		{"no width", editor.ModeNormal, 0, "q quit | e edit", "chars"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHelpBar()
			h.SetWidth(tt.width)
			view := ansi.Strip(h.View(tt.mode, buffer.Token, ""))

			if !strings.HasPrefix(view, tt.wantPrefix) {
				t.Errorf("Expected view to start with %q, got %q", tt.wantPrefix, view)
			}
			if tt.notWant != "" && strings.Contains(view, tt.notWant) {
				t.Errorf("Expected view not to contain %q, got %q", tt.notWant, view)
			}
			if tt.width > 0 {
				if w := ansi.StringWidth(view); w > tt.width {
					t.Errorf("View width %d exceeds %d", w, tt.width)
				}
			}
		})
	}
}

func TestHelpBar_Counter(t *testing.T) {
	h := NewHelpBar()
	h.SetWidth(80)

	// A decomposed é is one grapheme.
	view := ansi.Strip(h.View(editor.ModeNormal, buffer.Payload, "e\u0301x"))
	if !strings.Contains(view, "Payload: 2 chars") {
		t.Errorf("Expected grapheme count in %q", view)
	}
	if !strings.Contains(view, "Normal") {
		t.Errorf("Expected mode name in %q", view)
	}
}

func TestHelpBar_Flash(t *testing.T) {
	h := NewHelpBar()
	h.SetWidth(80)

	if h.HasFlash() {
		t.Error("Expected no flash initially")
	}

	h.SetFlash("Copied signing-key", FlashSuccess)
	if !h.HasFlash() {
		t.Fatal("Expected flash after SetFlash")
	}
	view := ansi.Strip(h.View(editor.ModeEditing, buffer.SigningKey, "secret"))
	if !strings.Contains(view, "Copied signing-key") {
		t.Errorf("Expected flash text in %q", view)
	}
	if strings.Contains(view, "chars") {
		t.Errorf("Flash should replace the counter, got %q", view)
	}

	if h.ClearIfExpired() {
		t.Error("Fresh flash should not be cleared")
	}

	h.flash.CreatedAt = time.Now().Add(-time.Hour)
	if h.HasFlash() {
		t.Error("Expired flash should not count as showing")
	}
	if !h.ClearIfExpired() {
		t.Error("Expected expired flash to be cleared")
	}
	if h.flash != nil {
		t.Error("Expected flash to be nil after clearing")
	}

	h.SetFlash("again", FlashError)
	h.ClearFlash()
	if h.HasFlash() {
		t.Error("Expected ClearFlash to remove the flash")
	}
}

func TestFlashMessage_IsExpired(t *testing.T) {
	f := FlashMessage{CreatedAt: time.Now(), Duration: time.Minute}
	if f.IsExpired() {
		t.Error("Expected fresh message not to be expired")
	}
	f.CreatedAt = time.Now().Add(-2 * time.Minute)
	if !f.IsExpired() {
		t.Error("Expected old message to be expired")
	}
}

func TestFlashTick(t *testing.T) {
	if FlashTick() == nil {
		t.Error("FlashTick should return a command")
	}
}
