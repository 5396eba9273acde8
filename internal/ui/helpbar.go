package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"

	"github.com/zhubert/jwtui/internal/buffer"
	"github.com/zhubert/jwtui/internal/editor"
	"github.com/zhubert/jwtui/internal/keys"
)

// HelpSeparator joins bindings in the help line.
const HelpSeparator = " | "

// HelpBar is the single line above the panels. The left side lists the
// keys that matter in the current mode; the right side shows a flash
// message when one is active, otherwise the focused field's length.
type HelpBar struct {
	help  help.Model
	keys  keys.KeyMap
	width int
	flash *FlashMessage
}

// NewHelpBar creates a help bar with the default key map.
func NewHelpBar() *HelpBar {
	h := help.New()
	h.ShortSeparator = HelpSeparator
	return &HelpBar{
		help: h,
		keys: keys.DefaultKeyMap(),
	}
}

// SetWidth sets the help bar width
func (h *HelpBar) SetWidth(width int) {
	h.width = width
}

// SetFlash shows text on the right side until it expires.
func (h *HelpBar) SetFlash(text string, t FlashType) {
	h.flash = &FlashMessage{
		Text:      text,
		Type:      t,
		CreatedAt: time.Now(),
		Duration:  DefaultFlashDuration,
	}
}

// ClearFlash removes any flash message.
func (h *HelpBar) ClearFlash() {
	h.flash = nil
}

// HasFlash reports whether a live flash message is showing.
func (h *HelpBar) HasFlash() bool {
	return h.flash != nil && !h.flash.IsExpired()
}

// ClearIfExpired drops an expired flash and reports whether one was dropped.
func (h *HelpBar) ClearIfExpired() bool {
	if h.flash != nil && h.flash.IsExpired() {
		h.flash = nil
		return true
	}
	return false
}

// View renders the help line for mode. text is the focused field's content.
func (h *HelpBar) View(mode editor.Mode, focus buffer.Field, text string) string {
	h.help.Styles.ShortKey = HelpKeyStyle
	h.help.Styles.ShortDesc = HelpDescStyle
	h.help.Styles.ShortSeparator = HelpSepStyle

	right := h.status(mode, focus, text)
	rightWidth := lipgloss.Width(right)

	var left string
	if mode == editor.ModeNormal {
		left = h.help.ShortHelpView(h.keys.NormalBindings())
	} else {
		left = h.help.ShortHelpView(flatten(h.keys.EditingFullBindings()))
		if h.width > 0 && lipgloss.Width(left)+1+rightWidth > h.width {
			left = h.help.ShortHelpView(h.keys.EditingBindings())
		}
	}

	if h.width <= 0 {
		return left
	}

	gap := h.width - lipgloss.Width(left) - rightWidth
	if gap < 1 {
		// Not enough room for both sides; the key hints win.
		return HelpBarStyle.Render(ansi.Truncate(left, h.width, ""))
	}
	return HelpBarStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (h *HelpBar) status(mode editor.Mode, focus buffer.Field, text string) string {
	if h.HasFlash() {
		return h.flash.style()
	}
	count := HelpCounterStyle.Render(fmt.Sprintf("%s: %d chars", focus.Title(), uniseg.GraphemeClusterCount(text)))
	return count + " " + HelpModeStyle.Render(mode.String())
}

func flatten(groups [][]key.Binding) []key.Binding {
	var out []key.Binding
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
