package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/jwtui/internal/buffer"
	"github.com/zhubert/jwtui/internal/editor"
)

// tabWidth is the number of cells a tab occupies on screen.
const tabWidth = 4

// scroll is the first visible row and column of a panel.
type scroll struct {
	row, col int
}

// Panels renders the four text areas and tracks their scroll offsets.
// Offsets only move when a cursor would otherwise leave its panel.
type Panels struct {
	offsets   [buffer.NumFields]scroll
	highlight bool
}

// NewPanels creates a renderer. highlight turns on JSON coloring for the
// header and payload panels.
func NewPanels(highlight bool) *Panels {
	return &Panels{highlight: highlight}
}

// Follow moves each panel's scroll offset just far enough that its cursor
// stays inside the visible area.
func (p *Panels) Follow(vc *ViewContext, snap editor.Snapshot) {
	for _, f := range buffer.Fields {
		inner := vc.Panel(f).Inner()
		row, col := cursorCell(snap.Buffers[f])
		o := &p.offsets[f]
		o.row = follow(o.row, row, inner.Height)
		o.col = follow(o.col, col, inner.Width)
	}
}

func follow(offset, pos, size int) int {
	if size <= 0 {
		return pos
	}
	if pos < offset {
		return pos
	}
	if pos >= offset+size {
		return pos - size + 1
	}
	return offset
}

// View draws every panel and stacks them in layout order. Call Follow first
// so offsets match the snapshot.
func (p *Panels) View(vc *ViewContext, snap editor.Snapshot) string {
	var out [buffer.NumFields]string
	for _, f := range buffer.Fields {
		out[f] = p.renderPanel(vc.Panel(f), f, snap.Buffers[f].Text, f == snap.Focus)
	}

	middle := lipgloss.JoinHorizontal(lipgloss.Top, out[buffer.Header], out[buffer.Payload])
	return lipgloss.JoinVertical(lipgloss.Left, out[buffer.Token], middle, out[buffer.SigningKey])
}

// Caret returns the screen cell where the terminal cursor belongs. ok is
// false outside editing mode, in which case no cursor is shown.
func (p *Panels) Caret(vc *ViewContext, snap editor.Snapshot) (x, y int, ok bool) {
	if snap.Mode != editor.ModeEditing {
		return 0, 0, false
	}
	inner := vc.Panel(snap.Focus).Inner()
	// A panel squeezed down to its border has no cell to hold the caret.
	if inner.Width <= 0 || inner.Height <= 0 {
		return 0, 0, false
	}
	row, col := cursorCell(snap.Focused())
	o := p.offsets[snap.Focus]
	return inner.X + col - o.col, inner.Y + row - o.row, true
}

// renderPanel draws one rounded box of r's size with title set into the
// top edge.
func (p *Panels) renderPanel(r Rect, f buffer.Field, text string, focused bool) string {
	if r.Width <= 0 || r.Height <= 0 {
		return ""
	}

	border, title := PanelBorderStyle, PanelTitleStyle
	if focused {
		border, title = PanelFocusedBorderStyle, PanelFocusedTitleStyle
	}
	b := lipgloss.RoundedBorder()
	inner := r.Inner()

	rows := make([]string, 0, r.Height)
	rows = append(rows, topEdge(b, f.Title(), r.Width, border, title))

	lines := strings.Split(expandTabs(text), "\n")
	o := p.offsets[f]
	for i := range inner.Height {
		var line string
		if n := o.row + i; n < len(lines) {
			line = p.fitLine(lines[n], f, o.col, inner.Width)
		}
		if pad := inner.Width - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		rows = append(rows, border.Render(b.Left)+line+border.Render(b.Right))
	}

	if r.Height > 1 {
		rows = append(rows, border.Render(b.BottomLeft+strings.Repeat(b.Bottom, max(r.Width-2, 0))+b.BottomRight))
	}
	return strings.Join(rows, "\n")
}

// fitLine colors a line and cuts it to the visible columns.
func (p *Panels) fitLine(line string, f buffer.Field, from, width int) string {
	if line == "" || width <= 0 {
		return ""
	}
	if p.highlight && f.IsJSON() {
		line = highlightJSON(line, CurrentTheme().Syntax)
	} else {
		line = PanelTextStyle.Render(line)
	}
	return ansi.Cut(line, from, from+width)
}

func topEdge(b lipgloss.Border, title string, width int, border, titleStyle lipgloss.Style) string {
	if width < 2 {
		return border.Render(strings.Repeat(b.Top, width))
	}
	title = ansi.Truncate(title, width-2, "")
	fill := width - 2 - ansi.StringWidth(title)
	return border.Render(b.TopLeft) +
		titleStyle.Render(title) +
		border.Render(strings.Repeat(b.Top, fill)+b.TopRight)
}

// cursorCell converts a buffer cursor into a row and display column within
// the buffer's text.
func cursorCell(s buffer.Snapshot) (row, col int) {
	before := s.BeforeCursor()
	row = strings.Count(before, "\n")
	last := before[strings.LastIndexByte(before, '\n')+1:]
	return row, runewidth.StringWidth(expandTabs(last))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
