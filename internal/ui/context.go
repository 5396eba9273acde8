package ui

import (
	"sync"

	"github.com/zhubert/jwtui/internal/buffer"
	"github.com/zhubert/jwtui/internal/logger"
)

// Rect is a screen region in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Inner returns the region inside a one-cell border.
func (r Rect) Inner() Rect {
	return Rect{
		X:      r.X + BorderInset,
		Y:      r.Y + BorderInset,
		Width:  max(r.Width-BorderSize, 0),
		Height: max(r.Height-BorderSize, 0),
	}
}

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
//
//	┌──────────────────────────────────────┐
//	│ help line (1 row)                    │
//	├──────────────────────────────────────┤
//	│ JWT String (20%)                     │
//	├──────────────────┬───────────────────┤
//	│ Header           │ Payload           │
//	│ (50%, left half) │ (right half)      │
//	├──────────────────┴───────────────────┤
//	│ Signing Key (remaining rows)         │
//	└──────────────────────────────────────┘
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated regions
	HelpBar Rect
	Panels  [buffer.NumFields]Rect

	mu sync.Mutex
}

// NewViewContext returns a context with no size yet.
func NewViewContext() *ViewContext {
	return &ViewContext{}
}

// UpdateTerminalSize recalculates all regions when the terminal size
// changes.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	v.TerminalWidth = width
	v.TerminalHeight = height

	v.HelpBar = Rect{X: 0, Y: 0, Width: width, Height: HelpBarHeight}

	tokenHeight := height * TokenHeightPercent / 100
	middleHeight := height * MiddleHeightPercent / 100
	keyHeight := height - HelpBarHeight - tokenHeight - middleHeight

	y := HelpBarHeight
	v.Panels[buffer.Token] = Rect{X: 0, Y: y, Width: width, Height: tokenHeight}
	y += tokenHeight

	headerWidth := width * HeaderWidthPercent / 100
	v.Panels[buffer.Header] = Rect{X: 0, Y: y, Width: headerWidth, Height: middleHeight}
	v.Panels[buffer.Payload] = Rect{X: headerWidth, Y: y, Width: width - headerWidth, Height: middleHeight}
	y += middleHeight

	v.Panels[buffer.SigningKey] = Rect{X: 0, Y: y, Width: width, Height: keyHeight}

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"tokenHeight", tokenHeight,
		"middleHeight", middleHeight,
		"keyHeight", keyHeight,
		"headerWidth", headerWidth,
	)
}

// Panel returns the region of f's panel.
func (v *ViewContext) Panel(f buffer.Field) Rect {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.Panels[f]
}

// Ready reports whether a size has been set.
func (v *ViewContext) Ready() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.TerminalWidth > 0
}
