// Package ui renders jwtui's screen: a one-line help bar above four
// bordered text panels.
//
// # Layout System
//
// ViewContext computes every region from the terminal size:
//
//	┌──────────────────────────────────────┐
//	│ help line (1 row)                    │
//	├──────────────────────────────────────┤
//	│ JWT String (20%)                     │
//	├──────────────────┬───────────────────┤
//	│ Header (50%)     │ Payload           │
//	├──────────────────┴───────────────────┤
//	│ Signing Key (remaining rows)         │
//	└──────────────────────────────────────┘
//
// # Components
//
// Panels draws each buffer inside a rounded border with its title set into
// the top edge. The focused panel's border uses the theme's focus color
// (yellow by default). Each panel keeps its own scroll offset so the cursor
// stays visible, and Caret maps the focused cursor to a screen cell.
//
// HelpBar lists the keys that matter in the current mode using the bubbles
// help component, with a flash message or field counter on the right.
//
// # Theming
//
// Colors come from the active Theme. SetTheme rebuilds every style, and
// FormTheme adapts the palette for huh forms.
package ui
