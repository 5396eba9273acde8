package app

import "github.com/zhubert/jwtui/internal/buffer"

// ClipboardResultMsg reports the outcome of copying a field to the system
// clipboard. The terminal copy (OSC 52) is sent regardless.
type ClipboardResultMsg struct {
	Field buffer.Field
	Err   error
}
