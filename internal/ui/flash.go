package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// FlashType selects the color of a flash message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashMessage is a short-lived notice shown in the help bar.
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration.
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

func (f *FlashMessage) style() string {
	switch f.Type {
	case FlashError:
		return FlashErrorStyle.Render(f.Text)
	case FlashWarning:
		return FlashWarningStyle.Render(f.Text)
	default:
		return FlashInfoStyle.Render(f.Text)
	}
}

// FlashTickMsg asks the help bar to drop an expired flash.
type FlashTickMsg time.Time

// FlashTick schedules the next expiry check.
func FlashTick() tea.Cmd {
	return tea.Tick(DefaultFlashDuration, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}
