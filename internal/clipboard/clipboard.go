// Package clipboard copies field text to and from the system clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/jwtui/internal/errors"
	"github.com/zhubert/jwtui/internal/logger"
)

// Backend functions, replaced in tests.
var (
	initFn  = clipboard.Init
	readFn  = func() []byte { return clipboard.Read(clipboard.FmtText) }
	writeFn = func(b []byte) { clipboard.Write(clipboard.FmtText, b) }
)

// System is the platform clipboard. Init runs once, on first use; a failed
// Init is remembered so a headless session does not retry on every copy.
type System struct {
	once    sync.Once
	initErr error
}

// NewSystem returns the platform clipboard.
func NewSystem() *System {
	return &System{}
}

// Init initializes the clipboard. This is safe to call multiple times.
func (s *System) Init() error {
	s.once.Do(func() {
		if err := initFn(); err != nil {
			logger.WithComponent("clipboard").Warn("Failed to initialize", "error", err)
			s.initErr = errors.ClipboardFailed("Init", err)
			return
		}
		logger.WithComponent("clipboard").Debug("Initialized successfully")
	})
	return s.initErr
}

// ReadText reads text from the clipboard. An empty clipboard is not an error.
func (s *System) ReadText() (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}
	return string(readFn()), nil
}

// WriteText replaces the clipboard contents with text.
func (s *System) WriteText(text string) error {
	if err := s.Init(); err != nil {
		return err
	}
	writeFn([]byte(text))
	logger.WithComponent("clipboard").Debug("Wrote text", "bytes", len(text))
	return nil
}
