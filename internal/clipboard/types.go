package clipboard

import "sync"

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

var (
	_ Clipboard = (*System)(nil)
	_ Clipboard = (*Memory)(nil)
)

// Memory is a process-local clipboard used when no display is available
// and in tests.
type Memory struct {
	mu   sync.Mutex
	text string
	Err  error // returned by every call when set
}

// ReadText returns the last text written.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	return m.text, nil
}

// WriteText stores text.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.text = text
	return nil
}
