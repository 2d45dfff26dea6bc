package tui

import (
	"time"

	"github.com/idilsaglam/dailytodo/internal/logging"
	"github.com/idilsaglam/dailytodo/internal/ui"
)

// Option configures a Model.
type Option func(*Model)

func WithTheme(t ui.Theme) Option {
	return func(m *Model) {
		m.theme = t
	}
}

func WithLogger(l *logging.Logger) Option {
	return func(m *Model) {
		m.log = l
	}
}

// WithScrollDelay sets how long after opening the form the list scrolls to
// its last card.
func WithScrollDelay(d time.Duration) Option {
	return func(m *Model) {
		if d >= 0 {
			m.scrollDelay = d
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(m *Model) {
		if write != nil {
			m.copyText = write
		}
	}
}

// WithSize sets the terminal size used before the first WindowSizeMsg.
func WithSize(width, height int) Option {
	return func(m *Model) {
		if width > 0 && height > 0 {
			m.width, m.height = width, height
		}
	}
}
