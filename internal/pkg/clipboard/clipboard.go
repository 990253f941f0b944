package clipboard

import (
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

const CONFIRMATION_WINDOW = 2 * time.Second

// Button copies a fixed string and remembers for a short window that it did.
type Button struct {
	Text   string
	Window time.Duration

	write  func(string) error
	mu     sync.Mutex
	copied bool
	timer  *time.Timer
}

type Option func(*Button)

func WithWriter(write func(string) error) Option {
	return func(b *Button) {
		b.write = write
	}
}

func WithWindow(window time.Duration) Option {
	return func(b *Button) {
		b.Window = window
	}
}

func NewButton(text string, opts ...Option) *Button {
	b := &Button{
		Text:   text,
		Window: CONFIRMATION_WINDOW,
		write:  clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Supported reports whether the system clipboard can be written.
func Supported() bool {
	return !clipboard.Unsupported
}

func (b *Button) Copy() error {
	if err := b.write(b.Text); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.copied = true
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.Window, func() {
		b.mu.Lock()
		b.copied = false
		b.mu.Unlock()
	})

	return nil
}

func (b *Button) Copied() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.copied
}

func (b *Button) Label() string {
	if b.Copied() {
		return "Copied!"
	}
	return "Copy"
}
