// Package clipboard copies account fields to the system clipboard and
// optionally clears them again after a delay.
package clipboard

//go:generate mockgen -source=clipboard.go -destination=../mock/clipboard_mock.go -package=mock

import (
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Clipboard receives copied text.
type Clipboard interface {
	Copy(text string) error
}

// Backend is the raw clipboard access used by System.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemBackend) WriteAll(text string) error { return clipboard.WriteAll(text) }

// System writes to the OS clipboard.
type System struct {
	backend    Backend
	clearAfter time.Duration
	logger     *logger.Logger

	mu      sync.Mutex
	timer   *time.Timer
	pending chan struct{}
}

// Option customizes System.
type Option func(*System)

// WithClearAfter clears the clipboard d after each copy, provided it still
// holds the copied text. Zero disables clearing.
func WithClearAfter(d time.Duration) Option {
	return func(s *System) {
		s.clearAfter = d
	}
}

// WithBackend replaces the OS clipboard.
func WithBackend(b Backend) Option {
	return func(s *System) {
		s.backend = b
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(s *System) {
		s.logger = l.WithComponent("clipboard")
	}
}

func NewSystem(opts ...Option) *System {
	s := &System{
		backend: systemBackend{},
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Unsupported reports whether the OS clipboard is unavailable, e.g. no
// xclip or xsel on Linux.
func Unsupported() bool {
	return clipboard.Unsupported
}

func (s *System) Copy(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()
	if err := s.backend.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	if s.clearAfter <= 0 {
		return nil
	}

	done := make(chan struct{})
	s.pending = done
	s.timer = time.AfterFunc(s.clearAfter, func() {
		defer close(done)
		s.clearIfUnchanged(text)
	})
	return nil
}

// ClearAfter returns the configured delay.
func (s *System) ClearAfter() time.Duration {
	return s.clearAfter
}

// Wait blocks until a scheduled clear has run. It returns immediately when
// nothing is scheduled.
func (s *System) Wait() {
	s.mu.Lock()
	done := s.pending
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (s *System) stopLocked() {
	if s.timer != nil && s.timer.Stop() {
		close(s.pending)
	}
	s.timer, s.pending = nil, nil
}

func (s *System) clearIfUnchanged(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.backend.ReadAll()
	if err != nil {
		s.logger.Warn().Err(err).Msg("read clipboard before clearing")
		return
	}
	if current != text {
		return
	}
	if err = s.backend.WriteAll(""); err != nil {
		s.logger.Warn().Err(err).Msg("clear clipboard")
		return
	}
	s.logger.Debug().Msg("clipboard cleared")
}

// Nop discards copied text.
type Nop struct{}

func (Nop) Copy(string) error { return nil }
