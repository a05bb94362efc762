package app

import (
	"sync"

	"github.com/odvcencio/monika/pkg/errors"
	"github.com/odvcencio/monika/pkg/logging"
	"github.com/odvcencio/monika/pkg/ui/backend"
)

// Session owns the terminal-mode lifecycle. Begin enters the isolated
// rendering mode (alternate screen, raw input); End restores the caller's
// terminal. Restoration runs at most once across every exit path: normal
// return, fatal loop error, and panic via Guard.
type Session struct {
	backend backend.Backend
	logger  *logging.Logger
	restore sync.Once
}

// NewSession creates a session over a terminal backend.
func NewSession(b backend.Backend, logger *logging.Logger) *Session {
	return &Session{backend: b, logger: logger}
}

// Begin puts the terminal into the rendering mode.
func (s *Session) Begin() error {
	if err := s.backend.Init(); err != nil {
		return errors.Wrap(err, errors.ErrCodeSessionInit, "failed to initialize terminal")
	}
	s.backend.HideCursor()
	s.logger.Info(logging.CategorySession, "session.begin", "terminal session started", nil)
	return nil
}

// End restores the terminal to its prior mode. Calls after the first are
// no-ops, so End composes safely with Guard.
func (s *Session) End() error {
	s.restore.Do(func() {
		s.backend.Fini()
		s.logger.Info(logging.CategorySession, "session.end", "terminal session restored", nil)
	})
	return nil
}

// Guard is the crash guard: deferred around the loop, it restores the
// terminal before re-raising a panic, so the runtime's fault report lands
// on a sane terminal instead of disappearing into the alternate screen.
func (s *Session) Guard() {
	if r := recover(); r != nil {
		s.logger.Error(logging.CategorySession, "session.panic", "restoring terminal after panic",
			map[string]any{"panic": r})
		_ = s.End()
		panic(r)
	}
}
