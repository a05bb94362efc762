package app

import (
	"time"

	"github.com/odvcencio/monika/pkg/errors"
	"github.com/odvcencio/monika/pkg/logging"
	"github.com/odvcencio/monika/pkg/ui/backend"
	"github.com/odvcencio/monika/pkg/ui/terminal"
)

// PollTimeout bounds the wait for input each cycle. A timeout produces no
// message and hands control back to the render phase, which is also what
// caps the latency of noticing a terminated model.
const PollTimeout = 250 * time.Millisecond

// Loop drives the render / poll / update cycle. It owns the current Model
// exclusively: nothing else reads or replaces it while the loop runs.
type Loop struct {
	backend backend.Backend
	session *Session
	logger  *logging.Logger
	model   Model
	events  chan terminal.Event
	done    chan struct{}
}

// NewLoop creates a loop over a terminal backend with the initial Model
// built around the given API key payload.
func NewLoop(b backend.Backend, apiKey [APIKeyLen]byte, logger *logging.Logger) *Loop {
	return &Loop{
		backend: b,
		session: NewSession(b, logger),
		logger:  logger,
		model:   NewModel(apiKey),
		events:  make(chan terminal.Event, 16),
		done:    make(chan struct{}),
	}
}

// Model returns the loop's current Model. Meaningful before Run and after
// Run returns; the loop goroutine owns it in between.
func (l *Loop) Model() Model {
	return l.model
}

// Run executes the loop until the Model reaches StateDone or a terminal
// I/O failure occurs. The terminal is restored on every exit path,
// including panics, before the error or fault surfaces to the caller.
func (l *Loop) Run() error {
	defer l.session.Guard()

	if err := l.session.Begin(); err != nil {
		return err
	}
	defer l.session.End()
	defer close(l.done)

	go l.pump()

	for {
		// Render phase: pure projection of the current Model, then commit.
		l.backend.Clear()
		View(l.model, l.backend)
		if err := l.backend.Show(); err != nil {
			return errors.Wrap(err, errors.ErrCodeRender, "failed to commit frame")
		}

		// Input phase: bounded wait, at most one message.
		msg, err := l.poll()
		if err != nil {
			return err
		}

		// Update-drain phase: apply the message and every follow-up before
		// rendering again.
		if msg != MessageNone {
			l.model = Drain(l.model, msg)
		}

		if l.model.RunningState == StateDone {
			l.logger.Info(logging.CategoryUpdate, "loop.exit", "model reached done state", nil)
			return nil
		}
	}
}

// poll waits up to PollTimeout for one input event and maps it to a
// Message. Timeouts and unmapped input produce MessageNone. A closed event
// source while the model is still running is a fatal input error.
func (l *Loop) poll() (Message, error) {
	timer := time.NewTimer(PollTimeout)
	defer timer.Stop()

	select {
	case ev, ok := <-l.events:
		if !ok {
			return MessageNone, errors.New(errors.ErrCodeInputRead, "input event source closed")
		}
		switch e := ev.(type) {
		case terminal.KeyEvent:
			return MessageForKey(e), nil
		case terminal.ResizeEvent:
			l.backend.Sync()
			return MessageNone, nil
		default:
			return MessageNone, nil
		}
	case <-timer.C:
		return MessageNone, nil
	}
}

// pump moves backend events onto the loop's channel. It exits when the
// backend is finalized (PollEvent returns nil) or when the loop is done.
func (l *Loop) pump() {
	defer close(l.events)
	for {
		ev := l.backend.PollEvent()
		if ev == nil {
			return
		}
		select {
		case l.events <- ev:
		case <-l.done:
			return
		}
	}
}

// Run starts the application loop on a backend with the given API key.
func Run(b backend.Backend, apiKey [APIKeyLen]byte, logger *logging.Logger) error {
	return NewLoop(b, apiKey, logger).Run()
}
