package app

import "fmt"

// counterBand is the soft band on the counter. Stepping outside it emits a
// follow-up reset.
const counterBand = 50

// Update is the pure state transition. It returns the next Model and an
// optional follow-up Message (MessageNone when there is none). It performs
// no I/O and cannot fail; an unknown message tag is a programming error and
// panics.
func Update(m Model, msg Message) (Model, Message) {
	switch msg {
	case MessageIncrement:
		next := m
		next.Counter++
		// The band check reads the pre-increment counter, so the step that
		// crosses the band still applies before the drained reset lands.
		if m.Counter > counterBand {
			return next, MessageReset
		}
		return next, MessageNone

	case MessageDecrement:
		next := m
		next.Counter--
		if m.Counter < -counterBand {
			return next, MessageReset
		}
		return next, MessageNone

	case MessageReset:
		next := m
		next.Counter = 0
		return next, MessageNone

	case MessageQuit:
		next := m
		next.RunningState = StateDone
		return next, MessageNone

	default:
		panic(fmt.Sprintf("update: unhandled message %q", msg))
	}
}

// Drain applies msg and then every follow-up Update produces, returning the
// settled Model. Follow-ups are consumed synchronously, in order, without
// rendering in between.
func Drain(m Model, msg Message) Model {
	for msg != MessageNone {
		m, msg = Update(m, msg)
	}
	return m
}
