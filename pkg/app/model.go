// Package app implements the interactive counter application: an immutable
// Model, a pure Update transition, a pure View projection, and the loop
// driver and terminal session that run them.
package app

// APIKeyLen is the byte length of the opaque payload carried by the Model.
const APIKeyLen = 32

// RunningState governs loop termination. It moves Running -> Done exactly
// once and never back.
type RunningState int

const (
	StateRunning RunningState = iota
	StateDone
)

// Message is an enumerated intent consumed by Update. Messages come from
// mapped key presses or are synthesized by Update itself as follow-ups.
// MessageNone is the absence of a message, never passed to Update.
type Message int

const (
	MessageNone Message = iota
	MessageIncrement
	MessageDecrement
	MessageReset
	MessageQuit
)

// String returns the message tag name, for logs and panics.
func (m Message) String() string {
	switch m {
	case MessageNone:
		return "none"
	case MessageIncrement:
		return "increment"
	case MessageDecrement:
		return "decrement"
	case MessageReset:
		return "reset"
	case MessageQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Model is the single state value driving rendering and transitions.
// Transitions produce a new Model value; the loop driver owns the current
// one and replaces it wholesale each processed message.
type Model struct {
	Counter      int
	RunningState RunningState
	APIKey       [APIKeyLen]byte
}

// NewModel creates the initial Model around an opaque API key payload.
func NewModel(apiKey [APIKeyLen]byte) Model {
	return Model{
		Counter:      0,
		RunningState: StateRunning,
		APIKey:       apiKey,
	}
}
