package app

import "github.com/odvcencio/monika/pkg/ui/terminal"

// MessageForKey maps a key press to its Message. Only plain rune presses
// are mapped; everything else produces MessageNone.
//
//	j -> increment
//	k -> decrement
//	q -> quit
func MessageForKey(ev terminal.KeyEvent) Message {
	if ev.Key != terminal.KeyRune || ev.Alt || ev.Ctrl {
		return MessageNone
	}
	switch ev.Rune {
	case 'j':
		return MessageIncrement
	case 'k':
		return MessageDecrement
	case 'q':
		return MessageQuit
	default:
		return MessageNone
	}
}
