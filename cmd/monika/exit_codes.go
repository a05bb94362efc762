package main

import "github.com/odvcencio/monika/pkg/errors"

// Exit codes: 0 success, 1 generic failure, 2 configuration problem
// (bad or missing API key), 3 keychain I/O failure, 4 terminal failure.
const (
	exitOK       = 0
	exitFailure  = 1
	exitConfig   = 2
	exitKeychain = 3
	exitTerminal = 4
)

func exitCodeForError(err error) int {
	if err == nil {
		return exitOK
	}
	switch errors.CodeOf(err) {
	case errors.ErrCodeConfigInvalid:
		return exitConfig
	case errors.ErrCodeKeychainRead, errors.ErrCodeKeychainWrite:
		return exitKeychain
	case errors.ErrCodeSessionInit, errors.ErrCodeSessionRestore,
		errors.ErrCodeInputRead, errors.ErrCodeRender:
		return exitTerminal
	default:
		return exitFailure
	}
}
