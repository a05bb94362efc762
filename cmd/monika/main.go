// Command monika is a keychain-backed counter TUI.
//
//	monika login <API_KEY>   store a 32-byte API key in the OS keychain
//	monika run               run the interactive counter (default)
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/odvcencio/monika/pkg/app"
	"github.com/odvcencio/monika/pkg/errors"
	"github.com/odvcencio/monika/pkg/keystore"
	"github.com/odvcencio/monika/pkg/logging"
	"github.com/odvcencio/monika/pkg/ui/backend"
	tcellbackend "github.com/odvcencio/monika/pkg/ui/backend/tcell"
)

// Version information - set via ldflags during build
var (
	version   = "1.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// newStore and newBackend allow tests to stub the keychain and the
// terminal without touching the OS.
var newStore = func() keystore.Store { return keystore.Keychain{} }

var newBackend = func() (backend.Backend, error) { return tcellbackend.New() }

var isInteractiveTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return reportError(runApp())
	}

	switch args[0] {
	case "--version", "-v", "version":
		printVersion()
		return exitOK
	case "--help", "-h", "help":
		printHelp()
		return exitOK
	case "login":
		return reportError(runLogin(args[1:]))
	case "run":
		return reportError(runApp())
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		printHelp()
		return exitFailure
	}
}

// runLogin validates the key length and stores the key in the keychain.
// Validation happens before the store call so a wrong-sized key is never
// written.
func runLogin(args []string) error {
	if len(args) != 1 {
		return errors.New(errors.ErrCodeConfigInvalid, "login requires exactly one API key argument").
			WithRemediation("usage: monika login <API_KEY>")
	}

	apiKey := args[0]
	fmt.Printf("Registering API key: %s\n", apiKey)

	if err := keystore.StoreAPIKey(newStore(), apiKey); err != nil {
		return err
	}

	fmt.Println("API key successfully stored.")
	return nil
}

// runApp loads the stored key, verifies the terminal is interactive, and
// hands the key bytes to the application loop.
func runApp() error {
	key, err := keystore.LoadAPIKey(newStore())
	if err != nil {
		return err
	}

	if !isInteractiveTerminal() {
		return errors.New(errors.ErrCodeSessionInit, "stdin is not a terminal")
	}

	logger, err := logging.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	b, err := newBackend()
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSessionInit, "failed to create terminal backend")
	}

	return app.Run(b, key, logger)
}

func reportError(err error) int {
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var structured *errors.Error
	if errors.As(err, &structured) {
		for _, tip := range structured.Remediation {
			fmt.Fprintf(os.Stderr, "  %s\n", tip)
		}
	}
	return exitCodeForError(err)
}

func printVersion() {
	fmt.Printf("monika %s (%s, built %s)\n", version, commit, buildDate)
}

func printHelp() {
	fmt.Print(`monika - keychain-backed counter TUI

Usage:
  monika login <API_KEY>   Store a 32-byte API key in the OS keychain
  monika run               Run the application (default)
  monika version           Print version information

Keys:
  j  increment counter
  k  decrement counter
  q  quit
`)
}
