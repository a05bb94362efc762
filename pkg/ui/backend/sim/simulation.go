// Package sim provides a simulation backend for testing.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/monika/pkg/ui/backend"
	"github.com/odvcencio/monika/pkg/ui/backend/tcell"
	"github.com/odvcencio/monika/pkg/ui/terminal"
)

// Backend is a testable backend using tcell's simulation screen.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	width  int
	height int

	mu      sync.Mutex
	showErr error
}

// New creates a new simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)

	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
		width:   width,
		height:  height,
	}
}

// Init initializes the simulation screen. The configured size is re-applied
// because tcell resets a simulation screen to 80x25 during Init.
func (s *Backend) Init() error {
	if err := s.Backend.Init(); err != nil {
		return err
	}
	s.screen.SetSize(s.width, s.height)
	return nil
}

// SetShowError makes every subsequent Show return err.
// Used to exercise the fatal render-failure path.
func (s *Backend) SetShowError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showErr = err
}

// Show synchronizes the buffer, or fails if a show error was injected.
func (s *Backend) Show() error {
	s.mu.Lock()
	err := s.showErr
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return s.Backend.Show()
}

// InjectKey injects a key press into the simulation.
func (s *Backend) InjectKey(key terminal.Key, r rune) {
	_ = s.PostEvent(terminal.KeyEvent{Key: key, Rune: r})
}

// InjectKeyRune injects a regular character keypress.
func (s *Backend) InjectKeyRune(r rune) {
	s.InjectKey(terminal.KeyRune, r)
}

// InjectKeyString injects a string as a sequence of key events.
func (s *Backend) InjectKeyString(str string) {
	for _, r := range str {
		s.InjectKeyRune(r)
	}
}

// InjectResize injects a resize event.
func (s *Backend) InjectResize(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.screen.SetSize(width, height)
	s.mu.Unlock()
	_ = s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// Capture captures the current screen content as a string.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	var lines []string

	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			mainc, _, _, _ := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// FindText searches for text on the screen and returns its cell position.
// Capture emits one rune per cell, so the match is located by rune index;
// a byte index would drift right of every multibyte rune on the line.
func (s *Backend) FindText(text string) (x, y int) {
	capture := s.Capture()
	lines := strings.Split(capture, "\n")
	want := []rune(text)

	for row, line := range lines {
		runes := []rune(line)
		for col := 0; col+len(want) <= len(runes); col++ {
			if string(runes[col:col+len(want)]) == text {
				return col, row
			}
		}
	}
	return -1, -1
}

// ContainsText returns true if the text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, y := s.FindText(text)
	return x >= 0 && y >= 0
}

// CaptureCell returns the rune at a single cell.
func (s *Backend) CaptureCell(x, y int) rune {
	s.mu.Lock()
	defer s.mu.Unlock()

	mainc, _, _, _ := s.screen.GetContent(x, y)
	return mainc
}

// Ensure Backend implements backend.Backend
var _ backend.Backend = (*Backend)(nil)
