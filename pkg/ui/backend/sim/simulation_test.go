package sim

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/odvcencio/monika/pkg/ui/backend"
	"github.com/odvcencio/monika/pkg/ui/terminal"
)

func TestBackend_BasicRendering(t *testing.T) {
	sim := New(20, 5)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	style := backend.DefaultStyle().Foreground(backend.ColorWhite)
	text := "Hello, World!"
	for i, r := range text {
		sim.SetContent(i, 0, r, style)
	}
	if err := sim.Show(); err != nil {
		t.Fatalf("Show failed: %v", err)
	}

	capture := sim.Capture()
	lines := strings.Split(capture, "\n")
	if len(lines) != 5 {
		t.Errorf("expected 5 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Hello, World!") {
		t.Errorf("expected first line to start with 'Hello, World!', got %q", lines[0])
	}
}

func TestBackend_Size(t *testing.T) {
	sim := New(80, 24)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	w, h := sim.Size()
	if w != 80 || h != 24 {
		t.Errorf("Size() = (%d, %d), want (80, 24)", w, h)
	}
}

func TestBackend_KeyInjection(t *testing.T) {
	sim := New(20, 5)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	sim.InjectKeyRune('j')

	ev := sim.PollEvent()
	key, ok := ev.(terminal.KeyEvent)
	if !ok {
		t.Fatalf("expected KeyEvent, got %T", ev)
	}
	if key.Key != terminal.KeyRune || key.Rune != 'j' {
		t.Errorf("got key %+v, want rune 'j'", key)
	}
}

func TestBackend_FindText(t *testing.T) {
	sim := New(20, 5)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	for i, r := range "target" {
		sim.SetContent(3+i, 2, r, backend.DefaultStyle())
	}
	_ = sim.Show()

	x, y := sim.FindText("target")
	if x != 3 || y != 2 {
		t.Errorf("FindText = (%d, %d), want (3, 2)", x, y)
	}
	if sim.ContainsText("absent") {
		t.Error("ContainsText found absent text")
	}
}

func TestBackend_FindTextReportsCellColumns(t *testing.T) {
	sim := New(20, 5)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	// Box-drawing runes are multibyte but one cell wide. Text sitting to
	// the right of them must still be located by its cell column.
	style := backend.DefaultStyle()
	sim.SetContent(0, 1, '│', style)
	sim.SetContent(1, 1, '─', style)
	for i, r := range "title" {
		sim.SetContent(2+i, 1, r, style)
	}
	_ = sim.Show()

	x, y := sim.FindText("title")
	if x != 2 || y != 1 {
		t.Errorf("FindText = (%d, %d), want cell position (2, 1)", x, y)
	}
}

func TestBackend_ShowErrorInjection(t *testing.T) {
	sim := New(20, 5)
	if err := sim.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer sim.Fini()

	boom := stderrors.New("boom")
	sim.SetShowError(boom)
	if err := sim.Show(); !stderrors.Is(err, boom) {
		t.Errorf("Show() = %v, want injected error", err)
	}

	sim.SetShowError(nil)
	if err := sim.Show(); err != nil {
		t.Errorf("Show() after clearing = %v", err)
	}
}
