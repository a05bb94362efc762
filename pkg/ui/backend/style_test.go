package backend

import "testing"

func TestStyleBuilder(t *testing.T) {
	s := DefaultStyle().Foreground(ColorGreen).Background(ColorBlack).Bold(true)

	fg, bg, attrs := s.Decompose()
	if fg != ColorGreen {
		t.Errorf("fg = %v, want green", fg)
	}
	if bg != ColorBlack {
		t.Errorf("bg = %v, want black", bg)
	}
	if attrs&AttrBold == 0 {
		t.Error("bold attribute not set")
	}

	fg, bg, attrs = s.Bold(false).Decompose()
	if attrs&AttrBold != 0 {
		t.Error("bold attribute not cleared")
	}

	fg, bg, attrs = DefaultStyle().Decompose()
	if fg != ColorDefault || bg != ColorDefault || attrs != 0 {
		t.Errorf("default style = (%v, %v, %v)", fg, bg, attrs)
	}
}

func TestColorRGB(t *testing.T) {
	c := ColorRGB(10, 20, 30)
	if !c.IsRGB() {
		t.Fatal("RGB color not flagged as RGB")
	}
	r, g, b := c.RGB()
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("RGB() = (%d, %d, %d)", r, g, b)
	}

	if ColorRed.IsRGB() {
		t.Error("palette color flagged as RGB")
	}
}

// cellRecorder records SetContent calls for SubTarget tests.
type cellRecorder struct {
	w, h  int
	cells map[[2]int]rune
}

func newCellRecorder(w, h int) *cellRecorder {
	return &cellRecorder{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (c *cellRecorder) Size() (int, int) { return c.w, c.h }

func (c *cellRecorder) SetContent(x, y int, mainc rune, style Style) {
	c.cells[[2]int{x, y}] = mainc
}

func TestSubTarget_OffsetAndClip(t *testing.T) {
	parent := newCellRecorder(20, 10)
	sub := NewSubTarget(parent, 3, 2, 5, 4)

	if w, h := sub.Size(); w != 5 || h != 4 {
		t.Fatalf("Size() = (%d, %d), want (5, 4)", w, h)
	}

	sub.SetContent(0, 0, 'a', DefaultStyle())
	sub.SetContent(4, 3, 'b', DefaultStyle())
	if parent.cells[[2]int{3, 2}] != 'a' {
		t.Error("origin cell not offset into the parent")
	}
	if parent.cells[[2]int{7, 5}] != 'b' {
		t.Error("far corner cell not offset into the parent")
	}

	// Out-of-bounds writes are clipped, not forwarded.
	sub.SetContent(5, 0, 'x', DefaultStyle())
	sub.SetContent(0, 4, 'x', DefaultStyle())
	sub.SetContent(-1, 0, 'x', DefaultStyle())
	if len(parent.cells) != 2 {
		t.Errorf("clipped writes reached the parent: %v", parent.cells)
	}
}
