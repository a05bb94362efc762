package app

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/monika/pkg/ui/backend"
)

// View projects the Model onto the drawable area: two vertically stacked
// bordered panels of equal height, inset by a 1-cell margin, each showing
// the counter and the raw API key bytes.
//
// Displaying the raw key bytes is a known information exposure; changing
// the displayed fields is a product decision, not a rendering one.
func View(m Model, target backend.RenderTarget) {
	w, h := target.Size()
	if w <= 2 || h <= 2 {
		return
	}

	// 1-cell margin all around.
	inner := backend.NewSubTarget(target, 1, 1, w-2, h-2)
	innerW, innerH := inner.Size()
	if innerW < 2 || innerH < 2 {
		return
	}

	text := fmt.Sprintf("Counter: %d, API_KEY: %v", m.Counter, m.APIKey)

	topH := innerH / 2
	regions := []*backend.SubTarget{
		backend.NewSubTarget(inner, 0, 0, innerW, topH),
		backend.NewSubTarget(inner, 0, topH, innerW, innerH-topH),
	}

	for i, region := range regions {
		drawPanel(region, fmt.Sprintf("Block %d", i), text)
	}
}

// drawPanel draws a bordered box filling the target, with the title overlaid
// on the top border and the text on the first interior line, clipped to fit.
func drawPanel(t backend.RenderTarget, title, text string) {
	w, h := t.Size()
	if w < 2 || h < 2 {
		return
	}

	style := backend.DefaultStyle()
	titleStyle := style.Bold(true)

	t.SetContent(0, 0, '┌', style)
	t.SetContent(w-1, 0, '┐', style)
	t.SetContent(0, h-1, '└', style)
	t.SetContent(w-1, h-1, '┘', style)
	for x := 1; x < w-1; x++ {
		t.SetContent(x, 0, '─', style)
		t.SetContent(x, h-1, '─', style)
	}
	for y := 1; y < h-1; y++ {
		t.SetContent(0, y, '│', style)
		t.SetContent(w-1, y, '│', style)
	}

	drawText(t, 1, 0, w-2, title, titleStyle)
	drawText(t, 1, 1, w-2, text, style)
}

// drawText draws a single line of text starting at (x, y), clipped to
// maxWidth cells. Wide runes that would straddle the clip edge are dropped.
func drawText(t backend.RenderTarget, x, y, maxWidth int, text string, style backend.Style) {
	col := x
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if col+rw > x+maxWidth {
			return
		}
		t.SetContent(col, y, r, style)
		col += rw
	}
}
