package model

import "time"

const quitPrompt = "Press 'q' to quit."

// Display is the surface the renderer draws on. The terminal session
// implements it; tests substitute an in-memory fake.
type Display interface {
	// WriteBlock draws the two-character cell at board coordinate (x, y),
	// colored when alive and blank otherwise.
	WriteBlock(x, y int, alive bool)
	// StatusLine writes a full line of text at the given row.
	StatusLine(row int, text string)
	// Refresh makes everything drawn so far visible.
	Refresh()
}

// Renderer draws board snapshots to a display and paces frame timing.
type Renderer struct {
	display    Display
	frameDelay time.Duration
}

// NewRenderer creates a renderer drawing to the given display. frameDelay is
// how long each frame stays on screen before the next may replace it.
func NewRenderer(display Display, frameDelay time.Duration) *Renderer {
	return &Renderer{
		display:    display,
		frameDelay: frameDelay,
	}
}

// Draw renders one board snapshot: every cell row by row from the origin,
// then the quit prompt, then a refresh. After the frame is visible the
// renderer sleeps for the frame delay so the generation can be seen.
func (r *Renderer) Draw(b *Board) {
	for y := 0; y < b.Dim(); y++ {
		for x := 0; x < b.Dim(); x++ {
			r.display.WriteBlock(x, y, b.Alive(x, y))
		}
	}
	r.display.StatusLine(b.Dim(), quitPrompt)
	r.display.Refresh()

	time.Sleep(r.frameDelay)
}
