// Package term owns the terminal for the lifetime of a run: raw mode, no
// echo, hidden cursor, and the color pair used for live cells. It is the only
// package that talks to tcell; the core sees the model.Display interface and
// a key channel.
package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// QuitKey ends the session when pressed.
const QuitKey = 'q'

// Session is a full-screen terminal takeover. Acquire it with NewSession and
// release it with Close on every exit path.
type Session struct {
	screen     tcell.Screen
	aliveStyle tcell.Style
	keys       chan rune
}

// NewSession acquires the terminal: enters raw, no-echo, full-screen mode,
// hides the cursor, and starts the key event pump. On failure the terminal is
// left untouched.
func NewSession() (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[NewSession] failed to create screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewSession] failed to initialize screen")
	}

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	s := &Session{
		screen:     screen,
		aliveStyle: tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorGreen),
		keys:       make(chan rune, 16),
	}
	go s.pumpKeys()

	return s, nil
}

// Close restores the terminal to its previous mode. Safe to defer alongside
// other cleanup; the pump goroutine exits once the screen is finalized.
func (s *Session) Close() {
	s.screen.Fini()
}

// Keys returns the channel of pressed keys. The controller polls it with a
// non-blocking receive each cycle.
func (s *Session) Keys() <-chan rune {
	return s.keys
}

// WriteBlock draws the two-character cell at board coordinate (x, y). Alive
// cells get the color pair, dead cells are blank in the default style.
func (s *Session) WriteBlock(x, y int, alive bool) {
	style := tcell.StyleDefault
	if alive {
		style = s.aliveStyle
	}
	s.screen.SetContent(x*2, y, ' ', nil, style)
	s.screen.SetContent(x*2+1, y, ' ', nil, style)
}

// StatusLine writes a line of text at the given row in the default style.
func (s *Session) StatusLine(row int, text string) {
	for i, r := range text {
		s.screen.SetContent(i, row, r, nil, tcell.StyleDefault)
	}
}

// Refresh pushes pending drawing to the terminal.
func (s *Session) Refresh() {
	s.screen.Show()
}

// pumpKeys forwards key events into the key channel. tcell has no
// non-blocking read, so the blocking PollEvent loop runs here and the
// controller polls the channel instead. Ctrl+C and Escape are delivered as
// the quit key so raw mode is never stranded by an interrupt. PollEvent
// returns nil after Fini, ending the loop.
func (s *Session) pumpKeys() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			var key rune
			switch {
			case ev.Key() == tcell.KeyRune:
				key = ev.Rune()
			case ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape:
				key = QuitKey
			default:
				continue
			}
			select {
			case s.keys <- key:
			default:
				// Drop keys rather than stall the pump; only 'q' matters.
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}
