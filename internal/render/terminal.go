package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// TerminalSurface draws frames onto a tcell screen, one character per cell,
// with a status line under the frame.
type TerminalSurface struct {
	screen   tcell.Screen
	viewport Viewport
	status   string
}

// NewTerminalSurface creates a surface for the given screen.
func NewTerminalSurface(screen tcell.Screen) *TerminalSurface {
	return &TerminalSurface{screen: screen}
}

// SetStatus sets the text shown under the frame from the next Present on.
func (s *TerminalSurface) SetStatus(text string) { s.status = text }

// Viewport returns the placement used by the last Present.
func (s *TerminalSurface) Viewport() Viewport { return s.viewport }

// Present draws f and shows the screen.
func (s *TerminalSurface) Present(f *Frame) {
	w, h := s.screen.Size()
	// Keep one row for the status line.
	s.viewport.Fit(f.Width, f.Height+1, w, h)
	s.screen.Clear()

	for y := 0; y < f.Height; y++ {
		skip := false
		for x := 0; x < f.Width; x++ {
			if skip {
				// Column already taken by the previous wide glyph.
				skip = false
				continue
			}
			sx, sy, onScreen := s.viewport.FrameToScreen(x, y)
			if !onScreen {
				continue
			}
			c := f.At(x, y)
			style := tcell.StyleDefault.Foreground(c.Fg.TCell()).Background(c.Bg.TCell())
			skip = s.putGlyph(sx, sy, c.Char, style)
		}
	}

	if sx, sy, onScreen := s.viewport.FrameToScreen(0, f.Height); onScreen && s.status != "" {
		s.drawText(sx, sy, s.status, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
	s.screen.Show()
}

// putGlyph draws a single glyph (ASCII or multi-rune) at screen position (x, y)
// and reports whether it was two columns wide.
func (s *TerminalSurface) putGlyph(x, y int, glyph string, style tcell.Style) bool {
	runes := []rune(glyph)
	if len(runes) == 0 {
		s.screen.SetContent(x, y, ' ', nil, style)
		return false
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	s.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		s.screen.SetContent(x+1, y, ' ', nil, style)
		return true
	}
	return false
}

func (s *TerminalSurface) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		if col >= s.viewport.ScreenWidth {
			return
		}
		s.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
