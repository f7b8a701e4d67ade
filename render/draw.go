package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/speaker-cleaner/display"
)

const (
	buttonWidth  = 20
	buttonHeight = 7
	ringGlyph    = '●'
	trackGlyph   = '·'
	maxRingRY    = 10
	maxWaveWidth = 48
	hintIdle     = "enter start · q quit"
	hintRunning  = "x cancel · ctrl-z background · q quit"
	speakerGlyph = "▐█◀ )))"
)

func (s *Surface) draw() {
	now := s.now()
	s.screen.Fill(' ', s.palette.Base)
	s.layout = layout{}

	w, h := s.screen.Size()
	if s.view.Running() {
		s.drawRunning(w, h, now)
	} else {
		s.drawIdle(w, h)
	}
	s.screen.Show()
}

func (s *Surface) drawIdle(w, h int) {
	s.putCentered(1, w, display.StartPrompt, s.palette.Text)

	bx := (w - buttonWidth) / 2
	by := max(3, (h-buttonHeight)/2)
	s.drawBox(rect{bx, by, buttonWidth, buttonHeight}, s.palette.Button)
	s.putString(bx+centerX(speakerGlyph, buttonWidth), by+2, speakerGlyph, s.palette.ButtonText)
	s.putString(bx+centerX(display.StartLabel, buttonWidth), by+4, display.StartLabel, s.palette.ButtonText)
	s.layout.start = rect{bx, by, buttonWidth, buttonHeight}

	s.putCentered(h-1, w, hintIdle, s.palette.Hint)
}

func (s *Surface) drawRunning(w, h int, now time.Time) {
	s.putCentered(1, w, display.CleaningNotice, s.palette.Notice)

	cancelY := h - 3
	waveY := h - 5

	// Ring area between the notice and the wave strip
	top, bottom := 3, waveY-2
	ry := min((bottom-top)/2, maxRingRY)
	rx := min(ry*2, (w-2)/2)
	cx, cy := w/2, top+(bottom-top)/2

	if ry >= 2 && rx >= 2 {
		pts := ringPoints(cx, cy, rx, ry)
		lit := visibleCount(len(pts), s.view.Stroke(now))
		for i, p := range pts {
			if i < lit {
				s.screen.SetContent(p.x, p.y, ringGlyph, nil, s.palette.Ring)
			} else {
				s.screen.SetContent(p.x, p.y, trackGlyph, nil, s.palette.Track)
			}
		}
	}

	// Large countdown when it fits inside the ring, plain text otherwise
	if ry > display.DigitHeight/2 && rx*2 > display.BigWidth(s.view.Text)+2 {
		rows := display.BigText(s.view.Text)
		y0 := cy - display.DigitHeight/2
		for i, row := range rows {
			s.putString(cx-display.BigWidth(s.view.Text)/2, y0+i, row, s.palette.Count)
		}
	} else {
		s.putCentered(cy, w, s.view.Text, s.palette.Count)
	}

	waveW := min(w-4, maxWaveWidth)
	if waveW > 0 && waveY > top {
		elapsed := now.Sub(s.view.StartedAt)
		s.putCentered(waveY, w, display.WaveString(waveW, elapsed), s.palette.Wave)
	}

	cancelX := centerX(display.CancelLabel, w)
	s.putString(cancelX, cancelY, display.CancelLabel, s.palette.Cancel)
	s.layout.cancel = rect{cancelX, cancelY, runewidth.StringWidth(display.CancelLabel), 1}

	s.putCentered(h-1, w, hintRunning, s.palette.Hint)
}

func (s *Surface) drawBox(r rect, style tcell.Style) {
	right, bottom := r.x+r.w-1, r.y+r.h-1
	for x := r.x + 1; x < right; x++ {
		s.screen.SetContent(x, r.y, '─', nil, style)
		s.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := r.y + 1; y < bottom; y++ {
		s.screen.SetContent(r.x, y, '│', nil, style)
		s.screen.SetContent(right, y, '│', nil, style)
	}
	s.screen.SetContent(r.x, r.y, '╭', nil, style)
	s.screen.SetContent(right, r.y, '╮', nil, style)
	s.screen.SetContent(r.x, bottom, '╰', nil, style)
	s.screen.SetContent(right, bottom, '╯', nil, style)
}

func (s *Surface) putCentered(y, width int, text string, style tcell.Style) {
	s.putString(centerX(text, width), y, text, style)
}

func (s *Surface) putString(x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x += max(runewidth.RuneWidth(r), 1)
	}
}
