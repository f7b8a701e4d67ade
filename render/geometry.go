package render

import (
	"math"

	"github.com/mattn/go-runewidth"
)

type point struct{ x, y int }

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return r.w > 0 && r.h > 0 && x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// ringPoints returns the cells of an ellipse ordered from 12 o'clock
// counter-clockwise as seen on screen
func ringPoints(cx, cy, rx, ry int) []point {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	samples := int(2*math.Pi*float64(max(rx, ry))) * 4
	seen := make(map[point]bool, samples)
	pts := make([]point, 0, samples/2)

	for i := 0; i < samples; i++ {
		theta := 2 * math.Pi * float64(i) / float64(samples)
		p := point{
			x: cx + int(math.Round(-float64(rx)*math.Sin(theta))),
			y: cy + int(math.Round(-float64(ry)*math.Cos(theta))),
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		pts = append(pts, p)
	}
	return pts
}

// visibleCount returns how many of n ring cells a stroke fraction lights
func visibleCount(n int, stroke float64) int {
	if stroke <= 0 || n == 0 {
		return 0
	}
	if stroke >= 1 {
		return n
	}
	return int(math.Ceil(stroke * float64(n)))
}

// centerX returns the left column that centers s in width
func centerX(s string, width int) int {
	x := (width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		return 0
	}
	return x
}
