package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/speaker-cleaner/config"
)

// Palette holds every style the surface draws with
type Palette struct {
	Base       tcell.Style
	Text       tcell.Style
	Notice     tcell.Style
	Button     tcell.Style
	ButtonText tcell.Style
	Ring       tcell.Style
	Track      tcell.Style
	Count      tcell.Style
	Wave       tcell.Style
	Cancel     tcell.Style
	Hint       tcell.Style
}

// RGB definitions for truecolor terminals
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Soft white
	RgbNotice     = tcell.NewRGBColor(224, 175, 104) // Amber
	RgbButton     = tcell.NewRGBColor(122, 162, 247) // Blue
	RgbRing       = tcell.NewRGBColor(158, 206, 106) // Green
	RgbTrack      = tcell.NewRGBColor(59, 66, 97)    // Dim slate
	RgbWave       = tcell.NewRGBColor(125, 207, 255) // Cyan
	RgbCancel     = tcell.NewRGBColor(247, 118, 142) // Red
	RgbHint       = tcell.NewRGBColor(86, 95, 137)   // Comment gray
)

// NewPalette picks styles for a color mode
// colors is the terminal's reported color count, consulted in auto mode
func NewPalette(mode string, colors int) Palette {
	if mode == config.ColorAuto {
		switch {
		case colors >= 1<<24:
			mode = config.ColorTrueColor
		case colors >= 8:
			mode = config.Color256
		default:
			mode = config.ColorMono
		}
	}

	switch mode {
	case config.ColorTrueColor:
		base := tcell.StyleDefault.Background(RgbBackground)
		return Palette{
			Base:       base,
			Text:       base.Foreground(RgbText),
			Notice:     base.Foreground(RgbNotice).Bold(true),
			Button:     base.Foreground(RgbButton),
			ButtonText: base.Foreground(RgbButton).Bold(true),
			Ring:       base.Foreground(RgbRing),
			Track:      base.Foreground(RgbTrack),
			Count:      base.Foreground(RgbText).Bold(true),
			Wave:       base.Foreground(RgbWave),
			Cancel:     base.Foreground(RgbCancel).Bold(true),
			Hint:       base.Foreground(RgbHint),
		}
	case config.Color256:
		base := tcell.StyleDefault
		return Palette{
			Base:       base,
			Text:       base.Foreground(tcell.PaletteColor(252)),
			Notice:     base.Foreground(tcell.PaletteColor(179)).Bold(true),
			Button:     base.Foreground(tcell.PaletteColor(111)),
			ButtonText: base.Foreground(tcell.PaletteColor(111)).Bold(true),
			Ring:       base.Foreground(tcell.PaletteColor(149)),
			Track:      base.Foreground(tcell.PaletteColor(238)),
			Count:      base.Foreground(tcell.PaletteColor(255)).Bold(true),
			Wave:       base.Foreground(tcell.PaletteColor(117)),
			Cancel:     base.Foreground(tcell.PaletteColor(204)).Bold(true),
			Hint:       base.Foreground(tcell.PaletteColor(242)),
		}
	default:
		base := tcell.StyleDefault
		return Palette{
			Base:       base,
			Text:       base,
			Notice:     base.Bold(true),
			Button:     base,
			ButtonText: base.Bold(true),
			Ring:       base.Bold(true),
			Track:      base.Dim(true),
			Count:      base.Bold(true),
			Wave:       base,
			Cancel:     base.Reverse(true),
			Hint:       base.Dim(true),
		}
	}
}
