package ledarray

// This file contains an Output that draws frames onto a terminal, one cell per
// pixel, for working on animations without a strip attached.

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/karlmutch/errors"
)

const (
	litRune  = '█'
	darkRune = '·'
)

// TermOutput renders frames onto a tcell screen, wrapping rows every width
// pixels.  A width of zero uses the width of the screen.
type TermOutput struct {
	screen tcell.Screen
	width  int
}

// NewTermOutput wraps an initialized screen
func NewTermOutput(screen tcell.Screen, width int) (out *TermOutput) {
	return &TermOutput{
		screen: screen,
		width:  width,
	}
}

func (out *TermOutput) Write(frame []color.RGBA) (err errors.Error) {
	cols, rows := out.screen.Size()
	width := out.width
	if width <= 0 || width > cols {
		width = cols
	}
	if width <= 0 {
		return kindError(ErrDriver).With("reason", "screen has no columns")
	}

	dark := tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	for i, c := range frame {
		x, y := i%width, i/width
		if y >= rows {
			break
		}
		if c.R == 0 && c.G == 0 && c.B == 0 {
			out.screen.SetContent(x, y, darkRune, nil, dark)
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		out.screen.SetContent(x, y, litRune, nil, style)
	}
	out.screen.Show()
	return nil
}
