package ledarray

// This file contains Grid, an LEDArray whose pixels are wired as rows of a
// fixed width.

import (
	"math"

	"github.com/karlmutch/errors"
)

// Grid is an LEDArray arranged as height rows of width pixels
type Grid struct {
	*LEDArray
	width  int
	height int
}

// NewGrid wraps strip as a width x height arrangement
func NewGrid(width, height int, strip Driver) (grid *Grid, err errors.Error) {
	if width <= 0 || height <= 0 || width*height > strip.NumLEDs() {
		return nil, kindError(ErrConfig).With("width", width).With("height", height).With("leds", strip.NumLEDs())
	}
	return &Grid{
		LEDArray: NewLEDArray(strip),
		width:    width,
		height:   height,
	}, nil
}

func (grid *Grid) Width() int {
	return grid.width
}

func (grid *Grid) Height() int {
	return grid.height
}

// VerticalFill writes a gradient from left to right across the rows between
// row1 and row2 inclusive, one solid color per row.  Rows are written starting
// from row 0 for as many rows as the span covers.  brightness may be
// GlobalBrightness.  The white channel is only blended when withWhite is set,
// otherwise rows are written with white off.
func (grid *Grid) VerticalFill(row1, row2 int, left, right RGBW, brightness int, withWhite bool) (err errors.Error) {
	if row2-row1 == 0 {
		return nil
	}
	top := max(row1, row2)
	bottom := min(row1, row2)
	span := float64(top - bottom)

	rDiff := float64(right.R - left.R)
	gDiff := float64(right.G - left.G)
	bDiff := float64(right.B - left.B)
	wDiff := float64(right.W - left.W)

	strip := grid.Strip()
	for i := 0; i < top-bottom+1; i++ {
		fraction := float64(i) / span
		c := RGBW{
			R: int(math.RoundToEven(rDiff*fraction + float64(left.R))),
			G: int(math.RoundToEven(gDiff*fraction + float64(left.G))),
			B: int(math.RoundToEven(bDiff*fraction + float64(left.B))),
		}
		if withWhite {
			c.W = int(math.RoundToEven(wDiff*fraction + float64(left.W)))
		}
		if err = strip.SetPixelLine(i*grid.width, (i+1)*grid.width, c, brightness); err != nil {
			return err.With("row", i)
		}
	}
	return nil
}
