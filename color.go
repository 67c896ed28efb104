package ledarray

// This file contains the indexed keyframe palette support.  Sparse keyframes
// of the form (position, c0, c1, c2) are expanded into dense palettes that
// can be laid directly over the pixels of a strip.

import (
	"fmt"
	"math"

	"github.com/karlmutch/errors"
)

// RGB is a color with unclamped floating point channels
type RGB struct {
	R, G, B float64
}

// RGBW is a raw pixel value as handed to a Driver
type RGBW struct {
	R, G, B, W int
}

// HSL is a hue, saturation and lightness like vector used by the hue sweep.
// The units are those of Driver.ColorHSV.
type HSL struct {
	H, S, L float64
}

// Add returns the component wise sum of two vectors
func (c HSL) Add(delta HSL) HSL {
	return HSL{c.H + delta.H, c.S + delta.S, c.L + delta.L}
}

// ColorSample is a keyframe, three color channels anchored at a position in
// palette space
type ColorSample struct {
	Position   float64
	C0, C1, C2 float64
}

// Color strips the position from the sample
func (s ColorSample) Color() RGB {
	return RGB{s.C0, s.C1, s.C2}
}

// KeyframesFromTuples converts literal (position, c0, c1, c2) tuples into keyframes
func KeyframesFromTuples(tuples [][4]float64) (keyframes []ColorSample) {
	keyframes = make([]ColorSample, 0, len(tuples))
	for _, t := range tuples {
		keyframes = append(keyframes, ColorSample{Position: t[0], C0: t[1], C1: t[2], C2: t[3]})
	}
	return keyframes
}

// linspace yields n evenly spaced values over [start, stop].  A single value
// is the stop value itself.
func linspace(start, stop float64, n int) (values []float64) {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{stop}
	}
	h := (stop - start) / float64(n-1)
	values = make([]float64, n)
	for i := range values {
		values[i] = start + h*float64(i)
	}
	return values
}

// Interpolate linearly blends color0 into color1 producing ceil(resolution)
// samples.
//
// The span used for the blend is min(color1.Position-color0.Position, 1) so
// segments wider than one palette unit are squeezed into a single unit, their
// samples step from color0.Position to color0.Position+1.  Keyframes sharing
// a position produce copies of color0 rather than failing.
func Interpolate(color0, color1 ColorSample, resolution float64) (samples []ColorSample) {
	di := math.Min(color1.Position-color0.Position, 1)

	// Coincident keyframes have no span to blend over, every sample holds color0
	var dx0di, dx1di, dx2di float64
	if di > 0 {
		dx0di = (color1.C0 - color0.C0) / di
		dx1di = (color1.C1 - color0.C1) / di
		dx2di = (color1.C2 - color0.C2) / di
	}

	steps := linspace(0, di, int(math.Ceil(resolution)))
	samples = make([]ColorSample, 0, len(steps))
	for _, i := range steps {
		samples = append(samples, ColorSample{
			Position: color0.Position + i,
			C0:       color0.C0 + dx0di*i,
			C1:       color0.C1 + dx1di*i,
			C2:       color0.C2 + dx2di*i,
		})
	}
	return samples
}

// Palette is a dense, ordered sequence of color samples built from keyframes
type Palette struct {
	samples []ColorSample
}

// NewPalette chains interpolated segments between adjacent keyframes.  Each
// segment receives a share of the resolution proportional to its span relative
// to the position of the final keyframe.
func NewPalette(keyframes []ColorSample, resolution float64) (palette *Palette, err errors.Error) {
	if len(keyframes) < 2 {
		return nil, kindError(ErrInvalidPalette).With("keyframes", len(keyframes))
	}
	for i := 1; i < len(keyframes); i++ {
		if keyframes[i].Position < keyframes[i-1].Position {
			return nil, kindError(ErrInvalidPalette).With("reason", "positions must not decrease").
				With("index", i).With("position", keyframes[i].Position)
		}
	}
	last := keyframes[len(keyframes)-1]
	maxIdx := last.Position
	if maxIdx <= 0 || math.IsNaN(maxIdx) {
		return nil, kindError(ErrInvalidPalette).With("reason", "final position must be positive").
			With("position", maxIdx)
	}
	if math.IsNaN(resolution) || math.IsInf(resolution, 0) {
		return nil, kindError(ErrInvalidPalette).With("resolution", fmt.Sprint(resolution))
	}

	samples := []ColorSample{}
	for idx := 0; idx < len(keyframes)-1; idx++ {
		color0 := keyframes[idx]
		color1 := keyframes[idx+1]

		segment := resolution * (color1.Position - color0.Position) / maxIdx
		if segment <= 0 {
			continue
		}
		interpolated := Interpolate(color0, color1, segment)
		if len(interpolated) != 0 {
			samples = append(samples, interpolated[:len(interpolated)-1]...)
		}
	}
	samples = append(samples, last)

	// Coarse resolutions can collapse every segment, keep the palette anchored
	// at both ends
	if len(samples) < 2 {
		samples = append([]ColorSample{keyframes[0]}, samples...)
	}

	return &Palette{samples: samples}, nil
}

// MustPalette is NewPalette for literal keyframes known to be valid
func MustPalette(keyframes []ColorSample, resolution float64) (palette *Palette) {
	palette, err := NewPalette(keyframes, resolution)
	if err != nil {
		panic(err.Error())
	}
	return palette
}

// Len is the number of samples in the palette
func (p *Palette) Len() int {
	return len(p.samples)
}

// At returns the sample at idx, ErrIndexOutOfRange is returned for indexes
// outside the palette
func (p *Palette) At(idx int) (sample ColorSample, err errors.Error) {
	if idx < 0 || idx >= len(p.samples) {
		return sample, kindError(ErrIndexOutOfRange).With("index", idx).With("length", len(p.samples))
	}
	return p.samples[idx], nil
}

// Samples returns a copy of the palette samples including positions
func (p *Palette) Samples() (samples []ColorSample) {
	samples = make([]ColorSample, len(p.samples))
	copy(samples, p.samples)
	return samples
}

// Colors returns the palette with positions stripped
func (p *Palette) Colors() (colors []RGB) {
	colors = make([]RGB, len(p.samples))
	for i, s := range p.samples {
		colors[i] = s.Color()
	}
	return colors
}
