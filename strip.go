package ledarray

// This file contains Strip, a Driver that keeps the pixel memory of a strip in
// software and hands finished frames to an Output on Show.  Outputs exist for
// fadecandy boards, terminals and for discarding frames.

import (
	"image/color"
	"math"

	"github.com/karlmutch/errors"
	"github.com/lucasb-eyer/go-colorful"
)

// Output accepts rendered frames, one color per pixel with the brightness
// already applied.  The frame is only valid for the duration of the call.
type Output interface {
	Write(frame []color.RGBA) (err errors.Error)
}

var _ Driver = (*Strip)(nil)

type pixel struct {
	c          RGBW
	brightness int
}

// Strip is a software Driver
type Strip struct {
	pixels     []pixel
	brightness int
	frame      []color.RGBA
	out        Output
}

// NewStrip creates a strip of numLEDs dark pixels at full brightness
func NewStrip(numLEDs int, out Output) (strip *Strip, err errors.Error) {
	if numLEDs <= 0 {
		return nil, kindError(ErrDriver).With("leds", numLEDs)
	}
	if out == nil {
		out = DiscardOutput{}
	}
	return &Strip{
		pixels:     make([]pixel, numLEDs),
		brightness: 255,
		frame:      make([]color.RGBA, numLEDs),
		out:        out,
	}, nil
}

func (strip *Strip) NumLEDs() int {
	return len(strip.pixels)
}

func (strip *Strip) Brightness() int {
	return strip.brightness
}

func (strip *Strip) SetBrightness(brightness int) {
	strip.brightness = clamp255(brightness)
}

func (strip *Strip) checkRange(start, end int) (err errors.Error) {
	if start < 0 || end > len(strip.pixels) || start > end {
		return kindError(ErrIndexOutOfRange).With("start", start).With("end", end).With("leds", len(strip.pixels))
	}
	return nil
}

func (strip *Strip) SetPixel(index int, c RGBW, brightness int) (err errors.Error) {
	if err = strip.checkRange(index, index+1); err != nil {
		return err
	}
	strip.pixels[index] = pixel{c: c, brightness: brightness}
	return nil
}

func (strip *Strip) SetPixelLine(start, end int, c RGBW, brightness int) (err errors.Error) {
	if err = strip.checkRange(start, end); err != nil {
		return err
	}
	for i := start; i != end; i++ {
		strip.pixels[i] = pixel{c: c, brightness: brightness}
	}
	return nil
}

// SetPixelLineGradient blends in RGB space over start to end, both inclusive
func (strip *Strip) SetPixelLineGradient(start, end int, a, b RGB) (err errors.Error) {
	if end < start {
		start, end = end, start
	}
	if err = strip.checkRange(start, end+1); err != nil {
		return err
	}

	from := colorful.Color{R: a.R / 255, G: a.G / 255, B: a.B / 255}
	to := colorful.Color{R: b.R / 255, G: b.G / 255, B: b.B / 255}
	steps := end - start
	for i := start; i <= end; i++ {
		fraction := 0.0
		if steps != 0 {
			fraction = float64(i-start) / float64(steps)
		}
		r, g, bl := from.BlendRgb(to, fraction).Clamped().RGB255()
		strip.pixels[i] = pixel{c: RGBW{int(r), int(g), int(bl), 0}, brightness: GlobalBrightness}
	}
	return nil
}

// ColorHSV takes a hue in 0-65535, wrapping, and saturation and value in
// 0-255
func (strip *Strip) ColorHSV(h, s, l float64) RGB {
	hue := math.Mod(h, 65536)
	if hue < 0 {
		hue += 65536
	}
	c := colorful.Hsv(hue*360/65536, clampUnit(s/255), clampUnit(l/255))
	r, g, b := c.Clamped().RGB255()
	return RGB{float64(r), float64(g), float64(b)}
}

func (strip *Strip) Clear() {
	for i := range strip.pixels {
		strip.pixels[i] = pixel{}
	}
}

// Pixel returns the raw value and brightness stored for a pixel
func (strip *Strip) Pixel(index int) (c RGBW, brightness int, err errors.Error) {
	if err = strip.checkRange(index, index+1); err != nil {
		return c, 0, err
	}
	p := strip.pixels[index]
	return p.c, p.brightness, nil
}

// Frame renders the pixel memory into the colors an RGB output would show.
// White is folded into each of the color channels.
func (strip *Strip) Frame() (frame []color.RGBA) {
	frame = make([]color.RGBA, len(strip.pixels))
	strip.render(frame)
	return frame
}

func (strip *Strip) render(frame []color.RGBA) {
	for i, p := range strip.pixels {
		brightness := p.brightness
		if brightness == GlobalBrightness {
			brightness = strip.brightness
		}
		brightness = clamp255(brightness)
		frame[i] = color.RGBA{
			R: scale(p.c.R+p.c.W, brightness),
			G: scale(p.c.G+p.c.W, brightness),
			B: scale(p.c.B+p.c.W, brightness),
			A: 0xFF,
		}
	}
}

func (strip *Strip) Show() (err errors.Error) {
	strip.render(strip.frame)
	return strip.out.Write(strip.frame)
}

func scale(channel int, brightness int) uint8 {
	return uint8(clamp255(clamp255(channel) * brightness / 255))
}

func clamp255(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return v
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// DiscardOutput drops every frame
type DiscardOutput struct{}

func (DiscardOutput) Write(frame []color.RGBA) (err errors.Error) {
	return nil
}
