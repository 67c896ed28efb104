package ledarray

// This file contains the LEDArray, the engine's owned mirror of the state of
// every pixel on a strip.  Transforms registered with the array are asked for
// a replacement state once per frame and the results pushed to the driver.

import (
	"math"

	"github.com/karlmutch/errors"
)

// PixelState holds the five channels of one pixel.  Values are nominally
// 0-255 but are not clamped here, drivers clamp when encoding.
type PixelState struct {
	R, G, B, W, Brightness int
}

// RGBW drops the brightness channel
func (p PixelState) RGBW() RGBW {
	return RGBW{p.R, p.G, p.B, p.W}
}

// State is the full set of pixel states for a strip
type State []PixelState

// BlankState is a zeroed state of numLEDs pixels
func BlankState(numLEDs int) State {
	return make(State, numLEDs)
}

// LEDArray is a fixed size buffer of pixel states bound to a driver
type LEDArray struct {
	strip      Driver
	numLEDs    int
	states     State
	transforms []Transform
}

// NewLEDArray creates an array sized to the driver with all channels zeroed
func NewLEDArray(strip Driver) (leds *LEDArray) {
	return &LEDArray{
		strip:      strip,
		numLEDs:    strip.NumLEDs(),
		states:     BlankState(strip.NumLEDs()),
		transforms: []Transform{},
	}
}

// Strip returns the driver the array pushes to
func (leds *LEDArray) Strip() Driver {
	return leds.strip
}

// NumLEDs is the number of pixels in the array
func (leds *LEDArray) NumLEDs() int {
	return leds.numLEDs
}

// Register appends a single transform
func (leds *LEDArray) Register(transform Transform) {
	leds.transforms = append(leds.transforms, transform)
}

// RegisterAll appends transforms in the order given
func (leds *LEDArray) RegisterAll(transforms []Transform) {
	leds.transforms = append(leds.transforms, transforms...)
}

// Transforms returns the registered transforms in application order
func (leds *LEDArray) Transforms() []Transform {
	return append([]Transform{}, leds.transforms...)
}

// States returns a copy of the current buffer
func (leds *LEDArray) States() (states State) {
	states = make(State, len(leds.states))
	copy(states, leds.states)
	return states
}

func (leds *LEDArray) checkIndex(idx int) (err errors.Error) {
	if idx < 0 || idx >= leds.numLEDs {
		return kindError(ErrIndexOutOfRange).With("index", idx).With("leds", leds.numLEDs)
	}
	return nil
}

// State returns the state of the pixel at idx
func (leds *LEDArray) State(idx int) (state PixelState, err errors.Error) {
	if err = leds.checkIndex(idx); err != nil {
		return state, err
	}
	return leds.states[idx], nil
}

// SetState replaces the state of the pixel at idx
func (leds *LEDArray) SetState(idx int, state PixelState) (err errors.Error) {
	if err = leds.checkIndex(idx); err != nil {
		return err
	}
	leds.states[idx] = state
	return nil
}

// StateAt is State for a fractional position, rounded up to the next pixel
func (leds *LEDArray) StateAt(pos float64) (state PixelState, err errors.Error) {
	idx, err := ceilIndex(pos)
	if err != nil {
		return state, err
	}
	return leds.State(idx)
}

// SetStateAt is SetState for a fractional position, rounded up to the next pixel
func (leds *LEDArray) SetStateAt(pos float64, state PixelState) (err errors.Error) {
	idx, err := ceilIndex(pos)
	if err != nil {
		return err
	}
	return leds.SetState(idx, state)
}

func ceilIndex(pos float64) (idx int, err errors.Error) {
	up := math.Ceil(pos)
	if math.IsNaN(up) || up > math.MaxInt32 || up < math.MinInt32 {
		return 0, kindError(ErrIndexOutOfRange).With("position", pos)
	}
	return int(up), nil
}

// FillFromPalette lays the palette over the strip one color per pixel, white
// zeroed and brightness taken from the driver.  Each pixel is written to the
// driver as it is set.  The shorter of the palette and strip wins.
func (leds *LEDArray) FillFromPalette(palette *Palette) (err errors.Error) {
	brightness := leds.strip.Brightness()

	colors := palette.Colors()
	if len(colors) > leds.numLEDs {
		colors = colors[:leds.numLEDs]
	}
	for i, c := range colors {
		state := PixelState{R: int(c.R), G: int(c.G), B: int(c.B), W: 0, Brightness: brightness}
		if err = leds.strip.SetPixel(i, state.RGBW(), GlobalBrightness); err != nil {
			return err.With("index", i)
		}
		leds.states[i] = state
	}
	return nil
}

// FillFromKeyframes builds a palette with one sample per pixel and fills from it
func (leds *LEDArray) FillFromKeyframes(keyframes []ColorSample) (err errors.Error) {
	palette, err := NewPalette(keyframes, float64(leds.numLEDs))
	if err != nil {
		return err
	}
	return leds.FillFromPalette(palette)
}

// ApplyTransforms runs every registered transform in registration order.  Each
// transform's state replaces the buffer wholesale and is pushed to the driver,
// so with several transforms only the last one's output survives the frame.
// Transforms returning a nil state have driven the strip themselves and leave
// the buffer untouched.  The strip is shown once after all have run.
func (leds *LEDArray) ApplyTransforms() (err errors.Error) {
	for pos, transform := range leds.transforms {
		state, err := transform.NextState()
		if err != nil {
			return err.With("transform", pos)
		}
		if state == nil {
			continue
		}
		if len(state) < leds.numLEDs {
			return kindError(ErrIndexOutOfRange).With("transform", pos).
				With("state", len(state)).With("leds", leds.numLEDs)
		}
		for i := 0; i != leds.numLEDs; i++ {
			if err = leds.strip.SetPixel(i, state[i].RGBW(), state[i].Brightness); err != nil {
				return err.With("transform", pos).With("index", i)
			}
			leds.states[i] = state[i]
		}
	}
	return leds.Show()
}

// Show flushes the driver
func (leds *LEDArray) Show() (err errors.Error) {
	return leds.strip.Show()
}
