package ledarray

// This file contains the per frame transforms that can be registered with an
// LEDArray.

import (
	"time"

	"github.com/karlmutch/errors"
)

// Transform produces the next state of an LEDArray.  A nil state with no
// error means the transform drove the strip directly and the buffer should
// be left alone.
type Transform interface {
	NextState() (state State, err errors.Error)
}

// PaletteRoll fills the array from a palette once and then rotates the
// filled pixels along the strip on every frame
type PaletteRoll struct {
	leds   *LEDArray
	base   State
	speed  int
	offset int
}

// NewPaletteRoll fills leds from the palette, pushing the pixels to the
// driver, and returns a roll moving speed pixels per frame
func NewPaletteRoll(leds *LEDArray, palette *Palette, speed int) (roll *PaletteRoll, err errors.Error) {
	if err = leds.FillFromPalette(palette); err != nil {
		return nil, err
	}
	return &PaletteRoll{
		leds:  leds,
		base:  leds.States(),
		speed: speed,
	}, nil
}

// NextState rotates every channel left by the roll speed
func (roll *PaletteRoll) NextState() (state State, err errors.Error) {
	n := len(roll.base)
	if n == 0 {
		return State{}, nil
	}
	roll.offset = ((roll.offset+roll.speed)%n + n) % n

	state = make(State, n)
	for i := range state {
		state[i] = roll.base[(i+roll.offset)%n]
	}
	return state, nil
}

// SparkleLED is the pixel a Sparkle lights
const SparkleLED = 10

// Sparkle steps a single pixel through a palette, leaving every other pixel dark
type Sparkle struct {
	leds       *LEDArray
	colors     []RGB
	fadeSpeed  float64
	idx        int
	led        int
	brightness int
}

// NewSparkle captures the palette and the current driver brightness
func NewSparkle(leds *LEDArray, palette *Palette, fadeSpeed float64) (sparkle *Sparkle) {
	return &Sparkle{
		leds:       leds,
		colors:     palette.Colors(),
		fadeSpeed:  fadeSpeed,
		led:        SparkleLED,
		brightness: leds.Strip().Brightness(),
	}
}

// Phase is the palette index shown by the last successful frame
func (sparkle *Sparkle) Phase() int {
	return sparkle.idx
}

// NextState advances the palette index by the fade speed.  The index only
// wraps once it passes the palette length so landing exactly on the length
// is reported as ErrIndexOutOfRange.
func (sparkle *Sparkle) NextState() (state State, err errors.Error) {
	state = BlankState(sparkle.leds.NumLEDs())

	numColors := len(sparkle.colors)
	if numColors == 0 {
		return nil, kindError(ErrIndexOutOfRange).With("colors", numColors)
	}
	idx := int(float64(sparkle.idx) + sparkle.fadeSpeed)
	if idx > numColors {
		idx %= numColors
	}
	if idx < 0 || idx >= numColors {
		return nil, kindError(ErrIndexOutOfRange).With("palette_index", idx).With("colors", numColors)
	}
	if sparkle.led >= len(state) {
		return nil, kindError(ErrIndexOutOfRange).With("index", sparkle.led).With("leds", len(state))
	}

	c := sparkle.colors[idx]
	state[sparkle.led] = PixelState{R: int(c.R), G: int(c.G), B: int(c.B), W: 0, Brightness: sparkle.brightness}
	sparkle.idx = idx
	return state, nil
}

// HSVRoll sweeps a gradient between two hue vectors that drift by a fixed
// increment each frame.  The gradient is computed and shown by the driver
// itself, the array's buffer is never written.
type HSVRoll struct {
	leds      *LEDArray
	color1    HSL
	color2    HSL
	increment HSL
	delay     time.Duration

	sleep func(time.Duration)
}

// NewHSVRoll creates a hue sweep between color1 and color2.  delay is the
// pause between each of the repeated shows that follow a gradient update.
func NewHSVRoll(leds *LEDArray, color1, color2, increment HSL, delay time.Duration) (roll *HSVRoll) {
	return &HSVRoll{
		leds:      leds,
		color1:    color1,
		color2:    color2,
		increment: increment,
		delay:     delay,
		sleep:     time.Sleep,
	}
}

// Colors returns the current ends of the gradient
func (roll *HSVRoll) Colors() (color1, color2 HSL) {
	return roll.color1, roll.color2
}

// NextState drives the strip directly and returns a nil state
func (roll *HSVRoll) NextState() (state State, err errors.Error) {
	strip := roll.leds.Strip()
	numLEDs := strip.NumLEDs()

	roll.color1 = roll.color1.Add(roll.increment)
	roll.color2 = roll.color2.Add(roll.increment)

	from := strip.ColorHSV(roll.color1.H, roll.color1.S, roll.color1.L)
	to := strip.ColorHSV(roll.color2.H, roll.color2.S, roll.color2.L)
	if err = strip.SetPixelLineGradient(0, numLEDs-1, from, to); err != nil {
		return nil, err
	}
	if err = strip.Show(); err != nil {
		return nil, err
	}
	for i := 0; i != numLEDs; i++ {
		if err = strip.Show(); err != nil {
			return nil, err
		}
		roll.sleep(roll.delay)
	}
	return nil, nil
}
