package ledarray

import (
	"image/color"
	"math"
	"testing"

	"github.com/karlmutch/errors"
)

// recordOutput keeps a copy of every frame shown
type recordOutput struct {
	frames [][]color.RGBA
}

func (out *recordOutput) Write(frame []color.RGBA) (err errors.Error) {
	out.frames = append(out.frames, append([]color.RGBA{}, frame...))
	return nil
}

// countingDriver is a Strip that counts the calls made against it
type countingDriver struct {
	*Strip
	setPixels int
	shows     int
	gradients int
}

func newCountingDriver(t *testing.T, numLEDs int, brightness int) (driver *countingDriver) {
	strip, err := NewStrip(numLEDs, &recordOutput{})
	if err != nil {
		t.Fatal(err.Error())
	}
	strip.SetBrightness(brightness)
	return &countingDriver{Strip: strip}
}

func (d *countingDriver) SetPixel(index int, c RGBW, brightness int) (err errors.Error) {
	d.setPixels++
	return d.Strip.SetPixel(index, c, brightness)
}

func (d *countingDriver) SetPixelLineGradient(start, end int, a, b RGB) (err errors.Error) {
	d.gradients++
	return d.Strip.SetPixelLineGradient(start, end, a, b)
}

func (d *countingDriver) Show() (err errors.Error) {
	d.shows++
	return d.Strip.Show()
}

// fixedTransform always returns the same state
type fixedTransform struct {
	state State
	calls int
}

func (f *fixedTransform) NextState() (state State, err errors.Error) {
	f.calls++
	return f.state, nil
}

// failingTransform fails on the given call
type failingTransform struct {
	failOn int
	calls  int
	state  State
}

func (f *failingTransform) NextState() (state State, err errors.Error) {
	f.calls++
	if f.calls == f.failOn {
		return nil, kindError(ErrIndexOutOfRange).With("call", f.calls)
	}
	return f.state, nil
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sampleCloseTo(a, b ColorSample) bool {
	return closeTo(a.Position, b.Position) && closeTo(a.C0, b.C0) && closeTo(a.C1, b.C1) && closeTo(a.C2, b.C2)
}
