package ledarray

import (
	"github.com/karlmutch/errors"
)

// GlobalBrightness asks a Driver to scale a pixel using the strip wide
// brightness rather than an explicit per pixel value
const GlobalBrightness = -1

// Driver is the hardware facing side of a strip.  Writes land in the
// driver's own pixel memory and only reach the physical LEDs on Show.
type Driver interface {
	// NumLEDs is fixed for the lifetime of the driver
	NumLEDs() int

	// Brightness is the strip wide brightness, 0-255
	Brightness() int
	SetBrightness(brightness int)

	// SetPixel writes one pixel
	SetPixel(index int, c RGBW, brightness int) errors.Error

	// SetPixelLine writes c to every pixel in [start, end)
	SetPixelLine(start, end int, c RGBW, brightness int) errors.Error

	// SetPixelLineGradient blends linearly from a to b across start to end
	SetPixelLineGradient(start, end int, a, b RGB) errors.Error

	// ColorHSV converts a hue, saturation, value triple to RGB
	ColorHSV(h, s, l float64) RGB

	// Clear zeroes the pixel memory
	Clear()

	// Show flushes the pixel memory to the strip
	Show() errors.Error
}
