package ledarray

// This file turns a show description into a ready to run LEDArray

import (
	"github.com/karlmutch/errors"

	"github.com/TeamNorCal/ledarray/model"
)

// Palettes builds every palette named in the show.  Palettes without a
// resolution get one sample per LED.
func Palettes(show *model.Show) (palettes map[string]*Palette, err errors.Error) {
	palettes = make(map[string]*Palette, len(show.Palettes))
	for _, name := range show.PaletteNames() {
		literal := show.Palettes[name]

		resolution := literal.Resolution
		if resolution == 0 {
			resolution = float64(show.Strip.LEDs)
		}
		tuples := make([][4]float64, 0, len(literal.Keyframes))
		for _, kf := range literal.Keyframes {
			tuples = append(tuples, [4]float64(kf))
		}
		p, err := NewPalette(KeyframesFromTuples(tuples), resolution)
		if err != nil {
			return nil, err.With("palette", name)
		}
		palettes[name] = p
	}
	return palettes, nil
}

// Build validates the show against the driver, applies the strip brightness
// and registers the show's transforms, in order, with a new LEDArray
func Build(show *model.Show, strip Driver) (leds *LEDArray, err errors.Error) {
	if err = show.Validate(); err != nil {
		return nil, kindError(ErrConfig).With("error", err.Error())
	}
	if show.Strip.LEDs != strip.NumLEDs() {
		return nil, kindError(ErrConfig).With("reason", "strip size does not match driver").
			With("show", show.Strip.LEDs).With("driver", strip.NumLEDs())
	}

	palettes, err := Palettes(show)
	if err != nil {
		return nil, err
	}

	strip.SetBrightness(show.Strip.Brightness)
	leds = NewLEDArray(strip)

	transforms := make([]Transform, 0, len(show.Transforms))
	for i, t := range show.Transforms {
		switch t.Type {
		case model.TransformRoll:
			roll, err := NewPaletteRoll(leds, palettes[t.Palette], t.Speed)
			if err != nil {
				return nil, err.With("transform", i)
			}
			transforms = append(transforms, roll)
		case model.TransformSparkle:
			transforms = append(transforms, NewSparkle(leds, palettes[t.Palette], t.Fade))
		case model.TransformHSV:
			transforms = append(transforms, NewHSVRoll(leds,
				HSL{t.From[0], t.From[1], t.From[2]},
				HSL{t.To[0], t.To[1], t.To[2]},
				HSL{t.Increment[0], t.Increment[1], t.Increment[2]},
				t.Delay))
		}
	}
	leds.RegisterAll(transforms)

	return leds, nil
}
