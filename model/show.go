package model

// This module defines implementation neutral descriptions of a show, the strip
// being driven, the palettes it uses and the transforms applied each frame.
// Shows are read from YAML files.

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"

	"gopkg.in/yaml.v3"
)

// Transform types understood by the engine
const (
	TransformRoll    = "roll"
	TransformSparkle = "sparkle"
	TransformHSV     = "hsv"
)

// Strip describes the physical strip
type Strip struct {
	LEDs       int `yaml:"leds"`
	Brightness int `yaml:"brightness"`
	Width      int `yaml:"width"` // Non zero for strips wired as rows of this many pixels
}

// Keyframe is a literal (position, c0, c1, c2) palette anchor
type Keyframe [4]float64

// Palette is a named palette literal
type Palette struct {
	Resolution float64    `yaml:"resolution"` // Zero uses the number of LEDs in the strip
	Keyframes  []Keyframe `yaml:"keyframes"`
}

// Transform describes one per frame transform, fields are used according to Type
type Transform struct {
	Type      string        `yaml:"type"`
	Palette   string        `yaml:"palette"`   // roll, sparkle
	Speed     int           `yaml:"speed"`     // roll
	Fade      float64       `yaml:"fade"`      // sparkle
	From      [3]float64    `yaml:"from"`      // hsv
	To        [3]float64    `yaml:"to"`        // hsv
	Increment [3]float64    `yaml:"increment"` // hsv
	Delay     time.Duration `yaml:"delay"`     // hsv
}

// Show is a complete animation description
type Show struct {
	Strip      Strip              `yaml:"strip"`
	Palettes   map[string]Palette `yaml:"palettes"`
	Transforms []Transform        `yaml:"transforms"`
}

// Load reads and validates a show file
func Load(fn string) (show *Show, err errors.Error) {
	data, errGo := os.ReadFile(fn)
	if errGo != nil {
		return nil, errors.Wrap(errGo).With("file", fn).With("stack", stack.Trace().TrimRuntime())
	}
	show, err = Parse(data)
	if err != nil {
		return nil, err.With("file", fn)
	}
	return show, nil
}

// Parse decodes and validates a show held in memory
func Parse(data []byte) (show *Show, err errors.Error) {
	show = &Show{}
	if errGo := yaml.Unmarshal(data, show); errGo != nil {
		return nil, errors.Wrap(errGo).With("stack", stack.Trace().TrimRuntime())
	}
	if err = show.Validate(); err != nil {
		return nil, err
	}
	return show, nil
}

// PaletteNames returns the names of the palettes in the show, sorted
func (show *Show) PaletteNames() (names []string) {
	names = make([]string, 0, len(show.Palettes))
	for name := range show.Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func invalid(reason string) errors.Error {
	return errors.New("invalid show").With("reason", reason).With("stack", stack.Trace().TrimRuntime())
}

// Validate checks the show for problems that would only surface once the
// animation was running
func (show *Show) Validate() (err errors.Error) {
	if show.Strip.LEDs <= 0 {
		return invalid("strip must have at least one led").With("leds", show.Strip.LEDs)
	}
	if show.Strip.Brightness < 0 || show.Strip.Brightness > 255 {
		return invalid("brightness must be between 0 and 255").With("brightness", show.Strip.Brightness)
	}
	if show.Strip.Width < 0 {
		return invalid("width must not be negative").With("width", show.Strip.Width)
	}

	for _, name := range show.PaletteNames() {
		p := show.Palettes[name]
		if len(p.Keyframes) < 2 {
			return invalid("palettes need at least two keyframes").With("palette", name)
		}
		if p.Resolution < 0 {
			return invalid("resolution must not be negative").With("palette", name)
		}
		for i := 1; i < len(p.Keyframes); i++ {
			if p.Keyframes[i][0] < p.Keyframes[i-1][0] {
				return invalid("keyframe positions must not decrease").With("palette", name).With("keyframe", i)
			}
		}
		if p.Keyframes[len(p.Keyframes)-1][0] <= 0 {
			return invalid("last keyframe position must be positive").With("palette", name)
		}
	}

	if len(show.Transforms) == 0 {
		return invalid("at least one transform is needed")
	}
	for i, t := range show.Transforms {
		switch t.Type {
		case TransformRoll, TransformSparkle:
			if _, isPresent := show.Palettes[t.Palette]; !isPresent {
				return invalid(fmt.Sprintf("unknown palette %q", t.Palette)).With("transform", i)
			}
		case TransformHSV:
			if t.Delay < 0 {
				return invalid("delay must not be negative").With("transform", i)
			}
		default:
			return invalid(fmt.Sprintf("unknown transform type %q", t.Type)).With("transform", i)
		}
	}
	return nil
}
