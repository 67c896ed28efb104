package ledarray

import (
	"testing"
)

func TestInterpolateUnitClamp(t *testing.T) {
	color0 := ColorSample{0, 255, 0, 0}
	color1 := ColorSample{10, 0, 0, 255}

	samples := Interpolate(color0, color1, 11)
	if len(samples) != 11 {
		t.Fatalf("expected 11 samples, got %d", len(samples))
	}

	// The span is clamped to a single unit so positions step by a tenth and
	// the full blend completes by position 1
	for k, s := range samples {
		step := 0.1 * float64(k)
		expected := ColorSample{Position: step, C0: 255 - 255*step, C1: 0, C2: 255 * step}
		if !sampleCloseTo(s, expected) {
			t.Errorf("sample %d was %+v, expected %+v", k, s, expected)
		}
	}
	if samples[10].Position != 1 || samples[10].C0 != 0 || samples[10].C2 != 255 {
		t.Fatalf("unexpected final sample %+v", samples[10])
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	pairs := [][2]ColorSample{
		{{0, 0, 0, 0}, {1, 255, 255, 255}},
		{{2, 10, 20, 30}, {2.5, 90, 80, 70}},
		{{0, 255, 128, 0}, {40, 0, 64, 255}},
		{{3, 1, 2, 3}, {3.25, 3, 2, 1}},
	}
	for _, pair := range pairs {
		for resolution := 2.0; resolution < 40; resolution += 0.5 {
			samples := Interpolate(pair[0], pair[1], resolution)
			first, last := samples[0], samples[len(samples)-1]
			if first.C0 != pair[0].C0 || first.C1 != pair[0].C1 || first.C2 != pair[0].C2 {
				t.Fatalf("first sample %+v does not match %+v", first, pair[0])
			}
			if !closeTo(last.C0, pair[1].C0) || !closeTo(last.C1, pair[1].C1) || !closeTo(last.C2, pair[1].C2) {
				t.Fatalf("last sample %+v does not match %+v at resolution %f", last, pair[1], resolution)
			}
		}
	}
}

func TestInterpolateSingleSample(t *testing.T) {
	samples := Interpolate(ColorSample{0, 0, 0, 0}, ColorSample{0.5, 100, 50, 10}, 1)
	if len(samples) != 1 {
		t.Fatalf("expected a single sample, got %d", len(samples))
	}
	if !sampleCloseTo(samples[0], ColorSample{0.5, 100, 50, 10}) {
		t.Fatalf("single sample should be the endpoint, got %+v", samples[0])
	}

	// Fractional resolutions round up
	if samples = Interpolate(ColorSample{0, 0, 0, 0}, ColorSample{1, 100, 50, 10}, 2.2); len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}
	if samples = Interpolate(ColorSample{0, 0, 0, 0}, ColorSample{1, 100, 50, 10}, 0); len(samples) != 0 {
		t.Fatalf("expected no samples, got %d", len(samples))
	}
}

func TestInterpolateCoincident(t *testing.T) {
	color0 := ColorSample{4, 10, 20, 30}
	samples := Interpolate(color0, ColorSample{4, 200, 200, 200}, 4)
	if len(samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(samples))
	}
	for i, s := range samples {
		if s != color0 {
			t.Fatalf("sample %d was %+v, expected copies of %+v", i, s, color0)
		}
	}
}

var keyframeSets = [][]ColorSample{
	{{0, 255, 0, 0}, {10, 0, 0, 255}},
	{{0, 0, 0, 0}, {5, 255, 128, 0}, {10, 0, 0, 255}},
	{{0, 0, 0, 0}, {0, 255, 0, 0}, {3, 0, 255, 0}, {3, 0, 0, 255}, {7, 9, 9, 9}},
	{{2, 1, 2, 3}, {2.5, 4, 5, 6}},
	{{0, 10, 10, 10}, {1, 20, 20, 20}, {100, 30, 30, 30}},
}

func TestPaletteEndsWithLastKeyframe(t *testing.T) {
	for set, keyframes := range keyframeSets {
		last := keyframes[len(keyframes)-1]
		for resolution := 1.0; resolution <= 120; resolution++ {
			palette, err := NewPalette(keyframes, resolution)
			if err != nil {
				t.Fatalf("set %d resolution %f failed %s", set, resolution, err.Error())
			}
			final, err := palette.At(palette.Len() - 1)
			if err != nil {
				t.Fatal(err.Error())
			}
			if final != last {
				t.Fatalf("set %d resolution %f ended with %+v rather than %+v", set, resolution, final, last)
			}
		}
	}
}

func TestPaletteLength(t *testing.T) {
	for set, keyframes := range keyframeSets {
		previous := 0
		for resolution := 1.0; resolution <= 120; resolution += 0.25 {
			palette, err := NewPalette(keyframes, resolution)
			if err != nil {
				t.Fatalf("set %d resolution %f failed %s", set, resolution, err.Error())
			}
			if palette.Len() < 2 {
				t.Fatalf("set %d resolution %f produced only %d samples", set, resolution, palette.Len())
			}
			if palette.Len() < previous {
				t.Fatalf("set %d shrank from %d to %d at resolution %f", set, previous, palette.Len(), resolution)
			}
			previous = palette.Len()
		}
	}
}

func TestPaletteSegments(t *testing.T) {
	keyframes := []ColorSample{{0, 255, 0, 0}, {10, 0, 0, 255}}
	palette, err := NewPalette(keyframes, 11)
	if err != nil {
		t.Fatal(err.Error())
	}
	if palette.Len() != 11 {
		t.Fatalf("expected 11 samples, got %d", palette.Len())
	}
	interpolated := Interpolate(keyframes[0], keyframes[1], 11)
	samples := palette.Samples()
	for i := 0; i != 10; i++ {
		if samples[i] != interpolated[i] {
			t.Fatalf("sample %d was %+v, expected %+v", i, samples[i], interpolated[i])
		}
	}
	if samples[10] != keyframes[1] {
		t.Fatalf("final sample %+v is not the last keyframe", samples[10])
	}

	// Each segment gets half the resolution and drops its shared boundary
	palette = MustPalette([]ColorSample{{0, 0, 0, 0}, {5, 255, 128, 0}, {10, 0, 0, 255}}, 10)
	if palette.Len() != 9 {
		t.Fatalf("expected 9 samples, got %d", palette.Len())
	}

	colors := palette.Colors()
	if len(colors) != palette.Len() {
		t.Fatalf("colors has %d entries for %d samples", len(colors), palette.Len())
	}
	if colors[len(colors)-1] != (RGB{0, 0, 255}) {
		t.Fatalf("unexpected final color %+v", colors[len(colors)-1])
	}
}

func TestPaletteCoarseResolution(t *testing.T) {
	keyframes := []ColorSample{{0, 255, 0, 0}, {10, 0, 0, 255}}
	palette := MustPalette(keyframes, 1)
	samples := palette.Samples()
	if len(samples) != 2 || samples[0] != keyframes[0] || samples[1] != keyframes[1] {
		t.Fatalf("unexpected coarse palette %+v", samples)
	}
}

func TestPaletteInvalid(t *testing.T) {
	invalid := [][]ColorSample{
		nil,
		{{0, 1, 2, 3}},
		{{0, 1, 2, 3}, {5, 1, 2, 3}, {4, 1, 2, 3}},
		{{0, 1, 2, 3}, {0, 1, 2, 3}},
		{{-4, 1, 2, 3}, {-1, 1, 2, 3}},
	}
	for i, keyframes := range invalid {
		if _, err := NewPalette(keyframes, 10); !IsKind(err, ErrInvalidPalette) {
			t.Errorf("keyframes %d expected an invalid palette error, got %v", i, err)
		}
	}

	if _, err := NewPalette(keyframeSets[0], 0); err != nil {
		t.Fatalf("zero resolution should still build, %s", err.Error())
	}

	palette := MustPalette(keyframeSets[0], 4)
	if _, err := palette.At(palette.Len()); !IsKind(err, ErrIndexOutOfRange) {
		t.Fatalf("expected out of range, got %v", err)
	}
}

func TestKeyframesFromTuples(t *testing.T) {
	keyframes := KeyframesFromTuples([][4]float64{{0, 1, 2, 3}, {4, 5, 6, 7}})
	if len(keyframes) != 2 || keyframes[1] != (ColorSample{4, 5, 6, 7}) {
		t.Fatalf("unexpected keyframes %+v", keyframes)
	}
}
