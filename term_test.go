package ledarray

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTermOutput(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(10, 2)

	out := NewTermOutput(screen, 4)
	frame := []color.RGBA{
		{255, 0, 0, 255}, {}, {0, 0, 0, 255}, {0, 9, 0, 255},
		{0, 0, 1, 255}, {},
	}
	if err := out.Write(frame); err != nil {
		t.Fatal(err.Error())
	}

	expected := map[[2]int]rune{
		{0, 0}: litRune, {1, 0}: darkRune, {2, 0}: darkRune, {3, 0}: litRune,
		{0, 1}: litRune, {1, 1}: darkRune,
	}
	for pos, r := range expected {
		if got, _, _, _ := screen.GetContent(pos[0], pos[1]); got != r {
			t.Errorf("cell %v held %q, expected %q", pos, got, r)
		}
	}
	if got, _, _, _ := screen.GetContent(4, 0); got == litRune || got == darkRune {
		t.Fatalf("pixels should wrap at the configured width, found %q", got)
	}

	// Frames taller than the screen are clipped
	if err := out.Write(make([]color.RGBA, 40)); err != nil {
		t.Fatal(err.Error())
	}
}
