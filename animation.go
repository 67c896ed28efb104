package ledarray

// This file contains the frame loop.  Frames are generated and pushed to the
// driver from the calling goroutine, one after the other, the loop only looks
// at the quit channel between frames.

import (
	"fmt"
	"time"

	"github.com/karlmutch/errors"
	"github.com/mgutz/logxi"
)

var (
	logger = logxi.New("ledarray")
)

// Animate applies the transforms registered with leds once per frame until
// quitC is closed.  interval paces the frames, zero runs them back to back.
// The first failing frame stops the loop and its error is returned.
func Animate(leds *LEDArray, interval time.Duration, quitC <-chan struct{}) (frames uint64, err errors.Error) {

	logger.Debug(fmt.Sprintf("animating %d leds with %d transforms", leds.NumLEDs(), len(leds.transforms)))
	defer func() {
		logger.Debug(fmt.Sprintf("animation stopped after %d frames", frames))
	}()

	for {
		select {
		case <-quitC:
			return frames, nil
		default:
		}

		if err = leds.ApplyTransforms(); err != nil {
			return frames, err.With("frame", frames)
		}
		frames++

		if interval <= 0 {
			continue
		}
		select {
		case <-quitC:
			return frames, nil
		case <-time.After(interval):
		}
	}
}
