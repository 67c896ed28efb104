package ledarray

// Code to support mapping from the logical pixel order of a strip to the
// channels and pixel offsets of Open Pixel Control boards.

import (
	"image/color"
	"sort"

	"github.com/karlmutch/errors"
)

// Segment identifies a run of physical pixels within a single OPC channel
type Segment struct {
	Channel    uint8
	StartPixel uint
	Size       uint
}

// {channel, pixel} tuple identifying a physical pixel
type location struct {
	channel uint8
	pixel   uint
}

// Layout captures the mapping from strip pixels to physical pixels.  The
// order of the segments defines the logical ordering of the strip.
type Layout struct {
	// Number of pixels addressed on each channel, a channel is always sent
	// from pixel 0 up to its highest mapped pixel
	channelSizes map[uint8]uint

	// Physical location for each strip pixel
	locs []location
}

// NewLayout builds a layout from segments.  Segments may not overlap.
func NewLayout(segments []Segment) (layout *Layout, err errors.Error) {
	layout = &Layout{
		channelSizes: map[uint8]uint{},
		locs:         make([]location, 0, 64),
	}
	used := map[location]bool{}
	for _, s := range segments {
		for idx := s.StartPixel; idx < s.StartPixel+s.Size; idx++ {
			loc := location{s.Channel, idx}
			if used[loc] {
				return nil, kindError(ErrConfig).With("reason", "overlapping segments").
					With("channel", s.Channel).With("pixel", idx)
			}
			used[loc] = true
			layout.locs = append(layout.locs, loc)
		}
		if end := s.StartPixel + s.Size; end > layout.channelSizes[s.Channel] {
			layout.channelSizes[s.Channel] = end
		}
	}
	return layout, nil
}

// SingleChannel lays numLEDs pixels out from the start of one channel
func SingleChannel(channel uint8, numLEDs int) (layout *Layout) {
	layout, _ = NewLayout([]Segment{{Channel: channel, Size: uint(numLEDs)}})
	return layout
}

// Len is the number of strip pixels mapped
func (layout *Layout) Len() int {
	return len(layout.locs)
}

// Channels lists the channels in use in ascending order
func (layout *Layout) Channels() (channels []uint8) {
	channels = make([]uint8, 0, len(layout.channelSizes))
	for ch := range layout.channelSizes {
		channels = append(channels, ch)
	}
	sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })
	return channels
}

// Split distributes a frame in strip order across the channels of the layout.
// Physical pixels not covered by any segment are left dark.
func (layout *Layout) Split(frame []color.RGBA) (channels map[uint8][]color.RGBA, err errors.Error) {
	if len(frame) < len(layout.locs) {
		return nil, kindError(ErrIndexOutOfRange).With("reason", "frame shorter than layout").
			With("frame", len(frame)).With("layout", len(layout.locs))
	}
	channels = make(map[uint8][]color.RGBA, len(layout.channelSizes))
	for ch, size := range layout.channelSizes {
		channels[ch] = make([]color.RGBA, size)
	}
	for idx, l := range layout.locs {
		channels[l.channel][l.pixel] = frame[idx]
	}
	return channels, nil
}
