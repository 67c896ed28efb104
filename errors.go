package ledarray

// This file contains the kinds of failure the animation engine reports.  Every
// error leaving the package is a github.com/karlmutch/errors value that wraps
// one of these kinds along with key/value context and a stack trace.

import (
	"strings"

	"github.com/go-stack/stack"
	"github.com/karlmutch/errors"
)

// Kind classifies an engine error
type Kind string

func (k Kind) Error() string {
	return string(k)
}

const (
	// ErrIndexOutOfRange is raised for pixel or palette indexes outside the
	// valid range
	ErrIndexOutOfRange = Kind("index out of range")

	// ErrInvalidPalette is raised for keyframe lists that cannot build a palette
	ErrInvalidPalette = Kind("invalid palette")

	// ErrDegenerateSegment names adjacent keyframes sharing a position.  The
	// interpolator absorbs these with its unit clamp so it is never returned.
	ErrDegenerateSegment = Kind("degenerate palette segment")

	// ErrConfig is raised for show files that fail validation
	ErrConfig = Kind("invalid configuration")

	// ErrDriver is raised when the output side of a strip fails
	ErrDriver = Kind("driver failure")
)

func kindError(kind Kind) errors.Error {
	return errors.Wrap(kind).With("stack", stack.Trace().TrimRuntime())
}

type causer interface {
	Cause() error
}

type unwrapper interface {
	Unwrap() error
}

// IsKind reports whether err, or anything it wraps, is of the given kind
func IsKind(err error, kind Kind) bool {
	for depth := 0; err != nil && depth < 32; depth++ {
		if k, ok := err.(Kind); ok {
			return k == kind
		}
		switch e := err.(type) {
		case causer:
			next := e.Cause()
			if next == err {
				return strings.Contains(err.Error(), string(kind))
			}
			err = next
		case unwrapper:
			err = e.Unwrap()
		default:
			return strings.Contains(err.Error(), string(kind))
		}
	}
	return false
}
