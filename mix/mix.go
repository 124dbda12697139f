// Package mix holds caller-owned sample buffers and composites rendered
// audio into them.
package mix

import (
	"errors"
	"fmt"

	"github.com/itsbrex/loopy/util"
)

var (
	ErrShapeMismatch = errors.New("channel counts do not match")
	ErrOutOfRange    = errors.New("start index out of range")
)

// Buffer is PCM audio as frames by channels.
type Buffer [][]float64

// New returns a zero-filled buffer of the given shape.
func New(frames, channels int) Buffer {
	b := make(Buffer, frames)
	for i := range b {
		b[i] = make([]float64, channels)
	}
	return b
}

func (b Buffer) Frames() int {
	return len(b)
}

func (b Buffer) Channels() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// AddInto adds source into target in place, starting at startIndex frames
// into target. Whatever would land past the end of target is dropped: a
// note ringing past the end of a pattern is a normal edge, not an error.
// The source is clipped to the available span before the add so the
// elementwise loop never runs past either buffer.
//
// Writers of overlapping ranges of one target must be serialized by the
// caller.
func AddInto(target, source Buffer, startIndex int) error {
	if startIndex < 0 {
		return fmt.Errorf("start index %v: %w", startIndex, ErrOutOfRange)
	}
	if source.Frames() == 0 {
		return nil
	}
	if target.Channels() != source.Channels() {
		return fmt.Errorf("target has %v channels, source %v: %w",
			target.Channels(), source.Channels(), ErrShapeMismatch)
	}
	endIndex := util.Min(startIndex+source.Frames(), target.Frames())
	if endIndex <= startIndex {
		return nil
	}
	for i, frame := range source[:endIndex-startIndex] {
		for c, sample := range frame {
			target[startIndex+i][c] += sample
		}
	}
	return nil
}
