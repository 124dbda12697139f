// Package timing converts between musical time and sample indices.
package timing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/itsbrex/loopy/model"
)

var ErrInvalidFormat = errors.New("invalid time format")

// ParseSignature parses an "N/D" time signature into the number of beats
// per bar and the length of one beat in whole notes.
func ParseSignature(sig string) (model.TimeSignature, error) {
	var ts model.TimeSignature
	parts := strings.Split(sig, "/")
	if len(parts) != 2 {
		return ts, fmt.Errorf("signature %q: %w", sig, ErrInvalidFormat)
	}
	beats, err := strconv.Atoi(parts[0])
	if err != nil {
		return ts, fmt.Errorf("signature %q: %w", sig, ErrInvalidFormat)
	}
	denom, err := strconv.Atoi(parts[1])
	if err != nil || denom == 0 {
		return ts, fmt.Errorf("signature %q: %w", sig, ErrInvalidFormat)
	}
	ts.BeatsPerBar = beats
	ts.BeatValue = 1 / float64(denom)
	return ts, nil
}

// ParseResolution parses a note-length fraction such as "1/16" into its
// whole-note value. A bare integer is also accepted ("1" is a whole note).
func ParseResolution(res string) (float64, error) {
	parts := strings.Split(res, "/")
	switch len(parts) {
	case 1:
		num, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("resolution %q: %w", res, ErrInvalidFormat)
		}
		return float64(num), nil
	case 2:
		num, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, fmt.Errorf("resolution %q: %w", res, ErrInvalidFormat)
		}
		denom, err := strconv.Atoi(parts[1])
		if err != nil || denom == 0 {
			return 0, fmt.Errorf("resolution %q: %w", res, ErrInvalidFormat)
		}
		return float64(num) / float64(denom), nil
	default:
		return 0, fmt.Errorf("resolution %q: %w", res, ErrInvalidFormat)
	}
}

// BeatToSampleIndex converts a position in beats to a sample index,
// truncating toward zero. A negative position yields a negative index;
// callers validate before using it as a buffer offset.
func BeatToSampleIndex(pos float64, bpm float64, sampleRate int) int {
	return int(pos * 60 * float64(sampleRate) / bpm)
}
