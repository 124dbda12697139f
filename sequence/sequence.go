// Package sequence decodes quantized step sequences into note events.
//
// A sequence is one integer per step at a fixed resolution. A run of equal
// values is a single sustained note, not a retrigger; the rest sentinel
// produces no event at all.
package sequence

import (
	"fmt"

	"github.com/itsbrex/loopy/constants"
	"github.com/itsbrex/loopy/model"
	"github.com/itsbrex/loopy/pitch"
	"github.com/itsbrex/loopy/timing"
)

// IdSpace selects how sequence values map to keys.
type IdSpace string

const (
	SpaceMidi  IdSpace = "midi"
	SpacePiano IdSpace = "piano"
)

type Options struct {
	// Signature is the "N/D" time signature of the pattern.
	Signature string
	// Resolution is the length of one step in whole notes.
	Resolution float64
	// Space is the representation of the sequence values.
	Space IdSpace
	// RestId is the value that means silence.
	RestId int
}

func DefaultOptions() Options {
	return Options{
		Signature:  constants.DefaultSignature,
		Resolution: constants.DefaultResolution,
		Space:      SpaceMidi,
		RestId:     constants.RestId,
	}
}

// Decode scans seq left to right, grouping maximal runs of equal values
// into notes. Events come out ordered by start position. Rest runs are
// skipped entirely, so two same-pitch runs split by a rest stay two events.
func Decode(seq []int, opts Options) ([]model.NoteEvent, error) {
	ts, err := timing.ParseSignature(opts.Signature)
	if err != nil {
		return nil, err
	}

	var convert func(int) (string, error)
	switch opts.Space {
	case SpaceMidi:
		convert = pitch.FromMidiId
	case SpacePiano:
		convert = pitch.FromPianoId
	default:
		return nil, fmt.Errorf("unknown id space %q", opts.Space)
	}

	events := make([]model.NoteEvent, 0)
	for i, n := 0, len(seq); i < n; {
		j := i
		for j < n && seq[j] == seq[i] {
			j++
		}
		if seq[i] == opts.RestId {
			i = j
			continue
		}
		name, err := convert(seq[i])
		if err != nil {
			return nil, err
		}
		events = append(events, model.NoteEvent{
			Pitch:    name,
			Duration: opts.Resolution * float64(j-i),
			Position: opts.Resolution * float64(i) / ts.BeatValue,
		})
		i = j
	}
	return events, nil
}
