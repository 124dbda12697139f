// Package theory derives the notes of diatonic chords from fixed interval
// tables.
package theory

import (
	"fmt"

	"github.com/itsbrex/loopy/model"
	"github.com/itsbrex/loopy/pitch"
)

// scaleChordQualities gives the triad quality built on each degree of a scale.
var scaleChordQualities = map[string][7]string{
	"maj": {"maj", "min", "min", "maj", "maj", "min", "dim"},
	"min": {"min", "dim", "maj", "min", "min", "maj", "maj"},
}

// chordIntervals gives semitone offsets from the chord root per quality.
var chordIntervals = map[string][3]int{
	"maj": {0, 4, 7},
	"min": {0, 3, 7},
	"dim": {0, 3, 6},
	"aug": {0, 4, 8},
}

// scaleSteps gives semitone offsets from the scale root to each degree.
var scaleSteps = map[string][7]int{
	"maj": {0, 2, 4, 5, 7, 9, 11},
	"min": {0, 2, 3, 5, 7, 8, 10},
}

// ChordNotes returns the key names of the chord spec.Degree builds in the
// given scale. The triad is ordered ascending; RemoveSecond drops its
// middle tone, AddLowerOctave prepends the (possibly reduced) lowest tone
// an octave down, and AddUpperOctave inserts the highest tone an octave up
// immediately before the last element, so the duplicate sits inside the
// voicing rather than on top of it.
func ChordNotes(spec model.ChordSpec) ([]string, error) {
	if spec.Degree < 1 || spec.Degree > 7 {
		return nil, fmt.Errorf("chord degree %v: %w", spec.Degree, pitch.ErrOutOfRange)
	}
	qualities, ok := scaleChordQualities[spec.ScaleType]
	if !ok {
		return nil, fmt.Errorf("unknown scale type %q", spec.ScaleType)
	}
	steps := scaleSteps[spec.ScaleType]

	rootMidi, err := pitch.ToMidiId(spec.ScaleRoot + spec.OctaveArea)
	if err != nil {
		return nil, err
	}
	delta := rootMidi + steps[spec.Degree-1]

	intervals := chordIntervals[qualities[spec.Degree-1]]
	ids := make([]int, 0, len(intervals)+2)
	for _, offset := range intervals {
		ids = append(ids, delta+offset)
	}

	if spec.RemoveSecond {
		ids = append(ids[:1], ids[2:]...)
	}
	if spec.AddLowerOctave {
		ids = append([]int{ids[0] - 12}, ids...)
	}
	if spec.AddUpperOctave {
		last := ids[len(ids)-1]
		ids = append(ids[:len(ids)-1], last+12, last)
	}

	notes := make([]string, len(ids))
	for i, id := range ids {
		name, err := pitch.FromMidiId(id)
		if err != nil {
			return nil, err
		}
		notes[i] = name
	}
	return notes, nil
}
