package sequence

import (
	"fmt"
	"io"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/itsbrex/loopy/model"
	"github.com/itsbrex/loopy/pitch"
	"github.com/itsbrex/loopy/timing"
)

const ticksPerQuarter = 960

// WriteSMF writes decoded events as a standard MIDI file: a meta track
// carrying meter and tempo, then one note track. Events must be ordered by
// position and non-overlapping, which is what Decode produces.
func WriteSMF(w io.Writer, events []model.NoteEvent, sig string, bpm float64) error {
	ts, err := timing.ParseSignature(sig)
	if err != nil {
		return err
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var meta smf.Track
	meta.Add(0, smf.MetaMeter(uint8(ts.BeatsPerBar), uint8(math.Round(1/ts.BeatValue))))
	meta.Add(0, smf.MetaTempo(bpm))
	meta.Close(0)
	if err := s.Add(meta); err != nil {
		return fmt.Errorf("error adding meta track: %w", err)
	}

	// ticks per whole note; positions are in beats, durations in whole notes
	ticksPerWhole := float64(4 * ticksPerQuarter)

	var track smf.Track
	var cursor uint32
	for _, e := range events {
		key, err := pitch.ToMidiId(e.Pitch)
		if err != nil {
			return err
		}
		on := uint32(e.Position * ts.BeatValue * ticksPerWhole)
		dur := uint32(e.Duration * ticksPerWhole)
		track.Add(on-cursor, midi.NoteOn(0, uint8(key), 100))
		track.Add(dur, midi.NoteOff(0, uint8(key)))
		cursor = on + dur
	}
	track.Close(0)
	if err := s.Add(track); err != nil {
		return fmt.Errorf("error adding note track: %w", err)
	}

	_, err = s.WriteTo(w)
	return err
}
