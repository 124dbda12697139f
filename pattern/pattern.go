// Package pattern assembles note events into a shared master buffer.
//
// The synthesis and effects engines live outside this module; patterns
// only talk to them through the Voice, Previewer and Effect interfaces.
package pattern

import (
	"fmt"

	"github.com/itsbrex/loopy/mix"
	"github.com/itsbrex/loopy/model"
	"github.com/itsbrex/loopy/pitch"
	"github.com/itsbrex/loopy/sequence"
	"github.com/itsbrex/loopy/theory"
	"github.com/itsbrex/loopy/timing"
)

// Voice renders one note to PCM at the process sample rate.
type Voice interface {
	Render(pitch string, duration, position float64) (mix.Buffer, error)
}

// Previewer renders a set of key names, e.g. a chord, to PCM.
type Previewer interface {
	Preview(names []string) (mix.Buffer, error)
}

// Effect transforms a rendered buffer. It may change the frame count.
type Effect interface {
	Apply(b mix.Buffer) (mix.Buffer, error)
}

type note struct {
	name     string
	duration float64
	position float64
	voice    Voice
}

// Pattern is a fixed number of bars of notes, each bound to the voice that
// will render it.
type Pattern struct {
	bars       int
	sig        model.TimeSignature
	bpm        float64
	sampleRate int
	notes      []note
	effects    []Effect
}

func New(bars int, sig string, bpm float64, sampleRate int) (*Pattern, error) {
	ts, err := timing.ParseSignature(sig)
	if err != nil {
		return nil, err
	}
	if bars < 1 {
		return nil, fmt.Errorf("pattern needs at least one bar, got %v", bars)
	}
	if bpm <= 0 {
		return nil, fmt.Errorf("bpm must be positive, got %v", bpm)
	}
	return &Pattern{bars: bars, sig: ts, bpm: bpm, sampleRate: sampleRate}, nil
}

// Frames is the length of the rendered pattern in samples.
func (p *Pattern) Frames() int {
	beats := float64(p.bars * p.sig.BeatsPerBar)
	return timing.BeatToSampleIndex(beats, p.bpm, p.sampleRate)
}

// AddNote schedules one note. Duration is in whole notes, position in
// beats from the start of the pattern.
func (p *Pattern) AddNote(name string, duration, position float64, v Voice) error {
	if _, err := pitch.ToPianoId(name); err != nil {
		return err
	}
	if position < 0 {
		return fmt.Errorf("note position %v is before the pattern start", position)
	}
	p.notes = append(p.notes, note{name: name, duration: duration, position: position, voice: v})
	return nil
}

// AddSequence decodes a step sequence and schedules every note on v.
// The sequence's signature is the pattern's own.
func (p *Pattern) AddSequence(seq []int, opts sequence.Options, v Voice) error {
	events, err := sequence.Decode(seq, opts)
	if err != nil {
		return err
	}
	for _, e := range events {
		p.notes = append(p.notes, note{
			name:     e.Pitch,
			duration: e.Duration,
			position: e.Position,
			voice:    v,
		})
	}
	return nil
}

// AddEffect appends an effect to the master chain. Effects run in the
// order added, after all notes are mixed.
func (p *Pattern) AddEffect(e Effect) {
	p.effects = append(p.effects, e)
}

// Render renders every note through its voice, composites the results
// into one stereo master buffer and runs the effect chain over it. Audio
// past the end of the pattern is truncated by the mixer.
func (p *Pattern) Render() (mix.Buffer, error) {
	master := mix.New(p.Frames(), 2)
	for _, n := range p.notes {
		buf, err := n.voice.Render(n.name, n.duration, n.position)
		if err != nil {
			return nil, fmt.Errorf("rendering %v: %w", n.name, err)
		}
		start := timing.BeatToSampleIndex(n.position, p.bpm, p.sampleRate)
		if err := mix.AddInto(master, buf, start); err != nil {
			return nil, fmt.Errorf("mixing %v at %v: %w", n.name, start, err)
		}
	}
	for _, e := range p.effects {
		out, err := e.Apply(master)
		if err != nil {
			return nil, fmt.Errorf("applying effect: %w", err)
		}
		master = out
	}
	return master, nil
}

// PreviewChord derives a chord and hands its key names to the previewer.
func PreviewChord(spec model.ChordSpec, pv Previewer) (mix.Buffer, error) {
	notes, err := theory.ChordNotes(spec)
	if err != nil {
		return nil, err
	}
	return pv.Preview(notes)
}
