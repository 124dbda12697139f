package sequence

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itsbrex/loopy/model"
	"github.com/itsbrex/loopy/pitch"
	"github.com/itsbrex/loopy/timing"
)

func pianoOptions() Options {
	opts := DefaultOptions()
	opts.Space = SpacePiano
	return opts
}

func TestDecodeRunsAndRests(t *testing.T) {
	events, err := Decode([]int{1, 1, 1, 0, 2, 0}, pianoOptions())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.NoteEvent{
		{Pitch: "A0", Duration: 0.1875, Position: 0},
		{Pitch: "A#0", Duration: 0.0625, Position: 1},
	}, events)
}

func TestDecodeMidiSpace(t *testing.T) {
	events, err := Decode([]int{60, 60, 62, 62}, DefaultOptions())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.NoteEvent{
		{Pitch: "C4", Duration: 0.125, Position: 0},
		{Pitch: "D4", Duration: 0.125, Position: 0.5},
	}, events)
}

func TestDecodeEmptyAndAllRest(t *testing.T) {
	assert := assert.New(t)

	events, err := Decode(nil, DefaultOptions())
	assert.NoError(err)
	assert.Empty(events)

	events, err = Decode([]int{0, 0, 0, 0}, DefaultOptions())
	assert.NoError(err)
	assert.Empty(events)
}

func TestDecodeSingleStep(t *testing.T) {
	events, err := Decode([]int{69}, DefaultOptions())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]model.NoteEvent{
		{Pitch: "A4", Duration: 0.0625, Position: 0},
	}, events)
}

func TestDecodeRestSplitsSamePitch(t *testing.T) {
	events, err := Decode([]int{60, 60, 0, 60}, DefaultOptions())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(events, 2)
	assert.Equal(events[0].Pitch, events[1].Pitch)
	assert.Equal(0.125, events[0].Duration)
	assert.Equal(0.0625, events[1].Duration)
	assert.Equal(0.75, events[1].Position)
}

func TestDecodeOtherSignatureAndResolution(t *testing.T) {
	opts := DefaultOptions()
	opts.Signature = "3/8"
	opts.Resolution = 1.0 / 8.0
	events, err := Decode([]int{60, 0, 60}, opts)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(events, 2)
	assert.Equal(1.0, events[0].Position+1)
	assert.Equal(2.0, events[1].Position)
}

func TestDecodeCustomRestId(t *testing.T) {
	opts := DefaultOptions()
	opts.RestId = -1
	events, err := Decode([]int{-1, 60, -1}, opts)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(events, 1)
	assert.Equal("C4", events[0].Pitch)
	assert.Equal(0.25, events[0].Position)
}

func TestDecodePropagatesPitchErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Decode([]int{200}, DefaultOptions())
	assert.True(errors.Is(err, pitch.ErrOutOfRange))

	_, err = Decode([]int{89}, pianoOptions())
	assert.True(errors.Is(err, pitch.ErrOutOfRange))
}

func TestDecodeRejectsBadInputs(t *testing.T) {
	assert := assert.New(t)

	opts := DefaultOptions()
	opts.Signature = "nope"
	_, err := Decode([]int{60}, opts)
	assert.True(errors.Is(err, timing.ErrInvalidFormat))

	opts = DefaultOptions()
	opts.Space = "guitar"
	_, err = Decode([]int{60}, opts)
	assert.Error(err)
}
