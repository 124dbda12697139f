package pitch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPianoIdRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for id := 1; id <= 88; id++ {
		name, err := FromPianoId(id)
		assert.NoError(err)
		back, err := ToPianoId(name)
		assert.NoError(err)
		assert.Equal(id, back)
	}
}

func TestMidiIdRoundTrip(t *testing.T) {
	assert := assert.New(t)
	for id := 21; id <= 108; id++ {
		name, err := FromMidiId(id)
		assert.NoError(err)
		back, err := ToMidiId(name)
		assert.NoError(err)
		assert.Equal(id, back)
	}
}

func TestMidiIsPianoPlusTwenty(t *testing.T) {
	assert := assert.New(t)
	for id := 1; id <= 88; id++ {
		name, err := FromPianoId(id)
		assert.NoError(err)
		midi, err := ToMidiId(name)
		assert.NoError(err)
		assert.Equal(20, midi-id)
	}
}

func TestKnownKeys(t *testing.T) {
	assert := assert.New(t)

	name, err := FromPianoId(1)
	assert.NoError(err)
	assert.Equal("A0", name)

	name, err = FromPianoId(88)
	assert.NoError(err)
	assert.Equal("C8", name)

	midi, err := ToMidiId("C4")
	assert.NoError(err)
	assert.Equal(60, midi)

	name, err = FromMidiId(69)
	assert.NoError(err)
	assert.Equal("A4", name)
}

func TestOutOfRange(t *testing.T) {
	assert := assert.New(t)
	for _, id := range []int{0, -1, 89} {
		_, err := FromPianoId(id)
		assert.True(errors.Is(err, ErrOutOfRange))
	}
	for _, id := range []int{20, 109, 0} {
		_, err := FromMidiId(id)
		assert.True(errors.Is(err, ErrOutOfRange))
	}

	_, err := PianoToMidi(89)
	assert.True(errors.Is(err, ErrOutOfRange))
	_, err = MidiToPiano(20)
	assert.True(errors.Is(err, ErrOutOfRange))
}

func TestNameNotFound(t *testing.T) {
	assert := assert.New(t)
	for _, name := range []string{"H4", "A9", "Cb4", "", "a4"} {
		_, err := ToPianoId(name)
		assert.True(errors.Is(err, ErrNameNotFound))
		_, err = ToMidiId(name)
		assert.True(errors.Is(err, ErrNameNotFound))
	}
}

func TestPianoMidiOffsetConversions(t *testing.T) {
	assert := assert.New(t)

	midi, err := PianoToMidi(40)
	assert.NoError(err)
	assert.Equal(60, midi)

	piano, err := MidiToPiano(60)
	assert.NoError(err)
	assert.Equal(40, piano)
}

func TestTableBuildIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	first := buildKeyTable()
	second := buildKeyTable()
	assert.Equal(first, second)
	assert.Equal(keyNames, first)
}
