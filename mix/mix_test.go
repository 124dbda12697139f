package mix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ones(frames, channels int) Buffer {
	b := New(frames, channels)
	for i := range b {
		for c := range b[i] {
			b[i][c] = 1
		}
	}
	return b
}

func TestAddIntoClipsAtTargetEnd(t *testing.T) {
	target := New(10, 2)
	source := ones(5, 2)

	err := AddInto(target, source, 7)

	assert := assert.New(t)
	assert.NoError(err)
	for i := 0; i < 7; i++ {
		assert.Equal([]float64{0, 0}, target[i], "frame %v", i)
	}
	for i := 7; i < 10; i++ {
		assert.Equal([]float64{1, 1}, target[i], "frame %v", i)
	}
}

func TestAddIntoIsAdditive(t *testing.T) {
	target := New(4, 2)
	source := ones(2, 2)

	assert := assert.New(t)
	assert.NoError(AddInto(target, source, 1))
	assert.NoError(AddInto(target, source, 2))

	assert.Equal([]float64{0, 0}, target[0])
	assert.Equal([]float64{1, 1}, target[1])
	assert.Equal([]float64{2, 2}, target[2])
	assert.Equal([]float64{1, 1}, target[3])
}

func TestAddIntoChannelMismatch(t *testing.T) {
	err := AddInto(New(4, 2), ones(2, 1), 0)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestAddIntoNegativeStart(t *testing.T) {
	err := AddInto(New(4, 2), ones(2, 2), -1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestAddIntoPastEndIsNoop(t *testing.T) {
	target := New(4, 2)

	err := AddInto(target, ones(2, 2), 10)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(New(4, 2), target)
}

func TestAddIntoEmptySource(t *testing.T) {
	target := ones(3, 2)

	err := AddInto(target, New(0, 2), 1)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(ones(3, 2), target)
}

func TestBufferShape(t *testing.T) {
	assert := assert.New(t)

	b := New(5, 2)
	assert.Equal(5, b.Frames())
	assert.Equal(2, b.Channels())

	var empty Buffer
	assert.Equal(0, empty.Frames())
	assert.Equal(0, empty.Channels())
}
