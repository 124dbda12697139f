package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Min(1, 2))
	assert.Equal(1, Min(2, 1))
	assert.Equal(-3, Min(-3, 0))
	assert.Equal(1.5, Min(1.5, 2.5))
}

func TestSecToClock(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0:00:00", SecToClock(0))
	assert.Equal("0:00:30", SecToClock(30))
	assert.Equal("0:02:05", SecToClock(125))
	assert.Equal("1:01:01", SecToClock(3661))
	assert.Equal("0:00:01.500", SecToClock(1.5))
}

func TestClockToSec(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		in   string
		want float64
	}{
		{"30", 30},
		{"2:05", 125},
		{"1:01:01", 3661},
		{"0:00:01.5", 1.5},
	}
	for _, c := range cases {
		got, err := ClockToSec(c.in)
		assert.NoError(err)
		assert.Equal(c.want, got, "clock %q", c.in)
	}

	for _, bad := range []string{"", "a:b", "1:2:3:4"} {
		_, err := ClockToSec(bad)
		assert.Error(err, "clock %q", bad)
	}
}
