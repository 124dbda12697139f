// Package wav reads and writes IEEE-float RIFF/WAVE files for mix buffers.
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/itsbrex/loopy/mix"
)

var ErrBadFormat = errors.New("not a supported wav file")

const (
	floatFormat   = 3
	bitsPerSample = 32
)

// Encode writes b as a 32-bit float WAV. A zero-frame buffer is written as
// a valid file with an empty data chunk and a single channel.
func Encode(w io.Writer, b mix.Buffer, sampleRate int) error {
	channels := b.Channels()
	if channels == 0 {
		channels = 1
	}
	dataSize := b.Frames() * channels * 4
	byteRate := sampleRate * channels * 4

	out := make([]byte, 44+dataSize)
	copy(out[0:], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(36+dataSize))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], floatFormat)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(channels*4))
	binary.LittleEndian.PutUint16(out[34:], bitsPerSample)
	copy(out[36:], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))

	n := 44
	for _, frame := range b {
		for _, sample := range frame {
			binary.LittleEndian.PutUint32(out[n:], math.Float32bits(float32(sample)))
			n += 4
		}
	}

	_, err := w.Write(out)
	return err
}

// Decode reads a 32-bit float WAV into a buffer, returning it with the
// file's sample rate.
func Decode(r io.Reader) (mix.Buffer, int, error) {
	var header [12]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, 0, fmt.Errorf("reading riff header: %w", err)
	}
	if string(header[0:4]) != "RIFF" || string(header[8:12]) != "WAVE" {
		return nil, 0, fmt.Errorf("missing RIFF/WAVE magic: %w", ErrBadFormat)
	}

	var (
		channels   int
		sampleRate int
		haveFmt    bool
	)
	for {
		var chunk [8]byte
		if _, err := io.ReadFull(r, chunk[:]); err != nil {
			if err == io.EOF {
				return nil, 0, fmt.Errorf("no data chunk: %w", ErrBadFormat)
			}
			return nil, 0, fmt.Errorf("reading chunk header: %w", err)
		}
		size := binary.LittleEndian.Uint32(chunk[4:])

		switch string(chunk[0:4]) {
		case "fmt ":
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, 0, fmt.Errorf("reading fmt chunk: %w", err)
			}
			if size < 16 {
				return nil, 0, fmt.Errorf("fmt chunk too short: %w", ErrBadFormat)
			}
			format := binary.LittleEndian.Uint16(body[0:])
			bits := binary.LittleEndian.Uint16(body[14:])
			if format != floatFormat || bits != bitsPerSample {
				return nil, 0, fmt.Errorf("format %v with %v bits: %w", format, bits, ErrBadFormat)
			}
			channels = int(binary.LittleEndian.Uint16(body[2:]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:]))
			if channels == 0 {
				return nil, 0, fmt.Errorf("zero channels: %w", ErrBadFormat)
			}
			haveFmt = true
		case "data":
			if !haveFmt {
				return nil, 0, fmt.Errorf("data chunk before fmt: %w", ErrBadFormat)
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, 0, fmt.Errorf("reading data chunk: %w", err)
			}
			frames := int(size) / (channels * 4)
			b := mix.New(frames, channels)
			n := 0
			for i := 0; i < frames; i++ {
				for c := 0; c < channels; c++ {
					bits := binary.LittleEndian.Uint32(body[n:])
					b[i][c] = float64(math.Float32frombits(bits))
					n += 4
				}
			}
			return b, sampleRate, nil
		default:
			// skip unknown chunks, padded to even length
			skip := int64(size) + int64(size%2)
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, 0, fmt.Errorf("skipping chunk %q: %w", chunk[0:4], err)
			}
		}
	}
}
