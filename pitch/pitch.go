// Package pitch maps between the three pitch representations used across
// the toolkit: 1-based piano key ids (1-88), MIDI note numbers (21-108)
// and human-readable key names ("A0" .. "C8").
package pitch

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange   = errors.New("pitch id out of range")
	ErrNameNotFound = errors.New("pitch name not found")
)

// midiOffset is the fixed distance between a piano id and its MIDI id.
const midiOffset = 20

const numKeys = 88

var (
	keyNames [numKeys]string
	keyToId  map[string]int
)

func buildKeyTable() [numKeys]string {
	var keys [numKeys]string
	keys[0], keys[1], keys[2], keys[3] = "A0", "A#0", "B0", "C0"
	n := 4
	for i := 1; i < 8; i++ {
		for _, letter := range []string{"C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"} {
			keys[n] = fmt.Sprintf("%s%d", letter, i)
			n++
		}
		keys[n] = fmt.Sprintf("C%d", i+1)
		n++
	}
	return keys
}

func init() {
	keyNames = buildKeyTable()
	keyToId = make(map[string]int, numKeys)
	for i, name := range keyNames {
		keyToId[name] = i + 1
	}
}

// FromPianoId returns the key name for a piano id in [1, 88].
func FromPianoId(id int) (string, error) {
	if id < 1 || id > numKeys {
		return "", fmt.Errorf("piano id %v: %w", id, ErrOutOfRange)
	}
	return keyNames[id-1], nil
}

// ToPianoId returns the piano id for a key name.
func ToPianoId(name string) (int, error) {
	id, ok := keyToId[name]
	if !ok {
		return 0, fmt.Errorf("key %q: %w", name, ErrNameNotFound)
	}
	return id, nil
}

// FromMidiId returns the key name for a MIDI id in [21, 108].
func FromMidiId(id int) (string, error) {
	if id < 1+midiOffset || id > numKeys+midiOffset {
		return "", fmt.Errorf("midi id %v: %w", id, ErrOutOfRange)
	}
	return keyNames[id-midiOffset-1], nil
}

// ToMidiId returns the MIDI id for a key name.
func ToMidiId(name string) (int, error) {
	id, ok := keyToId[name]
	if !ok {
		return 0, fmt.Errorf("key %q: %w", name, ErrNameNotFound)
	}
	return id + midiOffset, nil
}

// PianoToMidi converts a piano id to the MIDI id of the same key.
func PianoToMidi(id int) (int, error) {
	if id < 1 || id > numKeys {
		return 0, fmt.Errorf("piano id %v: %w", id, ErrOutOfRange)
	}
	return id + midiOffset, nil
}

// MidiToPiano converts a MIDI id to the piano id of the same key.
func MidiToPiano(id int) (int, error) {
	if id < 1+midiOffset || id > numKeys+midiOffset {
		return 0, fmt.Errorf("midi id %v: %w", id, ErrOutOfRange)
	}
	return id - midiOffset, nil
}
