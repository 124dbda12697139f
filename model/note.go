package model

// NoteEvent is one decoded note. Duration is in whole-note fractions,
// Position in beats from the start of the pattern.
type NoteEvent struct {
	Pitch    string  `json:"pitch"`
	Duration float64 `json:"duration"`
	Position float64 `json:"position"`
}

type TimeSignature struct {
	BeatsPerBar int
	// BeatValue is the length of one beat in whole notes, i.e. 1/denominator.
	BeatValue float64
}
