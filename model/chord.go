package model

// ChordSpec selects a diatonic chord: the triad built on Degree (1..7) of
// the ScaleType scale rooted at ScaleRoot, voiced around OctaveArea.
type ChordSpec struct {
	Degree     int
	ScaleRoot  string
	ScaleType  string
	OctaveArea string

	// RemoveSecond drops the middle chord tone.
	RemoveSecond bool
	// AddLowerOctave prepends the lowest tone an octave down.
	AddLowerOctave bool
	// AddUpperOctave duplicates the highest tone an octave up.
	AddUpperOctave bool
}
