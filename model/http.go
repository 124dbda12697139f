package model

type DecodeRequestBody struct {
	Steps      []int  `json:"steps"`
	Sig        string `json:"sig,omitempty"`
	Resolution string `json:"resolution,omitempty"`
	Space      string `json:"space,omitempty"`
	RestId     int    `json:"rest_id,omitempty"`
}

type DecodeResponse struct {
	Events []NoteEvent `json:"events"`
}

type ChordRequestBody struct {
	Degree       int    `json:"degree"`
	Root         string `json:"root"`
	Scale        string `json:"scale,omitempty"`
	Octave       string `json:"octave,omitempty"`
	RemoveSecond bool   `json:"remove_second,omitempty"`
	LowerOctave  bool   `json:"lower_octave,omitempty"`
	UpperOctave  bool   `json:"upper_octave,omitempty"`
}

type ChordResponse struct {
	Notes []string `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
