package model

type Coordinate struct {
	String int `json:"string"`
	Fret   int `json:"fret"`
}

type GuitarString struct {
	Name           string `json:"name"`
	BasePitchClass int    `json:"base_note"`
	Octave         int    `json:"octave"`
}

// Position is a marked coordinate together with what it resolves to.
type Position struct {
	Coordinate
	Note  string `json:"note"`
	Label string `json:"label,omitempty"`
}
