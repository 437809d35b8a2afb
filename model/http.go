package model

type RecognitionRequestBody struct {
	Notes             Notes      `json:"notes"`
	SelectedPositions []Position `json:"selected_positions"`
}

type RecognitionResponse struct {
	RecognizedChords []MatchResult `json:"recognized_chords" yaml:"recognized_chords"`
	UniqueNotes      Notes         `json:"unique_notes" yaml:"unique_notes"`
	TotalNotes       int           `json:"total_notes" yaml:"total_notes"`
}

type PlayNoteRequestBody struct {
	Note     string `json:"note"`
	Octave   *int   `json:"octave,omitempty"`
	Duration *int   `json:"duration,omitempty"`
}

type PlayNoteResponse struct {
	Status   string `json:"status"`
	Note     string `json:"note"`
	Duration int    `json:"duration"`
}

type NoteInfo struct {
	Note      string   `json:"note"`
	Frequency *float64 `json:"frequency"`
	Available bool     `json:"available"`
}

type FretboardResponse struct {
	Strings []GuitarString `json:"strings"`
	Frets   int            `json:"frets"`
	Markers map[int]string `json:"markers"`
}

type SessionResponse struct {
	ID               string        `json:"id"`
	Positions        []Position    `json:"selected_positions"`
	UniqueNotes      Notes         `json:"unique_notes"`
	RecognizedChords []MatchResult `json:"recognized_chords"`
}

type ToggleRequestBody struct {
	String *int `json:"string"`
	Fret   *int `json:"fret"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

type CatalogResponse struct {
	Name       string            `json:"name" yaml:"name"`
	Categories []string          `json:"categories" yaml:"categories"`
	Chords     []ChordDefinition `json:"chords" yaml:"chords"`
}
