package model

type Notes = []string

type ChordDefinition struct {
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	Category  string `json:"category" yaml:"category"`
	Notes     Notes  `json:"notes" yaml:"notes"`
	Structure string `json:"structure" yaml:"structure"`
}

type MatchResult struct {
	Name          string `json:"name" yaml:"name"`
	Type          string `json:"type" yaml:"type"`
	Category      string `json:"category" yaml:"category"`
	Structure     string `json:"structure" yaml:"structure"`
	Notes         Notes  `json:"notes" yaml:"notes"`
	Confidence    int    `json:"confidence" yaml:"confidence"`
	IsExactMatch  bool   `json:"is_exact_match" yaml:"is_exact_match"`
	MatchingNotes int    `json:"matching_notes" yaml:"matching_notes"`
	TotalNotes    int    `json:"total_notes" yaml:"total_notes"`
}
