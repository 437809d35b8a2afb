package fretboard

import (
	"github.com/jsphweid/fretchord/model"
	"github.com/jsphweid/fretchord/note"
)

// Selection is the set of marked coordinates in the order they were marked.
// It is not safe for concurrent use.
type Selection struct {
	tuning Tuning
	coords []model.Coordinate
}

func NewSelection(t Tuning) *Selection {
	return &Selection{tuning: t}
}

func (s *Selection) Tuning() Tuning {
	return s.tuning
}

func (s *Selection) index(c model.Coordinate) int {
	for i, v := range s.coords {
		if v == c {
			return i
		}
	}
	return -1
}

// Toggle marks c, or unmarks it if it was already marked. It reports whether
// c is marked afterwards.
func (s *Selection) Toggle(c model.Coordinate) (bool, error) {
	if err := s.tuning.Validate(c); err != nil {
		return false, err
	}
	if i := s.index(c); i >= 0 {
		s.coords = append(s.coords[:i], s.coords[i+1:]...)
		return false, nil
	}
	s.coords = append(s.coords, c)
	return true, nil
}

func (s *Selection) Has(c model.Coordinate) bool {
	return s.index(c) >= 0
}

func (s *Selection) Clear() {
	s.coords = nil
}

func (s *Selection) Len() int {
	return len(s.coords)
}

func (s *Selection) Coordinates() []model.Coordinate {
	return append([]model.Coordinate(nil), s.coords...)
}

func (s *Selection) Positions() []model.Position {
	res := make([]model.Position, 0, len(s.coords))
	for _, c := range s.coords {
		// coordinates were validated on the way in
		p, _ := s.tuning.Position(c)
		res = append(res, p)
	}
	return res
}

// Notes resolves every marked coordinate, repeats included.
func (s *Selection) Notes() []string {
	res := make([]string, 0, len(s.coords))
	for _, c := range s.coords {
		res = append(res, ResolvePitchClass(s.tuning, c.String, c.Fret))
	}
	return res
}

func (s *Selection) PitchClasses() []string {
	return note.Unique(s.Notes())
}
