package fretboard

import (
	"fmt"

	"github.com/jsphweid/fretchord/constants"
	"github.com/jsphweid/fretchord/model"
	"github.com/jsphweid/fretchord/note"
	"github.com/pkg/errors"
)

var ErrOutOfRange = errors.New("coordinate out of range")

type Tuning []model.GuitarString

// low E to high E
var standard = Tuning{
	{Name: "E", BasePitchClass: 4, Octave: 2},
	{Name: "A", BasePitchClass: 9, Octave: 2},
	{Name: "D", BasePitchClass: 2, Octave: 3},
	{Name: "G", BasePitchClass: 7, Octave: 3},
	{Name: "B", BasePitchClass: 11, Octave: 3},
	{Name: "E", BasePitchClass: 4, Octave: 4},
}

func Standard() Tuning {
	return append(Tuning(nil), standard...)
}

func (t Tuning) Validate(c model.Coordinate) error {
	if c.String < 0 || c.String >= len(t) {
		return errors.Wrapf(ErrOutOfRange, "string %d not in [0, %d)", c.String, len(t))
	}
	if c.Fret < 0 || c.Fret > constants.MaxFret {
		return errors.Wrapf(ErrOutOfRange, "fret %d not in [0, %d]", c.Fret, constants.MaxFret)
	}
	return nil
}

// ResolvePitchClass returns the pitch class sounding at the given string and
// fret. Callers are expected to pass coordinates that exist on the board; it
// panics otherwise. Use Lookup for untrusted input.
func ResolvePitchClass(t Tuning, stringIndex int, fret int) string {
	c := model.Coordinate{String: stringIndex, Fret: fret}
	if err := t.Validate(c); err != nil {
		panic("ResolvePitchClass: " + err.Error())
	}
	return note.Name(t[stringIndex].BasePitchClass + fret)
}

func (t Tuning) Lookup(c model.Coordinate) (string, error) {
	if err := t.Validate(c); err != nil {
		return "", err
	}
	return ResolvePitchClass(t, c.String, c.Fret), nil
}

func (t Tuning) MidiKey(c model.Coordinate) (uint8, error) {
	if err := t.Validate(c); err != nil {
		return 0, err
	}
	s := t[c.String]
	return uint8((s.Octave+1)*12 + s.BasePitchClass + c.Fret), nil
}

func (t Tuning) Label(c model.Coordinate) string {
	n, err := t.Lookup(c)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s - Fret %d - %s", t[c.String].Name, c.Fret, n)
}

func (t Tuning) Position(c model.Coordinate) (model.Position, error) {
	n, err := t.Lookup(c)
	if err != nil {
		return model.Position{}, err
	}
	return model.Position{Coordinate: c, Note: n, Label: t.Label(c)}, nil
}
