package fretboard

import (
	"fmt"
	"testing"

	"github.com/jsphweid/fretchord/constants"
	"github.com/jsphweid/fretchord/model"
	"github.com/jsphweid/fretchord/note"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestOpenStringsResolveToStringNames(t *testing.T) {
	tuning := Standard()
	for s, str := range tuning {
		assert.Equal(t, str.Name, ResolvePitchClass(tuning, s, 0))
	}
}

func TestResolvesEveryPositionToAPitchClass(t *testing.T) {
	tuning := Standard()
	for s := range tuning {
		for fret := 0; fret <= constants.MaxFret; fret++ {
			n := ResolvePitchClass(tuning, s, fret)
			assert.Contains(t, note.Names[:], n)
			assert.Equal(t, n, ResolvePitchClass(tuning, s, fret))
		}
	}
}

func TestResolveIsPeriodic(t *testing.T) {
	tuning := Standard()
	for s := range tuning {
		for fret := 0; fret+12 <= constants.MaxFret; fret++ {
			name := fmt.Sprintf("string %d fret %d", s, fret)
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, ResolvePitchClass(tuning, s, fret), ResolvePitchClass(tuning, s, fret+12))
			})
		}
	}
}

func TestKnownPositions(t *testing.T) {
	tuning := Standard()
	cases := []struct {
		str, fret int
		want      string
	}{
		{0, 3, "G"},
		{0, 8, "C"},
		{1, 3, "C"},
		{2, 2, "E"},
		{3, 1, "G#"},
		{4, 1, "C"},
		{5, 24, "E"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ResolvePitchClass(tuning, c.str, c.fret))
	}
}

func TestResolvePanicsOutOfRange(t *testing.T) {
	tuning := Standard()
	assert.Panics(t, func() { ResolvePitchClass(tuning, 6, 0) })
	assert.Panics(t, func() { ResolvePitchClass(tuning, 0, 25) })
	assert.Panics(t, func() { ResolvePitchClass(tuning, -1, 0) })
}

func TestLookupReturnsErrOutOfRange(t *testing.T) {
	tuning := Standard()
	_, err := tuning.Lookup(model.Coordinate{String: 0, Fret: -1})
	assert.True(t, errors.Is(err, ErrOutOfRange))

	n, err := tuning.Lookup(model.Coordinate{String: 1, Fret: 2})
	assert.NoError(t, err)
	assert.Equal(t, "B", n)
}

func TestStandardReturnsACopy(t *testing.T) {
	tuning := Standard()
	tuning[0].BasePitchClass = 0
	assert.Equal(t, 4, Standard()[0].BasePitchClass)
}

func TestMidiKey(t *testing.T) {
	tuning := Standard()
	key, err := tuning.MidiKey(model.Coordinate{String: 0, Fret: 0})
	assert.NoError(t, err)
	assert.Equal(t, uint8(40), key)

	key, err = tuning.MidiKey(model.Coordinate{String: 5, Fret: 5})
	assert.NoError(t, err)
	assert.Equal(t, uint8(69), key)
}

func TestLabel(t *testing.T) {
	tuning := Standard()
	assert.Equal(t, "E - Fret 3 - G", tuning.Label(model.Coordinate{String: 0, Fret: 3}))
	assert.Equal(t, "", tuning.Label(model.Coordinate{String: 9, Fret: 3}))
}

func TestMarkers(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(DoubleMarker, MarkerAt(12))
	assert.Equal(DoubleMarker, MarkerAt(24))
	assert.Equal(SingleMarker, MarkerAt(3))
	assert.Equal(NoMarker, MarkerAt(0))
	assert.Equal(NoMarker, MarkerAt(13))

	markers := Markers()
	assert.Len(markers, 10)
	assert.Equal("double-marker", markers[12])
	assert.Equal("single-marker", markers[21])
}
