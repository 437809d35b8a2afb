package note

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeFlats(t *testing.T) {
	cases := map[string]string{
		"Db": "C#",
		"Eb": "D#",
		"Gb": "F#",
		"Ab": "G#",
		"Bb": "A#",
		"C":  "C",
		"F#": "F#",
		"H":  "H",
		"":   "",
	}

	for in, want := range cases {
		t.Run(fmt.Sprintf("normalize %q", in), func(t *testing.T) {
			assert.Equal(t, want, Normalize(in))
		})
	}
}

func TestIndexAcceptsFlats(t *testing.T) {
	assert := assert.New(t)

	i, ok := Index("Bb")
	assert.True(ok)
	assert.Equal(10, i)

	_, ok = Index("Cb")
	assert.False(ok)
}

func TestNameWrapsAround(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", Name(0))
	assert.Equal("C", Name(12))
	assert.Equal("B", Name(-1))
	assert.Equal("E", Name(28))
}

func TestUniqueKeepsFirstSeenOrder(t *testing.T) {
	assert.Equal(t, []string{"G", "C#", "F"}, Unique([]string{"G", "Db", "C#", "F", "G"}))
	assert.Empty(t, Unique(nil))
}

func TestMidiKey(t *testing.T) {
	assert := assert.New(t)

	key, err := MidiKey("C", 4)
	assert.NoError(err)
	assert.Equal(uint8(60), key)

	key, err = MidiKey("A", 4)
	assert.NoError(err)
	assert.Equal(uint8(69), key)

	_, err = MidiKey("X", 4)
	assert.True(errors.Is(err, ErrUnknownNote))

	_, err = MidiKey("C", 8)
	assert.True(errors.Is(err, ErrOctaveOutOfRange))
}

func TestFromMidiKey(t *testing.T) {
	name, octave := FromMidiKey(64)
	assert.Equal(t, "E", name)
	assert.Equal(t, 4, octave)
}

func TestFrequency(t *testing.T) {
	cases := []struct {
		note   string
		octave int
		want   float64
	}{
		{"A", 4, 440},
		{"A", 3, 220},
		{"C", 4, 261.63},
		{"E", 2, 82.41},
		{"Bb", 4, 466.16},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%s%d", c.note, c.octave), func(t *testing.T) {
			f, err := Frequency(c.note, c.octave)
			assert.NoError(t, err)
			assert.Equal(t, c.want, f)
		})
	}
}
