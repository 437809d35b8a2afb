package note

import (
	"math"

	"github.com/pkg/errors"
)

var ErrUnknownNote = errors.New("unknown note")
var ErrOctaveOutOfRange = errors.New("octave out of range")

const (
	MinOctave = 0
	MaxOctave = 7
)

// Names are the twelve pitch classes spelled with sharps, starting at C.
var Names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
}

var indexes = func() map[string]int {
	res := make(map[string]int, len(Names))
	for i, n := range Names {
		res[n] = i
	}
	return res
}()

// Normalize respells the five common flats with sharps. Anything else is
// returned untouched.
func Normalize(n string) string {
	if sharp, ok := flatToSharp[n]; ok {
		return sharp
	}
	return n
}

func Index(n string) (int, bool) {
	i, ok := indexes[Normalize(n)]
	return i, ok
}

func Name(index int) string {
	return Names[((index%12)+12)%12]
}

func IsPitchClass(n string) bool {
	_, ok := Index(n)
	return ok
}

// Unique normalizes notes and drops repeats, keeping first-seen order.
func Unique(notes []string) []string {
	seen := make(map[string]bool, len(notes))
	res := make([]string, 0, len(notes))
	for _, n := range notes {
		n = Normalize(n)
		if seen[n] {
			continue
		}
		seen[n] = true
		res = append(res, n)
	}
	return res
}

func MidiKey(n string, octave int) (uint8, error) {
	i, ok := Index(n)
	if !ok {
		return 0, errors.Wrapf(ErrUnknownNote, "%q", n)
	}
	if octave < MinOctave || octave > MaxOctave {
		return 0, errors.Wrapf(ErrOctaveOutOfRange, "%d", octave)
	}
	return uint8((octave+1)*12 + i), nil
}

func FromMidiKey(key uint8) (string, int) {
	return Name(int(key)), int(key)/12 - 1
}

// Frequency is the equal-tempered frequency of the note, A4 = 440Hz,
// rounded to two decimals.
func Frequency(n string, octave int) (float64, error) {
	key, err := MidiKey(n, octave)
	if err != nil {
		return 0, err
	}
	f := 440.0 * math.Pow(2, (float64(key)-69)/12)
	return math.Round(f*100) / 100, nil
}
