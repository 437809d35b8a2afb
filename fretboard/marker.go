package fretboard

import "github.com/jsphweid/fretchord/constants"

type Marker int

const (
	NoMarker Marker = iota
	SingleMarker
	DoubleMarker
)

func (m Marker) String() string {
	switch m {
	case SingleMarker:
		return "single-marker"
	case DoubleMarker:
		return "double-marker"
	default:
		return ""
	}
}

func MarkerAt(fret int) Marker {
	switch fret {
	case 12, 24:
		return DoubleMarker
	case 3, 5, 7, 9, 15, 17, 19, 21:
		return SingleMarker
	default:
		return NoMarker
	}
}

// Markers maps every inlaid fret to its marker name.
func Markers() map[int]string {
	res := make(map[int]string)
	for fret := 0; fret <= constants.MaxFret; fret++ {
		if m := MarkerAt(fret); m != NoMarker {
			res[fret] = m.String()
		}
	}
	return res
}
