package catalog

import "github.com/jsphweid/fretchord/model"

const (
	triadMajor = "Root + Major 3rd + Perfect 5th"
	triadMinor = "Root + Minor 3rd + Perfect 5th"
	dom7       = "Root + Major 3rd + Perfect 5th + Minor 7th"
	maj7       = "Root + Major 3rd + Perfect 5th + Major 7th"
	min7       = "Root + Minor 3rd + Perfect 5th + Minor 7th"
	sus2       = "Root + 2nd + Perfect 5th"
	sus4       = "Root + Perfect 4th + Perfect 5th"
	add9       = "Root + Major 3rd + Perfect 5th + 9th"
	dim        = "Root + Minor 3rd + Diminished 5th"
	aug        = "Root + Major 3rd + Augmented 5th"
	maj6       = "Root + Major 3rd + Perfect 5th + Major 6th"
	min6       = "Root + Minor 3rd + Perfect 5th + Major 6th"
	dom9       = "Root + Major 3rd + Perfect 5th + Minor 7th + 9th"
	min9       = "Root + Minor 3rd + Perfect 5th + Minor 7th + 9th"
	maj9       = "Root + Major 3rd + Perfect 5th + Major 7th + 9th"
)

func def(name, typ, category, structure string, notes ...string) model.ChordDefinition {
	return model.ChordDefinition{Name: name, Type: typ, Category: category, Notes: notes, Structure: structure}
}

var standardEntries = []model.ChordDefinition{
	def("C Major", "Major Chord", "major", triadMajor, "C", "E", "G"),
	def("D Major", "Major Chord", "major", triadMajor, "D", "F#", "A"),
	def("E Major", "Major Chord", "major", triadMajor, "E", "G#", "B"),
	def("F Major", "Major Chord", "major", triadMajor, "F", "A", "C"),
	def("G Major", "Major Chord", "major", triadMajor, "G", "B", "D"),
	def("A Major", "Major Chord", "major", triadMajor, "A", "C#", "E"),
	def("B Major", "Major Chord", "major", triadMajor, "B", "D#", "F#"),

	def("A Minor", "Minor Chord", "minor", triadMinor, "A", "C", "E"),
	def("D Minor", "Minor Chord", "minor", triadMinor, "D", "F", "A"),
	def("E Minor", "Minor Chord", "minor", triadMinor, "E", "G", "B"),
	def("F Minor", "Minor Chord", "minor", triadMinor, "F", "G#", "C"),
	def("G Minor", "Minor Chord", "minor", triadMinor, "G", "A#", "D"),
	def("B Minor", "Minor Chord", "minor", triadMinor, "B", "D", "F#"),
	def("C Minor", "Minor Chord", "minor", triadMinor, "C", "D#", "G"),

	def("C7", "Dominant 7th", "seventh", dom7, "C", "E", "G", "A#"),
	def("D7", "Dominant 7th", "seventh", dom7, "D", "F#", "A", "C"),
	def("E7", "Dominant 7th", "seventh", dom7, "E", "G#", "B", "D"),
	def("G7", "Dominant 7th", "seventh", dom7, "G", "B", "D", "F"),
	def("A7", "Dominant 7th", "seventh", dom7, "A", "C#", "E", "G"),

	def("Cmaj7", "Major 7th", "seventh", maj7, "C", "E", "G", "B"),
	def("Dmaj7", "Major 7th", "seventh", maj7, "D", "F#", "A", "C#"),
	def("Gmaj7", "Major 7th", "seventh", maj7, "G", "B", "D", "F#"),

	def("Am7", "Minor 7th", "seventh", min7, "A", "C", "E", "G"),
	def("Dm7", "Minor 7th", "seventh", min7, "D", "F", "A", "C"),
	def("Em7", "Minor 7th", "seventh", min7, "E", "G", "B", "D"),

	def("Csus2", "Suspended 2nd", "suspended", sus2, "C", "D", "G"),
	def("Csus4", "Suspended 4th", "suspended", sus4, "C", "F", "G"),
	def("Dsus2", "Suspended 2nd", "suspended", sus2, "D", "E", "A"),
	def("Dsus4", "Suspended 4th", "suspended", sus4, "D", "G", "A"),

	def("Cadd9", "Add 9th", "add", add9, "C", "D", "E", "G"),
	def("Gadd9", "Add 9th", "add", add9, "G", "A", "B", "D"),

	def("Cdim", "Diminished", "diminished", dim, "C", "D#", "F#"),
	def("Ddim", "Diminished", "diminished", dim, "D", "F", "G#"),

	def("Caug", "Augmented", "augmented", aug, "C", "E", "G#"),
	def("Gaug", "Augmented", "augmented", aug, "G", "B", "D#"),

	def("C6", "Major 6th", "sixth", maj6, "C", "E", "G", "A"),
	def("Am6", "Minor 6th", "sixth", min6, "A", "C", "E", "F#"),
}
