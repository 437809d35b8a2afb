package constants

// 25 positions per string, 0 is the open string.
const MaxFret = 24
const NumFrets = MaxFret + 1

// A chord needs at least this many distinct notes before we bother matching.
const MinChordNotes = 2

const MinMatchingNotes = 2
const MinConfidence = 50
const ExtraNotePenalty = 10
const MaxResults = 5

// highest key a MIDI note message can carry
const MaxMidiKey = 127

const EnvPrefix = "FRETCHORD"
const DefaultAddress = ":8080"
