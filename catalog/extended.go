package catalog

import (
	"fmt"

	"github.com/jsphweid/fretchord/model"
	"github.com/jsphweid/fretchord/note"
)

type quality struct {
	format    string
	typ       string
	category  string
	structure string
	intervals []int
}

// Every quality is spelled from each of the twelve roots.
var qualities = []quality{
	{"%s Major", "Major Chord", "major", triadMajor, []int{0, 4, 7}},
	{"%s Minor", "Minor Chord", "minor", triadMinor, []int{0, 3, 7}},
	{"%s7", "Dominant 7th", "seventh", dom7, []int{0, 4, 7, 10}},
	{"%smaj7", "Major 7th", "seventh", maj7, []int{0, 4, 7, 11}},
	{"%sm7", "Minor 7th", "seventh", min7, []int{0, 3, 7, 10}},
	{"%ssus2", "Suspended 2nd", "suspended", sus2, []int{0, 2, 7}},
	{"%ssus4", "Suspended 4th", "suspended", sus4, []int{0, 5, 7}},
	{"%sadd9", "Add 9th", "add", add9, []int{0, 4, 7, 2}},
	{"%sdim", "Diminished", "diminished", dim, []int{0, 3, 6}},
	{"%saug", "Augmented", "augmented", aug, []int{0, 4, 8}},
	{"%s6", "Major 6th", "sixth", maj6, []int{0, 4, 7, 9}},
	{"%sm6", "Minor 6th", "sixth", min6, []int{0, 3, 7, 9}},
	{"%s9", "9th", "ninth", dom9, []int{0, 4, 7, 10, 2}},
	{"%sm9", "Minor 9th", "ninth", min9, []int{0, 3, 7, 10, 2}},
	{"%smaj9", "Major 9th", "ninth", maj9, []int{0, 4, 7, 11, 2}},
}

func generate(qs []quality) []model.ChordDefinition {
	res := make([]model.ChordDefinition, 0, len(qs)*len(note.Names))
	for _, q := range qs {
		for root := range note.Names {
			notes := make(model.Notes, 0, len(q.intervals))
			for _, interval := range q.intervals {
				notes = append(notes, note.Name(root+interval))
			}
			res = append(res, def(fmt.Sprintf(q.format, note.Name(root)), q.typ, q.category, q.structure, notes...))
		}
	}
	return res
}
