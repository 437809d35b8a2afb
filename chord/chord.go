package chord

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/fretchord/note"
)

// CreateChordKey identifies a set of notes regardless of order, spelling or
// repeats. Unknown names sort after the pitch classes and are quoted so they
// cannot collide with them.
func CreateChordKey(notes []string) string {
	unique := note.Unique(notes)
	sort.SliceStable(unique, func(i, j int) bool {
		a, aok := note.Index(unique[i])
		b, bok := note.Index(unique[j])
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		default:
			return unique[i] < unique[j]
		}
	})

	parts := make([]string, len(unique))
	for i, n := range unique {
		if note.IsPitchClass(n) {
			parts[i] = n
		} else {
			parts[i] = strconv.Quote(n)
		}
	}
	return strings.Join(parts, "-")
}
