package chord

import (
	"testing"

	"github.com/jsphweid/fretchord/catalog"
	"github.com/jsphweid/fretchord/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(results []model.MatchResult) []string {
	res := make([]string, 0, len(results))
	for _, r := range results {
		res = append(res, r.Name)
	}
	return res
}

func TestNeedsTwoDistinctNotes(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(Recognize(nil))
	assert.Empty(Recognize([]string{}))
	assert.Empty(Recognize([]string{"C"}))
	assert.Empty(Recognize([]string{"C", "C"}))
	assert.NotNil(Recognize([]string{"C"}))
}

func TestExactCMajor(t *testing.T) {
	results := Recognize([]string{"C", "E", "G"})
	require.NotEmpty(t, results)

	first := results[0]
	assert := assert.New(t)
	assert.Equal("C Major", first.Name)
	assert.Equal(100, first.Confidence)
	assert.True(first.IsExactMatch)
	assert.Equal(3, first.MatchingNotes)
	assert.Equal(3, first.TotalNotes)
	assert.Equal("Major Chord", first.Type)
	assert.Equal("Root + Major 3rd + Perfect 5th", first.Structure)

	assert.Equal([]string{"C Major", "C7", "Cmaj7", "Am7", "Cadd9"}, names(results))
	for _, r := range results[1:] {
		assert.False(r.IsExactMatch)
		assert.Equal(85, r.Confidence)
	}
}

func TestPartialMatchRewardsMissingNotes(t *testing.T) {
	results := Recognize([]string{"C", "E"})
	require.NotEmpty(t, results)

	assert := assert.New(t)
	assert.Equal([]string{"C Major", "A Minor", "Caug", "C7", "Cmaj7"}, names(results))

	first := results[0]
	assert.Equal(2, first.MatchingNotes)
	assert.Equal(3, first.TotalNotes)
	assert.Equal(77, first.Confidence)
	assert.False(first.IsExactMatch)
	assert.Equal(70, results[3].Confidence)
}

func TestStrictPenaltyDoesNotRewardMissingNotes(t *testing.T) {
	m := NewMatcher(catalog.Default(), WithStrictPenalty())
	results := m.Recognize([]string{"C", "E"})
	require.NotEmpty(t, results)

	assert.Equal(t, "C Major", results[0].Name)
	assert.Equal(t, 67, results[0].Confidence)
	assert.Equal(t, 50, results[3].Confidence)
}

func TestExtraNotesArePenalized(t *testing.T) {
	results := Recognize([]string{"C", "E", "G", "B", "D"})

	assert := assert.New(t)
	assert.Equal([]string{"Cmaj7", "Em7", "Cadd9", "C Major", "G Major"}, names(results))
	assert.Equal([]int{90, 90, 90, 80, 80}, confidences(results))
	for _, r := range results {
		assert.False(r.IsExactMatch)
	}
}

func confidences(results []model.MatchResult) []int {
	res := make([]int, 0, len(results))
	for _, r := range results {
		res = append(res, r.Confidence)
	}
	return res
}

func TestUnknownNotesMatchNothingButCount(t *testing.T) {
	results := Recognize([]string{"C", "E", "G", "X"})
	require.NotEmpty(t, results)

	assert.Equal(t, "C Major", results[0].Name)
	assert.Equal(t, 90, results[0].Confidence)
	assert.False(t, results[0].IsExactMatch)

	assert.Empty(t, Recognize([]string{"H", "X", "Y"}))
}

func TestEnharmonicSpellingsMatchTheSame(t *testing.T) {
	flats := Recognize([]string{"Db", "F", "G"})
	sharps := Recognize([]string{"C#", "F", "G"})
	assert.Equal(t, sharps, flats)
	assert.Equal(t, []string{"Csus4", "G7", "A7"}, names(flats))
}

func TestInputOrderAndRepeatsDoNotMatter(t *testing.T) {
	want := Recognize([]string{"A", "C", "E", "G"})
	for _, notes := range [][]string{
		{"G", "E", "C", "A"},
		{"C", "A", "G", "E", "A"},
		{"E", "G", "A", "C", "C", "G"},
	} {
		assert.Equal(t, want, Recognize(notes))
	}
	assert.Equal(t, want, Recognize([]string{"A", "C", "E", "G"}))
	assert.Equal(t, "Am7", want[0].Name)
	assert.True(t, want[0].IsExactMatch)
}

func TestNeverMoreThanFiveResults(t *testing.T) {
	for _, notes := range [][]string{
		{"C", "E"},
		{"C", "E", "G"},
		{"C", "D", "E", "F", "G", "A", "B"},
		{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"},
	} {
		results := Recognize(notes)
		assert.LessOrEqual(t, len(results), 5)
		for i := 1; i < len(results); i++ {
			prev, curr := results[i-1], results[i]
			if prev.IsExactMatch == curr.IsExactMatch {
				assert.GreaterOrEqual(t, prev.Confidence, curr.Confidence)
			} else {
				assert.True(t, prev.IsExactMatch)
			}
		}
		for _, r := range results {
			assert.GreaterOrEqual(t, r.Confidence, 50)
			assert.LessOrEqual(t, r.Confidence, 100)
			assert.GreaterOrEqual(t, r.MatchingNotes, 2)
		}
	}
}

func TestMaxResultsOption(t *testing.T) {
	m := NewMatcher(catalog.Default(), WithMaxResults(2))
	assert.Len(t, m.Recognize([]string{"C", "E", "G"}), 2)

	m = NewMatcher(catalog.Default(), WithMaxResults(0))
	assert.Len(t, m.Recognize([]string{"C", "E", "G"}), 5)
}

func TestExtendedCatalogFindsNinths(t *testing.T) {
	ext, err := catalog.Get(catalog.Extended)
	require.NoError(t, err)

	results := NewMatcher(ext).Recognize([]string{"C", "E", "G", "B", "D"})
	require.NotEmpty(t, results)
	assert.Equal(t, "Cmaj9", results[0].Name)
	assert.True(t, results[0].IsExactMatch)
	assert.Equal(t, "ninth", results[0].Category)
}
