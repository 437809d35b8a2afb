package chord

import (
	"math"
	"sort"

	"github.com/jsphweid/fretchord/catalog"
	"github.com/jsphweid/fretchord/constants"
	"github.com/jsphweid/fretchord/model"
	"github.com/jsphweid/fretchord/note"
	"github.com/jsphweid/fretchord/util"
)

type Recognizer interface {
	Recognize(observed []string) []model.MatchResult
}

type Option func(*Matcher)

// WithStrictPenalty only penalizes observed notes beyond the chord's size.
// By default a smaller observed set is rewarded by the same term.
func WithStrictPenalty() Option {
	return func(m *Matcher) {
		m.strict = true
	}
}

func WithMaxResults(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.maxResults = n
		}
	}
}

type entry struct {
	def   model.ChordDefinition
	notes map[string]bool
}

type Matcher struct {
	catalog    *catalog.Catalog
	entries    []entry
	strict     bool
	maxResults int
}

func NewMatcher(c *catalog.Catalog, opts ...Option) *Matcher {
	m := &Matcher{catalog: c, maxResults: constants.MaxResults}
	for _, opt := range opts {
		opt(m)
	}

	for _, d := range c.Entries() {
		for i, n := range d.Notes {
			d.Notes[i] = note.Normalize(n)
		}
		notes := make(map[string]bool, len(d.Notes))
		for _, n := range d.Notes {
			notes[n] = true
		}
		m.entries = append(m.entries, entry{def: d, notes: notes})
	}
	return m
}

func (m *Matcher) Catalog() *catalog.Catalog {
	return m.catalog
}

func (m *Matcher) score(observed []string, e entry) model.MatchResult {
	total := len(e.def.Notes)
	var matching int
	for _, n := range observed {
		if e.notes[n] {
			matching++
		}
	}

	raw := int(math.Round(float64(matching) / float64(total) * 100))
	exact := len(observed) == total && raw == 100

	confidence := 100
	if !exact {
		extra := len(observed) - total
		if m.strict {
			extra = util.Max(extra, 0)
		}
		confidence = util.Clamp(raw-extra*constants.ExtraNotePenalty, 0, 100)
	}

	return model.MatchResult{
		Name:          e.def.Name,
		Type:          e.def.Type,
		Category:      e.def.Category,
		Structure:     e.def.Structure,
		Notes:         append(model.Notes(nil), e.def.Notes...),
		Confidence:    confidence,
		IsExactMatch:  exact,
		MatchingNotes: matching,
		TotalNotes:    total,
	}
}

// Recognize scores the distinct observed notes against every catalog entry
// and returns the best few, exact matches first.
func (m *Matcher) Recognize(observed []string) []model.MatchResult {
	unique := note.Unique(observed)
	res := make([]model.MatchResult, 0)
	if len(unique) < constants.MinChordNotes {
		return res
	}

	for _, e := range m.entries {
		if len(e.def.Notes) == 0 {
			continue
		}
		r := m.score(unique, e)
		if r.MatchingNotes >= constants.MinMatchingNotes && r.Confidence >= constants.MinConfidence {
			res = append(res, r)
		}
	}

	RankSortChords(res)
	return res[:util.Min(len(res), m.maxResults)]
}

// RankSortChords puts exact matches first, then higher confidence. Equal
// results keep their relative order.
func RankSortChords(results []model.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].IsExactMatch != results[j].IsExactMatch {
			return results[i].IsExactMatch
		}
		return results[i].Confidence > results[j].Confidence
	})
}

var defaultMatcher = NewMatcher(catalog.Default())

func Recognize(observed []string) []model.MatchResult {
	return defaultMatcher.Recognize(observed)
}
