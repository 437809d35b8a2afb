package catalog

import (
	"testing"

	"github.com/jsphweid/fretchord/note"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStandardCatalogShape(t *testing.T) {
	c := Default()
	assert := assert.New(t)
	assert.Equal(Standard, c.Name())
	assert.Equal(37, c.Len())
	assert.Equal([]string{"major", "minor", "seventh", "suspended", "add", "diminished", "augmented", "sixth"}, c.Categories())
	assert.Len(c.ByCategory("major"), 7)
	assert.Len(c.ByCategory("seventh"), 11)
}

func TestExtendedCatalogShape(t *testing.T) {
	c, err := Get(Extended)
	assert.NoError(t, err)
	assert.Equal(t, len(qualities)*12, c.Len())

	d, ok := c.Find("F#m9")
	assert.True(t, ok)
	assert.Equal(t, []string{"F#", "A", "C#", "E", "G#"}, d.Notes)
	assert.Equal(t, "ninth", d.Category)
}

func TestExtendedContainsStandardChords(t *testing.T) {
	ext, _ := Get(Extended)
	for _, d := range Default().Entries() {
		found, ok := ext.Find(d.Name)
		if assert.True(t, ok, d.Name) {
			assert.ElementsMatch(t, d.Notes, found.Notes, d.Name)
		}
	}
}

func TestEntriesAreWellFormed(t *testing.T) {
	for _, name := range Names() {
		c, err := Get(name)
		assert.NoError(t, err)
		names := make(map[string]bool)
		for _, d := range c.Entries() {
			assert.False(t, names[d.Name], "duplicate %s in %s", d.Name, name)
			names[d.Name] = true
			assert.NotEmpty(t, d.Type)
			assert.NotEmpty(t, d.Structure)
			assert.Equal(t, d.Notes, note.Unique(d.Notes), d.Name)
			for _, n := range d.Notes {
				assert.True(t, note.IsPitchClass(n), "%s has %q", d.Name, n)
			}
		}
	}
}

func TestEntriesCannotBeMutated(t *testing.T) {
	c := Default()
	entries := c.Entries()
	entries[0].Notes[0] = "B"
	entries[0].Name = "nope"

	d, ok := c.Find("C Major")
	assert.True(t, ok)
	assert.Equal(t, []string{"C", "E", "G"}, d.Notes)
}

func TestGetUnknownCatalog(t *testing.T) {
	_, err := Get("jazz")
	assert.True(t, errors.Is(err, ErrUnknownCatalog))
	assert.Equal(t, []string{Extended, Standard}, Names())
}
