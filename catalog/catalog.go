package catalog

import (
	"sort"

	"github.com/jsphweid/fretchord/model"
	"github.com/pkg/errors"
)

var ErrUnknownCatalog = errors.New("unknown catalog")

const (
	Standard = "standard"
	Extended = "extended"
)

// Catalog is an immutable, ordered list of chord definitions. Order matters:
// it breaks ties when ranking matches.
type Catalog struct {
	name    string
	entries []model.ChordDefinition
}

var catalogs = map[string]*Catalog{
	Standard: {name: Standard, entries: standardEntries},
	Extended: {name: Extended, entries: generate(qualities)},
}

func Get(name string) (*Catalog, error) {
	c, ok := catalogs[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCatalog, "%q", name)
	}
	return c, nil
}

func Default() *Catalog {
	return catalogs[Standard]
}

func Names() []string {
	res := make([]string, 0, len(catalogs))
	for k := range catalogs {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

func (c *Catalog) Name() string {
	return c.name
}

func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of every definition in catalog order.
func (c *Catalog) Entries() []model.ChordDefinition {
	res := make([]model.ChordDefinition, len(c.entries))
	for i, e := range c.entries {
		res[i] = clone(e)
	}
	return res
}

func (c *Catalog) Find(name string) (model.ChordDefinition, bool) {
	for _, e := range c.entries {
		if e.Name == name {
			return clone(e), true
		}
	}
	return model.ChordDefinition{}, false
}

func (c *Catalog) Categories() []string {
	var res []string
	seen := make(map[string]bool)
	for _, e := range c.entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			res = append(res, e.Category)
		}
	}
	return res
}

func (c *Catalog) ByCategory(category string) []model.ChordDefinition {
	var res []model.ChordDefinition
	for _, e := range c.entries {
		if e.Category == category {
			res = append(res, clone(e))
		}
	}
	return res
}

func clone(d model.ChordDefinition) model.ChordDefinition {
	d.Notes = append(model.Notes(nil), d.Notes...)
	return d
}
