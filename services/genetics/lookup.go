package genetics

import (
	"sort"

	"leopa/api/models/indexes"
)

// MorphLookup is the read-only morph metadata the calculator consults.
type MorphLookup interface {
	GetMorph(id string) (indexes.MorphDefinition, bool)
	MorphIds() []string
}

// MorphTable is an in-memory MorphLookup keyed by morph id.
type MorphTable map[string]indexes.MorphDefinition

func NewMorphTable(defs ...indexes.MorphDefinition) MorphTable {
	t := make(MorphTable, len(defs))
	for _, d := range defs {
		t[d.Id] = d
	}
	return t
}

func (t MorphTable) GetMorph(id string) (indexes.MorphDefinition, bool) {
	m, ok := t[id]
	return m, ok
}

// MorphIds returns every id in the table, sorted.
func (t MorphTable) MorphIds() []string {
	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
