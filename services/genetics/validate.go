package genetics

import (
	m "leopa/api/models/genetics"

	"github.com/agnivade/levenshtein"
)

// maximum edit distance for an unknown id to get a suggestion
const maxSuggestionDistance = 3

// checkAlbinoCompatibility fails on the first parent carrying more than one
// active albino-tagged morph. Parents are numbered from 1 in argument order.
func checkAlbinoCompatibility(morphs MorphLookup, parents ...m.ParentGenotype) error {
	for i, parent := range parents {
		albinos := albinoMorphs(morphs, parent)
		if len(albinos) > 1 {
			return &AlbinoIncompatibilityError{
				Parent: i + 1,
				Morphs: albinos,
			}
		}
	}
	return nil
}

// albinoMorphs returns the names of the parent's non-wild loci that carry
// an albino group tag. Unknown loci are ignored.
func albinoMorphs(morphs MorphLookup, parent m.ParentGenotype) []string {
	var names []string
	for _, locus := range parent.Loci() {
		status, _ := parent.Status(locus)
		if status == nil || status.IsWild() {
			continue
		}
		morph, ok := morphs.GetMorph(locus)
		if ok && morph.AlbinoGroup != "" {
			names = append(names, morph.Name)
		}
	}
	return names
}

// newUnknownMorphError attaches the closest catalog id to each unknown id
// where one is within maxSuggestionDistance edits.
func newUnknownMorphError(morphs MorphLookup, unknown []string) *UnknownMorphError {
	e := &UnknownMorphError{
		Ids:         unknown,
		Suggestions: map[string]string{},
	}

	known := morphs.MorphIds()
	for _, id := range unknown {
		best, bestDistance := "", maxSuggestionDistance+1
		for _, candidate := range known {
			d := levenshtein.ComputeDistance(id, candidate)
			if d < bestDistance {
				best, bestDistance = candidate, d
			}
		}
		if best != "" && bestDistance < len(id) {
			e.Suggestions[id] = best
		}
	}
	return e
}
