package genetics

import (
	"math"
	"sort"

	m "leopa/api/models/genetics"
)

// combinations below this percentage are dropped
const pruneThreshold = 0.01

type partialOutcome struct {
	traits      []m.Trait
	probability float64
}

// combineLoci builds the joint distribution over whole offspring, assuming
// independent assortment. Loci are combined in the order given.
//
// A locus factor never exceeds 100%, so a partial combination that is
// already under the threshold can only shrink further; those are dropped
// while accumulating rather than after.
func combineLoci(perLocus [][]m.LocusOutcome) []partialOutcome {
	if len(perLocus) == 0 {
		return nil
	}

	combined := make([]partialOutcome, 0, len(perLocus[0]))
	for _, r := range perLocus[0] {
		if r.Probability < pruneThreshold {
			continue
		}
		combined = append(combined, partialOutcome{
			traits:      []m.Trait{toTrait(r)},
			probability: r.Probability,
		})
	}

	for _, locusOutcomes := range perLocus[1:] {
		next := make([]partialOutcome, 0, len(combined)*len(locusOutcomes))
		for _, existing := range combined {
			for _, r := range locusOutcomes {
				probability := existing.probability * r.Probability / 100
				if probability < pruneThreshold {
					continue
				}

				traits := make([]m.Trait, len(existing.traits), len(existing.traits)+1)
				copy(traits, existing.traits)
				next = append(next, partialOutcome{
					traits:      append(traits, toTrait(r)),
					probability: probability,
				})
			}
		}
		combined = next
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].probability > combined[j].probability
	})

	for i := range combined {
		combined[i].probability = roundPercent(combined[i].probability)
	}
	return combined
}

func toTrait(r m.LocusOutcome) m.Trait {
	return m.Trait{
		Locus:     r.Locus,
		Phenotype: r.Phenotype,
		Status:    r.Status,
	}
}

func roundPercent(p float64) float64 {
	return math.Round(p*100) / 100
}
