package genetics

import (
	"leopa/api/models/constants"
	unknownLocusPolicy "leopa/api/models/constants/unknown-locus-policy"
	z "leopa/api/models/constants/zygosity"
	m "leopa/api/models/genetics"
	"leopa/api/models/indexes"
)

// Calculator predicts offspring trait probabilities for a single pairing.
//
// A Calculator holds no mutable state: Calculate may be called concurrently
// as long as the MorphLookup is not modified underneath it.
type Calculator struct {
	morphs MorphLookup
	policy constants.UnknownLocusPolicy
}

func NewCalculator(morphs MorphLookup, policy constants.UnknownLocusPolicy) *Calculator {
	return &Calculator{
		morphs: morphs,
		policy: policy,
	}
}

// Calculate returns the offspring distribution for parent1 x parent2, sorted
// by descending probability. On a validation failure the outcome list is
// empty and the error is one of *AlbinoIncompatibilityError,
// *UnknownMorphError or *StatusMismatchError.
func (calc *Calculator) Calculate(parent1 m.ParentGenotype, parent2 m.ParentGenotype) ([]m.CombinedOutcome, error) {
	if err := checkAlbinoCompatibility(calc.morphs, parent1, parent2); err != nil {
		return []m.CombinedOutcome{}, err
	}

	loci, unknown := calc.Loci(parent1, parent2)
	if len(unknown) > 0 && calc.policy != unknownLocusPolicy.Skip {
		return []m.CombinedOutcome{}, newUnknownMorphError(calc.morphs, unknown)
	}

	perLocus := make([][]m.LocusOutcome, 0, len(loci))
	active := false
	for _, morph := range loci {
		s1, err := resolveStatus(1, morph, parent1)
		if err != nil {
			return []m.CombinedOutcome{}, err
		}
		s2, err := resolveStatus(2, morph, parent2)
		if err != nil {
			return []m.CombinedOutcome{}, err
		}
		if !s1.IsWild() || !s2.IsWild() {
			active = true
		}

		// wild x wild loci still contribute their Normal trait
		perLocus = append(perLocus, solveLocus(morph, s1, s2))
	}

	if !active {
		return []m.CombinedOutcome{{
			Traits:      []m.Trait{},
			DisplayName: normalPhenotype,
			Probability: 100,
		}}, nil
	}

	combined := combineLoci(perLocus)
	results := make([]m.CombinedOutcome, 0, len(combined))
	for _, c := range combined {
		results = append(results, m.CombinedOutcome{
			Traits:      c.traits,
			DisplayName: displayName(c.traits, calc.morphs),
			Probability: c.probability,
			Warnings:    healthWarnings(c.traits, calc.morphs),
		})
	}
	return results, nil
}

// Loci lists the catalog morphs present in either genotype, in the order
// they are first encountered (parent1 first), plus the ids the catalog does
// not know.
func (calc *Calculator) Loci(parent1 m.ParentGenotype, parent2 m.ParentGenotype) ([]indexes.MorphDefinition, []string) {
	var (
		loci    []indexes.MorphDefinition
		unknown []string
		seen    = map[string]bool{}
	)

	for _, parent := range []m.ParentGenotype{parent1, parent2} {
		for _, id := range parent.Loci() {
			if seen[id] {
				continue
			}
			seen[id] = true

			morph, ok := calc.morphs.GetMorph(id)
			if !ok {
				unknown = append(unknown, id)
				continue
			}
			if _, err := z.Wild(morph.Inheritance); err != nil {
				// no inheritance model to compute with
				continue
			}
			loci = append(loci, morph)
		}
	}
	return loci, unknown
}

// resolveStatus returns the parent's status at the morph's locus, wild when
// absent, and rejects a status from another inheritance category.
func resolveStatus(parentNumber int, morph indexes.MorphDefinition, parent m.ParentGenotype) (z.Status, error) {
	status, ok := parent.Status(morph.Id)
	if !ok || status == nil {
		return z.Wild(morph.Inheritance)
	}

	if status.Inheritance() != morph.Inheritance {
		return nil, &StatusMismatchError{
			Parent:      parentNumber,
			Morph:       morph.Name,
			Status:      status.String(),
			Inheritance: morph.Inheritance,
		}
	}
	return status, nil
}

// PossibleHetLoci counts the loci at which either parent carries a status
// that branches into more than one allele set.
func PossibleHetLoci(parent1 m.ParentGenotype, parent2 m.ParentGenotype) int {
	count := 0
	for _, parent := range []m.ParentGenotype{parent1, parent2} {
		for _, id := range parent.Loci() {
			status, _ := parent.Status(id)
			if status != nil && branchCount(status) > 1 {
				count++
			}
		}
	}
	return count
}
