package genetics

import (
	"math"

	"leopa/api/models/constants/inheritance"
	z "leopa/api/models/constants/zygosity"
	m "leopa/api/models/genetics"
	"leopa/api/models/indexes"
)

const (
	normalPhenotype = "Normal"
	cellWeight      = 0.25 // each square of a 2x2 Punnett square
)

// genotypeKey orders the pair so that "Aa" and "aA" collapse to one key.
func genotypeKey(a1, a2 byte) string {
	if a1 <= a2 {
		return string([]byte{a1, a2})
	}
	return string([]byte{a2, a1})
}

// solveLocus expands both parents' allele branches at one locus into a
// Punnett square and interprets each resulting genotype for the morph.
func solveLocus(morph indexes.MorphDefinition, s1 z.Status, s2 z.Status) []m.LocusOutcome {
	var (
		keys    []string // first-seen order
		weights = map[string]float64{}
	)

	for _, b1 := range mapAlleles(s1) {
		for _, b2 := range mapAlleles(s2) {
			w := b1.weight * b2.weight * cellWeight
			for _, a1 := range b1.alleles {
				for _, a2 := range b2.alleles {
					key := genotypeKey(a1, a2)
					if _, seen := weights[key]; !seen {
						keys = append(keys, key)
					}
					weights[key] += w
				}
			}
		}
	}

	outcomes := make([]m.LocusOutcome, 0, len(keys))
	for _, key := range keys {
		probability := math.Round(weights[key]*10000) / 100 // percent, 2 decimals
		if probability <= 0 {
			continue
		}

		phenotype, status := interpretGenotype(morph, key)
		outcomes = append(outcomes, m.LocusOutcome{
			Locus:       morph.Id,
			Genotype:    key,
			Phenotype:   phenotype,
			Status:      status,
			Probability: probability,
		})
	}
	return outcomes
}

// interpretGenotype maps a canonical genotype key to a phenotype label and
// the resulting status label.
func interpretGenotype(morph indexes.MorphDefinition, key string) (string, string) {
	switch morph.Inheritance {
	case inheritance.Recessive:
		switch key {
		case "aa":
			return morph.Name, z.HomozygousLabel
		case "Aa", "aA":
			return "het " + morph.Name, z.HeterozygousLabel
		}
	case inheritance.Dominant:
		switch key {
		case "DD":
			return morph.Name + " (Homozygous)", z.HomozygousLabel
		case "Dd", "dD":
			return morph.Name, z.HeterozygousLabel
		}
	case inheritance.Codominant:
		switch key {
		case "SS":
			return morph.SuperFormLabel(), z.SuperLabel
		case "Ss", "sS":
			// the single-copy visual form is reported as homozygous
			return morph.Name, z.HomozygousLabel
		}
	}
	return normalPhenotype, z.WildLabel
}
