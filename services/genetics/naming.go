package genetics

import (
	"strings"

	"leopa/api/models/constants/inheritance"
	z "leopa/api/models/constants/zygosity"
	m "leopa/api/models/genetics"
)

const healthWarningMarker = "⚠️ "

func isHetCarrier(t m.Trait, morphs MorphLookup) bool {
	if t.Status != z.HeterozygousLabel {
		return false
	}
	morph, ok := morphs.GetMorph(t.Locus)
	return ok && morph.Inheritance == inheritance.Recessive
}

// displayName joins visible phenotypes ("Normal" if none) and appends the
// recessive het carriers, e.g. "Tremper Albino Mack Snow het Eclipse, Blizzard".
func displayName(traits []m.Trait, morphs MorphLookup) string {
	var visible, hets []string

	for _, t := range traits {
		if t.Status == z.WildLabel {
			continue
		}

		if isHetCarrier(t, morphs) {
			name := t.Phenotype
			if morph, ok := morphs.GetMorph(t.Locus); ok && morph.Name != "" {
				name = morph.Name
			}
			hets = append(hets, name)
		} else {
			visible = append(visible, t.Phenotype)
		}
	}

	name := normalPhenotype
	if len(visible) > 0 {
		name = strings.Join(visible, " ")
	}
	if len(hets) > 0 {
		name += " het " + strings.Join(hets, ", ")
	}
	return name
}

// healthWarnings collects the warnings of morphs that are expressed in the
// offspring: any visible dominant form and homozygous recessives.
func healthWarnings(traits []m.Trait, morphs MorphLookup) []string {
	var warnings []string

	for _, t := range traits {
		if t.Status == z.WildLabel {
			continue
		}
		morph, ok := morphs.GetMorph(t.Locus)
		if !ok || morph.HealthWarning == "" {
			continue
		}

		expressed := false
		switch morph.Inheritance {
		case inheritance.Dominant:
			expressed = t.Status == z.HeterozygousLabel || t.Status == z.HomozygousLabel
		case inheritance.Recessive:
			expressed = t.Status == z.HomozygousLabel
		}
		if expressed {
			warnings = append(warnings, strings.TrimPrefix(morph.HealthWarning, healthWarningMarker))
		}
	}
	return warnings
}
