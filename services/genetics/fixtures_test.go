package genetics

import (
	"leopa/api/models/constants/inheritance"
	m "leopa/api/models/genetics"
	"leopa/api/models/indexes"
)

var testMorphs = NewMorphTable(
	indexes.MorphDefinition{Id: "tremper_albino", Name: "Tremper Albino", Inheritance: inheritance.Recessive, AlbinoGroup: "albino"},
	indexes.MorphDefinition{Id: "bell_albino", Name: "Bell Albino", Inheritance: inheritance.Recessive, AlbinoGroup: "albino"},
	indexes.MorphDefinition{Id: "eclipse", Name: "Eclipse", Inheritance: inheritance.Recessive},
	indexes.MorphDefinition{Id: "blizzard", Name: "Blizzard", Inheritance: inheritance.Recessive},
	indexes.MorphDefinition{Id: "mack_snow", Name: "Mack Snow", Inheritance: inheritance.Codominant, SuperForm: "Super Snow"},
	indexes.MorphDefinition{Id: "gem_snow", Name: "Gem Snow", Inheritance: inheritance.Codominant},
	indexes.MorphDefinition{Id: "lemon_frost", Name: "Lemon Frost", Inheritance: inheritance.Dominant,
		HealthWarning: "⚠️ Prone to iridophoroma (skin tumours)."},
	indexes.MorphDefinition{Id: "white_and_yellow", Name: "White & Yellow", Inheritance: inheritance.Dominant},
)

func parent(loci ...m.LocusGenotype) m.ParentGenotype {
	return m.NewParentGenotype(loci...)
}

func sumOutcomes(outcomes []m.CombinedOutcome) float64 {
	total := 0.0
	for _, o := range outcomes {
		total += o.Probability
	}
	return total
}
