package genetics

import (
	"fmt"
	"strings"

	"leopa/api/models/constants/inheritance"
	z "leopa/api/models/constants/zygosity"
	m "leopa/api/models/genetics"
	"leopa/api/models/indexes"

	. "github.com/ahmetb/go-linq"
)

// suggested pairing patterns, fastest first
const (
	PatternVisualByVisual = "visual_x_visual"
	PatternHetByHet       = "het_x_het"
	PatternVisualByHet    = "visual_x_het"
)

// Pairing is one suggested pair of parents for a combination and the
// calculated chance that an offspring shows every component.
type Pairing struct {
	Pattern           string
	Parent1           m.ParentGenotype
	Parent2           m.ParentGenotype
	TargetProbability float64
	Outcomes          []m.CombinedOutcome
}

type PairingPlan struct {
	Combo    indexes.ComboMorph
	Pairings []Pairing
	Notes    []string
}

// PlanPairings suggests parents that can produce the combination: both
// visual, and when recessive components are involved, het x het and
// visual x het. Dominant and codominant components are visual on both
// parents since they cannot be carried hidden. Each pairing is run through
// Calculate.
func (calc *Calculator) PlanPairings(combo indexes.ComboMorph) (*PairingPlan, error) {
	var (
		components []indexes.MorphDefinition
		unknown    []string
		recessive  int
		dominant   []string
		albino     []string
	)
	for _, id := range combo.Components {
		morph, ok := calc.morphs.GetMorph(id)
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		components = append(components, morph)

		switch morph.Inheritance {
		case inheritance.Recessive:
			recessive++
			if morph.AlbinoGroup != "" {
				albino = append(albino, morph.Name)
			}
		case inheritance.Dominant:
			dominant = append(dominant, morph.Name)
		}
	}
	if len(unknown) > 0 {
		return nil, newUnknownMorphError(calc.morphs, unknown)
	}
	if len(albino) > 1 {
		return nil, &AlbinoIncompatibilityError{Parent: 1, Morphs: albino}
	}

	plan := &PairingPlan{Combo: combo}

	visual := suggestedParent(components, z.RecessiveHomozygous)
	patterns := []struct {
		name     string
		p1, p2   m.ParentGenotype
		required bool
	}{
		{PatternVisualByVisual, visual, visual, true},
		{PatternHetByHet, suggestedParent(components, z.RecessiveHeterozygous), suggestedParent(components, z.RecessiveHeterozygous), recessive > 0},
		{PatternVisualByHet, visual, suggestedParent(components, z.RecessiveHeterozygous), recessive > 0},
	}

	for _, p := range patterns {
		if !p.required {
			continue
		}

		outcomes, err := calc.Calculate(p.p1, p.p2)
		if err != nil {
			return nil, err
		}
		plan.Pairings = append(plan.Pairings, Pairing{
			Pattern:           p.name,
			Parent1:           p.p1,
			Parent2:           p.p2,
			TargetProbability: targetProbability(outcomes, components),
			Outcomes:          outcomes,
		})
	}

	if combo.Note != "" {
		plan.Notes = append(plan.Notes, combo.Note)
	}
	if len(dominant) > 0 {
		plan.Notes = append(plan.Notes, fmt.Sprintf("Dominant genes (%s) cannot be carried as het; each parent must show them.", strings.Join(dominant, ", ")))
	}
	return plan, nil
}

// suggestedParent carries every component, recessives at the given status
// and the others in their single-copy visual form.
func suggestedParent(components []indexes.MorphDefinition, recessive z.Recessive) m.ParentGenotype {
	parent := m.NewParentGenotype()
	for _, morph := range components {
		switch morph.Inheritance {
		case inheritance.Recessive:
			parent.Set(morph.Id, recessive)
		case inheritance.Dominant:
			parent.Set(morph.Id, z.DominantHeterozygous)
		case inheritance.Codominant:
			parent.Set(morph.Id, z.CodominantHomozygous)
		}
	}
	return parent
}

// targetProbability sums the outcomes in which every component is visible.
func targetProbability(outcomes []m.CombinedOutcome, components []indexes.MorphDefinition) float64 {
	total := From(outcomes).
		WhereT(func(o m.CombinedOutcome) bool {
			return From(components).AllT(func(morph indexes.MorphDefinition) bool {
				return expresses(o.Traits, morph)
			})
		}).
		SelectT(func(o m.CombinedOutcome) float64 { return o.Probability }).
		SumFloats()

	return roundPercent(total)
}

func expresses(traits []m.Trait, morph indexes.MorphDefinition) bool {
	for _, t := range traits {
		if t.Locus != morph.Id {
			continue
		}
		if morph.Inheritance == inheritance.Recessive {
			return t.Status == z.HomozygousLabel
		}
		return t.Status != z.WildLabel
	}
	return false
}
