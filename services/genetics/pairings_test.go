package genetics

import (
	"errors"
	"testing"

	unknownLocusPolicy "leopa/api/models/constants/unknown-locus-policy"
	z "leopa/api/models/constants/zygosity"
	"leopa/api/models/indexes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanPairings(t *testing.T) {
	calc := NewCalculator(testMorphs, unknownLocusPolicy.Reject)

	probabilities := func(plan *PairingPlan) map[string]float64 {
		out := map[string]float64{}
		for _, p := range plan.Pairings {
			out[p.Pattern] = p.TargetProbability
		}
		return out
	}

	t.Run("recessive combination", func(t *testing.T) {
		plan, err := calc.PlanPairings(indexes.ComboMorph{
			Id:         "raptor",
			Name:       "RAPTOR",
			Components: []string{"tremper_albino", "eclipse"},
			Note:       "Orange is polygenic.",
		})
		require.NoError(t, err)

		assert.Equal(t, map[string]float64{
			PatternVisualByVisual: 100,
			PatternHetByHet:       6.25,
			PatternVisualByHet:    25,
		}, probabilities(plan))
		assert.Equal(t, PatternVisualByVisual, plan.Pairings[0].Pattern)
		assert.Equal(t, []string{"Orange is polygenic."}, plan.Notes)

		hetByHet := plan.Pairings[1]
		status, _ := hetByHet.Parent1.Status("eclipse")
		assert.Equal(t, z.RecessiveHeterozygous, status)
		assert.Equal(t, []string{"tremper_albino", "eclipse"}, hetByHet.Parent2.Loci())
	})

	t.Run("dominant component must be visual on both parents", func(t *testing.T) {
		plan, err := calc.PlanPairings(indexes.ComboMorph{
			Id:         "frosted_eclipse",
			Components: []string{"lemon_frost", "eclipse"},
		})
		require.NoError(t, err)

		assert.Equal(t, map[string]float64{
			PatternVisualByVisual: 75,
			PatternHetByHet:       18.75,
			PatternVisualByHet:    37.5,
		}, probabilities(plan))
		require.Len(t, plan.Notes, 1)
		assert.Contains(t, plan.Notes[0], "Lemon Frost")

		for _, p := range plan.Pairings {
			status, _ := p.Parent2.Status("lemon_frost")
			assert.Equal(t, z.DominantHeterozygous, status)
		}
	})

	t.Run("no recessive component gives one pattern", func(t *testing.T) {
		plan, err := calc.PlanPairings(indexes.ComboMorph{Id: "snow", Components: []string{"mack_snow"}})
		require.NoError(t, err)

		require.Len(t, plan.Pairings, 1)
		assert.Equal(t, PatternVisualByVisual, plan.Pairings[0].Pattern)
		assert.Equal(t, 75.0, plan.Pairings[0].TargetProbability)
		assert.Equal(t, 100.0, sumOutcomes(plan.Pairings[0].Outcomes))
	})

	t.Run("albino lineages conflict", func(t *testing.T) {
		_, err := calc.PlanPairings(indexes.ComboMorph{Id: "x", Components: []string{"tremper_albino", "bell_albino"}})
		assert.True(t, errors.Is(err, ErrAlbinoIncompatibility))
	})

	t.Run("unknown component", func(t *testing.T) {
		_, err := calc.PlanPairings(indexes.ComboMorph{Id: "x", Components: []string{"eclipse", "eclipes_typo"}})
		assert.True(t, errors.Is(err, ErrUnknownMorph))
	})
}
