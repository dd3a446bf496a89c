package genetics

import (
	"encoding/json"
	"net/http"
	"testing"

	"leopa/api/models/dtos"
	m "leopa/api/models/genetics"
	"leopa/api/tests/common"

	"github.com/Jeffail/gabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calculate(t *testing.T, body string) (int, []byte) {
	cfg := common.InitConfig()
	gc, recorder := common.NewLeopaContext(t, cfg, http.MethodPost, "/genetics/calculate", body)

	parsed, err := gabs.ParseJSON([]byte(body))
	require.NoError(t, err)
	gc.CalculationBody = parsed

	require.NoError(t, GeneticsCalculate(gc))
	return recorder.Code, recorder.Body.Bytes()
}

func findOutcome(outcomes []m.CombinedOutcome, displayName string) (m.CombinedOutcome, bool) {
	for _, o := range outcomes {
		if o.DisplayName == displayName {
			return o, true
		}
	}
	return m.CombinedOutcome{}, false
}

func TestGeneticsCalculate_HetByHet(t *testing.T) {
	code, body := calculate(t, `{
		"parent1": [{"morphId": "tremper_albino", "status": "het"}],
		"parent2": {"tremper_albino": "het"}
	}`)
	require.Equal(t, http.StatusOK, code, string(body))

	var dto dtos.CalculationResponseDto
	require.NoError(t, json.Unmarshal(body, &dto))

	assert.Equal(t, "Success", dto.Message)
	assert.NotEmpty(t, dto.CalculationId.String())
	assert.Equal(t, 3, dto.Count)
	require.Len(t, dto.Results, 3)

	// descending probability
	assert.Equal(t, "Normal het Tremper Albino", dto.Results[0].DisplayName)
	assert.Equal(t, 50.0, dto.Results[0].Probability)

	visual, found := findOutcome(dto.Results, "Tremper Albino")
	require.True(t, found)
	assert.Equal(t, 25.0, visual.Probability)

	normal, found := findOutcome(dto.Results, "Normal")
	require.True(t, found)
	assert.Equal(t, 25.0, normal.Probability)
}

func TestGeneticsCalculate_SuperForm(t *testing.T) {
	code, body := calculate(t, `{
		"parent1": {"mack_snow": "heterozygous"},
		"parent2": {"mack_snow": "heterozygous"}
	}`)
	require.Equal(t, http.StatusOK, code, string(body))

	var dto dtos.CalculationResponseDto
	require.NoError(t, json.Unmarshal(body, &dto))

	super, found := findOutcome(dto.Results, "Super Snow")
	require.True(t, found)
	assert.Equal(t, 25.0, super.Probability)

	het, found := findOutcome(dto.Results, "Mack Snow")
	require.True(t, found)
	assert.Equal(t, 50.0, het.Probability)
}

func TestGeneticsCalculate_EmptyParents(t *testing.T) {
	code, body := calculate(t, `{}`)
	require.Equal(t, http.StatusOK, code, string(body))

	var dto dtos.CalculationResponseDto
	require.NoError(t, json.Unmarshal(body, &dto))

	require.Len(t, dto.Results, 1)
	assert.Equal(t, "Normal", dto.Results[0].DisplayName)
	assert.Equal(t, 100.0, dto.Results[0].Probability)
	assert.Empty(t, dto.Results[0].Traits)
}

func TestGeneticsCalculate_HealthWarnings(t *testing.T) {
	code, body := calculate(t, `{"parent1": {"lemon_frost": "heterozygous"}}`)
	require.Equal(t, http.StatusOK, code, string(body))

	var dto dtos.CalculationResponseDto
	require.NoError(t, json.Unmarshal(body, &dto))

	visual, found := findOutcome(dto.Results, "Lemon Frost")
	require.True(t, found)
	assert.Equal(t, []string{"Prone to iridophoroma (skin tumours)."}, visual.Warnings)

	normal, found := findOutcome(dto.Results, "Normal")
	require.True(t, found)
	assert.Empty(t, normal.Warnings)
}

func TestGeneticsCalculate_BadRequests(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
	}{
		{
			name:     "albino lineages",
			body:     `{"parent1": {"tremper_albino": "homozygous", "bell_albino": "het"}}`,
			contains: "multiple albino lineages",
		},
		{
			name:     "unknown morph",
			body:     `{"parent1": {"eclipes": "het"}}`,
			contains: "did you mean eclipse",
		},
		{
			name:     "invalid status",
			body:     `{"parent1": {"mack_snow": "possible_het"}}`,
			contains: "mack_snow",
		},
		{
			name:     "status not a string",
			body:     `{"parent2": {"eclipse": 1}}`,
			contains: "status must be a string",
		},
		{
			name:     "entry without id",
			body:     `{"parent1": [{"status": "het"}]}`,
			contains: "without a morphId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := calculate(t, tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Contains(t, string(body), tt.contains)
		})
	}
}

func TestParseParentGenotype_Ordering(t *testing.T) {
	cfg := common.InitConfig()
	catalog, _ := common.InitServices(t, cfg)

	body, err := gabs.ParseJSON([]byte(`{
		"parent1": [
			{"morphId": "mack_snow", "status": "heterozygous"},
			{"morphId": "eclipse", "status": "het"}
		],
		"parent2": {"mack_snow": "heterozygous", "eclipse": "het"}
	}`))
	require.NoError(t, err)

	parent1, errs := parseParentGenotype(body, "parent1", catalog.Snapshot())
	require.Empty(t, errs)
	assert.Equal(t, []string{"mack_snow", "eclipse"}, parent1.Loci())

	// object members are taken in key order
	parent2, errs := parseParentGenotype(body, "parent2", catalog.Snapshot())
	require.Empty(t, errs)
	assert.Equal(t, []string{"eclipse", "mack_snow"}, parent2.Loci())

	missing, errs := parseParentGenotype(body, "parent3", catalog.Snapshot())
	require.Empty(t, errs)
	assert.Equal(t, 0, missing.Len())
}

func TestParseParentGenotype_UnknownIdKeptWithoutStatus(t *testing.T) {
	cfg := common.InitConfig()
	catalog, _ := common.InitServices(t, cfg)

	body, err := gabs.ParseJSON([]byte(`{"parent1": {"not_a_morph": "anything"}}`))
	require.NoError(t, err)

	parent, errs := parseParentGenotype(body, "parent1", catalog.Snapshot())
	require.Empty(t, errs)

	status, present := parent.Status("not_a_morph")
	assert.True(t, present)
	assert.Nil(t, status)
}

func combinationPairings(t *testing.T, id string) (int, []byte) {
	cfg := common.InitConfig()
	gc, recorder := common.NewLeopaContext(t, cfg, http.MethodGet, "/morphs/combinations/"+id+"/pairings", "")
	gc.SetParamNames("id")
	gc.SetParamValues(id)

	require.NoError(t, CombinationPairingsGet(gc))
	return recorder.Code, recorder.Body.Bytes()
}

func TestCombinationPairingsGet_Raptor(t *testing.T) {
	code, body := combinationPairings(t, "raptor")
	require.Equal(t, http.StatusOK, code, string(body))

	var dto dtos.PairingsResponseDto
	require.NoError(t, json.Unmarshal(body, &dto))

	assert.Equal(t, "RAPTOR", dto.Combination.Name)
	require.Len(t, dto.Pairings, 3)
	assert.NotEmpty(t, dto.Notes)

	visual := dto.Pairings[0]
	assert.Equal(t, "visual_x_visual", visual.Pattern)
	assert.Equal(t, 100.0, visual.TargetProbability)
	assert.Equal(t, []dtos.LocusGenotypeDto{
		{MorphId: "tremper_albino", Status: "homozygous"},
		{MorphId: "eclipse", Status: "homozygous"},
	}, visual.Parent1)
	require.Len(t, visual.Outcomes, 1)

	hets := dto.Pairings[1]
	assert.Equal(t, "het_x_het", hets.Pattern)
	assert.Equal(t, 6.25, hets.TargetProbability)
	assert.Equal(t, "heterozygous", hets.Parent2[0].Status)

	mixed := dto.Pairings[2]
	assert.Equal(t, "visual_x_het", mixed.Pattern)
	assert.Equal(t, 25.0, mixed.TargetProbability)

	var total float64
	for _, o := range mixed.Outcomes {
		total += o.Probability
	}
	assert.InDelta(t, 100.0, total, 0.05)
}

func TestCombinationPairingsGet_NotFound(t *testing.T) {
	code, body := combinationPairings(t, "nope")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(body), "Combination nope not found")
}
