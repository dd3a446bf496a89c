package genetics

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"leopa/api/contexts"
	z "leopa/api/models/constants/zygosity"
	"leopa/api/models/dtos"
	errorDtos "leopa/api/models/dtos/errors"
	m "leopa/api/models/genetics"
	"leopa/api/services"
	geneticsService "leopa/api/services/genetics"

	"github.com/Jeffail/gabs"
	"github.com/labstack/echo"
	"github.com/mitchellh/mapstructure"
)

func GeneticsCalculate(c echo.Context) error {
	fmt.Printf("[%s] - GeneticsCalculate hit!\n", time.Now())
	gc := c.(*contexts.LeopaContext)

	// one snapshot for both parsing and calculating
	catalog := gc.CatalogService.Snapshot()

	parent1, p1Errs := parseParentGenotype(gc.CalculationBody, "parent1", catalog)
	parent2, p2Errs := parseParentGenotype(gc.CalculationBody, "parent2", catalog)
	if parseErrs := append(p1Errs, p2Errs...); len(parseErrs) > 0 {
		return c.JSON(http.StatusBadRequest, errorDtos.CreateBadRequest(parseErrs...))
	}

	result, err := gc.CalculationService.Calculate(catalog, parent1, parent2)
	if err != nil {
		return respondWithCalculationError(c, err)
	}

	return c.JSON(http.StatusOK, dtos.CalculationResponseDto{
		Status:        http.StatusOK,
		Message:       "Success",
		CalculationId: result.Id,
		Count:         len(result.Outcomes),
		Skipped:       result.Skipped,
		Results:       result.Outcomes,
	})
}

func respondWithCalculationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, geneticsService.ErrAlbinoIncompatibility),
		errors.Is(err, geneticsService.ErrStatusMismatch),
		errors.Is(err, services.ErrTooManyLoci):
		return c.JSON(http.StatusBadRequest, errorDtos.CreateSimpleBadRequest(err.Error()))

	case errors.Is(err, geneticsService.ErrUnknownMorph):
		var unknownErr *geneticsService.UnknownMorphError
		messages := []string{err.Error()}
		if errors.As(err, &unknownErr) {
			for _, id := range unknownErr.SuggestionIds() {
				messages = append(messages, fmt.Sprintf("%s: did you mean %s?", id, unknownErr.Suggestions[id]))
			}
		}
		return c.JSON(http.StatusBadRequest, errorDtos.CreateBadRequest(messages...))

	case errors.Is(err, services.ErrCalculationsAtCapacity):
		return c.JSON(http.StatusServiceUnavailable, errorDtos.CreateSimpleServiceUnavailable(err.Error()))

	default:
		fmt.Printf("[%s] - Calculation error : %v\n", time.Now(), err)
		return c.JSON(http.StatusInternalServerError, errorDtos.CreateSimpleInternalServerError(err.Error()))
	}
}

// parseParentGenotype reads one parent from the request body. Array entries
// keep their order; object members are taken in key order. Ids unknown to
// the catalog are kept with no status so the calculator applies its
// unknown-locus policy.
func parseParentGenotype(body *gabs.Container, key string, catalog geneticsService.MorphLookup) (m.ParentGenotype, []string) {
	var (
		parent  = m.NewParentGenotype()
		entries []dtos.LocusGenotypeDto
		errs    []string
	)

	if body == nil || !body.Exists(key) {
		return parent, nil
	}
	container := body.Path(key)

	switch data := container.Data().(type) {
	case []interface{}:
		children, _ := container.Children()
		for i, child := range children {
			var entry dtos.LocusGenotypeDto
			if err := mapstructure.Decode(child.Data(), &entry); err != nil {
				errs = append(errs, fmt.Sprintf("%s[%d]: %s", key, i, err))
				continue
			}
			entries = append(entries, entry)
		}

	case map[string]interface{}:
		ids := make([]string, 0, len(data))
		for id := range data {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			status, isString := data[id].(string)
			if !isString {
				errs = append(errs, fmt.Sprintf("%s.%s: status must be a string", key, id))
				continue
			}
			entries = append(entries, dtos.LocusGenotypeDto{MorphId: id, Status: status})
		}
	}

	for _, entry := range entries {
		if entry.MorphId == "" {
			errs = append(errs, fmt.Sprintf("%s: entry without a morphId", key))
			continue
		}

		morph, known := catalog.GetMorph(entry.MorphId)
		if !known {
			parent.Set(entry.MorphId, nil)
			continue
		}

		status, err := z.Cast(morph.Inheritance, entry.Status)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s.%s: %s (valid: %v)", key, entry.MorphId, err, z.ValidLabels(morph.Inheritance)))
			continue
		}
		parent.Set(entry.MorphId, status)
	}

	return parent, errs
}

// CombinationPairingsGet suggests parent pairings for a catalog
// combination, each with its calculated outcomes.
func CombinationPairingsGet(c echo.Context) error {
	fmt.Printf("[%s] - CombinationPairingsGet hit!\n", time.Now())
	gc := c.(*contexts.LeopaContext)

	id := c.Param("id")
	combo, ok := gc.CatalogService.GetCombination(id)
	if !ok {
		return c.JSON(http.StatusNotFound, errorDtos.CreateSimpleNotFound(fmt.Sprintf("Combination %s not found", id)))
	}

	plan, err := gc.CalculationService.PlanPairings(nil, combo)
	if err != nil {
		return respondWithCalculationError(c, err)
	}

	pairings := make([]dtos.PairingDto, 0, len(plan.Pairings))
	for _, p := range plan.Pairings {
		pairings = append(pairings, dtos.PairingDto{
			Pattern:           p.Pattern,
			Parent1:           genotypeDtos(p.Parent1),
			Parent2:           genotypeDtos(p.Parent2),
			TargetProbability: p.TargetProbability,
			Outcomes:          p.Outcomes,
		})
	}

	return c.JSON(http.StatusOK, dtos.PairingsResponseDto{
		Status:      http.StatusOK,
		Message:     "Success",
		Combination: plan.Combo,
		Pairings:    pairings,
		Notes:       plan.Notes,
	})
}

func genotypeDtos(parent m.ParentGenotype) []dtos.LocusGenotypeDto {
	entries := make([]dtos.LocusGenotypeDto, 0, parent.Len())
	for _, id := range parent.Loci() {
		status, _ := parent.Status(id)
		entries = append(entries, dtos.LocusGenotypeDto{MorphId: id, Status: status.String()})
	}
	return entries
}
