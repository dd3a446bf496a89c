package services

import (
	"errors"
	"fmt"
	"time"

	"leopa/api/models"
	"leopa/api/models/indexes"
	unknownLocusPolicy "leopa/api/models/constants/unknown-locus-policy"
	m "leopa/api/models/genetics"
	"leopa/api/services/genetics"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

var (
	ErrTooManyLoci            = errors.New("too many loci")
	ErrCalculationsAtCapacity = errors.New("too many calculations in progress")
)

type (
	// CalculationService guards the calculator with request-size limits and
	// a weighted semaphore; the weight of a request grows with its
	// possible-het branching.
	CalculationService struct {
		Config         *models.Config
		CatalogService *CatalogService

		capacity  int64
		semaphore *semaphore.Weighted
	}

	CalculationResult struct {
		Id       uuid.UUID
		Outcomes []m.CombinedOutcome
		Skipped  []string
	}
)

func NewCalculationService(catalog *CatalogService, cfg *models.Config) *CalculationService {
	capacity := cfg.Api.CalculationConcurrencyLevel
	if capacity < 1 {
		capacity = 1
	}

	return &CalculationService{
		Config:         cfg,
		CatalogService: catalog,
		capacity:       capacity,
		semaphore:      semaphore.NewWeighted(capacity),
	}
}

// Calculate runs one pairing against a catalog snapshot; a nil catalog
// means the current one.
func (cs *CalculationService) Calculate(catalog genetics.MorphLookup, parent1 m.ParentGenotype, parent2 m.ParentGenotype) (*CalculationResult, error) {
	if catalog == nil {
		catalog = cs.CatalogService.Snapshot()
	}

	var (
		policy = unknownLocusPolicy.CastToPolicy(cs.Config.Api.UnknownLocusPolicy)
		calc   = genetics.NewCalculator(catalog, policy)
	)

	known, unknown := calc.Loci(parent1, parent2)
	if total := len(known) + len(unknown); cs.Config.Api.MaxLoci > 0 && total > cs.Config.Api.MaxLoci {
		return nil, fmt.Errorf("%w: %d loci requested, at most %d allowed", ErrTooManyLoci, total, cs.Config.Api.MaxLoci)
	}

	branching := genetics.PossibleHetLoci(parent1, parent2)
	if cs.Config.Api.MaxPossibleHetLoci >= 0 && branching > cs.Config.Api.MaxPossibleHetLoci {
		return nil, fmt.Errorf("%w: %d possible het entries requested, at most %d allowed", ErrTooManyLoci, branching, cs.Config.Api.MaxPossibleHetLoci)
	}

	weight := cs.weight(branching)
	if !cs.semaphore.TryAcquire(weight) {
		return nil, ErrCalculationsAtCapacity
	}
	defer cs.semaphore.Release(weight)

	outcomes, err := calc.Calculate(parent1, parent2)
	if err != nil {
		return nil, err
	}

	result := &CalculationResult{
		Id:       uuid.New(),
		Outcomes: outcomes,
	}
	if policy == unknownLocusPolicy.Skip && len(unknown) > 0 {
		result.Skipped = unknown
		fmt.Printf("[%s] - Calculation %s skipped unknown morphs %v\n", time.Now(), result.Id, unknown)
	}
	return result, nil
}

// PlanPairings suggests parents for a combination morph. Each plan runs
// up to three calculations, so it holds one unit of capacity.
func (cs *CalculationService) PlanPairings(catalog genetics.MorphLookup, combo indexes.ComboMorph) (*genetics.PairingPlan, error) {
	if catalog == nil {
		catalog = cs.CatalogService.Snapshot()
	}

	if cs.Config.Api.MaxLoci > 0 && len(combo.Components) > cs.Config.Api.MaxLoci {
		return nil, fmt.Errorf("%w: %d loci requested, at most %d allowed", ErrTooManyLoci, len(combo.Components), cs.Config.Api.MaxLoci)
	}

	if !cs.semaphore.TryAcquire(1) {
		return nil, ErrCalculationsAtCapacity
	}
	defer cs.semaphore.Release(1)

	calc := genetics.NewCalculator(catalog, unknownLocusPolicy.Reject)
	return calc.PlanPairings(combo)
}

// weight doubles per possible het entry, capped at the semaphore size so a
// single request can always run on an idle service.
func (cs *CalculationService) weight(branching int) int64 {
	w := int64(1)
	for i := 0; i < branching && w < cs.capacity; i++ {
		w *= 2
	}
	if w > cs.capacity {
		w = cs.capacity
	}
	return w
}
