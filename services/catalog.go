package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"leopa/api/models"
	"leopa/api/models/constants"
	"leopa/api/models/constants/inheritance"
	"leopa/api/models/indexes"
	esRepo "leopa/api/repositories/elasticsearch"
	"leopa/api/repositories/local"
	"leopa/api/services/genetics"

	. "github.com/ahmetb/go-linq"
	es7 "github.com/elastic/go-elasticsearch/v7"
	"github.com/go-co-op/gocron"
)

type (
	// CatalogService owns the read-only morph catalog. Reloads swap in a
	// new table; a table handed out by Snapshot is never modified.
	CatalogService struct {
		Initialized bool
		Es7Client   *es7.Client
		Config      *models.Config

		morphs    genetics.MorphTable
		combos    map[string]indexes.ComboMorph
		morphsMux sync.RWMutex
		loadedAt  time.Time
		scheduler *gocron.Scheduler
	}
)

func NewCatalogService(es *es7.Client, cfg *models.Config) *CatalogService {
	return &CatalogService{
		Initialized: false,
		Es7Client:   es,
		Config:      cfg,
		morphs:      genetics.MorphTable{},
		combos:      map[string]indexes.ComboMorph{},
	}
}

// Init loads the catalog once and, if configured, schedules periodic reloads.
func (cs *CatalogService) Init() error {
	// safeguard to prevent multiple initilizations
	if cs.Initialized {
		return nil
	}

	if err := cs.Reload(context.Background()); err != nil {
		return err
	}

	if cs.Config.Catalog.RefreshMinutes > 0 {
		cs.scheduler = gocron.NewScheduler(time.UTC)
		_, err := cs.scheduler.Every(cs.Config.Catalog.RefreshMinutes).Minutes().Do(func() {
			fmt.Printf("[%s] - Refreshing morph catalog..\n", time.Now())
			if err := cs.Reload(context.Background()); err != nil {
				// keep serving the previous catalog
				fmt.Printf("[%s] - Error refreshing morph catalog : %v..\n", time.Now(), err)
			}
		})
		if err != nil {
			return err
		}
		cs.scheduler.StartAsync()
	}

	cs.Initialized = true
	fmt.Println("Catalog Service Initialized ..")
	return nil
}

func (cs *CatalogService) Stop() {
	if cs.scheduler != nil {
		cs.scheduler.Stop()
	}
}

// Reload fetches the catalog from Elasticsearch when enabled, otherwise from
// the configured (or bundled) YAML file.
func (cs *CatalogService) Reload(ctx context.Context) error {
	morphs, source, err := cs.fetch(ctx)
	if err != nil {
		return err
	}

	// combinations always come from the catalog file
	combos, err := local.GetCombinations(cs.Config.Catalog.FilePath)
	if err != nil {
		return err
	}

	cs.Replace(morphs...)
	cs.ReplaceCombinations(combos...)
	fmt.Printf("[%s] - Loaded %d morphs from %s and %d combinations\n", time.Now(), len(morphs), source, len(combos))
	return nil
}

func (cs *CatalogService) fetch(ctx context.Context) ([]indexes.MorphDefinition, string, error) {
	if cs.Config.Elasticsearch.Enabled && cs.Es7Client != nil {
		if _, err := esRepo.EnsureMorphIndex(ctx, cs.Config, cs.Es7Client); err != nil {
			return nil, "", err
		}

		morphs, err := esRepo.GetMorphs(ctx, cs.Config, cs.Es7Client)
		if err != nil {
			return nil, "", err
		}
		if len(morphs) > 0 {
			return morphs, "elasticsearch", nil
		}

		// empty index: seed it from the file catalog
		morphs, err = local.GetMorphs(cs.Config.Catalog.FilePath)
		if err != nil {
			return nil, "", err
		}
		for _, morph := range morphs {
			if err := esRepo.IndexMorph(ctx, cs.Config, cs.Es7Client, morph); err != nil {
				return nil, "", err
			}
		}
		return morphs, "file (seeded into elasticsearch)", nil
	}

	morphs, err := local.GetMorphs(cs.Config.Catalog.FilePath)
	if err != nil {
		return nil, "", err
	}
	source := cs.Config.Catalog.FilePath
	if source == "" {
		source = "bundled catalog"
	}
	return morphs, source, nil
}

// Replace swaps in a new catalog built from the given definitions.
func (cs *CatalogService) Replace(morphs ...indexes.MorphDefinition) {
	table := genetics.NewMorphTable(morphs...)

	cs.morphsMux.Lock()
	cs.morphs = table
	cs.loadedAt = time.Now()
	cs.morphsMux.Unlock()
}

func (cs *CatalogService) ReplaceCombinations(combos ...indexes.ComboMorph) {
	table := make(map[string]indexes.ComboMorph, len(combos))
	for _, combo := range combos {
		table[combo.Id] = combo
	}

	cs.morphsMux.Lock()
	cs.combos = table
	cs.morphsMux.Unlock()
}

func (cs *CatalogService) GetCombination(id string) (indexes.ComboMorph, bool) {
	cs.morphsMux.RLock()
	defer cs.morphsMux.RUnlock()
	combo, ok := cs.combos[id]
	return combo, ok
}

// Combinations lists every combination ordered by name.
func (cs *CatalogService) Combinations() []indexes.ComboMorph {
	cs.morphsMux.RLock()
	table := cs.combos
	cs.morphsMux.RUnlock()

	results := []indexes.ComboMorph{}
	From(table).
		SelectT(func(kv KeyValue) indexes.ComboMorph { return kv.Value.(indexes.ComboMorph) }).
		OrderByT(func(c indexes.ComboMorph) string { return c.Name }).
		ToSlice(&results)
	return results
}

// Snapshot returns the current catalog; callers must not modify it.
func (cs *CatalogService) Snapshot() genetics.MorphTable {
	cs.morphsMux.RLock()
	defer cs.morphsMux.RUnlock()
	return cs.morphs
}

func (cs *CatalogService) LoadedAt() time.Time {
	cs.morphsMux.RLock()
	defer cs.morphsMux.RUnlock()
	return cs.loadedAt
}

func (cs *CatalogService) GetMorph(id string) (indexes.MorphDefinition, bool) {
	return cs.Snapshot().GetMorph(id)
}

// Query lists morphs, optionally restricted to one inheritance type and to
// those whose name, Japanese name or id contains term (case-insensitive).
// Results are ordered by inheritance type, then name.
func (cs *CatalogService) Query(inh constants.Inheritance, term string) []indexes.MorphDefinition {
	table := cs.Snapshot()
	term = strings.ToLower(strings.TrimSpace(term))

	results := []indexes.MorphDefinition{}
	From(table).
		SelectT(func(kv KeyValue) indexes.MorphDefinition { return kv.Value.(indexes.MorphDefinition) }).
		WhereT(func(m indexes.MorphDefinition) bool {
			return inh == inheritance.Unknown || m.Inheritance == inh
		}).
		WhereT(func(m indexes.MorphDefinition) bool {
			return term == "" ||
				strings.Contains(strings.ToLower(m.Name), term) ||
				strings.Contains(m.JapaneseName, term) ||
				strings.Contains(m.Id, term)
		}).
		OrderByT(func(m indexes.MorphDefinition) string { return string(m.Inheritance) }).
		ThenByT(func(m indexes.MorphDefinition) string { return m.Name }).
		ToSlice(&results)

	return results
}
