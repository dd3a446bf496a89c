package genetics

import (
	z "leopa/api/models/constants/zygosity"
)

// LocusGenotype is one parent's status at one locus.
type LocusGenotype struct {
	MorphId string
	Status  z.Status
}

// ParentGenotype maps locus ids to zygosity statuses while remembering the
// order loci were added in. A locus that is absent is wild-type.
type ParentGenotype struct {
	order    []string
	statuses map[string]z.Status
}

func NewParentGenotype(loci ...LocusGenotype) ParentGenotype {
	pg := ParentGenotype{statuses: make(map[string]z.Status, len(loci))}
	for _, l := range loci {
		pg.Set(l.MorphId, l.Status)
	}
	return pg
}

// Set assigns a status; re-assigning an existing locus keeps its position.
func (pg *ParentGenotype) Set(morphId string, status z.Status) {
	if pg.statuses == nil {
		pg.statuses = map[string]z.Status{}
	}
	if _, exists := pg.statuses[morphId]; !exists {
		pg.order = append(pg.order, morphId)
	}
	pg.statuses[morphId] = status
}

func (pg ParentGenotype) Status(morphId string) (z.Status, bool) {
	s, ok := pg.statuses[morphId]
	return s, ok
}

// Loci returns locus ids in insertion order.
func (pg ParentGenotype) Loci() []string {
	out := make([]string, len(pg.order))
	copy(out, pg.order)
	return out
}

func (pg ParentGenotype) Len() int {
	return len(pg.order)
}

// LocusOutcome is one row of a single locus' offspring distribution.
type LocusOutcome struct {
	Locus       string  `json:"locus"`
	Genotype    string  `json:"genotype"`
	Phenotype   string  `json:"phenotype"`
	Status      string  `json:"status"`
	Probability float64 `json:"probability"`
}

type Trait struct {
	Locus     string `json:"locus"`
	Phenotype string `json:"phenotype"`
	Status    string `json:"status"`
}

// CombinedOutcome is one complete offspring across all loci.
type CombinedOutcome struct {
	Traits      []Trait  `json:"traits"`
	DisplayName string   `json:"displayName"`
	Probability float64  `json:"probability"`
	Warnings    []string `json:"warnings,omitempty"`
}
