package dtos

import (
	"leopa/api/models/genetics"
	"leopa/api/models/indexes"
	"time"

	"github.com/google/uuid"
)

// -- request
type LocusGenotypeDto struct {
	MorphId string `json:"morphId" mapstructure:"morphId"`
	Status  string `json:"status" mapstructure:"status"`
}

// -- responses
type CalculationResponseDto struct {
	Status        int                        `json:"status"`
	Message       string                     `json:"message"`
	CalculationId uuid.UUID                  `json:"calculationId"`
	Count         int                        `json:"count"`
	Skipped       []string                   `json:"skipped,omitempty"`
	Results       []genetics.CombinedOutcome `json:"results"`
}

type MorphsResponseDto struct {
	Status  int                       `json:"status"`
	Message string                    `json:"message"`
	Type    string                    `json:"type,omitempty"`
	Term    string                    `json:"term,omitempty"`
	Count   int                       `json:"count"`
	Results []indexes.MorphDefinition `json:"results"`
}

type CombinationsResponseDto struct {
	Status  int                  `json:"status"`
	Message string               `json:"message"`
	Count   int                  `json:"count"`
	Results []indexes.ComboMorph `json:"results"`
}

type PairingDto struct {
	Pattern           string                     `json:"pattern"`
	Parent1           []LocusGenotypeDto         `json:"parent1"`
	Parent2           []LocusGenotypeDto         `json:"parent2"`
	TargetProbability float64                    `json:"targetProbability"`
	Outcomes          []genetics.CombinedOutcome `json:"outcomes"`
}

type PairingsResponseDto struct {
	Status      int                `json:"status"`
	Message     string             `json:"message"`
	Combination indexes.ComboMorph `json:"combination"`
	Pairings    []PairingDto       `json:"pairings"`
	Notes       []string           `json:"notes,omitempty"`
}

// -- errors
type GeneralErrorResponseDto struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Errors    []GeneralError `json:"errors"`
}
type GeneralError struct {
	Message string `json:"message"`
}
