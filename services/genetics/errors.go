package genetics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"leopa/api/models/constants"
)

var (
	ErrAlbinoIncompatibility = errors.New("albino incompatibility")
	ErrUnknownMorph          = errors.New("unknown morph")
	ErrStatusMismatch        = errors.New("status does not match morph inheritance")
)

// AlbinoIncompatibilityError is returned when one parent carries more than
// one active albino-tagged morph.
type AlbinoIncompatibilityError struct {
	Parent int
	Morphs []string
}

func (e *AlbinoIncompatibilityError) Error() string {
	return fmt.Sprintf("parent %d carries multiple albino lineages: %s. A leopard gecko can only carry one albino lineage.",
		e.Parent, strings.Join(e.Morphs, ", "))
}

func (e *AlbinoIncompatibilityError) Is(target error) bool {
	return target == ErrAlbinoIncompatibility
}

// UnknownMorphError lists locus ids missing from the morph catalog.
// Suggestions maps an unknown id to the closest catalog id, when one is close.
type UnknownMorphError struct {
	Ids         []string
	Suggestions map[string]string
}

func (e *UnknownMorphError) Error() string {
	parts := make([]string, 0, len(e.Ids))
	for _, id := range e.Ids {
		if s, ok := e.Suggestions[id]; ok {
			parts = append(parts, fmt.Sprintf("%s (did you mean %s?)", id, s))
		} else {
			parts = append(parts, id)
		}
	}
	return fmt.Sprintf("unknown morph ids: %s", strings.Join(parts, ", "))
}

func (e *UnknownMorphError) Is(target error) bool {
	return target == ErrUnknownMorph
}

// SuggestionIds returns the unknown ids that have a suggestion, sorted.
func (e *UnknownMorphError) SuggestionIds() []string {
	ids := make([]string, 0, len(e.Suggestions))
	for id := range e.Suggestions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type StatusMismatchError struct {
	Parent      int
	Morph       string
	Status      string
	Inheritance constants.Inheritance
}

func (e *StatusMismatchError) Error() string {
	return fmt.Sprintf("parent %d: status %q of %s is not a %s status",
		e.Parent, e.Status, e.Morph, e.Inheritance)
}

func (e *StatusMismatchError) Is(target error) bool {
	return target == ErrStatusMismatch
}
