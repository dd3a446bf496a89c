package zygosity

import (
	"fmt"
	"strings"

	"leopa/api/models/constants"
	"leopa/api/models/constants/inheritance"
)

// Status is an individual's allele makeup at one locus.
//
// The only implementations are Recessive, Dominant and Codominant, so a
// status always carries the inheritance category it is valid for.
type Status interface {
	Inheritance() constants.Inheritance
	IsWild() bool
	String() string
	sealed()
}

// wire labels
const (
	WildLabel         = "wild"
	HeterozygousLabel = "heterozygous"
	HomozygousLabel   = "homozygous"
	PossibleHetLabel  = "possible_het"
	SuperLabel        = "super"
)

type Recessive int

const (
	RecessiveWild Recessive = iota
	RecessiveHeterozygous
	RecessiveHomozygous
	// 50% chance of being heterozygous
	RecessivePossibleHet
)

func (Recessive) Inheritance() constants.Inheritance { return inheritance.Recessive }
func (r Recessive) IsWild() bool                     { return r == RecessiveWild }
func (Recessive) sealed()                            {}

func (r Recessive) String() string {
	switch r {
	case RecessiveHeterozygous:
		return HeterozygousLabel
	case RecessiveHomozygous:
		return HomozygousLabel
	case RecessivePossibleHet:
		return PossibleHetLabel
	default:
		return WildLabel
	}
}

type Dominant int

const (
	DominantWild Dominant = iota
	DominantHeterozygous
	DominantHomozygous
)

func (Dominant) Inheritance() constants.Inheritance { return inheritance.Dominant }
func (d Dominant) IsWild() bool                     { return d == DominantWild }
func (Dominant) sealed()                            {}

func (d Dominant) String() string {
	switch d {
	case DominantHeterozygous:
		return HeterozygousLabel
	case DominantHomozygous:
		return HomozygousLabel
	default:
		return WildLabel
	}
}

type Codominant int

const (
	CodominantWild Codominant = iota
	// CodominantHeterozygous and CodominantHomozygous carry the same alleles;
	// both are the single-copy visual form.
	CodominantHeterozygous
	CodominantHomozygous
	CodominantSuper
)

func (Codominant) Inheritance() constants.Inheritance { return inheritance.Codominant }
func (c Codominant) IsWild() bool                     { return c == CodominantWild }
func (Codominant) sealed()                            {}

func (c Codominant) String() string {
	switch c {
	case CodominantHeterozygous:
		return HeterozygousLabel
	case CodominantHomozygous:
		return HomozygousLabel
	case CodominantSuper:
		return SuperLabel
	default:
		return WildLabel
	}
}

// Wild returns the wild-type status for an inheritance category.
func Wild(inh constants.Inheritance) (Status, error) {
	switch inh {
	case inheritance.Recessive:
		return RecessiveWild, nil
	case inheritance.Dominant:
		return DominantWild, nil
	case inheritance.Codominant:
		return CodominantWild, nil
	default:
		return nil, fmt.Errorf("unknown inheritance type %q", inh)
	}
}

// Cast parses a status label for the given inheritance category.
// Labels that are not valid for the category are an error.
func Cast(inh constants.Inheritance, text string) (Status, error) {
	label := strings.ToLower(strings.TrimSpace(text))
	if label == "" {
		return Wild(inh)
	}

	switch inh {
	case inheritance.Recessive:
		switch label {
		case WildLabel:
			return RecessiveWild, nil
		case HeterozygousLabel, "het":
			return RecessiveHeterozygous, nil
		case HomozygousLabel, "visual":
			return RecessiveHomozygous, nil
		case PossibleHetLabel, "phet":
			return RecessivePossibleHet, nil
		}
	case inheritance.Dominant:
		switch label {
		case WildLabel:
			return DominantWild, nil
		case HeterozygousLabel:
			return DominantHeterozygous, nil
		case HomozygousLabel:
			return DominantHomozygous, nil
		}
	case inheritance.Codominant:
		switch label {
		case WildLabel:
			return CodominantWild, nil
		case HeterozygousLabel:
			return CodominantHeterozygous, nil
		case HomozygousLabel:
			return CodominantHomozygous, nil
		case SuperLabel:
			return CodominantSuper, nil
		}
	default:
		return nil, fmt.Errorf("unknown inheritance type %q", inh)
	}

	return nil, fmt.Errorf("status %q is not valid for %s inheritance", text, inh)
}

// ValidLabels lists the status labels accepted for an inheritance category.
func ValidLabels(inh constants.Inheritance) []string {
	switch inh {
	case inheritance.Recessive:
		return []string{WildLabel, HeterozygousLabel, HomozygousLabel, PossibleHetLabel}
	case inheritance.Dominant:
		return []string{WildLabel, HeterozygousLabel, HomozygousLabel}
	case inheritance.Codominant:
		return []string{WildLabel, HeterozygousLabel, HomozygousLabel, SuperLabel}
	default:
		return nil
	}
}
