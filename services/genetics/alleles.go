package genetics

import (
	z "leopa/api/models/constants/zygosity"
)

type alleleSet [2]byte

// alleleBranch is one possible allele set for a parent, with its weight.
// Every status yields a single branch of weight 1 except possible_het.
type alleleBranch struct {
	alleles alleleSet
	weight  float64
}

func certain(a1, a2 byte) []alleleBranch {
	return []alleleBranch{{alleles: alleleSet{a1, a2}, weight: 1}}
}

// mapAlleles converts a status into the allele branches it implies.
// Upper case is the dominant allele symbol of the category.
func mapAlleles(status z.Status) []alleleBranch {
	switch s := status.(type) {
	case z.Recessive:
		switch s {
		case z.RecessiveHomozygous:
			return certain('a', 'a')
		case z.RecessiveHeterozygous:
			return certain('A', 'a')
		case z.RecessivePossibleHet:
			return []alleleBranch{
				{alleles: alleleSet{'A', 'A'}, weight: 0.5},
				{alleles: alleleSet{'A', 'a'}, weight: 0.5},
			}
		default:
			return certain('A', 'A')
		}
	case z.Dominant:
		switch s {
		case z.DominantHomozygous:
			return certain('D', 'D')
		case z.DominantHeterozygous:
			return certain('D', 'd')
		default:
			return certain('d', 'd')
		}
	case z.Codominant:
		switch s {
		case z.CodominantSuper:
			return certain('S', 'S')
		case z.CodominantHomozygous, z.CodominantHeterozygous:
			return certain('S', 's')
		default:
			return certain('s', 's')
		}
	default:
		return nil
	}
}

// branchCount is the number of weighted allele sets a status expands to.
func branchCount(status z.Status) int {
	return len(mapAlleles(status))
}
