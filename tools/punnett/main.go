// Command punnett runs a single pairing against the morph catalog and prints
// the offspring distribution.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	unknownLocusPolicy "leopa/api/models/constants/unknown-locus-policy"
	"leopa/api/repositories/local"
	"leopa/api/services/genetics"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout io.Writer, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer outw.Flush()

	fs := NewFlagSet("punnett")
	fs.SetOutput(io.Discard)

	opts, err := ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			writeUsage(fs, outw)
			return 0
		}
		fmt.Fprintln(stderr, err)
		writeUsage(fs, stderr)
		return 2
	}

	morphs, err := local.GetMorphs(opts.CatalogPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	catalog := genetics.NewMorphTable(morphs...)
	st := newStyles(opts.Plain)

	if opts.ListMorphs {
		sort.SliceStable(morphs, func(i, j int) bool { return morphs[i].Inheritance < morphs[j].Inheritance })
		fmt.Fprint(outw, renderMorphs(st, morphs))
		return 0
	}

	parent1, err := parseParent(opts.Parent1, catalog)
	if err != nil {
		fmt.Fprintf(stderr, "parent 1: %v\n", err)
		return 2
	}
	parent2, err := parseParent(opts.Parent2, catalog)
	if err != nil {
		fmt.Fprintf(stderr, "parent 2: %v\n", err)
		return 2
	}

	policy := unknownLocusPolicy.CastToPolicy(opts.Policy)
	calc := genetics.NewCalculator(catalog, policy)
	outcomes, err := calc.Calculate(parent1, parent2)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	var skipped []string
	if policy == unknownLocusPolicy.Skip {
		_, skipped = calc.Loci(parent1, parent2)
	}

	title := fmt.Sprintf("%d possible outcomes", len(outcomes))
	fmt.Fprint(outw, renderOutcomes(st, title, outcomes, skipped, opts.Limit))
	return 0
}
