package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"leopa/api/models/constants/inheritance"
	unknownLocusPolicy "leopa/api/models/constants/unknown-locus-policy"
	z "leopa/api/models/constants/zygosity"
	m "leopa/api/models/genetics"
	"leopa/api/services/genetics"
)

type Options struct {
	Parent1     string
	Parent2     string
	CatalogPath string
	Policy      string
	Limit       int
	Plain       bool
	ListMorphs  bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintf(out, "  %s -p1 tremper_albino=homozygous,mack_snow=heterozygous -p2 tremper_albino=het\n", name)
		fmt.Fprintf(out, "  %s -list\n\n", name)
		fs.PrintDefaults()
	}
	return fs
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	fs.StringVar(&o.Parent1, "p1", "", "first parent, as morphId=status pairs separated by commas")
	fs.StringVar(&o.Parent2, "p2", "", "second parent, as morphId=status pairs separated by commas")
	fs.StringVar(&o.CatalogPath, "catalog", "", "morph catalog YAML file (default: bundled catalog)")
	fs.StringVar(&o.Policy, "unknown", string(unknownLocusPolicy.Reject), "what to do with unknown morph ids: reject or skip")
	fs.IntVar(&o.Limit, "n", 0, "only print the n most likely outcomes (0 prints all)")
	fs.BoolVar(&o.Plain, "plain", false, "print without colors or borders")
	fs.BoolVar(&o.ListMorphs, "list", false, "list the catalog morphs and exit")
	fs.BoolVar(&help, "h", false, "show this help")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if help {
		return o, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if o.Limit < 0 {
		return o, fmt.Errorf("-n must not be negative")
	}
	return o, nil
}

// parseParent reads "id=status,id=status". A bare id means the visual form
// of a recessive or the single-copy form otherwise. Ids the catalog does not
// know are kept without a status.
func parseParent(text string, catalog genetics.MorphLookup) (m.ParentGenotype, error) {
	parent := m.NewParentGenotype()

	for _, pair := range strings.Split(text, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		id, label, hasStatus := strings.Cut(pair, "=")
		id = strings.TrimSpace(id)
		morph, known := catalog.GetMorph(id)
		if !known {
			parent.Set(id, nil)
			continue
		}

		if !hasStatus {
			label = z.HeterozygousLabel
			if morph.Inheritance == inheritance.Recessive {
				label = z.HomozygousLabel
			}
		}

		status, err := z.Cast(morph.Inheritance, label)
		if err != nil {
			return parent, fmt.Errorf("%s: %w (valid: %s)", id, err, strings.Join(z.ValidLabels(morph.Inheritance), ", "))
		}
		parent.Set(id, status)
	}
	return parent, nil
}

func writeUsage(fs *flag.FlagSet, w io.Writer) {
	fs.SetOutput(w)
	fs.Usage()
}
