package local

import (
	_ "embed"
	"fmt"
	"os"

	"leopa/api/models/constants/inheritance"
	"leopa/api/models/indexes"

	yaml "gopkg.in/yaml.v2"
)

//go:embed morphs.yml
var defaultCatalog []byte

type catalogFile struct {
	Morphs       []indexes.MorphDefinition `yaml:"morphs"`
	Combinations []indexes.ComboMorph      `yaml:"combinations"`
}

// GetMorphs reads the morph catalog from a YAML file, or from the catalog
// bundled into the binary when filePath is empty.
func GetMorphs(filePath string) ([]indexes.MorphDefinition, error) {
	data, err := readCatalog(filePath)
	if err != nil {
		return nil, err
	}
	return ParseMorphs(data)
}

// GetCombinations reads the combination section of the same catalog file.
func GetCombinations(filePath string) ([]indexes.ComboMorph, error) {
	data, err := readCatalog(filePath)
	if err != nil {
		return nil, err
	}
	return ParseCombinations(data)
}

func readCatalog(filePath string) ([]byte, error) {
	if filePath == "" {
		return defaultCatalog, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", filePath, err)
	}
	return data, nil
}

func ParseMorphs(data []byte) ([]indexes.MorphDefinition, error) {
	doc, err := parseCatalog(data)
	if err != nil {
		return nil, err
	}
	return doc.Morphs, nil
}

// ParseCombinations returns the catalog's combinations; every component
// must name a morph of the same catalog.
func ParseCombinations(data []byte) ([]indexes.ComboMorph, error) {
	doc, err := parseCatalog(data)
	if err != nil {
		return nil, err
	}

	morphIds := map[string]bool{}
	for _, morph := range doc.Morphs {
		morphIds[morph.Id] = true
	}

	seen := map[string]bool{}
	for i, combo := range doc.Combinations {
		if combo.Id == "" {
			return nil, fmt.Errorf("combination %d has no id", i)
		}
		if seen[combo.Id] {
			return nil, fmt.Errorf("duplicate combination id %s", combo.Id)
		}
		seen[combo.Id] = true

		if len(combo.Components) == 0 {
			return nil, fmt.Errorf("combination %s has no components", combo.Id)
		}
		for _, component := range combo.Components {
			if !morphIds[component] {
				return nil, fmt.Errorf("combination %s names unknown morph %s", combo.Id, component)
			}
		}
		if combo.Name == "" {
			doc.Combinations[i].Name = combo.Id
		}
	}
	return doc.Combinations, nil
}

func parseCatalog(data []byte) (catalogFile, error) {
	var doc catalogFile
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return doc, fmt.Errorf("parsing catalog: %w", err)
	}

	seen := map[string]bool{}
	for i, morph := range doc.Morphs {
		if morph.Id == "" {
			return doc, fmt.Errorf("catalog entry %d has no id", i)
		}
		if seen[morph.Id] {
			return doc, fmt.Errorf("duplicate catalog id %s", morph.Id)
		}
		seen[morph.Id] = true

		if !inheritance.IsKnown(string(morph.Inheritance)) {
			return doc, fmt.Errorf("catalog entry %s has unknown type %q", morph.Id, morph.Inheritance)
		}
		// normalize spellings such as "co-dominant"
		doc.Morphs[i].Inheritance = inheritance.CastToInheritance(string(morph.Inheritance))
		if doc.Morphs[i].Name == "" {
			doc.Morphs[i].Name = morph.Id
		}
	}
	return doc, nil
}
