package indexes

import (
	c "leopa/api/models/constants"
)

// MorphDefinition is one entry of the read-only morph catalog,
// as stored in the `morphs` index or the catalog YAML.
type MorphDefinition struct {
	Id            string        `json:"id" yaml:"id" mapstructure:"id"`
	Name          string        `json:"name" yaml:"name" mapstructure:"name"`
	JapaneseName  string        `json:"japaneseName,omitempty" yaml:"japanese_name" mapstructure:"japaneseName"`
	Inheritance   c.Inheritance `json:"type" yaml:"type" mapstructure:"type"`
	SuperForm     string        `json:"superForm,omitempty" yaml:"super_form" mapstructure:"superForm"`
	AlbinoGroup   string        `json:"albinoGroup,omitempty" yaml:"albino_group" mapstructure:"albinoGroup"`
	HealthWarning string        `json:"healthWarning,omitempty" yaml:"health_warning" mapstructure:"healthWarning"`
	Description   string        `json:"description,omitempty" yaml:"description" mapstructure:"description"`
}

// SuperFormLabel falls back to "Super <name>" when no label is set.
func (m MorphDefinition) SuperFormLabel() string {
	if m.SuperForm != "" {
		return m.SuperForm
	}
	return "Super " + m.Name
}

// ComboMorph is a named combination of catalog morphs, e.g. RAPTOR
// (Tremper Albino + Eclipse). Combinations are read from the catalog YAML.
type ComboMorph struct {
	Id           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	JapaneseName string   `json:"japaneseName,omitempty" yaml:"japanese_name"`
	Components   []string `json:"components" yaml:"components"`
	Description  string   `json:"description,omitempty" yaml:"description"`
	Note         string   `json:"note,omitempty" yaml:"note"`
}
