package models

type Config struct {
	Debug bool `yaml:"debug" envconfig:"LEOPA_DEBUG"`

	Api struct {
		Url  string `yaml:"url" envconfig:"LEOPA_API_URL"`
		Port string `yaml:"port" envconfig:"LEOPA_API_INTERNAL_PORT" default:"5000"`

		// bounds on a single calculation request
		MaxLoci                     int   `yaml:"max-loci" envconfig:"LEOPA_API_MAX_LOCI" default:"12"`
		MaxPossibleHetLoci          int   `yaml:"max-possible-het-loci" envconfig:"LEOPA_API_MAX_POSSIBLE_HET_LOCI" default:"6"`
		CalculationConcurrencyLevel int64 `yaml:"calculation-concurrency-level" envconfig:"LEOPA_API_CALCULATION_CONCURRENCY_LEVEL" default:"32"`

		UnknownLocusPolicy string `yaml:"unknown-locus-policy" envconfig:"LEOPA_API_UNKNOWN_LOCUS_POLICY" default:"reject"`
	} `yaml:"api"`

	Catalog struct {
		FilePath       string `yaml:"file-path" envconfig:"LEOPA_CATALOG_FILE_PATH"`
		RefreshMinutes int    `yaml:"refresh-minutes" envconfig:"LEOPA_CATALOG_REFRESH_MINUTES" default:"0"`
	} `yaml:"catalog"`

	Elasticsearch struct {
		Enabled    bool   `yaml:"enabled" envconfig:"LEOPA_ES_ENABLED"`
		Url        string `yaml:"url" envconfig:"LEOPA_ES_URL"`
		Username   string `yaml:"username" envconfig:"LEOPA_ES_USERNAME"`
		Password   string `yaml:"password" envconfig:"LEOPA_ES_PASSWORD"`
		MorphIndex string `yaml:"morph-index" envconfig:"LEOPA_ES_MORPH_INDEX" default:"morphs"`
	} `yaml:"elasticsearch"`
}
