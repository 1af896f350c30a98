package models

// Settings represents the application configuration
type Settings struct {
	Data     DataSettings   `yaml:"data"`
	Search   SearchSettings `yaml:"search"`
	Output   OutputSettings `yaml:"output"`
	UI       UISettings     `yaml:"ui"`
	LogLevel string         `yaml:"log_level"`
}

// DataSettings points at the catalog sources
type DataSettings struct {
	Catalog   string `yaml:"catalog"`
	Codelists string `yaml:"codelists"`
}

// SearchSettings controls default query behavior
type SearchSettings struct {
	Mode   string `yaml:"mode"`   // "normal", "wildcard" or "regex"
	Locale string `yaml:"locale"` // BCP 47 tag used to sort entity codes
}

// OutputSettings controls command output
type OutputSettings struct {
	Format string `yaml:"format"` // "text", "json" or "yaml"
}

// UISettings controls browser preferences
type UISettings struct {
	ShowDescriptions bool `yaml:"show_descriptions"`
	ExpandAll        bool `yaml:"expand_all"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Data: DataSettings{
			Catalog:   "data.csv",
			Codelists: "Codelist.afm.csv",
		},
		Search: SearchSettings{
			Mode:   string(ModeLiteral),
			Locale: "nl",
		},
		Output: OutputSettings{
			Format: "text",
		},
		UI: UISettings{
			ShowDescriptions: true,
			ExpandAll:        false,
		},
		LogLevel: "warn",
	}
}
