package config

import "time"

// PageFile represents the structure of a recorded page request file.
type PageFile struct {
	URL      string       `yaml:"url"`
	Requests []RequestDTO `yaml:"requests"`
}

// RequestDTO represents a single script registration in a page request file.
type RequestDTO struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Policy  string `yaml:"policy"`
}

// SettingsDTO mirrors the settings file layout for viper decoding.
type SettingsDTO struct {
	Catalog struct {
		Path     string        `mapstructure:"path"`
		CacheTTL time.Duration `mapstructure:"cache_ttl"`
	} `mapstructure:"catalog"`
	Install struct {
		URLPatterns []string `mapstructure:"url_patterns"`
	} `mapstructure:"install"`
	EventLog struct {
		Path    string `mapstructure:"path"`
		Enabled bool   `mapstructure:"enabled"`
	} `mapstructure:"eventlog"`
	Log struct {
		JSON bool `mapstructure:"json"`
	} `mapstructure:"log"`
	Output struct {
		Format string `mapstructure:"format"`
	} `mapstructure:"output"`
	Concurrency int `mapstructure:"concurrency"`
}
