package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"go.trai.ch/jsl/internal/core/domain"
	"go.trai.ch/zerr"
)

// SettingsFileName is the settings file looked up in the working directory.
const SettingsFileName = "jsl"

// EnvPrefix prefixes every settings environment variable, e.g. JSL_CATALOG_PATH.
const EnvPrefix = "JSL"

// LoadSettings reads settings from path, or from jsl.yaml in the working directory when
// path is empty. A missing jsl.yaml is not an error; a missing explicit path is.
// Environment variables override file values.
func LoadSettings(path string) (*domain.Settings, error) {
	v := viper.New()

	v.SetDefault("catalog.path", domain.DefaultCatalogPath)
	v.SetDefault("catalog.cache_ttl", domain.DefaultCacheTTL)
	v.SetDefault("install.url_patterns", domain.DefaultInstallURLPatterns())
	v.SetDefault("eventlog.path", domain.DefaultEventLogPath)
	v.SetDefault("eventlog.enabled", true)
	v.SetDefault("log.json", false)
	v.SetDefault("output.format", domain.DefaultOutputFormat)
	v.SetDefault("concurrency", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(SettingsFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, zerr.With(zerr.Wrap(err, "failed to read settings"), "path", path)
		}
	}

	var dto SettingsDTO
	if err := v.Unmarshal(&dto); err != nil {
		return nil, zerr.Wrap(err, "failed to decode settings")
	}

	if dto.Concurrency < 0 {
		return nil, zerr.With(zerr.New("concurrency must not be negative"), "concurrency", dto.Concurrency)
	}

	return &domain.Settings{
		CatalogPath:        dto.Catalog.Path,
		CacheTTL:           dto.Catalog.CacheTTL,
		InstallURLPatterns: dto.Install.URLPatterns,
		EventLogPath:       dto.EventLog.Path,
		EventLogEnabled:    dto.EventLog.Enabled,
		JSONLogs:           dto.Log.JSON,
		OutputFormat:       dto.Output.Format,
		Concurrency:        dto.Concurrency,
	}, nil
}
