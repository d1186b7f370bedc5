// Package config loads the pkgls configuration file. The file is
// optional; a missing file yields the built-in defaults.
package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/pkgls/pkg/errors"
	"github.com/arthur-debert/pkgls/pkg/logging"
	toml "github.com/pelletier/go-toml/v2"
)

var log = logging.GetLogger("config")

// DefaultLinkTemplate is the source-link template used when the config
// file does not provide one. "{name}" expands to the package name.
const DefaultLinkTemplate = "https://github.com/arthur-debert/pkgls-catalog/blob/main/packages/{name}.yaml"

// Config represents the pkgls configuration from config.toml
type Config struct {
	// DefaultFormat is the formatter used when --format is not given
	DefaultFormat string `toml:"default_format"`

	// TerminalWidth overrides the detected terminal width (0 = auto)
	TerminalWidth int `toml:"terminal_width"`

	// Catalog overrides the catalog file location
	Catalog string `toml:"catalog"`

	Source Source `toml:"source"`
}

// Source holds source-link construction settings
type Source struct {
	// LinkTemplate is the URL template for a package's recipe file
	LinkTemplate string `toml:"link_template"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		DefaultFormat: "name_only",
		Source: Source{
			LinkTemplate: DefaultLinkTemplate,
		},
	}
}

// Load reads the configuration file at path, layering it over the
// defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("path", path).Msg("No config file found, using defaults")
			return cfg, nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
	}

	if cfg.Source.LinkTemplate == "" {
		cfg.Source.LinkTemplate = DefaultLinkTemplate
	}

	log.Debug().Str("path", path).Str("defaultFormat", cfg.DefaultFormat).Msg("Loaded config file")
	return cfg, nil
}

// SourceLink builds the source-link URL for the named package
func (c *Config) SourceLink(name string) string {
	return strings.ReplaceAll(c.Source.LinkTemplate, "{name}", name)
}
