// Package paths provides centralized path handling for pkgls.
// It implements XDG Base Directory specification compliance for the
// config file, the catalog file, and the log file.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvCatalogFile overrides the catalog file location
	EnvCatalogFile = "PKGLS_CATALOG"

	// EnvConfigDir overrides the XDG config directory for pkgls
	EnvConfigDir = "PKGLS_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for pkgls
	EnvStateDir = "PKGLS_STATE_DIR"
)

// Default directory and file names
const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "pkgls"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"

	// CatalogFileName is the default name of the catalog file
	CatalogFileName = "catalog.yaml"

	// LogFileName is the name of the log file
	LogFileName = "pkgls.log"
)

// Paths resolves the locations pkgls reads and writes
type Paths struct {
	configDir string
	stateDir  string
}

// New creates a Paths instance, honoring environment overrides
func New() *Paths {
	configDir := os.Getenv(EnvConfigDir)
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	stateDir := os.Getenv(EnvStateDir)
	if stateDir == "" {
		stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return &Paths{
		configDir: configDir,
		stateDir:  stateDir,
	}
}

// ConfigDir returns the directory holding the configuration file
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFile returns the path to the configuration file
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// CatalogFile returns the path to the catalog file. The PKGLS_CATALOG
// environment variable takes precedence over the config-dir default.
func (p *Paths) CatalogFile() string {
	if env := os.Getenv(EnvCatalogFile); env != "" {
		return env
	}
	return filepath.Join(p.configDir, CatalogFileName)
}

// LogFile returns the path to the log file
func (p *Paths) LogFile() string {
	return filepath.Join(p.stateDir, LogFileName)
}
