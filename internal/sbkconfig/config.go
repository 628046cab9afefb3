// Package sbkconfig loads and persists the on-disk preferences that
// shape a create/recover/derive run: default scheme (T-of-N), KDF
// target duration, default wallet name, and logging. It carries no
// cryptographic material itself.
package sbkconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sbk-go/sbk/internal/fileutil"
)

// Config is the YAML-backed configuration file.
type Config struct {
	Version  int           `yaml:"version"`
	Home     string        `yaml:"home"`
	Scheme   SchemeConfig  `yaml:"scheme"`
	KDF      KDFConfig     `yaml:"kdf"`
	Wallet   WalletConfig  `yaml:"wallet"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`
	Warnings []string      `yaml:"-"`
}

// SchemeConfig holds the default Shamir threshold scheme.
type SchemeConfig struct {
	Threshold int `yaml:"threshold"`
	Shares    int `yaml:"shares"`
}

// KDFConfig holds the default Argon2id target.
type KDFConfig struct {
	TargetSeconds float64 `yaml:"target_seconds"`
	MemoryPercent int     `yaml:"memory_percent"`
}

// WalletConfig holds the configured default wallet name. It is not read
// by secret.DeriveWalletSeed, which substitutes secret.DefaultWalletName
// when given an empty name.
type WalletConfig struct {
	DefaultName string `yaml:"default_name"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         string `yaml:"color"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from path, overlaying it onto Defaults so
// an incomplete file still yields a usable Config.
func Load(path string) (*Config, error) {
	// #nosec G304 -- path is caller-supplied and not web-facing
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path atomically, creating its parent directory
// if needed.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return fileutil.WriteAtomic(path, data, 0o600)
}

// Path returns the default config file path under home.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the configured home directory.
func (c *Config) GetHome() string {
	return c.Home
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// DefaultHome returns the default sbk home directory, $HOME/.sbk.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".sbk"
	}
	return filepath.Join(home, ".sbk")
}
