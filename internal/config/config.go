package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ToolchainConfig configures the compiler invoked for each exercise
type ToolchainConfig struct {
	// Binary is the compiler executable name or path
	Binary string `yaml:"binary"`

	// LintArgs are extra compiler flags used for lint-mode exercises
	LintArgs []string `yaml:"lint_args"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	// Dir is the curriculum root watched recursively
	Dir string `yaml:"dir"`

	// Extensions lists the source extensions that trigger re-verification
	Extensions []string `yaml:"extensions"`

	// Debounce coalesces rapid successive events for the same file
	Debounce time.Duration `yaml:"debounce"`
}

// Config represents algo configuration options
type Config struct {
	// LogLevel sets the file log verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// ConsoleLogLevel sets the stderr log verbosity
	ConsoleLogLevel string `yaml:"console_log_level"`

	// LogDir is the directory where logs will be written
	LogDir string `yaml:"log_dir"`

	// Manifest is an explicit curriculum manifest path (empty = auto-detect)
	Manifest string `yaml:"manifest"`

	// Banner is the text file printed when no subcommand is given
	Banner string `yaml:"banner"`

	// Toolchain configures the compiler
	Toolchain ToolchainConfig `yaml:"toolchain"`

	// Watch configures watch mode
	Watch WatchConfig `yaml:"watch"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        "info",
		ConsoleLogLevel: "warn",
		LogDir:          filepath.Join(HomeDirName, "logs"),
		Manifest:        "",
		Banner:          "default_out.txt",
		Toolchain: ToolchainConfig{
			Binary:   "rustc",
			LintArgs: []string{"-D", "warnings"},
		},
		Watch: WatchConfig{
			Dir:        ".",
			Extensions: []string{".rs"},
			Debounce:   2 * time.Second,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are written as strings ("500ms", "2s") in the file
	type yamlWatch struct {
		Dir        string   `yaml:"dir"`
		Extensions []string `yaml:"extensions"`
		Debounce   string   `yaml:"debounce"`
	}
	type yamlConfig struct {
		LogLevel        string          `yaml:"log_level"`
		ConsoleLogLevel string          `yaml:"console_log_level"`
		LogDir          string          `yaml:"log_dir"`
		Manifest        string          `yaml:"manifest"`
		Banner          string          `yaml:"banner"`
		Toolchain       ToolchainConfig `yaml:"toolchain"`
		Watch           yamlWatch       `yaml:"watch"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.ConsoleLogLevel != "" {
		cfg.ConsoleLogLevel = yamlCfg.ConsoleLogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if yamlCfg.Manifest != "" {
		cfg.Manifest = yamlCfg.Manifest
	}
	if yamlCfg.Banner != "" {
		cfg.Banner = yamlCfg.Banner
	}
	if yamlCfg.Toolchain.Binary != "" {
		cfg.Toolchain.Binary = yamlCfg.Toolchain.Binary
	}
	if yamlCfg.Toolchain.LintArgs != nil {
		cfg.Toolchain.LintArgs = yamlCfg.Toolchain.LintArgs
	}
	if yamlCfg.Watch.Dir != "" {
		cfg.Watch.Dir = yamlCfg.Watch.Dir
	}
	if len(yamlCfg.Watch.Extensions) > 0 {
		cfg.Watch.Extensions = normalizeExtensions(yamlCfg.Watch.Extensions)
	}
	if yamlCfg.Watch.Debounce != "" {
		debounce, err := time.ParseDuration(yamlCfg.Watch.Debounce)
		if err != nil {
			return nil, fmt.Errorf("invalid watch.debounce format %q: %w", yamlCfg.Watch.Debounce, err)
		}
		cfg.Watch.Debounce = debounce
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .algo/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, HomeDirName, "config.yaml")
	return LoadConfig(configPath)
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
		c.ConsoleLogLevel = *logLevel
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}
	if !validLevels[c.ConsoleLogLevel] {
		return fmt.Errorf("invalid console_log_level %q, must be one of: trace, debug, info, warn, error", c.ConsoleLogLevel)
	}

	if strings.TrimSpace(c.Toolchain.Binary) == "" {
		return fmt.Errorf("toolchain.binary cannot be empty")
	}

	if len(c.Watch.Extensions) == 0 {
		return fmt.Errorf("watch.extensions cannot be empty")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must be >= 0, got %v", c.Watch.Debounce)
	}

	return nil
}

// normalizeExtensions makes sure every extension carries its leading dot
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}
