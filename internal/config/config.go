package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"taskline/internal/dates"
	"taskline/internal/validate"
)

// Config holds the resolved application configuration
type Config struct {
	DateFormat     string
	DataDir        string
	DefaultCommand string
	Reports        map[string]Report
	// Path of the config file that was read, empty if none
	Path string
}

// Report is a custom report definition. Its name doubles as a command.
type Report struct {
	Description string   `yaml:"description,omitempty" toml:"description"`
	Columns     []string `yaml:"columns" toml:"columns"`
	Sort        []string `yaml:"sort,omitempty" toml:"sort"`
}

// Settings represents the config file structure
type Settings struct {
	DateFormat     string            `yaml:"dateformat,omitempty" toml:"dateformat"`
	DataDir        string            `yaml:"data_dir,omitempty" toml:"data_dir"`
	DefaultCommand string            `yaml:"default_command,omitempty" toml:"default_command"`
	Reports        map[string]Report `yaml:"reports,omitempty" toml:"reports"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	ConfigPath string
	DateFormat string
	DataDir    string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	defaultDir, err := GetDefaultDataDir()
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		DateFormat: dates.DefaultFormat,
		DataDir:    defaultDir,
		Reports:    map[string]Report{},
	}

	configPath := flags.ConfigPath
	if configPath == "" {
		configPath = os.Getenv("TASKLINE_CONFIG")
	}
	if configPath == "" {
		configPath, err = findConfigFile()
		if err != nil {
			return nil, err
		}
	}

	if configPath != "" {
		settings, err := loadConfigFile(expandPath(configPath))
		switch {
		case err == nil:
			cfg.apply(settings)
			cfg.Path = expandPath(configPath)
		case errors.Is(err, fs.ErrNotExist) && flags.ConfigPath == "":
			// No config file is fine unless one was asked for explicitly
		default:
			return nil, fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// Priority 2: Environment variables override config file
	if v := os.Getenv("TASKLINE_DATEFORMAT"); v != "" {
		cfg.DateFormat = v
	}
	if v := os.Getenv("TASKLINE_DATA"); v != "" {
		cfg.DataDir = expandPath(v)
	}

	// Priority 1: CLI flags override everything
	if flags.DateFormat != "" {
		cfg.DateFormat = flags.DateFormat
	}
	if flags.DataDir != "" {
		cfg.DataDir = expandPath(flags.DataDir)
	}

	return cfg, nil
}

func (c *Config) apply(s *Settings) {
	if s.DateFormat != "" {
		c.DateFormat = s.DateFormat
	}
	if s.DataDir != "" {
		c.DataDir = expandPath(s.DataDir)
	}
	if s.DefaultCommand != "" {
		c.DefaultCommand = s.DefaultCommand
	}
	for name, r := range s.Reports {
		c.Reports[strings.ToLower(name)] = r
	}
}

// ReportNames returns the custom report names in sorted order.
func (c *Config) ReportNames() []string {
	return slices.Sorted(maps.Keys(c.Reports))
}

// Report looks up a custom report by name.
func (c *Config) Report(name string) (Report, bool) {
	r, ok := c.Reports[name]
	return r, ok
}

// Validate checks the columns and sort order of a single report.
func (r Report) Validate() error {
	if err := validate.ReportColumns(r.Columns); err != nil {
		return err
	}
	return validate.SortColumns(r.Sort, r.Columns)
}

// Validate checks every report definition and returns all failures joined.
func (c *Config) Validate() error {
	var errs []error
	for _, name := range c.ReportNames() {
		if err := c.Reports[name].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("report %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// GetDefaultDataDir returns the default data directory path
func GetDefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "taskline"), nil
}

// getConfigDir returns the directory holding the configuration file
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "taskline"), nil
}

// findConfigFile prefers config.yaml and falls back to config.toml.
func findConfigFile() (string, error) {
	dir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	yamlPath := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath, nil
	}
	tomlPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath, nil
	}
	return yamlPath, nil
}

// loadConfigFile decodes the settings file; the extension picks the format
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &settings); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, err
		}
	}

	return &settings, nil
}

// DefaultSettings is what EnsureConfigFile writes.
func DefaultSettings() Settings {
	return Settings{
		DateFormat: dates.DefaultFormat,
		Reports: map[string]Report{
			"list": {
				Description: "Lists all pending tasks",
				Columns:     []string{"id", "project", "priority", "due", "active", "age", "description"},
				Sort:        []string{"project+", "priority-", "due+"},
			},
			"long": {
				Description: "Lists all tasks with every column",
				Columns:     []string{"id", "project", "priority", "entry", "start", "due", "age", "tags", "description"},
				Sort:        []string{"due+", "priority-", "project+"},
			},
		},
	}
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	dir, err := getConfigDir()
	if err != nil {
		return err
	}
	for _, name := range []string{"config.yaml", "config.toml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return nil
		}
	}
	return WriteConfigFile(filepath.Join(dir, "config.yaml"), DefaultSettings())
}

// WriteConfigFile writes settings as YAML or TOML depending on the extension.
func WriteConfigFile(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(settings); err != nil {
			return err
		}
		data = []byte(b.String())
	default:
		out, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}
		data = out
	}

	return os.WriteFile(path, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
