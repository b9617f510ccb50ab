package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"compete/internal/filter"
	"compete/internal/logging"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Theme preferences.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

// DefaultConfigPath is where the CLI looks for its config file.
var DefaultConfigPath = filepath.Join(".compete", "config.yaml")

// ValidThemes lists the accepted theme values.
var ValidThemes = []string{ThemeLight, ThemeDark, ThemeAuto}

// Config holds all compete configuration.
type Config struct {
	// Theme is light, dark, or auto (detect from the terminal).
	Theme string `yaml:"theme"`

	UI      UIConfig      `yaml:"ui"`
	Actions ActionsConfig `yaml:"actions"`
	Logging LoggingConfig `yaml:"logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme:   ThemeAuto,
		UI:      DefaultUIConfig(),
		Actions: ActionsConfig{Collaborator: CollaboratorConsole},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Dir:    filepath.Join(".compete", "logs"),
		},
	}
}

// Load loads configuration from a YAML file. A .env file next to the config
// is loaded into the process environment first, so it can feed the
// COMPETE_* overrides. Missing files are not errors.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", envPath, err)
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		logging.Config("no config at %s, using defaults", path)
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("COMPETE_THEME"); v != "" {
		c.Theme = strings.ToLower(v)
	}
	// DARK_MODE=1 style switch; wins over COMPETE_THEME.
	if os.Getenv("COMPETE_DARK_MODE") == "1" {
		c.Theme = ThemeDark
	}
	if v := os.Getenv("COMPETE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("COMPETE_DEBUG"); v != "" {
		c.Logging.DebugMode = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("COMPETE_ACTIONS"); v != "" {
		c.Actions.Collaborator = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(ValidThemes, c.Theme) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.Theme, ValidThemes)
	}
	if _, err := filter.ParseSortKey(c.UI.DefaultSort); err != nil {
		return fmt.Errorf("invalid ui.default_sort: %w", err)
	}
	if c.UI.PrizeMax <= 0 {
		return fmt.Errorf("ui.prize_max must be positive, got %v", c.UI.PrizeMax)
	}
	if c.UI.PrizeStep <= 0 {
		return fmt.Errorf("ui.prize_step must be positive, got %v", c.UI.PrizeStep)
	}
	if !slices.Contains(ValidCollaborators, c.Actions.Collaborator) {
		return fmt.Errorf("invalid actions.collaborator: %s (valid: %v)", c.Actions.Collaborator, ValidCollaborators)
	}
	return nil
}
