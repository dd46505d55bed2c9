package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/prosescan/internal/constants"
)

// Config represents the main configuration structure
type Config struct {
	// Version is the config schema version
	Version string `json:"version" mapstructure:"version" yaml:"version"`

	// Settings holds runtime settings shared by all commands
	Settings Settings `json:"settings" mapstructure:"settings" yaml:"settings"`

	// Rules is the base rule list. When a config file provides a rules
	// section it becomes the complete rule set: rules it does not list do
	// not run. Listed rules inherit catalog defaults for parameters they
	// leave out.
	Rules []RuleConfig `json:"rules" mapstructure:"rules" yaml:"rules"`

	// Overrides tune rule parameters for documents matching a path glob
	Overrides []Override `json:"overrides,omitempty" mapstructure:"overrides" yaml:"overrides,omitempty"`
}

// Settings holds runtime settings shared by all commands
type Settings struct {
	// FailOn is the severity gate: findings at or above this level fail the run
	FailOn string `json:"fail_on" mapstructure:"fail_on" yaml:"fail_on"`

	// Workers is the number of parallel workers (0 = number of CPUs)
	Workers int `json:"workers" mapstructure:"workers" yaml:"workers"`

	// Recursive controls whether directories are walked recursively
	Recursive bool `json:"recursive" mapstructure:"recursive" yaml:"recursive"`

	// Exclude lists gitignore-style glob patterns for paths to skip
	Exclude []string `json:"exclude" mapstructure:"exclude" yaml:"exclude"`
}

// RuleConfig configures a single rule
type RuleConfig struct {
	// ID is the rule identifier
	ID string `json:"id" mapstructure:"id" yaml:"id"`

	// Enabled toggles the rule; omitted means enabled
	Enabled *bool `json:"enabled,omitempty" mapstructure:"enabled" yaml:"enabled,omitempty"`

	// Category groups the rule in reports; filled from the catalog
	Category string `json:"category,omitempty" mapstructure:"category" yaml:"category,omitempty"`

	// Params holds rule-specific parameters (word lists, thresholds)
	Params map[string]any `json:"params,omitempty" mapstructure:"params" yaml:"params,omitempty"`
}

// IsEnabled reports whether the rule should run. A rule listed without an
// explicit enabled flag is enabled.
func (r *RuleConfig) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// Override tunes rules for documents whose path matches a glob pattern
type Override struct {
	// Path is a gitignore-style glob pattern ("blog/**")
	Path string `json:"path" mapstructure:"path" yaml:"path"`

	// Rules maps rule id to the tweaks applied under this path
	Rules map[string]RuleOverride `json:"rules" mapstructure:"rules" yaml:"rules"`
}

// RuleOverride holds the per-rule tweaks of an override entry
type RuleOverride struct {
	// Enabled toggles the rule for matching documents; nil leaves it alone
	Enabled *bool `json:"enabled,omitempty" mapstructure:"enabled" yaml:"enabled,omitempty"`

	// Params shallow-merges over the base parameters; lists fully replace
	Params map[string]any `json:"params,omitempty" mapstructure:"params" yaml:"params,omitempty"`
}

// LoadConfig loads configuration from file or returns the default config
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context
// Orchestrates discovery and loading but delegates specific concerns
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = discoverConfigFile(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// discoverConfigFile finds the appropriate config file path
// Single responsibility: configuration file discovery only
func discoverConfigFile(targetPath string) string {
	return findDefaultConfig(targetPath)
}

// loadConfigFromFile reads and parses a configuration file
// Single responsibility: file loading and parsing only
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// Create a new viper instance to avoid race conditions
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix(constants.EnvVarPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// Unmarshal settings over the defaults but keep the rule list empty:
	// mapstructure merges slices element by element, so unmarshalling a
	// file's rules over the full catalog would pair them up by index.
	config := DefaultConfig()
	config.Rules = nil
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if config.Rules == nil {
		// No rules section in the file: the whole catalog runs
		config.Rules = DefaultRules()
	}

	if err := config.mergeCatalogDefaults(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// mergeCatalogDefaults fills catalog categories and default parameters into
// the loaded rule list. Parameters present in the file win; a file listing a
// rule with no params gets the full catalog defaults for that rule.
func (c *Config) mergeCatalogDefaults() error {
	catalog := catalogByID()

	for i := range c.Rules {
		rule := &c.Rules[i]
		def, ok := catalog[rule.ID]
		if !ok {
			return fmt.Errorf("unknown rule id '%s'", rule.ID)
		}

		rule.Category = def.Category
		if rule.Params == nil {
			rule.Params = make(map[string]any, len(def.Params))
		}
		for key, value := range def.Params {
			if _, present := rule.Params[key]; !present {
				rule.Params[key] = value
			}
		}
	}

	return nil
}

func catalogByID() map[string]RuleConfig {
	rules := DefaultRules()
	catalog := make(map[string]RuleConfig, len(rules))
	for _, r := range rules {
		catalog[r.ID] = r
	}
	return catalog
}

// searchConfigInDirectory searches for configuration files in a specific directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for default configuration files in common locations
// targetPath is the path being linted (e.g., a document or directory)
func findDefaultConfig(targetPath string) string {
	candidates := []string{
		constants.ConfigFileName,
		".prosescan.yml",
		"prosescan.yaml",
		"prosescan.yml",
	}

	// If targetPath is provided, search from there upward
	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			// If it's a file, start from its directory
			info, err := os.Stat(absPath)
			if err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			// Search from target directory up to the filesystem root.
			// Termination handles Windows volume roots (C:\) and UNC paths.
			volume := filepath.VolumeName(absPath)
			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}

				parent := filepath.Dir(dir)
				if parent == dir ||
					dir == volume ||
					(volume != "" && dir == volume+string(filepath.Separator)) {
					break
				}
			}
		}
	}

	// Fallback to current directory
	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	// Check XDG config directory (Linux/Mac standard)
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, constants.ToolName), candidates); config != "" {
			return config
		}
	}

	// Check ~/.config/prosescan/ (XDG default)
	if home, err := os.UserHomeDir(); err == nil {
		configDir := filepath.Join(home, ".config", constants.ToolName)
		if config := searchConfigInDirectory(configDir, candidates); config != "" {
			return config
		}

		// Check home directory (backward compatibility)
		if config := searchConfigInDirectory(home, candidates); config != "" {
			return config
		}
	}

	// Check PROSESCAN_CONFIG environment variable as fallback
	if envConfig := os.Getenv(constants.EnvVarPrefix + "_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Version != "" && c.Version != "1" {
		return fmt.Errorf("unsupported config version '%s'", c.Version)
	}

	if err := c.validateSettings(); err != nil {
		return err
	}

	catalog := catalogByID()

	for i := range c.Rules {
		rule := &c.Rules[i]
		def, ok := catalog[rule.ID]
		if !ok {
			return fmt.Errorf("unknown rule id '%s'", rule.ID)
		}
		if err := validateRuleParams(rule.ID, rule.Params, def.Params); err != nil {
			return err
		}
	}

	for _, override := range c.Overrides {
		if strings.TrimSpace(override.Path) == "" {
			return fmt.Errorf("override path pattern cannot be empty")
		}
		for id, tweak := range override.Rules {
			def, ok := catalog[id]
			if !ok {
				return fmt.Errorf("override for '%s': unknown rule id '%s'", override.Path, id)
			}
			if err := validateRuleParams(id, tweak.Params, def.Params); err != nil {
				return fmt.Errorf("override for '%s': %w", override.Path, err)
			}
		}
	}

	return nil
}

func (c *Config) validateSettings() error {
	validSeverities := map[string]bool{
		"PASS": true,
		"WARN": true,
		"FAIL": true,
	}
	if !validSeverities[strings.ToUpper(c.Settings.FailOn)] {
		return fmt.Errorf("invalid settings.fail_on '%s', must be one of: PASS, WARN, FAIL", c.Settings.FailOn)
	}

	if c.Settings.Workers < 0 {
		return fmt.Errorf("settings.workers must be >= 0, got %d", c.Settings.Workers)
	}

	for _, pattern := range c.Settings.Exclude {
		if strings.TrimSpace(pattern) == "" {
			return fmt.Errorf("settings.exclude contains an empty pattern")
		}
	}

	return nil
}

// validateRuleParams rejects unknown parameter keys and values of the wrong
// type. The catalog defaults act as the schema: a key missing there does not
// exist for that rule.
func validateRuleParams(ruleID string, params map[string]any, schema map[string]any) error {
	for key, value := range params {
		if _, known := schema[key]; !known {
			return fmt.Errorf("rule '%s': unknown parameter '%s'", ruleID, key)
		}

		switch {
		case key == "patterns":
			patterns, err := cast.ToStringSliceE(value)
			if err != nil {
				return fmt.Errorf("rule '%s': parameter '%s' must be a list of strings", ruleID, key)
			}
			for _, p := range patterns {
				if _, err := regexp.Compile("(?i)" + p); err != nil {
					return fmt.Errorf("rule '%s': invalid pattern '%s': %w", ruleID, p, err)
				}
			}
		case strings.HasSuffix(key, "_per_1000") || strings.HasSuffix(key, "_percent"):
			if _, err := cast.ToFloat64E(value); err != nil {
				return fmt.Errorf("rule '%s': parameter '%s' must be a number", ruleID, key)
			}
		case isCountParam(key):
			if _, err := cast.ToIntE(value); err != nil {
				return fmt.Errorf("rule '%s': parameter '%s' must be an integer", ruleID, key)
			}
		default:
			if _, err := cast.ToStringSliceE(value); err != nil {
				return fmt.Errorf("rule '%s': parameter '%s' must be a list of strings", ruleID, key)
			}
		}
	}
	return nil
}

func isCountParam(key string) bool {
	switch key {
	case "warn_count", "fail_count", "cluster_threshold", "consecutive_fail_count",
		"window_words", "repeat_threshold", "min_word_length", "min_sentences", "band_width":
		return true
	}
	return false
}

// SaveConfig saves configuration to a YAML file with a commented header
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	header := "# " + constants.ToolName + " configuration\n" +
		"# Documentation: https://github.com/ludo-technologies/prosescan\n\n"

	if err := os.WriteFile(path, append([]byte(header), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
