package service

import (
	"github.com/ludo-technologies/prosescan/domain"
	"github.com/ludo-technologies/prosescan/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads run settings from the specified configuration file
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.LintRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return c.settingsToRequest(cfg), nil
}

// LoadDefaultConfig loads run settings from a discovered configuration file,
// falling back to built-in defaults
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.LintRequest {
	cfg, err := config.LoadConfigWithTarget("", "")
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return c.settingsToRequest(cfg)
}

// MergeConfig merges CLI flags over file settings. Zero values in the
// override leave the base value in place; paths always come from the
// command arguments.
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.LintRequest, override *domain.LintRequest) *domain.LintRequest {
	merged := *base

	if len(override.Paths) > 0 {
		merged.Paths = override.Paths
	}
	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}
	if override.FailOn != "" {
		merged.FailOn = override.FailOn
	}
	if len(override.ExcludePatterns) > 0 {
		// Copy so the append never writes into base's backing array
		patterns := make([]string, 0, len(base.ExcludePatterns)+len(override.ExcludePatterns))
		patterns = append(patterns, base.ExcludePatterns...)
		patterns = append(patterns, override.ExcludePatterns...)
		merged.ExcludePatterns = patterns
	}
	if override.Workers != 0 {
		merged.Workers = override.Workers
	}
	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}
	if override.NoProgress {
		merged.NoProgress = true
	}
	if override.Verbose {
		merged.Verbose = true
	}

	return &merged
}

// settingsToRequest converts the settings block of a configuration into the
// request defaults. Paths are set by the caller, not from config.
func (c *ConfigurationLoaderImpl) settingsToRequest(cfg *config.Config) *domain.LintRequest {
	return &domain.LintRequest{
		Paths:           []string{},
		OutputFormat:    domain.OutputFormatText,
		FailOn:          domain.Severity(cfg.Settings.FailOn),
		Recursive:       cfg.Settings.Recursive,
		ExcludePatterns: cfg.Settings.Exclude,
		Workers:         cfg.Settings.Workers,
	}
}
