package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ContentType represents the kind of prose being linted
type ContentType string

const (
	ContentTypeGeneral   ContentType = "general"
	ContentTypeBlog      ContentType = "blog"
	ContentTypeDocs      ContentType = "docs"
	ContentTypeMarketing ContentType = "marketing"
)

// Strictness represents the linting strictness level
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// ContentPreset holds adjustments for different kinds of prose
type ContentPreset struct {
	// DisabledRules are switched off because the content type legitimately
	// uses what they flag
	DisabledRules []string

	// Exclude patterns added to settings.exclude
	Exclude []string
}

// StrictnessPreset holds threshold values for different strictness levels
type StrictnessPreset struct {
	BannedWordsWarn float64
	BannedWordsFail float64
	AdverbsWarn     float64
	AdverbsFail     float64
	RepeatThreshold int
	FailOn          string
}

// GetContentPresets returns presets for different content types
func GetContentPresets() map[ContentType]ContentPreset {
	return map[ContentType]ContentPreset{
		ContentTypeGeneral: {},
		ContentTypeBlog: {
			// Personal blogs address the reader directly and reference
			// themselves; those rules would flag every post.
			DisabledRules: []string{"conversational-hooks", "meta-commentary"},
			Exclude:       []string{"drafts/**"},
		},
		ContentTypeDocs: {
			// Reference docs lean on passive constructions and uniform
			// sentence shapes.
			DisabledRules: []string{"passive-voice", "sentence-variance"},
			Exclude:       []string{"CHANGELOG.md", "node_modules/**"},
		},
		ContentTypeMarketing: {
			// Promotional tone is the point here.
			DisabledRules: []string{"promotional-language", "significance-language"},
		},
	}
}

// GetStrictnessPresets returns presets for different strictness levels
func GetStrictnessPresets() map[Strictness]StrictnessPreset {
	return map[Strictness]StrictnessPreset{
		StrictnessRelaxed: {
			BannedWordsWarn: 3,
			BannedWordsFail: 5,
			AdverbsWarn:     12,
			AdverbsFail:     20,
			RepeatThreshold: 6,
			FailOn:          "FAIL",
		},
		StrictnessStandard: {
			BannedWordsWarn: 2,
			BannedWordsFail: 3,
			AdverbsWarn:     8,
			AdverbsFail:     15,
			RepeatThreshold: 4,
			FailOn:          "FAIL",
		},
		StrictnessStrict: {
			BannedWordsWarn: 1,
			BannedWordsFail: 2,
			AdverbsWarn:     6,
			AdverbsFail:     10,
			RepeatThreshold: 3,
			FailOn:          "WARN",
		},
	}
}

// BuildConfig assembles a configuration from a content type and strictness
// level, starting from the default catalog.
func BuildConfig(contentType ContentType, strictness Strictness) *Config {
	cfg := DefaultConfig()

	content, ok := GetContentPresets()[contentType]
	if !ok {
		content = ContentPreset{}
	}
	strict, ok := GetStrictnessPresets()[strictness]
	if !ok {
		strict = GetStrictnessPresets()[StrictnessStandard]
	}

	cfg.Settings.FailOn = strict.FailOn
	cfg.Settings.Exclude = append(cfg.Settings.Exclude, content.Exclude...)

	disabled := make(map[string]bool, len(content.DisabledRules))
	for _, id := range content.DisabledRules {
		disabled[id] = true
	}

	for i := range cfg.Rules {
		rule := &cfg.Rules[i]
		if disabled[rule.ID] {
			off := false
			rule.Enabled = &off
		}
		switch rule.ID {
		case "banned-words":
			rule.Params["warn_threshold_per_1000"] = strict.BannedWordsWarn
			rule.Params["fail_threshold_per_1000"] = strict.BannedWordsFail
		case "adverbs":
			rule.Params["warn_threshold_per_1000"] = strict.AdverbsWarn
			rule.Params["fail_threshold_per_1000"] = strict.AdverbsFail
		case "repetition":
			rule.Params["repeat_threshold"] = strict.RepeatThreshold
		}
	}

	return cfg
}

// GetFullConfigTemplate returns the complete commented config for a content
// type and strictness level, ready to write to disk.
func GetFullConfigTemplate(contentType ContentType, strictness Strictness) (string, error) {
	cfg := BuildConfig(contentType, strictness)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to serialize config template: %w", err)
	}

	header := `# prosescan configuration
# Content type: ` + string(contentType) + `, strictness: ` + string(strictness) + `
# Documentation: https://github.com/ludo-technologies/prosescan
#
# Rules not listed under "rules" do not run. Overrides tune parameters for
# documents matching a path glob, for example:
#
#   overrides:
#     - path: "blog/**"
#       rules:
#         banned-words:
#           params:
#             fail_threshold_per_1000: 4

`
	return header + string(data), nil
}

// GetMinimalConfigTemplate returns a minimal config template
func GetMinimalConfigTemplate() string {
	return `# prosescan configuration (minimal)
# See full options: https://github.com/ludo-technologies/prosescan

version: "1"

settings:
  fail_on: FAIL
  workers: 0
  recursive: true
  exclude: []

rules:
  - id: banned-words
  - id: weak-phrases
  - id: adverbs
  - id: ai-vocabulary
  - id: knowledge-cutoff
`
}
