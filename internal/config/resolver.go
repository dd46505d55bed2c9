package config

import (
	"path/filepath"

	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/cast"
)

// EffectiveRule is a rule's configuration after overrides have been applied
// for one document. It owns its parameter map; mutating it never touches the
// base config.
type EffectiveRule struct {
	ID       string
	Category string
	Enabled  bool
	Params   map[string]any
}

// Float returns a numeric parameter, or fallback when absent or malformed
func (r EffectiveRule) Float(key string, fallback float64) float64 {
	value, ok := r.Params[key]
	if !ok || value == nil {
		return fallback
	}
	f, err := cast.ToFloat64E(value)
	if err != nil {
		return fallback
	}
	return f
}

// Int returns an integer parameter, or fallback when absent or malformed
func (r EffectiveRule) Int(key string, fallback int) int {
	value, ok := r.Params[key]
	if !ok || value == nil {
		return fallback
	}
	n, err := cast.ToIntE(value)
	if err != nil {
		return fallback
	}
	return n
}

// Strings returns a string-list parameter, or nil when absent or malformed
func (r EffectiveRule) Strings(key string) []string {
	value, ok := r.Params[key]
	if !ok || value == nil {
		return nil
	}
	list, err := cast.ToStringSliceE(value)
	if err != nil {
		return nil
	}
	return list
}

// EffectiveConfig maps rule id to its resolved configuration for one document
type EffectiveConfig map[string]EffectiveRule

// Rule returns the resolved configuration for a rule id. The second return
// is false for rules absent from the base rule list.
func (e EffectiveConfig) Rule(id string) (EffectiveRule, bool) {
	rule, ok := e[id]
	return rule, ok
}

// Resolve computes the per-document rule configuration: each base rule with
// the matching overrides folded in, in declared order. Override parameters
// shallow-merge over base parameters; scalars and lists both fully replace.
// Overrides never introduce rules absent from the base list. The base config
// is not mutated.
func Resolve(cfg *Config, documentPath string) EffectiveConfig {
	resolved := make(EffectiveConfig, len(cfg.Rules))

	for i := range cfg.Rules {
		rule := &cfg.Rules[i]
		params := make(map[string]any, len(rule.Params))
		for key, value := range rule.Params {
			params[key] = value
		}
		resolved[rule.ID] = EffectiveRule{
			ID:       rule.ID,
			Category: rule.Category,
			Enabled:  rule.IsEnabled(),
			Params:   params,
		}
	}

	for _, override := range cfg.Overrides {
		if !matchesPath(override.Path, documentPath) {
			continue
		}
		for id, tweak := range override.Rules {
			rule, ok := resolved[id]
			if !ok {
				continue
			}
			if tweak.Enabled != nil {
				rule.Enabled = *tweak.Enabled
			}
			for key, value := range tweak.Params {
				rule.Params[key] = value
			}
			resolved[id] = rule
		}
	}

	return resolved
}

// matchesPath reports whether a gitignore-style glob matches a document path
func matchesPath(pattern string, documentPath string) bool {
	matcher := gitignore.CompileIgnoreLines(pattern)
	return matcher.MatchesPath(filepath.ToSlash(documentPath))
}
