// Copyright © 2024 The hjkls authors

// Package config loads the optional .hjkls.toml workspace
// configuration: a [format] table feeding the formatter and a [lint]
// table enabling or disabling rules. Unknown keys are ignored;
// mistyped values produce startup warnings instead of failures.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/hjkls/hjkls/formatter"
)

// FileName is the workspace configuration file name.
const FileName = ".hjkls.toml"

// Config is the parsed workspace configuration.
type Config struct {
	Format *formatter.Config

	// Category switches; a missing key means default (enabled).
	categories map[string]bool
	// Per-rule overrides keyed category#rule; value true = enabled.
	rules map[string]bool
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Format:     formatter.DefaultConfig(),
		categories: map[string]bool{},
		rules:      map[string]bool{},
	}
}

// RuleEnabled implements lint.RuleConfig: a per-rule override wins,
// then the category switch, then the default (enabled).
func (c *Config) RuleEnabled(category, rule string) bool {
	if on, ok := c.rules[category+"#"+rule]; ok {
		return on
	}
	if on, ok := c.categories[category]; ok {
		return on
	}
	return true
}

// Load reads .hjkls.toml from the first root that carries one.
// Returns the defaults plus any warnings about mistyped values; a
// missing file is not a warning.
func Load(roots ...string) (*Config, []string) {
	for _, root := range roots {
		path := filepath.Join(root, FileName)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return loadFile(path)
	}
	return Default(), nil
}

func loadFile(path string) (*Config, []string) {
	cfg := Default()
	var warnings []string

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		warnings = append(warnings, fmt.Sprintf("%s: %v", path, err))
		return cfg, warnings
	}

	warn := func(key string, want string) {
		warnings = append(warnings, fmt.Sprintf("%s: key %q is not a %s; using default", path, key, want))
	}

	readInt := func(key string, dst *int) {
		if !v.IsSet(key) {
			return
		}
		switch n := v.Get(key).(type) {
		case int:
			*dst = n
		case int64:
			*dst = int(n)
		case float64:
			*dst = int(n)
		default:
			warn(key, "integer")
		}
	}
	readBool := func(key string, dst *bool) {
		if !v.IsSet(key) {
			return
		}
		if b, ok := v.Get(key).(bool); ok {
			*dst = b
		} else {
			warn(key, "boolean")
		}
	}

	readInt("format.indent_width", &cfg.Format.IndentWidth)
	readBool("format.use_tabs", &cfg.Format.UseTabs)
	readInt("format.line_continuation_indent", &cfg.Format.LineContinuationIndent)
	readBool("format.trim_trailing_whitespace", &cfg.Format.TrimTrailingWhitespace)
	readBool("format.insert_final_newline", &cfg.Format.InsertFinalNewline)
	readBool("format.normalize_spaces", &cfg.Format.NormalizeSpaces)
	readBool("format.space_around_operators", &cfg.Format.SpaceAroundOperators)
	readBool("format.space_after_comma", &cfg.Format.SpaceAfterComma)
	readBool("format.space_after_colon", &cfg.Format.SpaceAfterColon)

	for _, cat := range []string{"correctness", "suspicious", "style"} {
		key := "lint." + cat
		if v.IsSet(key) {
			if b, ok := v.Get(key).(bool); ok {
				cfg.categories[cat] = b
			} else {
				warn(key, "boolean")
			}
		}
		// Per-rule overrides: [lint.rules.<category>] name = "off"|"warn".
		ruleTable := v.GetStringMap("lint.rules." + cat)
		for rule, raw := range ruleTable {
			state, ok := raw.(string)
			if !ok {
				warn("lint.rules."+cat+"."+rule, "string")
				continue
			}
			switch strings.ToLower(state) {
			case "off":
				cfg.rules[cat+"#"+rule] = false
			case "warn", "on":
				cfg.rules[cat+"#"+rule] = true
			default:
				warn("lint.rules."+cat+"."+rule, `"off" or "warn"`)
			}
		}
	}

	return cfg, warnings
}
