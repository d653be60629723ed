// Package config — .catsync.yaml project configuration.
//
// Configuration is loaded once at startup into an explicit Config value
// and passed by parameter; there is no ambient global state. When no
// .catsync.yaml exists in the project root, the built-in defaults (the
// bot's supported languages, command aliases, and style-name tables)
// apply unchanged.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the default config file name.
const ConfigFileName = ".catsync.yaml"

// DefaultBatchSize bounds keys per translation request document.
const DefaultBatchSize = 25

// Config holds the project configuration.
type Config struct {
	// SourceLang is the canonical language code (default "en"). The
	// source language is never reconciled against its own templates.
	SourceLang string `yaml:"source_lang,omitempty"`
	// Languages are the supported language codes, source included.
	Languages []string `yaml:"languages,omitempty"`
	// CatalogDir holds the per-language catalog files (default "locales").
	CatalogDir string `yaml:"catalog_dir,omitempty"`
	// RequestsDir receives rendered request documents (default "requests").
	RequestsDir string `yaml:"requests_dir,omitempty"`
	// BatchSize bounds keys per request document (default 25).
	BatchSize int `yaml:"batch_size,omitempty"`
	// ForceRetranslate lists keys dropped in memory during reconciliation
	// so they resurface as missing for every non-source language.
	ForceRetranslate []string `yaml:"force_retranslate,omitempty"`
	// TemplateFiles maps extra category names to TOML master tables
	// loaded on top of the built-in templates.
	TemplateFiles map[string]string `yaml:"template_files,omitempty"`
	// CommandAliases maps language code to the localized help command.
	// Opaque to the core; carried for the bot's runtime.
	CommandAliases map[string]string `yaml:"command_aliases,omitempty"`
	// StyleNames maps language code to localized style word -> style ID.
	// Opaque to the core; carried for the bot's runtime.
	StyleNames map[string]map[string]string `yaml:"style_names,omitempty"`
}

// Load reads .catsync.yaml from the project root, falling back to the
// built-in defaults for every field left unset. A missing file is not
// an error; a malformed one is.
func Load(rootDir string) (*Config, error) {
	cfg := &Config{}

	path := filepath.Join(rootDir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SourceLang == "" {
		c.SourceLang = "en"
	}
	if len(c.Languages) == 0 {
		c.Languages = append([]string(nil), DefaultLanguages...)
	}
	if c.CatalogDir == "" {
		c.CatalogDir = "locales"
	}
	if c.RequestsDir == "" {
		c.RequestsDir = "requests"
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	if c.CommandAliases == nil {
		c.CommandAliases = DefaultCommandAliases
	}
	if c.StyleNames == nil {
		c.StyleNames = DefaultStyleNames
	}
}

// TargetLanguages returns the supported languages minus the source
// language, sorted.
func (c *Config) TargetLanguages() []string {
	var targets []string
	for _, lang := range c.Languages {
		if lang != c.SourceLang {
			targets = append(targets, lang)
		}
	}
	sort.Strings(targets)
	return targets
}

// IsSupported reports whether a language code is in the configured list.
func (c *Config) IsSupported(lang string) bool {
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
