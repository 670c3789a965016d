// Package config loads and validates site generation configuration.
// The defaults reproduce the legal documents table the site has always
// shipped with; a YAML file can override any part of it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tarotdeck/legalpages/internal/fileutil"
	"github.com/tarotdeck/legalpages/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrNoPages         = errors.New("at least one page is required")
	ErrEmptyPageSource = errors.New("page source cannot be empty")
	ErrEmptyPageTitle  = errors.New("page title cannot be empty")
)

// Field length limits.
const (
	MaxTitleLength  = 100  // Display title
	MaxSourceLength = 255  // Source filename
	MaxPathLength   = 4096 // Root and output directories
)

// Page maps one source document to its display title.
type Page struct {
	Source string `yaml:"source"` // filename relative to root
	Title  string `yaml:"title"`  // display title, not derived from content
}

// OutputConfig defines where generated files go.
type OutputConfig struct {
	Dir string `yaml:"dir"` // relative paths resolve under root
}

// SiteConfig toggles the generated site assets.
type SiteConfig struct {
	IndexEnabled bool `yaml:"indexEnabled"` // write index.html
	StyleEnabled bool `yaml:"styleEnabled"` // write style.css
}

// Config holds all configuration for site generation.
type Config struct {
	Root   string       `yaml:"root"`
	Output OutputConfig `yaml:"output"`
	Site   SiteConfig   `yaml:"site"`
	Pages  []Page       `yaml:"pages"`
}

// DefaultConfig returns the configuration the generator has always run
// with: the four legal documents, converted into docs/ under the current
// directory, with the index page and stylesheet enabled.
func DefaultConfig() *Config {
	return &Config{
		Root:   ".",
		Output: OutputConfig{Dir: "docs"},
		Site:   SiteConfig{IndexEnabled: true, StyleEnabled: true},
		Pages: []Page{
			{Source: "PRIVACY_POLICY.md", Title: "Privacy Policy"},
			{Source: "TERMS_OF_SERVICE.md", Title: "Terms of Service"},
			{Source: "LICENSE", Title: "License"},
			{Source: "COPYRIGHT", Title: "Copyright"},
		},
	}
}

// Validate checks field lengths and that every page has a source and title.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("root", c.Root, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}

	if len(c.Pages) == 0 {
		return ErrNoPages
	}
	for i, p := range c.Pages {
		if p.Source == "" {
			return fmt.Errorf("%w: pages[%d]", ErrEmptyPageSource, i)
		}
		if p.Title == "" {
			return fmt.Errorf("%w: pages[%d]", ErrEmptyPageTitle, i)
		}
		if err := validateFieldLength(fmt.Sprintf("pages[%d].source", i), p.Source, MaxSourceLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("pages[%d].title", i), p.Title, MaxTitleLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. The loaded file overlays DefaultConfig, so a partial file
// keeps the default page table and site settings.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/legalpages/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "legalpages", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
