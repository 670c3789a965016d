package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Root != "." {
		t.Errorf("Root = %q, want %q", cfg.Root, ".")
	}
	if cfg.Output.Dir != "docs" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "docs")
	}
	if !cfg.Site.IndexEnabled || !cfg.Site.StyleEnabled {
		t.Errorf("Site = %+v, want index and style enabled", cfg.Site)
	}

	wantPages := []Page{
		{Source: "PRIVACY_POLICY.md", Title: "Privacy Policy"},
		{Source: "TERMS_OF_SERVICE.md", Title: "Terms of Service"},
		{Source: "LICENSE", Title: "License"},
		{Source: "COPYRIGHT", Title: "Copyright"},
	}
	if len(cfg.Pages) != len(wantPages) {
		t.Fatalf("Pages length = %d, want %d", len(cfg.Pages), len(wantPages))
	}
	for i, want := range wantPages {
		if cfg.Pages[i] != want {
			t.Errorf("Pages[%d] = %+v, want %+v", i, cfg.Pages[i], want)
		}
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "defaults valid",
			mutate:  func(*Config) {},
			wantErr: nil,
		},
		{
			name:    "no pages",
			mutate:  func(c *Config) { c.Pages = nil },
			wantErr: ErrNoPages,
		},
		{
			name:    "empty page source",
			mutate:  func(c *Config) { c.Pages[0].Source = "" },
			wantErr: ErrEmptyPageSource,
		},
		{
			name:    "empty page title",
			mutate:  func(c *Config) { c.Pages[1].Title = "" },
			wantErr: ErrEmptyPageTitle,
		},
		{
			name:    "title too long",
			mutate:  func(c *Config) { c.Pages[0].Title = strings.Repeat("x", MaxTitleLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "source too long",
			mutate:  func(c *Config) { c.Pages[0].Source = strings.Repeat("x", MaxSourceLength+1) },
			wantErr: ErrFieldTooLong,
		},
		{
			name:    "root too long",
			mutate:  func(c *Config) { c.Root = strings.Repeat("x", MaxPathLength+1) },
			wantErr: ErrFieldTooLong,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "absent.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("full config from path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		data := `root: /srv/app
output:
  dir: public
site:
  indexEnabled: false
pages:
  - source: EULA.md
    title: EULA
`
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Root != "/srv/app" {
			t.Errorf("Root = %q", cfg.Root)
		}
		if cfg.Output.Dir != "public" {
			t.Errorf("Output.Dir = %q", cfg.Output.Dir)
		}
		if cfg.Site.IndexEnabled {
			t.Error("Site.IndexEnabled = true, want false")
		}
		if len(cfg.Pages) != 1 || cfg.Pages[0] != (Page{Source: "EULA.md", Title: "EULA"}) {
			t.Errorf("Pages = %+v", cfg.Pages)
		}
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		if err := os.WriteFile(path, []byte("root: /srv/app\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Root != "/srv/app" {
			t.Errorf("Root = %q", cfg.Root)
		}
		if cfg.Output.Dir != "docs" {
			t.Errorf("Output.Dir = %q, want default docs", cfg.Output.Dir)
		}
		if !cfg.Site.StyleEnabled {
			t.Error("Site.StyleEnabled = false, want default true")
		}
		if len(cfg.Pages) != 4 {
			t.Errorf("Pages length = %d, want default 4", len(cfg.Pages))
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		if err := os.WriteFile(path, []byte("bogus: true\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid pages rejected", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "site.yaml")
		data := "pages:\n  - source: EULA.md\n    title: \"\"\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadConfig(path); !errors.Is(err, ErrEmptyPageTitle) {
			t.Errorf("LoadConfig() error = %v, want ErrEmptyPageTitle", err)
		}
	})
}
