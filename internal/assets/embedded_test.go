package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		wantErr  error
		contains []string
	}{
		{
			name:     "page template",
			template: "page",
			contains: []string{"{{.Title}}", "{{.Body}}", "Tarot Deck App © 2026", "back-link"},
		},
		{
			name:     "index template",
			template: "index",
			contains: []string{"range .Pages", "Legal Documents", "Tarot Deck App © 2026"},
		},
		{
			name:     "unknown template",
			template: "missing",
			wantErr:  ErrTemplateNotFound,
		},
		{
			name:     "path traversal rejected",
			template: "../page",
			wantErr:  ErrInvalidAssetName,
		},
	}

	loader := NewEmbeddedLoader()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			content, err := loader.LoadTemplate(tt.template)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadTemplate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(content, want) {
					t.Errorf("LoadTemplate(%q) missing %q", tt.template, want)
				}
			}
		})
	}
}

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	css, err := loader.LoadStyle("style")
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	for _, want := range []string{".container", ".back-link", "footer"} {
		if !strings.Contains(css, want) {
			t.Errorf("LoadStyle() missing %q", want)
		}
	}

	if _, err := loader.LoadStyle("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(missing) error = %v, want ErrStyleNotFound", err)
	}
}

func TestPackageLevelLoaders(t *testing.T) {
	t.Parallel()

	if _, err := LoadTemplate("page"); err != nil {
		t.Errorf("LoadTemplate() error = %v", err)
	}
	if _, err := LoadStyle("style"); err != nil {
		t.Errorf("LoadStyle() error = %v", err)
	}
}
