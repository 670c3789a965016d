package main

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/tarotdeck/legalpages/internal/config"
)

// indexEntry is one row of the generated legal documents index.
type indexEntry struct {
	Href  string
	Title string
}

// indexData feeds the index template.
type indexData struct {
	Pages []indexEntry
}

// writeSiteAssets writes style.css and index.html into the output
// directory, listing the pages that were actually converted. Nothing is
// written when no page converted, so an all-missing run leaves only the
// empty output directory behind.
func writeSiteAssets(results []PageResult, cfg *config.Config, flags *cliFlags, env *Environment, outputDir string) error {
	entries := indexEntries(results)
	if len(entries) == 0 {
		return nil
	}

	if cfg.Site.StyleEnabled && !flags.noStyle {
		css, err := env.AssetLoader.LoadStyle("style")
		if err != nil {
			return fmt.Errorf("loading stylesheet: %w", err)
		}
		// #nosec G306 -- site assets are meant to be readable
		if err := os.WriteFile(filepath.Join(outputDir, "style.css"), []byte(css), filePermissions); err != nil {
			return fmt.Errorf("%w: style.css: %v", ErrWriteAsset, err)
		}
	}

	if cfg.Site.IndexEnabled && !flags.noIndex {
		indexHTML, err := renderIndex(env, entries)
		if err != nil {
			return err
		}
		// #nosec G306 -- site assets are meant to be readable
		if err := os.WriteFile(filepath.Join(outputDir, "index.html"), []byte(indexHTML), filePermissions); err != nil {
			return fmt.Errorf("%w: index.html: %v", ErrWriteAsset, err)
		}
	}

	return nil
}

// indexEntries builds index rows for the converted pages, in table order.
func indexEntries(results []PageResult) []indexEntry {
	var entries []indexEntry
	for _, r := range results {
		if r.Missing {
			continue
		}
		entries = append(entries, indexEntry{Href: r.Output, Title: r.Title})
	}
	return entries
}

// renderIndex renders the embedded index template with the given entries.
func renderIndex(env *Environment, entries []indexEntry) (string, error) {
	source, err := env.AssetLoader.LoadTemplate("index")
	if err != nil {
		return "", fmt.Errorf("loading index template: %w", err)
	}

	tmpl, err := template.New("index").Parse(source)
	if err != nil {
		return "", fmt.Errorf("parsing index template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, indexData{Pages: entries}); err != nil {
		return "", fmt.Errorf("rendering index: %w", err)
	}
	return buf.String(), nil
}
