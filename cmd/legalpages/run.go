package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	legalpages "github.com/tarotdeck/legalpages"
	"github.com/tarotdeck/legalpages/internal/config"
	"github.com/tarotdeck/legalpages/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for driver operations.
var (
	ErrReadSource      = errors.New("failed to read source document")
	ErrWriteHTML       = errors.New("failed to write HTML file")
	ErrWriteAsset      = errors.New("failed to write site asset")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// Converter is the interface for the page conversion service.
type Converter interface {
	Convert(ctx context.Context, input legalpages.Input) (string, error)
}

// Compile-time interface implementation check.
var _ Converter = (*legalpages.Service)(nil)

// PageResult holds the outcome of a single source pair.
type PageResult struct {
	Source   string
	Title    string
	Output   string // derived HTML filename (empty when missing)
	Missing  bool
	Duration time.Duration
}

// run executes the full batch conversion.
func run(args []string, env *Environment) error {
	flags, _, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.version {
		fmt.Fprintln(env.Stdout, "legalpages "+Version)
		return nil
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	svc := legalpages.New()
	results, genErr := generateSite(context.Background(), svc, cfg, flags, env)

	// Report what was processed even when the run aborted partway.
	printResults(results, flags.quiet, flags.verbose, env)

	return genErr
}

// resolveConfig loads configuration and applies CLI overrides (CLI wins).
func resolveConfig(flags *cliFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if flags.root != "" {
		cfg.Root = flags.root
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}

	return cfg, nil
}

// generateSite converts every configured page in order and then writes the
// site assets. Missing sources are recorded and skipped; any other I/O
// failure aborts the run (no recovery policy exists for half-written
// output, so fail fast).
func generateSite(ctx context.Context, svc Converter, cfg *config.Config, flags *cliFlags, env *Environment) ([]PageResult, error) {
	outputDir := cfg.Output.Dir
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(cfg.Root, outputDir)
	}
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}

	results := make([]PageResult, 0, len(cfg.Pages))
	for _, page := range cfg.Pages {
		sourcePath := filepath.Join(cfg.Root, page.Source)
		if !fileutil.FileExists(sourcePath) {
			results = append(results, PageResult{Source: page.Source, Title: page.Title, Missing: true})
			continue
		}

		start := env.Now()

		content, err := os.ReadFile(sourcePath) // #nosec G304 -- path from config table
		if err != nil {
			return results, fmt.Errorf("%w: %s: %v", ErrReadSource, page.Source, err)
		}

		pageHTML, err := svc.Convert(ctx, legalpages.Input{
			Markdown: string(content),
			Title:    page.Title,
		})
		if err != nil {
			return results, fmt.Errorf("converting %s: %w", page.Source, err)
		}

		outputName := outputFileName(page.Source)
		// #nosec G306 -- HTML files are meant to be readable
		if err := os.WriteFile(filepath.Join(outputDir, outputName), []byte(pageHTML), filePermissions); err != nil {
			return results, fmt.Errorf("%w: %s: %v", ErrWriteHTML, outputName, err)
		}

		results = append(results, PageResult{
			Source:   page.Source,
			Title:    page.Title,
			Output:   outputName,
			Duration: env.Now().Sub(start),
		})
	}

	if err := writeSiteAssets(results, cfg, flags, env, outputDir); err != nil {
		return results, err
	}

	return results, nil
}

// outputFileName derives the HTML filename for a source document.
// A .md suffix is replaced with .html; extensionless names (LICENSE,
// COPYRIGHT) get .html appended.
func outputFileName(source string) string {
	if strings.HasSuffix(source, ".md") {
		return strings.TrimSuffix(source, ".md") + ".html"
	}
	return source + ".html"
}

// printResults writes one line per source pair: a success line naming
// source and destination, or a warning for a missing source. Warnings
// always print; --quiet suppresses success lines; --verbose adds timing
// and a summary.
func printResults(results []PageResult, quiet, verbose bool, env *Environment) {
	var converted, missing int

	for _, r := range results {
		if r.Missing {
			missing++
			fmt.Fprintf(env.Stdout, "Warning: %s not found\n", r.Source)
			continue
		}

		converted++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "Converted %s to %s (%v)\n", r.Source, r.Output, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Converted %s to %s\n", r.Source, r.Output)
		}
	}

	if !quiet && verbose {
		fmt.Fprintf(env.Stdout, "\n%d converted, %d missing\n", converted, missing)
	}
}
