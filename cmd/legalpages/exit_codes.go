package main

import (
	"errors"
	"os"

	"github.com/tarotdeck/legalpages/internal/config"
)

// Exit codes for the legalpages CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, 3=I/O.
// A run where every source is missing still exits 0; absence is a
// warning, not an error.
const (
	ExitSuccess = 0 // Conversion completed (missing sources included)
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // Unreadable source, unwritable output
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrWriteAsset) ||
		errors.Is(err, ErrCreateOutputDir) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrNoPages) ||
		errors.Is(err, config.ErrEmptyPageSource) ||
		errors.Is(err, config.ErrEmptyPageTitle) {
		return ExitUsage
	}

	return ExitGeneral
}
