package main

import (
	"errors"
	"os"

	mdwizard "github.com/alnah/go-mdwizard"
	"github.com/alnah/go-mdwizard/internal/config"
	"github.com/alnah/go-mdwizard/internal/dateutil"
	"github.com/alnah/go-mdwizard/internal/recipe"
)

// Exit codes for mdwizard CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or recipe
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, recipe.ErrRead) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrOutOfRange) ||
		errors.Is(err, recipe.ErrParse) ||
		errors.Is(err, recipe.ErrInvalid) ||
		errors.Is(err, mdwizard.ErrEmptyMarkdown) ||
		errors.Is(err, mdwizard.ErrTerminalRender) ||
		errors.Is(err, dateutil.ErrInvalidLayout) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
