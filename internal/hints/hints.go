// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or the first user config location searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-mdwizard") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForRecipe returns hints for recipe parse and validation errors.
func ForRecipe() string {
	return formatHints([]string{
		"run 'mdwizard help build' for block types",
		"unknown keys are rejected",
	})
}

// ForNoInput returns hints when a build finds no recipes.
func ForNoInput() string {
	return format("recipes must end in .yaml or .yml")
}

// ForTerminalStyle returns hints for unknown preview styles.
func ForTerminalStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForUnknownCommand returns hints for an unknown subcommand.
func ForUnknownCommand() string {
	return format("run 'mdwizard help' for usage")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
