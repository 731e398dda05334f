package main

import (
	"fmt"
	"io"

	"github.com/alnah/go-mdwizard/internal/recipe"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdwizard <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render YAML recipes to Markdown")
	fmt.Fprintln(w, "  preview    Render Markdown or a recipe to the terminal or HTML")
	fmt.Fprintln(w, "  docs       Generate the library reference")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdwizard help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdwizard build <recipe.yaml|dir>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render YAML recipes to Markdown. Directories are scanned for .yaml and .yml.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output directory, or .md file for one recipe")
	fmt.Fprintln(w, "      --html                Also write an HTML preview")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto, max 32)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Block types:")
	for _, bt := range blockTypeHelp {
		fmt.Fprintf(w, "  %-16s %s\n", bt.name, bt.fields)
	}
}

// blockTypeHelp documents the recipe block types and their fields.
var blockTypeHelp = []struct {
	name   string
	fields string
}{
	{recipe.TypeParagraph, "text"},
	{recipe.TypeH1, "text, underline, level"},
	{recipe.TypeH2, "text, underline, level"},
	{recipe.TypeH3, "text"},
	{recipe.TypeBlockquote, "text"},
	{recipe.TypeRule, "(none)"},
	{recipe.TypeCode, "text, lang"},
	{recipe.TypeTable, "columns, rows, align (left|center|right)"},
	{recipe.TypeBullets, "items, levels"},
	{recipe.TypeOrdered, "items, levels"},
	{recipe.TypeCollapsible, "text, collapsed, level"},
	{recipe.TypeEndCollapsible, "(none)"},
	{recipe.TypeBadge, "kind (buymeacoffee|github|twitter), params"},
	{recipe.TypeBreak, "(none)"},
	{recipe.TypeWrite, "text, level"},
	{recipe.TypeWriteln, "text, level"},
	{recipe.TypeLink, "url, text, title"},
	{recipe.TypeImage, "url, text, title"},
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdwizard preview <file.md|recipe.yaml|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render Markdown or a recipe to stdout. '-' reads Markdown from stdin.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --html                Print a standalone HTML page")
	fmt.Fprintln(w, "      --width <n>           Terminal wrap width (default 80)")
	fmt.Fprintln(w, "      --style <s>           Terminal style: dark, light, notty, ascii, ...")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show diagnostics")
}

// printDocsUsage prints usage for the docs command.
func printDocsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdwizard docs [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate the library reference in Markdown.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "      --date <s>            Footer date: \"auto\" (default), \"none\", or a layout")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Built] YYYY")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "docs":
		printDocsUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdwizard version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdwizard help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}
	return nil
}
