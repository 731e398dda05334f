package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	mdwizard "github.com/alnah/go-mdwizard"
	"github.com/alnah/go-mdwizard/internal/fileutil"
	"github.com/alnah/go-mdwizard/internal/hints"
	"github.com/alnah/go-mdwizard/internal/pipeline"
	"github.com/alnah/go-mdwizard/internal/recipe"
)

// ErrReadInput indicates the preview input could not be read.
var ErrReadInput = errors.New("failed to read input")

// terminalStyles lists the glamour standard styles accepted by --style.
var terminalStyles = []string{"ascii", "dark", "dracula", "light", "notty", "pink", "tokyo-night"}

// runPreview renders a Markdown file or recipe to stdout.
// "-" reads Markdown from stdin.
func runPreview(ctx context.Context, positionalArgs []string, flags *previewFlags, env *Environment) error {
	if len(positionalArgs) != 1 {
		return fmt.Errorf("%w: preview takes exactly one file, got %d", ErrNoInput, len(positionalArgs))
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergePreviewFlags(flags, cfg)

	logger := env.Logger(flags.common.quiet, flags.common.verbose)
	markdown, err := readPreviewInput(positionalArgs[0], env.Stdin, mdwizard.WithLogger(logger))
	if err != nil {
		return err
	}

	if flags.html {
		html, err := mdwizard.RenderHTML(ctx, markdown)
		if err != nil {
			return err
		}
		if path := positionalArgs[0]; path != "-" {
			html, err = pipeline.RewriteLinks(html, pipeline.LinkOptions{BaseDir: filepath.Dir(path)})
			if err != nil {
				return fmt.Errorf("rewriting links: %w", err)
			}
		}
		_, err = io.WriteString(env.Stdout, html)
		return err
	}

	out, err := mdwizard.RenderTerminal(markdown, flags.width, flags.style)
	if err != nil {
		if errors.Is(err, mdwizard.ErrTerminalRender) {
			return fmt.Errorf("%w%s", err, hints.ForTerminalStyle(terminalStyles))
		}
		return err
	}
	_, err = io.WriteString(env.Stdout, out)
	return err
}

// readPreviewInput returns the Markdown to preview. Recipes are rendered
// with opts; other files are read verbatim.
func readPreviewInput(path string, stdin io.Reader, opts ...mdwizard.Option) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return string(data), nil
	}

	if fileutil.HasExtension(path, recipeExtensions...) {
		r, err := recipe.Load(path)
		if err != nil {
			if errors.Is(err, recipe.ErrParse) || errors.Is(err, recipe.ErrInvalid) {
				return "", fmt.Errorf("%w%s", err, hints.ForRecipe())
			}
			return "", err
		}
		return r.Render(opts...)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- preview path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return string(data), nil
}
