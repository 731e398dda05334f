package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	mdwizard "github.com/alnah/go-mdwizard"
	"github.com/alnah/go-mdwizard/internal/config"
	"github.com/alnah/go-mdwizard/internal/fileutil"
	"github.com/alnah/go-mdwizard/internal/hints"
	"github.com/alnah/go-mdwizard/internal/pipeline"
	"github.com/alnah/go-mdwizard/internal/recipe"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for build operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrBuildFailed        = errors.New("build failed")
)

// BuildResult holds the outcome of a single recipe build.
type BuildResult struct {
	InputPath  string
	OutputPath string
	HTMLPath   string // Empty unless --html
	Err        error
	Duration   time.Duration
}

// buildParams groups parameters shared across a batch.
type buildParams struct {
	html   bool
	logger *slog.Logger
}

// batchError reports failed builds. It unwraps to ErrBuildFailed and the
// first failure so exit codes follow the underlying cause.
type batchError struct {
	failed, total int
	first         error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d recipes failed", e.failed, e.total)
}

func (e *batchError) Unwrap() []error {
	return []error{ErrBuildFailed, e.first}
}

// runBuild orchestrates a build: config, discovery, batch rendering, report.
func runBuild(ctx context.Context, positionalArgs []string, flags *buildFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeBuildFlags(flags, cfg)

	if len(positionalArgs) == 0 {
		return fmt.Errorf("%w: build needs at least one recipe or directory", ErrNoInput)
	}

	files, err := discoverRecipes(positionalArgs, flags.output)
	if err != nil {
		return fmt.Errorf("discovering recipes: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no recipes found in %v%s", ErrNoInput, positionalArgs, hints.ForNoInput())
	}

	logger := env.Logger(flags.common.quiet, flags.common.verbose)
	workers := resolveWorkers(flags.workers, len(files))
	logger.Debug("building recipes", slog.Int("recipes", len(files)), slog.Int("workers", workers))

	params := &buildParams{html: flags.html, logger: logger}
	results := buildBatch(ctx, files, workers, params)

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed == 0 {
		return nil
	}
	for _, r := range results {
		if r.Err != nil {
			return &batchError{failed: failed, total: len(results), first: r.Err}
		}
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

// resolveWorkers returns the worker count for jobs recipes.
// 0 means GOMAXPROCS, capped at config.MaxWorkers; never more than jobs.
func resolveWorkers(n, jobs int) int {
	if n == 0 {
		n = min(runtime.GOMAXPROCS(0), config.MaxWorkers)
	}
	return max(1, min(n, jobs))
}

// buildBatch renders recipes concurrently with a fixed number of workers.
// Results keep the order of files.
func buildBatch(ctx context.Context, files []RecipeFile, workers int, params *buildParams) []BuildResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]BuildResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = BuildResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = buildFile(ctx, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildFile renders a single recipe and writes its outputs.
func buildFile(ctx context.Context, f RecipeFile, params *buildParams) BuildResult {
	start := time.Now()
	result := BuildResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) BuildResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	r, err := recipe.Load(f.InputPath)
	if err != nil {
		if errors.Is(err, recipe.ErrParse) || errors.Is(err, recipe.ErrInvalid) {
			return fail(fmt.Errorf("%w%s", err, hints.ForRecipe()))
		}
		return fail(err)
	}

	markdown, err := r.Render(mdwizard.WithLogger(params.logger.With(slog.String("recipe", f.InputPath))))
	if err != nil {
		return fail(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
	}

	// #nosec G306 -- Markdown output is meant to be readable
	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(markdown+"\n"), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
	}

	if params.html {
		html, err := mdwizard.RenderHTML(ctx, markdown)
		if err != nil {
			return fail(err)
		}
		html, err = pipeline.RewriteLinks(html, pipeline.LinkOptions{MarkdownToHTML: true})
		if err != nil {
			return fail(fmt.Errorf("rewriting links: %w", err))
		}
		result.HTMLPath = htmlOutputPath(f.OutputPath)
		// #nosec G306 -- HTML previews are meant to be readable
		if err := fileutil.WriteFileAtomic(result.HTMLPath, []byte(html), filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
	}

	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed builds.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed builds.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs build results and returns the number of failures.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
		if r.HTMLPath != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.HTMLPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
