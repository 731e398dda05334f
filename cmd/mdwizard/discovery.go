package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdwizard/internal/fileutil"
)

// Sentinel errors for recipe discovery.
var ErrInvalidExtension = errors.New("recipe must have .yaml or .yml extension")

// recipeExtensions are the file extensions treated as recipes.
var recipeExtensions = []string{".yaml", ".yml"}

// RecipeFile represents a single recipe to build.
type RecipeFile struct {
	InputPath  string
	OutputPath string
}

// discoverRecipes finds all recipes under each input path.
// Paths found through several inputs are built once.
func discoverRecipes(inputPaths []string, outputDir string) ([]RecipeFile, error) {
	var files []RecipeFile
	seen := make(map[string]bool)

	for _, inputPath := range inputPaths {
		found, err := discoverPath(inputPath, outputDir)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			if seen[f.InputPath] {
				continue
			}
			seen[f.InputPath] = true
			files = append(files, f)
		}
	}
	return files, nil
}

// discoverPath finds recipes at a single file or directory path.
// Hidden directories below the root are skipped.
func discoverPath(inputPath, outputDir string) ([]RecipeFile, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.HasExtension(inputPath, recipeExtensions...) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []RecipeFile{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []RecipeFile
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !fileutil.HasExtension(path, recipeExtensions...) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, RecipeFile{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the Markdown output path for a recipe.
// An outputDir ending in .md is used as-is for single-file builds.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	base := filepath.Base(inputPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".md"

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if strings.HasSuffix(outputDir, ".md") && baseInputDir == "" {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(outputDir, name)
}

// htmlOutputPath returns the HTML path corresponding to a Markdown path.
func htmlOutputPath(mdPath string) string {
	out, err := fileutil.ReplaceExt(mdPath, "html")
	if err != nil {
		// "html" is always a valid extension.
		panic(err)
	}
	return out
}
