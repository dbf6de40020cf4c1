// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package loader discovers route description files and decodes them into
// route records for the document builder.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/validoc/validoc/internal/config"
	"github.com/validoc/validoc/pkg/types"
)

// Loader discovers and decodes route files.
type Loader struct {
	source config.SourceConfig
}

// New creates a Loader for the given source configuration.
func New(source config.SourceConfig) *Loader {
	if len(source.Paths) == 0 {
		source.Paths = []string{"."}
	}
	if len(source.Include) == 0 {
		source.Include = []string{"**/*.routes.yaml", "**/*.routes.yml"}
	}
	return &Loader{source: source}
}

// Discover returns the route files matching the source configuration, in
// sorted order for deterministic generation.
func (l *Loader) Discover() ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, path := range l.source.Paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path: %w", err)
		}

		info, err := os.Stat(absPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("path does not exist: %s", absPath)
			}
			return nil, fmt.Errorf("failed to stat path: %w", err)
		}

		if !info.IsDir() {
			if !seen[absPath] {
				seen[absPath] = true
				files = append(files, absPath)
			}
			continue
		}

		err = filepath.WalkDir(absPath, func(filePath string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip inaccessible paths
				return nil
			}

			relPath, relErr := filepath.Rel(absPath, filePath)
			if relErr != nil {
				relPath = filepath.Base(filePath)
			}
			relPath = filepath.ToSlash(relPath)

			if d.IsDir() {
				if relPath != "." && matchesPatterns(relPath, l.source.Exclude) {
					return filepath.SkipDir
				}
				return nil
			}

			if matchesPatterns(relPath, l.source.Exclude) {
				return nil
			}
			if !matchesPatterns(relPath, l.source.Include) {
				return nil
			}

			if !seen[filePath] {
				seen[filePath] = true
				files = append(files, filePath)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk directory: %w", err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Load discovers all route files and decodes their routes, preserving file
// order and in-file declaration order.
func (l *Loader) Load() ([]types.Route, error) {
	files, err := l.Discover()
	if err != nil {
		return nil, err
	}

	var routes []types.Route
	for _, file := range files {
		fileRoutes, err := LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		routes = append(routes, fileRoutes...)
	}
	return routes, nil
}

// matchesPatterns checks if a relative path matches any of the glob
// patterns. Directory patterns like "vendor/**" also match the directory
// itself.
func matchesPatterns(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, relPath); err == nil && ok {
			return true
		}
		if strings.HasSuffix(pattern, "/**") {
			dir := strings.TrimSuffix(pattern, "/**")
			if relPath == dir || strings.HasPrefix(relPath, dir+"/") {
				return true
			}
		}
	}
	return false
}
