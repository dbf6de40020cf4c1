// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/validoc/validoc/internal/openapi"
)

// Exit codes for check command
const (
	ExitCodeMatch      = 0 // Document matches route files
	ExitCodeDifference = 1 // Document differs from route files
	ExitCodeCheckError = 2 // Error during generation or comparison
)

var (
	checkStrict   bool
	checkIgnore   []string
	checkCI       bool
	checkValidate bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check if the document matches current route files",
	Long: `Check validates that your Swagger document matches your current route files.

This command generates a document from your route files and compares it with
the existing output file. It's useful for CI pipelines to ensure the document
is always in sync with the routes.

Exit codes:
  0  Document matches route files
  1  Document differs from route files
  2  Error during generation or comparison

Example:
  validoc check                      # Basic validation
  validoc check --strict             # Fail on any difference (default)
  validoc check --ci                 # CI mode with appropriate exit codes
  validoc check --ignore /internal*  # Ignore matching path differences`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", true, "fail on any difference")
	checkCmd.Flags().StringSliceVar(&checkIgnore, "ignore", nil, "patterns to ignore in comparison (paths, definitions)")
	checkCmd.Flags().BoolVar(&checkCI, "ci", false, "CI mode: use exit codes for status")
	checkCmd.Flags().BoolVar(&checkValidate, "validate", true, "validate the generated document structurally")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadGenerateConfig(args)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return err
	}

	printVerbose("Check configuration:")
	printVerbose("  Strict mode: %t", checkStrict)
	printVerbose("  CI mode: %t", checkCI)
	if len(checkIgnore) > 0 {
		printVerbose("  Ignored patterns: %s", strings.Join(checkIgnore, ", "))
	}
	printVerbose("  Document file: %s", cfg.Output)

	if _, err := os.Stat(cfg.Output); os.IsNotExist(err) {
		printError("Document file not found: %s", cfg.Output)
		printInfo("Run 'validoc generate' first to create the document")
		if checkCI {
			os.Exit(ExitCodeDifference)
		}
		return fmt.Errorf("document file not found: %s", cfg.Output)
	}

	existing, err := openapi.ReadFile(cfg.Output)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to read existing document: %w", err)
	}

	generated, err := generateDocument(cfg)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to generate document from routes: %w", err)
	}

	if checkValidate {
		if err := openapi.Validate(context.Background(), generated); err != nil {
			if checkCI {
				os.Exit(ExitCodeCheckError)
			}
			return err
		}
		printVerbose("Generated document passed structural validation")
	}

	differ := openapi.NewDiffer()
	diffResult, err := differ.Diff(existing, generated)
	if err != nil {
		if checkCI {
			os.Exit(ExitCodeCheckError)
		}
		return fmt.Errorf("failed to compare documents: %w", err)
	}

	diffResult = applyIgnorePatterns(diffResult, checkIgnore)

	if diffResult.IsEmpty() {
		printInfo("Document is in sync with route files")
		if checkCI {
			os.Exit(ExitCodeMatch)
		}
		return nil
	}

	printInfo("Document differs from route files:\n")
	printInfo(diffResult.Summary)
	printInfo("")

	if len(diffResult.PathChanges) > 0 {
		printInfo("Path changes:")
		for _, change := range diffResult.PathChanges {
			symbol := getChangeSymbol(change.Type)
			printInfo("  %s %s %s", symbol, change.Method, change.Path)
		}
		printInfo("")
	}

	if len(diffResult.DefinitionChanges) > 0 {
		printInfo("Definition changes:")
		for _, change := range diffResult.DefinitionChanges {
			symbol := getChangeSymbol(change.Type)
			printInfo("  %s %s", symbol, change.Name)
		}
		printInfo("")
	}

	if diffResult.HasBreakingChanges {
		printError("Breaking changes detected!")
	}

	printInfo("Run 'validoc generate' to update the document")

	if checkStrict || checkCI {
		if checkCI {
			os.Exit(ExitCodeDifference)
		}
		return fmt.Errorf("document differs from route files")
	}

	return nil
}

// applyIgnorePatterns filters out changes that match ignore patterns.
func applyIgnorePatterns(result *openapi.DiffResult, patterns []string) *openapi.DiffResult {
	if len(patterns) == 0 {
		return result
	}

	filtered := &openapi.DiffResult{
		PathChanges:       make([]openapi.PathChange, 0),
		DefinitionChanges: make([]openapi.DefinitionChange, 0),
	}

	for _, change := range result.PathChanges {
		if !matchesAnyPattern(change.Path, patterns) {
			filtered.PathChanges = append(filtered.PathChanges, change)
		}
	}

	for _, change := range result.DefinitionChanges {
		if !matchesAnyPattern(change.Name, patterns) {
			filtered.DefinitionChanges = append(filtered.DefinitionChanges, change)
		}
	}

	// Recalculate breaking changes
	for _, change := range filtered.PathChanges {
		if change.Type == openapi.DiffTypeRemoved {
			filtered.HasBreakingChanges = true
			break
		}
	}
	if !filtered.HasBreakingChanges {
		for _, change := range filtered.DefinitionChanges {
			if change.Type == openapi.DiffTypeRemoved {
				filtered.HasBreakingChanges = true
				break
			}
		}
	}

	filtered.Summary = generateFilteredSummary(filtered)

	return filtered
}

// matchesAnyPattern checks if a string matches any of the given patterns.
func matchesAnyPattern(s string, patterns []string) bool {
	for _, pattern := range patterns {
		// Simple prefix/suffix matching
		if strings.HasPrefix(pattern, "*") {
			if strings.HasSuffix(s, pattern[1:]) {
				return true
			}
		} else if strings.HasSuffix(pattern, "*") {
			if strings.HasPrefix(s, pattern[:len(pattern)-1]) {
				return true
			}
		} else if strings.Contains(pattern, "*") {
			if matched, _ := filepath.Match(pattern, s); matched {
				return true
			}
		} else {
			if s == pattern {
				return true
			}
		}
	}
	return false
}

// generateFilteredSummary generates a summary for filtered results.
func generateFilteredSummary(result *openapi.DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected (after applying filters)"
	}

	var parts []string
	pathAdded, pathRemoved, pathModified := 0, 0, 0
	for _, c := range result.PathChanges {
		switch c.Type {
		case openapi.DiffTypeAdded:
			pathAdded++
		case openapi.DiffTypeRemoved:
			pathRemoved++
		case openapi.DiffTypeModified:
			pathModified++
		}
	}

	defAdded, defRemoved, defModified := 0, 0, 0
	for _, c := range result.DefinitionChanges {
		switch c.Type {
		case openapi.DiffTypeAdded:
			defAdded++
		case openapi.DiffTypeRemoved:
			defRemoved++
		case openapi.DiffTypeModified:
			defModified++
		}
	}

	if pathAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) added", pathAdded))
	}
	if pathRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) removed", pathRemoved))
	}
	if pathModified > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) modified", pathModified))
	}
	if defAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d definition(s) added", defAdded))
	}
	if defRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d definition(s) removed", defRemoved))
	}
	if defModified > 0 {
		parts = append(parts, fmt.Sprintf("%d definition(s) modified", defModified))
	}

	summary := strings.Join(parts, ", ")
	if result.HasBreakingChanges {
		summary += " [BREAKING CHANGES DETECTED]"
	}

	return summary
}

// getChangeSymbol returns a symbol for the change type.
func getChangeSymbol(t openapi.DiffType) string {
	switch t {
	case openapi.DiffTypeAdded:
		return "+"
	case openapi.DiffTypeRemoved:
		return "-"
	case openapi.DiffTypeModified:
		return "~"
	default:
		return " "
	}
}
