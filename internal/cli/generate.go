// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/validoc/validoc/internal/config"
	"github.com/validoc/validoc/internal/loader"
	"github.com/validoc/validoc/internal/openapi"
	"github.com/validoc/validoc/internal/schema"
	"github.com/validoc/validoc/pkg/types"
)

var (
	generateDryRun  bool
	generateInclude []string
	generateExclude []string
)

var generateCmd = &cobra.Command{
	Use:   "generate [paths...]",
	Short: "Generate a Swagger document from route files",
	Long: `Generate a Swagger 2.0 document from the project's route files.

The generate command discovers route description files, translates their
validation schemas, and writes the resulting document to the configured
output file.

Example:
  validoc generate                            # Generate from current directory
  validoc generate ./api ./admin              # Generate from specific paths
  validoc generate --dry-run                  # Preview without writing
  validoc generate -f json -o swagger.json    # JSON output`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "preview output without writing to file")
	generateCmd.Flags().StringSliceVarP(&generateInclude, "include", "i", nil, "glob patterns to include")
	generateCmd.Flags().StringSliceVarP(&generateExclude, "exclude", "e", nil, "glob patterns to exclude")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadGenerateConfig(args)
	if err != nil {
		return err
	}

	printVerbose("Configuration:")
	printVerbose("  Output: %s", cfg.Output)
	printVerbose("  Format: %s", cfg.Format)
	printVerbose("  Paths: %s", strings.Join(cfg.Source.Paths, ", "))

	doc, err := generateDocument(cfg)
	if err != nil {
		return err
	}

	writer := openapi.NewWriter()

	if generateDryRun {
		printInfo("Dry run mode - no files will be written")
		out, err := render(writer, doc, cfg.Format)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	}

	if err := writer.WriteFile(doc, cfg.Output, cfg.Format); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}

	printInfo("Generated %s (%d paths, %d definitions)", cfg.Output, len(doc.Paths), len(doc.Definitions))
	return nil
}

// loadGenerateConfig loads the configuration and applies the command-line
// overrides shared by the generating commands.
func loadGenerateConfig(paths []string) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if len(generateInclude) > 0 {
		cfg.Source.Include = generateInclude
	}
	if len(generateExclude) > 0 {
		cfg.Source.Exclude = generateExclude
	}
	if output != "" {
		cfg.Output = output
	}
	if format != "" {
		cfg.Format = format
	}
	if len(paths) > 0 {
		cfg.Source.Paths = paths
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// generateDocument runs one full generation pass: discover and decode route
// files, then build the document.
func generateDocument(cfg *config.Config) (*types.Document, error) {
	l := loader.New(cfg.Source)
	routes, err := l.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load routes: %w", err)
	}

	printVerbose("Loaded %d routes", len(routes))

	builder := openapi.NewBuilder(cfg, buildLog)
	return builder.Build(routes), nil
}

// buildLog routes generation diagnostics onto the CLI output helpers.
func buildLog(level, message string) {
	switch level {
	case schema.LevelError:
		printError("%s", message)
	case schema.LevelWarning:
		printInfo("Warning: %s", message)
	default:
		printVerbose("%s", message)
	}
}

// render serializes a document to a string in the requested format.
func render(writer *openapi.Writer, doc *types.Document, outputFormat string) (string, error) {
	if outputFormat == "json" {
		return writer.ToJSON(doc)
	}
	return writer.ToYAML(doc)
}
