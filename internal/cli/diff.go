// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/validoc/validoc/internal/openapi"
	"github.com/validoc/validoc/pkg/types"
)

var diffFailOnBreaking bool

var diffCmd = &cobra.Command{
	Use:   "diff [file1] [file2]",
	Short: "Compare two Swagger documents",
	Long: `Compare two Swagger documents and show the differences.

If only one file is provided, it will be compared against the document
generated from the current route files.

If no files are provided, the existing output file will be compared
against what would be generated from the current route files.

Example:
  validoc diff                            # Compare current vs generated
  validoc diff swagger.yaml               # Compare file vs generated
  validoc diff old.yaml new.yaml          # Compare two files
  validoc diff --fail-on-breaking         # Exit non-zero on breaking changes`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&diffFailOnBreaking, "fail-on-breaking", false, "return an error when breaking changes are detected")
}

func runDiff(cmd *cobra.Command, args []string) error {
	if len(args) > 2 {
		return fmt.Errorf("too many arguments: expected at most 2 files")
	}

	var before, after *types.Document
	var err error

	switch len(args) {
	case 2:
		printVerbose("Comparing %s against %s", args[0], args[1])
		if before, err = openapi.ReadFile(args[0]); err != nil {
			return err
		}
		if after, err = openapi.ReadFile(args[1]); err != nil {
			return err
		}
	default:
		cfg, cfgErr := loadGenerateConfig(nil)
		if cfgErr != nil {
			return cfgErr
		}

		existing := cfg.Output
		if len(args) == 1 {
			existing = args[0]
		}
		printVerbose("Comparing %s against generated", existing)

		if before, err = openapi.ReadFile(existing); err != nil {
			return err
		}
		if after, err = generateDocument(cfg); err != nil {
			return err
		}
	}

	differ := openapi.NewDiffer()
	result, err := differ.Diff(before, after)
	if err != nil {
		return fmt.Errorf("failed to compare documents: %w", err)
	}

	fmt.Print(openapi.FormatDiff(result))

	if diffFailOnBreaking && result.HasBreakingChanges {
		return fmt.Errorf("breaking changes detected")
	}
	return nil
}
