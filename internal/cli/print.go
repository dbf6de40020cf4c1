// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/validoc/validoc/internal/openapi"
)

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Print the Swagger document to stdout",
	Long: `Print the Swagger document to standard output.

If a file is provided, it will print that file. Otherwise, it will
generate and print the document from the current route files.

This is useful for piping the output to other tools or for quick inspection.

Example:
  validoc print                       # Generate and print
  validoc print swagger.yaml          # Print existing file
  validoc print -f json               # Print in JSON format
  validoc print | jq '.paths'         # Pipe to jq for processing`,
	RunE: runPrint,
}

func runPrint(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		// Print an existing file verbatim
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		fmt.Print(string(data))
		return nil
	}

	cfg, err := loadGenerateConfig(nil)
	if err != nil {
		return err
	}

	doc, err := generateDocument(cfg)
	if err != nil {
		return err
	}

	out, err := render(openapi.NewWriter(), doc, cfg.Format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
