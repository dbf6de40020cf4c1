// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/validoc/validoc/internal/config"
	"github.com/validoc/validoc/internal/util"
)

var (
	initForce       bool
	initInteractive bool
	initTitle       string
	initVersion     string
	initDescription string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new validoc configuration file",
	Long: `Initialize a new validoc configuration file in the current directory.

This command creates a validoc.yaml file with sensible defaults
that you can customize for your project.

Features:
  - Infers API title from the Go module name
  - Detects common route file directories
  - Sets up appropriate exclude patterns

Example:
  validoc init                         # Create config with detected defaults
  validoc init --force                 # Overwrite existing config
  validoc init --interactive           # Interactive mode with prompts
  validoc init --title "My API"        # Set custom API title`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing config file")
	initCmd.Flags().BoolVarP(&initInteractive, "interactive", "i", false, "interactive mode with prompts")
	initCmd.Flags().StringVar(&initTitle, "title", "", "API title for document info")
	initCmd.Flags().StringVar(&initVersion, "version", "", "API version for document info")
	initCmd.Flags().StringVar(&initDescription, "description", "", "API description for document info")
}

func runInit(cmd *cobra.Command, args []string) error {
	configFile := "validoc.yaml"

	if _, err := os.Stat(configFile); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", configFile)
	}

	projectRoot, err := filepath.Abs(".")
	if err != nil {
		return fmt.Errorf("failed to determine project root: %w", err)
	}

	cfg := config.Default()

	// Detect project info from go.mod
	projectInfo := detectProjectInfo(projectRoot)

	if initTitle != "" {
		cfg.Swagger.Info.Title = initTitle
	} else if projectInfo.Title != "" {
		cfg.Swagger.Info.Title = projectInfo.Title
	}

	if initVersion != "" {
		cfg.Swagger.Info.Version = initVersion
	}

	if initDescription != "" {
		cfg.Swagger.Info.Description = initDescription
	}

	routeDirs := detectRouteDirs(projectRoot)
	if len(routeDirs) > 0 {
		cfg.Source.Paths = routeDirs
		printVerbose("Detected route directories: %s", strings.Join(routeDirs, ", "))
	}

	if initInteractive && isTerminal() {
		cfg, err = interactiveInit(cfg)
		if err != nil {
			return fmt.Errorf("interactive init failed: %w", err)
		}
	}

	output := buildConfigYAML(cfg)

	if err := os.WriteFile(configFile, []byte(output), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	printInfo("Created %s", configFile)
	printVerbose("Output: %s", cfg.Output)
	printVerbose("Paths: %s", strings.Join(cfg.Source.Paths, ", "))

	return nil
}

// projectInfo holds information detected from the project.
type projectInfo struct {
	Title  string
	Module string
}

// detectProjectInfo detects project information from go.mod.
func detectProjectInfo(projectRoot string) projectInfo {
	info := projectInfo{}

	goModPath := filepath.Join(projectRoot, "go.mod")
	file, err := os.Open(goModPath)
	if err != nil {
		return info
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "module ") {
			info.Module = strings.TrimSpace(strings.TrimPrefix(line, "module "))

			// Extract a title from the module path
			// e.g., "github.com/user/my-api" -> "My Api API"
			parts := strings.Split(info.Module, "/")
			if len(parts) > 0 {
				name := parts[len(parts)-1]
				name = strings.ReplaceAll(name, "-", " ")
				name = strings.ReplaceAll(name, "_", " ")
				info.Title = util.TitleCase(name) + " API"
			}
			break
		}
	}

	return info
}

// detectRouteDirs detects common route file directories in the project.
func detectRouteDirs(projectRoot string) []string {
	var paths []string

	candidates := []string{
		"./routes",
		"./api",
		"./config/routes",
		"./docs/routes",
	}

	for _, candidate := range candidates {
		fullPath := filepath.Join(projectRoot, candidate)
		if stat, err := os.Stat(fullPath); err == nil && stat.IsDir() {
			paths = append(paths, candidate)
		}
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}

	return paths
}

// isTerminal checks if stdin is a terminal.
func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// interactiveInit prompts the user for configuration options.
func interactiveInit(cfg *config.Config) (*config.Config, error) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("API Title [%s]: ", cfg.Swagger.Info.Title)
	title, _ := reader.ReadString('\n')
	title = strings.TrimSpace(title)
	if title != "" {
		cfg.Swagger.Info.Title = title
	}

	fmt.Printf("API Version [%s]: ", cfg.Swagger.Info.Version)
	version, _ := reader.ReadString('\n')
	version = strings.TrimSpace(version)
	if version != "" {
		cfg.Swagger.Info.Version = version
	}

	fmt.Printf("API Description [%s]: ", cfg.Swagger.Info.Description)
	description, _ := reader.ReadString('\n')
	description = strings.TrimSpace(description)
	if description != "" {
		cfg.Swagger.Info.Description = description
	}

	fmt.Printf("Output file [%s]: ", cfg.Output)
	output, _ := reader.ReadString('\n')
	output = strings.TrimSpace(output)
	if output != "" {
		cfg.Output = output
	}

	fmt.Printf("Output format (yaml/json) [%s]: ", cfg.Format)
	format, _ := reader.ReadString('\n')
	format = strings.TrimSpace(format)
	if format != "" {
		cfg.Format = format
	}

	return cfg, nil
}

// buildConfigYAML builds a YAML config with helpful comments.
func buildConfigYAML(cfg *config.Config) string {
	data, _ := yaml.Marshal(cfg)

	header := `# validoc configuration file
# https://github.com/validoc/validoc

`
	return header + string(data)
}
