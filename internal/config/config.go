// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides configuration loading and validation for validoc.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the validoc configuration.
type Config struct {
	// Output is the output file path for the generated document
	Output string `mapstructure:"output" yaml:"output" json:"output"`

	// Format is the output format (yaml, json)
	Format string `mapstructure:"format" yaml:"format" json:"format"`

	// Swagger contains document root metadata
	Swagger SwaggerConfig `mapstructure:"swagger" yaml:"swagger" json:"swagger"`

	// Source contains route-file discovery configuration
	Source SourceConfig `mapstructure:"source" yaml:"source" json:"source"`

	// Generation contains generation behavior configuration
	Generation GenerationConfig `mapstructure:"generation" yaml:"generation" json:"generation"`

	// Watch contains file watching configuration
	Watch WatchConfig `mapstructure:"watch" yaml:"watch" json:"watch"`
}

// SwaggerConfig contains document root metadata.
type SwaggerConfig struct {
	// Info contains API metadata
	Info InfoConfig `mapstructure:"info" yaml:"info" json:"info"`

	// Host is the host serving the API (host[:port])
	Host string `mapstructure:"host" yaml:"host" json:"host"`

	// BasePath is the base path all routes hang off
	BasePath string `mapstructure:"basePath" yaml:"basePath" json:"basePath"`

	// Schemes lists the transfer protocols (http, https, ws, wss)
	Schemes []string `mapstructure:"schemes" yaml:"schemes" json:"schemes"`

	// Consumes and Produces are the document-level MIME defaults
	Consumes []string `mapstructure:"consumes" yaml:"consumes" json:"consumes"`
	Produces []string `mapstructure:"produces" yaml:"produces" json:"produces"`

	// Tags is a list of tag configurations
	Tags []TagConfig `mapstructure:"tags" yaml:"tags" json:"tags"`

	// Security contains security scheme configurations
	Security SecurityConfig `mapstructure:"security" yaml:"security" json:"security"`
}

// InfoConfig contains API metadata.
type InfoConfig struct {
	// Title is the API title
	Title string `mapstructure:"title" yaml:"title" json:"title"`

	// Description is the API description
	Description string `mapstructure:"description" yaml:"description" json:"description"`

	// Version is the API version
	Version string `mapstructure:"version" yaml:"version" json:"version"`

	// TermsOfService is the URL to terms of service
	TermsOfService string `mapstructure:"termsOfService" yaml:"termsOfService" json:"termsOfService"`

	// Contact contains contact information
	Contact ContactConfig `mapstructure:"contact" yaml:"contact" json:"contact"`

	// License contains license information
	License LicenseConfig `mapstructure:"license" yaml:"license" json:"license"`
}

// ContactConfig contains contact information.
type ContactConfig struct {
	// Name is the contact name
	Name string `mapstructure:"name" yaml:"name" json:"name"`

	// URL is the contact URL
	URL string `mapstructure:"url" yaml:"url" json:"url"`

	// Email is the contact email
	Email string `mapstructure:"email" yaml:"email" json:"email"`
}

// LicenseConfig contains license information.
type LicenseConfig struct {
	// Name is the license name
	Name string `mapstructure:"name" yaml:"name" json:"name"`

	// URL is the license URL
	URL string `mapstructure:"url" yaml:"url" json:"url"`
}

// TagConfig contains tag configuration.
type TagConfig struct {
	// Name is the tag name
	Name string `mapstructure:"name" yaml:"name" json:"name"`

	// Description is the tag description
	Description string `mapstructure:"description" yaml:"description" json:"description"`
}

// SecurityConfig contains security configuration.
type SecurityConfig struct {
	// Schemes is a map of security scheme configurations
	Schemes map[string]SecuritySchemeConfig `mapstructure:"schemes" yaml:"schemes" json:"schemes"`

	// Default is a list of default security requirements
	Default []string `mapstructure:"default" yaml:"default" json:"default"`
}

// SecuritySchemeConfig contains security scheme configuration.
type SecuritySchemeConfig struct {
	// Type is the security scheme type (basic, apiKey, oauth2)
	Type string `mapstructure:"type" yaml:"type" json:"type"`

	// Name is the name of the header or query parameter (apiKey)
	Name string `mapstructure:"name" yaml:"name" json:"name"`

	// In is the location (header, query)
	In string `mapstructure:"in" yaml:"in" json:"in"`

	// Flow is the oauth2 flow (implicit, password, application, accessCode)
	Flow string `mapstructure:"flow" yaml:"flow" json:"flow"`

	// AuthorizationURL and TokenURL configure oauth2 endpoints
	AuthorizationURL string `mapstructure:"authorizationUrl" yaml:"authorizationUrl" json:"authorizationUrl"`
	TokenURL         string `mapstructure:"tokenUrl" yaml:"tokenUrl" json:"tokenUrl"`

	// Scopes maps oauth2 scope names to descriptions
	Scopes map[string]string `mapstructure:"scopes" yaml:"scopes" json:"scopes"`

	// Description is a description of the security scheme
	Description string `mapstructure:"description" yaml:"description" json:"description"`
}

// SourceConfig contains route-file discovery configuration.
type SourceConfig struct {
	// Paths is a list of paths to scan for route files
	Paths []string `mapstructure:"paths" yaml:"paths" json:"paths"`

	// Include is a list of glob patterns to include
	Include []string `mapstructure:"include" yaml:"include" json:"include"`

	// Exclude is a list of glob patterns to exclude
	Exclude []string `mapstructure:"exclude" yaml:"exclude" json:"exclude"`
}

// GenerationConfig contains generation behavior configuration.
type GenerationConfig struct {
	// ReuseDefinitions enables structural de-duplication of definitions
	ReuseDefinitions bool `mapstructure:"reuseDefinitions" yaml:"reuseDefinitions" json:"reuseDefinitions"`

	// DefinitionPrefix selects the collision-renaming policy (default, useLabel)
	DefinitionPrefix string `mapstructure:"definitionPrefix" yaml:"definitionPrefix" json:"definitionPrefix"`

	// XProperties enables extended x-* constraint extraction
	XProperties bool `mapstructure:"xProperties" yaml:"xProperties" json:"xProperties"`

	// AcceptToProduce promotes accept-header enums into produces
	AcceptToProduce bool `mapstructure:"acceptToProduce" yaml:"acceptToProduce" json:"acceptToProduce"`

	// PayloadType is the default payload documentation mode (json, form)
	PayloadType string `mapstructure:"payloadType" yaml:"payloadType" json:"payloadType"`

	// Grouping selects operation tagging (tags, path)
	Grouping string `mapstructure:"grouping" yaml:"grouping" json:"grouping"`

	// RouteTag is the marker tag selecting routes for documentation;
	// it is filtered out of the generated operation tags
	RouteTag string `mapstructure:"routeTag" yaml:"routeTag" json:"routeTag"`
}

// WatchConfig contains file watching configuration.
type WatchConfig struct {
	// Enabled determines whether to enable file watching
	Enabled bool `mapstructure:"enabled" yaml:"enabled" json:"enabled"`

	// Debounce is the debounce duration in milliseconds
	Debounce int `mapstructure:"debounce" yaml:"debounce" json:"debounce"`

	// OnChange is the command to run on change
	OnChange string `mapstructure:"onChange" yaml:"onChange" json:"onChange"`
}

// configFileNames is the list of config file names to search for (in order).
var configFileNames = []string{
	"validoc.yaml",
	"validoc.json",
	".validoc.yaml",
	".validoc.json",
}

// supportedFormats is the list of supported output formats.
var supportedFormats = []string{
	"yaml",
	"json",
}

// supportedPrefixModes is the list of supported definition-prefix modes.
var supportedPrefixModes = []string{
	"default",
	"useLabel",
}

// supportedPayloadTypes is the list of supported payload modes.
var supportedPayloadTypes = []string{
	"json",
	"form",
}

// supportedGroupings is the list of supported operation groupings.
var supportedGroupings = []string{
	"tags",
	"path",
}

// ErrConfigNotFound is returned when no config file is found.
var ErrConfigNotFound = errors.New("config file not found")

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("config validation errors:\n")
	for _, err := range e {
		sb.WriteString("  - ")
		sb.WriteString(err.Field)
		sb.WriteString(": ")
		sb.WriteString(err.Message)
		sb.WriteString("\n")
	}
	return sb.String()
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Output: "swagger.yaml",
		Format: "yaml",
		Swagger: SwaggerConfig{
			Info: InfoConfig{
				Title:   "API",
				Version: "1.0.0",
			},
			Schemes:  []string{"http"},
			Consumes: []string{"application/json"},
			Produces: []string{"application/json"},
		},
		Source: SourceConfig{
			Paths:   []string{"."},
			Include: []string{"**/*.routes.yaml", "**/*.routes.yml"},
			Exclude: []string{
				"vendor/**",
				"node_modules/**",
				".git/**",
				"dist/**",
				"build/**",
			},
		},
		Generation: GenerationConfig{
			ReuseDefinitions: true,
			DefinitionPrefix: "default",
			XProperties:      true,
			AcceptToProduce:  true,
			PayloadType:      "json",
			Grouping:         "tags",
			RouteTag:         "api",
		},
		Watch: WatchConfig{
			Enabled:  false,
			Debounce: 500,
		},
	}
}

// Load loads the configuration from a file.
// It searches for config files in the following order:
// 1. validoc.yaml
// 2. validoc.json
// 3. .validoc.yaml
// 4. .validoc.json
//
// If configPath is provided, it will use that path instead.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		v.SetConfigFile(configPath)
	} else {
		found := false
		for _, name := range configFileNames {
			if _, err := os.Stat(name); err == nil {
				v.SetConfigFile(name)
				found = true
				break
			}
		}
		if !found {
			return Default(), nil
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadFromPath loads the configuration from a specific directory.
func LoadFromPath(dir string) (*Config, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// setDefaults sets the default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "swagger.yaml")
	v.SetDefault("format", "yaml")
	v.SetDefault("swagger.info.title", "API")
	v.SetDefault("swagger.info.version", "1.0.0")
	v.SetDefault("swagger.schemes", []string{"http"})
	v.SetDefault("swagger.consumes", []string{"application/json"})
	v.SetDefault("swagger.produces", []string{"application/json"})
	v.SetDefault("source.paths", []string{"."})
	v.SetDefault("source.include", []string{"**/*.routes.yaml", "**/*.routes.yml"})
	v.SetDefault("source.exclude", []string{
		"vendor/**",
		"node_modules/**",
		".git/**",
		"dist/**",
		"build/**",
	})
	v.SetDefault("generation.reuseDefinitions", true)
	v.SetDefault("generation.definitionPrefix", "default")
	v.SetDefault("generation.xProperties", true)
	v.SetDefault("generation.acceptToProduce", true)
	v.SetDefault("generation.payloadType", "json")
	v.SetDefault("generation.grouping", "tags")
	v.SetDefault("generation.routeTag", "api")
	v.SetDefault("watch.enabled", false)
	v.SetDefault("watch.debounce", 500)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if c.Format != "" && !contains(supportedFormats, c.Format) {
		errs = append(errs, ValidationError{
			Field:   "format",
			Message: fmt.Sprintf("unsupported format %q, must be one of: %s", c.Format, strings.Join(supportedFormats, ", ")),
		})
	}

	if p := c.Generation.DefinitionPrefix; p != "" && !contains(supportedPrefixModes, p) {
		errs = append(errs, ValidationError{
			Field:   "generation.definitionPrefix",
			Message: fmt.Sprintf("unsupported prefix mode %q, must be one of: %s", p, strings.Join(supportedPrefixModes, ", ")),
		})
	}

	if p := c.Generation.PayloadType; p != "" && !contains(supportedPayloadTypes, p) {
		errs = append(errs, ValidationError{
			Field:   "generation.payloadType",
			Message: fmt.Sprintf("unsupported payload type %q, must be one of: %s", p, strings.Join(supportedPayloadTypes, ", ")),
		})
	}

	if g := c.Generation.Grouping; g != "" && !contains(supportedGroupings, g) {
		errs = append(errs, ValidationError{
			Field:   "generation.grouping",
			Message: fmt.Sprintf("unsupported grouping %q, must be one of: %s", g, strings.Join(supportedGroupings, ", ")),
		})
	}

	if c.Watch.Debounce < 0 {
		errs = append(errs, ValidationError{
			Field:   "watch.debounce",
			Message: "debounce must be non-negative",
		})
	}

	if c.Swagger.Info.Title == "" {
		errs = append(errs, ValidationError{
			Field:   "swagger.info.title",
			Message: "title is required",
		})
	}

	if c.Swagger.Info.Version == "" {
		errs = append(errs, ValidationError{
			Field:   "swagger.info.version",
			Message: "version is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ConfigFilePath returns the path of the loaded config file, if any.
func ConfigFilePath() string {
	for _, name := range configFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
