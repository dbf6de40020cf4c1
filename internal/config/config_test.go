// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "swagger.yaml", cfg.Output)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "API", cfg.Swagger.Info.Title)
	assert.Equal(t, "1.0.0", cfg.Swagger.Info.Version)
	assert.True(t, cfg.Generation.ReuseDefinitions)
	assert.True(t, cfg.Generation.XProperties)
	assert.True(t, cfg.Generation.AcceptToProduce)
	assert.Equal(t, "json", cfg.Generation.PayloadType)
	assert.Equal(t, "tags", cfg.Generation.Grouping)
	assert.Equal(t, "api", cfg.Generation.RouteTag)
	assert.Equal(t, []string{"**/*.routes.yaml", "**/*.routes.yml"}, cfg.Source.Include)
	assert.False(t, cfg.Watch.Enabled)
	assert.Equal(t, 500, cfg.Watch.Debounce)
}

func TestLoad_NoConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalDir)

	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)

	// Should return default config
	assert.Equal(t, "swagger.yaml", cfg.Output)
	assert.Equal(t, "api", cfg.Generation.RouteTag)
}

func TestLoad_YAMLConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalDir)

	configContent := `
output: api.yaml
format: yaml
swagger:
  host: api.example.com
  basePath: /v2
  info:
    title: "My API"
    version: "2.0.0"
    description: "A test API"
generation:
  definitionPrefix: useLabel
  payloadType: form
  grouping: path
  routeTag: docs
`
	configPath := filepath.Join(tmpDir, "validoc.yaml")
	err = os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "api.yaml", cfg.Output)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "api.example.com", cfg.Swagger.Host)
	assert.Equal(t, "/v2", cfg.Swagger.BasePath)
	assert.Equal(t, "My API", cfg.Swagger.Info.Title)
	assert.Equal(t, "2.0.0", cfg.Swagger.Info.Version)
	assert.Equal(t, "A test API", cfg.Swagger.Info.Description)
	assert.Equal(t, "useLabel", cfg.Generation.DefinitionPrefix)
	assert.Equal(t, "form", cfg.Generation.PayloadType)
	assert.Equal(t, "path", cfg.Generation.Grouping)
	assert.Equal(t, "docs", cfg.Generation.RouteTag)
}

func TestLoad_JSONConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalDir)

	configContent := `{
  "output": "swagger.json",
  "format": "json",
  "swagger": {
    "info": {
      "title": "JSON API",
      "version": "1.0.0"
    }
  }
}`
	configPath := filepath.Join(tmpDir, "validoc.json")
	err = os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "swagger.json", cfg.Output)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "JSON API", cfg.Swagger.Info.Title)
}

func TestLoad_DotPrefixedConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalDir)

	configContent := `
output: spec.yaml
`
	configPath := filepath.Join(tmpDir, ".validoc.yaml")
	err = os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "spec.yaml", cfg.Output)
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
output: custom.yaml
`
	configPath := filepath.Join(tmpDir, "custom-config.yaml")
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "custom.yaml", cfg.Output)
}

func TestLoad_ExplicitConfigPathMissing(t *testing.T) {
	cfg, err := Load("does-not-exist.yaml")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_ConfigFilePriority(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(originalDir)

	// Create both validoc.yaml and .validoc.yaml
	// validoc.yaml should take priority
	err = os.WriteFile(filepath.Join(tmpDir, "validoc.yaml"), []byte("output: first.yaml\n"), 0644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(tmpDir, ".validoc.yaml"), []byte("output: second.yaml\n"), 0644)
	require.NoError(t, err)

	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "first.yaml", cfg.Output)
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := Default()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_InvalidFormat(t *testing.T) {
	cfg := Default()
	cfg.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)

	var valErrs ValidationErrors
	require.ErrorAs(t, err, &valErrs)
	assert.Len(t, valErrs, 1)
	assert.Equal(t, "format", valErrs[0].Field)
}

func TestValidate_InvalidPrefixMode(t *testing.T) {
	cfg := Default()
	cfg.Generation.DefinitionPrefix = "camelCase"

	err := cfg.Validate()
	require.Error(t, err)

	var valErrs ValidationErrors
	require.ErrorAs(t, err, &valErrs)
	assert.Len(t, valErrs, 1)
	assert.Equal(t, "generation.definitionPrefix", valErrs[0].Field)
}

func TestValidate_InvalidPayloadType(t *testing.T) {
	cfg := Default()
	cfg.Generation.PayloadType = "xml"

	err := cfg.Validate()
	require.Error(t, err)

	var valErrs ValidationErrors
	require.ErrorAs(t, err, &valErrs)
	assert.Len(t, valErrs, 1)
	assert.Equal(t, "generation.payloadType", valErrs[0].Field)
}

func TestValidate_InvalidGrouping(t *testing.T) {
	cfg := Default()
	cfg.Generation.Grouping = "method"

	err := cfg.Validate()
	require.Error(t, err)

	var valErrs ValidationErrors
	require.ErrorAs(t, err, &valErrs)
	assert.Len(t, valErrs, 1)
	assert.Equal(t, "generation.grouping", valErrs[0].Field)
}

func TestValidate_NegativeDebounce(t *testing.T) {
	cfg := Default()
	cfg.Watch.Debounce = -1

	err := cfg.Validate()
	require.Error(t, err)

	var valErrs ValidationErrors
	require.ErrorAs(t, err, &valErrs)
	assert.Len(t, valErrs, 1)
	assert.Equal(t, "watch.debounce", valErrs[0].Field)
}

func TestValidate_MissingTitle(t *testing.T) {
	cfg := Default()
	cfg.Swagger.Info.Title = ""

	err := cfg.Validate()
	require.Error(t, err)

	var valErrs ValidationErrors
	require.ErrorAs(t, err, &valErrs)
	assert.Len(t, valErrs, 1)
	assert.Equal(t, "swagger.info.title", valErrs[0].Field)
}

func TestValidate_MissingVersion(t *testing.T) {
	cfg := Default()
	cfg.Swagger.Info.Version = ""

	err := cfg.Validate()
	require.Error(t, err)

	var valErrs ValidationErrors
	require.ErrorAs(t, err, &valErrs)
	assert.Len(t, valErrs, 1)
	assert.Equal(t, "swagger.info.version", valErrs[0].Field)
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.Format = "xml"
	cfg.Generation.PayloadType = "bad"
	cfg.Generation.Grouping = "bad"

	err := cfg.Validate()
	require.Error(t, err)

	var valErrs ValidationErrors
	require.ErrorAs(t, err, &valErrs)
	assert.Len(t, valErrs, 3)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "format",
		Message: "unsupported format",
	}
	assert.Contains(t, err.Error(), "format")
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "field1", Message: "error1"},
		{Field: "field2", Message: "error2"},
	}
	errStr := errs.Error()
	assert.Contains(t, errStr, "field1")
	assert.Contains(t, errStr, "error1")
	assert.Contains(t, errStr, "field2")
	assert.Contains(t, errStr, "error2")
}

func TestValidationErrors_ErrorEmpty(t *testing.T) {
	errs := ValidationErrors{}
	assert.Equal(t, "no validation errors", errs.Error())
}

func TestValidationErrors_ErrorSingle(t *testing.T) {
	errs := ValidationErrors{
		{Field: "field1", Message: "error1"},
	}
	// Single error should use the ValidationError format
	assert.Contains(t, errs.Error(), "config validation error")
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `
output: nested.yaml
`
	err := os.WriteFile(filepath.Join(tmpDir, "validoc.yaml"), []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "nested.yaml", cfg.Output)
}

func TestLoadFromPath_NoConfig(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadFromPath(tmpDir)
	require.NoError(t, err)

	// Should return default config
	assert.Equal(t, "swagger.yaml", cfg.Output)
}
