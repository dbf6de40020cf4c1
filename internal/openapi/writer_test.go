// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validoc/validoc/pkg/types"
)

func createTestDoc() *types.Document {
	return &types.Document{
		Swagger: "2.0",
		Info: types.Info{
			Title:       "Test API",
			Description: "A test API",
			Version:     "1.0.0",
		},
		Host:     "api.example.com",
		BasePath: "/v1",
		Paths: map[string]types.PathItem{
			"/users": {
				Get: &types.Operation{
					Summary: "List users",
					Responses: map[string]types.Response{
						"200": {Description: "Success"},
					},
				},
			},
		},
		Definitions: map[string]*types.Schema{
			"User": {
				Type: "object",
				Properties: map[string]*types.Schema{
					"name": {Type: "string"},
				},
			},
		},
	}
}

func TestNewWriter(t *testing.T) {
	writer := NewWriter()
	assert.NotNil(t, writer)
	assert.Equal(t, 2, writer.Indent)
}

func TestWriter_WriteYAML(t *testing.T) {
	writer := NewWriter()
	doc := createTestDoc()

	var buf bytes.Buffer
	err := writer.WriteYAML(doc, &buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, `swagger: "2.0"`)
	assert.Contains(t, output, "title: Test API")
	assert.Contains(t, output, "version: 1.0.0")
	assert.Contains(t, output, "/users:")
	assert.Contains(t, output, "User:")
}

func TestWriter_WriteJSON(t *testing.T) {
	writer := NewWriter()
	doc := createTestDoc()

	var buf bytes.Buffer
	err := writer.WriteJSON(doc, &buf)

	require.NoError(t, err)
	output := buf.String()

	assert.Contains(t, output, `"swagger": "2.0"`)
	assert.Contains(t, output, `"title": "Test API"`)
	assert.Contains(t, output, `"version": "1.0.0"`)
	assert.Contains(t, output, `"/users":`)
}

func TestWriter_WriteFile_YAML(t *testing.T) {
	writer := NewWriter()
	doc := createTestDoc()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "swagger.yaml")

	err := writer.WriteFile(doc, path, "yaml")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "swagger:")
	assert.Contains(t, string(content), "title: Test API")
}

func TestWriter_WriteFile_JSON(t *testing.T) {
	writer := NewWriter()
	doc := createTestDoc()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "swagger.json")

	err := writer.WriteFile(doc, path, "json")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), `"swagger"`)
	assert.Contains(t, string(content), `"Test API"`)
}

func TestWriter_WriteFile_InferFormatFromExtension(t *testing.T) {
	writer := NewWriter()
	doc := createTestDoc()

	tmpDir := t.TempDir()

	jsonPath := filepath.Join(tmpDir, "swagger.json")
	require.NoError(t, writer.WriteFile(doc, jsonPath, ""))
	content, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(content)), "{"))

	yamlPath := filepath.Join(tmpDir, "swagger.yaml")
	require.NoError(t, writer.WriteFile(doc, yamlPath, ""))
	content, err = os.ReadFile(yamlPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "swagger:")
}

func TestWriter_WriteFile_CreatesDirectory(t *testing.T) {
	writer := NewWriter()
	doc := createTestDoc()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "swagger.yaml")

	err := writer.WriteFile(doc, path, "yaml")
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestWriter_WriteFile_UnsupportedFormat(t *testing.T) {
	writer := NewWriter()
	doc := createTestDoc()

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "swagger.yaml")

	err := writer.WriteFile(doc, path, "toml")
	assert.Error(t, err)
}

func TestWriter_ToYAMLAndToJSON(t *testing.T) {
	writer := NewWriter()
	doc := createTestDoc()

	yamlOut, err := writer.ToYAML(doc)
	require.NoError(t, err)
	assert.Contains(t, yamlOut, "title: Test API")

	jsonOut, err := writer.ToJSON(doc)
	require.NoError(t, err)
	assert.Contains(t, jsonOut, `"title": "Test API"`)
}

func TestReadFile_RoundTrip(t *testing.T) {
	writer := NewWriter()
	doc := createTestDoc()

	tmpDir := t.TempDir()

	for _, name := range []string{"swagger.yaml", "swagger.json"} {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, writer.WriteFile(doc, path, ""))

		got, err := ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "2.0", got.Swagger)
		assert.Equal(t, "Test API", got.Info.Title)
		require.Contains(t, got.Paths, "/users")
		assert.Equal(t, "List users", got.Paths["/users"].Get.Summary)
		assert.Contains(t, got.Definitions, "User")
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
