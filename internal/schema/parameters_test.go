// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validoc/validoc/pkg/types"
)

func TestFromProperties_Nil(t *testing.T) {
	assert.Nil(t, FromProperties(nil, "query"))
}

func TestFromProperties_EmptyObjectDropped(t *testing.T) {
	params := FromProperties(&types.Schema{Type: "object"}, "body")
	assert.Nil(t, params)
}

func TestFromProperties_RefBecomesBodyParameter(t *testing.T) {
	schema := &types.Schema{Ref: "#/definitions/User"}

	params := FromProperties(schema, "body")
	require.Len(t, params, 1)
	assert.Equal(t, "body", params[0].Name)
	assert.Equal(t, "body", params[0].In)
	require.NotNil(t, params[0].Schema)
	assert.Equal(t, "#/definitions/User", params[0].Schema.Ref)
	assert.Empty(t, params[0].Type)
}

func TestFromProperties_ScalarBodyNested(t *testing.T) {
	schema := &types.Schema{Type: "string", Format: "binary"}

	params := FromProperties(schema, "body")
	require.Len(t, params, 1)
	require.NotNil(t, params[0].Schema)
	assert.Equal(t, "string", params[0].Schema.Type)
	assert.Equal(t, "binary", params[0].Schema.Format)
}

func TestFromProperties_PerChildDescriptors(t *testing.T) {
	min := 2
	schema := &types.Schema{
		Type: "object",
		Properties: map[string]*types.Schema{
			"name":  {Type: "string", Description: "user name", MinLength: &min},
			"limit": {Type: "integer", Default: 10},
		},
		Required:  []string{"name"},
		PropOrder: []string{"name", "limit"},
	}

	params := FromProperties(schema, "query")
	require.Len(t, params, 2)

	assert.Equal(t, "name", params[0].Name)
	assert.Equal(t, "query", params[0].In)
	assert.True(t, params[0].Required)
	assert.Equal(t, "user name", params[0].Description)
	require.NotNil(t, params[0].MinLength)
	assert.Equal(t, 2, *params[0].MinLength)

	assert.Equal(t, "limit", params[1].Name)
	assert.False(t, params[1].Required)
	assert.Equal(t, 10, params[1].Default)
}

func TestFromProperties_DeclarationOrderPreserved(t *testing.T) {
	schema := &types.Schema{
		Type: "object",
		Properties: map[string]*types.Schema{
			"z": {Type: "string"},
			"a": {Type: "string"},
			"m": {Type: "string"},
		},
		PropOrder: []string{"z", "a", "m"},
	}

	params := FromProperties(schema, "query")
	require.Len(t, params, 3)
	assert.Equal(t, "z", params[0].Name)
	assert.Equal(t, "a", params[1].Name)
	assert.Equal(t, "m", params[2].Name)
}

func TestFromProperties_ObjectChildDemoted(t *testing.T) {
	schema := &types.Schema{
		Type: "object",
		Properties: map[string]*types.Schema{
			"filter": {
				Type: "object",
				Properties: map[string]*types.Schema{
					"nested": {Type: "object", Properties: map[string]*types.Schema{
						"deep": {Type: "string"},
					}},
				},
			},
		},
		PropOrder: []string{"filter"},
	}

	params := FromProperties(schema, "query")
	require.Len(t, params, 1)
	assert.Equal(t, "string", params[0].Type)
	assert.Equal(t, "object", params[0].XType)
	require.Contains(t, params[0].XProperties, "nested")
	nested := params[0].XProperties["nested"]
	assert.Equal(t, "string", nested.Type)
	assert.Equal(t, "object", nested.XType)
}

func TestFromProperties_ArrayItemObjectDemoted(t *testing.T) {
	schema := &types.Schema{
		Type: "object",
		Properties: map[string]*types.Schema{
			"filters": {
				Type: "array",
				Items: &types.Schema{Type: "object", Properties: map[string]*types.Schema{
					"key": {Type: "string"},
				}},
				CollectionFormat: "multi",
			},
		},
		PropOrder: []string{"filters"},
	}

	params := FromProperties(schema, "query")
	require.Len(t, params, 1)
	assert.Equal(t, "array", params[0].Type)
	assert.Equal(t, "multi", params[0].CollectionFormat)
	require.NotNil(t, params[0].Items)
	assert.Equal(t, "string", params[0].Items.Type)
	assert.Equal(t, "object", params[0].Items.XType)
}

func TestFromProperties_FileUploadKeepsFormData(t *testing.T) {
	schema := &types.Schema{
		Type: "object",
		Properties: map[string]*types.Schema{
			"avatar": {Type: "file", In: "formData"},
		},
		PropOrder: []string{"avatar"},
	}

	params := FromProperties(schema, "formData")
	require.Len(t, params, 1)
	assert.Equal(t, "file", params[0].Type)
	assert.Equal(t, "formData", params[0].In)
}

func TestFromProperties_VendorExtensionsPassThrough(t *testing.T) {
	schema := &types.Schema{
		Type: "object",
		Properties: map[string]*types.Schema{
			"email": {
				Type:    "string",
				XFormat: map[string]any{"email": true},
				XMeta:   map[string]any{"owner": "identity"},
			},
		},
		PropOrder: []string{"email"},
	}

	params := FromProperties(schema, "query")
	require.Len(t, params, 1)
	assert.Equal(t, true, params[0].XFormat["email"])
	assert.Equal(t, map[string]any{"owner": "identity"}, params[0].XMeta)
}
