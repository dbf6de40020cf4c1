// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"sort"

	"github.com/validoc/validoc/pkg/types"
)

// FromProperties projects a converted location schema into the flat
// per-parameter descriptors of one location (query, path, header, formData,
// body).
//
// A schema without named children describes the whole location (a raw body
// or a single scalar) and yields exactly one descriptor named after the
// location; a vacuous one is dropped entirely. A schema with children
// yields one descriptor per child, in declaration order.
func FromProperties(schema *types.Schema, location string) []types.Parameter {
	if schema == nil {
		return nil
	}

	if schema.IsRef() || len(schema.Properties) == 0 {
		if schema.IsEmptyObject() {
			return nil
		}
		return []types.Parameter{wholeLocationParameter(schema, location)}
	}

	keys := schema.PropOrder
	if len(keys) != len(schema.Properties) {
		keys = sortedKeys(schema.Properties)
	}

	params := make([]types.Parameter, 0, len(keys))
	for _, key := range keys {
		child, ok := schema.Properties[key]
		if !ok || child == nil {
			continue
		}
		param := childParameter(key, child, location)
		param.Required = isRequired(schema, key)
		params = append(params, param)
	}
	return params
}

// wholeLocationParameter wraps a childless schema as a single descriptor.
// Body-like locations nest the schema (hoisting any $ref under it); the
// rest inline the type fields.
func wholeLocationParameter(schema *types.Schema, location string) types.Parameter {
	param := types.Parameter{Name: location, In: location}
	if location == "body" || schema.IsRef() {
		param.Schema = schema.Clone()
		return param
	}
	fillInline(&param, schema)
	return param
}

// childParameter flattens one named child into a descriptor, demoting
// object types along the way: objects are not valid parameter types in the
// targeted spec version, so they become string-typed with x-type and
// x-properties preserving the real shape.
func childParameter(name string, child *types.Schema, location string) types.Parameter {
	param := types.Parameter{Name: name, In: location}
	demoted := demoteObjectType(child)
	fillInline(&param, demoted)
	if child.In != "" {
		// The file-upload override pins its own location.
		param.In = child.In
	}
	return param
}

// fillInline copies the allow-listed inline fields onto the descriptor.
// Vendor-extension fields always pass through untouched.
func fillInline(param *types.Parameter, s *types.Schema) {
	param.Description = s.Description
	param.Type = s.Type
	param.Format = s.Format
	param.Items = demoteObjectType(s.Items)
	param.CollectionFormat = s.CollectionFormat
	param.Default = s.Default
	param.Maximum = s.Maximum
	param.Minimum = s.Minimum
	param.MaxLength = s.MaxLength
	param.MinLength = s.MinLength
	param.Pattern = s.Pattern
	param.MaxItems = s.MaxItems
	param.MinItems = s.MinItems
	param.Enum = s.Enum
	param.MultipleOf = s.MultipleOf
	param.XType = s.XType
	param.XProperties = s.XProperties
	param.XMeta = s.XMeta
	param.XFormat = s.XFormat
	param.XConstraint = s.XConstraint
	param.XConvert = s.XConvert
	param.XAlternatives = s.XAlternatives
}

// demoteObjectType recursively rewrites object-typed schemas into
// string-typed ones carrying x-type/x-properties, including through array
// item types.
func demoteObjectType(s *types.Schema) *types.Schema {
	if s == nil {
		return nil
	}
	out := s.Clone()
	if out.Items != nil {
		out.Items = demoteObjectType(out.Items)
	}
	if out.Type != "object" || out.IsRef() {
		return out
	}
	out.Type = "string"
	out.XType = "object"
	if len(out.Properties) > 0 {
		demoted := make(map[string]*types.Schema, len(out.Properties))
		for k, v := range out.Properties {
			demoted[k] = demoteObjectType(v)
		}
		out.XProperties = demoted
	}
	out.Properties = nil
	out.Required = nil
	out.Optional = nil
	out.PropOrder = nil
	return out
}

// isRequired derives a child's required-ness from the parent's accumulated
// presence lists: required wins, explicit optional clears.
func isRequired(parent *types.Schema, key string) bool {
	for _, name := range parent.Required {
		if name == key {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]*types.Schema) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
