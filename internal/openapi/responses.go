// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/validoc/validoc/internal/schema"
	"github.com/validoc/validoc/pkg/types"
	"github.com/validoc/validoc/pkg/vschema"
)

// BuildResponses merges the schemas discovered on a route (a default
// response schema plus per-status schemas) with user-supplied overrides into
// the final per-status response map. Every operation ends up with at least
// one documented response.
func BuildResponses(c *schema.Context, defaultSchema *vschema.Node, perStatus map[int]*vschema.Node, overrides map[string]types.ResponseOverride) map[string]types.Response {
	responses := make(map[string]types.Response)

	if defaultSchema != nil {
		if _, ok := perStatus[http.StatusOK]; !ok {
			responses["200"] = responseFromNode(c, defaultSchema, http.StatusOK)
		}
	}

	// Conversion registers definitions, and synthesized names depend on
	// registration order, so iterate in sorted key order.
	codes := make([]int, 0, len(perStatus))
	for code := range perStatus {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		responses[strconv.Itoa(code)] = responseFromNode(c, perStatus[code], code)
	}

	overrideKeys := make([]string, 0, len(overrides))
	for key := range overrides {
		overrideKeys = append(overrideKeys, key)
	}
	sort.Strings(overrideKeys)
	for _, key := range overrideKeys {
		override := overrides[key]
		merged := overrideResponse(c, key, override)
		existing, ok := responses[key]
		if !ok {
			responses[key] = merged
			continue
		}
		// Shallow per-key overwrite: overrides win field by field but
		// never erase fields they did not mention.
		if merged.Description != "" {
			existing.Description = merged.Description
		}
		if merged.Schema != nil {
			existing.Schema = merged.Schema
		}
		if merged.Headers != nil {
			existing.Headers = merged.Headers
		}
		if merged.Examples != nil {
			existing.Examples = merged.Examples
		}
		responses[key] = existing
	}

	// Some document validators insist on a schema for 200.
	if ok200, ok := responses["200"]; ok && ok200.Schema == nil {
		ok200.Schema = &types.Schema{Type: "string"}
		responses["200"] = ok200
	}

	if len(responses) == 0 {
		responses["default"] = types.Response{
			Description: "Successful",
			Schema:      &types.Schema{Type: "string"},
		}
	}

	return responses
}

// responseFromNode converts one discovered schema node into a response
// entry, falling back to the standard reason phrase when the schema carries
// no description of its own.
func responseFromNode(c *schema.Context, node *vschema.Node, code int) types.Response {
	resp := types.Response{Description: http.StatusText(code)}
	if node == nil {
		return resp
	}
	if node.Description != "" {
		resp.Description = node.Description
	}
	_, converted := c.Convert("", node, nil, "body", true, false)
	resp.Schema = converted
	return resp
}

// overrideResponse normalizes one user override into response shape. A
// validation-schema override is converted like a discovered schema; a
// literal schema passes through untouched.
func overrideResponse(c *schema.Context, key string, override types.ResponseOverride) types.Response {
	resp := types.Response{
		Description: override.Description,
		Headers:     override.Headers,
		Examples:    override.Examples,
	}
	switch s := override.Schema.(type) {
	case *vschema.Node:
		_, converted := c.Convert("", s, nil, "body", true, false)
		resp.Schema = converted
	case *types.Schema:
		resp.Schema = s
	}
	if resp.Description == "" {
		if code, err := strconv.Atoi(key); err == nil {
			resp.Description = http.StatusText(code)
		}
	}
	return resp
}
