// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package types

import "github.com/validoc/validoc/pkg/vschema"

// Route is one route registration handed to the generator by the host
// application or the route-file loader. Validation fields are typed any
// because hosts may register programmatic validators (plain functions) that
// cannot be documented; the builder degrades those to placeholders.
type Route struct {
	// Method is the HTTP method. "*" expands to every concrete method.
	Method string `json:"method" yaml:"method"`

	// Methods lists multiple methods for one registration; it takes
	// precedence over Method when non-empty.
	Methods []string `json:"methods,omitempty" yaml:"methods,omitempty"`

	// Path is the path template, with {name} and {name?} placeholders.
	Path string `json:"path" yaml:"path"`

	// Description becomes the operation summary.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Notes become the operation description, joined with blank lines.
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Tags group the operation in the generated document.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Validate is the route-level validation config.
	Validate RouteValidate `json:"validate,omitempty" yaml:"validate,omitempty"`

	// ResponseSchema is the default (200) response schema.
	ResponseSchema *vschema.Node `json:"responseSchema,omitempty" yaml:"responseSchema,omitempty"`

	// ResponseStatus maps status codes to per-status response schemas.
	ResponseStatus map[int]*vschema.Node `json:"responseStatus,omitempty" yaml:"responseStatus,omitempty"`

	// Settings carries the plugin-level documentation overrides.
	Settings *RouteSettings `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// RouteValidate holds per-location validation schemas. Each field is either
// a *vschema.Node, nil, or an undocumentable programmatic validator.
type RouteValidate struct {
	Query   any `json:"query,omitempty" yaml:"query,omitempty"`
	Params  any `json:"params,omitempty" yaml:"params,omitempty"`
	Headers any `json:"headers,omitempty" yaml:"headers,omitempty"`
	Payload any `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// RouteSettings are the documentation overrides a route may carry. A non-nil
// schema override fully replaces the route-level schema for that location.
type RouteSettings struct {
	Query   any `json:"query,omitempty" yaml:"query,omitempty"`
	Params  any `json:"params,omitempty" yaml:"params,omitempty"`
	Headers any `json:"headers,omitempty" yaml:"headers,omitempty"`
	Payload any `json:"payload,omitempty" yaml:"payload,omitempty"`

	// Responses are user-supplied response overrides, keyed by status code
	// (or "default"). They win field-by-field over discovered responses.
	Responses map[string]ResponseOverride `json:"responses,omitempty" yaml:"responses,omitempty"`

	// PayloadType selects "json" or "form" payload documentation.
	PayloadType string `json:"payloadType,omitempty" yaml:"payloadType,omitempty"`

	// Consumes and Produces, when set, take final precedence over
	// auto-detection.
	Consumes []string `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces []string `json:"produces,omitempty" yaml:"produces,omitempty"`

	// ID overrides the derived operationId.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	Deprecated bool                  `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Security   []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`

	// Order is a UI ordering hint (x-order).
	Order int `json:"order,omitempty" yaml:"order,omitempty"`

	// Meta is vendor metadata carried onto the operation (x-meta).
	Meta map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// ResponseOverride is one user-supplied response entry. Schema is either a
// *vschema.Node (converted like any other schema) or a *Schema literal used
// as-is. Zero-valued fields never erase discovered fields.
type ResponseOverride struct {
	Description string             `json:"description,omitempty" yaml:"description,omitempty"`
	Schema      any                `json:"schema,omitempty" yaml:"schema,omitempty"`
	Headers     map[string]*Schema `json:"headers,omitempty" yaml:"headers,omitempty"`
	Examples    map[string]any     `json:"examples,omitempty" yaml:"examples,omitempty"`
}
