// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package types provides the document model for generated Swagger 2.0
// specifications and the route-record input contract.
package types

// Document represents a complete Swagger 2.0 specification document.
type Document struct {
	// Swagger is the specification version marker (always "2.0").
	Swagger string `json:"swagger" yaml:"swagger"`

	// Info provides metadata about the API.
	Info Info `json:"info" yaml:"info"`

	// Host is the host (name or ip) serving the API.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// BasePath is the base path on which the API is served.
	BasePath string `json:"basePath,omitempty" yaml:"basePath,omitempty"`

	// Schemes is the transfer protocol list (http, https, ws, wss).
	Schemes []string `json:"schemes,omitempty" yaml:"schemes,omitempty"`

	// Consumes is the default list of MIME types the API can consume.
	Consumes []string `json:"consumes,omitempty" yaml:"consumes,omitempty"`

	// Produces is the default list of MIME types the API can produce.
	Produces []string `json:"produces,omitempty" yaml:"produces,omitempty"`

	// Paths holds the available paths and operations.
	Paths map[string]PathItem `json:"paths" yaml:"paths"`

	// Definitions holds the primary registered schema definitions.
	Definitions map[string]*Schema `json:"definitions,omitempty" yaml:"definitions,omitempty"`

	// XAltDefinitions holds the alternative-branch definitions, kept apart
	// so they never participate in primary de-duplication.
	XAltDefinitions map[string]*Schema `json:"x-alt-definitions,omitempty" yaml:"x-alt-definitions,omitempty"`

	// SecurityDefinitions holds declared security schemes.
	SecurityDefinitions map[string]SecurityScheme `json:"securityDefinitions,omitempty" yaml:"securityDefinitions,omitempty"`

	// Security is the global security requirement list.
	Security []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`

	// Tags is a list of tags used by the specification.
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`

	// ExternalDocs provides external documentation.
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}

// Info provides metadata about the API.
type Info struct {
	Title          string   `json:"title" yaml:"title"`
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	TermsOfService string   `json:"termsOfService,omitempty" yaml:"termsOfService,omitempty"`
	Contact        *Contact `json:"contact,omitempty" yaml:"contact,omitempty"`
	License        *License `json:"license,omitempty" yaml:"license,omitempty"`
	Version        string   `json:"version" yaml:"version"`
}

// Contact provides contact information.
type Contact struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Email string `json:"email,omitempty" yaml:"email,omitempty"`
}

// License provides license information.
type License struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// PathItem represents the operations available on a single path.
type PathItem struct {
	Get     *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Put     *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Post    *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Delete  *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Options *Operation `json:"options,omitempty" yaml:"options,omitempty"`
	Head    *Operation `json:"head,omitempty" yaml:"head,omitempty"`
	Patch   *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
}

// Operation represents one method entry on a path.
type Operation struct {
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	OperationID string   `json:"operationId,omitempty" yaml:"operationId,omitempty"`

	Consumes []string `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces []string `json:"produces,omitempty" yaml:"produces,omitempty"`

	Parameters []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses  map[string]Response `json:"responses,omitempty" yaml:"responses,omitempty"`

	Deprecated bool                  `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Security   []map[string][]string `json:"security,omitempty" yaml:"security,omitempty"`

	// XMeta carries vendor metadata supplied by the route registration.
	XMeta map[string]any `json:"x-meta,omitempty" yaml:"x-meta,omitempty"`

	// XOrder is an ordering hint for UI rendering.
	XOrder int `json:"x-order,omitempty" yaml:"x-order,omitempty"`
}

// Parameter describes a single operation parameter (Swagger 2.0 shape:
// body parameters nest a schema, the rest carry inline type fields).
type Parameter struct {
	Name        string `json:"name" yaml:"name"`
	In          string `json:"in" yaml:"in"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`

	// Schema wraps the payload schema for body parameters.
	Schema *Schema `json:"schema,omitempty" yaml:"schema,omitempty"`

	// Inline type fields for non-body parameters.
	Type             string   `json:"type,omitempty" yaml:"type,omitempty"`
	Format           string   `json:"format,omitempty" yaml:"format,omitempty"`
	AllowEmptyValue  bool     `json:"allowEmptyValue,omitempty" yaml:"allowEmptyValue,omitempty"`
	Items            *Schema  `json:"items,omitempty" yaml:"items,omitempty"`
	CollectionFormat string   `json:"collectionFormat,omitempty" yaml:"collectionFormat,omitempty"`
	Default          any      `json:"default,omitempty" yaml:"default,omitempty"`
	Maximum          *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	MaxLength        *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinLength        *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	Pattern          string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MaxItems         *int     `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	MinItems         *int     `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	Enum             []any    `json:"enum,omitempty" yaml:"enum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`

	// Vendor extensions always pass through the projector untouched.
	XType         string             `json:"x-type,omitempty" yaml:"x-type,omitempty"`
	XProperties   map[string]*Schema `json:"x-properties,omitempty" yaml:"x-properties,omitempty"`
	XMeta         any                `json:"x-meta,omitempty" yaml:"x-meta,omitempty"`
	XFormat       map[string]any     `json:"x-format,omitempty" yaml:"x-format,omitempty"`
	XConstraint   map[string]any     `json:"x-constraint,omitempty" yaml:"x-constraint,omitempty"`
	XConvert      map[string]any     `json:"x-convert,omitempty" yaml:"x-convert,omitempty"`
	XAlternatives []*Schema          `json:"x-alternatives,omitempty" yaml:"x-alternatives,omitempty"`
}

// Response describes a single response for a status code.
type Response struct {
	Description string             `json:"description" yaml:"description"`
	Schema      *Schema            `json:"schema,omitempty" yaml:"schema,omitempty"`
	Headers     map[string]*Schema `json:"headers,omitempty" yaml:"headers,omitempty"`
	Examples    map[string]any     `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// SecurityScheme represents a declared security scheme.
type SecurityScheme struct {
	Type             string            `json:"type" yaml:"type"`
	Description      string            `json:"description,omitempty" yaml:"description,omitempty"`
	Name             string            `json:"name,omitempty" yaml:"name,omitempty"`
	In               string            `json:"in,omitempty" yaml:"in,omitempty"`
	Flow             string            `json:"flow,omitempty" yaml:"flow,omitempty"`
	AuthorizationURL string            `json:"authorizationUrl,omitempty" yaml:"authorizationUrl,omitempty"`
	TokenURL         string            `json:"tokenUrl,omitempty" yaml:"tokenUrl,omitempty"`
	Scopes           map[string]string `json:"scopes,omitempty" yaml:"scopes,omitempty"`
}

// Tag represents a tag object.
type Tag struct {
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description,omitempty" yaml:"description,omitempty"`
	ExternalDocs *ExternalDocs `json:"externalDocs,omitempty" yaml:"externalDocs,omitempty"`
}

// ExternalDocs provides external documentation.
type ExternalDocs struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url" yaml:"url"`
}

// Operation returns the operation registered for the given lowercase method.
func (p PathItem) Operation(method string) *Operation {
	switch method {
	case "get":
		return p.Get
	case "put":
		return p.Put
	case "post":
		return p.Post
	case "delete":
		return p.Delete
	case "options":
		return p.Options
	case "head":
		return p.Head
	case "patch":
		return p.Patch
	}
	return nil
}

// SetOperation registers the operation under the given lowercase method.
// Unknown methods are ignored.
func (p *PathItem) SetOperation(method string, op *Operation) {
	switch method {
	case "get":
		p.Get = op
	case "put":
		p.Put = op
	case "post":
		p.Post = op
	case "delete":
		p.Delete = op
	case "options":
		p.Options = op
	case "head":
		p.Head = op
	case "patch":
		p.Patch = op
	}
}

// Methods returns the lowercase methods that have operations, in the fixed
// method order of the struct.
func (p PathItem) Methods() []string {
	var out []string
	for _, m := range []string{"get", "put", "post", "delete", "options", "head", "patch"} {
		if p.Operation(m) != nil {
			out = append(out, m)
		}
	}
	return out
}
