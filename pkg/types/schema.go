// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package types

// Schema is the normalized property description produced by the converter.
// After definition extraction a schema is either a bare $ref or an inline
// description, never both.
type Schema struct {
	// Ref is a reference to a registered definition ($ref).
	Ref string `json:"$ref,omitempty" yaml:"$ref,omitempty"`

	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Default and Example stay meaningful even when falsy; only nil is
	// considered empty for them.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`
	Example any `json:"example,omitempty" yaml:"example,omitempty"`

	Enum []any `json:"enum,omitempty" yaml:"enum,omitempty"`

	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// --- String constraints ---

	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`

	// --- Numeric constraints ---

	Minimum    *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum    *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MultipleOf *float64 `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`

	// --- Array constraints ---

	Items            *Schema `json:"items,omitempty" yaml:"items,omitempty"`
	MinItems         *int    `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	MaxItems         *int    `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	CollectionFormat string  `json:"collectionFormat,omitempty" yaml:"collectionFormat,omitempty"`

	// --- Object shape ---

	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string           `json:"required,omitempty" yaml:"required,omitempty"`

	// PropOrder records property declaration order for consumers that need
	// it (the parameter projector); serialization order is not contractual.
	PropOrder []string `json:"-" yaml:"-"`

	// Optional is transient bookkeeping: field names whose presence flag was
	// explicitly optional. The registry strips it before comparing or
	// storing, and the projector consumes it when deriving per-parameter
	// required-ness. Never serialized.
	Optional []string `json:"-" yaml:"-"`

	// In is set only by the file-upload override (forces formData).
	In string `json:"in,omitempty" yaml:"in,omitempty"`

	// --- Vendor extensions ---

	XMeta         any            `json:"x-meta,omitempty" yaml:"x-meta,omitempty"`
	XFormat       map[string]any `json:"x-format,omitempty" yaml:"x-format,omitempty"`
	XConstraint   map[string]any `json:"x-constraint,omitempty" yaml:"x-constraint,omitempty"`
	XConvert      map[string]any `json:"x-convert,omitempty" yaml:"x-convert,omitempty"`
	XAlternatives []*Schema      `json:"x-alternatives,omitempty" yaml:"x-alternatives,omitempty"`

	// XType and XProperties preserve object typing on parameters, where
	// inline object types are not valid in the targeted spec version.
	XType       string             `json:"x-type,omitempty" yaml:"x-type,omitempty"`
	XProperties map[string]*Schema `json:"x-properties,omitempty" yaml:"x-properties,omitempty"`
}

// Clone returns a deep copy of the schema.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := *s
	out.Enum = cloneSlice(s.Enum)
	out.Notes = cloneStrings(s.Notes)
	out.Tags = cloneStrings(s.Tags)
	out.Required = cloneStrings(s.Required)
	out.Optional = cloneStrings(s.Optional)
	out.PropOrder = cloneStrings(s.PropOrder)
	out.MinLength = cloneInt(s.MinLength)
	out.MaxLength = cloneInt(s.MaxLength)
	out.MinItems = cloneInt(s.MinItems)
	out.MaxItems = cloneInt(s.MaxItems)
	out.Minimum = cloneFloat(s.Minimum)
	out.Maximum = cloneFloat(s.Maximum)
	out.MultipleOf = cloneFloat(s.MultipleOf)
	out.Items = s.Items.Clone()
	out.XFormat = cloneMap(s.XFormat)
	out.XConstraint = cloneMap(s.XConstraint)
	out.XConvert = cloneMap(s.XConvert)
	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for k, v := range s.Properties {
			out.Properties[k] = v.Clone()
		}
	}
	if s.XProperties != nil {
		out.XProperties = make(map[string]*Schema, len(s.XProperties))
		for k, v := range s.XProperties {
			out.XProperties[k] = v.Clone()
		}
	}
	if s.XAlternatives != nil {
		out.XAlternatives = make([]*Schema, len(s.XAlternatives))
		for i, v := range s.XAlternatives {
			out.XAlternatives[i] = v.Clone()
		}
	}
	return &out
}

// IsRef reports whether the schema is a bare definition reference.
func (s *Schema) IsRef() bool {
	return s != nil && s.Ref != ""
}

// IsEmptyObject reports whether the schema describes an object with no
// content beyond its type, such as the placeholder for an undocumentable
// body.
func (s *Schema) IsEmptyObject() bool {
	if s == nil {
		return true
	}
	return s.Ref == "" && s.Type == "object" && len(s.Properties) == 0 &&
		len(s.Required) == 0 && s.Description == "" && s.Items == nil &&
		s.Default == nil && s.Example == nil && len(s.Enum) == 0
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneSlice(in []any) []any {
	if in == nil {
		return nil
	}
	out := make([]any, len(in))
	copy(out, in)
	return out
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneInt(in *int) *int {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}

func cloneFloat(in *float64) *float64 {
	if in == nil {
		return nil
	}
	v := *in
	return &v
}
