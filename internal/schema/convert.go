// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"strings"

	"github.com/validoc/validoc/pkg/types"
	"github.com/validoc/validoc/pkg/vschema"
)

// typeEntry maps a schema-node type tag to its documented type and format.
type typeEntry struct {
	Type   string
	Format string
}

// typeMap is the fixed type-resolution table. Unknown or extension type tags
// fall back to the "any" mapping, so custom validator types never fail
// conversion.
var typeMap = map[string]typeEntry{
	"boolean":      {Type: "boolean"},
	"binary":       {Type: "string", Format: "binary"},
	"date":         {Type: "string", Format: "date"},
	"number":       {Type: "number"},
	"string":       {Type: "string"},
	"any":          {Type: "string"},
	"func":         {Type: "string"},
	"alternatives": {Type: "string"},
	"array":        {Type: "array"},
	"object":       {Type: "object"},
}

// ruleBuckets routes extended rule extraction into vendor-extension buckets,
// consulted in a single pass over a node's rules.
var ruleBuckets = map[string]string{
	// constraints
	"length":    "x-constraint",
	"unique":    "x-constraint",
	"greater":   "x-constraint",
	"less":      "x-constraint",
	"precision": "x-constraint",
	"multiple":  "x-constraint",
	"positive":  "x-constraint",
	"negative":  "x-constraint",
	// formats
	"creditCard": "x-format",
	"alphanum":   "x-format",
	"token":      "x-format",
	"email":      "x-format",
	"ip":         "x-format",
	"uri":        "x-format",
	"guid":       "x-format",
	"hex":        "x-format",
	"hostname":   "x-format",
	"isoDate":    "x-format",
	"unit":       "x-format",
	// input conversions
	"lowercase": "x-convert",
	"uppercase": "x-convert",
	"trim":      "x-convert",
}

// Convert turns one schema node into a normalized property description,
// registering nested definitions as needed. It returns the final property
// name (the node's label may rename it) and the description. It returns a
// nil description for unrecognized nodes and for forbidden fields, which are
// omitted from documentation entirely.
//
// parent, when non-nil, accumulates the child's required/optional presence
// under the passed name; callers that rename a child migrate those entries.
// location is the parameter location context (query, path, header, formData,
// body) and influences naming and collection formats.
func (c *Context) Convert(name string, node *vschema.Node, parent *types.Schema, location string, useDefinitions, isAlternative bool) (string, *types.Schema) {
	if node == nil || node.Type == "" {
		return name, nil
	}
	if node.Flags.Presence == vschema.PresenceForbidden {
		return name, nil
	}

	finalName := name
	if node.Flags.Label != "" && location != "path" {
		finalName = node.Flags.Label
	}

	// Identity cache: an object node already converted (and registered)
	// in this namespace resolves to the same reference immediately.
	if node.Type == "object" && useDefinitions {
		if cached, ok := c.cacheFor(isAlternative)[node]; ok {
			return finalName, cached.Clone()
		}
	}

	entry, known := typeMap[node.Type]
	if !known {
		entry = typeMap["any"]
	}
	property := &types.Schema{Type: entry.Type, Format: entry.Format}

	c.parseMetadata(name, node, property, parent)
	c.parseEnum(node, property)

	switch node.Type {
	case "string":
		c.parseString(node, property)
	case "number":
		c.parseNumber(node, property)
	case "date":
		c.parseDate(node, property)
	case "object":
		property = c.parseObject(finalName, node, property, location, useDefinitions, isAlternative)
	case "array":
		property = c.parseArray(finalName, node, property, location, useDefinitions, isAlternative)
	case "alternatives":
		if alt := c.parseAlternatives(finalName, node, location, useDefinitions); alt != nil {
			// Metadata declared on the alternatives node itself survives
			// the switch to the canonical branch.
			if alt.Description == "" {
				alt.Description = property.Description
			}
			if alt.XMeta == nil {
				alt.XMeta = property.XMeta
			}
			if alt.Default == nil {
				alt.Default = property.Default
			}
			if alt.Example == nil {
				alt.Example = property.Example
			}
			property = alt
		}
	}

	// Terminal override: an out-of-band type marker wins over everything
	// computed above (file uploads in particular).
	if forced := node.MetaString(vschema.MetaSwaggerType); forced != "" {
		property.Type = forced
		property.Format = ""
		if forced == "file" {
			property.In = "formData"
		}
	}

	return finalName, property
}

// parseMetadata applies the extraction common to every node type:
// description, notes, tags, example, x-meta, presence bubbling into the
// parent accumulator, extended rule buckets, and the default value.
func (c *Context) parseMetadata(name string, node *vschema.Node, property *types.Schema, parent *types.Schema) {
	property.Description = node.Description
	if len(node.Notes) > 0 {
		property.Notes = append([]string(nil), node.Notes...)
	}
	if len(node.Tags) > 0 {
		property.Tags = append([]string(nil), node.Tags...)
	}
	if len(node.Examples) > 0 {
		property.Example = node.Examples[0]
	}
	if len(node.Meta) > 0 {
		property.XMeta = node.Meta[0]
	}

	if c.Options.XProperties {
		for _, rule := range node.Rules {
			bucket, ok := ruleBuckets[rule.Name]
			if !ok {
				continue
			}
			c.addToBucket(property, bucket, rule.Name, bucketValue(rule))
		}
		if node.Flags.Insensitive {
			c.addToBucket(property, "x-constraint", "insensitive", true)
		}
	}

	if parent != nil && name != "" {
		switch node.Flags.Presence {
		case vschema.PresenceRequired:
			parent.Required = append(parent.Required, name)
		case vschema.PresenceOptional:
			parent.Optional = append(parent.Optional, name)
		}
	}

	if d := node.Flags.Default; d != nil {
		if fn, ok := d.(func() any); ok {
			property.Default = fn()
		} else {
			property.Default = d
		}
	}
}

// parseEnum extracts the allowed-values list, filtering the empty-string and
// nil sentinels. The dropdown-suppression metadata key disables extraction.
func (c *Context) parseEnum(node *vschema.Node, property *types.Schema) {
	if len(node.Valids) == 0 || node.MetaBool(vschema.MetaDisableDropdown) {
		return
	}
	var enum []any
	for _, v := range node.Valids {
		if v == nil || v == "" {
			continue
		}
		enum = append(enum, v)
	}
	if len(enum) > 0 {
		property.Enum = enum
	}
}

func (c *Context) parseString(node *vschema.Node, property *types.Schema) {
	if property.Format != "date" {
		if v := intArg(node.Rule("min"), "limit"); v != nil {
			property.MinLength = v
		}
		if v := intArg(node.Rule("max"), "limit"); v != nil {
			property.MaxLength = v
		}
	}
	if rule := node.Rule("regex"); rule != nil {
		if pattern, ok := rule.Arg("pattern").(string); ok {
			property.Pattern = trimRegexDelimiters(pattern)
		}
	}
}

func (c *Context) parseNumber(node *vschema.Node, property *types.Schema) {
	if v := floatArg(node.Rule("min"), "limit"); v != nil {
		property.Minimum = v
	}
	if v := floatArg(node.Rule("max"), "limit"); v != nil {
		property.Maximum = v
	}
	if node.HasRule("integer") {
		property.Type = "integer"
	}
}

func (c *Context) parseDate(node *vschema.Node, property *types.Schema) {
	// Timestamp-validating dates document as bare numbers.
	if node.Flags.Timestamp {
		property.Type = "number"
		property.Format = ""
	}
}

// parseObject recursively converts object children, bubbles and migrates
// presence tracking, and extracts the finished object into the definition
// registry when definitions are in use.
func (c *Context) parseObject(name string, node *vschema.Node, property *types.Schema, location string, useDefinitions, isAlternative bool) *types.Schema {
	property.Properties = make(map[string]*types.Schema)

	for _, child := range node.Children {
		childName, childProp := c.Convert(child.Key, child.Schema, property, location, useDefinitions, isAlternative)
		if childProp == nil {
			continue
		}
		if childName != child.Key {
			// A label renamed the field: keep presence tracking attached
			// to the name downstream consumers will see.
			renameEntry(property.Required, child.Key, childName)
			renameEntry(property.Optional, child.Key, childName)
		}
		property.Properties[childName] = childProp
		property.PropOrder = append(property.PropOrder, childName)
	}

	if !useDefinitions {
		return property
	}

	registry := c.registryFor(isAlternative)
	finalName := registry.Append(name, property)
	ref := &types.Schema{Ref: refPrefixFor(isAlternative) + finalName}
	c.cacheFor(isAlternative)[node] = ref.Clone()
	return ref
}

// parseArray converts the first declared item type (the targeted spec
// version allows one item type per array) and applies array constraints.
func (c *Context) parseArray(name string, node *vschema.Node, property *types.Schema, location string, useDefinitions, isAlternative bool) *types.Schema {
	if v := intArg(node.Rule("min"), "limit"); v != nil {
		property.MinItems = v
	}
	if v := intArg(node.Rule("max"), "limit"); v != nil {
		property.MaxItems = v
	}
	if c.Options.XProperties {
		if node.Flags.Sparse {
			c.addToBucket(property, "x-constraint", "sparse", true)
		}
		if node.Flags.Single {
			c.addToBucket(property, "x-constraint", "single", true)
		}
	}

	// Default item type is string; only the first declared item schema is
	// taken. Simple item types stay inline, everything else may resolve to
	// a reference.
	property.Items = &types.Schema{Type: "string"}
	if len(node.Items) > 0 {
		if _, item := c.Convert("", node.Items[0], nil, location, useDefinitions, isAlternative); item != nil {
			property.Items = item
		}
	}

	if location == "query" || location == "formData" {
		property.CollectionFormat = "multi"
	}

	if !useDefinitions {
		return property
	}

	registry := c.registryFor(isAlternative)
	finalName := registry.Append(name, property)
	return &types.Schema{Ref: refPrefixFor(isAlternative) + finalName}
}

// parseAlternatives picks the canonical branch for primary typing and, with
// extended properties enabled, documents every branch in the alternative
// namespace. The targeted spec version cannot express union or conditional
// types in a single parameter, so the first branch stands in for the field
// while x-alternatives carries full fidelity.
func (c *Context) parseAlternatives(name string, node *vschema.Node, location string, useDefinitions bool) *types.Schema {
	if len(node.Alternatives) == 0 {
		return nil
	}

	first := node.Alternatives[0]
	var canonicalNode *vschema.Node
	var candidates []*vschema.Node

	if first.Schema != nil {
		// "try" shape: ordered candidates, no conditions.
		canonicalNode = first.Schema
		for _, alt := range node.Alternatives {
			if alt.Schema != nil {
				candidates = append(candidates, alt.Schema)
			}
		}
	} else {
		// "when" shape: conditional branches; then-before-otherwise in
		// declaration order.
		canonicalNode = first.Then
		for _, alt := range node.Alternatives {
			if alt.Then != nil {
				candidates = append(candidates, alt.Then)
			}
			if alt.Otherwise != nil {
				candidates = append(candidates, alt.Otherwise)
			}
		}
	}

	if canonicalNode == nil {
		return nil
	}

	_, canonical := c.Convert(name, canonicalNode, nil, location, useDefinitions, false)
	if canonical == nil {
		return nil
	}

	if c.Options.XProperties {
		var alternatives []*types.Schema
		for _, candidate := range candidates {
			if _, alt := c.Convert("", candidate, nil, location, useDefinitions, true); alt != nil {
				alternatives = append(alternatives, alt)
			}
		}
		canonical.XAlternatives = alternatives
	}

	return canonical
}

func (c *Context) addToBucket(property *types.Schema, bucket, key string, value any) {
	switch bucket {
	case "x-constraint":
		if property.XConstraint == nil {
			property.XConstraint = make(map[string]any)
		}
		property.XConstraint[key] = value
	case "x-format":
		if property.XFormat == nil {
			property.XFormat = make(map[string]any)
		}
		property.XFormat[key] = value
	case "x-convert":
		if property.XConvert == nil {
			property.XConvert = make(map[string]any)
		}
		property.XConvert[key] = value
	}
}

// bucketValue reduces a rule's arguments to its bucket value: true for
// bare rules, the sole argument for single-argument rules, the whole map
// otherwise.
func bucketValue(rule vschema.Rule) any {
	switch len(rule.Args) {
	case 0:
		return true
	case 1:
		for _, v := range rule.Args {
			return v
		}
	}
	return rule.Args
}

// trimRegexDelimiters strips /.../flags literal delimiters, leaving the
// bare pattern source.
func trimRegexDelimiters(pattern string) string {
	if !strings.HasPrefix(pattern, "/") {
		return pattern
	}
	trimmed := strings.TrimPrefix(pattern, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx > 0 {
		return trimmed[:idx]
	}
	return trimmed
}

func renameEntry(list []string, oldName, newName string) {
	for i, v := range list {
		if v == oldName {
			list[i] = newName
		}
	}
}

func intArg(rule *vschema.Rule, key string) *int {
	f := floatArg(rule, key)
	if f == nil {
		return nil
	}
	v := int(*f)
	return &v
}

func floatArg(rule *vschema.Rule, key string) *float64 {
	if rule == nil {
		return nil
	}
	switch v := rule.Arg(key).(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case uint64:
		f := float64(v)
		return &f
	}
	return nil
}
