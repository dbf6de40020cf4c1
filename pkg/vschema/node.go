// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package vschema models the introspected description of a validation schema:
// a tree of typed nodes with rules, flags, metadata, and children. Host
// applications build these nodes (directly or via the fluent constructors) and
// hand them to the generator, which only ever reads them.
package vschema

// Presence values carried by a node's flags.
const (
	PresenceRequired  = "required"
	PresenceOptional  = "optional"
	PresenceForbidden = "forbidden"
)

// Well-known metadata keys consulted by the generator.
const (
	// MetaSwaggerType overrides the documented type for constructs the
	// converter cannot derive one for (e.g. "file" for uploads).
	MetaSwaggerType = "swaggerType"

	// MetaDisableDropdown suppresses enum extraction for a node whose
	// allowed-values list is an implementation detail, not a contract.
	MetaDisableDropdown = "disableDropdown"
)

// Rule is a named validation rule with its arguments, e.g. {min, {limit: 5}}.
type Rule struct {
	Name string         `json:"name" yaml:"name"`
	Args map[string]any `json:"args,omitempty" yaml:"args,omitempty"`
}

// Flags holds a node's modifier flags.
type Flags struct {
	// Presence is one of "", required, optional, forbidden.
	Presence string `json:"presence,omitempty" yaml:"presence,omitempty"`

	// Label is the human-readable name attached to the node.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Default is the declared default value. A func() any value is invoked
	// by the converter to obtain the documented default.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`

	// Timestamp marks a date node that validates epoch timestamps.
	Timestamp bool `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`

	// Insensitive marks a string node that matches case-insensitively.
	Insensitive bool `json:"insensitive,omitempty" yaml:"insensitive,omitempty"`

	// Sparse and Single are array modifier flags.
	Sparse bool `json:"sparse,omitempty" yaml:"sparse,omitempty"`
	Single bool `json:"single,omitempty" yaml:"single,omitempty"`
}

// Child is one named entry of an object node. Order is declaration order.
type Child struct {
	Key    string `json:"key" yaml:"key"`
	Schema *Node  `json:"schema" yaml:"schema"`
}

// Alternative is one branch of an alternatives node. A plain candidate (the
// "try" shape) carries only Schema; a conditional branch (the "when" shape)
// carries the sibling key it switches on plus Then/Otherwise clauses.
type Alternative struct {
	Schema    *Node  `json:"schema,omitempty" yaml:"schema,omitempty"`
	Key       string `json:"key,omitempty" yaml:"key,omitempty"`
	Then      *Node  `json:"then,omitempty" yaml:"then,omitempty"`
	Otherwise *Node  `json:"otherwise,omitempty" yaml:"otherwise,omitempty"`
}

// Node is one introspected validation-schema node. Nodes are externally owned,
// may be shared between routes, and are identified by pointer: the generator
// caches conversions per *Node, so two structurally identical nodes built
// separately are converted separately.
type Node struct {
	// Type is the node's type tag: string, number, boolean, date, binary,
	// object, array, alternatives, any, func, or an extension tag.
	Type string `json:"type" yaml:"type"`

	Flags Flags  `json:"flags,omitempty" yaml:"flags,omitempty"`
	Rules []Rule `json:"rules,omitempty" yaml:"rules,omitempty"`

	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Notes       []string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Examples    []any    `json:"examples,omitempty" yaml:"examples,omitempty"`

	// Valids is the allowed-values list exposed by the introspection, used
	// for enum extraction.
	Valids []any `json:"valids,omitempty" yaml:"valids,omitempty"`

	// Meta is the ordered list of free-form metadata annotation objects.
	Meta []map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`

	// Children holds object entries, in declaration order.
	Children []Child `json:"children,omitempty" yaml:"children,omitempty"`

	// Items holds array item-type schemas, in declaration order.
	Items []*Node `json:"items,omitempty" yaml:"items,omitempty"`

	// Alternatives holds union/conditional branches, in declaration order.
	Alternatives []Alternative `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

// Rule returns the first rule with the given name, or nil.
func (n *Node) Rule(name string) *Rule {
	for i := range n.Rules {
		if n.Rules[i].Name == name {
			return &n.Rules[i]
		}
	}
	return nil
}

// HasRule reports whether the node carries a rule with the given name.
func (n *Node) HasRule(name string) bool {
	return n.Rule(name) != nil
}

// MetaValue returns the first metadata entry value for the given key.
func (n *Node) MetaValue(key string) (any, bool) {
	for _, m := range n.Meta {
		if v, ok := m[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// MetaString returns the first metadata entry for key as a string.
func (n *Node) MetaString(key string) string {
	if v, ok := n.MetaValue(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// MetaBool returns the first metadata entry for key as a bool.
func (n *Node) MetaBool(key string) bool {
	if v, ok := n.MetaValue(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

// Arg returns a rule argument by name, or nil.
func (r *Rule) Arg(name string) any {
	if r == nil || r.Args == nil {
		return nil
	}
	return r.Args[name]
}
