// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package vschema

// Fluent constructors for building schema nodes in code. Unlike the
// validation libraries these mirror, the builders mutate the receiver and
// return it; share nodes deliberately, not accidentally.

// String returns a new string node.
func String() *Node { return &Node{Type: "string"} }

// Number returns a new number node.
func Number() *Node { return &Node{Type: "number"} }

// Boolean returns a new boolean node.
func Boolean() *Node { return &Node{Type: "boolean"} }

// Date returns a new date node.
func Date() *Node { return &Node{Type: "date"} }

// Binary returns a new binary node.
func Binary() *Node { return &Node{Type: "binary"} }

// Any returns a new any node.
func Any() *Node { return &Node{Type: "any"} }

// Func returns a new func node (documented as an opaque string).
func Func() *Node { return &Node{Type: "func"} }

// Object returns a new object node with the given children, in order.
func Object(children ...Child) *Node {
	return &Node{Type: "object", Children: children}
}

// Key pairs a field name with its schema for use with Object.
func Key(name string, schema *Node) Child {
	return Child{Key: name, Schema: schema}
}

// Array returns a new array node with the given item types, in order.
func Array(items ...*Node) *Node {
	return &Node{Type: "array", Items: items}
}

// Alternatives returns a new alternatives node. Populate with Try or When.
func Alternatives() *Node { return &Node{Type: "alternatives"} }

// Try appends plain candidate schemas, in order.
func (n *Node) Try(candidates ...*Node) *Node {
	for _, c := range candidates {
		n.Alternatives = append(n.Alternatives, Alternative{Schema: c})
	}
	return n
}

// When appends a conditional branch keyed off a sibling field.
func (n *Node) When(key string, then, otherwise *Node) *Node {
	n.Alternatives = append(n.Alternatives, Alternative{Key: key, Then: then, Otherwise: otherwise})
	return n
}

// Keys appends object children, in order.
func (n *Node) Keys(children ...Child) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Required marks the node as required.
func (n *Node) Required() *Node { n.Flags.Presence = PresenceRequired; return n }

// Optional marks the node as explicitly optional.
func (n *Node) Optional() *Node { n.Flags.Presence = PresenceOptional; return n }

// Forbidden marks the node as forbidden; forbidden fields are omitted from
// the generated document entirely.
func (n *Node) Forbidden() *Node { n.Flags.Presence = PresenceForbidden; return n }

// Label sets the node's label.
func (n *Node) Label(label string) *Node { n.Flags.Label = label; return n }

// Default sets the declared default. Pass a func() any for computed defaults.
func (n *Node) Default(v any) *Node { n.Flags.Default = v; return n }

// Description sets the node's description.
func (n *Node) Describe(d string) *Node { n.Description = d; return n }

// Note appends free-form notes.
func (n *Node) Note(notes ...string) *Node { n.Notes = append(n.Notes, notes...); return n }

// Tag appends tags.
func (n *Node) Tag(tags ...string) *Node { n.Tags = append(n.Tags, tags...); return n }

// Example appends an example value.
func (n *Node) Example(v any) *Node { n.Examples = append(n.Examples, v); return n }

// Valid appends allowed values.
func (n *Node) Valid(values ...any) *Node { n.Valids = append(n.Valids, values...); return n }

// Meta appends a metadata annotation object.
func (n *Node) AddMeta(m map[string]any) *Node { n.Meta = append(n.Meta, m); return n }

func (n *Node) rule(name string, args map[string]any) *Node {
	n.Rules = append(n.Rules, Rule{Name: name, Args: args})
	return n
}

// Min adds a min rule (length, value, or item count depending on type).
func (n *Node) Min(limit float64) *Node { return n.rule("min", map[string]any{"limit": limit}) }

// Max adds a max rule.
func (n *Node) Max(limit float64) *Node { return n.rule("max", map[string]any{"limit": limit}) }

// Length adds an exact-length rule.
func (n *Node) Length(limit float64) *Node { return n.rule("length", map[string]any{"limit": limit}) }

// Greater adds an exclusive lower bound.
func (n *Node) Greater(limit float64) *Node { return n.rule("greater", map[string]any{"limit": limit}) }

// Less adds an exclusive upper bound.
func (n *Node) Less(limit float64) *Node { return n.rule("less", map[string]any{"limit": limit}) }

// Precision adds a decimal-precision rule.
func (n *Node) Precision(digits float64) *Node {
	return n.rule("precision", map[string]any{"limit": digits})
}

// Multiple adds a multiple-of rule.
func (n *Node) Multiple(base float64) *Node { return n.rule("multiple", map[string]any{"base": base}) }

// Integer constrains a number node to integers.
func (n *Node) Integer() *Node { return n.rule("integer", nil) }

// Positive constrains a number node to positive values.
func (n *Node) Positive() *Node { return n.rule("positive", nil) }

// Negative constrains a number node to negative values.
func (n *Node) Negative() *Node { return n.rule("negative", nil) }

// Regex adds a pattern rule with the literal regex source.
func (n *Node) Regex(pattern string) *Node {
	return n.rule("regex", map[string]any{"pattern": pattern})
}

// Unit names the unit of a numeric value.
func (n *Node) Unit(name string) *Node { return n.rule("unit", map[string]any{"name": name}) }

// Email adds an email format rule.
func (n *Node) Email() *Node { return n.rule("email", nil) }

// URI adds a uri format rule.
func (n *Node) URI() *Node { return n.rule("uri", nil) }

// Guid adds a guid format rule.
func (n *Node) Guid() *Node { return n.rule("guid", nil) }

// Hex adds a hex format rule.
func (n *Node) Hex() *Node { return n.rule("hex", nil) }

// Hostname adds a hostname format rule.
func (n *Node) Hostname() *Node { return n.rule("hostname", nil) }

// IsoDate adds an isoDate format rule.
func (n *Node) IsoDate() *Node { return n.rule("isoDate", nil) }

// IP adds an ip format rule.
func (n *Node) IP() *Node { return n.rule("ip", nil) }

// Alphanum adds an alphanum format rule.
func (n *Node) Alphanum() *Node { return n.rule("alphanum", nil) }

// Token adds a token format rule.
func (n *Node) Token() *Node { return n.rule("token", nil) }

// CreditCard adds a creditCard format rule.
func (n *Node) CreditCard() *Node { return n.rule("creditCard", nil) }

// Lowercase adds a lowercase conversion rule.
func (n *Node) Lowercase() *Node { return n.rule("lowercase", nil) }

// Uppercase adds an uppercase conversion rule.
func (n *Node) Uppercase() *Node { return n.rule("uppercase", nil) }

// Trim adds a trim conversion rule.
func (n *Node) Trim() *Node { return n.rule("trim", nil) }

// Insensitive marks string matching as case-insensitive.
func (n *Node) CaseInsensitive() *Node { n.Flags.Insensitive = true; return n }

// Unique requires array items to be unique.
func (n *Node) Unique() *Node { return n.rule("unique", nil) }

// Sparse allows undefined array entries.
func (n *Node) AllowSparse() *Node { n.Flags.Sparse = true; return n }

// Single allows a bare item where an array is expected.
func (n *Node) AllowSingle() *Node { n.Flags.Single = true; return n }

// Timestamp marks a date node as an epoch timestamp.
func (n *Node) AsTimestamp() *Node { n.Flags.Timestamp = true; return n }
