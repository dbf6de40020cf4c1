// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package schema

import (
	"fmt"

	"github.com/validoc/validoc/pkg/types"
	"github.com/validoc/validoc/pkg/vschema"
)

// Diagnostic severity levels passed to the logging callback.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
)

// LogFunc receives severity-tagged diagnostics. Diagnostics are advisory:
// generation always produces a document, however degraded.
type LogFunc func(level, message string)

// DefinitionPrefix values select the collision-renaming policy.
const (
	PrefixDefault  = "default"
	PrefixUseLabel = "useLabel"
)

// Options is the configuration surface recognized by the core.
type Options struct {
	// ReuseDefinitions enables structural de-duplication of definitions
	// registered under different candidate names.
	ReuseDefinitions bool

	// DefinitionPrefix is "default" or "useLabel".
	DefinitionPrefix string

	// XProperties toggles all extended x-* extraction.
	XProperties bool

	// AcceptToProduce promotes an enum-carrying accept header parameter
	// into the operation's produces list.
	AcceptToProduce bool

	// PayloadType is "json" or "form".
	PayloadType string
}

// Context is the shared mutable state of one document-generation pass: both
// definition namespaces and both node-identity conversion caches. A context
// must not be reused across passes; definition names and cache entries are
// only valid relative to one registry's accumulated contents.
type Context struct {
	Options Options
	Log     LogFunc

	// Definitions is the primary namespace ($ref: #/definitions/...).
	Definitions *Registry

	// AltDefinitions documents alternative branches without polluting the
	// primary de-duplicated set ($ref: #/x-alt-definitions/...).
	AltDefinitions *Registry

	cache    map[*vschema.Node]*types.Schema
	altCache map[*vschema.Node]*types.Schema
}

// NewContext creates a fresh generation context. Callers running concurrent
// document generations must construct one context per call; the core does
// not lock across passes.
func NewContext(opts Options) *Context {
	useLabel := opts.DefinitionPrefix == PrefixUseLabel
	return &Context{
		Options:        opts,
		Definitions:    NewRegistry(opts.ReuseDefinitions, useLabel),
		AltDefinitions: NewRegistry(opts.ReuseDefinitions, useLabel),
		cache:          make(map[*vschema.Node]*types.Schema),
		altCache:       make(map[*vschema.Node]*types.Schema),
	}
}

// Logf emits a severity-tagged diagnostic if a callback is installed.
func (c *Context) Logf(level, format string, args ...any) {
	if c.Log != nil {
		c.Log(level, fmt.Sprintf(format, args...))
	}
}

func (c *Context) registryFor(isAlternative bool) *Registry {
	if isAlternative {
		return c.AltDefinitions
	}
	return c.Definitions
}

func (c *Context) cacheFor(isAlternative bool) map[*vschema.Node]*types.Schema {
	if isAlternative {
		return c.altCache
	}
	return c.cache
}

// refPrefixFor returns the $ref prefix for a namespace.
func refPrefixFor(isAlternative bool) string {
	if isAlternative {
		return "#/x-alt-definitions/"
	}
	return "#/definitions/"
}
