// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package schema implements the schema-translation core: the definition
// registry, the recursive property converter, and the parameter projector.
package schema

import (
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/validoc/validoc/pkg/types"
)

// genericPrefix is the prefix used for synthesized definition names.
const genericPrefix = "Model"

// Registry stores named schema definitions for one namespace of a generation
// pass. It de-duplicates structurally identical definitions and renames on
// collision; registry operations never fail.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*types.Schema
	hashes  map[string]uint64

	// reuse enables structural de-duplication across candidate names.
	reuse bool

	// useLabelPrefix selects the collision-renaming policy: synthesize from
	// the colliding candidate name rather than the generic counter.
	useLabelPrefix bool
}

// NewRegistry creates a registry for one namespace.
func NewRegistry(reuse, useLabelPrefix bool) *Registry {
	return &Registry{
		schemas:        make(map[string]*types.Schema),
		hashes:         make(map[string]uint64),
		reuse:          reuse,
		useLabelPrefix: useLabelPrefix,
	}
}

// Append registers a definition under candidateName and returns the name it
// ended up stored (or reused) under. Transient bookkeeping is stripped before
// comparison and storage, so structurally identical definitions compare equal
// regardless of how their optional-field lists were accumulated.
func (r *Registry) Append(candidateName string, definition *types.Schema) string {
	def := definition.Clone()
	def.Optional = nil
	def.PropOrder = nil

	r.mu.Lock()
	defer r.mu.Unlock()

	if candidateName != "" {
		if existing, ok := r.schemas[candidateName]; ok {
			if reflect.DeepEqual(existing, def) {
				return candidateName
			}
			// Same name, different content: rename rather than clobber.
			name := r.nextName(r.renamePrefix(candidateName))
			r.store(name, def)
			return name
		}
	}

	if r.reuse {
		if name, ok := r.findEqual(def); ok {
			return name
		}
	}

	name := candidateName
	if name == "" {
		name = r.nextName(genericPrefix)
	}
	r.store(name, def)
	return name
}

// Get returns a definition by name.
func (r *Registry) Get(name string) (*types.Schema, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[name]
	return s, ok
}

// Has checks if a definition exists in the registry.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.schemas[name]
	return ok
}

// All returns a copy of the name→definition map.
func (r *Registry) All() map[string]*types.Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*types.Schema, len(r.schemas))
	for k, v := range r.schemas {
		out[k] = v
	}
	return out
}

// Names returns all definition names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered definitions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.schemas)
}

func (r *Registry) store(name string, def *types.Schema) {
	r.schemas[name] = def
	r.hashes[name] = Fingerprint(def)
}

// findEqual looks for any stored definition deep-equal to def,
// fingerprint-first to avoid comparing every entry.
func (r *Registry) findEqual(def *types.Schema) (string, bool) {
	h := Fingerprint(def)
	for _, name := range r.sortedNames() {
		if r.hashes[name] != h {
			continue
		}
		if reflect.DeepEqual(r.schemas[name], def) {
			return name, true
		}
	}
	return "", false
}

func (r *Registry) renamePrefix(candidateName string) string {
	if r.useLabelPrefix {
		return candidateName
	}
	return genericPrefix
}

// nextName synthesizes "<prefix> N" where N is one past the highest numeric
// suffix among existing names starting with exactly "<prefix> ". Names with
// no parseable suffix count as zero.
func (r *Registry) nextName(prefix string) string {
	highest := 0
	for name := range r.schemas {
		if !strings.HasPrefix(name, prefix+" ") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(name, prefix+" "))
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return prefix + " " + strconv.Itoa(highest+1)
}

func (r *Registry) sortedNames() []string {
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
