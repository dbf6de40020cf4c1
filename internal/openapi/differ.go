// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/validoc/validoc/pkg/types"
)

// DiffType represents the type of change detected.
type DiffType string

const (
	// DiffTypeAdded indicates a new item was added.
	DiffTypeAdded DiffType = "added"

	// DiffTypeRemoved indicates an item was removed.
	DiffTypeRemoved DiffType = "removed"

	// DiffTypeModified indicates an item was modified.
	DiffTypeModified DiffType = "modified"
)

// PathChange represents a change to a path/operation.
type PathChange struct {
	Type        DiffType
	Path        string
	Method      string
	Description string
}

// DefinitionChange represents a change to a registered definition.
type DefinitionChange struct {
	Type        DiffType
	Name        string
	Description string
}

// DiffResult contains the differences between two documents.
type DiffResult struct {
	// PathChanges contains all path/operation changes.
	PathChanges []PathChange

	// DefinitionChanges contains all definition changes.
	DefinitionChanges []DefinitionChange

	// HasBreakingChanges indicates if any breaking changes were detected.
	HasBreakingChanges bool

	// Summary provides a human-readable summary of changes.
	Summary string
}

// IsEmpty returns true if there are no differences.
func (d *DiffResult) IsEmpty() bool {
	return len(d.PathChanges) == 0 && len(d.DefinitionChanges) == 0
}

// Differ compares two generated documents.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff compares two documents and returns the differences.
func (d *Differ) Diff(a, b *types.Document) (*DiffResult, error) {
	result := &DiffResult{
		PathChanges:       []PathChange{},
		DefinitionChanges: []DefinitionChange{},
	}

	d.diffPaths(a, b, result)
	d.diffDefinitions(a, b, result)

	result.HasBreakingChanges = d.detectBreakingChanges(result)
	result.Summary = d.generateSummary(result)

	return result, nil
}

// diffPaths compares the paths between two documents.
func (d *Differ) diffPaths(a, b *types.Document, result *DiffResult) {
	aPaths := make(map[string]types.PathItem)
	bPaths := make(map[string]types.PathItem)

	if a != nil && a.Paths != nil {
		aPaths = a.Paths
	}
	if b != nil && b.Paths != nil {
		bPaths = b.Paths
	}

	for path, aItem := range aPaths {
		bItem, exists := bPaths[path]
		if !exists {
			for _, method := range aItem.Methods() {
				result.PathChanges = append(result.PathChanges, PathChange{
					Type:        DiffTypeRemoved,
					Path:        path,
					Method:      strings.ToUpper(method),
					Description: fmt.Sprintf("Removed %s %s", strings.ToUpper(method), path),
				})
			}
		} else {
			d.diffPathItem(path, aItem, bItem, result)
		}
	}

	for path, bItem := range bPaths {
		if _, exists := aPaths[path]; !exists {
			for _, method := range bItem.Methods() {
				result.PathChanges = append(result.PathChanges, PathChange{
					Type:        DiffTypeAdded,
					Path:        path,
					Method:      strings.ToUpper(method),
					Description: fmt.Sprintf("Added %s %s", strings.ToUpper(method), path),
				})
			}
		}
	}
}

// diffPathItem compares operations within a path item.
func (d *Differ) diffPathItem(path string, a, b types.PathItem, result *DiffResult) {
	for _, method := range []string{"get", "put", "post", "delete", "options", "head", "patch"} {
		aOp := a.Operation(method)
		bOp := b.Operation(method)
		name := strings.ToUpper(method)

		switch {
		case aOp == nil && bOp != nil:
			result.PathChanges = append(result.PathChanges, PathChange{
				Type:        DiffTypeAdded,
				Path:        path,
				Method:      name,
				Description: fmt.Sprintf("Added %s %s", name, path),
			})
		case aOp != nil && bOp == nil:
			result.PathChanges = append(result.PathChanges, PathChange{
				Type:        DiffTypeRemoved,
				Path:        path,
				Method:      name,
				Description: fmt.Sprintf("Removed %s %s", name, path),
			})
		case aOp != nil && bOp != nil:
			if d.operationModified(aOp, bOp) {
				result.PathChanges = append(result.PathChanges, PathChange{
					Type:        DiffTypeModified,
					Path:        path,
					Method:      name,
					Description: fmt.Sprintf("Modified %s %s", name, path),
				})
			}
		}
	}
}

// operationModified checks if an operation was modified.
func (d *Differ) operationModified(a, b *types.Operation) bool {
	if a.Summary != b.Summary ||
		a.Description != b.Description ||
		a.OperationID != b.OperationID ||
		a.Deprecated != b.Deprecated {
		return true
	}

	if len(a.Parameters) != len(b.Parameters) {
		return true
	}

	if len(a.Responses) != len(b.Responses) {
		return true
	}

	if len(a.Tags) != len(b.Tags) {
		return true
	}

	return false
}

// diffDefinitions compares the registered definitions between two documents.
func (d *Differ) diffDefinitions(a, b *types.Document, result *DiffResult) {
	aDefs := make(map[string]*types.Schema)
	bDefs := make(map[string]*types.Schema)

	if a != nil && a.Definitions != nil {
		aDefs = a.Definitions
	}
	if b != nil && b.Definitions != nil {
		bDefs = b.Definitions
	}

	for name, aDef := range aDefs {
		bDef, exists := bDefs[name]
		if !exists {
			result.DefinitionChanges = append(result.DefinitionChanges, DefinitionChange{
				Type:        DiffTypeRemoved,
				Name:        name,
				Description: fmt.Sprintf("Removed definition: %s", name),
			})
		} else if d.definitionModified(aDef, bDef) {
			result.DefinitionChanges = append(result.DefinitionChanges, DefinitionChange{
				Type:        DiffTypeModified,
				Name:        name,
				Description: fmt.Sprintf("Modified definition: %s", name),
			})
		}
	}

	for name := range bDefs {
		if _, exists := aDefs[name]; !exists {
			result.DefinitionChanges = append(result.DefinitionChanges, DefinitionChange{
				Type:        DiffTypeAdded,
				Name:        name,
				Description: fmt.Sprintf("Added definition: %s", name),
			})
		}
	}
}

// definitionModified checks if a definition was modified.
func (d *Differ) definitionModified(a, b *types.Schema) bool {
	if a == nil || b == nil {
		return a != b
	}

	if a.Type != b.Type ||
		a.Format != b.Format ||
		a.Ref != b.Ref ||
		a.Description != b.Description {
		return true
	}

	if len(a.Properties) != len(b.Properties) {
		return true
	}

	if len(a.Required) != len(b.Required) {
		return true
	}

	return false
}

// detectBreakingChanges checks if any changes are breaking.
func (d *Differ) detectBreakingChanges(result *DiffResult) bool {
	for _, change := range result.PathChanges {
		if change.Type == DiffTypeRemoved {
			return true
		}
	}

	for _, change := range result.DefinitionChanges {
		if change.Type == DiffTypeRemoved {
			return true
		}
	}

	return false
}

// generateSummary creates a human-readable summary of changes.
func (d *Differ) generateSummary(result *DiffResult) string {
	if result.IsEmpty() {
		return "No changes detected"
	}

	var sb strings.Builder

	pathAdded, pathRemoved, pathModified := 0, 0, 0
	for _, c := range result.PathChanges {
		switch c.Type {
		case DiffTypeAdded:
			pathAdded++
		case DiffTypeRemoved:
			pathRemoved++
		case DiffTypeModified:
			pathModified++
		}
	}

	defAdded, defRemoved, defModified := 0, 0, 0
	for _, c := range result.DefinitionChanges {
		switch c.Type {
		case DiffTypeAdded:
			defAdded++
		case DiffTypeRemoved:
			defRemoved++
		case DiffTypeModified:
			defModified++
		}
	}

	var parts []string

	if pathAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) added", pathAdded))
	}
	if pathRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) removed", pathRemoved))
	}
	if pathModified > 0 {
		parts = append(parts, fmt.Sprintf("%d path(s) modified", pathModified))
	}
	if defAdded > 0 {
		parts = append(parts, fmt.Sprintf("%d definition(s) added", defAdded))
	}
	if defRemoved > 0 {
		parts = append(parts, fmt.Sprintf("%d definition(s) removed", defRemoved))
	}
	if defModified > 0 {
		parts = append(parts, fmt.Sprintf("%d definition(s) modified", defModified))
	}

	sb.WriteString(strings.Join(parts, ", "))

	if result.HasBreakingChanges {
		sb.WriteString(" [BREAKING CHANGES DETECTED]")
	}

	return sb.String()
}

// FormatDiff returns a formatted string representation of the diff.
func FormatDiff(result *DiffResult) string {
	if result.IsEmpty() {
		return "No differences found."
	}

	var sb strings.Builder

	sb.WriteString("=== Document Diff ===\n\n")
	sb.WriteString(result.Summary)
	sb.WriteString("\n\n")

	if len(result.PathChanges) > 0 {
		sb.WriteString("--- Path Changes ---\n")

		changes := make([]PathChange, len(result.PathChanges))
		copy(changes, result.PathChanges)
		sort.Slice(changes, func(i, j int) bool {
			if changes[i].Path != changes[j].Path {
				return changes[i].Path < changes[j].Path
			}
			return changes[i].Method < changes[j].Method
		})

		for _, c := range changes {
			symbol := "  "
			switch c.Type {
			case DiffTypeAdded:
				symbol = "+ "
			case DiffTypeRemoved:
				symbol = "- "
			case DiffTypeModified:
				symbol = "~ "
			}
			sb.WriteString(fmt.Sprintf("%s%s %s\n", symbol, c.Method, c.Path))
		}
		sb.WriteString("\n")
	}

	if len(result.DefinitionChanges) > 0 {
		sb.WriteString("--- Definition Changes ---\n")

		changes := make([]DefinitionChange, len(result.DefinitionChanges))
		copy(changes, result.DefinitionChanges)
		sort.Slice(changes, func(i, j int) bool {
			return changes[i].Name < changes[j].Name
		})

		for _, c := range changes {
			symbol := "  "
			switch c.Type {
			case DiffTypeAdded:
				symbol = "+ "
			case DiffTypeRemoved:
				symbol = "- "
			case DiffTypeModified:
				symbol = "~ "
			}
			sb.WriteString(fmt.Sprintf("%s%s\n", symbol, c.Name))
		}
	}

	return sb.String()
}
