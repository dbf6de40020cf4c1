// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/validoc/validoc/pkg/types"
	"github.com/validoc/validoc/pkg/vschema"
)

// routeFile is the top-level shape of a route description file.
type routeFile struct {
	Routes []routeSpec `yaml:"routes"`
}

// routeSpec is one declared route.
type routeSpec struct {
	Method      string       `yaml:"method"`
	Methods     []string     `yaml:"methods"`
	Path        string       `yaml:"path"`
	Description string       `yaml:"description"`
	Notes       []string     `yaml:"notes"`
	Tags        []string     `yaml:"tags"`
	Validate    validateSpec `yaml:"validate"`
	Response    *schemaSpec  `yaml:"response"`
	Status      map[int]*schemaSpec `yaml:"status"`
	Settings    *settingsSpec       `yaml:"settings"`
}

// validateSpec holds the per-location schemas of one route.
type validateSpec struct {
	Query   *schemaSpec `yaml:"query"`
	Params  *schemaSpec `yaml:"params"`
	Headers *schemaSpec `yaml:"headers"`
	Payload *schemaSpec `yaml:"payload"`
}

// settingsSpec holds the documentation overrides of one route.
type settingsSpec struct {
	Query       *schemaSpec              `yaml:"query"`
	Params      *schemaSpec              `yaml:"params"`
	Headers     *schemaSpec              `yaml:"headers"`
	Payload     *schemaSpec              `yaml:"payload"`
	Responses   map[string]responseSpec  `yaml:"responses"`
	PayloadType string                   `yaml:"payloadType"`
	Consumes    []string                 `yaml:"consumes"`
	Produces    []string                 `yaml:"produces"`
	ID          string                   `yaml:"id"`
	Deprecated  bool                     `yaml:"deprecated"`
	Security    []map[string][]string    `yaml:"security"`
	Order       int                      `yaml:"order"`
	Meta        map[string]any           `yaml:"meta"`
}

// responseSpec is one declared response override.
type responseSpec struct {
	Description string                    `yaml:"description"`
	Schema      *schemaSpec               `yaml:"schema"`
	Headers     map[string]*types.Schema  `yaml:"headers"`
	Examples    map[string]any            `yaml:"examples"`
}

// schemaSpec is the declarative YAML form of a validation-schema node.
type schemaSpec struct {
	Type        string   `yaml:"type"`
	Presence    string   `yaml:"presence"`
	Label       string   `yaml:"label"`
	Default     any      `yaml:"default"`
	Description string   `yaml:"description"`
	Notes       []string `yaml:"notes"`
	Tags        []string `yaml:"tags"`
	Examples    []any    `yaml:"examples"`
	Valid       []any    `yaml:"valid"`

	Timestamp   bool `yaml:"timestamp"`
	Insensitive bool `yaml:"insensitive"`
	Sparse      bool `yaml:"sparse"`
	Single      bool `yaml:"single"`

	Meta  []map[string]any `yaml:"meta"`
	Rules []ruleSpec       `yaml:"rules"`

	Children     []childSpec   `yaml:"children"`
	Items        []*schemaSpec `yaml:"items"`
	Alternatives []altSpec     `yaml:"alternatives"`
}

// ruleSpec is one declared validation rule.
type ruleSpec struct {
	Name string         `yaml:"name"`
	Args map[string]any `yaml:"args"`
}

// childSpec is one declared object field.
type childSpec struct {
	Key    string      `yaml:"key"`
	Schema *schemaSpec `yaml:"schema"`
}

// altSpec is one declared alternatives branch.
type altSpec struct {
	Schema    *schemaSpec `yaml:"schema"`
	Key       string      `yaml:"key"`
	Then      *schemaSpec `yaml:"then"`
	Otherwise *schemaSpec `yaml:"otherwise"`
}

// LoadFile decodes one route description file.
func LoadFile(path string) ([]types.Route, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var file routeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse route file: %w", err)
	}

	routes := make([]types.Route, 0, len(file.Routes))
	for i, spec := range file.Routes {
		route, err := spec.toRoute()
		if err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
		routes = append(routes, route)
	}
	return routes, nil
}

func (r routeSpec) toRoute() (types.Route, error) {
	if r.Path == "" {
		return types.Route{}, fmt.Errorf("missing path")
	}
	if r.Method == "" && len(r.Methods) == 0 {
		return types.Route{}, fmt.Errorf("missing method")
	}

	route := types.Route{
		Method:      r.Method,
		Methods:     r.Methods,
		Path:        r.Path,
		Description: r.Description,
		Notes:       r.Notes,
		Tags:        r.Tags,
		Validate: types.RouteValidate{
			Query:   nodeOrNil(r.Validate.Query),
			Params:  nodeOrNil(r.Validate.Params),
			Headers: nodeOrNil(r.Validate.Headers),
			Payload: nodeOrNil(r.Validate.Payload),
		},
		ResponseSchema: r.Response.toNode(),
	}

	if len(r.Status) > 0 {
		route.ResponseStatus = make(map[int]*vschema.Node, len(r.Status))
		for code, spec := range r.Status {
			route.ResponseStatus[code] = spec.toNode()
		}
	}

	if r.Settings != nil {
		route.Settings = r.Settings.toSettings()
	}

	return route, nil
}

func (s *settingsSpec) toSettings() *types.RouteSettings {
	settings := &types.RouteSettings{
		Query:       nodeOrNil(s.Query),
		Params:      nodeOrNil(s.Params),
		Headers:     nodeOrNil(s.Headers),
		Payload:     nodeOrNil(s.Payload),
		PayloadType: s.PayloadType,
		Consumes:    s.Consumes,
		Produces:    s.Produces,
		ID:          s.ID,
		Deprecated:  s.Deprecated,
		Security:    s.Security,
		Order:       s.Order,
		Meta:        s.Meta,
	}

	if len(s.Responses) > 0 {
		settings.Responses = make(map[string]types.ResponseOverride, len(s.Responses))
		for key, spec := range s.Responses {
			override := types.ResponseOverride{
				Description: spec.Description,
				Headers:     spec.Headers,
				Examples:    spec.Examples,
			}
			if node := spec.Schema.toNode(); node != nil {
				override.Schema = node
			}
			settings.Responses[key] = override
		}
	}

	return settings
}

// nodeOrNil converts a schema spec into a node valued as any. A nil spec
// must produce a nil interface, not a typed nil pointer, so the builder's
// nil checks keep working.
func nodeOrNil(s *schemaSpec) any {
	node := s.toNode()
	if node == nil {
		return nil
	}
	return node
}

// toNode converts the declarative spec into a schema node.
func (s *schemaSpec) toNode() *vschema.Node {
	if s == nil {
		return nil
	}

	node := &vschema.Node{
		Type:        s.Type,
		Description: s.Description,
		Notes:       s.Notes,
		Tags:        s.Tags,
		Examples:    s.Examples,
		Valids:      s.Valid,
		Meta:        s.Meta,
	}

	node.Flags.Label = s.Label
	node.Flags.Default = s.Default
	node.Flags.Timestamp = s.Timestamp
	node.Flags.Insensitive = s.Insensitive
	node.Flags.Sparse = s.Sparse
	node.Flags.Single = s.Single

	switch s.Presence {
	case "required":
		node.Flags.Presence = vschema.PresenceRequired
	case "optional":
		node.Flags.Presence = vschema.PresenceOptional
	case "forbidden":
		node.Flags.Presence = vschema.PresenceForbidden
	}

	for _, rule := range s.Rules {
		node.Rules = append(node.Rules, vschema.Rule{Name: rule.Name, Args: rule.Args})
	}

	for _, child := range s.Children {
		node.Children = append(node.Children, vschema.Child{
			Key:    child.Key,
			Schema: child.Schema.toNode(),
		})
	}

	for _, item := range s.Items {
		node.Items = append(node.Items, item.toNode())
	}

	for _, alt := range s.Alternatives {
		node.Alternatives = append(node.Alternatives, vschema.Alternative{
			Schema:    alt.Schema.toNode(),
			Key:       alt.Key,
			Then:      alt.Then.toNode(),
			Otherwise: alt.Otherwise.toNode(),
		})
	}

	return node
}
