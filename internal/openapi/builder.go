// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package openapi assembles Swagger documents from route records: one
// operation per concrete route method, with parameters projected from the
// route's validation schemas and responses merged from discovered schemas
// and user overrides.
package openapi

import (
	"sort"
	"strings"

	"github.com/validoc/validoc/internal/config"
	"github.com/validoc/validoc/internal/schema"
	"github.com/validoc/validoc/internal/util"
	"github.com/validoc/validoc/pkg/types"
	"github.com/validoc/validoc/pkg/vschema"
)

// wildcardMethods is the expansion of a "*" route method.
var wildcardMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

// hiddenModelLabel names the placeholder definition substituted for
// programmatic validators that cannot be documented.
const hiddenModelLabel = "Hidden Model"

// Builder constructs Swagger documents from routes and configuration.
type Builder struct {
	config *config.Config
	log    schema.LogFunc
}

// NewBuilder creates a document builder. log may be nil.
func NewBuilder(cfg *config.Config, log schema.LogFunc) *Builder {
	return &Builder{
		config: cfg,
		log:    log,
	}
}

// Build runs one full generation pass over routes and returns the document.
// Generation never fails: undocumentable constructs degrade to placeholders
// and diagnostics through the builder's log callback.
func (b *Builder) Build(routes []types.Route) *types.Document {
	gen := b.config.Generation
	ctx := schema.NewContext(schema.Options{
		ReuseDefinitions: gen.ReuseDefinitions,
		DefinitionPrefix: gen.DefinitionPrefix,
		XProperties:      gen.XProperties,
		AcceptToProduce:  gen.AcceptToProduce,
		PayloadType:      gen.PayloadType,
	})
	ctx.Log = b.log

	doc := &types.Document{
		Swagger:  "2.0",
		Info:     b.buildInfo(),
		Host:     b.config.Swagger.Host,
		BasePath: b.config.Swagger.BasePath,
		Schemes:  b.config.Swagger.Schemes,
		Consumes: b.config.Swagger.Consumes,
		Produces: b.config.Swagger.Produces,
		Paths:    make(map[string]types.PathItem),
		Tags:     b.buildTags(),
	}

	for _, route := range routes {
		for _, method := range expandMethods(route) {
			path, op := b.buildOperation(ctx, method, route)
			item := doc.Paths[path]
			item.SetOperation(strings.ToLower(method), op)
			doc.Paths[path] = item
		}
	}

	if ctx.Definitions.Count() > 0 {
		doc.Definitions = ctx.Definitions.All()
	}
	if ctx.AltDefinitions.Count() > 0 {
		doc.XAltDefinitions = ctx.AltDefinitions.All()
	}

	if schemes := b.config.Swagger.Security.Schemes; len(schemes) > 0 {
		doc.SecurityDefinitions = b.buildSecurityDefinitions(schemes)
		doc.Security = b.buildDefaultSecurity()
	}

	return doc
}

// expandMethods resolves a route registration into concrete HTTP methods:
// the method list when given, the wildcard expansion for "*", the single
// method otherwise.
func expandMethods(route types.Route) []string {
	if len(route.Methods) > 0 {
		methods := make([]string, len(route.Methods))
		for i, m := range route.Methods {
			methods[i] = strings.ToUpper(m)
		}
		return methods
	}
	if route.Method == "*" {
		return wildcardMethods
	}
	return []string{strings.ToUpper(route.Method)}
}

// buildOperation assembles one operation for one concrete method. It
// returns the final path (optionality markers stripped) together with the
// operation.
func (b *Builder) buildOperation(ctx *schema.Context, method string, route types.Route) (string, *types.Operation) {
	settings := route.Settings
	if settings == nil {
		settings = &types.RouteSettings{}
	}

	op := &types.Operation{
		Summary:     route.Description,
		Description: strings.Join(route.Notes, "\n\n"),
		Deprecated:  settings.Deprecated,
		Security:    settings.Security,
		XMeta:       settings.Meta,
		XOrder:      settings.Order,
	}

	querySchema := b.resolveSchema(ctx, route.Path, "query", route.Validate.Query, settings.Query)
	paramsSchema := b.resolveSchema(ctx, route.Path, "path", route.Validate.Params, settings.Params)
	headersSchema := b.resolveSchema(ctx, route.Path, "header", route.Validate.Headers, settings.Headers)
	payloadSchema := b.resolveSchema(ctx, route.Path, "body", route.Validate.Payload, settings.Payload)

	headerParams := b.projectLocation(ctx, headersSchema, "header")
	if ctx.Options.AcceptToProduce {
		var promoted []string
		headerParams, promoted = promoteAcceptHeader(headerParams)
		if len(promoted) > 0 {
			op.Produces = promoted
		}
	}

	pathParams := b.buildPathParams(ctx, paramsSchema, route.Path)
	queryParams := b.projectLocation(ctx, querySchema, "query")

	payloadParams, consumes := b.buildPayloadParams(ctx, payloadSchema, settings)
	op.Consumes = consumes

	params := make([]types.Parameter, 0, len(headerParams)+len(pathParams)+len(queryParams)+len(payloadParams))
	params = append(params, headerParams...)
	params = append(params, pathParams...)
	params = append(params, queryParams...)
	params = append(params, payloadParams...)
	op.Parameters = params

	// A caller documenting its own content-type header owns content
	// negotiation; auto-detected consumes would conflict with it.
	for _, p := range params {
		if p.In == "header" && strings.EqualFold(p.Name, "content-type") {
			op.Consumes = nil
			break
		}
	}

	if len(settings.Consumes) > 0 {
		op.Consumes = settings.Consumes
	}
	if len(settings.Produces) > 0 {
		op.Produces = settings.Produces
	}

	op.Responses = BuildResponses(ctx, route.ResponseSchema, route.ResponseStatus, settings.Responses)

	finalPath := strings.ReplaceAll(route.Path, "?}", "}")
	op.Tags = b.operationTags(route, finalPath)

	op.OperationID = settings.ID
	if op.OperationID == "" {
		op.OperationID = util.OperationID(method, finalPath)
	}

	return finalPath, op
}

// resolveSchema resolves the effective schema for one location: a settings
// override fully replaces the route-level schema. A payload value given as a
// bare field map is wrapped into an object node; programmatic validators
// cannot be documented and degrade to a hidden placeholder, except for path
// parameters where an undescribable parameter is dropped outright.
func (b *Builder) resolveSchema(ctx *schema.Context, path, location string, routeLevel, override any) *vschema.Node {
	value := routeLevel
	if override != nil {
		value = override
	}
	if value == nil {
		return nil
	}
	if node, ok := value.(*vschema.Node); ok {
		return node
	}
	if location == "body" {
		if fields, ok := value.(map[string]*vschema.Node); ok {
			return wrapFieldMap(fields)
		}
	}
	if location == "path" {
		ctx.Logf(schema.LevelWarning, "%s: programmatic %s validator cannot be documented, parameters dropped", path, location)
		return nil
	}
	ctx.Logf(schema.LevelWarning, "%s: programmatic %s validator cannot be documented, substituting placeholder", path, location)
	return vschema.Object().Label(hiddenModelLabel)
}

// wrapFieldMap lifts a bare field→schema map into an object node. Maps carry
// no declaration order, so children are sorted by key to keep output stable.
func wrapFieldMap(fields map[string]*vschema.Node) *vschema.Node {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	node := vschema.Object()
	for _, key := range keys {
		node.Keys(vschema.Key(key, fields[key]))
	}
	return node
}

// projectLocation converts a location schema inline and flattens it into
// parameter descriptors.
func (b *Builder) projectLocation(ctx *schema.Context, node *vschema.Node, location string) []types.Parameter {
	if node == nil {
		return nil
	}
	_, converted := ctx.Convert("", node, nil, location, false, false)
	return schema.FromProperties(converted, location)
}

// buildPathParams projects path parameters and derives required-ness from
// the path template for parameters the schema left unspecified: {name}
// means required, {name?} means optional. Optional path parameters render
// fine but fail strict validators, so they get a warning.
func (b *Builder) buildPathParams(ctx *schema.Context, node *vschema.Node, path string) []types.Parameter {
	if node == nil {
		return nil
	}
	_, converted := ctx.Convert("", node, nil, "path", false, false)
	params := schema.FromProperties(converted, "path")

	explicit := make(map[string]bool)
	if converted != nil {
		for _, name := range converted.Required {
			explicit[name] = true
		}
		for _, name := range converted.Optional {
			explicit[name] = true
		}
	}

	for i := range params {
		if !explicit[params[i].Name] {
			params[i].Required = !strings.Contains(path, "{"+params[i].Name+"?}")
		}
		if !params[i].Required {
			ctx.Logf(schema.LevelWarning, "%s: optional path parameter %q is not valid against strict validators", path, params[i].Name)
		}
	}
	return params
}

// buildPayloadParams documents the payload per the effective payload mode.
// JSON mode nests a single body parameter; form mode flattens each payload
// field into formData and pins consumes to urlencoded, or multipart when a
// file upload is present. Returns the parameters and the detected consumes.
func (b *Builder) buildPayloadParams(ctx *schema.Context, node *vschema.Node, settings *types.RouteSettings) ([]types.Parameter, []string) {
	if node == nil {
		return nil, nil
	}

	payloadType := settings.PayloadType
	if payloadType == "" {
		payloadType = ctx.Options.PayloadType
	}

	if payloadType == "form" {
		_, converted := ctx.Convert("", node, nil, "formData", false, false)
		params := schema.FromProperties(converted, "formData")
		consumes := []string{"application/x-www-form-urlencoded"}
		if containsFileType(converted) {
			consumes = []string{"multipart/form-data"}
		}
		return params, consumes
	}

	_, converted := ctx.Convert("", node, nil, "body", true, false)
	return schema.FromProperties(converted, "body"), nil
}

// containsFileType reports whether a converted schema carries a file-typed
// property at any depth. File uploads force multipart even when nested.
func containsFileType(s *types.Schema) bool {
	if s == nil {
		return false
	}
	if s.Type == "file" {
		return true
	}
	for _, p := range s.Properties {
		if containsFileType(p) {
			return true
		}
	}
	return containsFileType(s.Items)
}

// promoteAcceptHeader moves an enum-carrying accept header into produces,
// default value first, and drops the header parameter. Headers without an
// enum stay as ordinary parameters.
func promoteAcceptHeader(params []types.Parameter) ([]types.Parameter, []string) {
	for i, p := range params {
		if !strings.EqualFold(p.Name, "accept") || len(p.Enum) == 0 {
			continue
		}
		produces := make([]string, 0, len(p.Enum))
		for _, v := range p.Enum {
			if s, ok := v.(string); ok {
				produces = append(produces, s)
			}
		}
		defaultValue, _ := p.Default.(string)
		sort.Slice(produces, func(a, b int) bool {
			if produces[a] == defaultValue {
				return true
			}
			if produces[b] == defaultValue {
				return false
			}
			return produces[a] < produces[b]
		})
		rest := make([]types.Parameter, 0, len(params)-1)
		rest = append(rest, params[:i]...)
		rest = append(rest, params[i+1:]...)
		return rest, produces
	}
	return params, nil
}

// operationTags picks the operation's grouping tags: the route's own tags
// minus the reserved documentation marker, or the first path segment when
// path grouping is configured.
func (b *Builder) operationTags(route types.Route, path string) []string {
	if b.config.Generation.Grouping == "path" {
		if segment := util.FirstSegment(path); segment != "" {
			return []string{segment}
		}
		return nil
	}
	var tags []string
	for _, tag := range route.Tags {
		if tag == b.config.Generation.RouteTag {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// buildInfo constructs the Info object from configuration.
func (b *Builder) buildInfo() types.Info {
	cfg := b.config.Swagger.Info
	info := types.Info{
		Title:          cfg.Title,
		Description:    cfg.Description,
		TermsOfService: cfg.TermsOfService,
		Version:        cfg.Version,
	}

	if cfg.Contact.Name != "" || cfg.Contact.Email != "" || cfg.Contact.URL != "" {
		info.Contact = &types.Contact{
			Name:  cfg.Contact.Name,
			URL:   cfg.Contact.URL,
			Email: cfg.Contact.Email,
		}
	}

	if cfg.License.Name != "" {
		info.License = &types.License{
			Name: cfg.License.Name,
			URL:  cfg.License.URL,
		}
	}

	return info
}

// buildTags constructs the document tag list from configuration.
func (b *Builder) buildTags() []types.Tag {
	if len(b.config.Swagger.Tags) == 0 {
		return nil
	}
	tags := make([]types.Tag, 0, len(b.config.Swagger.Tags))
	for _, t := range b.config.Swagger.Tags {
		tags = append(tags, types.Tag{
			Name:        t.Name,
			Description: t.Description,
		})
	}
	return tags
}

// buildSecurityDefinitions maps configured schemes onto the document.
func (b *Builder) buildSecurityDefinitions(schemes map[string]config.SecuritySchemeConfig) map[string]types.SecurityScheme {
	out := make(map[string]types.SecurityScheme, len(schemes))
	for name, s := range schemes {
		out[name] = types.SecurityScheme{
			Type:             s.Type,
			Description:      s.Description,
			Name:             s.Name,
			In:               s.In,
			Flow:             s.Flow,
			AuthorizationURL: s.AuthorizationURL,
			TokenURL:         s.TokenURL,
			Scopes:           s.Scopes,
		}
	}
	return out
}

// buildDefaultSecurity applies the configured default requirements to the
// whole document.
func (b *Builder) buildDefaultSecurity() []map[string][]string {
	defaults := b.config.Swagger.Security.Default
	if len(defaults) == 0 {
		return nil
	}
	security := make([]map[string][]string, 0, len(defaults))
	for _, name := range defaults {
		security = append(security, map[string][]string{name: {}})
	}
	return security
}
