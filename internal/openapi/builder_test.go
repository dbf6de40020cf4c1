// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

package openapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/validoc/validoc/internal/config"
	"github.com/validoc/validoc/pkg/types"
	"github.com/validoc/validoc/pkg/vschema"
)

func newTestBuilder() *Builder {
	return NewBuilder(config.Default(), nil)
}

func sumRoute() types.Route {
	return types.Route{
		Method:      "POST",
		Path:        "/sum",
		Description: "Add two numbers",
		Notes:       []string{"Adds a and b.", "Returns the sum."},
		Tags:        []string{"api", "math"},
		Validate: types.RouteValidate{
			Payload: vschema.Object(
				vschema.Key("a", vschema.Number().Required()),
				vschema.Key("b", vschema.Number().Required()),
			).Label("Sum"),
		},
		ResponseSchema: vschema.Object(
			vschema.Key("result", vschema.Number()),
		).Label("Result"),
	}
}

func TestBuild_SumRoute(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{sumRoute()})

	assert.Equal(t, "2.0", doc.Swagger)
	require.Contains(t, doc.Paths, "/sum")
	op := doc.Paths["/sum"].Post
	require.NotNil(t, op)

	assert.Equal(t, "Add two numbers", op.Summary)
	assert.Equal(t, "Adds a and b.\n\nReturns the sum.", op.Description)
	assert.Equal(t, "postSum", op.OperationID)
	assert.Equal(t, []string{"math"}, op.Tags)

	require.Len(t, op.Parameters, 1)
	body := op.Parameters[0]
	assert.Equal(t, "body", body.In)
	require.NotNil(t, body.Schema)
	assert.Equal(t, "#/definitions/Sum", body.Schema.Ref)

	require.Contains(t, op.Responses, "200")
	assert.Equal(t, "#/definitions/Result", op.Responses["200"].Schema.Ref)

	assert.Contains(t, doc.Definitions, "Sum")
	assert.Contains(t, doc.Definitions, "Result")
	assert.Equal(t, []string{"a", "b"}, doc.Definitions["Sum"].Required)
}

func TestBuild_WildcardMethodFanOut(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{Method: "*", Path: "/things"}})

	require.Contains(t, doc.Paths, "/things")
	item := doc.Paths["/things"]
	assert.ElementsMatch(t, []string{"get", "put", "post", "delete", "patch"}, item.Methods())
}

func TestBuild_MethodList(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method:  "GET",
		Methods: []string{"GET", "HEAD"},
		Path:    "/things",
	}})

	item := doc.Paths["/things"]
	assert.NotNil(t, item.Get)
	assert.NotNil(t, item.Head)
	assert.Nil(t, item.Post)
}

func TestBuild_PathParamOptionality(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "GET",
		Path:   "/store/{id}/{variant?}",
		Validate: types.RouteValidate{
			Params: vschema.Object(
				vschema.Key("id", vschema.String()),
				vschema.Key("variant", vschema.String()),
			),
		},
	}})

	// The optionality marker is stripped from the indexed path.
	require.Contains(t, doc.Paths, "/store/{id}/{variant}")
	op := doc.Paths["/store/{id}/{variant}"].Get
	require.NotNil(t, op)
	require.Len(t, op.Parameters, 2)
	assert.True(t, op.Parameters[0].Required, "id derives required from {id}")
	assert.False(t, op.Parameters[1].Required, "variant derives optional from {variant?}")
}

func TestBuild_PathParamExplicitPresenceWins(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "GET",
		Path:   "/store/{id?}",
		Validate: types.RouteValidate{
			Params: vschema.Object(
				vschema.Key("id", vschema.String().Required()),
			),
		},
	}})

	op := doc.Paths["/store/{id}"].Get
	require.NotNil(t, op)
	require.Len(t, op.Parameters, 1)
	assert.True(t, op.Parameters[0].Required)
}

func TestBuild_FuncValidatorPlaceholders(t *testing.T) {
	var warnings []string
	b := NewBuilder(config.Default(), func(level, message string) {
		warnings = append(warnings, level+": "+message)
	})

	validator := func(value any) error { return nil }
	doc := b.Build([]types.Route{{
		Method: "POST",
		Path:   "/custom/{id}",
		Validate: types.RouteValidate{
			Payload: validator,
			Params:  validator,
		},
	}})

	op := doc.Paths["/custom/{id}"].Post
	require.NotNil(t, op)

	// Payload degrades to a hidden placeholder model, path params drop.
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "body", op.Parameters[0].In)
	assert.Equal(t, "#/definitions/Hidden Model", op.Parameters[0].Schema.Ref)
	assert.NotEmpty(t, warnings)
}

func TestBuild_PayloadFieldMapWrapped(t *testing.T) {
	var warnings []string
	b := NewBuilder(config.Default(), func(level, message string) {
		warnings = append(warnings, message)
	})

	doc := b.Build([]types.Route{{
		Method: "POST",
		Path:   "/pair",
		Settings: &types.RouteSettings{
			Payload: map[string]*vschema.Node{
				"b": vschema.Number(),
				"a": vschema.Number().Required(),
			},
		},
	}})

	op := doc.Paths["/pair"].Post
	require.NotNil(t, op)
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "body", op.Parameters[0].In)
	require.NotNil(t, op.Parameters[0].Schema)

	ref := op.Parameters[0].Schema.Ref
	require.NotEmpty(t, ref)
	def, ok := doc.Definitions[strings.TrimPrefix(ref, "#/definitions/")]
	require.True(t, ok)
	assert.Len(t, def.Properties, 2)
	assert.Equal(t, []string{"a"}, def.Required)
	assert.Empty(t, warnings)
}

func TestBuild_FormPayload(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "POST",
		Path:   "/login",
		Validate: types.RouteValidate{
			Payload: vschema.Object(
				vschema.Key("user", vschema.String().Required()),
				vschema.Key("pass", vschema.String().Required()),
			),
		},
		Settings: &types.RouteSettings{PayloadType: "form"},
	}})

	op := doc.Paths["/login"].Post
	require.NotNil(t, op)
	assert.Equal(t, []string{"application/x-www-form-urlencoded"}, op.Consumes)
	require.Len(t, op.Parameters, 2)
	assert.Equal(t, "formData", op.Parameters[0].In)
	assert.Equal(t, "formData", op.Parameters[1].In)
}

func TestBuild_FormPayloadFileUpload(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "POST",
		Path:   "/upload",
		Validate: types.RouteValidate{
			Payload: vschema.Object(
				vschema.Key("file", vschema.Any().AddMeta(map[string]any{vschema.MetaSwaggerType: "file"})),
			),
		},
		Settings: &types.RouteSettings{PayloadType: "form"},
	}})

	op := doc.Paths["/upload"].Post
	require.NotNil(t, op)
	assert.Equal(t, []string{"multipart/form-data"}, op.Consumes)
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "file", op.Parameters[0].Type)
}

func TestBuild_FormPayloadNestedFileUpload(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "POST",
		Path:   "/upload",
		Validate: types.RouteValidate{
			Payload: vschema.Object(
				vschema.Key("meta", vschema.String()),
				vschema.Key("attachment", vschema.Object(
					vschema.Key("data", vschema.Any().AddMeta(map[string]any{vschema.MetaSwaggerType: "file"})),
				)),
			),
		},
		Settings: &types.RouteSettings{PayloadType: "form"},
	}})

	op := doc.Paths["/upload"].Post
	require.NotNil(t, op)
	assert.Equal(t, []string{"multipart/form-data"}, op.Consumes)
}

func TestBuild_ExplicitConsumesWins(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "POST",
		Path:   "/login",
		Validate: types.RouteValidate{
			Payload: vschema.Object(vschema.Key("user", vschema.String())),
		},
		Settings: &types.RouteSettings{
			PayloadType: "form",
			Consumes:    []string{"application/custom"},
		},
	}})

	op := doc.Paths["/login"].Post
	require.NotNil(t, op)
	assert.Equal(t, []string{"application/custom"}, op.Consumes)
}

func TestBuild_AcceptHeaderPromotion(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "GET",
		Path:   "/report",
		Validate: types.RouteValidate{
			Headers: vschema.Object(
				vschema.Key("accept", vschema.String().
					Valid("application/json", "application/xml").
					Default("application/xml")),
			),
		},
	}})

	op := doc.Paths["/report"].Get
	require.NotNil(t, op)
	// Default value sorts first; the header parameter disappears.
	assert.Equal(t, []string{"application/xml", "application/json"}, op.Produces)
	assert.Empty(t, op.Parameters)
}

func TestBuild_AcceptHeaderWithoutEnumKept(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "GET",
		Path:   "/report",
		Validate: types.RouteValidate{
			Headers: vschema.Object(vschema.Key("accept", vschema.String())),
		},
	}})

	op := doc.Paths["/report"].Get
	require.NotNil(t, op)
	assert.Empty(t, op.Produces)
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "accept", op.Parameters[0].Name)
}

func TestBuild_ContentTypeHeaderDropsConsumes(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "POST",
		Path:   "/raw",
		Validate: types.RouteValidate{
			Headers: vschema.Object(vschema.Key("content-type", vschema.String())),
			Payload: vschema.Object(vschema.Key("data", vschema.String())),
		},
		Settings: &types.RouteSettings{PayloadType: "form"},
	}})

	op := doc.Paths["/raw"].Post
	require.NotNil(t, op)
	assert.Nil(t, op.Consumes)
}

func TestBuild_ParameterOrder(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "POST",
		Path:   "/items/{id}",
		Validate: types.RouteValidate{
			Headers: vschema.Object(vschema.Key("x-trace", vschema.String())),
			Params:  vschema.Object(vschema.Key("id", vschema.String())),
			Query:   vschema.Object(vschema.Key("verbose", vschema.Boolean())),
			Payload: vschema.Object(vschema.Key("name", vschema.String())),
		},
	}})

	op := doc.Paths["/items/{id}"].Post
	require.NotNil(t, op)
	require.Len(t, op.Parameters, 4)
	assert.Equal(t, "header", op.Parameters[0].In)
	assert.Equal(t, "path", op.Parameters[1].In)
	assert.Equal(t, "query", op.Parameters[2].In)
	assert.Equal(t, "body", op.Parameters[3].In)
}

func TestBuild_PathGrouping(t *testing.T) {
	cfg := config.Default()
	cfg.Generation.Grouping = "path"
	b := NewBuilder(cfg, nil)

	doc := b.Build([]types.Route{{
		Method: "GET",
		Path:   "/store/items",
		Tags:   []string{"api", "shop"},
	}})

	op := doc.Paths["/store/items"].Get
	require.NotNil(t, op)
	assert.Equal(t, []string{"store"}, op.Tags)
}

func TestBuild_SettingsCarryThrough(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "GET",
		Path:   "/legacy",
		Settings: &types.RouteSettings{
			ID:         "fetchLegacy",
			Deprecated: true,
			Order:      3,
			Meta:       map[string]any{"owner": "platform"},
			Security:   []map[string][]string{{"jwt": {}}},
		},
	}})

	op := doc.Paths["/legacy"].Get
	require.NotNil(t, op)
	assert.Equal(t, "fetchLegacy", op.OperationID)
	assert.True(t, op.Deprecated)
	assert.Equal(t, 3, op.XOrder)
	assert.Equal(t, "platform", op.XMeta["owner"])
	assert.Equal(t, []map[string][]string{{"jwt": {}}}, op.Security)
}

func TestBuild_SettingsOverrideReplacesRouteSchema(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{
		Method: "GET",
		Path:   "/search",
		Validate: types.RouteValidate{
			Query: vschema.Object(vschema.Key("q", vschema.String())),
		},
		Settings: &types.RouteSettings{
			Query: vschema.Object(vschema.Key("term", vschema.String())),
		},
	}})

	op := doc.Paths["/search"].Get
	require.NotNil(t, op)
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "term", op.Parameters[0].Name)
}

func TestBuild_EmptyRouteGetsDefaultResponse(t *testing.T) {
	doc := newTestBuilder().Build([]types.Route{{Method: "GET", Path: "/ping"}})

	op := doc.Paths["/ping"].Get
	require.NotNil(t, op)
	require.Contains(t, op.Responses, "default")
	assert.Equal(t, "Successful", op.Responses["default"].Description)
}

func TestBuild_Deterministic(t *testing.T) {
	routes := []types.Route{
		sumRoute(),
		{
			Method: "GET",
			Path:   "/store/{id?}",
			Validate: types.RouteValidate{
				Params: vschema.Object(vschema.Key("id", vschema.String())),
				Query:  vschema.Object(vschema.Key("expand", vschema.Boolean())),
			},
		},
	}

	first := newTestBuilder().Build(routes)
	second := newTestBuilder().Build(routes)
	assert.Equal(t, first, second)
}

func TestBuild_DeterministicStatusSchemaNames(t *testing.T) {
	// Unlabeled object schemas get synthesized definition names, which
	// depend on registration order; per-status responses must convert in
	// a fixed order so the names never swap between runs.
	route := types.Route{
		Method: "POST",
		Path:   "/orders",
		ResponseStatus: map[int]*vschema.Node{
			201: vschema.Object(vschema.Key("created", vschema.Boolean())),
			404: vschema.Object(vschema.Key("missing", vschema.String())),
			418: vschema.Object(vschema.Key("teapot", vschema.Boolean())),
			500: vschema.Object(vschema.Key("cause", vschema.String())),
		},
	}

	first := newTestBuilder().Build([]types.Route{route})
	op := first.Paths["/orders"].Post
	require.NotNil(t, op)
	require.NotNil(t, op.Responses["201"].Schema)
	assert.Equal(t, "#/definitions/Model 1", op.Responses["201"].Schema.Ref)
	require.NotNil(t, op.Responses["500"].Schema)
	assert.Equal(t, "#/definitions/Model 4", op.Responses["500"].Schema.Ref)

	for i := 0; i < 20; i++ {
		assert.Equal(t, first, newTestBuilder().Build([]types.Route{route}))
	}
}

func TestBuild_DefinitionReuseAcrossRoutes(t *testing.T) {
	shared := vschema.Object(vschema.Key("id", vschema.Number())).Label("Entity")

	doc := newTestBuilder().Build([]types.Route{
		{Method: "POST", Path: "/a", Validate: types.RouteValidate{Payload: shared}},
		{Method: "POST", Path: "/b", Validate: types.RouteValidate{Payload: shared}},
	})

	assert.Len(t, doc.Definitions, 1)
	assert.Equal(t, "#/definitions/Entity",
		doc.Paths["/a"].Post.Parameters[0].Schema.Ref)
	assert.Equal(t, "#/definitions/Entity",
		doc.Paths["/b"].Post.Parameters[0].Schema.Ref)
}
