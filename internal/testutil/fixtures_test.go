package testutil

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaspath/parser"
)

func TestNewSimpleOAS3Document(t *testing.T) {
	doc := NewSimpleOAS3Document()

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Equal(t, parser.OASVersion303, doc.OASVersion)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Test API", doc.Info.Title)
	require.Len(t, doc.Servers, 1)
	assert.Equal(t, "https://api.example.com/v1", doc.Servers[0].URL)
	assert.NotNil(t, doc.Paths)
	assert.Empty(t, doc.Paths)
}

func TestNewDetailedOAS3Document(t *testing.T) {
	doc := NewDetailedOAS3Document()

	_, op := doc.FindOperation("/items", "get")
	require.NotNil(t, op)
	require.Len(t, op.Parameters, 5)
	assert.Equal(t, "limit", op.Parameters[0].Name)
	assert.True(t, op.Parameters[3].IsRef())
	assert.Equal(t, "#/components/parameters/Cursor", op.Parameters[3].Ref)

	limit := doc.ResolveSchema(op.Parameters[0].Schema)
	require.NotNil(t, limit)
	assert.Equal(t, "integer", limit.Type)

	cursor, ok := doc.ResolveParameter("#/components/parameters/Cursor")
	require.True(t, ok)
	assert.Equal(t, "uuid", cursor.Schema.Format)

	item, op := doc.FindOperation("/items/{itemId}", "get")
	require.NotNil(t, item)
	require.NotNil(t, op)
	assert.Empty(t, op.Parameters)
	require.Len(t, item.Parameters, 2)
	assert.Equal(t, parser.ParamInPath, item.Parameters[0].In)
	assert.True(t, item.Parameters[0].Required)
}

func TestArrayQueryParam(t *testing.T) {
	p := ArrayQueryParam("ids", "integer", false)
	require.NotNil(t, p.Explode)
	assert.False(t, *p.Explode)
	assert.Equal(t, "array", p.Schema.Type)
	assert.Equal(t, "integer", p.Schema.Items.Type)
}

func TestNewParseResult(t *testing.T) {
	doc := NewSimpleOAS3Document()
	result := NewParseResult(doc)

	assert.Equal(t, "3.0.3", result.Version)
	assert.Equal(t, parser.OASVersion303, result.OASVersion)
	got, ok := result.OAS3Document()
	require.True(t, ok)
	assert.Same(t, doc, got)
}

func TestWriteTempYAML(t *testing.T) {
	path := WriteTempYAML(t, NewDetailedOAS3Document())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Equal(t, "3.0.3", raw["openapi"])
	assert.Contains(t, raw["paths"], "/items/{itemId}")
}

func TestWriteTempJSON(t *testing.T) {
	path := WriteTempJSON(t, NewSimpleOAS3Document())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "3.0.3", raw["openapi"])
}

func TestWriteTempYAML_Parses(t *testing.T) {
	path := WriteTempYAML(t, NewDetailedOAS3Document())

	result, err := parser.ParseWithOptions(parser.WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, parser.OASVersion303, result.OASVersion)

	doc, ok := result.OAS3Document()
	require.True(t, ok)
	assert.Len(t, doc.Paths, 2)
}
