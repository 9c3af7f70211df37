// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaspath/internal/pathutil"
	"github.com/erraggy/oaspath/parser"
)

// NewSimpleOAS3Document creates a minimal OAS 3.0.3 document served from
// https://api.example.com/v1 with no paths.
func NewSimpleOAS3Document() *parser.OAS3Document {
	return &parser.OAS3Document{
		OpenAPI:    "3.0.3",
		OASVersion: parser.OASVersion303,
		Info: &parser.Info{
			Title:   "Test API",
			Version: "1.0.0",
		},
		Servers: []*parser.Server{
			{
				URL:         "https://api.example.com/v1",
				Description: "Production server",
			},
		},
		Paths: make(parser.Paths),
	}
}

// NewDetailedOAS3Document creates an OAS 3.0.3 document with a GET /items
// operation declaring typed query parameters and a GET /items/{itemId}
// operation inheriting a path-level parameter. A reusable "Cursor" query
// parameter is declared under components and referenced from /items, and
// the "limit" parameter's schema references the "PageSize" component.
func NewDetailedOAS3Document() *parser.OAS3Document {
	doc := NewSimpleOAS3Document()
	doc.Paths["/items"] = &parser.PathItem{
		Get: &parser.Operation{
			OperationID: "listItems",
			Parameters: []*parser.Parameter{
				{Name: "limit", In: parser.ParamInQuery, Schema: &parser.Schema{Ref: pathutil.SchemaRef("PageSize")}},
				QueryParam("since", "string", "date"),
				ArrayQueryParam("ids", "integer", false),
				{Ref: pathutil.ParameterRef("Cursor")},
				{Name: "X-Trace", In: parser.ParamInHeader, Schema: &parser.Schema{Type: "string"}},
			},
		},
	}
	doc.Paths["/items/{itemId}"] = &parser.PathItem{
		Parameters: []*parser.Parameter{
			PathParam("itemId"),
			QueryParam("expand", "boolean", ""),
		},
		Get: &parser.Operation{OperationID: "getItem"},
	}
	doc.Components = &parser.Components{
		Schemas: map[string]*parser.Schema{
			"PageSize": {Type: "integer", Format: "int32"},
		},
		Parameters: map[string]*parser.Parameter{
			"Cursor": QueryParam("cursor", "string", "uuid"),
		},
	}
	return doc
}

// PathParam returns a required string path parameter.
func PathParam(name string) *parser.Parameter {
	return &parser.Parameter{
		Name:     name,
		In:       parser.ParamInPath,
		Required: true,
		Schema:   &parser.Schema{Type: "string"},
	}
}

// QueryParam returns a query parameter whose schema has the given type and
// optional format.
func QueryParam(name, typ, format string) *parser.Parameter {
	return &parser.Parameter{
		Name:   name,
		In:     parser.ParamInQuery,
		Schema: &parser.Schema{Type: typ, Format: format},
	}
}

// ArrayQueryParam returns an array query parameter with items of itemType
// and the given explode setting.
func ArrayQueryParam(name, itemType string, explode bool) *parser.Parameter {
	return &parser.Parameter{
		Name:    name,
		In:      parser.ParamInQuery,
		Explode: &explode,
		Schema: &parser.Schema{
			Type:  "array",
			Items: &parser.Schema{Type: itemType},
		},
	}
}

// NewParseResult wraps an OAS 3.x document in a ParseResult, as if it had
// been parsed from source.
func NewParseResult(doc *parser.OAS3Document) *parser.ParseResult {
	return &parser.ParseResult{
		SourcePath:   "fixture.yaml",
		SourceFormat: parser.SourceFormatYAML,
		Version:      doc.OpenAPI,
		OASVersion:   doc.OASVersion,
		Document:     doc,
	}
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "test.json")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
