package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspath/internal/schemautil"
	"github.com/erraggy/oaspath/parser"
)

type serializeInput struct {
	Spec        specInput      `json:"spec"                   jsonschema:"The OAS 3.x document"`
	Method      string         `json:"method,omitempty"       jsonschema:"HTTP method of the operation (case-insensitive, default get)"`
	Path        string         `json:"path"                   jsonschema:"Path template as declared in the document, e.g. /pets/{petId}"`
	Params      map[string]any `json:"params,omitempty"       jsonschema:"Parameter values keyed by name"`
	ResolveRefs *bool          `json:"resolve_refs,omitempty" jsonschema:"Follow #/components/parameters references (default from OASPATH_RESOLVE_REFS)"`
}

// method returns the requested method, defaulting to get.
func (in serializeInput) method() string {
	if in.Method == "" {
		return "get"
	}
	return in.Method
}

// resolveRefs returns the requested setting, defaulting to the server config.
func (in serializeInput) resolveRefs() bool {
	if in.ResolveRefs != nil {
		return *in.ResolveRefs
	}
	return cfg.ResolveRefs
}

type serializePathOutput struct {
	Path     string `json:"path"`
	BasePath string `json:"base_path,omitempty"`
}

func handleSerializePath(_ context.Context, _ *mcp.CallToolRequest, input serializeInput) (*mcp.CallToolResult, serializePathOutput, error) {
	s, err := input.Spec.resolve(input.resolveRefs())
	if err != nil {
		return errResult(err), serializePathOutput{}, nil
	}
	path, err := s.SerializePath(input.method(), input.Path, input.Params)
	if err != nil {
		return errResult(err), serializePathOutput{}, nil
	}
	return nil, serializePathOutput{Path: path, BasePath: s.BasePath()}, nil
}

type serializeQueryOutput struct {
	Query string `json:"query"`
}

func handleSerializeQuery(_ context.Context, _ *mcp.CallToolRequest, input serializeInput) (*mcp.CallToolResult, serializeQueryOutput, error) {
	s, err := input.Spec.resolve(input.resolveRefs())
	if err != nil {
		return errResult(err), serializeQueryOutput{}, nil
	}
	query, err := s.SerializeQuery(input.method(), input.Path, input.Params)
	if err != nil {
		return errResult(err), serializeQueryOutput{}, nil
	}
	return nil, serializeQueryOutput{Query: query}, nil
}

type listQueryParametersInput struct {
	Spec        specInput `json:"spec"                   jsonschema:"The OAS 3.x document"`
	Method      string    `json:"method,omitempty"       jsonschema:"HTTP method of the operation (case-insensitive, default get)"`
	Path        string    `json:"path"                   jsonschema:"Path template as declared in the document"`
	ResolveRefs *bool     `json:"resolve_refs,omitempty" jsonschema:"Follow #/components/parameters references (default from OASPATH_RESOLVE_REFS)"`
}

type queryParameterSummary struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Format      string `json:"format,omitempty"`
	Style       string `json:"style,omitempty"`
	Explode     *bool  `json:"explode,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
	Description string `json:"description,omitempty"`
}

type listQueryParametersOutput struct {
	Count      int                     `json:"count"`
	Parameters []queryParameterSummary `json:"parameters,omitempty"`
}

func handleListQueryParameters(_ context.Context, _ *mcp.CallToolRequest, input listQueryParametersInput) (*mcp.CallToolResult, listQueryParametersOutput, error) {
	in := serializeInput{Method: input.Method, ResolveRefs: input.ResolveRefs}
	s, err := input.Spec.resolve(in.resolveRefs())
	if err != nil {
		return errResult(err), listQueryParametersOutput{}, nil
	}

	params := s.QueryParameters(input.Path, in.method())
	output := listQueryParametersOutput{Count: len(params)}
	for _, p := range params {
		output.Parameters = append(output.Parameters, summarizeParameter(p))
	}
	return nil, output, nil
}

func summarizeParameter(p *parser.Parameter) queryParameterSummary {
	summary := queryParameterSummary{
		Name:        p.Name,
		Style:       p.Style,
		Explode:     p.Explode,
		Required:    p.Required,
		Deprecated:  p.Deprecated,
		Description: p.Description,
	}
	if schema := schemautil.ParameterSchema(p); schema != nil {
		summary.Type = schemautil.GetPrimaryType(schema)
		summary.Format = schema.Format
	}
	return summary
}
