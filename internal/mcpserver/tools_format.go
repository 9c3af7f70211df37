package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspath/formatter"
)

type formatValueInput struct {
	Format string `json:"format"         jsonschema:"Formatter tag: email, date, date-time or uuid"`
	Value  any    `json:"value"          jsonschema:"The value to validate and render"`
	Name   string `json:"name,omitempty" jsonschema:"Field name used in error messages"`
	Path   string `json:"path,omitempty" jsonschema:"Path template used in error messages"`
}

type formatValueOutput struct {
	Format string `json:"format"`
	Value  string `json:"value"`
}

// defaultFormatters is shared by every format_value call; registries are
// read-only after construction.
var defaultFormatters = formatter.Default()

func handleFormatValue(_ context.Context, _ *mcp.CallToolRequest, input formatValueInput) (*mcp.CallToolResult, formatValueOutput, error) {
	ctx := formatter.Context{Name: input.Name, Path: input.Path}
	if ctx.Name == "" {
		ctx.Name = "value"
	}
	out, err := defaultFormatters.Format(input.Format, input.Value, ctx)
	if err != nil {
		return errResult(err), formatValueOutput{}, nil
	}
	return nil, formatValueOutput{Format: input.Format, Value: out}, nil
}
