// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oaspath capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oaspath"
)

const serverInstructions = `oaspath MCP server: builds request paths and query strings from OpenAPI 3.x documents.

Tools:
- serialize_path: substitute {placeholders} in a path template, URI-encode values and prepend the server base path
- serialize_query: build a query string from declared query parameters, checking types and formats
- list_query_parameters: list the query parameters an operation declares
- format_value: run one value through a semantic formatter (email, date, date-time, uuid)

Path parameter values must be JSON strings; numbers and booleans are reported as wrong data types.

Configuration: defaults come from OASPATH_* environment variables set in your MCP client config.
- OASPATH_CACHE_ENABLED (default: true) - reuse parsed documents between calls
- OASPATH_CACHE_MAX_SIZE (default: 10) - maximum cached documents
- OASPATH_CACHE_FILE_TTL (default: 15m), OASPATH_CACHE_URL_TTL (default: 5m), OASPATH_CACHE_CONTENT_TTL (default: 15m)
- OASPATH_MAX_INLINE_SIZE (default: 10MiB) - maximum inline content size
- OASPATH_ALLOW_PRIVATE_IPS (default: false) - allow fetching documents from private addresses
- OASPATH_RESOLVE_REFS (default: false) - follow local parameter references by default

Caching: file entries use path+mtime as key (auto-invalidated on change), content entries a SHA-256 hash.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		serializerCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaspath", Version: oaspath.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "serialize_path",
		Description: "Resolve an OpenAPI path template such as /pets/{petId} into a request path. Every supplied string value replaces its {name} placeholder after URI encoding, and the base path of the document's first server is prepended. Non-string values are reported together as one wrong data type error; placeholders left without a value are reported as missing path parameters.",
	}, handleSerializePath)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "serialize_query",
		Description: "Build the query string for an operation from its declared query parameters. Values are checked against the parameter schema (type, format, array items) and rendered with the email/date/date-time/uuid formatters where a format is declared. Undeclared keys are ignored. Returns the query without a leading '?'.",
	}, handleSerializeQuery)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_query_parameters",
		Description: "List the query parameters declared for one operation (path template + method), including inherited path-level parameters. Set resolve_refs=true to follow #/components/parameters references.",
	}, handleListQueryParameters)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_value",
		Description: "Validate and render one value with a semantic formatter. Formats: email, date, date-time, uuid. Returns the wire string or a wrong data type error with the expected label (e.g. string:email).",
	}, handleFormatValue)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
