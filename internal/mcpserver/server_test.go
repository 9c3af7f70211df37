package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const petstoreFile = "../../testdata/petstore-3.0.yaml"

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oaspath-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

// unmarshalStructured extracts the structured output from a CallToolResult.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}

func errorText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.True(t, result.IsError)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	return text.Text
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, result.Tools, 4)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	for _, name := range []string{"serialize_path", "serialize_query", "list_query_parameters", "format_value"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}
}

func TestIntegration_CallTool_SerializePath(t *testing.T) {
	serializerCache.reset()
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "serialize_path",
		Arguments: map[string]any{
			"spec":   map[string]any{"file": petstoreFile},
			"method": "GET",
			"path":   "/pets/{petId}",
			"params": map[string]any{"petId": "123 with space"},
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "/api/pets/123%20with%20space", structured["path"])
	assert.Equal(t, "/api", structured["base_path"])
}

func TestIntegration_CallTool_SerializePathNumber(t *testing.T) {
	serializerCache.reset()
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "serialize_path",
		Arguments: map[string]any{
			"spec":   map[string]any{"file": petstoreFile},
			"path":   "/pets/{petId}",
			"params": map[string]any{"petId": 123},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	assert.Contains(t, errorText(t, result), "petId: expected string")
}

func TestIntegration_CallTool_SerializeQuery(t *testing.T) {
	serializerCache.reset()
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "serialize_query",
		Arguments: map[string]any{
			"spec":         map[string]any{"file": petstoreFile},
			"path":         "/pets",
			"params":       map[string]any{"limit": 10, "owner": "a@example.com"},
			"resolve_refs": true,
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "limit=10&owner=a%40example.com", structured["query"])
}

func TestIntegration_CallTool_FormatValue(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "format_value",
		Arguments: map[string]any{"format": "email", "value": "nope"},
	})
	require.NoError(t, err)
	assert.Contains(t, errorText(t, result), "expected string:email")
}

func TestIntegration_CallTool_Error_MissingSpec(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "serialize_path",
		Arguments: map[string]any{
			"spec": map[string]any{},
			"path": "/pets",
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	assert.Contains(t, errorText(t, result), "exactly one of file, url, or content")
}

func TestSanitizeError(t *testing.T) {
	assert.Equal(t, "", sanitizeError(nil))
	assert.Equal(t,
		"parser: failed to read file: open <path>: no such file or directory",
		sanitizeError(errors.New("parser: failed to read file: open /home/user/specs/api.yaml: no such file or directory")),
	)
	assert.Equal(t, "missing path parameter in /pets/{petId}: petId",
		sanitizeError(errors.New("missing path parameter in /pets/{petId}: petId")))
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom in /tmp/x.yaml"))
	assert.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "boom in <path>", text.Text)
}
