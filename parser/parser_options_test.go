package parser

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspath/oaserrors"
)

// TestParseWithOptions_FilePath tests the functional options API with file path
func TestParseWithOptions_FilePath(t *testing.T) {
	result, err := ParseWithOptions(
		WithFilePath("../testdata/petstore-3.0.yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", result.Version)
	assert.Equal(t, OASVersion303, result.OASVersion)
	assert.Equal(t, "../testdata/petstore-3.0.yaml", result.SourcePath)
	assert.Equal(t, SourceFormatYAML, result.SourceFormat)

	doc, ok := result.Document.(*OAS3Document)
	require.True(t, ok, "Expected OAS3Document, got %T", result.Document)
	assert.NotNil(t, doc.Info)
	assert.Equal(t, "Swagger Petstore", doc.Info.Title)
}

// TestParseWithOptions_Reader tests the functional options API with io.Reader
func TestParseWithOptions_Reader(t *testing.T) {
	file, err := os.Open("../testdata/petstore-3.0.yaml")
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	result, err := ParseWithOptions(WithReader(file))
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", result.Version)
	assert.Equal(t, "ParseReader.yaml", result.SourcePath)
}

// TestParseWithOptions_Bytes tests the functional options API with byte slice
func TestParseWithOptions_Bytes(t *testing.T) {
	data, err := os.ReadFile("../testdata/petstore-3.1.json")
	require.NoError(t, err)

	result, err := ParseWithOptions(WithBytes(data))
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", result.Version)
	assert.Equal(t, "ParseBytes.json", result.SourcePath)
	assert.Equal(t, SourceFormatJSON, result.SourceFormat)
	assert.Equal(t, int64(len(data)), result.SourceSize)
}

func TestParseWithOptions_SourceName(t *testing.T) {
	result, err := ParseWithOptions(
		WithBytes([]byte("openapi: 3.0.0\ninfo: {title: t, version: '1'}\npaths: {}\n")),
		WithSourceName("inline.yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, "inline.yaml", result.SourcePath)
}

func TestParseWithOptions_InputValidation(t *testing.T) {
	t.Run("no input source", func(t *testing.T) {
		_, err := ParseWithOptions()
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		assert.Contains(t, err.Error(), "must specify an input source")
	})

	t.Run("multiple input sources", func(t *testing.T) {
		_, err := ParseWithOptions(
			WithFilePath("../testdata/petstore-3.0.yaml"),
			WithBytes([]byte("openapi: 3.0.0")),
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must specify exactly one input source")
	})

	t.Run("nil reader", func(t *testing.T) {
		_, err := ParseWithOptions(WithReader(nil))
		require.Error(t, err)
		var cfgErr *oaserrors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "WithReader", cfgErr.Option)
	})

	t.Run("nil bytes", func(t *testing.T) {
		_, err := ParseWithOptions(WithBytes(nil))
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	})
}

func TestParseWithOptions_URL(t *testing.T) {
	data, err := os.ReadFile("../testdata/petstore-3.0.yaml")
	require.NoError(t, err)

	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		if r.URL.Path != "/spec" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(data)
	}))
	defer server.Close()

	t.Run("content type decides format", func(t *testing.T) {
		result, err := ParseWithOptions(
			WithFilePath(server.URL+"/spec"),
			WithUserAgent("oaspath-test/1.0"),
			WithHTTPClient(server.Client()),
		)
		require.NoError(t, err)
		assert.Equal(t, "3.0.3", result.Version)
		assert.Equal(t, SourceFormatYAML, result.SourceFormat)
		assert.Equal(t, "oaspath-test/1.0", gotUA)
	})

	t.Run("non-200 status", func(t *testing.T) {
		_, err := ParseWithOptions(WithFilePath(server.URL + "/missing"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
	})

	t.Run("default user agent", func(t *testing.T) {
		_, err := ParseWithOptions(WithFilePath(server.URL + "/spec"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(gotUA, "oaspath/"), "unexpected User-Agent %q", gotUA)
	})
}

func TestParseWithOptions_InsecureSkipVerify(t *testing.T) {
	data, err := os.ReadFile("../testdata/petstore-3.0.yaml")
	require.NoError(t, err)

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(data)
	}))
	defer server.Close()

	_, err = ParseWithOptions(WithFilePath(server.URL + "/spec"))
	require.Error(t, err, "self-signed certificate should be rejected by default")

	result, err := ParseWithOptions(
		WithFilePath(server.URL+"/spec"),
		WithInsecureSkipVerify(true),
	)
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", result.Version)
}
