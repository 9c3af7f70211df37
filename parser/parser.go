package parser

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oaspath"
	"github.com/erraggy/oaspath/internal/httputil"
	"github.com/erraggy/oaspath/oaserrors"
)

// Parser handles OpenAPI specification parsing
type Parser struct {
	// InsecureSkipVerify disables TLS certificate verification when fetching URLs
	// Use with caution - only enable for testing or internal servers with self-signed certs
	InsecureSkipVerify bool
	// UserAgent is the User-Agent string used when fetching URLs
	// Defaults to "oaspath/<version>" if not set
	UserAgent string
	// HTTPClient is the HTTP client used for fetching URLs.
	// If nil, a default client with 30-second timeout is created.
	// When set, InsecureSkipVerify is ignored (configure TLS on your client's transport).
	HTTPClient *http.Client
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		UserAgent: oaspath.UserAgent(),
	}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source OpenAPI specification file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed OpenAPI specification and metadata.
//
// Callers should treat ParseResult as read-only after parsing. Serializers
// built from it assume the document does not change for their lifetime.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// Note: if the source was not a file path, this will be set to the name of the method
	// and end in '.yaml' or '.json' based on the detected format
	SourcePath string
	// SourceFormat is the format of the source file (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the detected OAS version string (e.g., "2.0", "3.0.3", "3.1.0")
	Version string
	// OASVersion is the enumerated version of the document
	OASVersion OASVersion
	// Document contains the version-specific parsed document:
	//   - *OAS2Document for OAS 2.0
	//   - *OAS3Document for OAS 3.x
	Document any
	// LoadTime is the time spent reading the source
	LoadTime time.Duration
	// SourceSize is the size of the source in bytes
	SourceSize int64
}

// OAS2Document returns the parsed document as an OAS2Document if the specification
// is version 2.0, and a boolean indicating whether the type assertion succeeded.
func (pr *ParseResult) OAS2Document() (*OAS2Document, bool) {
	if pr == nil {
		return nil, false
	}
	doc, ok := pr.Document.(*OAS2Document)
	return doc, ok
}

// OAS3Document returns the parsed document as an OAS3Document if the specification
// is version 3.x, and a boolean indicating whether the type assertion succeeded.
//
// Example:
//
//	result, _ := parser.ParseWithOptions(parser.WithFilePath("api.yaml"))
//	if doc, ok := result.OAS3Document(); ok {
//	    fmt.Println("API Title:", doc.Info.Title)
//	}
func (pr *ParseResult) OAS3Document() (*OAS3Document, bool) {
	if pr == nil {
		return nil, false
	}
	doc, ok := pr.Document.(*OAS3Document)
	return doc, ok
}

// IsOAS2 returns true if the parsed document is an OpenAPI 2.0 (Swagger) specification.
func (pr *ParseResult) IsOAS2() bool {
	return pr != nil && pr.OASVersion == OASVersion20
}

// IsOAS3 returns true if the parsed document is an OpenAPI 3.x specification
// (including 3.0.x, 3.1.x, and 3.2.x).
func (pr *ParseResult) IsOAS3() bool {
	return pr != nil && pr.OASVersion.Is3x()
}

// Parse parses an OpenAPI specification file or URL
// For URLs (http:// or https://), the content is fetched and parsed
// For local files, the file is read and parsed
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var data []byte
	var err error
	var format SourceFormat

	loadStart := time.Now()
	if isURL(specPath) {
		var contentType string
		data, contentType, err = p.fetchURL(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(specPath, contentType)
	} else {
		data, err = os.ReadFile(specPath)
		if err != nil {
			return nil, fmt.Errorf("parser: failed to read file: %w", err)
		}
		format = detectFormatFromPath(specPath)
	}
	loadTime := time.Since(loadStart)

	res, err := p.parseBytes(data, specPath)
	if err != nil {
		return nil, err
	}

	res.SourcePath = specPath
	res.LoadTime = loadTime
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	p.log().Debug("parsed document",
		"source", specPath,
		"version", res.Version,
		"format", res.SourceFormat,
		"size", res.SourceSize,
	)
	return res, nil
}

// ParseReader parses an OpenAPI specification from an io.Reader
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to read data: %w", err)
	}
	res, err := p.parseBytes(data, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	return res, nil
}

// ParseBytes parses an OpenAPI specification from a byte slice
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data, "ParseBytes")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

// parseBytes decodes data in two passes: a generic map to detect the
// version, then the version-specific document structure.
func (p *Parser) parseBytes(data []byte, source string) (*ParseResult, error) {
	result := &ParseResult{
		SourceFormat: detectFormatFromContent(data),
		SourceSize:   int64(len(data)),
	}
	if result.SourceFormat == SourceFormatUnknown {
		// empty input; report it as YAML like any other non-JSON content
		result.SourceFormat = SourceFormatYAML
	}

	var rawData map[string]any
	if err := yaml.Unmarshal(data, &rawData); err != nil {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Message: "failed to parse YAML/JSON",
			Cause:   err,
		}
	}
	if rawData == nil {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Message: "document is empty",
		}
	}

	version, err := detectVersion(rawData)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Cause: err}
	}
	result.Version = version

	doc, oasVersion, err := parseVersionSpecific(data, version, source)
	if err != nil {
		return nil, err
	}
	result.Document = doc
	result.OASVersion = oasVersion

	return result, nil
}

// detectVersion determines the OAS semver from the raw data
func detectVersion(data map[string]any) (string, error) {
	if v, ok := versionField(data["swagger"]); ok {
		return v, nil
	}
	if v, ok := versionField(data["openapi"]); ok {
		return v, nil
	}
	return "", fmt.Errorf("unable to detect OpenAPI version: document must contain either 'swagger: \"2.0\"' (for OAS 2.0) or 'openapi: \"3.x.x\"' (for OAS 3.x) at the root level")
}

// versionField accepts the version as a string, or as the float an
// unquoted "swagger: 2.0" decodes to.
func versionField(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, t != ""
	case float64:
		return strconv.FormatFloat(t, 'f', 1, 64), true
	}
	return "", false
}

// parseVersionSpecific parses the data into a semver-specific structure
func parseVersionSpecific(data []byte, version, source string) (any, OASVersion, error) {
	v, ok := ParseVersion(version)
	if !ok {
		return nil, Unknown, &oaserrors.UnsupportedVersionError{
			Version:   version,
			Supported: append([]string{OASVersion20.Series()}, OAS3Series()...),
		}
	}
	switch {
	case v == OASVersion20:
		var doc OAS2Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, Unknown, &oaserrors.ParseError{
				Path:    source,
				Message: "failed to parse OAS 2.0 document structure",
				Cause:   err,
			}
		}
		doc.OASVersion = v
		return &doc, v, nil

	case v.Is3x():
		var doc OAS3Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, Unknown, &oaserrors.ParseError{
				Path:    source,
				Message: fmt.Sprintf("failed to parse OAS %s document structure", version),
				Cause:   err,
			}
		}
		doc.OASVersion = v
		return &doc, v, nil
	}
	return nil, Unknown, &oaserrors.UnsupportedVersionError{Version: version}
}

// detectFormatFromPath detects the source format from a file path
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent attempts to detect the format from the content bytes
// JSON typically starts with '{' or '[', while YAML does not
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectFormatFromURL attempts to detect the format from a URL path and Content-Type header
func detectFormatFromURL(urlStr string, contentType string) SourceFormat {
	parsedURL, err := url.Parse(urlStr)
	if err == nil && parsedURL.Path != "" {
		if format := detectFormatFromPath(parsedURL.Path); format != SourceFormatUnknown {
			return format
		}
	}
	switch {
	case httputil.IsJSONMediaType(contentType):
		return SourceFormatJSON
	case httputil.IsYAMLMediaType(contentType):
		return SourceFormatYAML
	}
	return SourceFormatUnknown
}

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// fetchURL fetches content from a URL and returns the bytes and Content-Type header
func (p *Parser) fetchURL(urlStr string) ([]byte, string, error) {
	var client *http.Client
	switch {
	case p.HTTPClient != nil:
		client = p.HTTPClient
		if p.InsecureSkipVerify {
			p.log().Warn("InsecureSkipVerify ignored when HTTPClient provided; configure TLS on your client's transport")
		}
	case p.InsecureSkipVerify:
		client = &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true, //nolint:gosec // User explicitly requested insecure mode
					MinVersion:         tls.VersionTLS12,
				},
			},
		}
	default:
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to create request: %w", err)
	}

	userAgent := p.UserAgent
	if userAgent == "" {
		userAgent = oaspath.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req) //nolint:gosec // URL is user-provided input
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("parser: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("parser: failed to read response body: %w", err)
	}
	return data, resp.Header.Get("Content-Type"), nil
}
