// Package httputil provides HTTP method and media type helpers.
package httputil

import (
	"mime"
	"strings"
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
	MethodQuery   = "query" // OAS 3.2+ only
)

// knownMethods is the set of method names a PathItem can declare.
var knownMethods = map[string]bool{
	MethodGet: true, MethodPut: true, MethodPost: true, MethodDelete: true,
	MethodOptions: true, MethodHead: true, MethodPatch: true, MethodTrace: true,
	MethodQuery: true,
}

// NormalizeMethod trims surrounding whitespace and lower-cases an HTTP method
// so it can be compared against OpenAPI path item keys.
func NormalizeMethod(method string) string {
	return strings.ToLower(strings.TrimSpace(method))
}

// IsKnownMethod reports whether method (in any case) names an operation
// field of an OpenAPI path item.
func IsKnownMethod(method string) bool {
	return knownMethods[NormalizeMethod(method)]
}

// Media types recognized as OpenAPI document encodings.
const (
	MediaTypeJSON = "application/json"
	MediaTypeYAML = "application/yaml"
)

// MediaTypeBase returns the lower-cased type/subtype of a Content-Type header
// value with parameters removed. It returns "" when the value cannot be parsed.
func MediaTypeBase(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mediaType
}

// IsJSONMediaType reports whether contentType describes a JSON body,
// including structured suffixes such as application/vnd.oai.openapi+json.
func IsJSONMediaType(contentType string) bool {
	base := MediaTypeBase(contentType)
	return base == MediaTypeJSON || strings.HasSuffix(base, "+json")
}

// IsYAMLMediaType reports whether contentType describes a YAML body.
func IsYAMLMediaType(contentType string) bool {
	switch base := MediaTypeBase(contentType); base {
	case MediaTypeYAML, "application/x-yaml", "text/yaml", "text/x-yaml":
		return true
	default:
		return strings.HasSuffix(base, "+yaml")
	}
}
