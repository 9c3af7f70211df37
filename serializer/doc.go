// Package serializer resolves OpenAPI path templates and query strings
// against a parsed OpenAPI 3.x document.
//
// A Serializer is bound to one document at construction. Documents that are
// not OpenAPI 3.x are rejected up front with a
// *oaserrors.UnsupportedVersionError:
//
//	s, err := serializer.New(parsed)
//	if err != nil {
//	    return err
//	}
//
// # Path templates
//
// SerializePath replaces every {name} placeholder with the supplied value,
// percent-encoded with ECMAScript encodeURI rules, and prepends the base
// path taken from the document's first server:
//
//	path, err := s.SerializePath("GET", "/pets/{petId}", map[string]any{"petId": "123"})
//	// path == "/api/pets/123"
//
// Path values must be strings. Every value that is not is reported in a
// single *oaserrors.WrongDataTypeError. Placeholders left without a value
// are reported as a *oaserrors.MissingPathParamError, but only when no type
// problem was found.
//
// # Query strings
//
// SerializeQuery validates values against the declared query parameters and
// renders them, using the formatter registry for values whose schema names
// a known format (email, date, date-time, uuid):
//
//	query, err := s.SerializeQuery("GET", "/pets", map[string]any{"limit": 20})
//	// query == "limit=20"
//
// # Parameter index
//
// QueryParameters lists the query parameters of one operation. Results are
// cached per (path, method); the cache is safe for concurrent use and never
// shared between Serializers.
//
// # Configuration
//
//   - WithFilePath / WithParsed: the document source (exactly one)
//   - WithResolveRefs: follow local parameter references
//   - WithFormatters: replace the formatter registry
//   - WithBasePath: override the server-derived prefix
//   - WithLogger: debug logging through parser.Logger
package serializer
