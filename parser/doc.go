// Package parser decodes OpenAPI Specification documents into typed Go values.
//
// Only the parts of a document needed to build request paths are decoded:
// servers, paths, operations, parameters and the component parameters and
// schemas they reference. Everything else is kept in each type's Extra map.
//
// Both YAML and JSON are accepted, from a file path, URL, [io.Reader] or byte
// slice. OAS 2.0 and every OAS 3.x release up to 3.2.0 are recognized; future
// patch versions map to the latest known patch of their series (see
// [ParseVersion]).
//
// # Usage
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, ok := result.OAS3Document()
//	if !ok {
//	    log.Fatalf("expected OAS 3.x, got %s", result.Version)
//	}
//	_, op := doc.FindOperation("/pets/{petId}", "GET")
//
// Decode failures are returned as *oaserrors.ParseError and unknown versions
// as *oaserrors.UnsupportedVersionError.
package parser
