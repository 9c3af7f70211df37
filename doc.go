// Package oaspath builds request URLs for operations declared in OpenAPI
// Specification (OAS) 3.x documents.
//
// Given a parsed document, a path template such as "/pets/{petId}" and a map
// of parameter values, oaspath substitutes and percent-encodes the path
// parameters, prefixes the base path derived from the document's servers,
// and builds the query string from the operation's declared query
// parameters. Supplied values are checked against the parameter schemas, and
// semantic formats (email, date, date-time, uuid) are validated before they
// are written.
//
// # Overview
//
// The module consists of these packages:
//
//   - parser: Parse OpenAPI documents from files, URLs, readers or bytes
//   - serializer: Resolve path templates and build query strings
//   - formatter: Validate and render values with semantic formats
//   - oaserrors: Structured error types shared by all packages
//
// Serialization supports these OpenAPI Specification versions:
//   - OAS 3.0.x (3.0.0 - 3.0.4): https://spec.openapis.org/oas/v3.0.0.html
//   - OAS 3.1.x (3.1.0 - 3.1.2): https://spec.openapis.org/oas/v3.1.0.html
//   - OAS 3.2.0: https://spec.openapis.org/oas/v3.2.0.html
//
// OAS 2.0 (Swagger) documents can be parsed but are rejected by the
// serializer with an [oaserrors.UnsupportedVersionError].
//
// # Installation
//
//	go get github.com/erraggy/oaspath
//
// The command line tool is installed with:
//
//	go install github.com/erraggy/oaspath/cmd/oaspath@latest
//
// # Quick Start
//
//	s, err := serializer.NewWithOptions(serializer.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	path, err := s.SerializePath("get", "/pets/{petId}", map[string]any{"petId": "123"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	query, err := s.SerializeQuery("get", "/pets", map[string]any{"limit": 20})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(path + "?" + query)
//
// # Errors
//
// Every failed check is reported through the types in package oaserrors.
// Wrong data types are collected across all parameters of a call and
// returned together:
//
//	var wrongType *oaserrors.WrongDataTypeError
//	if errors.As(err, &wrongType) {
//		for _, p := range wrongType.Problems {
//			fmt.Println(p.Name, p.Expected)
//		}
//	}
//
// # Command Line and MCP
//
// The oaspath command exposes the same operations as the path, query and
// format subcommands. "oaspath mcp" serves them as tools over the Model
// Context Protocol on stdio.
package oaspath
