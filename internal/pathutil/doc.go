// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides helpers for OpenAPI path templates and local
// component references.
//
// # Path Templates
//
// [PathParamRegex] matches "{name}" placeholders. [PlaceholderNames] lists
// them in order of first appearance and [ReplacePlaceholder] substitutes
// every occurrence of one name:
//
//	pathutil.ReplacePlaceholder("/pets/{petId}/{petId}", "petId", "7") // "/pets/7/7"
//
// [EncodeURI] escapes substitution values with ECMAScript encodeURI rules:
//
//	pathutil.EncodeURI("123 with space") // "123%20with%20space"
//
// # Reference Builders
//
// Local OAS 3.x component references:
//
//	ref := pathutil.ParameterRef("limit") // "#/components/parameters/limit"
//	ref := pathutil.SchemaRef("Pet")      // "#/components/schemas/Pet"
//
// [ParameterRefName] reverses the parameter form:
//
//	name, ok := pathutil.ParameterRefName("#/components/parameters/limit") // "limit", true
package pathutil
