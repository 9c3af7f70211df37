// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "strings"

// OAS 3.x reference prefixes
const (
	RefPrefixSchemas     = "#/components/schemas/"
	RefPrefixParameters3 = "#/components/parameters/"
)

// SchemaRef builds "#/components/schemas/{name}" (OAS 3.x).
func SchemaRef(name string) string {
	return RefPrefixSchemas + name
}

// ParameterRef builds "#/components/parameters/{name}" (OAS 3.x).
func ParameterRef(name string) string {
	return RefPrefixParameters3 + name
}

// ParameterRefName extracts the component name from a local OAS 3.x
// parameter reference. It returns false for external references, OAS 2.0
// references and pointers that reach below the component itself.
func ParameterRefName(ref string) (string, bool) {
	return localRefName(ref, RefPrefixParameters3)
}

// SchemaRefName extracts the component name from a local OAS 3.x schema
// reference.
func SchemaRefName(ref string) (string, bool) {
	return localRefName(ref, RefPrefixSchemas)
}

func localRefName(ref, prefix string) (string, bool) {
	name, ok := strings.CutPrefix(ref, prefix)
	if !ok || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	// JSON Pointer escapes
	name = strings.ReplaceAll(name, "~1", "/")
	name = strings.ReplaceAll(name, "~0", "~")
	return name, true
}
