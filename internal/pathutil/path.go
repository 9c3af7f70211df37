// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import (
	"regexp"
	"strings"
)

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces. Names are limited to
// ASCII letters, digits, '_' and '-'.
var PathParamRegex = regexp.MustCompile(`\{([a-zA-Z0-9_-]+)\}`)

// Placeholder returns the template token for name, e.g. "{petId}".
func Placeholder(name string) string {
	return "{" + name + "}"
}

// ReplacePlaceholder substitutes every occurrence of {name} in template
// with value. value is inserted as-is; callers encode it first.
func ReplacePlaceholder(template, name, value string) string {
	return strings.ReplaceAll(template, Placeholder(name), value)
}

// PlaceholderNames returns the placeholder names in template, left to right,
// keeping only the first occurrence of each name.
func PlaceholderNames(template string) []string {
	matches := PathParamRegex.FindAllStringSubmatch(template, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		names = append(names, m[1])
	}
	return names
}

// HasPlaceholders reports whether template still contains a {name} token.
func HasPlaceholders(template string) bool {
	return PathParamRegex.MatchString(template)
}
